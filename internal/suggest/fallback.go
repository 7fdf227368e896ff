package suggest

import "github.com/jonathan/resume-analyzer/internal/types"

// fallbackRule emits one fixed suggestion when its condition holds. The
// rules run in declaration order over the same Facts the prompt uses, so
// fallback output is fully deterministic given identical analysis data.
type fallbackRule struct {
	Name      string
	Applies   func(Facts) bool
	Always    bool
	Suggestion types.Suggestion
}

// Generate-locally rules, in emission order. The final formatting rule
// always applies so the fallback list is never empty.
var fallbackRules = []fallbackRule{
	{
		Name:    "quantification",
		Applies: func(f Facts) bool { return f.Metrics.QuantificationRate < 0.5 },
		Suggestion: types.Suggestion{
			Category: "content",
			Priority: types.PriorityHigh,
			Text:     "Add quantifiable metrics to your achievements",
			Examples: []string{
				`Instead of: "Improved system performance"`,
				`Write: "Improved system performance by 40%, reducing load time from 5s to 3s"`,
			},
			Rationale: "Numbers make your achievements tangible and memorable",
		},
	},
	{
		Name:    "action-verbs",
		Applies: func(f Facts) bool { return f.Metrics.ActionVerbRatio < 0.6 },
		Suggestion: types.Suggestion{
			Category: "content",
			Priority: types.PriorityHigh,
			Text:     "Start more bullet points with strong action verbs",
			Examples: []string{
				`Instead of: "Responsible for managing team"`,
				`Write: "Led cross-functional team of 8 developers"`,
			},
			Rationale: "Action verbs make your resume more dynamic and impactful",
		},
	},
	{
		Name:    "skills-breadth",
		Applies: func(f Facts) bool { return len(f.Skills) < 10 },
		Suggestion: types.Suggestion{
			Category: "skills",
			Priority: types.PriorityMedium,
			Text:     "Include more relevant technical skills",
			Examples: []string{
				"Add specific technologies, frameworks, and tools you have used",
				"Include both hard skills (programming languages) and soft skills (leadership)",
			},
			Rationale: "ATS systems and recruiters scan for specific skill keywords",
		},
	},
	{
		Name:    "ats-optimization",
		Applies: func(f Facts) bool { return f.ATSScore < 70 },
		Suggestion: types.Suggestion{
			Category: "ats",
			Priority: types.PriorityMedium,
			Text:     "Optimize for Applicant Tracking Systems (ATS)",
			Examples: []string{
				"Use industry-standard job titles and section headings",
				"Include keywords from the job description",
				"Avoid complex formatting, tables, and graphics",
			},
			Rationale: "Most companies use ATS to screen resumes before human review",
		},
	},
	{
		Name:    "experience-detail",
		Applies: func(f Facts) bool { return f.ExperienceCount == 0 },
		Suggestion: types.Suggestion{
			Category: "experience",
			Priority: types.PriorityHigh,
			Text:     "Add a clearly labeled work experience section with dated entries",
			Examples: []string{
				`Use a standard heading such as "Experience" or "Work History"`,
				`Give each role a title, company, and date range such as "Jan 2020 - Present"`,
			},
			Rationale: "Parsers and recruiters both look for a dated work history first",
		},
	},
	{
		Name:   "formatting",
		Always: true,
		Suggestion: types.Suggestion{
			Category: "formatting",
			Priority: types.PriorityLow,
			Text:     "Ensure consistent formatting throughout",
			Examples: []string{
				`Use consistent date formats (e.g., "Jan 2020" or "01/2020")`,
				"Keep bullet point style uniform",
				"Maintain consistent spacing and font sizes",
			},
			Rationale: "Consistent formatting shows attention to detail and professionalism",
		},
	},
}

// FallbackSuggestions generates the deterministic local suggestions used
// when the external service is disabled or unavailable. The result is
// never empty and is already ordered by priority.
func FallbackSuggestions(facts Facts) []types.Suggestion {
	suggestions := []types.Suggestion{}
	for _, rule := range fallbackRules {
		if rule.Always || rule.Applies(facts) {
			suggestions = append(suggestions, rule.Suggestion)
		}
	}
	sortByPriority(suggestions)
	return suggestions
}
