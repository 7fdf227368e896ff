package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Facts is the structured summary of an analyzed resume that the prompt
// and the fallback generator both consume.
type Facts struct {
	OverallScore    float64
	ATSScore        float64
	Metrics         types.ContentMetrics
	Skills          []types.Skill
	ExperienceCount int
	MissingSections []string
	TargetRole      string
}

// technicalSkillCount counts non-soft skills
func (f Facts) technicalSkillCount() int {
	count := 0
	for _, s := range f.Skills {
		if !s.IsSoft() {
			count++
		}
	}
	return count
}

func (f Facts) softSkillCount() int {
	return len(f.Skills) - f.technicalSkillCount()
}

// buildPrompt renders the suggestion prompt from the embedded template
func buildPrompt(facts Facts) (system, user string) {
	system = prompts.MustGet("suggestions.json", "system")

	weakAreas := ""
	if lines := weakAreaLines(facts); len(lines) > 0 {
		weakAreas = "\nWeak areas to address:\n- " + strings.Join(lines, "\n- ") + "\n"
	}

	targetRole := ""
	if facts.TargetRole != "" {
		targetRole = fmt.Sprintf("\nTarget role: %s\n", facts.TargetRole)
	}

	template := prompts.MustGet("suggestions.json", "generate_suggestions")
	user = prompts.Format(template, map[string]string{
		"OverallScore":       fmt.Sprintf("%.0f", facts.OverallScore),
		"ATSScore":           fmt.Sprintf("%.0f", facts.ATSScore),
		"SkillCount":         fmt.Sprintf("%d", len(facts.Skills)),
		"TechnicalCount":     fmt.Sprintf("%d", facts.technicalSkillCount()),
		"SoftCount":          fmt.Sprintf("%d", facts.softSkillCount()),
		"ExperienceCount":    fmt.Sprintf("%d", facts.ExperienceCount),
		"ActionVerbRatio":    fmt.Sprintf("%.0f%%", facts.Metrics.ActionVerbRatio*100),
		"QuantificationRate": fmt.Sprintf("%.0f%%", facts.Metrics.QuantificationRate*100),
		"KeywordDensity":     fmt.Sprintf("%.1f", facts.Metrics.KeywordDensity),
		"WeakAreas":          weakAreas,
		"TargetRole":         targetRole,
	})

	return system, user
}

// weakAreaLines lists the specific weaknesses worth calling out to the
// model, in a fixed order.
func weakAreaLines(facts Facts) []string {
	var lines []string
	if facts.Metrics.QuantificationRate < 0.5 {
		lines = append(lines, "few bullet points contain quantifiable metrics")
	}
	if facts.Metrics.ActionVerbRatio < 0.6 {
		lines = append(lines, "many bullet points do not start with action verbs")
	}
	if facts.technicalSkillCount() < 10 {
		lines = append(lines, "technical skill coverage is thin")
	}
	if facts.ExperienceCount == 0 {
		lines = append(lines, "no work experience entries were found")
	}
	for _, section := range facts.MissingSections {
		lines = append(lines, fmt.Sprintf("the %s section is missing or unrecognized", section))
	}
	return lines
}
