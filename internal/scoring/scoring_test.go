package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"Defaults", DefaultWeights(), false},
		{"Custom summing to one", Weights{0.4, 0.3, 0.2, 0.1}, false},
		{"Sum too low", Weights{0.2, 0.2, 0.2, 0.2}, true},
		{"Sum too high", Weights{0.5, 0.3, 0.3, 0.2}, true},
		{"Negative weight", Weights{-0.1, 0.5, 0.3, 0.3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score float64
		want  string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{89.9, "Good"},
		{75, "Good"},
		{74.9, "Fair"},
		{60, "Fair"},
		{59.9, "Needs Work"},
		{0, "Needs Work"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Label(tt.score), "score %.1f", tt.score)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5))
	assert.Equal(t, 100.0, clamp(120))
	assert.Equal(t, 42.5, clamp(42.5))
}

func fullInput() Input {
	end := types.YearMonth{Year: 2023, Month: 12}
	return Input{
		Contact: extract.Contact{
			Name:  "John Doe",
			Email: "john@example.com",
			Phone: "(555) 123-4567",
		},
		Skills: []types.Skill{
			{Name: "Python", Category: types.CategoryProgrammingLanguage},
			{Name: "Go", Category: types.CategoryProgrammingLanguage},
			{Name: "Django", Category: types.CategoryFramework},
			{Name: "PostgreSQL", Category: types.CategoryDatabase},
			{Name: "Docker", Category: types.CategoryTool},
			{Name: "Leadership", Category: types.CategorySoftSkill},
		},
		Experience: []types.ExperienceEntry{
			{
				Title:          "Senior Engineer",
				Company:        "Acme",
				StartDate:      types.YearMonth{Year: 2020, Month: 1},
				EndDate:        &end,
				DurationMonths: 47,
				Responsibilities: []string{
					"Led a team of 8 engineers",
					"Improved build times by 40%",
					"Delivered the reporting service",
				},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "Bachelor", Field: "Computer Science", Institution: "State University", Year: 2014},
		},
		Metrics: types.ContentMetrics{
			ActionVerbRatio:      0.8,
			QuantificationRate:   0.5,
			KeywordDensity:       2.5,
			AvgBulletLength:      9,
			TotalWords:           250,
			TotalExperienceYears: 3.9,
		},
		RecognizedHeadings: []string{"Summary", "Work Experience", "Education", "Skills"},
	}
}

func TestScoreRanges(t *testing.T) {
	scores := Score(fullInput(), DefaultConfig())

	assert.GreaterOrEqual(t, scores.Overall, 0.0)
	assert.LessOrEqual(t, scores.Overall, 100.0)
	assert.GreaterOrEqual(t, scores.ATS, 0.0)
	assert.LessOrEqual(t, scores.ATS, 100.0)
	assert.NotEmpty(t, scores.Label)

	require.Len(t, scores.Sections, 4)
	for name, section := range scores.Sections {
		assert.GreaterOrEqual(t, section.Score, 0.0, name)
		assert.LessOrEqual(t, section.Score, 100.0, name)
		assert.NotNil(t, section.Issues, name)
	}
}

func TestScoreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	first := Score(fullInput(), cfg)
	for i := 0; i < 10; i++ {
		again := Score(fullInput(), cfg)
		assert.Equal(t, first.Overall, again.Overall)
		assert.Equal(t, first.ATS, again.ATS)
		assert.Equal(t, first.ATSRecommendations, again.ATSRecommendations)
	}
}

func TestScoreContactPenalties(t *testing.T) {
	in := fullInput()
	in.Contact = extract.Contact{Name: "John Doe"}

	section := Score(in, DefaultConfig()).Sections[types.SectionContact]
	assert.Equal(t, 30.0, section.Score)
	assert.Contains(t, section.Issues, "no email address found")
	assert.Contains(t, section.Issues, "no phone number found")
}

func TestScoreEmptySections(t *testing.T) {
	scores := Score(Input{}, DefaultConfig())

	assert.Zero(t, scores.Sections[types.SectionExperience].Score)
	assert.Contains(t, scores.Sections[types.SectionExperience].Issues, "no work experience entries found")
	assert.Zero(t, scores.Sections[types.SectionEducation].Score)
	assert.Contains(t, scores.Sections[types.SectionEducation].Issues, "no education entries found")
	assert.Contains(t, scores.Sections[types.SectionSkills].Issues, "no technical skills identified")
}

func TestScoreCarriesExperienceIssues(t *testing.T) {
	in := fullInput()
	in.ExperienceIssues = []string{"unparsable experience block (no date range): \"stray text\""}

	section := Score(in, DefaultConfig()).Sections[types.SectionExperience]
	assert.Contains(t, section.Issues, in.ExperienceIssues[0])
	assert.Positive(t, section.Score)
}

func TestScoreDegradedSegmentationRecordsIssue(t *testing.T) {
	in := fullInput()
	in.DegradedSegments = true

	section := Score(in, DefaultConfig()).Sections[types.SectionExperience]
	assert.Contains(t, section.Issues, "no section headings recognized; sections were analyzed from the full document")
}

func TestHeaderCompliance(t *testing.T) {
	t.Run("all standard sections", func(t *testing.T) {
		assert.Equal(t, 1.0, headerCompliance(fullInput()))
	})

	t.Run("partial", func(t *testing.T) {
		in := fullInput()
		in.RecognizedHeadings = []string{"Work Experience", "Skills"}
		assert.InDelta(t, 2.0/3.0, headerCompliance(in), 1e-9)
	})

	t.Run("degraded scores zero", func(t *testing.T) {
		in := fullInput()
		in.DegradedSegments = true
		assert.Zero(t, headerCompliance(in))
	})

	t.Run("no headings", func(t *testing.T) {
		in := fullInput()
		in.RecognizedHeadings = nil
		assert.Zero(t, headerCompliance(in))
	})

	t.Run("dictionary heading set", func(t *testing.T) {
		in := fullInput()
		in.StandardHeadings = []string{"experience", "education", "skills", "summary"}
		assert.Equal(t, 1.0, headerCompliance(in))

		in.RecognizedHeadings = []string{"Work Experience", "Skills"}
		assert.InDelta(t, 2.0/4.0, headerCompliance(in), 1e-9)
	})
}

func TestATSRecommendations(t *testing.T) {
	t.Run("weak resume gets guidance", func(t *testing.T) {
		in := Input{Metrics: types.ContentMetrics{KeywordDensity: 0.2}}
		scores := Score(in, DefaultConfig())

		assert.Contains(t, scores.ATSRecommendations, "Add more industry-specific keywords")
		assert.Contains(t, scores.ATSRecommendations, "Increase keyword density for better ATS matching")
		assert.Contains(t, scores.ATSRecommendations, "Include more relevant technical skills")
		assert.Contains(t, scores.ATSRecommendations, "Start more bullet points with strong action verbs")
		assert.Contains(t, scores.ATSRecommendations, "Use standard section headings (Experience, Education, Skills)")
	})

	t.Run("complete headings drop heading advice", func(t *testing.T) {
		scores := Score(fullInput(), DefaultConfig())
		assert.NotContains(t, scores.ATSRecommendations, "Use standard section headings (Experience, Education, Skills)")
	})
}

func TestSkillsDiversityScore(t *testing.T) {
	var many []types.Skill
	for i := 0; i < 15; i++ {
		many = append(many, types.Skill{Name: string(rune('a' + i)), Category: types.CategoryTool})
	}

	assert.Equal(t, 0.0, skillsDiversityScore(nil))
	// 15 skills in one category: 70 count + 7 diversity.
	assert.Equal(t, 77.0, skillsDiversityScore(many))
}
