package extract

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ProficiencyThresholds derives a proficiency level from how many times a
// skill is mentioned. The defaults are a policy, not a constant: they can
// be overridden through configuration.
type ProficiencyThresholds struct {
	Advanced     int `json:"advanced"`
	Intermediate int `json:"intermediate"`
}

// DefaultProficiencyThresholds returns the documented default policy
func DefaultProficiencyThresholds() ProficiencyThresholds {
	return ProficiencyThresholds{Advanced: 5, Intermediate: 3}
}

// Level maps an occurrence count to a proficiency level
func (t ProficiencyThresholds) Level(count int) types.Proficiency {
	switch {
	case count >= t.Advanced:
		return types.ProficiencyAdvanced
	case count >= t.Intermediate:
		return types.ProficiencyIntermediate
	default:
		return types.ProficiencyBeginner
	}
}

// ExtractSkills matches document text against the skill dictionary.
// Matching is case-insensitive and whole-word; each match increments the
// skill's occurrence count and proficiency is derived from the total.
// Iteration follows dictionary order, so the same text and dictionary
// version always produce the same skill list in the same order.
func ExtractSkills(text string, dict *dictionary.Dictionary, thresholds ProficiencyThresholds) []types.Skill {
	textLower := strings.ToLower(text)
	skills := []types.Skill{}
	seen := map[string]struct{}{}

	for _, category := range dict.SkillCategories {
		for _, keyword := range category.Keywords {
			count := dictionary.CountOccurrences(textLower, keyword)
			if count == 0 {
				continue
			}
			skill := types.Skill{
				Name:        keyword,
				Category:    category.Name,
				Count:       count,
				Proficiency: thresholds.Level(count),
			}
			if _, dup := seen[skill.Key()]; dup {
				continue
			}
			seen[skill.Key()] = struct{}{}
			skills = append(skills, skill)
		}
	}

	return skills
}
