// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SkillCategory classifies an extracted skill
type SkillCategory string

// Skill categories recognized by the extractor
const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryFramework           SkillCategory = "framework"
	CategoryDatabase            SkillCategory = "database"
	CategoryTool                SkillCategory = "tool"
	CategorySoftSkill           SkillCategory = "soft_skill"
	CategoryOther               SkillCategory = "other"
)

// Proficiency is a rough level derived from how often a skill is mentioned
type Proficiency string

// Proficiency levels, derived from occurrence thresholds
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
)

// Skill represents a skill identified in a resume.
// Skills are unique by lowercase name within a category; occurrence counts
// accumulate across the full document text.
type Skill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Count       int           `json:"count"`
	Proficiency Proficiency   `json:"proficiency"`
}

// Key returns the uniqueness key for a skill (lowercase name within category)
func (s Skill) Key() string {
	return string(s.Category) + "/" + strings.ToLower(s.Name)
}

// IsSoft reports whether the skill is a soft skill
func (s Skill) IsSoft() bool {
	return s.Category == CategorySoftSkill
}
