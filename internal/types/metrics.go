package types

// ContentMetrics holds the stylistic metrics computed over the whole
// document. Ratios are in [0,1]; KeywordDensity is skill-term occurrences
// per 100 words; AvgBulletLength is mean words per bullet.
type ContentMetrics struct {
	ActionVerbRatio      float64 `json:"action_verb_ratio"`
	QuantificationRate   float64 `json:"quantification_rate"`
	KeywordDensity       float64 `json:"keyword_density"`
	AvgBulletLength      float64 `json:"avg_bullet_length"`
	TotalWords           int     `json:"total_words"`
	TotalExperienceYears float64 `json:"total_experience_years"`
}

// SectionScore is the 0-100 score for one logical resume section together
// with any issues recorded while evaluating it. Issues are ordered.
type SectionScore struct {
	Score  float64  `json:"score"`
	Issues []string `json:"issues"`
}

// Section names used as keys in AnalysisResult.Sections
const (
	SectionContact    = "contact"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionEducation  = "education"
)
