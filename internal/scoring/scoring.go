// Package scoring combines skill diversity, experience depth, content
// quality, and ATS compatibility into section scores and one overall
// score. Given identical inputs and weights the scores are bit-for-bit
// reproducible: the weighted sum always runs in the fixed order skills,
// experience, quality, ATS.
package scoring

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights are the overall-score weights. They are configuration, not
// constants; the documented default policy is 30/25/25/20.
type Weights struct {
	SkillsDiversity float64 `json:"skills_diversity"`
	ExperienceDepth float64 `json:"experience_depth"`
	ContentQuality  float64 `json:"content_quality"`
	ATSOptimization float64 `json:"ats_optimization"`
}

// DefaultWeights returns the documented default weighting policy
func DefaultWeights() Weights {
	return Weights{
		SkillsDiversity: 0.30,
		ExperienceDepth: 0.25,
		ContentQuality:  0.25,
		ATSOptimization: 0.20,
	}
}

// Validate checks that the weights are usable: non-negative and summing
// to 1 within a small tolerance.
func (w Weights) Validate() error {
	if w.SkillsDiversity < 0 || w.ExperienceDepth < 0 || w.ContentQuality < 0 || w.ATSOptimization < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	sum := w.SkillsDiversity + w.ExperienceDepth + w.ContentQuality + w.ATSOptimization
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Config holds the scoring policy: weights, the keyword-density target
// used by content and ATS scoring (occurrences per 100 words), and the
// score-to-label thresholds.
type Config struct {
	Weights              Weights `json:"weights"`
	KeywordDensityTarget float64 `json:"keyword_density_target"`
	ExcellentThreshold   float64 `json:"excellent_threshold"`
	GoodThreshold        float64 `json:"good_threshold"`
	FairThreshold        float64 `json:"fair_threshold"`
}

// DefaultConfig returns the default scoring policy
func DefaultConfig() Config {
	return Config{
		Weights:              DefaultWeights(),
		KeywordDensityTarget: 2.0,
		ExcellentThreshold:   90,
		GoodThreshold:        75,
		FairThreshold:        60,
	}
}

// Input carries everything the scoring engine consumes. Extraction,
// experience parsing, and quality analysis all complete before scoring
// starts.
type Input struct {
	Contact            extract.Contact
	Skills             []types.Skill
	Experience         []types.ExperienceEntry
	Education          []types.EducationEntry
	Metrics            types.ContentMetrics
	ExperienceIssues   []string
	RecognizedHeadings []string
	StandardHeadings   []string // dictionary sections ATS scanners expect; empty uses a built-in set
	DegradedSegments   bool
}

// Scores is the scoring engine output
type Scores struct {
	Overall            float64
	ATS                float64
	Label              string
	Sections           map[string]types.SectionScore
	ATSRecommendations []string
}

// Score computes all section scores, the ATS score, and the weighted
// overall score.
func Score(in Input, cfg Config) Scores {
	sections := map[string]types.SectionScore{
		types.SectionContact:    scoreContact(in.Contact),
		types.SectionExperience: scoreExperienceSection(in),
		types.SectionSkills:     scoreSkillsSection(in.Skills),
		types.SectionEducation:  scoreEducationSection(in.Education),
	}

	ats := scoreATS(in, cfg)

	// Fixed summation order: skills, experience, quality, ATS.
	overall := 0.0
	overall += skillsDiversityScore(in.Skills) * cfg.Weights.SkillsDiversity
	overall += experienceDepthScore(in) * cfg.Weights.ExperienceDepth
	overall += contentQualityScore(in.Metrics, cfg) * cfg.Weights.ContentQuality
	overall += ats * cfg.Weights.ATSOptimization
	overall = clamp(overall)

	return Scores{
		Overall:            overall,
		ATS:                ats,
		Label:              cfg.Label(overall),
		Sections:           sections,
		ATSRecommendations: atsRecommendations(in, ats, cfg),
	}
}

// Label maps a score to its human-readable band
func (c Config) Label(score float64) string {
	switch {
	case score >= c.ExcellentThreshold:
		return "Excellent"
	case score >= c.GoodThreshold:
		return "Good"
	case score >= c.FairThreshold:
		return "Fair"
	default:
		return "Needs Work"
	}
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
