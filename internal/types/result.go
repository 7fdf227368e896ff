package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillGroups is the skills portion of the analysis output, split between
// technical and soft skills plus a per-category breakdown.
type SkillGroups struct {
	Technical  []Skill                   `json:"technical"`
	Soft       []Skill                   `json:"soft"`
	Categories map[SkillCategory][]Skill `json:"categories"`
}

// GroupSkills splits a flat skill list into the output grouping. Input
// order is preserved within each group so results stay deterministic.
func GroupSkills(skills []Skill) SkillGroups {
	groups := SkillGroups{
		Technical:  []Skill{},
		Soft:       []Skill{},
		Categories: map[SkillCategory][]Skill{},
	}
	for _, s := range skills {
		if s.IsSoft() {
			groups.Soft = append(groups.Soft, s)
		} else {
			groups.Technical = append(groups.Technical, s)
		}
		groups.Categories[s.Category] = append(groups.Categories[s.Category], s)
	}
	return groups
}

// AnalysisResult is the complete result of one pipeline run. It is
// assembled once by the pipeline coordinator and immutable afterwards.
// Every collection is non-nil so the serialized form never omits a
// top-level key.
type AnalysisResult struct {
	AnalysisID         uuid.UUID               `json:"analysis_id"`
	OverallScore       float64                 `json:"overall_score"`
	ATSScore           float64                 `json:"ats_score"`
	ScoreLabel         string                  `json:"score_label"`
	Sections           map[string]SectionScore `json:"sections"`
	Skills             SkillGroups             `json:"skills"`
	Experience         []ExperienceEntry       `json:"experience"`
	Education          []EducationEntry        `json:"education"`
	Suggestions        []Suggestion            `json:"ai_suggestions"`
	ATSRecommendations []string                `json:"ats_recommendations"`
	Metrics            ContentMetrics          `json:"analysis"`
	ProcessingTime     float64                 `json:"processing_time"`
}

// NewAnalysisResult returns a result with a fresh analysis ID and all
// collections initialized.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		AnalysisID:         uuid.New(),
		Sections:           map[string]SectionScore{},
		Skills:             SkillGroups{Technical: []Skill{}, Soft: []Skill{}, Categories: map[SkillCategory][]Skill{}},
		Experience:         []ExperienceEntry{},
		Education:          []EducationEntry{},
		Suggestions:        []Suggestion{},
		ATSRecommendations: []string{},
	}
}

// SourceMetadata describes where the analyzed text came from. It is
// provided by the file-processing collaborator and carried through for
// logging; the pipeline never re-parses the source document.
type SourceMetadata struct {
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count,omitempty"`
}

// AnalysisInput is the pipeline input contract. Emptiness of the text is
// judged by the normalizer, which sees through whitespace and control
// characters; there is no separate presence check.
type AnalysisInput struct {
	Text     string         `json:"text"`
	Metadata SourceMetadata `json:"source_metadata"`
}

// MeasureProcessingTime records elapsed seconds since start on the result
func (r *AnalysisResult) MeasureProcessingTime(start time.Time) {
	r.ProcessingTime = time.Since(start).Seconds()
}
