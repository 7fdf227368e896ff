package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// containsFold reports whether heading contains want, ignoring case
func containsFold(heading, want string) bool {
	return strings.Contains(strings.ToLower(heading), want)
}

// skillsDiversityScore rewards both the number of skills and the spread
// across categories.
func skillsDiversityScore(skills []types.Skill) float64 {
	count := len(skills)
	categories := map[types.SkillCategory]struct{}{}
	for _, s := range skills {
		categories[s.Category] = struct{}{}
	}

	var countScore float64
	switch {
	case count >= 15:
		countScore = 70
	case count >= 10:
		countScore = 50
	case count >= 5:
		countScore = 30
	default:
		countScore = float64(count) * 5
	}

	var diversityScore float64
	switch n := len(categories); {
	case n >= 5:
		diversityScore = 30
	case n >= 3:
		diversityScore = 20
	default:
		diversityScore = float64(n) * 7
	}

	return clamp(countScore + diversityScore)
}

// experienceDepthScore rewards total years of experience and the number
// of responsibility bullets describing it.
func experienceDepthScore(in Input) float64 {
	years := in.Metrics.TotalExperienceYears

	var yearsScore float64
	switch {
	case years >= 5:
		yearsScore = 60
	case years >= 3:
		yearsScore = 45
	case years >= 1:
		yearsScore = 30
	default:
		yearsScore = years * 20
	}

	totalBullets := 0
	for _, e := range in.Experience {
		totalBullets += len(e.Responsibilities)
	}

	var qualityScore float64
	switch {
	case totalBullets >= 15:
		qualityScore = 40
	case totalBullets >= 10:
		qualityScore = 30
	case totalBullets >= 5:
		qualityScore = 20
	default:
		qualityScore = float64(totalBullets) * 3
	}

	return clamp(yearsScore + qualityScore)
}

// contentQualityScore scores writing quality from the content metrics:
// action verbs up to 40 points, quantification up to 30, keyword density
// up to 30 relative to the configured target.
func contentQualityScore(m types.ContentMetrics, cfg Config) float64 {
	verbScore := m.ActionVerbRatio * 40
	quantScore := m.QuantificationRate * 30

	keywordScore := 0.0
	if cfg.KeywordDensityTarget > 0 {
		keywordScore = m.KeywordDensity / cfg.KeywordDensityTarget * 30
		if keywordScore > 30 {
			keywordScore = 30
		}
	}

	return clamp(verbScore + quantScore + keywordScore)
}

// scoreATS computes the ATS compatibility score: skill presence (30),
// keyword density against target (25), action-verb usage (15),
// quantification (10), and standard section-header compliance (20).
func scoreATS(in Input, cfg Config) float64 {
	score := 0.0

	switch n := len(in.Skills); {
	case n >= 15:
		score += 30
	case n >= 10:
		score += 22
	case n >= 5:
		score += 15
	default:
		score += float64(n) * 2
	}

	if cfg.KeywordDensityTarget > 0 {
		densityScore := in.Metrics.KeywordDensity / cfg.KeywordDensityTarget * 25
		if densityScore > 25 {
			densityScore = 25
		}
		score += densityScore
	}

	score += in.Metrics.ActionVerbRatio * 15
	score += in.Metrics.QuantificationRate * 10
	score += headerCompliance(in) * 20

	return clamp(score)
}

// fallbackStandardHeadings applies when the input carries no dictionary
// heading set.
var fallbackStandardHeadings = []string{"experience", "education", "skills"}

// headerCompliance is the fraction of the standard resume sections that
// were recognized during segmentation. Degraded segmentation scores
// zero: an ATS would not find the sections either.
func headerCompliance(in Input) float64 {
	if in.DegradedSegments || len(in.RecognizedHeadings) == 0 {
		return 0
	}
	standard := in.StandardHeadings
	if len(standard) == 0 {
		standard = fallbackStandardHeadings
	}
	found := 0.0
	for _, want := range standard {
		want = strings.ToLower(want)
		for _, heading := range in.RecognizedHeadings {
			if containsFold(heading, want) {
				found++
				break
			}
		}
	}
	return found / float64(len(standard))
}

// atsRecommendations derives deterministic ATS guidance from the same
// thresholds the scores use.
func atsRecommendations(in Input, ats float64, cfg Config) []string {
	recs := []string{}
	if ats < 70 {
		recs = append(recs, "Add more industry-specific keywords")
	}
	if cfg.KeywordDensityTarget > 0 && in.Metrics.KeywordDensity < cfg.KeywordDensityTarget/2 {
		recs = append(recs, "Increase keyword density for better ATS matching")
	}
	if len(in.Skills) < 10 {
		recs = append(recs, "Include more relevant technical skills")
	}
	if in.Metrics.ActionVerbRatio < 0.60 {
		recs = append(recs, "Start more bullet points with strong action verbs")
	}
	if compliance := headerCompliance(in); compliance < 1 {
		recs = append(recs, "Use standard section headings (Experience, Education, Skills)")
	}
	return recs
}

// scoreContact penalizes each missing contact detail
func scoreContact(contact extract.Contact) types.SectionScore {
	score := types.SectionScore{Score: 100, Issues: []string{}}
	if contact.Email == "" {
		score.Score -= 40
		score.Issues = append(score.Issues, "no email address found")
	}
	if contact.Phone == "" {
		score.Score -= 30
		score.Issues = append(score.Issues, "no phone number found")
	}
	if contact.Name == "" {
		score.Score -= 30
		score.Issues = append(score.Issues, "no candidate name found")
	}
	score.Score = clamp(score.Score)
	return score
}

// scoreExperienceSection rewards entry count and bullets, and carries
// over the parser's dropped-block issues.
func scoreExperienceSection(in Input) types.SectionScore {
	score := types.SectionScore{Issues: []string{}}
	score.Issues = append(score.Issues, in.ExperienceIssues...)

	if in.DegradedSegments {
		score.Issues = append(score.Issues, "no section headings recognized; sections were analyzed from the full document")
	}

	if len(in.Experience) == 0 {
		score.Issues = append(score.Issues, "no work experience entries found")
		return score
	}

	entryScore := float64(len(in.Experience)) * 20
	if entryScore > 60 {
		entryScore = 60
	}

	totalBullets := 0
	withDates := 0
	for _, e := range in.Experience {
		totalBullets += len(e.Responsibilities)
		if !e.StartDate.IsZero() {
			withDates++
		}
	}

	bulletScore := float64(totalBullets) * 4
	if bulletScore > 30 {
		bulletScore = 30
	}

	dateScore := 10.0
	if withDates < len(in.Experience) {
		dateScore = 0
		score.Issues = append(score.Issues, "some experience entries are missing dates")
	}

	if totalBullets == 0 {
		score.Issues = append(score.Issues, "experience entries have no responsibility bullets")
	}

	score.Score = clamp(entryScore + bulletScore + dateScore)
	return score
}

// scoreSkillsSection rewards technical breadth with a smaller weight for
// soft skills.
func scoreSkillsSection(skills []types.Skill) types.SectionScore {
	score := types.SectionScore{Issues: []string{}}

	technical := 0
	soft := 0
	for _, s := range skills {
		if s.IsSoft() {
			soft++
		} else {
			technical++
		}
	}

	if technical == 0 {
		score.Issues = append(score.Issues, "no technical skills identified")
	} else if technical < 5 {
		score.Issues = append(score.Issues, fmt.Sprintf("only %d technical skills identified; aim for at least 5", technical))
	}
	if soft == 0 {
		score.Issues = append(score.Issues, "no soft skills identified")
	}

	score.Score = clamp(float64(technical)*8 + float64(soft)*4)
	return score
}

// scoreEducationSection rewards degree, field, institution, and year
// completeness.
func scoreEducationSection(education []types.EducationEntry) types.SectionScore {
	score := types.SectionScore{Issues: []string{}}

	if len(education) == 0 {
		score.Issues = append(score.Issues, "no education entries found")
		return score
	}

	best := 0.0
	for _, e := range education {
		entryScore := 60.0 // degree itself
		if e.Field != "" {
			entryScore += 10
		}
		if e.Institution != "" {
			entryScore += 15
		}
		if e.Year != 0 {
			entryScore += 15
		}
		if entryScore > best {
			best = entryScore
		}
	}

	if best < 100 {
		score.Issues = append(score.Issues, "education entries are missing field, institution, or year details")
	}

	score.Score = clamp(best)
	return score
}
