// Package quality computes stylistic content metrics over the normalized
// resume text: action-verb ratio, quantification rate, keyword density,
// and bullet-length distribution. All metrics are pure functions of the
// text and the static dictionaries.
package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/normalize"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	bulletMarker = regexp.MustCompile(`^[•\-*·○▪]\s+`)
	numericToken = regexp.MustCompile(`\d|%|[$€£]`)
	wordToken    = regexp.MustCompile(`[A-Za-z0-9'+#./\-]+`)
)

// Analyze computes the content metrics for a document.
// TotalExperienceYears is left zero here; the pipeline coordinator fills
// it in from the parsed experience entries.
func Analyze(doc *normalize.DocumentText, dict *dictionary.Dictionary) types.ContentMetrics {
	bullets := ExtractBullets(doc.Lines, dict)
	totalWords := countWords(doc.Text)

	metrics := types.ContentMetrics{TotalWords: totalWords}

	if len(bullets) > 0 {
		verbCount := 0
		quantified := 0
		bulletWords := 0
		for _, bullet := range bullets {
			if startsWithActionVerb(bullet, dict) {
				verbCount++
			}
			if numericToken.MatchString(bullet) {
				quantified++
			}
			bulletWords += len(wordToken.FindAllString(bullet, -1))
		}
		n := float64(len(bullets))
		metrics.ActionVerbRatio = float64(verbCount) / n
		metrics.QuantificationRate = float64(quantified) / n
		metrics.AvgBulletLength = float64(bulletWords) / n
	}

	if totalWords > 0 {
		occurrences := 0
		textLower := strings.ToLower(doc.Text)
		for _, keyword := range dict.AllSkillKeywords() {
			occurrences += dictionary.CountOccurrences(textLower, keyword)
		}
		metrics.KeywordDensity = float64(occurrences) / float64(totalWords) * 100
	}

	return metrics
}

// ExtractBullets returns the bullet-like units of the document: lines
// with a bullet marker, and unmarked lines that open with an action verb
// or a weak phrase (resumes frequently drop markers, especially after
// PDF extraction, and weak-phrase lines are exactly the ones the
// action-verb ratio must count against).
func ExtractBullets(lines []string, dict *dictionary.Dictionary) []string {
	var bullets []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletMarker.MatchString(trimmed) {
			text := strings.TrimSpace(bulletMarker.ReplaceAllString(trimmed, ""))
			if text != "" {
				bullets = append(bullets, text)
			}
			continue
		}
		if startsWithActionVerb(trimmed, dict) || dict.HasWeakVerbPrefix(trimmed) {
			bullets = append(bullets, trimmed)
		}
	}
	return bullets
}

func startsWithActionVerb(text string, dict *dictionary.Dictionary) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], ".,;:")
	return dict.IsActionVerb(first)
}

func countWords(text string) int {
	return len(wordToken.FindAllString(text, -1))
}
