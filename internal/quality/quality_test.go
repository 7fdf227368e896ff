package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/normalize"
)

func testDict(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Load("")
	require.NoError(t, err)
	return dict
}

func docFrom(text string) *normalize.DocumentText {
	return &normalize.DocumentText{
		Text:  text,
		Lines: strings.Split(text, "\n"),
	}
}

func TestAnalyzeMetrics(t *testing.T) {
	dict := testDict(t)

	// Four bullets: three start with an action verb, two carry numbers.
	doc := docFrom(strings.Join([]string{
		"Work Experience",
		"• Led a team of 8 engineers",
		"• Improved build times by 40%",
		"• Responsible for on-call rotation",
		"- Delivered the reporting service",
	}, "\n"))

	metrics := Analyze(doc, dict)

	assert.InDelta(t, 0.75, metrics.ActionVerbRatio, 1e-9)
	assert.InDelta(t, 0.5, metrics.QuantificationRate, 1e-9)
	assert.Positive(t, metrics.AvgBulletLength)
	assert.Positive(t, metrics.TotalWords)
	assert.Zero(t, metrics.TotalExperienceYears)
}

func TestAnalyzeNoBullets(t *testing.T) {
	dict := testDict(t)
	metrics := Analyze(docFrom("A short biography paragraph with no lists."), dict)

	assert.Zero(t, metrics.ActionVerbRatio)
	assert.Zero(t, metrics.QuantificationRate)
	assert.Zero(t, metrics.AvgBulletLength)
	assert.Equal(t, 7, metrics.TotalWords)
}

func TestAnalyzeKeywordDensity(t *testing.T) {
	dict := testDict(t)

	// 8 words, 2 skill keyword hits.
	metrics := Analyze(docFrom("Shipped services in Python and Go at scale"), dict)
	assert.InDelta(t, 2.0/8.0*100, metrics.KeywordDensity, 1e-9)

	none := Analyze(docFrom("Nothing technical here whatsoever"), dict)
	assert.Zero(t, none.KeywordDensity)
}

func TestExtractBullets(t *testing.T) {
	dict := testDict(t)

	lines := []string{
		"Work Experience",
		"• Led a team of engineers",
		"- Built the ingestion pipeline",
		"* Optimized query latency",
		"Managed vendor relationships",     // unmarked action-verb line
		"Responsible for on-call rotation", // unmarked weak-phrase line
		"Acme Corp, New York",              // unmarked, neither
		"",
		"•   ", // marker with no text
	}

	bullets := ExtractBullets(lines, dict)
	assert.Equal(t, []string{
		"Led a team of engineers",
		"Built the ingestion pipeline",
		"Optimized query latency",
		"Managed vendor relationships",
		"Responsible for on-call rotation",
	}, bullets)
}

func TestExtractBulletsWeakPhraseLowersVerbRatio(t *testing.T) {
	dict := testDict(t)

	doc := docFrom(strings.Join([]string{
		"Delivered the reporting service",
		"Responsible for vendor contracts",
	}, "\n"))

	metrics := Analyze(doc, dict)
	assert.InDelta(t, 0.5, metrics.ActionVerbRatio, 1e-9)
}

func TestStartsWithActionVerb(t *testing.T) {
	dict := testDict(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"Lowercase verb", "led the migration", true},
		{"Capitalized verb", "Delivered the project on time", true},
		{"Trailing punctuation on verb", "Managed, staffed, and trained the team", true},
		{"Non-verb start", "Responsible for deployments", false},
		{"Empty", "", false},
		{"Verb mid-sentence only", "The team delivered the project", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startsWithActionVerb(tt.text, dict))
		})
	}
}
