package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/normalize"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func mustNormalize(t *testing.T, text string) *normalize.DocumentText {
	t.Helper()
	doc, err := normalize.Normalize(text, types.SourceMetadata{})
	require.NoError(t, err)
	return doc
}

const sampleResume = `John Doe
john@example.com | 555-0100

Professional Summary
Seasoned engineer with a decade of experience.

Work Experience
Senior Engineer, Acme Corp
Jan 2020 - Dec 2023

Education
B.S. in Computer Science, State University, 2014

Skills
Python, Go, PostgreSQL`

func TestSplitLabelsSections(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	segs := Split(mustNormalize(t, sampleResume), dict)

	assert.False(t, segs.Degraded())

	kinds := segs.Kinds()
	assert.True(t, kinds[KindSummary])
	assert.True(t, kinds[KindExperience])
	assert.True(t, kinds[KindEducation])
	assert.True(t, kinds[KindSkills])

	experience, ok := segs.Region(KindExperience)
	require.True(t, ok)
	assert.Contains(t, experience, "Senior Engineer, Acme Corp")
	assert.NotContains(t, experience, "State University")

	header := segs.Header()
	assert.Contains(t, header, "John Doe")
	assert.Contains(t, header, "john@example.com")
}

func TestSplitHeadings(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	segs := Split(mustNormalize(t, sampleResume), dict)

	assert.Equal(t, []string{"Professional Summary", "Work Experience", "Education", "Skills"}, segs.Headings())
}

func TestSplitDegradedMode(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	doc := mustNormalize(t, "just a wall of text with no headings at all\nmore text here")
	segs := Split(doc, dict)

	assert.True(t, segs.Degraded())

	// Every lookup falls back to the full document.
	text, ok := segs.Region(KindExperience)
	assert.True(t, ok)
	assert.Equal(t, doc.Text, text)

	text, fellBack := segs.RegionOrFull(KindSkills)
	assert.Equal(t, doc.Text, text)
	assert.False(t, fellBack, "degraded region lookups report found")
}

func TestSplitRegionOrFullFallback(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	doc := mustNormalize(t, "John Doe\n\nSkills\nPython and Go")
	segs := Split(doc, dict)

	require.False(t, segs.Degraded())

	_, ok := segs.Region(KindExperience)
	assert.False(t, ok)

	text, fellBack := segs.RegionOrFull(KindExperience)
	assert.True(t, fellBack)
	assert.Equal(t, doc.Text, text)
}

func TestHeadingMatcher(t *testing.T) {
	matcher := newHeadingMatcher(dictionary.MustLoadDefaults())

	tests := []struct {
		name     string
		line     string
		expected Kind
		matches  bool
	}{
		{"Plain heading", "Experience", KindExperience, true},
		{"Uppercase heading", "WORK EXPERIENCE", KindExperience, true},
		{"Trailing colon", "Skills:", KindSkills, true},
		{"Education", "Education", KindEducation, true},
		{"Summary synonym", "Objective", KindSummary, true},
		{"Body text with heading word", "I have ten years of industry experience overall", "", false},
		{"Blank line", "   ", "", false},
		{"Unknown short line", "Hobbies", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := matcher.Match(tt.line)
			assert.Equal(t, tt.matches, ok)
			if tt.matches {
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}
