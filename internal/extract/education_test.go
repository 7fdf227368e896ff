package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	segs := segmentText(t, `John Doe

Education
Bachelor of Science in Computer Science
State University, 2014`)

	entries := ExtractEducation(segs, testDict(t))

	require.NotEmpty(t, entries)
	entry := entries[0]
	assert.Equal(t, "Bachelor", entry.Degree)
	assert.Equal(t, "Computer Science", entry.Field)
	assert.Contains(t, entry.Institution, "State University")
	assert.Equal(t, 2014, entry.Year)
}

func TestExtractEducationNoRegion(t *testing.T) {
	segs := segmentText(t, `John Doe

Experience
Engineer at Acme with a Bachelor degree`)

	entries := ExtractEducation(segs, testDict(t))
	assert.Empty(t, entries, "education extraction only reads the education region")
}

func TestExtractEducationDeduplicates(t *testing.T) {
	segs := segmentText(t, `John Doe

Education
MBA, Business Administration, Trade School, 2019
MBA program highlights`)

	entries := ExtractEducation(segs, testDict(t))

	count := 0
	for _, e := range entries {
		if e.Degree == "MBA" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate degree+institution pairs collapse")
}

func TestLatestYear(t *testing.T) {
	assert.Equal(t, 2021, latestYear("2014 to 2021"))
	assert.Equal(t, 0, latestYear("no years here"))
	assert.Equal(t, 0, latestYear("room 12345 is not a year"))
}
