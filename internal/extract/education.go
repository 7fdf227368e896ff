package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/segment"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// contextWindow is how many characters around a degree match are searched
// for the field of study, institution, and graduation year.
const contextWindow = 100

var (
	yearPattern        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	institutionMarkers = []string{"university", "college", "institute", "school", "academy", "polytechnic"}
)

// ExtractEducation finds degree entries in the education region. Each
// degree-type keyword match is expanded to a context window where the
// field of study, institution, and year are resolved heuristically.
// Duplicate degree+institution pairs collapse to one entry.
func ExtractEducation(segs *segment.Segments, dict *dictionary.Dictionary) []types.EducationEntry {
	region, ok := segs.Region(segment.KindEducation)
	if !ok {
		return []types.EducationEntry{}
	}

	entries := []types.EducationEntry{}
	seen := map[string]struct{}{}
	regionLower := strings.ToLower(region)

	for _, degree := range dict.DegreeTypes {
		pattern := dictionary.KeywordPattern(degree)
		loc := pattern.FindStringIndex(regionLower)
		if loc == nil {
			continue
		}

		start := loc[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextWindow
		if end > len(region) {
			end = len(region)
		}
		context := region[start:end]

		entry := types.EducationEntry{
			Degree:      degree,
			Field:       findField(context, dict),
			Institution: findInstitution(context),
			Year:        latestYear(context),
		}

		key := strings.ToLower(entry.Degree) + "/" + strings.ToLower(entry.Institution)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}

// findField returns the first known field of study mentioned in the context
func findField(context string, dict *dictionary.Dictionary) string {
	contextLower := strings.ToLower(context)
	for _, field := range dict.EducationFields {
		if strings.Contains(contextLower, strings.ToLower(field)) {
			return field
		}
	}
	return ""
}

// findInstitution returns the first line in the context containing an
// institution marker word. Lines truncated by the context window are still
// usable: the marker word is what matters.
func findInstitution(context string) string {
	for _, line := range strings.Split(context, "\n") {
		lower := strings.ToLower(line)
		for _, marker := range institutionMarkers {
			if strings.Contains(lower, marker) {
				return strings.TrimSpace(strings.Trim(line, ",-|"))
			}
		}
	}
	return ""
}

// latestYear returns the most recent 4-digit year in the context, or 0
func latestYear(context string) int {
	latest := 0
	for _, match := range yearPattern.FindAllString(context, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if year > latest {
			latest = year
		}
	}
	return latest
}
