package experience

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// bulletPrefixes are the markers that introduce a responsibility line
var bulletPrefixes = []string{"• ", "- ", "* ", "· ", "○ ", "▪ "}

// Result holds the parsed entries plus the issues recorded for blocks
// that were dropped. Parsing failures are section-local: they never abort
// the pipeline.
type Result struct {
	Entries []types.ExperienceEntry
	Issues  []string
}

// Parse converts the experience region into ordered job entries. Blocks
// are anchored by date-range lines and blank lines; each block yields a
// title, company, date range, recomputed duration, and bullet
// responsibilities. Entries come back ordered by start date descending.
// The reference time `now` resolves open-ended durations.
func Parse(region string, now time.Time) Result {
	result := Result{Entries: []types.ExperienceEntry{}}

	blocks := splitBlocks(region)
	for _, block := range blocks {
		entry, err := parseBlock(block, now)
		if err != nil {
			result.Issues = append(result.Issues, err.Error())
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	// Most recent role first. Stable sort keeps document order for equal
	// start dates.
	sort.SliceStable(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i].StartDate, result.Entries[j].StartDate
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	return result
}

// TotalMonths sums the durations of all entries
func TotalMonths(entries []types.ExperienceEntry) int {
	total := 0
	for _, e := range entries {
		total += e.DurationMonths
	}
	return total
}

// splitBlocks divides the region into candidate job blocks. A new block
// starts at a blank line or at a date-range line, since resumes reliably
// put one date range per role.
func splitBlocks(region string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(region, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if looksLikeDateRange(trimmed) && blockHasDate(current) {
			flush()
		}
		current = append(current, trimmed)
	}
	flush()

	return blocks
}

// blockHasDate reports whether the block under construction already
// contains a date line, meaning a following date line starts a new role.
func blockHasDate(block []string) bool {
	for _, line := range block {
		if containsDate(line) {
			return true
		}
	}
	return false
}

// parseBlock extracts one job entry from a block of lines
func parseBlock(block string, now time.Time) (types.ExperienceEntry, error) {
	lines := strings.Split(block, "\n")

	start, end, found := findDates(lines)
	if !found {
		return types.ExperienceEntry{}, &UnparsableBlockError{Block: block, Reason: "no date range"}
	}

	title, company, location := titleAndCompany(lines)
	if title == "" {
		return types.ExperienceEntry{}, &UnparsableBlockError{Block: block, Reason: "no title line"}
	}

	entry := types.ExperienceEntry{
		Title:            title,
		Company:          company,
		Location:         location,
		StartDate:        start,
		EndDate:          end,
		Responsibilities: responsibilities(lines),
	}

	entry.DurationMonths = duration(start, end, now)
	return entry, nil
}

// findDates locates the first line containing a date and parses its range
func findDates(lines []string) (types.YearMonth, *types.YearMonth, bool) {
	for _, line := range lines {
		if !containsDate(line) {
			continue
		}
		return parseDateRange(line)
	}
	return types.YearMonth{}, nil, false
}

// titleAndCompany picks the title, company, and optional location from
// the non-date, non-bullet lines of a block. The first such line is the
// title; a "Title, Company" line splits on commas left-to-right (a third
// comma part is the location), otherwise the next line is the company
// candidate.
func titleAndCompany(lines []string) (title, company, location string) {
	var candidates []string
	for _, line := range lines {
		if containsDate(line) || isBullet(line) {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) == 2 {
			break
		}
	}

	if len(candidates) == 0 {
		return "", "", ""
	}

	parts := strings.SplitN(candidates[0], ",", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2]
	case 2:
		return parts[0], parts[1], ""
	}

	if len(candidates) == 2 {
		return candidates[0], candidates[1], ""
	}
	return candidates[0], "", ""
}

// responsibilities collects bullet-prefixed lines with markers stripped
func responsibilities(lines []string) []string {
	bullets := []string{}
	for _, line := range lines {
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(line, prefix) {
				text := strings.TrimSpace(strings.TrimPrefix(line, prefix))
				if text != "" {
					bullets = append(bullets, text)
				}
				break
			}
		}
	}
	return bullets
}

func isBullet(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// duration recomputes the entry duration in months. Open-ended roles are
// measured against the run timestamp; negative spans floor at zero.
func duration(start types.YearMonth, end *types.YearMonth, now time.Time) int {
	resolved := types.YearMonth{Year: now.Year(), Month: int(now.Month())}
	if end != nil {
		resolved = *end
	}
	return start.MonthsUntil(resolved)
}
