package experience

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// datePattern is one named date format rule. Rules are tried in order and
// the first match wins, which makes the precedence between overlapping
// formats ("Jan 2020" vs bare "2020") explicit and testable.
type datePattern struct {
	Name  string
	Re    *regexp.Regexp
	Parse func(match []string) types.YearMonth
}

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var datePatterns = []datePattern{
	{
		Name: "month-name-year", // "Jan 2020", "January 2020"
		Re:   regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+((19|20)\d{2})\b`),
		Parse: func(m []string) types.YearMonth {
			year, _ := strconv.Atoi(m[2])
			return types.YearMonth{Year: year, Month: monthNames[strings.ToLower(m[1])]}
		},
	},
	{
		Name: "numeric-month-year", // "01/2020", "1/2020"
		Re:   regexp.MustCompile(`\b(0?[1-9]|1[0-2])/((19|20)\d{2})\b`),
		Parse: func(m []string) types.YearMonth {
			month, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[2])
			return types.YearMonth{Year: year, Month: month}
		},
	},
	{
		Name: "year-only", // "2020"
		Re:   regexp.MustCompile(`\b((19|20)\d{2})\b`),
		Parse: func(m []string) types.YearMonth {
			year, _ := strconv.Atoi(m[1])
			return types.YearMonth{Year: year}
		},
	},
}

var (
	presentPattern   = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
	anyDateIndicator = regexp.MustCompile(`(?i)\b((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}|(0?[1-9]|1[0-2])/(19|20)\d{2}|(19|20)\d{2})\b`)
)

// parseDate resolves a single date expression to a year-month. The bool
// reports whether any pattern matched.
func parseDate(text string) (types.YearMonth, bool) {
	for _, pattern := range datePatterns {
		if m := pattern.Re.FindStringSubmatch(text); m != nil {
			return pattern.Parse(m), true
		}
	}
	return types.YearMonth{}, false
}

// parseDateRange extracts a start and end date from a line. The first
// date found is the start; a second date becomes the end, and an open-end
// marker ("present", "current") leaves the end nil. The bool reports
// whether a start date was found.
func parseDateRange(line string) (types.YearMonth, *types.YearMonth, bool) {
	matches := anyDateIndicator.FindAllString(line, -1)
	if len(matches) == 0 {
		return types.YearMonth{}, nil, false
	}

	start, ok := parseDate(matches[0])
	if !ok {
		return types.YearMonth{}, nil, false
	}

	if len(matches) >= 2 {
		if end, endOK := parseDate(matches[1]); endOK {
			return start, &end, true
		}
	}
	return start, nil, true
}

// containsDate reports whether a line contains any recognizable date
func containsDate(line string) bool {
	return anyDateIndicator.MatchString(line)
}

// looksLikeDateRange reports whether a line contains a date range or a
// date plus an open-end marker, which anchors a new job block.
func looksLikeDateRange(line string) bool {
	matches := anyDateIndicator.FindAllString(line, -1)
	if len(matches) >= 2 {
		return true
	}
	return len(matches) == 1 && presentPattern.MatchString(line)
}
