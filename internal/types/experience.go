package types

import "fmt"

// YearMonth is a calendar month resolved from a resume date expression.
// A zero YearMonth means the date was absent or unparsable.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12; 0 when only a year was given (treated as January)
}

// IsZero reports whether the date is unset
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0
}

// String formats the date as YYYY-MM
func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	month := ym.Month
	if month == 0 {
		month = 1
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, month)
}

// MonthsUntil returns the number of whole months between ym and end,
// counted exclusively: 2020-01 to 2020-02 is one month. Negative spans
// floor at zero.
func (ym YearMonth) MonthsUntil(end YearMonth) int {
	sm, em := ym.Month, end.Month
	if sm == 0 {
		sm = 1
	}
	if em == 0 {
		em = 1
	}
	months := (end.Year-ym.Year)*12 + (em - sm)
	if months < 0 {
		return 0
	}
	return months
}

// ExperienceEntry represents one job extracted from the experience section.
// Entries are ordered by start date descending. DurationMonths is always
// recomputed from the dates; an unset EndDate means the role is current and
// its duration is measured against the pipeline run timestamp.
type ExperienceEntry struct {
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	StartDate        YearMonth  `json:"start_date"`
	EndDate          *YearMonth `json:"end_date"` // nil = present
	DurationMonths   int        `json:"duration_months"`
	Location         string     `json:"location,omitempty"`
	Responsibilities []string   `json:"responsibilities"`
}

// Current reports whether the role is open-ended
func (e *ExperienceEntry) Current() bool {
	return e.EndDate == nil
}

// EducationEntry represents a degree extracted from the education section
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}
