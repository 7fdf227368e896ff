// Package segment splits normalized resume text into labeled regions
// (experience, education, skills, summary) using heading heuristics.
package segment

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/normalize"
)

// Kind identifies a canonical section of a resume
type Kind string

// Canonical section kinds. KindHeader is the implicit region before the
// first recognized heading, used for contact extraction.
const (
	KindHeader     Kind = "header"
	KindSummary    Kind = "summary"
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
	KindSkills     Kind = "skills"
	KindProjects   Kind = "projects"
	KindOther      Kind = "other"
)

// Region is one labeled slice of the document
type Region struct {
	Kind      Kind
	Heading   string // the heading line as written, empty for the header region
	Text      string
	StartLine int // inclusive, into DocumentText.Lines
	EndLine   int // exclusive
}

// Segments is the result of segmentation. When no heading was recognized
// the segmenter runs in degraded mode: every lookup falls back to the full
// document so downstream extractors still operate.
type Segments struct {
	doc      *normalize.DocumentText
	regions  []Region
	degraded bool
}

// Split segments the document. It never fails: an unrecognizable layout
// produces a degraded single-region result rather than an error.
func Split(doc *normalize.DocumentText, dict *dictionary.Dictionary) *Segments {
	matcher := newHeadingMatcher(dict)

	var regions []Region
	current := Region{Kind: KindHeader, StartLine: 0}
	sawHeading := false

	for i, line := range doc.Lines {
		kind, ok := matcher.Match(line)
		if !ok {
			continue
		}
		sawHeading = true
		current.EndLine = i
		current.Text = joinLines(doc.Lines[current.StartLine:i])
		regions = append(regions, current)
		current = Region{Kind: kind, Heading: strings.TrimSpace(line), StartLine: i + 1}
	}

	current.EndLine = len(doc.Lines)
	current.Text = joinLines(doc.Lines[current.StartLine:])
	regions = append(regions, current)

	if !sawHeading {
		return &Segments{doc: doc, regions: regions, degraded: true}
	}
	return &Segments{doc: doc, regions: regions}
}

// Degraded reports whether no headings were recognized and the whole
// document is being treated as a single unlabeled region.
func (s *Segments) Degraded() bool {
	return s.degraded
}

// Region returns the combined text of all regions of the given kind. In
// degraded mode every kind resolves to the full document text. The second
// return is false when the section was not found (degraded lookups report
// found, since the caller does get usable text).
func (s *Segments) Region(kind Kind) (string, bool) {
	if s.degraded {
		return s.doc.Text, true
	}
	var parts []string
	for _, r := range s.regions {
		if r.Kind == kind && strings.TrimSpace(r.Text) != "" {
			parts = append(parts, r.Text)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n\n"), true
}

// RegionOrFull returns the region text, falling back to the full document
// when the section is missing. The bool reports whether the fallback was
// taken, so callers can record a degraded-mode issue.
func (s *Segments) RegionOrFull(kind Kind) (string, bool) {
	if text, ok := s.Region(kind); ok {
		return text, false
	}
	return s.doc.Text, true
}

// Header returns the implicit header region (text before the first
// recognized heading).
func (s *Segments) Header() string {
	text, _ := s.Region(KindHeader)
	return text
}

// Headings returns the heading lines that were recognized, in document order
func (s *Segments) Headings() []string {
	var headings []string
	for _, r := range s.regions {
		if r.Heading != "" {
			headings = append(headings, r.Heading)
		}
	}
	return headings
}

// Kinds returns the set of section kinds that were recognized
func (s *Segments) Kinds() map[Kind]bool {
	kinds := make(map[Kind]bool, len(s.regions))
	for _, r := range s.regions {
		if r.Kind != KindHeader {
			kinds[r.Kind] = true
		}
	}
	return kinds
}

// Document returns the underlying normalized document
func (s *Segments) Document() *normalize.DocumentText {
	return s.doc
}

func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
