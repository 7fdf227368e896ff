package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DocumentText is the normalized document every downstream stage reads.
// It is produced once per run and never mutated.
type DocumentText struct {
	Text     string
	Lines    []string
	Metadata types.SourceMetadata
}

var multiSpace = regexp.MustCompile(`[ \t]+`)

// Normalize cleans raw extracted text: line endings, control characters,
// collapsed whitespace, and capped blank runs. Paragraph boundaries (a
// single blank line) are preserved because the segmenter relies on them.
// Empty or whitespace-only input returns an *EmptyDocumentError.
func Normalize(raw string, meta types.SourceMetadata) (*DocumentText, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &EmptyDocumentError{Filename: meta.Filename}
	}

	// Normalize line endings (CRLF and bare CR become LF); page-break
	// markers from PDF extraction become paragraph boundaries.
	content := strings.ReplaceAll(raw, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\f", "\n\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankRuns(result)
	result = strings.TrimSpace(result)

	if result == "" {
		return nil, &EmptyDocumentError{Filename: meta.Filename}
	}

	return &DocumentText{
		Text:     result,
		Lines:    strings.Split(result, "\n"),
		Metadata: meta,
	}, nil
}

// cleanLine strips control characters and collapses runs of spaces and
// tabs within a single line.
func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r == '\t' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return ""
	}
	return multiSpace.ReplaceAllString(cleaned, " ")
}

// collapseBlankRuns reduces two or more consecutive blank lines to one,
// so a single blank line always means one section break.
func collapseBlankRuns(content string) string {
	re := regexp.MustCompile(`\n\n\n*`)
	return re.ReplaceAllString(content, "\n\n")
}
