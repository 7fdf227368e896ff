// Package extract identifies contact details, skills, and education from
// segmented resume text using the static extraction dictionaries.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/segment"
)

// Contact holds the contact details found in the document header
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

// ExtractContact finds email, phone, and a candidate name. Email and
// phone are matched across the full text; the name heuristic only looks at
// the header region, where the first line of two to four capitalized
// tokens is taken as the name.
func ExtractContact(segs *segment.Segments) Contact {
	fullText := segs.Document().Text

	contact := Contact{
		Email: emailPattern.FindString(fullText),
		Phone: phonePattern.FindString(fullText),
	}

	for _, line := range strings.Split(segs.Header(), "\n") {
		if name, ok := nameCandidate(line); ok {
			contact.Name = name
			break
		}
	}

	return contact
}

// nameCandidate reports whether a line looks like a person's name: two to
// four tokens, each starting with an uppercase letter, and no digits or
// contact punctuation.
func nameCandidate(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.ContainsAny(trimmed, "@/:0123456789") {
		return "", false
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 || len(tokens) > 4 {
		return "", false
	}
	for _, tok := range tokens {
		runes := []rune(tok)
		if !unicode.IsUpper(runes[0]) {
			return "", false
		}
	}
	return trimmed, true
}
