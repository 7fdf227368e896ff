package suggest

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// parseResponse converts a raw service response into validated
// suggestions. JSON responses are checked against the response schema
// and then per entry; invalid entries are dropped rather than propagated.
// Responses that are not JSON at all go through the numbered-text parser
// before the attempt is declared empty.
func parseResponse(raw string) []types.Suggestion {
	if err := schemas.ValidateSuggestionsResponse(raw); err == nil {
		var parsed []types.Suggestion
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return filterValid(parsed)
		}
	}
	return parseTextSuggestions(raw)
}

// filterValid keeps only suggestions that pass field validation
func filterValid(suggestions []types.Suggestion) []types.Suggestion {
	valid := make([]types.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		s.Category = strings.ToLower(strings.TrimSpace(s.Category))
		s.Priority = types.Priority(strings.ToLower(strings.TrimSpace(string(s.Priority))))
		if err := s.Validate(); err != nil {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

// parseTextSuggestions parses a plain-text response of numbered points
// ("1. Do X"), assigning medium priority and content category. It is the
// last resort for a service that ignored the JSON format instruction.
func parseTextSuggestions(text string) []types.Suggestion {
	var suggestions []types.Suggestion
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		suggestions = append(suggestions, types.Suggestion{
			Category: "content",
			Priority: types.PriorityMedium,
			Text:     strings.Join(current, " "),
		})
		current = nil
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if body, ok := numberedPoint(line); ok {
			flush()
			current = []string{body}
			continue
		}
		if len(current) > 0 {
			current = append(current, line)
		}
	}
	flush()

	return suggestions
}

// numberedPoint strips a leading "N." or "N)" marker, reporting whether
// the line started one.
func numberedPoint(line string) (string, bool) {
	if len(line) < 3 || line[0] < '1' || line[0] > '9' {
		return "", false
	}
	rest := line[1:]
	// Two-digit lists still count.
	if rest[0] >= '0' && rest[0] <= '9' {
		rest = rest[1:]
	}
	if len(rest) < 2 || (rest[0] != '.' && rest[0] != ')') {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

// sortByPriority orders suggestions high to low, preserving insertion
// order within a priority.
func sortByPriority(suggestions []types.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.Rank() < suggestions[j].Priority.Rank()
	})
}
