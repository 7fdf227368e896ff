package dictionary

import (
	"regexp"
	"strings"
	"sync"
)

// keywordPatterns caches compiled whole-word patterns per keyword. The
// dictionaries are fixed for the process lifetime, so the cache only
// grows to the dictionary size.
var keywordPatterns sync.Map // lowercase keyword -> *regexp.Regexp

// KeywordPattern returns a compiled case-sensitive pattern matching the
// lowercase keyword as a whole word. Keywords like "C++" or "CI/CD" end
// in non-word runes where \b does not apply, so the boundary is the
// neighbouring character class instead.
func KeywordPattern(keyword string) *regexp.Regexp {
	lower := strings.ToLower(keyword)
	if cached, ok := keywordPatterns.Load(lower); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(^|[^a-zA-Z0-9+#])` + regexp.QuoteMeta(lower) + `($|[^a-zA-Z0-9+#])`)
	keywordPatterns.Store(lower, re)
	return re
}

// CountOccurrences counts non-overlapping whole-word matches of keyword
// in textLower. The caller lowercases the text once; keywords are
// lowercased here.
func CountOccurrences(textLower, keyword string) int {
	re := KeywordPattern(keyword)
	count := 0
	offset := 0
	for offset < len(textLower) {
		loc := re.FindStringIndex(textLower[offset:])
		if loc == nil {
			break
		}
		count++
		// Step past the keyword but not the trailing boundary rune, so
		// adjacent matches ("go, go") are both counted.
		advance := loc[1] - 1
		if advance <= loc[0] {
			advance = loc[1]
		}
		offset += advance
	}
	return count
}
