package segment

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
)

// maxHeadingTokens is the longest line, in words, still treated as a
// heading candidate. Resume headings are short; anything longer is body
// text even if it happens to contain a heading word.
const maxHeadingTokens = 4

// headingRule maps a heading vocabulary phrase to a canonical section
// kind. Rules are evaluated in order and the first match wins, so more
// specific phrases ("work experience") must precede their prefixes where
// ambiguity exists.
type headingRule struct {
	Name   string
	Phrase string
	Kind   Kind
}

// canonicalKinds maps vocabulary phrases to section kinds. Phrases not
// listed here (certifications, awards) fall into KindOther: they end the
// preceding region without starting a region any extractor consumes.
var canonicalKinds = map[string]Kind{
	"experience":              KindExperience,
	"work experience":         KindExperience,
	"work history":            KindExperience,
	"employment":              KindExperience,
	"employment history":      KindExperience,
	"professional experience": KindExperience,
	"education":               KindEducation,
	"academic background":     KindEducation,
	"qualifications":          KindEducation,
	"skills":                  KindSkills,
	"technical skills":        KindSkills,
	"core competencies":       KindSkills,
	"summary":                 KindSummary,
	"professional summary":    KindSummary,
	"objective":               KindSummary,
	"profile":                 KindSummary,
	"projects":                KindProjects,
}

// headingMatcher matches lines against an ordered rule list built from the
// dictionary's heading vocabulary. Precedence is explicit (longest phrase
// first, then dictionary order) so tie-breaks are testable rather than an
// accident of regex engine order.
type headingMatcher struct {
	rules []headingRule
}

func newHeadingMatcher(dict *dictionary.Dictionary) *headingMatcher {
	rules := make([]headingRule, 0, len(dict.SectionHeadings))
	for _, phrase := range dict.SectionHeadings {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		kind, ok := canonicalKinds[normalized]
		if !ok {
			kind = KindOther
		}
		rules = append(rules, headingRule{
			Name:   strings.ReplaceAll(normalized, " ", "-"),
			Phrase: normalized,
			Kind:   kind,
		})
	}

	// Longest phrase first; equal lengths keep dictionary order. Stable
	// insertion sort keeps this dependency-free and deterministic.
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && len(rules[j].Phrase) > len(rules[j-1].Phrase); j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}

	return &headingMatcher{rules: rules}
}

// Match reports whether the line is a recognized section heading and, if
// so, which canonical kind it introduces. A heading is a short line whose
// text (ignoring case and a trailing colon) equals a vocabulary phrase.
func (m *headingMatcher) Match(line string) (Kind, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)

	if len(strings.Fields(trimmed)) > maxHeadingTokens {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range m.rules {
		if lower == rule.Phrase {
			return rule.Kind, true
		}
	}
	return "", false
}
