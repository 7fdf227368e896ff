// Package dictionary provides the static extraction dictionaries used by
// the analysis pipeline. Dictionaries are loaded once at process start,
// either from the embedded defaults or from a JSON file override, and are
// read-only afterwards.
package dictionary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed defaults.json
var defaultsJSON []byte

// SkillCategory is one named group of skill keywords. Category order in the
// dictionary file fixes extraction order, which keeps results deterministic.
type SkillCategory struct {
	Name        types.SkillCategory `json:"name"`
	DisplayName string              `json:"display_name"`
	Keywords    []string            `json:"keywords"`
}

// Dictionary holds every keyword list the pipeline matches against
type Dictionary struct {
	Version          string          `json:"version"`
	SkillCategories  []SkillCategory `json:"skill_categories"`
	ActionVerbs      []string        `json:"action_verbs"`
	WeakVerbs        []string        `json:"weak_verbs"`
	DegreeTypes      []string        `json:"degree_types"`
	EducationFields  []string        `json:"education_fields"`
	SectionHeadings  []string        `json:"section_headings"`
	StandardHeadings []string        `json:"standard_headings"`

	actionVerbSet map[string]struct{}
}

// Load returns the dictionary from path, or the embedded defaults when path
// is empty. A missing or corrupt file is a configuration error: the process
// must not start without its dictionaries.
func Load(path string) (*Dictionary, error) {
	data := defaultsJSON
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to read dictionary file %s", path), Cause: err}
		}
		data = fileData
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, &LoadError{Message: "failed to parse dictionary JSON", Cause: err}
	}

	if err := dict.validate(); err != nil {
		return nil, err
	}

	dict.actionVerbSet = make(map[string]struct{}, len(dict.ActionVerbs))
	for _, verb := range dict.ActionVerbs {
		dict.actionVerbSet[strings.ToLower(verb)] = struct{}{}
	}

	return &dict, nil
}

// MustLoadDefaults loads the embedded defaults, panicking on failure.
// The embedded file is part of the binary, so a failure here is a build
// defect rather than a runtime condition.
func MustLoadDefaults() *Dictionary {
	dict, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded dictionary is invalid: %v", err))
	}
	return dict
}

func (d *Dictionary) validate() error {
	if len(d.SkillCategories) == 0 {
		return &LoadError{Message: "dictionary has no skill categories"}
	}
	for _, cat := range d.SkillCategories {
		if len(cat.Keywords) == 0 {
			return &LoadError{Message: fmt.Sprintf("skill category %q has no keywords", cat.Name)}
		}
	}
	if len(d.ActionVerbs) == 0 {
		return &LoadError{Message: "dictionary has no action verbs"}
	}
	if len(d.SectionHeadings) == 0 {
		return &LoadError{Message: "dictionary has no section headings"}
	}
	return nil
}

// IsActionVerb reports whether word is a known action verb (case-insensitive)
func (d *Dictionary) IsActionVerb(word string) bool {
	_, ok := d.actionVerbSet[strings.ToLower(word)]
	return ok
}

// HasWeakVerbPrefix reports whether text opens with a known weak phrase
// such as "responsible for" or "helped with". Weak phrases are multi-word,
// so this is a prefix match rather than a set lookup.
func (d *Dictionary) HasWeakVerbPrefix(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, phrase := range d.WeakVerbs {
		if strings.HasPrefix(lower, phrase) {
			return true
		}
	}
	return false
}

// AllSkillKeywords returns every skill keyword across categories, in
// dictionary order.
func (d *Dictionary) AllSkillKeywords() []string {
	var keywords []string
	for _, cat := range d.SkillCategories {
		keywords = append(keywords, cat.Keywords...)
	}
	return keywords
}
