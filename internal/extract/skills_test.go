package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestProficiencyThresholds(t *testing.T) {
	thresholds := DefaultProficiencyThresholds()

	assert.Equal(t, types.ProficiencyBeginner, thresholds.Level(1))
	assert.Equal(t, types.ProficiencyBeginner, thresholds.Level(2))
	assert.Equal(t, types.ProficiencyIntermediate, thresholds.Level(3))
	assert.Equal(t, types.ProficiencyIntermediate, thresholds.Level(4))
	assert.Equal(t, types.ProficiencyAdvanced, thresholds.Level(5))
	assert.Equal(t, types.ProficiencyAdvanced, thresholds.Level(12))
}

func TestExtractSkills(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	text := `Built services in Python and Go.
Python pipelines fed PostgreSQL. More Python tooling.
Python automation everywhere. Python again.
Strong leadership and communication.`

	skills := ExtractSkills(text, dict, DefaultProficiencyThresholds())
	byName := map[string]types.Skill{}
	for _, s := range skills {
		byName[s.Name] = s
	}

	python, ok := byName["Python"]
	require.True(t, ok)
	assert.Equal(t, 5, python.Count)
	assert.Equal(t, types.ProficiencyAdvanced, python.Proficiency)
	assert.Equal(t, types.CategoryProgrammingLanguage, python.Category)

	goSkill, ok := byName["Go"]
	require.True(t, ok)
	assert.Equal(t, 1, goSkill.Count)
	assert.Equal(t, types.ProficiencyBeginner, goSkill.Proficiency)

	leadership, ok := byName["Leadership"]
	require.True(t, ok)
	assert.True(t, leadership.IsSoft())

	_, ok = byName["Java"]
	assert.False(t, ok, "unmentioned skills are absent, not zero-count")
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	dict := dictionary.MustLoadDefaults()

	skills := ExtractSkills("PYTHON and python and Python", dict, DefaultProficiencyThresholds())

	require.Len(t, skills, 1, "case variants merge into one skill")
	assert.Equal(t, 3, skills[0].Count)
}

func TestExtractSkillsDeterministicOrder(t *testing.T) {
	dict := dictionary.MustLoadDefaults()
	text := "Kubernetes, Python, Docker, Go, PostgreSQL, Leadership"

	first := ExtractSkills(text, dict, DefaultProficiencyThresholds())
	second := ExtractSkills(text, dict, DefaultProficiencyThresholds())

	require.Equal(t, first, second)

	// Dictionary category order, not text order: languages precede tools.
	var names []string
	for _, s := range first {
		names = append(names, s.Name)
	}
	pythonIdx := indexOf(names, "Python")
	dockerIdx := indexOf(names, "Docker")
	require.GreaterOrEqual(t, pythonIdx, 0)
	require.GreaterOrEqual(t, dockerIdx, 0)
	assert.Less(t, pythonIdx, dockerIdx)
}

func TestExtractSkillsWholeWord(t *testing.T) {
	dict := dictionary.MustLoadDefaults()

	skills := ExtractSkills("worked at Google on search infrastructure", dict, DefaultProficiencyThresholds())
	for _, s := range skills {
		assert.NotEqual(t, "go", strings.ToLower(s.Name), "substring of Google must not match Go")
	}
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
