package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSkills(t *testing.T) {
	skills := []Skill{
		{Name: "Python", Category: CategoryProgrammingLanguage, Count: 5},
		{Name: "Leadership", Category: CategorySoftSkill, Count: 2},
		{Name: "Django", Category: CategoryFramework, Count: 3},
		{Name: "Communication", Category: CategorySoftSkill, Count: 1},
	}

	groups := GroupSkills(skills)

	require.Len(t, groups.Technical, 2)
	require.Len(t, groups.Soft, 2)
	assert.Equal(t, "Python", groups.Technical[0].Name, "input order preserved")
	assert.Equal(t, "Django", groups.Technical[1].Name)
	assert.Equal(t, "Leadership", groups.Soft[0].Name)
	assert.Len(t, groups.Categories[CategorySoftSkill], 2)
	assert.Len(t, groups.Categories[CategoryProgrammingLanguage], 1)
}

func TestSkillKey(t *testing.T) {
	a := Skill{Name: "Python", Category: CategoryProgrammingLanguage}
	b := Skill{Name: "PYTHON", Category: CategoryProgrammingLanguage}
	c := Skill{Name: "python", Category: CategoryTool}

	assert.Equal(t, a.Key(), b.Key(), "keys are case-insensitive on name")
	assert.NotEqual(t, a.Key(), c.Key(), "keys differ across categories")
}

func TestNewAnalysisResultSerializesAllKeys(t *testing.T) {
	result := NewAnalysisResult()

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"analysis_id", "sections", "skills", "experience", "education", "ai_suggestions", "ats_recommendations", "analysis"} {
		assert.Contains(t, decoded, key)
		assert.NotNil(t, decoded[key], "collection %s must not serialize as null", key)
	}
}

