package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	system, err := Get("suggestions.json", "system")
	require.NoError(t, err)
	assert.NotEmpty(t, system)

	user, err := Get("suggestions.json", "generate_suggestions")
	require.NoError(t, err)
	assert.NotEmpty(t, user)
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("suggestions.json", "no_such_key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_key")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "system")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("suggestions.json", "no_such_key") })
	assert.NotPanics(t, func() { MustGet("suggestions.json", "system") })
}

func TestFormat(t *testing.T) {
	template := "Score: {{.Score}}. Role: {{.Role}}. Score again: {{.Score}}"
	result := Format(template, map[string]string{"Score": "82", "Role": "backend"})

	assert.Equal(t, "Score: 82. Role: backend. Score again: 82", result)
	assert.False(t, strings.Contains(result, "{{."))
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}
