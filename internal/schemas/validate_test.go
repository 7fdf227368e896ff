package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuggestionsResponse(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			"Valid response",
			`[{"category": "content", "priority": "high", "suggestion": "Add metrics"}]`,
			false,
		},
		{
			"Valid with optional fields",
			`[{"category": "ats", "priority": "low", "suggestion": "x", "rationale": "y", "examples": ["a", "b"]}]`,
			false,
		},
		{"Empty array", `[]`, false},
		{"Not an array", `{"category": "content"}`, true},
		{"Missing required field", `[{"category": "content", "priority": "high"}]`, true},
		{"Wrong field type", `[{"category": 1, "priority": "high", "suggestion": "x"}]`, true},
		{"Not JSON", `suggestions: none`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuggestionsResponse(tt.json)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := ValidateSuggestionsResponse(`[{"category": "content", "priority": "high"}]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %T", err)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "suggestion")
}
