package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain JSON untouched", `{"a": 1}`, `{"a": 1}`},
		{"JSON fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Generic fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Fence with language id", "```javascript\n[1, 2]\n```", "[1, 2]"},
		{"Surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
		{"Unclosed fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
