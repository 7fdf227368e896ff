package types

import "github.com/go-playground/validator/v10"

// Priority orders suggestions from most to least urgent
type Priority string

// Suggestion priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (lower sorts first).
// Unknown priorities sink to the bottom.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Suggestion is a single improvement suggestion, either returned by the
// suggestion service or generated by the local fallback rules.
type Suggestion struct {
	Category  string   `json:"category" validate:"required,oneof=content formatting ats skills experience education"`
	Priority  Priority `json:"priority" validate:"required,oneof=high medium low"`
	Text      string   `json:"suggestion" validate:"required,min=1"`
	Rationale string   `json:"rationale,omitempty"`
	Examples  []string `json:"examples,omitempty"`
}

// Validate validates the Suggestion using the validator. Entries that fail
// validation are dropped by the orchestrator rather than propagated.
func (s *Suggestion) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
