// Package dictionary provides the static extraction dictionaries used by the analysis pipeline.
package dictionary

import "fmt"

// LoadError represents a failure to load or parse a dictionary file.
// Dictionary loading happens at process start, so this error is fatal and
// never surfaces per-request.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
