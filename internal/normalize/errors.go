// Package normalize cleans raw extracted resume text into the normalized
// form consumed by every downstream pipeline stage.
package normalize

import "fmt"

// EmptyDocumentError is the only fatal per-request error in the pipeline:
// empty or whitespace-only text cannot meaningfully be scored, so the run
// halts before any later stage executes.
type EmptyDocumentError struct {
	Filename string
}

// Code is the stable error code surfaced to API callers
func (e *EmptyDocumentError) Code() string { return "EMPTY_DOCUMENT" }

func (e *EmptyDocumentError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("empty document: %s contains no analyzable text", e.Filename)
	}
	return "empty document: no analyzable text"
}
