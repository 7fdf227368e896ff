// Package experience parses the experience region of a resume into an
// ordered sequence of job entries.
package experience

import "fmt"

// UnparsableBlockError records a candidate job block that could not be
// parsed. It is recoverable: the block is dropped and parsing continues,
// with the failure surfaced as an issue on the experience section score.
type UnparsableBlockError struct {
	Block  string
	Reason string
}

func (e *UnparsableBlockError) Error() string {
	preview := e.Block
	if len(preview) > 60 {
		preview = preview[:60] + "..."
	}
	return fmt.Sprintf("unparsable experience block (%s): %q", e.Reason, preview)
}
