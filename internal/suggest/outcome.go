package suggest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// outcomeKind is the explicit result of one service call attempt. The
// retry loop is a small state machine over these values, which keeps the
// retry-count and fallback-trigger conditions independently testable.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeRetryable
	outcomeFatal
)

// outcome pairs an attempt's kind with its raw response or error
type outcome struct {
	kind outcomeKind
	raw  string
	err  error
}

// classify maps a call error to an outcome kind. Timeouts, rate limits,
// and server-side failures are transient; auth and malformed-request
// failures are not worth retrying.
func classify(raw string, err error) outcome {
	if err == nil {
		return outcome{kind: outcomeSuccess, raw: raw}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return outcome{kind: outcomeRetryable, err: err}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= 500:
			return outcome{kind: outcomeRetryable, err: err}
		default:
			return outcome{kind: outcomeFatal, err: err}
		}
	}

	// Providers do not always surface structured errors; fall back to
	// message sniffing for the transient signals.
	msg := strings.ToLower(err.Error())
	for _, signal := range []string{"rate limit", "quota", "unavailable", "overloaded", "timeout", "deadline", "connection reset", "internal error"} {
		if strings.Contains(msg, signal) {
			return outcome{kind: outcomeRetryable, err: err}
		}
	}

	return outcome{kind: outcomeFatal, err: err}
}
