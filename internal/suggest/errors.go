// Package suggest orchestrates improvement-suggestion generation: it
// builds a prompt from the structured analysis, calls the external
// suggestion service with retry and backoff, and falls back to a
// deterministic local generator when the service is disabled or
// unavailable.
package suggest

import "fmt"

// ServiceError represents a suggestion-service failure. Retryable
// failures (timeouts, 5xx, rate limits) go through the backoff loop;
// fatal ones (auth, malformed request) drop straight to the fallback
// generator. Either way the caller still receives suggestions: a service
// outage never fails the pipeline.
type ServiceError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("suggestion service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("suggestion service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
