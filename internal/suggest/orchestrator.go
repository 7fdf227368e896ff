package suggest

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Config holds the orchestrator's retry and timeout policy
type Config struct {
	Enabled        bool          `json:"enabled"`
	MaxRetries     int           `json:"max_retries"`     // retries after the initial attempt
	BaseBackoff    time.Duration `json:"base_backoff"`    // first retry delay; doubles per retry
	MaxBackoff     time.Duration `json:"max_backoff"`     // backoff cap
	RequestTimeout time.Duration `json:"request_timeout"` // per-attempt timeout
}

// DefaultConfig returns the default retry policy
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		MaxRetries:     3,
		BaseBackoff:    time.Second,
		MaxBackoff:     8 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// Orchestrator generates suggestions through the external service with a
// local deterministic fallback. A nil client behaves as disabled.
type Orchestrator struct {
	client llm.Client
	cfg    Config
}

// New creates an orchestrator. client may be nil when the service is
// disabled by configuration.
func New(client llm.Client, cfg Config) *Orchestrator {
	return &Orchestrator{client: client, cfg: cfg}
}

// Result carries the suggestions plus where they came from, so callers
// can log degraded runs without inspecting the content.
type Result struct {
	Suggestions []types.Suggestion
	FromService bool
}

// Generate returns prioritized suggestions for the analyzed resume. The
// only error it returns is context cancellation: service failures retry
// with exponential backoff and then fall back to the local generator, so
// a service outage never fails the pipeline or yields an empty list.
func (o *Orchestrator) Generate(ctx context.Context, facts Facts) (Result, error) {
	if !o.cfg.Enabled || o.client == nil {
		return Result{Suggestions: FallbackSuggestions(facts)}, nil
	}

	suggestions, err := o.callWithRetry(ctx, facts)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		log.Printf("suggestion service unavailable, using local fallback: %v", err)
		return Result{Suggestions: FallbackSuggestions(facts)}, nil
	}

	sortByPriority(suggestions)
	return Result{Suggestions: suggestions, FromService: true}, nil
}

// callWithRetry drives the attempt state machine: one initial call plus
// up to MaxRetries retries on transient failures, with doubling capped
// backoff between attempts. Cancellation is honored mid-backoff.
func (o *Orchestrator) callWithRetry(ctx context.Context, facts Facts) ([]types.Suggestion, error) {
	system, user := buildPrompt(facts)

	var lastErr error
	delay := o.cfg.BaseBackoff

	for attempt := 0; attempt <= o.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
			if delay > o.cfg.MaxBackoff {
				delay = o.cfg.MaxBackoff
			}
		}

		raw, err := o.callOnce(ctx, system, user)
		result := classify(raw, err)

		switch result.kind {
		case outcomeSuccess:
			if suggestions := parseResponse(result.raw); len(suggestions) > 0 {
				return suggestions, nil
			}
			// A well-formed but empty or unusable response is not worth
			// retrying; the fallback is strictly better.
			return nil, &ServiceError{Message: "service returned no usable suggestions"}
		case outcomeRetryable:
			lastErr = result.err
		case outcomeFatal:
			return nil, &ServiceError{Message: "non-retryable service failure", Cause: result.err}
		}
	}

	return nil, &ServiceError{Message: "retries exhausted", Cause: lastErr, Retryable: true}
}

// callOnce performs a single bounded service call
func (o *Orchestrator) callOnce(ctx context.Context, system, user string) (string, error) {
	callCtx := ctx
	if o.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.cfg.RequestTimeout)
		defer cancel()
	}
	return o.client.GenerateJSON(callCtx, system, user)
}

// sleepCtx waits for d or until the context is cancelled
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
