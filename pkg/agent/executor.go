package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Executor wraps one agent invocation with retry. It knows nothing about
// stages; it retries any non-cancellation error with exponential back-off.
type Executor struct {
	maxRetries uint64
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// NewExecutor creates an Executor. maxRetries counts retries, not attempts:
// 2 retries means 3 attempts total.
func NewExecutor(maxRetries int, baseDelay, maxDelay time.Duration) *Executor {
	return &Executor{
		maxRetries: uint64(maxRetries),
		baseDelay:  baseDelay,
		maxDelay:   maxDelay,
	}
}

// Execute runs the agent, retrying on failure. Context cancellation aborts
// the retry loop immediately and propagates the cancellation error.
func (e *Executor) Execute(ctx context.Context, a Agent, task string, tools *ToolSet) (*Result, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.baseDelay
	bo.MaxInterval = e.maxDelay
	// Deterministic base * 2^n, capped at maxDelay.
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, e.maxRetries), ctx)

	var result *Result
	attempt := 0
	op := func() error {
		attempt++
		r, err := a.Run(ctx, task, tools)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			slog.Warn("Agent invocation failed", "attempt", attempt, "error", err)
			return err
		}
		result = r
		return nil
	}
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return result, nil
}
