package retry

import (
	"context"
	"time"

	backoff "github.com/sethvargo/go-retry"
)

// Policy describes a bounded exponential backoff: the delay starts at
// InitialDelay, doubles each attempt, and never exceeds MaxDelay.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultPolicy matches the startup connection loop: 10 attempts,
// 1s initial delay, capped at 10s per attempt.
var DefaultPolicy = Policy{
	MaxAttempts:  10,
	InitialDelay: 1 * time.Second,
	MaxDelay:     10 * time.Second,
}

// Do runs op until it succeeds or the policy is exhausted. onRetry is
// invoked with the error before each backoff sleep; it may be nil.
// The error from the final attempt is returned on exhaustion.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error, onRetry func(err error)) error {
	b := backoff.NewExponential(p.InitialDelay)
	b = backoff.WithCappedDuration(p.MaxDelay, b)
	// WithMaxRetries counts retries after the first attempt.
	b = backoff.WithMaxRetries(uint64(p.MaxAttempts-1), b)

	return backoff.Do(ctx, b, func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			if onRetry != nil {
				onRetry(err)
			}
			return backoff.RetryableError(err)
		}
		return nil
	})
}
