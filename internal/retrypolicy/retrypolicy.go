// Package retrypolicy expresses the bounded fixed-delay retry the admin
// and security views apply to list loading. The policy is owned by the
// caller, never by the API client, which must not retry on its own.
package retrypolicy

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy is a bounded retry: MaxAttempts total attempts separated by a
// constant Delay. The zero value is invalid; use New.
type Policy struct {
	maxAttempts uint64
	delay       time.Duration
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation fails. maxAttempts counts
// the first attempt, so maxAttempts=2 means one retry.
func New(maxAttempts int, delay time.Duration) (Policy, error) {
	if maxAttempts < 1 {
		return Policy{}, errors.New("retry policy requires at least one attempt")
	}
	if delay <= 0 {
		return Policy{}, errors.New("retry policy delay must be positive")
	}
	return Policy{maxAttempts: uint64(maxAttempts), delay: delay}, nil
}

// Do runs fn until it succeeds, the attempt budget is spent, or ctx is
// done. Every failure is retryable except context cancellation; the last
// error is returned when the budget runs out.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(p.maxAttempts-1, retry.NewConstant(p.delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return retry.RetryableError(err)
	})
}
