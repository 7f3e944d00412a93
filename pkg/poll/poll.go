package poll

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted is returned when the policy's attempt cap is reached
// without the check function reporting a terminal state.
var ErrAttemptsExhausted = errors.New("poll: attempts exhausted")

// Policy describes a bounded fixed-interval polling schedule.
type Policy struct {
	MaxAttempts int
	Interval    time.Duration
}

// DefaultPolicy matches the deployment wait defaults: 30 attempts, 10 seconds apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 30, Interval: 10 * time.Second}
}

// CheckFunc inspects the polled resource once. It returns done=true when a
// terminal state was observed; a non-nil error is terminal regardless of done.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Until calls check once per attempt until it reports a terminal state, the
// policy is exhausted, or the context is cancelled. The interval sleep happens
// between attempts, so a first-attempt success never waits.
func Until(ctx context.Context, policy Policy, check CheckFunc) error {
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(policy.Interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return ErrAttemptsExhausted
}
