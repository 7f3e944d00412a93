package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, Interval: time.Millisecond}
}

func TestUntilStopsOnDone(t *testing.T) {
	calls := 0
	err := Until(context.Background(), testPolicy(10), func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestUntilStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Until(context.Background(), testPolicy(10), func(ctx context.Context) (bool, error) {
		calls++
		if calls == 2 {
			return false, boom
		}
		return false, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestUntilExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Until(context.Background(), testPolicy(5), func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})

	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, 5, calls)
}

func TestUntilFirstAttemptDoesNotWait(t *testing.T) {
	policy := Policy{MaxAttempts: 1, Interval: time.Hour}

	start := time.Now()
	err := Until(context.Background(), policy, func(ctx context.Context) (bool, error) {
		return true, nil
	})

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestUntilHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := Until(ctx, Policy{MaxAttempts: 5, Interval: time.Hour}, func(ctx context.Context) (bool, error) {
		cancel()
		return false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()
	assert.Equal(t, 30, policy.MaxAttempts)
	assert.Equal(t, 10*time.Second, policy.Interval)
}
