package retry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/prepwise-api/internal/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyOp fails with failErr for the first failures calls, then returns "ok".
type flakyOp struct {
	failures int
	failErr  error
	calls    int
}

func (f *flakyOp) run(ctx context.Context) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.failErr
	}
	return "ok", nil
}

func rateLimitErr() error {
	return fmt.Errorf("provider said 429: %w", retry.ErrRateLimited)
}

func TestDo_SucceedsAfterRateLimits(t *testing.T) {
	t.Parallel()

	const initial = 10 * time.Millisecond
	op := &flakyOp{failures: 2, failErr: rateLimitErr()}

	var delays []time.Duration
	var attempts []int
	start := time.Now()

	got, err := retry.Do(context.Background(), op.run,
		retry.WithInitialDelay(initial),
		retry.WithNotify(func(attempt int, err error, d time.Duration) {
			attempts = append(attempts, attempt)
			delays = append(delays, d)
		}),
	)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, op.calls, "k failures should produce k+1 invocations")
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Equal(t, []time.Duration{initial, 2 * initial}, delays, "delays should double without jitter")
	assert.GreaterOrEqual(t, elapsed, 3*initial, "total wait should be initial + 2*initial")
}

func TestDo_ExhaustsRetries(t *testing.T) {
	t.Parallel()

	op := &flakyOp{failures: 100, failErr: rateLimitErr()}

	var delays []time.Duration
	_, err := retry.Do(context.Background(), op.run,
		retry.WithInitialDelay(time.Millisecond),
		retry.WithNotify(func(_ int, _ error, d time.Duration) {
			delays = append(delays, d)
		}),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrRateLimited, "the last rate-limit error is propagated unchanged")
	assert.Equal(t, retry.DefaultMaxRetries+1, op.calls)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, delays)
}

func TestDo_CustomMaxRetries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		maxRetries int
		wantCalls  int
	}{
		{maxRetries: 0, wantCalls: 1},
		{maxRetries: 1, wantCalls: 2},
		{maxRetries: 5, wantCalls: 6},
		{maxRetries: -1, wantCalls: 1},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("max_%d", tc.maxRetries), func(t *testing.T) {
			op := &flakyOp{failures: 100, failErr: rateLimitErr()}
			_, err := retry.Do(context.Background(), op.run,
				retry.WithMaxRetries(tc.maxRetries),
				retry.WithInitialDelay(time.Microsecond),
			)
			require.Error(t, err)
			assert.Equal(t, tc.wantCalls, op.calls)
		})
	}
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	t.Parallel()

	boom := errors.New("invalid argument")
	op := &flakyOp{failures: 1, failErr: boom}

	notified := false
	_, err := retry.Do(context.Background(), op.run,
		retry.WithInitialDelay(time.Millisecond),
		retry.WithNotify(func(int, error, time.Duration) { notified = true }),
	)

	assert.Same(t, boom, err, "non-rate-limit errors propagate unchanged")
	assert.Equal(t, 1, op.calls)
	assert.False(t, notified)
}

func TestDo_CustomClassifier(t *testing.T) {
	t.Parallel()

	busy := errors.New("busy")
	op := &flakyOp{failures: 1, failErr: busy}

	got, err := retry.Do(context.Background(), op.run,
		retry.WithInitialDelay(time.Millisecond),
		retry.WithClassifier(func(err error) bool { return errors.Is(err, busy) }),
	)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, op.calls)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	op := &flakyOp{failures: 100, failErr: rateLimitErr()}

	_, err := retry.Do(ctx, op.run,
		retry.WithInitialDelay(time.Hour),
		retry.WithNotify(func(int, error, time.Duration) { cancel() }),
	)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.calls)
}
