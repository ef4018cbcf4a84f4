package retry

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Defaults mirror the hosted model's documented guidance for 429 responses.
const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 1000 * time.Millisecond
)

// ErrRateLimited marks a failure as a rate-limit (HTTP 429) signal. Adapters
// wrap provider errors with it so the default classifier can recognise them.
var ErrRateLimited = errors.New("rate limited")

// Classifier reports whether err is a rate-limit signal that should be retried.
type Classifier func(err error) bool

// NotifyFunc is called before each backoff wait with the failed attempt
// number (1-based), the error and the delay about to be slept.
type NotifyFunc func(attempt int, err error, delay time.Duration)

// IsRateLimited is the default Classifier.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

type options struct {
	maxRetries   int
	initialDelay time.Duration
	classify     Classifier
	notify       NotifyFunc
}

// Option customises a call to Do.
type Option func(*options)

// WithMaxRetries sets how many retries follow the initial attempt.
// Negative values are treated as zero.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxRetries = n
	}
}

// WithInitialDelay sets the wait before the first retry. Each later wait is
// double the previous one.
func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		o.initialDelay = d
	}
}

// WithClassifier replaces the rate-limit predicate.
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classify = c
		}
	}
}

// WithNotify registers a callback invoked before every backoff wait.
func WithNotify(fn NotifyFunc) Option {
	return func(o *options) {
		o.notify = fn
	}
}

// Do invokes op and retries it while it fails with a rate-limit error.
//
// The first retry waits the initial delay and every subsequent retry doubles
// it. A non-rate-limit error is returned immediately without retrying. When
// retries are exhausted the last rate-limit error is returned unchanged, so
// callers can still match it with errors.Is. If ctx is cancelled during a
// wait, the context error is returned.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		maxRetries:   DefaultMaxRetries,
		initialDelay: DefaultInitialDelay,
		classify:     IsRateLimited,
	}
	for _, opt := range opts {
		opt(&o)
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		value, err := op(ctx)
		if err != nil && !o.classify(err) {
			return value, backoff.Permanent(err)
		}
		return value, err
	}

	var notify backoff.Notify
	if o.notify != nil {
		notify = func(err error, d time.Duration) {
			o.notify(attempt, err, d)
		}
	}

	return backoff.RetryNotifyWithData(operation, policy(ctx, o), notify)
}

// policy builds a deterministic doubling schedule bounded only by attempts.
func policy(ctx context.Context, o options) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = o.initialDelay
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	expo.MaxInterval = time.Duration(math.MaxInt64)
	expo.MaxElapsedTime = 0
	expo.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(o.maxRetries)), ctx)
}
