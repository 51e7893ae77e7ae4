// Package retry runs a fallible operation with exponential backoff and jitter.
// It knows nothing about what it retries: the caller decides which errors are
// worth another attempt.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultAttempts     = 3
	defaultInitialDelay = 100 * time.Millisecond
	defaultMaxDelay     = 2 * time.Second
	defaultMultiplier   = 2.0
	defaultJitter       = 0.5
)

// ErrInvalidAttempts is returned when fewer than one attempt is configured.
var ErrInvalidAttempts = errors.New("attempts must be positive")

// Observer is called after every failed attempt that will be retried.
// attempt is 1-based and delay is the pause before the next attempt.
type Observer func(attempt int, err error, delay time.Duration)

type options struct {
	attempts     int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	jitter       float64
	retryIf      func(error) bool
	onRetry      Observer
}

type Option func(*options)

func WithAttempts(n int) Option {
	return func(o *options) {
		o.attempts = n
	}
}

func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		o.initialDelay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(o *options) {
		o.maxDelay = d
	}
}

func WithMultiplier(m float64) Option {
	return func(o *options) {
		o.multiplier = m
	}
}

// WithJitter sets the randomization factor applied to every delay, in [0, 1].
func WithJitter(f float64) Option {
	return func(o *options) {
		o.jitter = f
	}
}

// WithRetryIf sets the predicate deciding whether an error is retryable.
// By default every error is retried.
func WithRetryIf(fn func(error) bool) Option {
	return func(o *options) {
		o.retryIf = fn
	}
}

func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// Do calls fn until it succeeds, returns a non-retryable error, the attempts
// are exhausted or ctx is done. The last error of fn is returned as is.
func Do(ctx context.Context, fn func(ctx context.Context) error, opts ...Option) error {
	const op = "retry.Do"

	o := options{
		attempts:     defaultAttempts,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
		multiplier:   defaultMultiplier,
		jitter:       defaultJitter,
		retryIf:      func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.attempts < 1 {
		return fmt.Errorf("%s: %w", op, ErrInvalidAttempts)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = o.initialDelay
	eb.MaxInterval = o.maxDelay
	eb.Multiplier = o.multiplier
	eb.RandomizationFactor = o.jitter
	eb.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(o.attempts-1)), ctx)

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		err := fn(ctx)
		if err != nil && !o.retryIf(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	attempt := 0
	notify := func(err error, d time.Duration) {
		attempt++
		if o.onRetry != nil {
			o.onRetry(attempt, err, d)
		}
	}

	return backoff.RetryNotify(operation, b, notify)
}
