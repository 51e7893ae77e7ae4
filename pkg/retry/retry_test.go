package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	errTransient = errors.New("transient")
	errFatal     = errors.New("fatal")
)

func fastOpts(opts ...Option) []Option {
	return append([]Option{
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(2 * time.Millisecond),
		WithJitter(0),
	}, opts...)
}

func TestDo(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		}, fastOpts()...)

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("success after retries", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		}, fastOpts(WithAttempts(5))...)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), func(context.Context) error {
			calls++
			return errTransient
		}, fastOpts(WithAttempts(4))...)

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 4, calls)
	})

	t.Run("non-retryable error", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), func(context.Context) error {
			calls++
			return errFatal
		}, fastOpts(
			WithAttempts(5),
			WithRetryIf(func(err error) bool { return errors.Is(err, errTransient) }),
		)...)

		assert.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("observer sees every retry", func(t *testing.T) {
		var attempts []int

		err := Do(context.Background(), func(context.Context) error {
			return errTransient
		}, fastOpts(
			WithAttempts(3),
			WithObserver(func(attempt int, err error, _ time.Duration) {
				assert.ErrorIs(t, err, errTransient)
				attempts = append(attempts, attempt)
			}),
		)...)

		assert.Error(t, err)
		assert.Equal(t, []int{1, 2}, attempts)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0

		err := Do(ctx, func(context.Context) error {
			calls++
			return errTransient
		}, fastOpts(WithAttempts(5))...)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("invalid attempts", func(t *testing.T) {
		err := Do(context.Background(), func(context.Context) error {
			return nil
		}, WithAttempts(0))

		assert.ErrorIs(t, err, ErrInvalidAttempts)
	})
}
