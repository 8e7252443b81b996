package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/mt5bridge/go/config"
)

func noDelay(int) time.Duration { return 0 }

func TestDoReturnsFirstSuccess(t *testing.T) {
	var calls int
	var out, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 3,
		Delay:       noDelay,
	}, func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, 1, calls)
}

func TestDoRetriesTransientFailures(t *testing.T) {
	var calls int
	var out, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 3,
		Delay:       noDelay,
	}, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, out)
	require.Equal(t, 3, calls)
}

func TestDoExhaustionYieldsMaxRetriesError(t *testing.T) {
	var boom = errors.New("still broken")
	var _, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 2,
		Delay:       noDelay,
	}, func(context.Context) (int, error) {
		return 0, boom
	})

	var max *MaxRetriesError
	require.ErrorAs(t, err, &max)
	require.Equal(t, "test", max.Op)
	require.Equal(t, 2, max.Attempts)
	require.ErrorIs(t, err, boom)
}

func TestDoAbortsOnNonRetryable(t *testing.T) {
	var fatal = errors.New("permanent")
	var calls int
	var _, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 5,
		Delay:       noDelay,
		ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
	}, func(context.Context) (int, error) {
		calls++
		return 0, fatal
	})
	require.ErrorIs(t, err, fatal)
	require.Equal(t, 1, calls)
}

func TestDoRejectsInvalidMaxAttempts(t *testing.T) {
	var _, err = Do(context.Background(), Options{Op: "test", MaxAttempts: 0},
		func(context.Context) (int, error) { return 1, nil })
	require.Error(t, err)
}

func TestDoRunsBreakerHooks(t *testing.T) {
	var successes, failures int
	var opts = Options{
		Op:          "test",
		MaxAttempts: 2,
		Delay:       noDelay,
		OnSuccess:   func() { successes++ },
		OnFailure:   func() { failures++ },
	}

	var _, err = Do(context.Background(), opts, func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	require.Equal(t, 1, successes)
	require.Zero(t, failures)

	_, err = Do(context.Background(), opts, func(context.Context) (int, error) { return 0, errors.New("x") })
	require.Error(t, err)
	// One terminal failure hook per loop, not per attempt.
	require.Equal(t, 1, failures)
}

func TestDoSurvivesPanickingHook(t *testing.T) {
	var out, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 1,
		Delay:       noDelay,
		OnSuccess:   func() { panic("buggy callback") },
	}, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Equal(t, 7, out)
}

func TestDoRunsBeforeRetryBetweenAttempts(t *testing.T) {
	var reconnects int
	var calls int
	var _, err = Do(context.Background(), Options{
		Op:          "test",
		MaxAttempts: 3,
		Delay:       noDelay,
		BeforeRetry: func(context.Context) error {
			reconnects++
			return errors.New("reconnect failed") // Logged, not fatal.
		},
	}, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 1, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, reconnects)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()

	var _, err = Do(ctx, Options{
		Op:          "test",
		MaxAttempts: 3,
		Delay:       func(int) time.Duration { return time.Hour },
	}, func(context.Context) (int, error) {
		return 0, errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeoutDeliversResult(t *testing.T) {
	var out, timedOut, err = WithTimeout(context.Background(), time.Second, "test",
		func(context.Context) (string, error) { return "fast", nil })
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, "fast", out)
}

func TestWithTimeoutExpires(t *testing.T) {
	var started = make(chan struct{})
	var _, timedOut, err = WithTimeout(context.Background(), 20*time.Millisecond, "test",
		func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		})
	require.NoError(t, err)
	require.True(t, timedOut)
	<-started
}

func TestWithTimeoutRejectsNonPositiveDeadline(t *testing.T) {
	var _, _, err = WithTimeout(context.Background(), 0, "test",
		func(context.Context) (int, error) { return 1, nil })
	require.Error(t, err)
}

func TestReconnectWithBackoff(t *testing.T) {
	var cfg = config.New()
	cfg.RetryInitialDelay = time.Millisecond
	cfg.RetryMaxDelay = 2 * time.Millisecond
	cfg.RetryMaxAttempts = 3

	var calls int
	require.True(t, ReconnectWithBackoff(context.Background(), cfg, func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	}))
	require.Equal(t, 2, calls)

	require.False(t, ReconnectWithBackoff(context.Background(), cfg, func(context.Context) error {
		return errors.New("never")
	}))
}
