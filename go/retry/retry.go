// Package retry implements the generic backoff loop wrapping every call to
// the terminal bridge, plus the reconnect and timeout helpers built on it.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/tradewire/mt5bridge/go/config"
)

// MaxRetriesError reports an exhausted retry loop. It wraps the last
// attempt's error.
type MaxRetriesError struct {
	Op       string
	Attempts int
	Last     error
}

func (e *MaxRetriesError) Error() string {
	return fmt.Sprintf("%s: %d attempts exhausted: %v", e.Op, e.Attempts, e.Last)
}

func (e *MaxRetriesError) Unwrap() error { return e.Last }

// Options parameterize a retry loop. Zero-value hooks are no-ops and a nil
// ShouldRetry treats every error as retryable.
type Options struct {
	Op          string
	MaxAttempts int
	Delay       func(attempt int) time.Duration
	ShouldRetry func(error) bool
	// OnSuccess and OnFailure couple the circuit breaker to the loop:
	// success after any successful call, failure on a non-retryable error
	// or on exhaustion. Hook panics are recovered and logged so callback
	// bugs cannot poison the loop.
	OnSuccess func()
	OnFailure func()
	// BeforeRetry runs between attempts, typically to reconnect. Its errors
	// are logged and swallowed so a broken hook cannot wedge the loop.
	BeforeRetry func(context.Context) error
}

// Do runs |fn| under the retry policy of |opts| and returns its first
// successful result.
func Do[T any](ctx context.Context, opts Options, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if opts.MaxAttempts < 1 {
		return zero, fmt.Errorf("%s: max attempts must be >= 1, got %d", opts.Op, opts.MaxAttempts)
	}
	var shouldRetry = opts.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = func(error) bool { return true }
	}

	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		var result, err = fn(ctx)
		if err == nil {
			runHook(opts.Op, "on-success", opts.OnSuccess)
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			runHook(opts.Op, "on-failure", opts.OnFailure)
			return zero, err
		}
		if attempt+1 >= opts.MaxAttempts {
			break
		}

		var delay = opts.Delay(attempt)
		log.WithFields(log.Fields{
			"op":      opts.Op,
			"attempt": attempt,
			"delay":   delay,
			"err":     err,
		}).Debug("retrying after transient failure")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			runHook(opts.Op, "on-failure", opts.OnFailure)
			return zero, ctx.Err()
		}

		if opts.BeforeRetry != nil {
			if err := opts.BeforeRetry(ctx); err != nil {
				log.WithFields(log.Fields{"op": opts.Op, "err": err}).
					Warn("before-retry hook failed; continuing")
			}
		}
	}

	runHook(opts.Op, "on-failure", opts.OnFailure)
	return zero, &MaxRetriesError{Op: opts.Op, Attempts: opts.MaxAttempts, Last: lastErr}
}

func runHook(op, name string, hook func()) {
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"op": op, "hook": name, "panic": r}).
				Error("retry hook panicked")
		}
	}()
	hook()
}

// ReconnectWithBackoff drives a boolean connection probe under exponential
// backoff. It reports success rather than returning an error: the caller's
// reconnect loop treats a false as "stay disconnected and try again later".
func ReconnectWithBackoff(ctx context.Context, cfg *config.Config, probe func(context.Context) error) bool {
	var policy = backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.RetryInitialDelay
	policy.MaxInterval = cfg.RetryMaxDelay
	policy.Multiplier = cfg.RetryExponentialBase
	policy.MaxElapsedTime = 0 // Bounded by attempt count below, not wall time.

	var err = backoff.Retry(
		func() error { return probe(ctx) },
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(cfg.RetryMaxAttempts)), ctx),
	)
	if err != nil {
		log.WithField("err", err).Warn("reconnect attempts exhausted")
		return false
	}
	return true
}

// WithTimeout runs |fn| with a hard deadline and guarantees child cleanup:
// on timeout the work's context is cancelled and the goroutine is awaited.
// A result that races the deadline is delivered rather than discarded.
// The second return is true when the call timed out.
func WithTimeout[T any](ctx context.Context, d time.Duration, name string, fn func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	if d <= 0 {
		return zero, false, fmt.Errorf("%s: timeout must be positive, got %v", name, d)
	}

	var cctx, cancel = context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	var done = make(chan outcome, 1)
	go func() {
		var v, err = fn(cctx)
		done <- outcome{v, err}
	}()

	var timer = time.NewTimer(d)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.val, false, out.err
	case <-timer.C:
		// The work may have completed at exactly the deadline; prefer it.
		select {
		case out := <-done:
			return out.val, false, out.err
		default:
		}
		cancel()
		<-done // Await cancellation so no goroutine outlives the call.
		log.WithFields(log.Fields{"op": name, "timeout": d}).Debug("call timed out")
		return zero, true, nil
	}
}
