// Package txn orchestrates critical order submission: durable intent
// logging, idempotency marking, classification of every result, and state
// verification before any ambiguous retry. The invariant it defends is that
// an order is never resent while the terminal may already have executed it.
package txn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tradewire/mt5bridge/go/breaker"
	"github.com/tradewire/mt5bridge/go/classify"
	"github.com/tradewire/mt5bridge/go/config"
	"github.com/tradewire/mt5bridge/go/retry"
	"github.com/tradewire/mt5bridge/go/wal"
)

// OrderIntent is the terminal order_send request prior to idempotency
// marking. Keys follow the terminal's trade-request field names.
type OrderIntent map[string]interface{}

// Result is a decoded terminal trade result.
type Result struct {
	Retcode int32           `json:"retcode"`
	Deal    int64           `json:"deal"`
	Order   int64           `json:"order"`
	Volume  float64         `json:"volume"`
	Price   float64         `json:"price"`
	Comment string          `json:"comment"`
	Raw     json.RawMessage `json:"-"`
}

// Orchestrator runs the order-send transaction. Collaborators are injected
// so the flow itself is pure orchestration logic.
type Orchestrator struct {
	Config *config.Config

	// ExecuteGRPC performs a single remote order_send. A (nil, nil) return
	// models an empty response, which is the most dangerous outcome: the
	// terminal may or may not have acted.
	ExecuteGRPC func(ctx context.Context, requestJSON string, attempt int) (*Result, error)
	// VerifyState searches recent terminal history for an executed order or
	// deal tagged with |requestID|, returning nil when none exists.
	VerifyState func(ctx context.Context, requestID string) (*Result, error)
	// HealthCheck is a quick remote liveness probe.
	HealthCheck func(ctx context.Context) bool

	// Breaker gates each attempt. Nil disables gating.
	Breaker *breaker.Breaker
	// WAL persists the order lifecycle. Nil disables persistence; the wal
	// package treats a nil Log as a no-op, so this may stay unset in tests.
	WAL *wal.Log

	// Sleep is stubbed by tests; defaults to a context-aware time.Sleep.
	Sleep func(ctx context.Context, d time.Duration)
}

// Prepare generates a fresh request id, embeds it in the intent's comment
// field, and serializes the marked request. Exposed separately so the async
// submission path can hand the id to the caller before execution starts.
func (o *Orchestrator) Prepare(intent OrderIntent) (requestID, requestJSON string, err error) {
	requestID = GenerateRequestID()

	var marked = make(OrderIntent, len(intent)+1)
	for k, v := range intent {
		marked[k] = v
	}
	var comment, _ = intent["comment"].(string)
	marked["comment"] = MarkComment(comment, requestID)

	var raw []byte
	if raw, err = json.Marshal(marked); err != nil {
		return "", "", fmt.Errorf("serializing order request: %w", err)
	}
	return requestID, string(raw), nil
}

// Execute runs the full transaction for one order.
func (o *Orchestrator) Execute(ctx context.Context, intent OrderIntent) (*Result, error) {
	var requestID, requestJSON, err = o.Prepare(intent)
	if err != nil {
		return nil, err
	}
	return o.ExecutePrepared(ctx, requestID, requestJSON)
}

// ExecutePrepared runs the transaction for an already-prepared request.
//
// Every attempt is gated by the breaker, journaled to the WAL, and its
// result classified. Ambiguous results (empty response, TIMEOUT,
// CONNECTION, unknown retcodes) are resolved by consulting terminal history
// for the request id; only retcodes the terminal guarantees were not
// executed are ever blindly resent.
func (o *Orchestrator) ExecutePrepared(ctx context.Context, requestID, requestJSON string) (*Result, error) {
	var maxAttempts = o.Config.CriticalRetryMaxAttempts

	if err := o.WAL.LogIntent(requestID, requestJSON); err != nil {
		return nil, fmt.Errorf("logging order intent: %w", err)
	}

	var (
		lastResult *Result
		lastErr    error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if o.Breaker != nil && !o.Breaker.Admit() {
			// Recorded for accounting only; failures while open do not
			// slide the recovery clock.
			o.recordFailure()
			o.walFail(requestID, "circuit breaker open")
			return nil, breaker.ErrOpen
		}

		if err := o.WAL.MarkSent(requestID); err != nil {
			return nil, fmt.Errorf("marking order sent: %w", err)
		}

		var result, err = o.ExecuteGRPC(ctx, requestJSON, attempt)
		if err != nil {
			var done *Result
			done, err = o.handleCallError(ctx, requestID, attempt, err)
			if done != nil {
				return done, nil
			} else if err != nil {
				return nil, err
			}
			lastErr = fmt.Errorf("attempt %d failed", attempt)
			continue
		}

		if result == nil {
			var done *Result
			done, err = o.handleEmptyResponse(ctx, requestID, attempt)
			if done != nil {
				return done, nil
			} else if err != nil {
				return nil, err
			}
			lastErr = fmt.Errorf("attempt %d returned an empty response", attempt)
			continue
		}
		lastResult = result

		var classification = classify.ClassifyRetcode(result.Retcode)
		switch classify.OutcomeFor(classification) {

		case classify.OutcomeSuccess, classify.OutcomePartial:
			o.recordSuccess()
			o.walVerify(requestID, result)
			return result, nil

		case classify.OutcomePermanentFailure:
			o.recordFailure()
			o.walFail(requestID, fmt.Sprintf("terminal retcode %d", result.Retcode))
			return nil, &classify.PermanentError{Retcode: result.Retcode, Reason: "order rejected"}

		case classify.OutcomeVerifyRequired:
			log.WithFields(log.Fields{
				"requestID": requestID,
				"retcode":   result.Retcode,
			}).Warn("TX_VERIFY_REQUIRED: consulting terminal history before deciding")

			var verified, verr = o.verify(ctx, requestID)
			if verr != nil {
				log.WithFields(log.Fields{"requestID": requestID, "err": verr}).
					Warn("state verification errored; treating as not found")
			}
			if verified != nil {
				// The order did execute; surface the verified result.
				o.recordSuccess()
				o.walVerify(requestID, verified)
				return verified, nil
			}
			o.recordFailure()
			o.walFail(requestID, "verification failed")
			return nil, &classify.PermanentError{Retcode: result.Retcode, Reason: "verification failed"}

		case classify.OutcomeRetry:
			o.recordFailure()
			lastErr = &classify.RetryableError{Retcode: result.Retcode, Op: "order_send"}
			o.sleep(ctx, o.Config.CriticalDelayFor(attempt))
			continue
		}
	}

	o.walFail(requestID, "retry attempts exhausted")
	if lastResult != nil {
		log.WithFields(log.Fields{
			"requestID": requestID,
			"retcode":   lastResult.Retcode,
			"attempts":  maxAttempts,
		}).Error("order abandoned after exhausting critical retries")
		return nil, &classify.PermanentError{Retcode: lastResult.Retcode, Reason: "retries exhausted"}
	}
	return nil, &retry.MaxRetriesError{Op: "order_send", Attempts: maxAttempts, Last: lastErr}
}

// handleCallError resolves a transport-level failure of one attempt.
// Returns (result, nil) when verification salvaged an executed order,
// (nil, err) when the transaction must abort, and (nil, nil) to continue.
func (o *Orchestrator) handleCallError(ctx context.Context, requestID string, attempt int, callErr error) (*Result, error) {
	var perm *classify.PermanentError
	if errors.As(callErr, &perm) {
		o.walFail(requestID, callErr.Error())
		return nil, callErr
	}
	if !classify.IsRetryable(callErr) {
		o.recordFailure()
		o.walFail(requestID, callErr.Error())
		return nil, callErr
	}
	o.recordFailure()

	// A retryable transport failure is only safe to retry while the terminal
	// is reachable; otherwise the order may have executed without an
	// acknowledgement, and a resend could double-execute.
	if !o.healthy(ctx) {
		if verified, _ := o.verify(ctx, requestID); verified != nil {
			o.recordSuccess()
			o.walVerify(requestID, verified)
			return verified, nil
		}
		o.walFail(requestID, "terminal unreachable after transport failure")
		return nil, &classify.PermanentError{
			Reason: "terminal unreachable after transport failure, resend unsafe",
			Err:    callErr,
		}
	}
	o.sleep(ctx, o.Config.CriticalDelayFor(attempt))
	return nil, nil
}

// handleEmptyResponse resolves an attempt that produced no payload. Same
// return convention as handleCallError.
func (o *Orchestrator) handleEmptyResponse(ctx context.Context, requestID string, attempt int) (*Result, error) {
	if verified, _ := o.verify(ctx, requestID); verified != nil {
		o.recordSuccess()
		o.walVerify(requestID, verified)
		return verified, nil
	}
	if !o.healthy(ctx) {
		o.recordFailure()
		o.walFail(requestID, "empty response with terminal unreachable")
		return nil, &classify.PermanentError{
			Reason: "terminal unreachable after empty response, resend unsafe",
		}
	}
	o.recordFailure()
	o.sleep(ctx, o.Config.CriticalDelayFor(attempt))
	return nil, nil
}

func (o *Orchestrator) verify(ctx context.Context, requestID string) (*Result, error) {
	if o.VerifyState == nil {
		return nil, nil
	}
	return o.VerifyState(ctx, requestID)
}

func (o *Orchestrator) healthy(ctx context.Context) bool {
	if o.HealthCheck == nil {
		return true
	}
	return o.HealthCheck(ctx)
}

func (o *Orchestrator) recordSuccess() {
	if o.Breaker != nil {
		o.Breaker.RecordSuccess()
	}
}

func (o *Orchestrator) recordFailure() {
	if o.Breaker != nil {
		o.Breaker.RecordFailure()
	}
}

func (o *Orchestrator) walVerify(requestID string, result *Result) {
	var raw, err = json.Marshal(result)
	if err != nil {
		raw = []byte("{}")
	}
	if err = o.WAL.MarkVerified(requestID, string(raw)); err != nil {
		log.WithFields(log.Fields{"requestID": requestID, "err": err}).
			Error("failed to mark WAL entry verified")
	}
}

func (o *Orchestrator) walFail(requestID, cause string) {
	if err := o.WAL.MarkFailed(requestID, cause); err != nil {
		log.WithFields(log.Fields{"requestID": requestID, "err": err}).
			Error("failed to mark WAL entry failed")
	}
}

func (o *Orchestrator) sleep(ctx context.Context, d time.Duration) {
	if o.Sleep != nil {
		o.Sleep(ctx, d)
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
