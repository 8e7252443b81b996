// Package classify maps transport failures and terminal trade retcodes to
// dispositions. It is the single authority on whether a failed call may be
// retried, must be verified against terminal history first, or is final.
package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/tradewire/mt5bridge/go/protocol"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Classification is the internal disposition of a single terminal result.
type Classification int

const (
	Success Classification = iota
	Partial
	Retryable
	VerifyRequired
	Conditional
	Permanent
	Unknown
)

func (c Classification) String() string {
	switch c {
	case Success:
		return "success"
	case Partial:
		return "partial"
	case Retryable:
		return "retryable"
	case VerifyRequired:
		return "verify-required"
	case Conditional:
		return "conditional"
	case Permanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Outcome is the public simplification of a Classification, surfaced at the
// transaction boundary.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomePartial
	OutcomeRetry
	OutcomeVerifyRequired
	OutcomePermanentFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePartial:
		return "partial"
	case OutcomeRetry:
		return "retry"
	case OutcomeVerifyRequired:
		return "verify-required"
	default:
		return "permanent-failure"
	}
}

// OutcomeFor maps a Classification to its transaction Outcome. Conditional
// and Unknown collapse to OutcomeVerifyRequired: an ambiguous result may
// reflect an executed order, so it is never retried blindly and never
// declared failed without consulting history.
func OutcomeFor(c Classification) Outcome {
	switch c {
	case Success:
		return OutcomeSuccess
	case Partial:
		return OutcomePartial
	case Retryable:
		return OutcomeRetry
	case Permanent:
		return OutcomePermanentFailure
	default: // VerifyRequired, Conditional, Unknown.
		return OutcomeVerifyRequired
	}
}

// Criticality orders operations by how much correctness rides on them.
type Criticality int

const (
	Low Criticality = iota
	Normal
	High
	Critical
)

func (c Criticality) String() string {
	switch c {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	default:
		return "critical"
	}
}

// Disposition sets over the known retcode enumeration. The sets are pairwise
// disjoint and their union covers every known code; classify_test.go asserts
// both properties.
var (
	successSet = retcodeSet(
		protocol.RetcodePlaced,
		protocol.RetcodeDone,
	)
	partialSet = retcodeSet(
		protocol.RetcodeDonePartial,
	)
	// TIMEOUT and CONNECTION mean the terminal may or may not have executed
	// the order. They are never retryable.
	verifyRequiredSet = retcodeSet(
		protocol.RetcodeTimeout,
		protocol.RetcodeConnection,
	)
	// Codes the terminal guarantees were not executed.
	retryableSet = retcodeSet(
		protocol.RetcodeRequote,
		protocol.RetcodePriceChanged,
		protocol.RetcodePriceOff,
		protocol.RetcodeTooManyRequests,
	)
	conditionalSet = retcodeSet(
		protocol.RetcodeCancel,
		protocol.RetcodeMarketClosed,
		protocol.RetcodeOrderChanged,
		protocol.RetcodeNoChanges,
	)
	permanentSet = retcodeSet(
		protocol.RetcodeReject,
		protocol.RetcodeError,
		protocol.RetcodeInvalid,
		protocol.RetcodeInvalidVolume,
		protocol.RetcodeInvalidPrice,
		protocol.RetcodeInvalidStops,
		protocol.RetcodeTradeDisabled,
		protocol.RetcodeNoMoney,
		protocol.RetcodeInvalidExpiration,
		protocol.RetcodeServerDisablesAT,
		protocol.RetcodeClientDisablesAT,
		protocol.RetcodeLocked,
		protocol.RetcodeFrozen,
		protocol.RetcodeInvalidFill,
		protocol.RetcodeOnlyReal,
		protocol.RetcodeLimitOrders,
		protocol.RetcodeLimitVolume,
		protocol.RetcodeInvalidOrder,
		protocol.RetcodePositionClosed,
		protocol.RetcodeInvalidCloseVolume,
		protocol.RetcodeCloseOrderExist,
		protocol.RetcodeLimitPositions,
		protocol.RetcodeRejectCancel,
		protocol.RetcodeLongOnly,
		protocol.RetcodeShortOnly,
		protocol.RetcodeCloseOnly,
		protocol.RetcodeFIFOClose,
	)
)

func retcodeSet(codes ...int32) map[int32]struct{} {
	var s = make(map[int32]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// ClassifyRetcode returns the disposition of a terminal trade retcode.
func ClassifyRetcode(code int32) Classification {
	switch {
	case member(successSet, code):
		return Success
	case member(partialSet, code):
		return Partial
	case member(verifyRequiredSet, code):
		return VerifyRequired
	case member(retryableSet, code):
		return Retryable
	case member(conditionalSet, code):
		return Conditional
	case member(permanentSet, code):
		return Permanent
	default:
		return Unknown
	}
}

func member(s map[int32]struct{}, code int32) bool {
	_, ok := s[code]
	return ok
}

// IsRetryableRetcode reports whether the terminal guarantees the operation
// was not executed, making a blind resend safe.
func IsRetryableRetcode(code int32) bool {
	return member(retryableSet, code)
}

// Transport status codes that are safe to retry. Any other status is a
// permanent transport failure.
var transportRetryable = map[codes.Code]struct{}{
	codes.Unavailable:       {},
	codes.DeadlineExceeded:  {},
	codes.Aborted:           {},
	codes.ResourceExhausted: {},
}

// IsRetryable reports whether an error may be retried: retryable transport
// statuses, context deadline expiry, and RetryableError qualify. Programmer
// errors (nil receivers, "not connected") never do.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if s, ok := status.FromError(err); ok {
		_, retry := transportRetryable[s.Code()]
		return retry && s.Code() != codes.OK
	}
	return false
}

// Operation criticality table. Unknown operations default to Normal.
var operationCriticality = map[string]Criticality{
	"order_send":          Critical,
	"order_check":         Critical,
	"positions_get":       High,
	"account_info":        High,
	"orders_get":          High,
	"symbol_info":         Normal,
	"symbol_info_tick":    Normal,
	"copy_rates_from":     Normal,
	"copy_rates_from_pos": Normal,
	"copy_rates_range":    Normal,
	"copy_ticks_from":     Normal,
	"copy_ticks_range":    Normal,
	"symbols_total":       Low,
	"version":             Low,
}

// OperationCriticality returns the criticality of a named terminal operation.
func OperationCriticality(op string) Criticality {
	if c, ok := operationCriticality[op]; ok {
		return c
	}
	return Normal
}

// ShouldVerifyState reports whether an operation's result requires a history
// lookup before the caller may decide the next step. Only critical operations
// with an ambiguous disposition verify.
func ShouldVerifyState(op string, c Classification) bool {
	if OperationCriticality(op) != Critical {
		return false
	}
	switch c {
	case Conditional, Unknown, VerifyRequired:
		return true
	}
	return false
}

// RetryableError signals a terminal retcode in the retryable set: the order
// was not executed and a resend is safe.
type RetryableError struct {
	Retcode int32
	Op      string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("%s: terminal returned %s (%d), safe to retry",
		e.Op, protocol.RetcodeName(e.Retcode), e.Retcode)
}

// PermanentError signals a result that must not be retried: a permanent
// terminal retcode, a failed verification, or a state in which another
// attempt could double-execute.
type PermanentError struct {
	Retcode int32 // Zero when no retcode is known.
	Reason  string
	Err     error
}

func (e *PermanentError) Error() string {
	if e.Retcode != 0 {
		return fmt.Sprintf("%s: terminal returned %s (%d)",
			e.Reason, protocol.RetcodeName(e.Retcode), e.Retcode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *PermanentError) Unwrap() error { return e.Err }

// VerifyRequiredError is an internal signal that a result demands a history
// verification before any further attempt.
type VerifyRequiredError struct {
	Retcode   int32
	RequestID string
}

func (e *VerifyRequiredError) Error() string {
	return fmt.Sprintf("retcode %s (%d) requires state verification for request %s",
		protocol.RetcodeName(e.Retcode), e.Retcode, e.RequestID)
}
