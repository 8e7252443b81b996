package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tradewire/mt5bridge/go/protocol"
)

func TestDispositionSetsPartitionKnownRetcodes(t *testing.T) {
	var sets = map[string]map[int32]struct{}{
		"success":         successSet,
		"partial":         partialSet,
		"verify-required": verifyRequiredSet,
		"retryable":       retryableSet,
		"conditional":     conditionalSet,
		"permanent":       permanentSet,
	}

	// Pairwise disjoint.
	for aName, a := range sets {
		for bName, b := range sets {
			if aName == bName {
				continue
			}
			for code := range a {
				_, dup := b[code]
				require.False(t, dup, "retcode %d is in both %s and %s", code, aName, bName)
			}
		}
	}

	// Union covers the full known enumeration, and nothing more.
	var union = make(map[int32]struct{})
	for _, s := range sets {
		for code := range s {
			union[code] = struct{}{}
		}
	}
	var known = protocol.KnownRetcodes()
	require.Len(t, union, len(known))
	for _, code := range known {
		_, ok := union[code]
		require.True(t, ok, "retcode %d is unclassified", code)
	}
}

func TestClassifyRetcode(t *testing.T) {
	require.Equal(t, Success, ClassifyRetcode(protocol.RetcodeDone))
	require.Equal(t, Success, ClassifyRetcode(protocol.RetcodePlaced))
	require.Equal(t, Partial, ClassifyRetcode(protocol.RetcodeDonePartial))
	require.Equal(t, VerifyRequired, ClassifyRetcode(protocol.RetcodeTimeout))
	require.Equal(t, VerifyRequired, ClassifyRetcode(protocol.RetcodeConnection))
	require.Equal(t, Retryable, ClassifyRetcode(protocol.RetcodeRequote))
	require.Equal(t, Conditional, ClassifyRetcode(protocol.RetcodeMarketClosed))
	require.Equal(t, Permanent, ClassifyRetcode(protocol.RetcodeNoMoney))
	require.Equal(t, Unknown, ClassifyRetcode(99999))
}

func TestAmbiguousRetcodesAreNeverRetryable(t *testing.T) {
	// TIMEOUT and CONNECTION may reflect an executed order; a blind resend
	// could double-execute.
	require.False(t, IsRetryableRetcode(protocol.RetcodeTimeout))
	require.False(t, IsRetryableRetcode(protocol.RetcodeConnection))

	require.Equal(t, OutcomeVerifyRequired, OutcomeFor(ClassifyRetcode(protocol.RetcodeTimeout)))
	require.Equal(t, OutcomeVerifyRequired, OutcomeFor(ClassifyRetcode(protocol.RetcodeConnection)))
}

func TestOutcomeForCollapsesAmbiguity(t *testing.T) {
	require.Equal(t, OutcomeSuccess, OutcomeFor(Success))
	require.Equal(t, OutcomePartial, OutcomeFor(Partial))
	require.Equal(t, OutcomeRetry, OutcomeFor(Retryable))
	require.Equal(t, OutcomePermanentFailure, OutcomeFor(Permanent))
	require.Equal(t, OutcomeVerifyRequired, OutcomeFor(VerifyRequired))
	require.Equal(t, OutcomeVerifyRequired, OutcomeFor(Conditional))
	require.Equal(t, OutcomeVerifyRequired, OutcomeFor(Unknown))
}

func TestOperationCriticality(t *testing.T) {
	require.Equal(t, Critical, OperationCriticality("order_send"))
	require.Equal(t, Critical, OperationCriticality("order_check"))
	require.Equal(t, High, OperationCriticality("positions_get"))
	require.Equal(t, High, OperationCriticality("account_info"))
	require.Equal(t, Normal, OperationCriticality("symbol_info"))
	require.Equal(t, Low, OperationCriticality("symbols_total"))
	require.Equal(t, Low, OperationCriticality("version"))
	// Unknown operations default to Normal.
	require.Equal(t, Normal, OperationCriticality("no_such_operation"))
}

func TestShouldVerifyState(t *testing.T) {
	var cases = []struct {
		op             string
		classification Classification
		expect         bool
	}{
		{"order_send", Conditional, true},
		{"order_send", Unknown, true},
		{"order_send", VerifyRequired, true},
		{"order_send", Retryable, false},
		{"order_send", Success, false},
		{"order_send", Permanent, false},
		{"symbol_info", Conditional, false},
		{"symbol_info", Unknown, false},
		{"positions_get", VerifyRequired, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expect, ShouldVerifyState(tc.op, tc.classification),
			"op %s classification %s", tc.op, tc.classification)
	}
}

func TestIsRetryable(t *testing.T) {
	require.False(t, IsRetryable(nil))
	require.True(t, IsRetryable(&RetryableError{Retcode: protocol.RetcodeRequote, Op: "order_send"}))
	require.True(t, IsRetryable(context.DeadlineExceeded))

	require.True(t, IsRetryable(status.Error(codes.Unavailable, "server down")))
	require.True(t, IsRetryable(status.Error(codes.DeadlineExceeded, "too slow")))
	require.True(t, IsRetryable(status.Error(codes.Aborted, "conflict")))
	require.True(t, IsRetryable(status.Error(codes.ResourceExhausted, "throttled")))

	require.False(t, IsRetryable(status.Error(codes.InvalidArgument, "bad request")))
	require.False(t, IsRetryable(status.Error(codes.Unimplemented, "no such method")))
	require.False(t, IsRetryable(errors.New("not connected")))
	require.False(t, IsRetryable(&PermanentError{Reason: "rejected"}))
}

func TestPermanentErrorUnwrap(t *testing.T) {
	var inner = errors.New("transport broke")
	var err = &PermanentError{Reason: "resend unsafe", Err: inner}
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "resend unsafe")

	var withCode = &PermanentError{Retcode: protocol.RetcodeNoMoney, Reason: "order rejected"}
	require.Contains(t, withCode.Error(), "NO_MONEY")
}
