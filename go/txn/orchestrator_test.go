package txn

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tradewire/mt5bridge/go/breaker"
	"github.com/tradewire/mt5bridge/go/classify"
	"github.com/tradewire/mt5bridge/go/config"
	"github.com/tradewire/mt5bridge/go/protocol"
	"github.com/tradewire/mt5bridge/go/wal"
)

// harness wires an Orchestrator with scriptable collaborators and a real
// sqlite WAL in a temp directory.
type harness struct {
	orch    *Orchestrator
	journal *wal.Log

	sends    int
	verifies int
	sleeps   []time.Duration

	execute func(attempt int) (*Result, error)
	verify  func() (*Result, error)
	healthy bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	var journal, err = wal.Open(filepath.Join(t.TempDir(), "orders.db"), 7)
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	var cfg = config.New()
	cfg.CriticalRetryMaxAttempts = 3
	cfg.RetryJitter = false

	var h = &harness{journal: journal, healthy: true}
	h.orch = &Orchestrator{
		Config: cfg,
		WAL:    journal,
		ExecuteGRPC: func(_ context.Context, _ string, attempt int) (*Result, error) {
			h.sends++
			return h.execute(attempt)
		},
		VerifyState: func(context.Context, string) (*Result, error) {
			h.verifies++
			if h.verify == nil {
				return nil, nil
			}
			return h.verify()
		},
		HealthCheck: func(context.Context) bool { return h.healthy },
		Sleep: func(_ context.Context, d time.Duration) {
			h.sleeps = append(h.sleeps, d)
		},
	}
	return h
}

func (h *harness) entryStatus(t *testing.T, requestID string) wal.Status {
	t.Helper()
	var e, err = h.journal.GetEntry(requestID)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Status
}

var testIntent = OrderIntent{"action": 1, "symbol": "EURUSD", "volume": 0.1}

func TestExecuteSuccessFirstAttempt(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeDone, Deal: 101, Order: 202}, nil
	}

	var requestID, requestJSON, err = h.orch.Prepare(testIntent)
	require.NoError(t, err)
	require.Contains(t, requestJSON, requestID)

	result, err := h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, int64(101), result.Deal)
	require.Equal(t, 1, h.sends)
	require.Zero(t, h.verifies)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecutePermanentRejection(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeNoMoney}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)

	var perm *classify.PermanentError
	require.ErrorAs(t, err, &perm)
	require.Equal(t, protocol.RetcodeNoMoney, perm.Retcode)
	require.Equal(t, 1, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))
}

func TestExecuteRetryableRetcodeEventuallySucceeds(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(attempt int) (*Result, error) {
		if attempt < 2 {
			return &Result{Retcode: protocol.RetcodeRequote}, nil
		}
		return &Result{Retcode: protocol.RetcodeDone, Deal: 7}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	result, err := h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, int64(7), result.Deal)
	require.Equal(t, 3, h.sends)
	require.Len(t, h.sleeps, 2)
	// Critical backoff grows between attempts.
	require.Greater(t, h.sleeps[1], h.sleeps[0])
}

func TestExecuteRetryableRetcodeExhausts(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeRequote}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)

	var perm *classify.PermanentError
	require.ErrorAs(t, err, &perm)
	require.Equal(t, 3, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))
}

func TestExecuteTimeoutRetcodeVerifiesExecution(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeTimeout}, nil
	}
	h.verify = func() (*Result, error) {
		return &Result{Retcode: protocol.RetcodeDone, Deal: 55}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	result, err := h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, int64(55), result.Deal)
	// TIMEOUT is never blindly resent: one send, one verification.
	require.Equal(t, 1, h.sends)
	require.Equal(t, 1, h.verifies)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecuteTimeoutRetcodeWithoutTraceFails(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeTimeout}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)

	var perm *classify.PermanentError
	require.ErrorAs(t, err, &perm)
	require.Equal(t, 1, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))
}

func TestExecuteEmptyResponseSalvagedByVerification(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) { return nil, nil }
	h.verify = func() (*Result, error) {
		return &Result{Retcode: protocol.RetcodeDone, Deal: 99}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	result, err := h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, int64(99), result.Deal)
	require.Equal(t, 1, h.sends)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecuteEmptyResponseRetriesWhileHealthy(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(attempt int) (*Result, error) {
		if attempt == 0 {
			return nil, nil
		}
		return &Result{Retcode: protocol.RetcodeDone}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, 2, h.sends)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecuteEmptyResponseUnreachableTerminalAborts(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) { return nil, nil }
	h.healthy = false

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)

	var perm *classify.PermanentError
	require.ErrorAs(t, err, &perm)
	require.Contains(t, perm.Reason, "resend unsafe")
	require.Equal(t, 1, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))
}

func TestExecuteTransportFailureUnreachableTerminalAborts(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return nil, status.Error(codes.Unavailable, "connection reset")
	}
	h.healthy = false

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)

	var perm *classify.PermanentError
	require.ErrorAs(t, err, &perm)
	require.Contains(t, perm.Reason, "resend unsafe")
	// No blind resend once the terminal is unreachable.
	require.Equal(t, 1, h.sends)
	require.Equal(t, 1, h.verifies)
}

func TestExecuteTransportFailureSalvagedByVerification(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return nil, status.Error(codes.Unavailable, "connection reset")
	}
	h.healthy = false
	h.verify = func() (*Result, error) {
		return &Result{Retcode: protocol.RetcodeDone, Deal: 31}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	result, err := h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, int64(31), result.Deal)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecuteTransportFailureRetriesWhileHealthy(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(attempt int) (*Result, error) {
		if attempt == 0 {
			return nil, status.Error(codes.Unavailable, "blip")
		}
		return &Result{Retcode: protocol.RetcodeDone}, nil
	}

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.NoError(t, err)
	require.Equal(t, 2, h.sends)
	require.Zero(t, h.verifies)
	require.Equal(t, wal.Verified, h.entryStatus(t, requestID))
}

func TestExecuteNonRetryableTransportFailureAborts(t *testing.T) {
	var h = newHarness(t)
	var boom = status.Error(codes.InvalidArgument, "malformed request")
	h.execute = func(int) (*Result, error) { return nil, boom }

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.Error(t, err)
	require.Equal(t, 1, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))
}

func TestExecuteBreakerOpenRefusesImmediately(t *testing.T) {
	var h = newHarness(t)
	h.execute = func(int) (*Result, error) {
		return &Result{Retcode: protocol.RetcodeDone}, nil
	}

	var brk = breaker.New(1, time.Hour, 1)
	brk.RecordFailure()
	h.orch.Breaker = brk
	var openedAt = brk.Status().LastFailureAt

	var requestID, requestJSON, _ = h.orch.Prepare(testIntent)
	var _, err = h.orch.ExecutePrepared(context.Background(), requestID, requestJSON)
	require.ErrorIs(t, err, breaker.ErrOpen)
	require.Zero(t, h.sends)
	require.Equal(t, wal.Failed, h.entryStatus(t, requestID))

	// The refusal is recorded as a failure, but it must not slide the
	// recovery clock while the circuit is open.
	require.Equal(t, breaker.Open, brk.State())
	require.Equal(t, openedAt, brk.Status().LastFailureAt)
}

func TestPrepareMarksComment(t *testing.T) {
	var h = newHarness(t)
	var intent = OrderIntent{"symbol": "EURUSD", "comment": "strategy-a"}

	var requestID, requestJSON, err = h.orch.Prepare(intent)
	require.NoError(t, err)
	require.Contains(t, requestJSON, requestID+"|strategy-a")
	// The caller's intent is not mutated.
	require.Equal(t, "strategy-a", intent["comment"])
}
