package breaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestBreaker(threshold int, recovery time.Duration, halfOpenMax int) (*Breaker, *time.Time) {
	var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var b = New(threshold, recovery, halfOpenMax)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreakerOpensAtThreshold(t *testing.T) {
	var b, _ = newTestBreaker(3, 30*time.Second, 2)

	require.Equal(t, Closed, b.State())
	b.RecordFailure()
	b.RecordFailure()
	require.Equal(t, Closed, b.State())
	require.True(t, b.Admit())

	b.RecordFailure()
	require.Equal(t, Open, b.State())
	require.False(t, b.Admit())
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	var b, _ = newTestBreaker(3, 30*time.Second, 2)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	// The streak broke; two more failures still do not open.
	b.RecordFailure()
	b.RecordFailure()
	require.Equal(t, Closed, b.State())
	b.RecordFailure()
	require.Equal(t, Open, b.State())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	var b, now = newTestBreaker(1, 30*time.Second, 2)

	b.RecordFailure()
	require.Equal(t, Open, b.State())

	// Before the window: still open.
	*now = now.Add(29 * time.Second)
	require.False(t, b.Admit())

	// After the window: probes are admitted.
	*now = now.Add(2 * time.Second)
	require.Equal(t, HalfOpen, b.State())
	require.True(t, b.Admit())

	b.RecordSuccess()
	require.Equal(t, HalfOpen, b.State())
	require.True(t, b.Admit())
	b.RecordSuccess()
	require.Equal(t, Closed, b.State())
}

func TestBreakerRecoversDespiteRejectedTraffic(t *testing.T) {
	var b, now = newTestBreaker(1, 30*time.Second, 1)

	b.RecordFailure()
	var openedAt = *now
	require.Equal(t, Open, b.State())

	// Steady traffic while open: each caller is refused admission and its
	// retry loop reports the rejection as a failure. None of these may
	// slide the recovery clock; the first caller after the window must be
	// admitted as a probe.
	var admitted = false
	for i := 0; i < 10 && !admitted; i++ {
		*now = now.Add(5 * time.Second)
		if b.Admit() {
			admitted = true
		} else {
			b.RecordFailure()
		}
	}

	require.True(t, admitted)
	require.Equal(t, HalfOpen, b.State())
	require.Equal(t, openedAt, b.Status().LastFailureAt)
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	var b, now = newTestBreaker(1, 30*time.Second, 3)

	b.RecordFailure()
	*now = now.Add(31 * time.Second)
	require.True(t, b.Admit())

	b.RecordFailure()
	require.Equal(t, Open, b.State())
	require.False(t, b.Admit())

	// The failed probe restarted the recovery clock.
	*now = now.Add(31 * time.Second)
	require.Equal(t, HalfOpen, b.State())
}

func TestBreakerHalfOpenAdmissionIsBounded(t *testing.T) {
	var b, now = newTestBreaker(1, 30*time.Second, 2)

	b.RecordFailure()
	*now = now.Add(31 * time.Second)

	require.True(t, b.Admit())
	require.True(t, b.Admit())
	// Both probe slots are in flight.
	require.False(t, b.Admit())

	b.RecordSuccess()
	require.True(t, b.Admit())
}

func TestBreakerStatusAndReset(t *testing.T) {
	var b, now = newTestBreaker(2, 30*time.Second, 1)

	b.RecordFailure()
	b.RecordFailure()

	var s = b.Status()
	require.Equal(t, Open, s.State)
	require.Equal(t, 2, s.FailureCount)
	require.Equal(t, *now, s.LastFailureAt)
	require.Equal(t, now.Add(30*time.Second), s.RecoveryAt)

	b.Reset()
	s = b.Status()
	require.Equal(t, Closed, s.State)
	require.Zero(t, s.FailureCount)
	require.True(t, s.RecoveryAt.IsZero())
	require.True(t, b.Admit())
}
