// Package breaker implements the circuit breaker shared by every call to
// the terminal bridge.
package breaker

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// State of the circuit.
type State int

const (
	Closed State = iota
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrOpen is returned when the breaker refuses admission. It is never
// swallowed by the retry machinery; callers drive fallback policy from it.
var ErrOpen = errors.New("circuit breaker is open")

var (
	stateGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mt5bridge_breaker_state",
		Help: "Current circuit breaker state (0 closed, 1 open, 2 half-open).",
	})
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mt5bridge_breaker_transitions_total",
		Help: "Count of circuit breaker state transitions.",
	}, []string{"to"})
)

// Breaker is a three-state fault gate. All transitions and reads occur under
// a single mutex; Admit is atomic with the half-open probe accounting so two
// concurrent probes cannot both take the last slot.
type Breaker struct {
	mu sync.Mutex

	threshold   int
	recovery    time.Duration
	halfOpenMax int

	state            State
	failureCount     int
	successCount     int
	lastFailureAt    time.Time
	halfOpenInflight int

	now func() time.Time // Stubbed by tests.
}

// Status is a monitoring snapshot of the breaker.
type Status struct {
	State         State
	FailureCount  int
	SuccessCount  int
	LastFailureAt time.Time
	RecoveryAt    time.Time // Zero unless Open.
}

// New returns a Breaker that opens after |threshold| consecutive failures,
// begins probing after |recovery|, and closes again after |halfOpenMax|
// successful probes.
func New(threshold int, recovery time.Duration, halfOpenMax int) *Breaker {
	return &Breaker{
		threshold:   threshold,
		recovery:    recovery,
		halfOpenMax: halfOpenMax,
		state:       Closed,
		now:         time.Now,
	}
}

// Admit reports whether a call may proceed. In Open state it first applies
// the time-based transition to HalfOpen; in HalfOpen it admits up to
// halfOpenMax concurrent probes.
func (b *Breaker) Admit() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.maybeRecoverLocked()

	switch b.state {
	case Closed:
		return true
	case HalfOpen:
		if b.halfOpenInflight < b.halfOpenMax {
			b.halfOpenInflight++
			return true
		}
		return false
	default:
		return false
	}
}

// State returns the current state, applying the self-healing Open → HalfOpen
// transition when the recovery window has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeRecoverLocked()
	return b.state
}

// RecordSuccess notes a successful call. In Closed state it clears the
// failure count; in HalfOpen it counts toward the probes needed to close.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Closed:
		b.failureCount = 0
	case HalfOpen:
		b.successCount++
		if b.halfOpenInflight > 0 {
			b.halfOpenInflight--
		}
		if b.successCount >= b.halfOpenMax {
			b.transitionLocked(Closed)
			b.failureCount = 0
			b.successCount = 0
		}
	}
}

// RecordFailure notes a failed call. Crossing the threshold in Closed state
// opens the circuit; any failure while half-open re-opens it immediately.
// The recovery clock is stamped only on the transition to Open: failures
// reported while the circuit is already open (rejected calls feeding back
// through retry hooks) must not push the half-open probe further out.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Closed:
		b.failureCount++
		if b.failureCount >= b.threshold {
			b.lastFailureAt = b.now()
			b.transitionLocked(Open)
			log.WithFields(log.Fields{
				"failures":   b.failureCount,
				"recoveryAt": b.lastFailureAt.Add(b.recovery),
			}).Warn("circuit breaker opened")
		}
	case HalfOpen:
		b.halfOpenInflight = 0
		b.successCount = 0
		b.lastFailureAt = b.now()
		b.transitionLocked(Open)
		log.WithField("recoveryAt", b.lastFailureAt.Add(b.recovery)).
			Warn("circuit breaker re-opened by failed probe")
	}
}

// Status returns a snapshot for monitoring.
func (b *Breaker) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeRecoverLocked()

	var s = Status{
		State:         b.state,
		FailureCount:  b.failureCount,
		SuccessCount:  b.successCount,
		LastFailureAt: b.lastFailureAt,
	}
	if b.state == Open {
		s.RecoveryAt = b.lastFailureAt.Add(b.recovery)
	}
	return s
}

// Reset forces the breaker back to Closed and clears all counters.
// Administrative use only.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.transitionLocked(Closed)
	b.failureCount = 0
	b.successCount = 0
	b.halfOpenInflight = 0
	b.lastFailureAt = time.Time{}
}

func (b *Breaker) maybeRecoverLocked() {
	if b.state == Open && b.now().Sub(b.lastFailureAt) >= b.recovery {
		b.transitionLocked(HalfOpen)
		b.halfOpenInflight = 0
		b.successCount = 0
		log.Info("circuit breaker transitioned to half-open")
	}
}

func (b *Breaker) transitionLocked(to State) {
	if b.state == to {
		return
	}
	b.state = to
	stateGauge.Set(float64(to))
	transitionsTotal.WithLabelValues(to.String()).Inc()
}
