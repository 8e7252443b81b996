// Package conn owns the gRPC channel to the terminal bridge: connection
// lifecycle, the server-provided constants table, and the background health
// monitor that feeds the circuit breaker and drives reconnection.
package conn

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tradewire/mt5bridge/go/breaker"
	"github.com/tradewire/mt5bridge/go/config"
	"github.com/tradewire/mt5bridge/go/protocol"
	"github.com/tradewire/mt5bridge/go/retry"
)

// ErrNotConnected is returned when a call requires a live channel and none
// exists. It is a programmer error from the classifier's point of view and
// is never retried.
var ErrNotConnected = errors.New("not connected to terminal bridge")

// ErrNotAvailable signals a feature the remote terminal does not provide.
var ErrNotAvailable = errors.New("feature not available on remote terminal")

// State of the connection.
type State int

const (
	Disconnected State = iota
	Connected
	Reconnecting
	Failed
)

func (s State) String() string {
	switch s {
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	case Failed:
		return "failed"
	default:
		return "disconnected"
	}
}

// HealthStatus is a snapshot of connection health.
type HealthStatus struct {
	State               State
	LastCheck           time.Time
	ConsecutiveFailures int
	Breaker             *breaker.Status // Nil when no breaker is attached.
}

var (
	connectedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mt5bridge_connected",
		Help: "Whether the channel to the terminal bridge is up.",
	})
	reconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mt5bridge_reconnects_total",
		Help: "Count of reconnection attempts triggered by health probes.",
	})
)

// Manager owns the single shared channel per client. Connect and Disconnect
// are idempotent and serialized, so concurrent callers cannot create
// parallel channels.
type Manager struct {
	cfg *config.Config
	brk *breaker.Breaker // May be nil.

	mu        sync.Mutex
	cc        *grpc.ClientConn
	client    protocol.MT5ServiceClient
	state     State
	constants *Constants

	lastCheck     time.Time
	probeFailures int

	monitorStop context.CancelFunc
	monitorDone chan struct{}

	// dial is stubbed by tests.
	dial func(ctx context.Context, target string, opts ...grpc.DialOption) (*grpc.ClientConn, error)
}

// NewManager returns a Manager for the configured endpoint. The breaker may
// be nil when circuit breaking is disabled.
func NewManager(cfg *config.Config, brk *breaker.Breaker) *Manager {
	return &Manager{
		cfg:  cfg,
		brk:  brk,
		dial: grpc.DialContext,
	}
}

// Connect establishes the channel, loads the terminal constants table, and
// starts the health monitor. Calling Connect on a live manager is a no-op.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Connected {
		return nil
	}

	var dialCtx, cancel = context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	var opts = append(m.cfg.ChannelOptions(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		// Instrument client for gRPC metric collection.
		grpc.WithUnaryInterceptor(grpc_prometheus.UnaryClientInterceptor),
		grpc.WithStreamInterceptor(grpc_prometheus.StreamClientInterceptor),
		grpc.WithBlock(),
	)
	var cc, err = m.dial(dialCtx, m.cfg.Endpoint(), opts...)
	if err != nil {
		m.state = Failed
		return fmt.Errorf("dialing %s: %w", m.cfg.Endpoint(), err)
	}
	m.cc = cc
	m.client = protocol.NewMT5ServiceClient(cc)

	if err = m.loadConstantsLocked(ctx); err != nil {
		_ = cc.Close()
		m.cc, m.client = nil, nil
		m.state = Failed
		return err
	}

	m.state = Connected
	m.probeFailures = 0
	connectedGauge.Set(1)
	log.WithField("endpoint", m.cfg.Endpoint()).Info("connected to terminal bridge")

	if m.cfg.EnableHealthMonitor && m.monitorStop == nil {
		var mctx context.Context
		mctx, m.monitorStop = context.WithCancel(context.Background())
		m.monitorDone = make(chan struct{})
		go m.monitor(mctx)
	}
	return nil
}

func (m *Manager) loadConstantsLocked(ctx context.Context) error {
	var cctx, cancel = context.WithTimeout(ctx, m.cfg.CallTimeout)
	defer cancel()

	var resp, err = m.client.GetConstants(cctx, &protocol.Empty{})
	if err != nil {
		return fmt.Errorf("loading terminal constants: %w", err)
	}
	m.constants = NewConstants(resp.GetValues())
	log.WithField("count", m.constants.Len()).Debug("loaded terminal constants")
	return nil
}

// Disconnect tears the channel down. Idempotent.
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	var stop = m.monitorStop
	var done = m.monitorDone
	m.monitorStop, m.monitorDone = nil, nil
	m.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cc == nil {
		m.state = Disconnected
		return nil
	}
	var err = m.cc.Close()
	m.cc, m.client = nil, nil
	m.state = Disconnected
	connectedGauge.Set(0)
	log.Info("disconnected from terminal bridge")
	return err
}

// IsConnected reports whether the channel is up.
func (m *Manager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == Connected
}

// EnsureConnected connects if necessary.
func (m *Manager) EnsureConnected(ctx context.Context) error {
	if m.IsConnected() {
		return nil
	}
	return m.Connect(ctx)
}

// Client returns the stub for the live channel.
func (m *Manager) Client() (protocol.MT5ServiceClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Connected || m.client == nil {
		return nil, ErrNotConnected
	}
	return m.client, nil
}

// Constants returns the table loaded at connect, or nil before connect.
func (m *Manager) Constants() *Constants {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.constants
}

// Health returns a snapshot of connection health.
func (m *Manager) Health() HealthStatus {
	m.mu.Lock()
	var s = HealthStatus{
		State:               m.state,
		LastCheck:           m.lastCheck,
		ConsecutiveFailures: m.probeFailures,
	}
	m.mu.Unlock()
	if m.brk != nil {
		var bs = m.brk.Status()
		s.Breaker = &bs
	}
	return s
}

// Probe performs one health check against the terminal.
func (m *Manager) Probe(ctx context.Context) bool {
	var client, err = m.Client()
	if err != nil {
		return false
	}
	var cctx, cancel = context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()
	var resp *protocol.HealthStatus
	if resp, err = client.HealthCheck(cctx, &protocol.Empty{}); err != nil {
		return false
	}
	return resp.GetHealthy()
}

// monitor probes the terminal on a fixed interval. Probe failures count
// against the breaker (policy decision: a monitor failure is evidence of
// the same fault an in-flight call would see) and trigger reconnection
// under backoff when auto-reconnect is enabled.
func (m *Manager) monitor(ctx context.Context) {
	defer close(m.monitorDone)

	var ticker = time.NewTicker(m.cfg.HealthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var healthy = m.Probe(ctx)
		m.mu.Lock()
		m.lastCheck = time.Now()
		if healthy {
			m.probeFailures = 0
			m.mu.Unlock()
			continue
		}
		m.probeFailures++
		var failures = m.probeFailures
		m.state = Reconnecting
		m.mu.Unlock()

		if m.brk != nil {
			m.brk.RecordFailure()
		}
		log.WithField("failures", failures).Warn("health probe failed")

		if !m.cfg.EnableAutoReconnect {
			continue
		}
		reconnectsTotal.Inc()
		var ok = retry.ReconnectWithBackoff(ctx, m.cfg, func(ctx context.Context) error {
			if err := m.reconnect(ctx); err != nil {
				return err
			}
			return nil
		})
		if ok {
			m.mu.Lock()
			m.probeFailures = 0
			m.mu.Unlock()
			log.Info("reconnected to terminal bridge")
		} else {
			m.mu.Lock()
			m.state = Failed
			m.mu.Unlock()
		}
	}
}

func (m *Manager) reconnect(ctx context.Context) error {
	m.mu.Lock()
	if m.cc != nil {
		_ = m.cc.Close()
		m.cc, m.client = nil, nil
	}
	m.state = Disconnected
	connectedGauge.Set(0)
	m.mu.Unlock()
	return m.Connect(ctx)
}
