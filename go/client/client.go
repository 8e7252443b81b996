// Package client is the typed façade over the MT5 terminal bridge. Every
// remote call is admitted through the priority queue, gated by the circuit
// breaker, and retried per the classifier's disposition of each failure.
// Order submission additionally runs under the transaction orchestrator
// with write-ahead logging.
package client

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/tradewire/mt5bridge/go/breaker"
	"github.com/tradewire/mt5bridge/go/classify"
	"github.com/tradewire/mt5bridge/go/config"
	"github.com/tradewire/mt5bridge/go/conn"
	"github.com/tradewire/mt5bridge/go/protocol"
	"github.com/tradewire/mt5bridge/go/queue"
	"github.com/tradewire/mt5bridge/go/retry"
	"github.com/tradewire/mt5bridge/go/txn"
	"github.com/tradewire/mt5bridge/go/wal"
)

// ErrEmptyResponse signals an RPC that returned no payload where one was
// expected.
var ErrEmptyResponse = errors.New("terminal returned an empty response")

// Client is a resilient MT5 terminal bridge client. It is safe for use by
// many concurrent callers.
type Client struct {
	cfg     *config.Config
	brk     *breaker.Breaker // Nil when circuit breaking is disabled.
	mgr     *conn.Manager
	queue   *queue.Queue
	journal *wal.Log
	orch    *txn.Orchestrator
}

// New assembles a Client from configuration. The client is not connected;
// call Connect before issuing RPCs.
func New(cfg *config.Config) *Client {
	var c = &Client{cfg: cfg}
	if cfg.EnableCircuitBreaker {
		c.brk = breaker.New(cfg.CBThreshold, cfg.CBRecovery, cfg.CBHalfOpenMax)
	}
	c.mgr = conn.NewManager(cfg, c.brk)
	c.queue = queue.New(cfg.QueueMaxDepth, cfg.QueueMaxConcurrent)
	c.orch = &txn.Orchestrator{
		Config:      cfg,
		ExecuteGRPC: c.executeOrderGRPC,
		VerifyState: c.verifyOrderState,
		HealthCheck: c.mgr.Probe,
		Breaker:     c.brk,
	}
	return c
}

// Connect establishes the channel, opens the order WAL, and reconciles any
// incomplete entries left by a previous crash.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.mgr.Connect(ctx); err != nil {
		return err
	}

	var journal, err = wal.Open(c.cfg.WALPath, c.cfg.WALRetentionDays)
	if err != nil {
		_ = c.mgr.Disconnect()
		return fmt.Errorf("opening order WAL: %w", err)
	}
	c.journal = journal
	c.orch.WAL = journal

	if recovered, failed, err := c.RecoverOrders(ctx); err != nil {
		log.WithField("err", err).Warn("order recovery incomplete")
	} else if recovered+failed > 0 {
		log.WithFields(log.Fields{"recovered": recovered, "failed": failed}).
			Info("reconciled incomplete orders from previous run")
	}

	if _, err := c.journal.CleanupOld(0); err != nil {
		log.WithField("err", err).Warn("WAL retention cleanup failed")
	}
	return nil
}

// Disconnect closes the channel and the WAL. Idempotent.
func (c *Client) Disconnect() error {
	var err = c.mgr.Disconnect()
	if werr := c.journal.Close(); err == nil {
		err = werr
	}
	c.journal = nil
	c.orch.WAL = nil
	return err
}

// Close disconnects and stops the request queue. The client is unusable
// afterwards.
func (c *Client) Close() error {
	var err = c.Disconnect()
	c.queue.Close()
	return err
}

// IsConnected reports whether the channel is up.
func (c *Client) IsConnected() bool { return c.mgr.IsConnected() }

// Health returns a connection health snapshot.
func (c *Client) Health() conn.HealthStatus { return c.mgr.Health() }

// BreakerStatus returns the circuit breaker snapshot, or nil when circuit
// breaking is disabled.
func (c *Client) BreakerStatus() *breaker.Status {
	if c.brk == nil {
		return nil
	}
	var s = c.brk.Status()
	return &s
}

// ResetBreaker forces the breaker closed. Administrative use only.
func (c *Client) ResetBreaker() {
	if c.brk != nil {
		c.brk.Reset()
	}
}

// WAL exposes the order journal for operational tooling.
func (c *Client) WAL() *wal.Log { return c.journal }

// resilientCall routes one RPC through the full reliability stack: queue
// admission under the operation's priority, then a retry loop whose every
// attempt is breaker-gated and deadline-bounded. Identical concurrent reads
// may pass a coalesce key to share one execution; order submission never
// does.
func resilientCall[T any](
	ctx context.Context,
	c *Client,
	op, coalesceKey string,
	fn func(ctx context.Context, stub protocol.MT5ServiceClient) (T, error),
) (T, error) {
	var zero T

	var future, err = c.queue.Submit(op, coalesceKey, func(qctx context.Context) (interface{}, error) {
		return retry.Do(qctx, retry.Options{
			Op:          op,
			MaxAttempts: c.cfg.RetryMaxAttempts,
			Delay:       c.cfg.DelayFor,
			ShouldRetry: classify.IsRetryable,
			OnSuccess:   c.recordSuccess,
			OnFailure:   c.recordFailure,
			BeforeRetry: c.mgr.EnsureConnected,
		}, func(actx context.Context) (interface{}, error) {
			return attempt(actx, c, op, fn)
		})
	})
	if err != nil {
		return zero, err
	}

	var val, werr = future.Wait(ctx)
	if werr != nil {
		return zero, werr
	}
	result, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", op, val)
	}
	return result, nil
}

// attempt is a single breaker-gated, deadline-bounded transport call.
func attempt[T any](ctx context.Context, c *Client, op string, fn func(ctx context.Context, stub protocol.MT5ServiceClient) (T, error)) (interface{}, error) {
	if c.brk != nil && !c.brk.Admit() {
		return nil, breaker.ErrOpen
	}
	var stub, err = c.mgr.Client()
	if err != nil {
		return nil, err
	}

	var result, timedOut, callErr = retry.WithTimeout(ctx, c.cfg.CallTimeout, op,
		func(tctx context.Context) (T, error) {
			return fn(tctx, stub)
		})
	if callErr != nil {
		return nil, callErr
	}
	if timedOut {
		return nil, context.DeadlineExceeded
	}
	return result, nil
}

func (c *Client) recordSuccess() {
	if c.brk != nil {
		c.brk.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.brk != nil {
		c.brk.RecordFailure()
	}
}
