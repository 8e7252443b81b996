package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tradewire/mt5bridge/go/txn"
)

// OrderSendAsync submits an order without blocking the caller. The
// idempotency key is generated eagerly and returned immediately so the
// caller can correlate the eventual callback, or search terminal history
// itself if the process dies first. Exactly one of |onComplete| and
// |onError| fires, from a queue worker goroutine.
func (c *Client) OrderSendAsync(
	ctx context.Context,
	request *TradeRequest,
	onComplete func(requestID string, result *TradeResult),
	onError func(requestID string, err error),
) (string, error) {
	var intent, err = request.intent()
	if err != nil {
		return "", err
	}
	requestID, requestJSON, err := c.orch.Prepare(intent)
	if err != nil {
		return "", err
	}

	future, err := c.queue.Submit("order_send", "", func(qctx context.Context) (interface{}, error) {
		return c.orch.ExecutePrepared(qctx, requestID, requestJSON)
	})
	if err != nil {
		return "", err
	}

	go func() {
		var val, werr = future.Wait(ctx)
		if werr != nil {
			if onError != nil {
				onError(requestID, werr)
			}
			return
		}
		result, ok := val.(*txn.Result)
		if !ok {
			if onError != nil {
				onError(requestID, fmt.Errorf("order_send: unexpected result type %T", val))
			}
			return
		}
		if onComplete != nil {
			onComplete(requestID, result)
		}
	}()
	return requestID, nil
}

// BatchOutcome is the result of one order within a batch.
type BatchOutcome struct {
	Index     int
	RequestID string
	Result    *TradeResult
	Err       error
}

// OrderSendBatch submits several orders concurrently, each under its own
// idempotency key and orchestrator transaction. Outcomes are returned in
// submission order once all orders settle; the returned error is the first
// failure, if any. A shared batch id tags the log lines for correlation.
func (c *Client) OrderSendBatch(ctx context.Context, requests []*TradeRequest) ([]BatchOutcome, error) {
	var batchID = uuid.NewString()
	var outcomes = make([]BatchOutcome, len(requests))
	var mu sync.Mutex

	var group, gctx = errgroup.WithContext(ctx)
	for i, request := range requests {
		var i, request = i, request
		group.Go(func() error {
			var intent, err = request.intent()
			if err != nil {
				mu.Lock()
				outcomes[i] = BatchOutcome{Index: i, Err: err}
				mu.Unlock()
				return err
			}
			requestID, requestJSON, err := c.orch.Prepare(intent)
			if err != nil {
				mu.Lock()
				outcomes[i] = BatchOutcome{Index: i, Err: err}
				mu.Unlock()
				return err
			}

			future, err := c.queue.Submit("order_send", "", func(qctx context.Context) (interface{}, error) {
				return c.orch.ExecutePrepared(qctx, requestID, requestJSON)
			})
			if err != nil {
				mu.Lock()
				outcomes[i] = BatchOutcome{Index: i, RequestID: requestID, Err: err}
				mu.Unlock()
				return err
			}

			var outcome = BatchOutcome{Index: i, RequestID: requestID}
			if val, werr := future.Wait(gctx); werr != nil {
				outcome.Err = werr
			} else if result, ok := val.(*txn.Result); ok {
				outcome.Result = result
			} else {
				outcome.Err = fmt.Errorf("order_send: unexpected result type %T", val)
			}
			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return outcome.Err
		})
	}

	var err = group.Wait()
	log.WithFields(log.Fields{
		"batchID": batchID,
		"orders":  len(requests),
		"failed":  err != nil,
	}).Info("order batch settled")
	return outcomes, err
}
