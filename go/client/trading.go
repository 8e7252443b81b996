package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tradewire/mt5bridge/go/protocol"
	"github.com/tradewire/mt5bridge/go/retry"
	"github.com/tradewire/mt5bridge/go/txn"
)

// OrderCalcMargin returns the margin required for a planned trade, or nil
// when the terminal cannot compute one.
func (c *Client) OrderCalcMargin(ctx context.Context, action int32, symbol string, volume, price float64) (*float64, error) {
	var key = fmt.Sprintf("order_calc_margin:%d:%s:%g:%g", action, symbol, volume, price)
	return resilientCall(ctx, c, "order_calc_margin", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*float64, error) {
			var resp, err = stub.OrderCalcMargin(ctx, &protocol.MarginRequest{
				Action: action,
				Symbol: symbol,
				Volume: volume,
				Price:  price,
			})
			if err != nil {
				return nil, err
			}
			if !resp.GetHasValue() {
				return nil, nil
			}
			var v = resp.GetValue()
			return &v, nil
		})
}

// OrderCalcProfit returns the profit of a hypothetical trade between two
// prices, or nil when the terminal cannot compute one.
func (c *Client) OrderCalcProfit(ctx context.Context, action int32, symbol string, volume, priceOpen, priceClose float64) (*float64, error) {
	var key = fmt.Sprintf("order_calc_profit:%d:%s:%g:%g:%g", action, symbol, volume, priceOpen, priceClose)
	return resilientCall(ctx, c, "order_calc_profit", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*float64, error) {
			var resp, err = stub.OrderCalcProfit(ctx, &protocol.ProfitRequest{
				Action:     action,
				Symbol:     symbol,
				Volume:     volume,
				PriceOpen:  priceOpen,
				PriceClose: priceClose,
			})
			if err != nil {
				return nil, err
			}
			if !resp.GetHasValue() {
				return nil, nil
			}
			var v = resp.GetValue()
			return &v, nil
		})
}

// OrderCheck asks the terminal to validate a trade request without
// executing it. The request is serialized as-is; no idempotency marking.
func (c *Client) OrderCheck(ctx context.Context, request *TradeRequest) (*OrderCheckResult, error) {
	var raw, err = json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("serializing order check request: %w", err)
	}
	return resilientCall(ctx, c, "order_check", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*OrderCheckResult, error) {
			var resp, err = stub.OrderCheck(ctx, &protocol.OrderRequest{JsonRequest: string(raw)})
			if err != nil {
				return nil, err
			}
			var out OrderCheckResult
			if err = decodeJSON(resp.GetJsonData(), &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// OrderSend submits an order through the transaction orchestrator: the
// intent is journaled before transmission, tagged with an idempotency key
// in the comment field, and every ambiguous outcome is resolved against
// terminal history before any resend. Submissions are queued at critical
// priority and never coalesced.
func (c *Client) OrderSend(ctx context.Context, request *TradeRequest) (*TradeResult, error) {
	var intent, err = request.intent()
	if err != nil {
		return nil, err
	}

	future, err := c.queue.Submit("order_send", "", func(qctx context.Context) (interface{}, error) {
		return c.orch.Execute(qctx, intent)
	})
	if err != nil {
		return nil, err
	}

	var val, werr = future.Wait(ctx)
	if werr != nil {
		return nil, werr
	}
	result, ok := val.(*txn.Result)
	if !ok {
		return nil, fmt.Errorf("order_send: unexpected result type %T", val)
	}
	return result, nil
}

// executeOrderGRPC is the orchestrator's transport hook: one raw
// deadline-bounded OrderSend RPC. An empty payload maps to (nil, nil),
// which the orchestrator treats as the ambiguous case. Retry, breaker, and
// journaling all live in the orchestrator, so no resilientCall here.
func (c *Client) executeOrderGRPC(ctx context.Context, requestJSON string, _ int) (*txn.Result, error) {
	var stub, err = c.mgr.Client()
	if err != nil {
		return nil, err
	}

	var resp, timedOut, callErr = retry.WithTimeout(ctx, c.cfg.CallTimeout, "order_send",
		func(tctx context.Context) (*protocol.DictData, error) {
			return stub.OrderSend(tctx, &protocol.OrderRequest{JsonRequest: requestJSON})
		})
	if callErr != nil {
		return nil, callErr
	}
	if timedOut {
		return nil, context.DeadlineExceeded
	}
	if resp.GetJsonData() == "" {
		return nil, nil
	}

	var result txn.Result
	if err = json.Unmarshal([]byte(resp.GetJsonData()), &result); err != nil {
		return nil, fmt.Errorf("decoding trade result: %w", err)
	}
	result.Raw = json.RawMessage(resp.GetJsonData())
	return &result, nil
}

// verifyOrderState is the orchestrator's verification hook: it searches
// recent terminal history for a deal or order whose comment carries
// |requestID| and reconstructs the executed result from it. A nil return
// means no trace of execution was found.
func (c *Client) verifyOrderState(ctx context.Context, requestID string) (*txn.Result, error) {
	var stub, err = c.mgr.Client()
	if err != nil {
		return nil, err
	}
	var now = time.Now()
	var req = &protocol.HistoryRequest{
		DateFrom: now.Add(-c.cfg.RecoveryWindow).Unix(),
		DateTo:   now.Add(c.cfg.RecoveryWindow).Unix(),
	}

	deals, err := stub.HistoryDealsGet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching deal history: %w", err)
	}
	for _, item := range deals.GetJsonItems() {
		var deal Deal
		if json.Unmarshal([]byte(item), &deal) != nil {
			continue
		}
		if id, ok := txn.ExtractRequestID(deal.Comment); ok && id == requestID {
			return &txn.Result{
				Retcode: protocol.RetcodeDone,
				Deal:    deal.Ticket,
				Order:   deal.Order,
				Volume:  deal.Volume,
				Price:   deal.Price,
				Comment: deal.Comment,
				Raw:     json.RawMessage(item),
			}, nil
		}
	}

	orders, err := stub.HistoryOrdersGet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching order history: %w", err)
	}
	for _, item := range orders.GetJsonItems() {
		var order Order
		if json.Unmarshal([]byte(item), &order) != nil {
			continue
		}
		if id, ok := txn.ExtractRequestID(order.Comment); ok && id == requestID {
			return &txn.Result{
				Retcode: protocol.RetcodePlaced,
				Order:   order.Ticket,
				Volume:  order.VolumeInitial,
				Price:   order.PriceOpen,
				Comment: order.Comment,
				Raw:     json.RawMessage(item),
			}, nil
		}
	}
	return nil, nil
}

// RecoverOrders reconciles Pending and Sent WAL entries left by a previous
// run against terminal history. Invoked automatically from Connect; exposed
// for operational tooling.
func (c *Client) RecoverOrders(ctx context.Context) (recovered, failed int, err error) {
	if c.journal == nil {
		return 0, 0, nil
	}
	return txn.RecoverIncomplete(ctx, c.journal, c.cfg.RecoveryWindow,
		func(sctx context.Context, from, to time.Time) ([]txn.HistoryRecord, error) {
			return c.historyRecords(sctx, from, to)
		})
}

// historyRecords flattens deals and orders in [from, to] into the recovery
// search shape.
func (c *Client) historyRecords(ctx context.Context, from, to time.Time) ([]txn.HistoryRecord, error) {
	var stub, err = c.mgr.Client()
	if err != nil {
		return nil, err
	}
	var req = &protocol.HistoryRequest{DateFrom: from.Unix(), DateTo: to.Unix()}

	deals, err := stub.HistoryDealsGet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching deal history: %w", err)
	}
	orders, err := stub.HistoryOrdersGet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching order history: %w", err)
	}

	var out = make([]txn.HistoryRecord, 0, len(deals.GetJsonItems())+len(orders.GetJsonItems()))
	for _, item := range deals.GetJsonItems() {
		var deal Deal
		if json.Unmarshal([]byte(item), &deal) == nil {
			out = append(out, txn.HistoryRecord{Comment: deal.Comment, Payload: item})
		}
	}
	for _, item := range orders.GetJsonItems() {
		var order Order
		if json.Unmarshal([]byte(item), &order) == nil {
			out = append(out, txn.HistoryRecord{Comment: order.Comment, Payload: item})
		}
	}
	return out, nil
}
