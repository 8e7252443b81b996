package client

import (
	"context"
	"fmt"
	"time"

	"github.com/tradewire/mt5bridge/go/protocol"
)

// PositionsTotal returns the number of open positions.
func (c *Client) PositionsTotal(ctx context.Context) (int64, error) {
	return resilientCall(ctx, c, "positions_total", "positions_total",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (int64, error) {
			var resp, err = stub.PositionsTotal(ctx, &protocol.Empty{})
			if err != nil {
				return 0, err
			}
			return resp.GetValue(), nil
		})
}

// PositionsGet returns open positions filtered by symbol, group, or ticket.
// Zero values leave a filter unset.
func (c *Client) PositionsGet(ctx context.Context, symbol, group string, ticket int64) ([]Position, error) {
	var key = fmt.Sprintf("positions_get:%s:%s:%d", symbol, group, ticket)
	return resilientCall(ctx, c, "positions_get", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]Position, error) {
			var resp, err = stub.PositionsGet(ctx, &protocol.PositionsRequest{
				Symbol: symbol,
				Group:  group,
				Ticket: ticket,
			})
			if err != nil {
				return nil, err
			}
			return decodeJSONList[Position](resp.GetJsonItems())
		})
}

// OrdersTotal returns the number of pending orders.
func (c *Client) OrdersTotal(ctx context.Context) (int64, error) {
	return resilientCall(ctx, c, "orders_total", "orders_total",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (int64, error) {
			var resp, err = stub.OrdersTotal(ctx, &protocol.Empty{})
			if err != nil {
				return 0, err
			}
			return resp.GetValue(), nil
		})
}

// OrdersGet returns pending orders filtered by symbol, group, or ticket.
func (c *Client) OrdersGet(ctx context.Context, symbol, group string, ticket int64) ([]Order, error) {
	var key = fmt.Sprintf("orders_get:%s:%s:%d", symbol, group, ticket)
	return resilientCall(ctx, c, "orders_get", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]Order, error) {
			var resp, err = stub.OrdersGet(ctx, &protocol.OrdersRequest{
				Symbol: symbol,
				Group:  group,
				Ticket: ticket,
			})
			if err != nil {
				return nil, err
			}
			return decodeJSONList[Order](resp.GetJsonItems())
		})
}

// HistoryFilter bounds a trading-history query. Exactly one of the time
// range, Ticket, or Position should be set; the terminal ignores the rest.
type HistoryFilter struct {
	From     time.Time
	To       time.Time
	Group    string
	Ticket   int64
	Position int64
}

func (f *HistoryFilter) proto() *protocol.HistoryRequest {
	var req = &protocol.HistoryRequest{
		Group:    f.Group,
		Ticket:   f.Ticket,
		Position: f.Position,
	}
	if !f.From.IsZero() {
		req.DateFrom = f.From.Unix()
	}
	if !f.To.IsZero() {
		req.DateTo = f.To.Unix()
	}
	return req
}

func (f *HistoryFilter) key(op string) string {
	return fmt.Sprintf("%s:%d:%d:%s:%d:%d",
		op, f.From.Unix(), f.To.Unix(), f.Group, f.Ticket, f.Position)
}

// HistoryOrdersTotal counts historical orders matching the filter.
func (c *Client) HistoryOrdersTotal(ctx context.Context, filter HistoryFilter) (int64, error) {
	return resilientCall(ctx, c, "history_orders_total", filter.key("history_orders_total"),
		func(ctx context.Context, stub protocol.MT5ServiceClient) (int64, error) {
			var resp, err = stub.HistoryOrdersTotal(ctx, filter.proto())
			if err != nil {
				return 0, err
			}
			return resp.GetValue(), nil
		})
}

// HistoryOrdersGet returns historical orders matching the filter.
func (c *Client) HistoryOrdersGet(ctx context.Context, filter HistoryFilter) ([]Order, error) {
	return resilientCall(ctx, c, "history_orders_get", filter.key("history_orders_get"),
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]Order, error) {
			var resp, err = stub.HistoryOrdersGet(ctx, filter.proto())
			if err != nil {
				return nil, err
			}
			return decodeJSONList[Order](resp.GetJsonItems())
		})
}

// HistoryDealsTotal counts historical deals matching the filter.
func (c *Client) HistoryDealsTotal(ctx context.Context, filter HistoryFilter) (int64, error) {
	return resilientCall(ctx, c, "history_deals_total", filter.key("history_deals_total"),
		func(ctx context.Context, stub protocol.MT5ServiceClient) (int64, error) {
			var resp, err = stub.HistoryDealsTotal(ctx, filter.proto())
			if err != nil {
				return 0, err
			}
			return resp.GetValue(), nil
		})
}

// HistoryDealsGet returns historical deals matching the filter.
func (c *Client) HistoryDealsGet(ctx context.Context, filter HistoryFilter) ([]Deal, error) {
	return resilientCall(ctx, c, "history_deals_get", filter.key("history_deals_get"),
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]Deal, error) {
			var resp, err = stub.HistoryDealsGet(ctx, filter.proto())
			if err != nil {
				return nil, err
			}
			return decodeJSONList[Deal](resp.GetJsonItems())
		})
}
