package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tradewire/mt5bridge/go/protocol"
)

// SymbolsTotal returns the number of symbols known to the terminal.
func (c *Client) SymbolsTotal(ctx context.Context) (int64, error) {
	return resilientCall(ctx, c, "symbols_total", "symbols_total",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (int64, error) {
			var resp, err = stub.SymbolsTotal(ctx, &protocol.Empty{})
			if err != nil {
				return 0, err
			}
			return resp.GetValue(), nil
		})
}

// SymbolsGet returns symbol metadata, optionally filtered by |group|.
// The server streams large symbol sets as JSON-array chunks which are
// concatenated here.
func (c *Client) SymbolsGet(ctx context.Context, group string) ([]SymbolInfo, error) {
	return resilientCall(ctx, c, "symbols_get", "symbols_get:"+group,
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]SymbolInfo, error) {
			var resp, err = stub.SymbolsGet(ctx, &protocol.SymbolsRequest{Group: group})
			if err != nil {
				return nil, err
			}
			var out = make([]SymbolInfo, 0, resp.GetTotal())
			for i, chunk := range resp.GetChunks() {
				var part []SymbolInfo
				if err = json.Unmarshal([]byte(chunk), &part); err != nil {
					return nil, fmt.Errorf("decoding symbol chunk %d: %w", i, err)
				}
				out = append(out, part...)
			}
			return out, nil
		})
}

// SymbolInfo returns metadata for one symbol.
func (c *Client) SymbolInfo(ctx context.Context, symbol string) (*SymbolInfo, error) {
	return resilientCall(ctx, c, "symbol_info", "symbol_info:"+symbol,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*SymbolInfo, error) {
			var resp, err = stub.SymbolInfo(ctx, &protocol.SymbolRequest{Symbol: symbol})
			if err != nil {
				return nil, err
			}
			var out SymbolInfo
			if err = decodeJSON(resp.GetJsonData(), &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// SymbolInfoTick returns the latest quote of a symbol.
func (c *Client) SymbolInfoTick(ctx context.Context, symbol string) (*Tick, error) {
	return resilientCall(ctx, c, "symbol_info_tick", "symbol_info_tick:"+symbol,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Tick, error) {
			var resp, err = stub.SymbolInfoTick(ctx, &protocol.SymbolRequest{Symbol: symbol})
			if err != nil {
				return nil, err
			}
			var out Tick
			if err = decodeJSON(resp.GetJsonData(), &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
}

// SymbolSelect shows or hides a symbol in the terminal's market watch.
func (c *Client) SymbolSelect(ctx context.Context, symbol string, enable bool) (bool, error) {
	return resilientCall(ctx, c, "symbol_select", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.SymbolSelect(ctx, &protocol.SymbolSelectRequest{
				Symbol: symbol,
				Enable: enable,
			})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}
