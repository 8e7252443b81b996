package client

import (
	"context"

	"github.com/tradewire/mt5bridge/go/protocol"
)

// MarketBookAdd subscribes to depth-of-market events for a symbol.
func (c *Client) MarketBookAdd(ctx context.Context, symbol string) (bool, error) {
	return resilientCall(ctx, c, "market_book_add", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.MarketBookAdd(ctx, &protocol.SymbolRequest{Symbol: symbol})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}

// MarketBookGet returns the current depth-of-market snapshot for a
// subscribed symbol.
func (c *Client) MarketBookGet(ctx context.Context, symbol string) ([]BookEntry, error) {
	return resilientCall(ctx, c, "market_book_get", "market_book_get:"+symbol,
		func(ctx context.Context, stub protocol.MT5ServiceClient) ([]BookEntry, error) {
			var resp, err = stub.MarketBookGet(ctx, &protocol.SymbolRequest{Symbol: symbol})
			if err != nil {
				return nil, err
			}
			return decodeJSONList[BookEntry](resp.GetJsonItems())
		})
}

// MarketBookRelease cancels a depth-of-market subscription.
func (c *Client) MarketBookRelease(ctx context.Context, symbol string) (bool, error) {
	return resilientCall(ctx, c, "market_book_release", "",
		func(ctx context.Context, stub protocol.MT5ServiceClient) (bool, error) {
			var resp, err = stub.MarketBookRelease(ctx, &protocol.SymbolRequest{Symbol: symbol})
			if err != nil {
				return false, err
			}
			return resp.GetResult(), nil
		})
}
