package client

import (
	"context"
	"fmt"
	"time"

	"github.com/tradewire/mt5bridge/go/protocol"
)

// CopyRatesFrom returns |count| bars of |symbol| at |timeframe| starting
// from |from|.
func (c *Client) CopyRatesFrom(ctx context.Context, symbol string, timeframe int32, from time.Time, count int32) (*Array, error) {
	var key = fmt.Sprintf("copy_rates_from:%s:%d:%d:%d", symbol, timeframe, from.Unix(), count)
	return resilientCall(ctx, c, "copy_rates_from", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Array, error) {
			var resp, err = stub.CopyRatesFrom(ctx, &protocol.CopyRatesRequest{
				Symbol:    symbol,
				Timeframe: timeframe,
				DateFrom:  from.Unix(),
				Count:     count,
			})
			if err != nil {
				return nil, err
			}
			return decodeArray(resp)
		})
}

// CopyRatesFromPos returns |count| bars starting at bar index |startPos|.
func (c *Client) CopyRatesFromPos(ctx context.Context, symbol string, timeframe, startPos, count int32) (*Array, error) {
	var key = fmt.Sprintf("copy_rates_from_pos:%s:%d:%d:%d", symbol, timeframe, startPos, count)
	return resilientCall(ctx, c, "copy_rates_from_pos", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Array, error) {
			var resp, err = stub.CopyRatesFromPos(ctx, &protocol.CopyRatesPosRequest{
				Symbol:    symbol,
				Timeframe: timeframe,
				StartPos:  startPos,
				Count:     count,
			})
			if err != nil {
				return nil, err
			}
			return decodeArray(resp)
		})
}

// CopyRatesRange returns the bars of |symbol| between |from| and |to|.
func (c *Client) CopyRatesRange(ctx context.Context, symbol string, timeframe int32, from, to time.Time) (*Array, error) {
	var key = fmt.Sprintf("copy_rates_range:%s:%d:%d:%d", symbol, timeframe, from.Unix(), to.Unix())
	return resilientCall(ctx, c, "copy_rates_range", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Array, error) {
			var resp, err = stub.CopyRatesRange(ctx, &protocol.CopyRatesRangeRequest{
				Symbol:    symbol,
				Timeframe: timeframe,
				DateFrom:  from.Unix(),
				DateTo:    to.Unix(),
			})
			if err != nil {
				return nil, err
			}
			return decodeArray(resp)
		})
}

// CopyTicksFrom returns |count| ticks of |symbol| starting from |from|.
func (c *Client) CopyTicksFrom(ctx context.Context, symbol string, from time.Time, count, flags int32) (*Array, error) {
	var key = fmt.Sprintf("copy_ticks_from:%s:%d:%d:%d", symbol, from.Unix(), count, flags)
	return resilientCall(ctx, c, "copy_ticks_from", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Array, error) {
			var resp, err = stub.CopyTicksFrom(ctx, &protocol.CopyTicksRequest{
				Symbol:   symbol,
				DateFrom: from.Unix(),
				Count:    count,
				Flags:    flags,
			})
			if err != nil {
				return nil, err
			}
			return decodeArray(resp)
		})
}

// CopyTicksRange returns the ticks of |symbol| between |from| and |to|.
func (c *Client) CopyTicksRange(ctx context.Context, symbol string, from, to time.Time, flags int32) (*Array, error) {
	var key = fmt.Sprintf("copy_ticks_range:%s:%d:%d:%d", symbol, from.Unix(), to.Unix(), flags)
	return resilientCall(ctx, c, "copy_ticks_range", key,
		func(ctx context.Context, stub protocol.MT5ServiceClient) (*Array, error) {
			var resp, err = stub.CopyTicksRange(ctx, &protocol.CopyTicksRangeRequest{
				Symbol:   symbol,
				DateFrom: from.Unix(),
				DateTo:   to.Unix(),
				Flags:    flags,
			})
			if err != nil {
				return nil, err
			}
			return decodeArray(resp)
		})
}
