package client

import (
	"encoding/json"
	"fmt"

	"github.com/tradewire/mt5bridge/go/txn"
)

// Decoded terminal payloads. Field names follow the terminal's JSON keys;
// the reliability layer never inspects these shapes.

// AccountInfo is the terminal's trading account snapshot.
type AccountInfo struct {
	Login       int64   `json:"login"`
	TradeMode   int64   `json:"trade_mode"`
	Leverage    int64   `json:"leverage"`
	Balance     float64 `json:"balance"`
	Credit      float64 `json:"credit"`
	Profit      float64 `json:"profit"`
	Equity      float64 `json:"equity"`
	Margin      float64 `json:"margin"`
	MarginFree  float64 `json:"margin_free"`
	MarginLevel float64 `json:"margin_level"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Server      string  `json:"server"`
	Company     string  `json:"company"`
}

// TerminalInfo is the terminal application snapshot.
type TerminalInfo struct {
	Build        int64  `json:"build"`
	Connected    bool   `json:"connected"`
	TradeAllowed bool   `json:"trade_allowed"`
	Name         string `json:"name"`
	Path         string `json:"path"`
	DataPath     string `json:"data_path"`
	Company      string `json:"company"`
	Language     string `json:"language"`
}

// SymbolInfo is the terminal's symbol metadata record.
type SymbolInfo struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Path              string  `json:"path"`
	CurrencyBase      string  `json:"currency_base"`
	CurrencyProfit    string  `json:"currency_profit"`
	CurrencyMargin    string  `json:"currency_margin"`
	Digits            int64   `json:"digits"`
	Point             float64 `json:"point"`
	Spread            int64   `json:"spread"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Last              float64 `json:"last"`
	VolumeMin         float64 `json:"volume_min"`
	VolumeMax         float64 `json:"volume_max"`
	VolumeStep        float64 `json:"volume_step"`
	TradeMode         int64   `json:"trade_mode"`
	TradeContractSize float64 `json:"trade_contract_size"`
	Visible           bool    `json:"visible"`
	Selected          bool    `json:"select"`
}

// Tick is one quote of a symbol.
type Tick struct {
	Time       int64   `json:"time"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Last       float64 `json:"last"`
	Volume     int64   `json:"volume"`
	TimeMsc    int64   `json:"time_msc"`
	Flags      int64   `json:"flags"`
	VolumeReal float64 `json:"volume_real"`
}

// TradeRequest is an order submission request. It converts to the
// terminal's JSON trade-request shape; the comment field is overwritten by
// the orchestrator's idempotency marker.
type TradeRequest struct {
	Action      int64   `json:"action"`
	Magic       int64   `json:"magic,omitempty"`
	Order       int64   `json:"order,omitempty"`
	Symbol      string  `json:"symbol"`
	Volume      float64 `json:"volume"`
	Price       float64 `json:"price,omitempty"`
	StopLimit   float64 `json:"stoplimit,omitempty"`
	SL          float64 `json:"sl,omitempty"`
	TP          float64 `json:"tp,omitempty"`
	Deviation   int64   `json:"deviation,omitempty"`
	Type        int64   `json:"type"`
	TypeFilling int64   `json:"type_filling,omitempty"`
	TypeTime    int64   `json:"type_time,omitempty"`
	Expiration  int64   `json:"expiration,omitempty"`
	Comment     string  `json:"comment,omitempty"`
	Position    int64   `json:"position,omitempty"`
	PositionBy  int64   `json:"position_by,omitempty"`
}

// intent converts the request to the orchestrator's map form.
func (r *TradeRequest) intent() (txn.OrderIntent, error) {
	var raw, err = json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("serializing trade request: %w", err)
	}
	var intent txn.OrderIntent
	if err = json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("converting trade request: %w", err)
	}
	return intent, nil
}

// TradeResult is the decoded outcome of an order submission.
type TradeResult = txn.Result

// OrderCheckResult is the terminal's pre-trade validation result.
type OrderCheckResult struct {
	Retcode     int32   `json:"retcode"`
	Balance     float64 `json:"balance"`
	Equity      float64 `json:"equity"`
	Profit      float64 `json:"profit"`
	Margin      float64 `json:"margin"`
	MarginFree  float64 `json:"margin_free"`
	MarginLevel float64 `json:"margin_level"`
	Comment     string  `json:"comment"`
}

// Position is one open position.
type Position struct {
	Ticket       int64   `json:"ticket"`
	Time         int64   `json:"time"`
	Type         int64   `json:"type"`
	Magic        int64   `json:"magic"`
	Identifier   int64   `json:"identifier"`
	Reason       int64   `json:"reason"`
	Volume       float64 `json:"volume"`
	PriceOpen    float64 `json:"price_open"`
	SL           float64 `json:"sl"`
	TP           float64 `json:"tp"`
	PriceCurrent float64 `json:"price_current"`
	Swap         float64 `json:"swap"`
	Profit       float64 `json:"profit"`
	Symbol       string  `json:"symbol"`
	Comment      string  `json:"comment"`
}

// Order is one pending order.
type Order struct {
	Ticket        int64   `json:"ticket"`
	TimeSetup     int64   `json:"time_setup"`
	Type          int64   `json:"type"`
	State         int64   `json:"state"`
	Magic         int64   `json:"magic"`
	PositionID    int64   `json:"position_id"`
	VolumeInitial float64 `json:"volume_initial"`
	VolumeCurrent float64 `json:"volume_current"`
	PriceOpen     float64 `json:"price_open"`
	SL            float64 `json:"sl"`
	TP            float64 `json:"tp"`
	PriceCurrent  float64 `json:"price_current"`
	Symbol        string  `json:"symbol"`
	Comment       string  `json:"comment"`
}

// Deal is one executed deal from trading history.
type Deal struct {
	Ticket     int64   `json:"ticket"`
	Order      int64   `json:"order"`
	Time       int64   `json:"time"`
	Type       int64   `json:"type"`
	Entry      int64   `json:"entry"`
	Magic      int64   `json:"magic"`
	Position   int64   `json:"position_id"`
	Volume     float64 `json:"volume"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
	Swap       float64 `json:"swap"`
	Profit     float64 `json:"profit"`
	Symbol     string  `json:"symbol"`
	Comment    string  `json:"comment"`
}

// BookEntry is one order-book level.
type BookEntry struct {
	Type       int64   `json:"type"`
	Price      float64 `json:"price"`
	Volume     float64 `json:"volume"`
	VolumeReal float64 `json:"volume_real"`
}

// VersionInfo is the terminal version triple.
type VersionInfo struct {
	Major int32
	Minor int32
	Build string
}

// LastError is the terminal's last error code and message.
type LastError struct {
	Code    int64
	Message string
}

// decodeJSON decodes a DictData payload into |out|.
func decodeJSON(payload string, out interface{}) error {
	if payload == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decoding terminal payload: %w", err)
	}
	return nil
}

// decodeJSONList decodes a DictList payload into a slice of T.
func decodeJSONList[T any](items []string) ([]T, error) {
	var out = make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, fmt.Errorf("decoding terminal list item: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
