package protocol

import "fmt"

// Trade server return codes of the MT5 terminal. These mirror the
// TRADE_RETCODE_* enumeration of the terminal and are stable wire values.
const (
	RetcodeRequote            int32 = 10004
	RetcodeReject             int32 = 10006
	RetcodeCancel             int32 = 10007
	RetcodePlaced             int32 = 10008
	RetcodeDone               int32 = 10009
	RetcodeDonePartial        int32 = 10010
	RetcodeError              int32 = 10011
	RetcodeTimeout            int32 = 10012
	RetcodeInvalid            int32 = 10013
	RetcodeInvalidVolume      int32 = 10014
	RetcodeInvalidPrice       int32 = 10015
	RetcodeInvalidStops       int32 = 10016
	RetcodeTradeDisabled      int32 = 10017
	RetcodeMarketClosed       int32 = 10018
	RetcodeNoMoney            int32 = 10019
	RetcodePriceChanged       int32 = 10020
	RetcodePriceOff           int32 = 10021
	RetcodeInvalidExpiration  int32 = 10022
	RetcodeOrderChanged       int32 = 10023
	RetcodeTooManyRequests    int32 = 10024
	RetcodeNoChanges          int32 = 10025
	RetcodeServerDisablesAT   int32 = 10026
	RetcodeClientDisablesAT   int32 = 10027
	RetcodeLocked             int32 = 10028
	RetcodeFrozen             int32 = 10029
	RetcodeInvalidFill        int32 = 10030
	RetcodeConnection         int32 = 10031
	RetcodeOnlyReal           int32 = 10032
	RetcodeLimitOrders        int32 = 10033
	RetcodeLimitVolume        int32 = 10034
	RetcodeInvalidOrder       int32 = 10035
	RetcodePositionClosed     int32 = 10036
	RetcodeInvalidCloseVolume int32 = 10038
	RetcodeCloseOrderExist    int32 = 10039
	RetcodeLimitPositions     int32 = 10040
	RetcodeRejectCancel       int32 = 10041
	RetcodeLongOnly           int32 = 10042
	RetcodeShortOnly          int32 = 10043
	RetcodeCloseOnly          int32 = 10044
	RetcodeFIFOClose          int32 = 10045
)

var retcodeNames = map[int32]string{
	RetcodeRequote:            "REQUOTE",
	RetcodeReject:             "REJECT",
	RetcodeCancel:             "CANCEL",
	RetcodePlaced:             "PLACED",
	RetcodeDone:               "DONE",
	RetcodeDonePartial:        "DONE_PARTIAL",
	RetcodeError:              "ERROR",
	RetcodeTimeout:            "TIMEOUT",
	RetcodeInvalid:            "INVALID",
	RetcodeInvalidVolume:      "INVALID_VOLUME",
	RetcodeInvalidPrice:       "INVALID_PRICE",
	RetcodeInvalidStops:       "INVALID_STOPS",
	RetcodeTradeDisabled:      "TRADE_DISABLED",
	RetcodeMarketClosed:       "MARKET_CLOSED",
	RetcodeNoMoney:            "NO_MONEY",
	RetcodePriceChanged:       "PRICE_CHANGED",
	RetcodePriceOff:           "PRICE_OFF",
	RetcodeInvalidExpiration:  "INVALID_EXPIRATION",
	RetcodeOrderChanged:       "ORDER_CHANGED",
	RetcodeTooManyRequests:    "TOO_MANY_REQUESTS",
	RetcodeNoChanges:          "NO_CHANGES",
	RetcodeServerDisablesAT:   "SERVER_DISABLES_AT",
	RetcodeClientDisablesAT:   "CLIENT_DISABLES_AT",
	RetcodeLocked:             "LOCKED",
	RetcodeFrozen:             "FROZEN",
	RetcodeInvalidFill:        "INVALID_FILL",
	RetcodeConnection:         "CONNECTION",
	RetcodeOnlyReal:           "ONLY_REAL",
	RetcodeLimitOrders:        "LIMIT_ORDERS",
	RetcodeLimitVolume:        "LIMIT_VOLUME",
	RetcodeInvalidOrder:       "INVALID_ORDER",
	RetcodePositionClosed:     "POSITION_CLOSED",
	RetcodeInvalidCloseVolume: "INVALID_CLOSE_VOLUME",
	RetcodeCloseOrderExist:    "CLOSE_ORDER_EXIST",
	RetcodeLimitPositions:     "LIMIT_POSITIONS",
	RetcodeRejectCancel:       "REJECT_CANCEL",
	RetcodeLongOnly:           "LONG_ONLY",
	RetcodeShortOnly:          "SHORT_ONLY",
	RetcodeCloseOnly:          "CLOSE_ONLY",
	RetcodeFIFOClose:          "FIFO_CLOSE",
}

// RetcodeName returns the symbolic name of a trade retcode. Codes outside
// the known enumeration render as UNKNOWN with the numeric value.
func RetcodeName(code int32) string {
	if name, ok := retcodeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", code)
}

// KnownRetcodes returns the full set of known trade retcodes.
func KnownRetcodes() []int32 {
	var out = make([]int32, 0, len(retcodeNames))
	for code := range retcodeNames {
		out = append(out, code)
	}
	return out
}
