package conn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantsLookup(t *testing.T) {
	var c = NewConstants(map[string]int64{
		"TRADE_ACTION_DEAL": 1,
		"ORDER_TYPE_BUY":    0,
		"TIMEFRAME_M1":      1,
		"ORDER_FILLING_IOC": 1,
	})

	v, ok := c.Get("TRADE_ACTION_DEAL")
	require.True(t, ok)
	require.Equal(t, int64(1), v)

	_, ok = c.Get("NO_SUCH_CONSTANT")
	require.False(t, ok)
	require.False(t, c.Has("NO_SUCH_CONSTANT"))
	require.True(t, c.Has("ORDER_TYPE_BUY"))

	_, err := c.MustGet("NO_SUCH_CONSTANT")
	require.Error(t, err)
	v, err = c.MustGet("TIMEFRAME_M1")
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	require.Equal(t, 4, c.Len())
	require.Equal(t,
		[]string{"ORDER_FILLING_IOC", "ORDER_TYPE_BUY", "TIMEFRAME_M1", "TRADE_ACTION_DEAL"},
		c.Names())
}

func TestNilConstants(t *testing.T) {
	var c *Constants
	_, ok := c.Get("ANY")
	require.False(t, ok)
	require.Zero(t, c.Len())
	require.Nil(t, c.Names())
	require.False(t, c.Has("ANY"))
}
