package client

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/mt5bridge/go/protocol"
)

func TestDecodeStructuredRatesArray(t *testing.T) {
	var dtype = "[('time','<i8'), ('open','<f8'), ('high','<f8'), ('low','<f8'), ('close','<f8'), ('tick_volume','<i8')]"

	var buf []byte
	var putI8 = func(v int64) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	var putF8 = func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	// Two bars.
	putI8(1700000000)
	putF8(1.0712)
	putF8(1.0720)
	putF8(1.0705)
	putF8(1.0718)
	putI8(412)
	putI8(1700000060)
	putF8(1.0718)
	putF8(1.0731)
	putF8(1.0714)
	putF8(1.0726)
	putI8(388)

	var arr, err = decodeArray(&protocol.NumpyArray{
		Data:  buf,
		Dtype: dtype,
		Shape: []int32{2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, arr.Rows)
	require.Len(t, arr.Columns, 6)

	require.Equal(t, []int64{1700000000, 1700000060}, arr.Ints("time"))
	require.Equal(t, []float64{1.0712, 1.0718}, arr.Floats("open"))
	require.Equal(t, []float64{1.0720, 1.0731}, arr.Floats("high"))
	require.Equal(t, []int64{412, 388}, arr.Ints("tick_volume"))
	require.Nil(t, arr.Floats("no_such_column"))
}

func TestDecodeSimpleFloatArray(t *testing.T) {
	var buf []byte
	for _, v := range []float64{1.5, -2.25, 0} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	var arr, err = decodeArray(&protocol.NumpyArray{Data: buf, Dtype: "float64"})
	require.NoError(t, err)
	require.Equal(t, 3, arr.Rows)
	require.Len(t, arr.Columns, 1)
	require.Equal(t, []float64{1.5, -2.25, 0}, arr.Columns[0].Floats)
}

func TestDecodeInt32Array(t *testing.T) {
	var buf []byte
	for _, v := range []int32{-7, 42} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	var arr, err = decodeArray(&protocol.NumpyArray{Data: buf, Dtype: "<i4"})
	require.NoError(t, err)
	require.Equal(t, []int64{-7, 42}, arr.Columns[0].Ints)
}

func TestDecodeArrayErrors(t *testing.T) {
	var _, err = decodeArray(nil)
	require.ErrorIs(t, err, ErrEmptyResponse)

	// Buffer not a multiple of the item size.
	_, err = decodeArray(&protocol.NumpyArray{Data: make([]byte, 7), Dtype: "float64"})
	require.Error(t, err)

	// Shape disagrees with the buffer.
	_, err = decodeArray(&protocol.NumpyArray{Data: make([]byte, 16), Dtype: "float64", Shape: []int32{3}})
	require.Error(t, err)

	// Unsupported dtypes.
	_, err = decodeArray(&protocol.NumpyArray{Data: nil, Dtype: "complex128"})
	require.Error(t, err)
	_, err = decodeArray(&protocol.NumpyArray{Data: nil, Dtype: "[('x','<i2')]"})
	require.Error(t, err)
}

func TestMarkCommentSurvivesTradeRequestRoundTrip(t *testing.T) {
	var req = &TradeRequest{
		Action: 1,
		Symbol: "EURUSD",
		Volume: 0.10,
		Type:   0,
	}
	var intent, err = req.intent()
	require.NoError(t, err)
	require.Equal(t, "EURUSD", intent["symbol"])
	require.Equal(t, 0.10, intent["volume"])
	// Zero-valued optional fields are omitted from the intent.
	_, hasComment := intent["comment"]
	require.False(t, hasComment)
}
