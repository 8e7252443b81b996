package client

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/tradewire/mt5bridge/go/protocol"
)

// The server serializes rate and tick history as a raw little-endian
// buffer, a dtype description, and an optional shape. The dtype is either
// a simple name like "float64" or a structured record literal like
// "[('time','<i8'), ('open','<f8'), ...]". Decoding lives here at the
// façade boundary; the reliability layer treats the payload as opaque.

// ColumnKind is the element type of a decoded column.
type ColumnKind int

const (
	KindInt ColumnKind = iota
	KindUint
	KindFloat
)

// Column is one decoded field of a structured array, or the single column
// of a simple one. Integer kinds fill Ints; float kinds fill Floats.
type Column struct {
	Name   string
	Kind   ColumnKind
	Ints   []int64
	Floats []float64
}

// Array is a decoded terminal array in column form.
type Array struct {
	Rows    int
	Columns []Column
}

// Column returns the named column, or nil.
func (a *Array) Column(name string) *Column {
	for i := range a.Columns {
		if a.Columns[i].Name == name {
			return &a.Columns[i]
		}
	}
	return nil
}

// Floats returns the named column's float values, or nil.
func (a *Array) Floats(name string) []float64 {
	if c := a.Column(name); c != nil {
		return c.Floats
	}
	return nil
}

// Ints returns the named column's integer values, or nil.
func (a *Array) Ints(name string) []int64 {
	if c := a.Column(name); c != nil {
		return c.Ints
	}
	return nil
}

type fieldSpec struct {
	name string
	code byte // 'i', 'u', 'f'
	size int  // 4 or 8
}

var structuredFieldRe = regexp.MustCompile(`\(\s*'([^']+)'\s*,\s*'[<>|=]?([iuf])(\d)'\s*\)`)

// decodeArray reconstructs a typed array from the wire triple.
func decodeArray(msg *protocol.NumpyArray) (*Array, error) {
	if msg == nil {
		return nil, ErrEmptyResponse
	}
	var dtype = strings.TrimSpace(msg.GetDtype())
	var fields []fieldSpec
	var err error

	if strings.HasPrefix(dtype, "[") {
		if fields, err = parseStructuredDtype(dtype); err != nil {
			return nil, err
		}
	} else {
		var f fieldSpec
		if f, err = parseSimpleDtype(dtype); err != nil {
			return nil, err
		}
		fields = []fieldSpec{f}
	}

	var itemSize int
	for _, f := range fields {
		itemSize += f.size
	}
	var data = msg.GetData()
	if itemSize == 0 || len(data)%itemSize != 0 {
		return nil, fmt.Errorf("array buffer length %d is not a multiple of item size %d", len(data), itemSize)
	}
	var rows = len(data) / itemSize
	if shape := msg.GetShape(); len(shape) > 0 && int(shape[0]) != rows {
		return nil, fmt.Errorf("array shape %v disagrees with buffer rows %d", shape, rows)
	}

	var out = &Array{Rows: rows, Columns: make([]Column, len(fields))}
	for i, f := range fields {
		out.Columns[i].Name = f.name
		switch f.code {
		case 'f':
			out.Columns[i].Kind = KindFloat
			out.Columns[i].Floats = make([]float64, rows)
		case 'u':
			out.Columns[i].Kind = KindUint
			out.Columns[i].Ints = make([]int64, rows)
		default:
			out.Columns[i].Kind = KindInt
			out.Columns[i].Ints = make([]int64, rows)
		}
	}

	for row := 0; row < rows; row++ {
		var off = row * itemSize
		for i, f := range fields {
			var cell = data[off : off+f.size]
			switch {
			case f.code == 'f' && f.size == 8:
				out.Columns[i].Floats[row] = math.Float64frombits(binary.LittleEndian.Uint64(cell))
			case f.code == 'f' && f.size == 4:
				out.Columns[i].Floats[row] = float64(math.Float32frombits(binary.LittleEndian.Uint32(cell)))
			case f.size == 8:
				out.Columns[i].Ints[row] = int64(binary.LittleEndian.Uint64(cell))
			default:
				if f.code == 'u' {
					out.Columns[i].Ints[row] = int64(binary.LittleEndian.Uint32(cell))
				} else {
					out.Columns[i].Ints[row] = int64(int32(binary.LittleEndian.Uint32(cell)))
				}
			}
			off += f.size
		}
	}
	return out, nil
}

func parseStructuredDtype(dtype string) ([]fieldSpec, error) {
	var matches = structuredFieldRe.FindAllStringSubmatch(dtype, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("unparseable structured dtype %q", dtype)
	}
	var fields = make([]fieldSpec, 0, len(matches))
	for _, m := range matches {
		var size = int(m[3][0] - '0')
		if size != 4 && size != 8 {
			return nil, fmt.Errorf("unsupported field width %d in dtype %q", size, dtype)
		}
		fields = append(fields, fieldSpec{name: m[1], code: m[2][0], size: size})
	}
	return fields, nil
}

func parseSimpleDtype(dtype string) (fieldSpec, error) {
	switch strings.TrimPrefix(strings.TrimPrefix(dtype, "<"), "=") {
	case "float64", "f8":
		return fieldSpec{code: 'f', size: 8}, nil
	case "float32", "f4":
		return fieldSpec{code: 'f', size: 4}, nil
	case "int64", "i8":
		return fieldSpec{code: 'i', size: 8}, nil
	case "int32", "i4":
		return fieldSpec{code: 'i', size: 4}, nil
	case "uint64", "u8":
		return fieldSpec{code: 'u', size: 8}, nil
	case "uint32", "u4":
		return fieldSpec{code: 'u', size: 4}, nil
	}
	return fieldSpec{}, fmt.Errorf("unsupported dtype %q", dtype)
}
