package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// RFC 8746 tags for multi-dimensional and typed arrays.
const (
	tagMultiDim = 40

	tagUint8   = 64
	tagUint16  = 69
	tagUint32  = 70
	tagUint64  = 71
	tagInt8    = 72
	tagInt16   = 77
	tagInt32   = 78
	tagInt64   = 79
	tagFloat32 = 85
	tagFloat64 = 86
)

// readCBOR decodes a CBOR multi-dimensional typed array (tag 40
// wrapping a typed-array tag) into an Array.
func readCBOR(r io.Reader) (*Array, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading cbor: %w", err)
	}

	var top any
	if err := cbor.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("decoding cbor: %w", err)
	}

	tag, ok := top.(cbor.Tag)
	if !ok || tag.Number != tagMultiDim {
		return nil, fmt.Errorf("expected multidim tag %d", tagMultiDim)
	}

	items, ok := tag.Content.([]any)
	if !ok || len(items) != 2 {
		return nil, fmt.Errorf("invalid multidim array content")
	}

	dims, ok := items[0].([]any)
	if !ok {
		return nil, fmt.Errorf("invalid multidim array dimensions")
	}
	shape := make([]int, len(dims))
	for i, d := range dims {
		n, err := toInt(d)
		if err != nil {
			return nil, err
		}
		shape[i] = n
	}

	inner, ok := items[1].(cbor.Tag)
	if !ok {
		return nil, fmt.Errorf("expected typed array tag")
	}
	data, dtype, err := decodeTypedArray(inner)
	if err != nil {
		return nil, err
	}

	n := 1
	for _, d := range shape {
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("dimension mismatch: shape wants %d elements, data has %d", n, len(data))
	}

	return &Array{Shape: shape, DType: dtype, Data: data}, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case uint64:
		return int(n), nil
	case int64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("invalid dimension %v", v)
}

// decodeTypedArray converts the payload of a little-endian typed array
// tag into float64 values plus the matching dtype descriptor.
func decodeTypedArray(tag cbor.Tag) ([]float64, string, error) {
	buf, ok := tag.Content.([]byte)
	if !ok {
		return nil, "", fmt.Errorf("invalid typed array content")
	}

	switch tag.Number {
	case tagUint8:
		data := make([]float64, len(buf))
		for i, v := range buf {
			data[i] = float64(v)
		}
		return data, "|u1", nil
	case tagInt8:
		data := make([]float64, len(buf))
		for i, v := range buf {
			data[i] = float64(int8(v))
		}
		return data, "|i1", nil
	case tagUint16:
		data := make([]float64, len(buf)/2)
		for i := range data {
			data[i] = float64(binary.LittleEndian.Uint16(buf[i*2:]))
		}
		return data, "<u2", nil
	case tagInt16:
		data := make([]float64, len(buf)/2)
		for i := range data {
			data[i] = float64(int16(binary.LittleEndian.Uint16(buf[i*2:])))
		}
		return data, "<i2", nil
	case tagUint32:
		data := make([]float64, len(buf)/4)
		for i := range data {
			data[i] = float64(binary.LittleEndian.Uint32(buf[i*4:]))
		}
		return data, "<u4", nil
	case tagInt32:
		data := make([]float64, len(buf)/4)
		for i := range data {
			data[i] = float64(int32(binary.LittleEndian.Uint32(buf[i*4:])))
		}
		return data, "<i4", nil
	case tagUint64:
		data := make([]float64, len(buf)/8)
		for i := range data {
			data[i] = float64(binary.LittleEndian.Uint64(buf[i*8:]))
		}
		return data, "<u8", nil
	case tagInt64:
		data := make([]float64, len(buf)/8)
		for i := range data {
			data[i] = float64(int64(binary.LittleEndian.Uint64(buf[i*8:])))
		}
		return data, "<i8", nil
	case tagFloat32:
		data := make([]float64, len(buf)/4)
		for i := range data {
			data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
		}
		return data, "<f4", nil
	case tagFloat64:
		data := make([]float64, len(buf)/8)
		for i := range data {
			data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
		}
		return data, "<f8", nil
	}
	return nil, "", fmt.Errorf("unsupported typed array tag %d", tag.Number)
}
