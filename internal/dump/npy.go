package dump

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio"
)

// readNPY decodes a NumPy .npy stream into an Array.
func readNPY(r io.Reader) (*Array, error) {
	rd, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("npy header: %w", err)
	}

	if rd.Header.Descr.Fortran {
		return nil, fmt.Errorf("fortran order arrays are not supported")
	}

	shape := make([]int, len(rd.Header.Descr.Shape))
	copy(shape, rd.Header.Descr.Shape)

	arr := &Array{Shape: shape, DType: rd.Header.Descr.Type}

	switch rd.Header.Descr.Type {
	case "|u1", "u1":
		var raw []uint8
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "|i1", "i1":
		var raw []int8
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "|b1":
		var raw []bool
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			if v {
				arr.Data[i] = 1
			}
		}
	case "<u2":
		var raw []uint16
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<i2":
		var raw []int16
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<u4":
		var raw []uint32
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<i4":
		var raw []int32
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<u8":
		var raw []uint64
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<i8":
		var raw []int64
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<f4":
		var raw []float32
		if err := rd.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
		arr.Data = make([]float64, len(raw))
		for i, v := range raw {
			arr.Data[i] = float64(v)
		}
	case "<f8":
		if err := rd.Read(&arr.Data); err != nil {
			return nil, fmt.Errorf("npy data: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dtype %q", rd.Header.Descr.Type)
	}

	return arr, nil
}
