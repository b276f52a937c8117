// Package colorizer turns loaded arrays into RGB pixel buffers.
package colorizer

import (
	"errors"
	"fmt"

	"github.com/OniDaito/crabseal/internal/colormap"
	"github.com/OniDaito/crabseal/internal/dump"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// ErrPrecondition marks input that cannot be colorized.
var ErrPrecondition = errors.New("precondition failed")

// Pixels is an RGB buffer. Shape carries the source array dimensions
// plus a trailing channel axis of 3, and Pix holds the interleaved
// channel bytes in row-major order.
type Pixels struct {
	Shape []int
	Pix   []uint8
}

func newPixels(shape []int) *Pixels {
	out := make([]int, len(shape)+1)
	copy(out, shape)
	out[len(shape)] = 3

	n := 3
	for _, d := range shape {
		n *= d
	}
	return &Pixels{Shape: out, Pix: make([]uint8, n)}
}

// Grayscale maps a byte array through the colormap, one lookup table
// entry per intensity. The array must span more than one intensity
// level and must be stored as uint8.
func Grayscale(a *dump.Array, cm colormap.LinearColormap) (*Pixels, error) {
	if len(a.Data) == 0 {
		return nil, fmt.Errorf("%w: array is empty", ErrPrecondition)
	}

	lo := floats.Min(a.Data)
	hi := floats.Max(a.Data)
	if hi-lo <= 1 {
		return nil, fmt.Errorf("%w: value range %v to %v is too narrow to colorize", ErrPrecondition, lo, hi)
	}
	if !a.IsUint8() {
		return nil, fmt.Errorf("%w: expected a uint8 array, got %s", ErrPrecondition, a.DType)
	}

	lut := cm.LUT()
	px := newPixels(a.Shape)
	for i, v := range a.Data {
		c := lut[int(v)]
		o := i * 3
		px.Pix[o] = c[0]
		px.Pix[o+1] = c[1]
		px.Pix[o+2] = c[2]
	}
	return px, nil
}

// Binary paints zero values black and everything else in the
// foreground color. Values are clipped to 0 or 1 first, so any array
// can be passed without preconditions.
func Binary(a *dump.Array, fg colorful.Color) *Pixels {
	lut := [2][3]uint8{
		{0, 0, 0},
		{uint8(fg.R * 255), uint8(fg.G * 255), uint8(fg.B * 255)},
	}

	px := newPixels(a.Shape)
	for i, v := range a.Data {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		c := lut[int(v)]
		o := i * 3
		px.Pix[o] = c[0]
		px.Pix[o+1] = c[1]
		px.Pix[o+2] = c[2]
	}
	return px
}
