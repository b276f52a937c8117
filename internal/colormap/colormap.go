package colormap

import (
	"github.com/lucasb-eyer/go-colorful"
)

// LinearColormap interpolates linearly between fixed anchor colors.
type LinearColormap struct {
	colors []colorful.Color
}

// At returns the color at position t in [0, 1]. Values outside the
// range clamp to the end anchors.
func (c LinearColormap) At(t float64) colorful.Color {
	if t <= 0 {
		return c.colors[0]
	}
	if t >= 1 {
		return c.colors[len(c.colors)-1]
	}

	idx := t * float64(len(c.colors)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.colors) {
		upper = len(c.colors) - 1
	}

	frac := idx - float64(lower)
	return c.colors[lower].BlendRgb(c.colors[upper], frac)
}

// LUT samples the colormap at 256 evenly spaced points, i/255 each,
// and scales every channel to 0-255 with truncation.
func (c LinearColormap) LUT() [256][3]uint8 {
	var lut [256][3]uint8
	for i := range lut {
		col := c.At(float64(i) / 255)
		lut[i] = [3]uint8{
			uint8(col.R * 255),
			uint8(col.G * 255),
			uint8(col.B * 255),
		}
	}
	return lut
}

// Batlow is a perceptually uniform ramp (Crameri), dark navy through
// olive and orange to pale pink.
var Batlow = LinearColormap{
	colors: []colorful.Color{
		{R: 1 / 255.0, G: 25 / 255.0, B: 89 / 255.0},    // #011959
		{R: 14 / 255.0, G: 54 / 255.0, B: 94 / 255.0},   // #0E365E
		{R: 29 / 255.0, G: 85 / 255.0, B: 97 / 255.0},   // #1D5561
		{R: 62 / 255.0, G: 108 / 255.0, B: 84 / 255.0},  // #3E6C54
		{R: 104 / 255.0, G: 123 / 255.0, B: 62 / 255.0}, // #687B3E
		{R: 157 / 255.0, G: 137 / 255.0, B: 43 / 255.0}, // #9D892B
		{R: 210 / 255.0, G: 147 / 255.0, B: 67 / 255.0}, // #D29343
		{R: 248 / 255.0, G: 161 / 255.0, B: 123 / 255.0}, // #F8A17B
		{R: 253 / 255.0, G: 183 / 255.0, B: 188 / 255.0}, // #FDB7BC
		{R: 250 / 255.0, G: 204 / 255.0, B: 250 / 255.0}, // #FACCFA
	},
}
