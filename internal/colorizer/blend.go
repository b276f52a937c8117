package colorizer

import (
	"fmt"
	"slices"
)

// AddBlend scales fg by opacity and adds it onto bg channel by
// channel, saturating at 255. The blend happens in bg's buffer, which
// is also returned.
func AddBlend(fg, bg *Pixels, opacity float64) (*Pixels, error) {
	if opacity <= 0 || opacity > 1 {
		return nil, fmt.Errorf("%w: opacity %v is outside (0, 1]", ErrPrecondition, opacity)
	}
	if !slices.Equal(fg.Shape, bg.Shape) {
		return nil, fmt.Errorf("%w: shape %v does not match shape %v", ErrPrecondition, fg.Shape, bg.Shape)
	}

	for i, v := range bg.Pix {
		mixed := uint8(float64(fg.Pix[i]) * opacity)
		sum := uint16(v) + uint16(mixed)
		if sum > 255 {
			sum = 255
		}
		bg.Pix[i] = uint8(sum)
	}
	return bg, nil
}
