package colormap

import (
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestAtClamps(t *testing.T) {
	testCases := []struct {
		name string
		t    float64
		want colorful.Color
	}{
		{"below range", -0.5, Batlow.colors[0]},
		{"at zero", 0, Batlow.colors[0]},
		{"at one", 1, Batlow.colors[len(Batlow.colors)-1]},
		{"above range", 2, Batlow.colors[len(Batlow.colors)-1]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Batlow.At(tc.t)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAtMidpoint(t *testing.T) {
	ramp := LinearColormap{colors: []colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
	}}

	got := ramp.At(0.5)
	want := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLUTEndpoints(t *testing.T) {
	lut := Batlow.LUT()

	first := Batlow.colors[0]
	want := [3]uint8{uint8(first.R * 255), uint8(first.G * 255), uint8(first.B * 255)}
	if lut[0] != want {
		t.Errorf("lut[0] got %v, want %v", lut[0], want)
	}

	last := Batlow.colors[len(Batlow.colors)-1]
	want = [3]uint8{uint8(last.R * 255), uint8(last.G * 255), uint8(last.B * 255)}
	if lut[255] != want {
		t.Errorf("lut[255] got %v, want %v", lut[255], want)
	}
}

func TestLUTDeterministic(t *testing.T) {
	a := Batlow.LUT()
	b := Batlow.LUT()
	if !reflect.DeepEqual(a, b) {
		t.Error("two LUT calls disagree")
	}
}
