// Package dump loads numeric arrays saved to disk as NPY or CBOR
// typed-array dumps.
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Array is a loaded dump. Values are held as float64 regardless of the
// on-disk element type; DType keeps the original descriptor so callers
// can tell what was stored.
type Array struct {
	Shape []int
	DType string
	Data  []float64
}

// Load reads the dump at path, picking the decoder from the file
// extension. Anything that is not .cbor is treated as NPY.
func Load(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".cbor" {
		return readCBOR(f)
	}
	return readNPY(f)
}

// Len returns the number of elements the shape describes.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// IsUint8 reports whether the dump was stored as unsigned bytes.
func (a *Array) IsUint8() bool {
	return a.DType == "|u1"
}

// Binarize thresholds the array in place. Values of 1 and above become
// 1, everything else 0, and the array becomes a byte array.
func (a *Array) Binarize() {
	for i, v := range a.Data {
		if v >= 1 {
			a.Data[i] = 1
		} else {
			a.Data[i] = 0
		}
	}
	a.DType = "|u1"
}
