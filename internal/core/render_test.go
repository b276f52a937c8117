package core

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/OniDaito/crabseal/internal/colorizer"
)

// writeDump writes a uint8 NPY file for the render tests.
func writeDump(t *testing.T, path string, shape []int, data []uint8) {
	t.Helper()

	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.Itoa(d)
	}
	shapeStr := "(" + strings.Join(dims, ", ") + ")"
	if len(shape) == 1 {
		shapeStr = "(" + dims[0] + ",)"
	}

	header := fmt.Sprintf("{'descr': '|u1', 'fortran_order': False, 'shape': %s, }", shapeStr)
	for (10+len(header)+1)%64 != 0 {
		header += " "
	}
	header += "\n"

	buf := new(bytes.Buffer)
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	if err := binary.Write(buf, binary.LittleEndian, uint16(len(header))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(header)
	buf.Write(data)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg is not installed")
	}
}

// decodeVideo expands an encoded video back into raw RGB bytes.
func decodeVideo(t *testing.T, path string) []byte {
	t.Helper()
	out, err := exec.Command("ffmpeg", "-i", path, "-f", "rawvideo", "-pix_fmt", "rgb24", "pipe:1").Output()
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return out
}

func TestRenderMissingBase(t *testing.T) {
	c := NewCore(context.Background())

	_, err := c.Render(filepath.Join(t.TempDir(), "none.npy"), "", t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want fs.ErrNotExist", err)
	}
}

func TestRenderRejectsFlatBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "base.npy")
	data := make([]uint8, 2*4*4)
	for i := range data {
		data[i] = 100
	}
	writeDump(t, base, []int{2, 4, 4}, data)

	outDir := t.TempDir()
	c := NewCore(context.Background())

	_, err := c.Render(base, "", outDir)
	if !errors.Is(err, colorizer.ErrPrecondition) {
		t.Fatalf("got %v, want ErrPrecondition", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir is not empty: %v", entries)
	}
}

func TestRender(t *testing.T) {
	requireFFmpeg(t)

	base := filepath.Join(t.TempDir(), "base.npy")
	data := make([]uint8, 2*4*4)
	for i := range data {
		data[i] = uint8(i * 255 / 31)
	}
	writeDump(t, base, []int{2, 4, 4}, data)

	outDir := t.TempDir()
	c := NewCore(context.Background())

	out, err := c.Render(base, "", outDir)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := filepath.Join(outDir, "base.npy.mp4")
	if out != want {
		t.Errorf("output path got %s, want %s", out, want)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("Stat: %v", err)
	}

	raw := decodeVideo(t, out)
	if len(raw) != 2*4*4*3 {
		t.Errorf("decoded %d bytes, want %d", len(raw), 2*4*4*3)
	}
}

func TestRenderMask(t *testing.T) {
	requireFFmpeg(t)

	dir := t.TempDir()
	base := filepath.Join(dir, "base.npy")
	data := make([]uint8, 2*4*4)
	for i := range data {
		data[i] = uint8(i * 255 / 31)
	}
	writeDump(t, base, []int{2, 4, 4}, data)

	// one foreground pixel in the first frame, rest zeros
	mask := filepath.Join(dir, "mask.npy")
	maskData := make([]uint8, 2*4*4)
	maskData[5] = 2
	writeDump(t, mask, []int{2, 4, 4}, maskData)

	c := NewCore(context.Background())
	plainOut, err := c.Render(base, "", t.TempDir())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	maskedOut, err := c.Render(base, mask, t.TempDir())
	if err != nil {
		t.Fatalf("Render with mask: %v", err)
	}

	plain := decodeVideo(t, plainOut)
	masked := decodeVideo(t, maskedOut)

	// red channel of the marked pixel, flat index 5
	off := 5 * 3
	if len(plain) <= off || len(masked) <= off {
		t.Fatalf("decoded too few bytes: plain %d, masked %d", len(plain), len(masked))
	}
	if int(masked[off]) < int(plain[off])+20 {
		t.Errorf("marked pixel red %d is not shifted above plain %d", masked[off], plain[off])
	}
}

func TestInfoMissing(t *testing.T) {
	c := NewCore(context.Background())

	err := c.Info(filepath.Join(t.TempDir(), "none.npy"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want fs.ErrNotExist", err)
	}
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.npy")
	writeDump(t, path, []int{2, 2}, []uint8{0, 50, 100, 255})

	c := NewCore(context.Background())
	if err := c.Info(path); err != nil {
		t.Fatalf("Info: %v", err)
	}
}
