package encoder

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrjoshuak/go-openexr/exr"
)

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if got.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v; got %v", img.Bounds(), got.Bounds())
	}
	if r, _, _, _ := got.At(0, 0).RGBA(); r != 0xffff {
		t.Fatalf("expected red top left pixel; got r=%d", r)
	}
	if _, _, b, _ := got.At(2, 1).RGBA(); b != 0xffff {
		t.Fatalf("expected blue bottom right pixel; got b=%d", b)
	}
}

func testPixels(w, h int) (rgba, depth []float32) {
	rgba = make([]float32, w*h*4)
	depth = make([]float32, w*h)
	for i := 0; i < w*h; i++ {
		rgba[i*4+0] = float32(i) / float32(w*h)
		rgba[i*4+1] = 0.25
		rgba[i*4+2] = 0.75
		rgba[i*4+3] = 1
		depth[i] = 1 - float32(i)/float32(w*h)
	}
	return rgba, depth
}

func TestWriteEXR(t *testing.T) {
	const w, h = 8, 4
	rgba, depth := testPixels(w, h)

	type spec struct {
		depth    []float32
		channels int
	}
	specs := []spec{
		{depth, 5},
		{nil, 4},
	}
	for index, s := range specs {
		path := filepath.Join(t.TempDir(), "frame.exr")
		if err := WriteEXR(path, w, h, rgba, s.depth); err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}

		f, err := exr.OpenFile(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}
		if got := f.Header(0).Channels().Len(); got != s.channels {
			t.Fatalf("[spec %d] expected %d channels; got %d", index, s.channels, got)
		}
		f.Close()

		img, err := exr.DecodeFile(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}
		if img.Rect.Dx() != w || img.Rect.Dy() != h {
			t.Fatalf("[spec %d] expected %dx%d; got %v", index, w, h, img.Rect)
		}
		if len(img.Pix) != w*h*4 {
			t.Fatalf("[spec %d] expected %d values; got %d", index, w*h*4, len(img.Pix))
		}
	}
}

func TestWriteEXRSizeMismatch(t *testing.T) {
	rgba, depth := testPixels(4, 4)
	path := filepath.Join(t.TempDir(), "bad.exr")

	if err := WriteEXR(path, 4, 3, rgba, nil); err == nil {
		t.Fatal("expected rgba length error")
	}
	if err := WriteEXR(path, 4, 4, rgba, depth[:3]); err == nil {
		t.Fatal("expected depth length error")
	}
}

func TestFlipRows(t *testing.T) {
	specs := []struct {
		in     []int
		stride int
		exp    []int
	}{
		{[]int{1, 2, 3, 4, 5, 6}, 2, []int{5, 6, 3, 4, 1, 2}},
		{[]int{1, 2, 3, 4, 5, 6}, 3, []int{4, 5, 6, 1, 2, 3}},
		{[]int{1, 2, 3}, 3, []int{1, 2, 3}},
		{[]int{1, 2}, 0, []int{1, 2}},
		{[]int{}, 4, []int{}},
	}

	for index, s := range specs {
		got := FlipRows(s.in, s.stride)
		if len(got) != len(s.exp) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
		for i := range got {
			if got[i] != s.exp[i] {
				t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
			}
		}
	}

	in := []float32{0, 1}
	FlipRows(in, 1)
	if in[0] != 0 {
		t.Fatal("expected input to be left untouched")
	}
}

func TestSnapshotPaths(t *testing.T) {
	specs := []struct {
		in, png, exr string
	}{
		{"output.mp4", "output.png", "output.exr"},
		{"shots/sea.png", "shots/sea.png", "shots/sea.exr"},
		{"sea", "sea.png", "sea.exr"},
	}

	for index, s := range specs {
		pngPath, exrPath := SnapshotPaths(s.in)
		if pngPath != s.png || exrPath != s.exr {
			t.Fatalf("[spec %d] expected %s, %s; got %s, %s", index, s.png, s.exr, pngPath, exrPath)
		}
	}
}
