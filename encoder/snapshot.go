package encoder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrjoshuak/go-openexr/exr"
)

// WritePNG writes img to path as an 8 bit PNG.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// WriteEXR writes a float RGBA image, plus a Z channel when depth is not nil.
// rgba is interleaved and both slices are top row first.
func WriteEXR(path string, width, height int, rgba, depth []float32) error {
	n := width * height
	if len(rgba) != n*4 {
		return fmt.Errorf("exr %s: expected %d rgba values, got %d", path, n*4, len(rgba))
	}
	if depth != nil && len(depth) != n {
		return fmt.Errorf("exr %s: expected %d depth values, got %d", path, n, len(depth))
	}

	h := exr.NewScanlineHeader(width, height)
	h.SetCompression(exr.CompressionZIP)

	names := []string{"R", "G", "B", "A"}
	planes := make(map[string][]float32, 5)
	for c, name := range names {
		plane := make([]float32, n)
		for i := 0; i < n; i++ {
			plane[i] = rgba[i*4+c]
		}
		planes[name] = plane
	}
	if depth != nil {
		planes["Z"] = depth
	}

	// channel lists are kept in alphabetical order
	channels := exr.NewChannelList()
	fb := exr.NewFrameBuffer()
	for _, name := range []string{"A", "B", "G", "R", "Z"} {
		plane, ok := planes[name]
		if !ok {
			continue
		}
		channels.Add(exr.Channel{Name: name, Type: exr.PixelTypeFloat, XSampling: 1, YSampling: 1})
		fb.Set(name, exr.NewSliceFromFloat32(plane, width, height))
	}
	h.SetChannels(channels)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	sw, err := exr.NewScanlineWriter(f, h)
	if err != nil {
		return fmt.Errorf("exr %s: %w", path, err)
	}
	sw.SetFrameBuffer(fb)
	if err := sw.WritePixels(0, height-1); err != nil {
		return fmt.Errorf("exr %s: %w", path, err)
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("exr %s: %w", path, err)
	}
	return f.Close()
}

// FlipRows returns a copy of data with its rows in reverse order. GL reads
// pixels bottom row first; images and EXR files want the top row first.
func FlipRows[T any](data []T, stride int) []T {
	out := make([]T, len(data))
	if stride <= 0 {
		copy(out, data)
		return out
	}
	rows := len(data) / stride
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*stride:(rows-y)*stride], data[y*stride:(y+1)*stride])
	}
	return out
}

// SnapshotPaths derives the PNG and EXR names of a snapshot from the output
// name, whatever its extension.
func SnapshotPaths(output string) (pngPath, exrPath string) {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + ".png", base + ".exr"
}
