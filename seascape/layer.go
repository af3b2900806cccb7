package seascape

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer is a CPU color and depth buffer. Rows are stored bottom-up, matching
// a GL framebuffer, so index (x, y) is the fragment at gl_FragCoord (x+.5, y+.5).
type Layer struct {
	Width  int
	Height int
	Color  []mgl32.Vec4
	Depth  []float32
}

// NewLayer returns a layer cleared to opaque black at the far plane.
func NewLayer(width, height int) *Layer {
	l := &Layer{
		Width:  width,
		Height: height,
		Color:  make([]mgl32.Vec4, width*height),
		Depth:  make([]float32, width*height),
	}
	for i := range l.Color {
		l.Color[i] = mgl32.Vec4{0, 0, 0, 1}
		l.Depth[i] = 1
	}
	return l
}

func (l *Layer) index(x, y int) int {
	return y*l.Width + x
}

func (l *Layer) ColorAt(x, y int) mgl32.Vec4 {
	return l.Color[l.index(x, y)]
}

func (l *Layer) DepthAt(x, y int) float32 {
	return l.Depth[l.index(x, y)]
}

func (l *Layer) Set(x, y int, c mgl32.Vec4, z float32) {
	i := l.index(x, y)
	l.Color[i] = c
	l.Depth[i] = z
}

// Fill sets every pixel inside rect (bottom-up coordinates) to c at depth z.
func (l *Layer) Fill(rect image.Rectangle, c mgl32.Vec4, z float32) {
	rect = rect.Intersect(image.Rect(0, 0, l.Width, l.Height))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			l.Set(x, y, c, z)
		}
	}
}

// RGBA returns interleaved RGBA floats, top row first.
func (l *Layer) RGBA() []float32 {
	out := make([]float32, 0, l.Width*l.Height*4)
	for y := l.Height - 1; y >= 0; y-- {
		for x := 0; x < l.Width; x++ {
			c := l.ColorAt(x, y)
			out = append(out, c[0], c[1], c[2], c[3])
		}
	}
	return out
}

// DepthRows returns the depth values, top row first.
func (l *Layer) DepthRows() []float32 {
	out := make([]float32, 0, l.Width*l.Height)
	for y := l.Height - 1; y >= 0; y-- {
		out = append(out, l.Depth[y*l.Width:(y+1)*l.Width]...)
	}
	return out
}

// image.Image implementation; image rows are top-down.

func (l *Layer) ColorModel() color.Model { return color.NRGBAModel }

func (l *Layer) Bounds() image.Rectangle { return image.Rect(0, 0, l.Width, l.Height) }

func (l *Layer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(l.Bounds())) {
		return color.NRGBA{}
	}
	c := l.ColorAt(x, l.Height-1-y)
	return color.NRGBA{
		R: uint8(mgl32.Clamp(c[0], 0, 1)*255 + 0.5),
		G: uint8(mgl32.Clamp(c[1], 0, 1)*255 + 0.5),
		B: uint8(mgl32.Clamp(c[2], 0, 1)*255 + 0.5),
		A: uint8(mgl32.Clamp(c[3], 0, 1)*255 + 0.5),
	}
}

// LayerFromRGBA builds a layer from interleaved RGBA floats stored top row
// first. Depth is left at the far plane.
func LayerFromRGBA(width, height int, rgba []float32) *Layer {
	l := NewLayer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := ((height-1-y)*width + x) * 4
			l.Color[l.index(x, y)] = mgl32.Vec4{rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]}
		}
	}
	return l
}
