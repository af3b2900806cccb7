package seascape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSmoothstep(t *testing.T) {
	specs := []struct {
		edge0, edge1, x float32
		exp             float32
	}{
		{0, 1, -0.5, 0},
		{0, 1, 0.25, 0.15625},
		{0, 1, 0.5, 0.5},
		{0, 1, 2, 1},
		// reversed edges as used for the sky/sea weight
		{0, -0.02, 0.01, 0},
		{0, -0.02, -0.01, 0.5},
		{0, -0.02, -0.05, 1},
	}

	for index, s := range specs {
		if got := smoothstep(s.edge0, s.edge1, s.x); !approx(got, s.exp, 1e-6) {
			t.Fatalf("[spec %d] expected smoothstep(%f, %f, %f) = %f; got %f", index, s.edge0, s.edge1, s.x, s.exp, got)
		}
	}
}

func TestSeaOctaveNegativeCoordinates(t *testing.T) {
	for x := float32(-6); x <= 0; x += 0.37 {
		for y := float32(-6); y <= 0; y += 0.41 {
			v := SeaOctave(mgl32.Vec2{x, y}, SeaChoppy)
			if !isFinite(v) || v < 0 || v > 1 {
				t.Fatalf("expected octave at (%f, %f) in [0, 1]; got %f", x, y, v)
			}
		}
	}
}
