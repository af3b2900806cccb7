package seascape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDepthValueIgnoresCameraPlanes(t *testing.T) {
	planes := [][2]float32{
		{0.01, 2000},
		{0.1, 100},
		{1, 10},
		{5, 5000},
	}
	for z := float32(0); z <= 1; z += 0.0625 {
		for index, p := range planes {
			got := DepthValue(z, p[0], p[1])
			if !approx(got, 1-z, eps) {
				t.Fatalf("[spec %d] expected depth value %f for z=%f; got %f", index, 1-z, z, got)
			}
		}
	}
}

func TestDepthVisualizationBlend(t *testing.T) {
	color := mgl32.Vec4{1, 0, 0, 1}

	type spec struct {
		z   float32
		t   float32
		exp mgl32.Vec4
	}
	specs := []spec{
		{0.25, 0, color},
		{0.25, 1, mgl32.Vec4{0.75, 0.75, 0.75, 1}},
		{0.5, 0.5, mgl32.Vec4{0.75, 0.25, 0.25, 1}},
		{1, 0.5, mgl32.Vec4{0.5, 0, 0, 1}},
	}
	for index, s := range specs {
		got := DepthVisualization(color, s.z, 0.01, 2000, s.t)
		if !got.ApproxEqualThreshold(s.exp, eps) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}

func TestSceneDistance(t *testing.T) {
	type spec struct {
		z   float32
		exp float32
	}
	specs := []spec{
		{0, 0},
		{0.5, 0},
		{0.99, 0},
		{0.995, 0.5},
		{1, 1},
	}
	for index, s := range specs {
		if got := SceneDistance(s.z); !approx(got, s.exp, 1e-4) {
			t.Fatalf("[spec %d] expected scene distance %f for z=%f; got %f", index, s.exp, s.z, got)
		}
	}
}

func TestCompositeBackgroundFallback(t *testing.T) {
	ray := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	scene := mgl32.Vec4{0, 1, 0, 1}

	for index, d := range []float32{0, 5, 10, 50, FarBound} {
		if got := Composite(ray, d, scene, 1); got != ray {
			t.Fatalf("[spec %d] expected ray color for background pixel at distance %f; got %v", index, d, got)
		}
	}
}

func TestCompositePassThrough(t *testing.T) {
	ray := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	scene := mgl32.Vec4{0.4, 0.5, 0.6, 0.7}

	type spec struct {
		z        float32
		distance float32
	}
	specs := []spec{
		{0.5, 0},
		{0.9, 3},
		{0.995, 6},
		{0.995, 10},
		{0.999, 1000},
	}
	for index, s := range specs {
		rd := RayMarchDistance(s.distance)
		sd := SceneDistance(s.z)
		if rd < sd || sd > BackgroundThreshold {
			t.Fatalf("[spec %d] bad fixture: ray %f scene %f", index, rd, sd)
		}
		if got := Composite(ray, s.distance, scene, s.z); got != scene {
			t.Fatalf("[spec %d] expected scene color %v; got %v", index, scene, got)
		}
	}
}

func TestCompositeNearestWins(t *testing.T) {
	ray := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	scene := mgl32.Vec4{0.4, 0.5, 0.6, 1}

	// z=0.999 maps to a scene distance of 0.9; a hit 5 units away is nearer.
	if got := Composite(ray, 5, scene, 0.999); got != ray {
		t.Fatalf("expected nearer ray color; got %v", got)
	}
}
