package seascape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDiffuse(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	l := mgl32.Vec3{0, 0.5, float32(math.Sqrt(0.75))}

	specs := []struct {
		p   float32
		exp float64
	}{
		{2, 0.64},
		{80, 1.7668470647783922e-08},
	}

	for index, s := range specs {
		got := Diffuse(up, l, s.p)
		if math.Abs(float64(got)-s.exp) > s.exp*1e-4 {
			t.Fatalf("[spec %d] expected %g; got %g", index, s.exp, got)
		}
	}
}

func TestSpecular(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}
	// reflect(down, up) is up, so dot(reflected, l) is 0.99
	l := mgl32.Vec3{0, 0.99, float32(math.Sqrt(1 - 0.99*0.99))}

	specs := []struct {
		s   float32
		exp float64
	}{
		// pow(0.99, 60) * 68 / (8 * Pi)
		{60, 1.4804059407846308},
		// pow(0.99, 30) * 38 / (8 * Pi)
		{30, 1.1184064555786781},
	}

	for index, s := range specs {
		got := Specular(up, l, down, s.s)
		if math.Abs(float64(got)-s.exp) > 1e-4 {
			t.Fatalf("[spec %d] expected %f; got %f", index, s.exp, got)
		}
	}
}

func TestSeaColor(t *testing.T) {
	p := mgl32.Vec3{0, 1.6, 0}
	n := mgl32.Vec3{0, 1, 0}
	eye := mgl32.Vec3{0, -0.6, 0.8}
	// the light sits on the mirror direction so the specular lobe peaks
	l := mgl32.Vec3{0, 0.6, 0.8}
	dist := mgl32.Vec3{0, -6, 8}

	// fresnel = pow(1 - 0.6, 3) * 0.5 = 0.032
	// reflected = sky((0, 0.6, 0.8))
	// refracted = base + water * pow(0.84, 80) * 0.12
	// tint = water * (1.6 - 0.6) * 0.18 * (1 - 100 * 0.001)
	// specular = 68 / (8 * Pi)
	exp := mgl32.Vec3{2.7907139914783436, 2.8962858503814473, 2.9657351120721365}

	got := SeaColor(p, n, l, eye, dist)
	if !got.ApproxEqualThreshold(exp, 1e-4) {
		t.Fatalf("expected sea color %v; got %v", exp, got)
	}
}
