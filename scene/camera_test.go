package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDemoCameraRotation(t *testing.T) {
	c := NewDemoCamera(640.0 / 480.0)

	got := c.Rotation()
	exp := mgl32.Vec3{float32(-math.Atan(0.2)), 0, 0}
	if !got.ApproxEqualThreshold(exp, 1e-5) {
		t.Fatalf("expected rotation %v; got %v", exp, got)
	}
	if c.Position != (mgl32.Vec3{0, 4, 20}) {
		t.Fatalf("expected position (0,4,20); got %v", c.Position)
	}
}

func TestEulerXYZ(t *testing.T) {
	specs := []mgl32.Vec3{
		{0, 0, 0},
		{0.3, 0, 0},
		{0, -0.7, 0},
		{0, 0, 1.2},
		{0.4, -0.3, 0.9},
	}
	for index, ang := range specs {
		// R = Rx * Ry * Rz
		m := mgl32.Rotate3DX(ang[0]).Mul3(mgl32.Rotate3DY(ang[1])).Mul3(mgl32.Rotate3DZ(ang[2]))
		got := EulerXYZ(m)
		if !got.ApproxEqualThreshold(ang, 1e-5) {
			t.Fatalf("[spec %d] expected angles %v; got %v", index, ang, got)
		}
	}
}

func TestOrientationMatchesView(t *testing.T) {
	c := NewDemoCamera(1)
	c.SetPosition(mgl32.Vec3{-7, 3, 11})

	view := c.ViewMatrix().Mat3()
	rot := c.Orientation()
	if !view.Transpose().ApproxEqualThreshold(rot, 1e-5) {
		t.Fatalf("expected orientation to be the inverse view rotation; got %v vs %v", rot, view.Transpose())
	}
}

func TestCameraAspect(t *testing.T) {
	c := NewDemoCamera(1)
	c.SetAspect(1280, 720)
	if math.Abs(float64(c.Aspect)-16.0/9.0) > 1e-6 {
		t.Fatalf("expected aspect 16/9; got %f", c.Aspect)
	}
	c.SetAspect(10, 0)
	if math.Abs(float64(c.Aspect)-16.0/9.0) > 1e-6 {
		t.Fatalf("expected zero height to be ignored; got %f", c.Aspect)
	}
}

func TestPoseFollowsCamera(t *testing.T) {
	c := NewDemoCamera(1)
	p := Pose{c}

	c.SetPosition(mgl32.Vec3{0, 0, 20})
	if p.Position() != (mgl32.Vec3{0, 0, 20}) {
		t.Fatalf("expected position (0,0,20); got %v", p.Position())
	}
	if got := p.Rotation(); !got.ApproxEqualThreshold(mgl32.Vec3{}, 1e-6) {
		t.Fatalf("expected zero rotation; got %v", got)
	}
}
