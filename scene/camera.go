package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera that always faces Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	// FovY is the vertical field of view in degrees.
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

func NewPerspectiveCamera(fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.Position = p
}

func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
}

func (c *Camera) SetAspect(width, height int) {
	if height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Orientation returns the camera to world rotation. Column 2 points from the
// target back towards the camera.
func (c *Camera) Orientation() mgl32.Mat3 {
	z := c.Position.Sub(c.Target)
	if z.Len() == 0 {
		z = mgl32.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := c.Up.Cross(z)
	if x.Len() == 0 {
		if math.Abs(float64(c.Up[2])) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = c.Up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl32.Mat3FromCols(x, y, z)
}

// Rotation is the XYZ Euler decomposition of Orientation, in radians.
func (c *Camera) Rotation() mgl32.Vec3 {
	return EulerXYZ(c.Orientation())
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// EulerXYZ decomposes a pure rotation matrix into angles applied in X, Y, Z
// order. Near gimbal lock the Z angle is zero.
func EulerXYZ(m mgl32.Mat3) mgl32.Vec3 {
	m11, m12, m13 := float64(m.At(0, 0)), float64(m.At(0, 1)), float64(m.At(0, 2))
	m22, m23 := float64(m.At(1, 1)), float64(m.At(1, 2))
	m32, m33 := float64(m.At(2, 1)), float64(m.At(2, 2))

	y := math.Asin(math.Max(-1, math.Min(1, m13)))
	var x, z float64
	if math.Abs(m13) < 0.9999999 {
		x = math.Atan2(-m23, m33)
		z = math.Atan2(-m12, m11)
	} else {
		x = math.Atan2(m32, m22)
	}
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// Pose reads a camera as a position and an XYZ Euler rotation.
type Pose struct {
	*Camera
}

func (p Pose) Position() mgl32.Vec3 {
	return p.Camera.Position
}
