package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DollyScale is the radius factor for one unit of scroll.
	DollyScale = 0.95

	minPolar = 1e-6
)

// OrbitControls keeps a camera on a sphere around Target. Dragging changes the
// azimuth and polar angles, scrolling changes the radius.
type OrbitControls struct {
	Camera *Camera
	Target mgl32.Vec3

	Radius float32
	// Theta is the azimuth around +Y, measured from +Z.
	Theta float32
	// Phi is the polar angle from +Y.
	Phi float32

	MinRadius float32
	MaxRadius float32

	dragging bool
	lastX    float32
	lastY    float32
}

// NewOrbitControls derives the orbit from the camera's current position.
func NewOrbitControls(camera *Camera, target mgl32.Vec3) *OrbitControls {
	o := &OrbitControls{
		Camera:    camera,
		Target:    target,
		MaxRadius: float32(math.Inf(1)),
	}
	offset := camera.Position.Sub(target)
	o.Radius = offset.Len()
	if o.Radius > 0 {
		o.Theta = float32(math.Atan2(float64(offset[0]), float64(offset[2])))
		o.Phi = float32(math.Acos(math.Max(-1, math.Min(1, float64(offset[1]/o.Radius)))))
	}
	o.Update()
	return o
}

// Rotate turns the orbit by a pointer movement in pixels. A drag across the
// full viewport height is one full turn.
func (o *OrbitControls) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	o.Theta -= 2 * math.Pi * dx / viewportHeight
	o.Phi -= 2 * math.Pi * dy / viewportHeight
}

// Dolly moves the camera towards the target for positive scroll.
func (o *OrbitControls) Dolly(scroll float32) {
	o.Radius *= float32(math.Pow(DollyScale, float64(scroll)))
}

// Pointer feeds one sample of pointer state, rotating while the button is
// held.
func (o *OrbitControls) Pointer(x, y float32, down bool, viewportHeight float32) {
	if down && o.dragging {
		o.Rotate(x-o.lastX, y-o.lastY, viewportHeight)
	}
	o.dragging = down
	o.lastX, o.lastY = x, y
}

// Update clamps the orbit and moves the camera onto it.
func (o *OrbitControls) Update() {
	o.Phi = float32(math.Max(minPolar, math.Min(math.Pi-minPolar, float64(o.Phi))))
	if o.Radius < o.MinRadius {
		o.Radius = o.MinRadius
	}
	if o.Radius > o.MaxRadius {
		o.Radius = o.MaxRadius
	}

	sinPhi := float32(math.Sin(float64(o.Phi)))
	offset := mgl32.Vec3{
		o.Radius * sinPhi * float32(math.Sin(float64(o.Theta))),
		o.Radius * float32(math.Cos(float64(o.Phi))),
		o.Radius * sinPhi * float32(math.Cos(float64(o.Theta))),
	}
	o.Camera.SetPosition(o.Target.Add(offset))
	o.Camera.LookAt(o.Target)
}
