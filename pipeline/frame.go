package pipeline

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goseascape/seascape"
)

const (
	// InitialTime is the elapsed time of the first frame, in seconds.
	InitialTime = 5.0
	// TimeStep is added to the elapsed time once per tick, independent of
	// wall-clock time.
	TimeStep = 0.01
)

// InitialCameraOrigin is the ocean camera origin before the first tick.
var InitialCameraOrigin = mgl32.Vec3{0, 10, 1}

// CameraSource is the part of a scene camera the frame driver reads.
type CameraSource interface {
	Position() mgl32.Vec3
	// Rotation is an XYZ Euler triple in radians.
	Rotation() mgl32.Vec3
}

// Frame is the uniform state shared by the passes of a frame. Only the
// driver mutates it.
type Frame struct {
	ElapsedTime  float32
	CameraOrigin mgl32.Vec3
	CameraAngle  mgl32.Vec3
	Resolution   mgl32.Vec3
	CameraNear   float32
	CameraFar    float32
	Count        uint64
}

func NewFrame(width, height int, near, far float32) *Frame {
	f := &Frame{
		ElapsedTime:  InitialTime,
		CameraOrigin: InitialCameraOrigin,
		CameraNear:   near,
		CameraFar:    far,
	}
	f.Resize(width, height)
	return f
}

// Step advances the animation clock by one frame.
func (f *Frame) Step() {
	f.ElapsedTime += TimeStep
	f.Count++
}

// SetCamera copies the camera pose into the ocean uniforms. The angle
// components are reordered and negated: (-rot.z, -rot.x, -rot.y).
func (f *Frame) SetCamera(position, rotation mgl32.Vec3) {
	f.CameraOrigin = position
	f.CameraAngle = mgl32.Vec3{-rotation[2], -rotation[0], -rotation[1]}
}

func (f *Frame) Resize(width, height int) {
	f.Resolution = mgl32.Vec3{float32(width), float32(height), 1}
}

// Ocean returns the frame as CPU reference uniforms.
func (f *Frame) Ocean() seascape.Uniforms {
	return seascape.Uniforms{
		Resolution:   f.Resolution,
		Time:         f.ElapsedTime,
		CameraAngle:  f.CameraAngle,
		CameraOrigin: f.CameraOrigin,
		CameraNear:   f.CameraNear,
		CameraFar:    f.CameraFar,
	}
}
