package pipeline

import (
	"time"
)

// Stages is the GPU side of a frame. Implementations run each stage
// synchronously on the goroutine that owns the graphics context.
type Stages interface {
	// RasterizeScene draws the scene into the render target, filling both
	// its color and depth textures.
	RasterizeScene()
	// DepthPass blends scene color with visualized depth.
	DepthPass(f *Frame)
	// OceanPass raymarches the ocean and composites it against the scene.
	OceanPass(f *Frame)
	// Present shows or stores the final image.
	Present() error
}

// Driver advances the frame state and runs the stages in a fixed order.
type Driver struct {
	Frame  *Frame
	Camera CameraSource
	Stages Stages
	Stats  *Stats
}

func NewDriver(frame *Frame, camera CameraSource, stages Stages) *Driver {
	return &Driver{
		Frame:  frame,
		Camera: camera,
		Stages: stages,
		Stats:  NewStats(),
	}
}

// Tick runs one frame: advance time, sample the camera, rasterize, depth
// pass, ocean pass, present.
func (d *Driver) Tick() error {
	d.Frame.Step()
	d.Frame.SetCamera(d.Camera.Position(), d.Camera.Rotation())

	d.timed(StageRasterize, d.Stages.RasterizeScene)
	d.timed(StageDepth, func() { d.Stages.DepthPass(d.Frame) })
	d.timed(StageOcean, func() { d.Stages.OceanPass(d.Frame) })

	start := time.Now()
	err := d.Stages.Present()
	d.Stats.Add(StagePresent, time.Since(start))
	d.Stats.Frames++
	return err
}

func (d *Driver) timed(stage string, fn func()) {
	start := time.Now()
	fn()
	d.Stats.Add(stage, time.Since(start))
}
