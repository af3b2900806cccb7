package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fixedCamera struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
}

func (c *fixedCamera) Position() mgl32.Vec3 { return c.position }
func (c *fixedCamera) Rotation() mgl32.Vec3 { return c.rotation }

type recordingStages struct {
	calls      []string
	depthTimes []float32
	oceanTimes []float32
	err        error
}

func (r *recordingStages) RasterizeScene() {
	r.calls = append(r.calls, StageRasterize)
}

func (r *recordingStages) DepthPass(f *Frame) {
	r.calls = append(r.calls, StageDepth)
	r.depthTimes = append(r.depthTimes, f.ElapsedTime)
}

func (r *recordingStages) OceanPass(f *Frame) {
	r.calls = append(r.calls, StageOcean)
	r.oceanTimes = append(r.oceanTimes, f.ElapsedTime)
}

func (r *recordingStages) Present() error {
	r.calls = append(r.calls, StagePresent)
	return r.err
}

func TestTickOrder(t *testing.T) {
	stages := &recordingStages{}
	d := NewDriver(NewFrame(640, 480, 0.01, 2000), &fixedCamera{}, stages)

	for i := 0; i < 3; i++ {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	if len(stages.calls) != 12 {
		t.Fatalf("expected 12 stage calls; got %d", len(stages.calls))
	}
	for i, call := range stages.calls {
		if exp := stageOrder[i%4]; call != exp {
			t.Fatalf("[spec %d] expected stage %s; got %s", i, exp, call)
		}
	}
	if d.Stats.Frames != 3 {
		t.Fatalf("expected 3 frames counted; got %d", d.Stats.Frames)
	}
}

func TestTickAdvancesTimeBeforePasses(t *testing.T) {
	stages := &recordingStages{}
	d := NewDriver(NewFrame(640, 480, 0.01, 2000), &fixedCamera{}, stages)

	for i := 0; i < 100; i++ {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	if got := stages.oceanTimes[0]; math.Abs(float64(got)-5.01) > 1e-5 {
		t.Fatalf("expected first frame time 5.01; got %f", got)
	}
	if got := d.Frame.ElapsedTime; math.Abs(float64(got)-6.0) > 1e-4 {
		t.Fatalf("expected time 6.0 after 100 frames; got %f", got)
	}
	for i := range stages.oceanTimes {
		if stages.depthTimes[i] != stages.oceanTimes[i] {
			t.Fatalf("[spec %d] expected both passes to see the same time", i)
		}
		if i > 0 && stages.oceanTimes[i] <= stages.oceanTimes[i-1] {
			t.Fatalf("[spec %d] expected time to increase; got %f after %f", i, stages.oceanTimes[i], stages.oceanTimes[i-1])
		}
	}
}

func TestTickSamplesCamera(t *testing.T) {
	camera := &fixedCamera{
		position: mgl32.Vec3{1, 2, 3},
		rotation: mgl32.Vec3{0.1, 0.2, 0.3},
	}
	d := NewDriver(NewFrame(640, 480, 0.01, 2000), camera, &recordingStages{})

	if d.Frame.CameraOrigin != InitialCameraOrigin {
		t.Fatalf("expected initial origin %v; got %v", InitialCameraOrigin, d.Frame.CameraOrigin)
	}
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}

	if d.Frame.CameraOrigin != camera.position {
		t.Fatalf("expected origin %v; got %v", camera.position, d.Frame.CameraOrigin)
	}
	exp := mgl32.Vec3{-0.3, -0.1, -0.2}
	if d.Frame.CameraAngle != exp {
		t.Fatalf("expected angle %v; got %v", exp, d.Frame.CameraAngle)
	}
}

func TestTickReturnsPresentError(t *testing.T) {
	failure := errors.New("readback failed")
	stages := &recordingStages{err: failure}
	d := NewDriver(NewFrame(64, 64, 0.01, 2000), &fixedCamera{}, stages)

	if err := d.Tick(); !errors.Is(err, failure) {
		t.Fatalf("expected present error; got %v", err)
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(640, 480, 0.01, 2000)
	if exp := (mgl32.Vec3{640, 480, 1}); f.Resolution != exp {
		t.Fatalf("expected resolution %v; got %v", exp, f.Resolution)
	}
	f.Resize(1280, 720)
	if exp := (mgl32.Vec3{1280, 720, 1}); f.Resolution != exp {
		t.Fatalf("expected resolution %v; got %v", exp, f.Resolution)
	}

	u := f.Ocean()
	if u.Resolution != f.Resolution || u.Time != f.ElapsedTime || u.CameraFar != 2000 {
		t.Fatalf("expected ocean uniforms to mirror the frame; got %+v", u)
	}
}
