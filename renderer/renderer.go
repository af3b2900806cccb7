package renderer

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goseascape/graphics"
	"github.com/richinsley/goseascape/log"
	options "github.com/richinsley/goseascape/options"
	"github.com/richinsley/goseascape/pipeline"
	"github.com/richinsley/goseascape/scene"
	shader "github.com/richinsley/goseascape/shader"
)

var logger = log.New("renderer")

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Renderer is the render pipeline context. It owns every GPU object used to
// draw a frame and implements the frame stages the driver runs.
type Renderer struct {
	context           graphics.Context
	options           *options.SceneOptions
	quadVAO           uint32
	quadVBO           uint32
	blitProgram       uint32
	scene             *Scene
	offscreenRenderer *OffscreenRenderer
	camera            *scene.Camera
	controls          *scene.OrbitControls
	driver            *pipeline.Driver
	recordMode        bool
	// present is swapped by the offscreen modes
	present func() error
}

var _ pipeline.Stages = (*Renderer)(nil)

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// NewRenderer makes ctx current, loads GL and builds the demo scene. In
// record mode the render size is fixed by opts; otherwise it follows the
// window framebuffer.
func NewRenderer(opts *options.SceneOptions, recordMode bool, ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		options:    opts,
		recordMode: recordMode,
	}

	ctx.MakeCurrent()
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize gl: %w", glInitErr)
	}
	logger.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	width, height := r.renderSize()

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	var err error
	r.blitProgram, err = newProgram(shader.GenerateVertexShader(), shader.GetBlitFragmentShader())
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}

	r.camera = scene.NewDemoCamera(float32(width) / float32(height))
	r.controls = scene.NewOrbitControls(r.camera, mgl32.Vec3{})

	r.scene, err = LoadScene(scene.NewDemoScene(), width, height)
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	if err := r.scene.DepthPass.Bundle.SetFloat("t", float32(*opts.Blend)); err != nil {
		r.destroy()
		return nil, err
	}

	r.offscreenRenderer, err = NewOffscreenRenderer(width, height)
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
	}

	frame := pipeline.NewFrame(width, height, r.camera.Near, r.camera.Far)
	frame.ElapsedTime = float32(*opts.Time)
	r.driver = pipeline.NewDriver(frame, scene.Pose{Camera: r.camera}, r)
	r.present = r.presentToScreen
	return r, nil
}

func (r *Renderer) renderSize() (int, int) {
	if r.recordMode {
		return *r.options.Width, *r.options.Height
	}
	return r.context.GetFramebufferSize()
}

// Shutdown releases the GPU objects and closes the graphics context. Frame
// timings are logged first.
func (r *Renderer) Shutdown() {
	if r.driver.Stats.Frames > 0 {
		var buf bytes.Buffer
		r.driver.Stats.Table(&buf)
		logger.Infof("Frame timings:\n%s", buf.String())
	}
	r.destroy()
	r.context.Shutdown()
}

func (r *Renderer) destroy() {
	if r.scene != nil {
		r.scene.Destroy()
	}
	if r.offscreenRenderer != nil {
		r.offscreenRenderer.Destroy()
	}
	if r.blitProgram != 0 {
		gl.DeleteProgram(r.blitProgram)
	}
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}

// RasterizeScene clears the render target to black at depth 1 and draws the
// scene meshes into it.
func (r *Renderer) RasterizeScene() {
	rt := r.scene.RenderTarget
	rt.BindForWriting()
	bg := r.scene.Source.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r.scene.ScenePass.Draw(r.scene.Meshes, r.scene.Source, r.camera)

	gl.Disable(gl.DEPTH_TEST)
	rt.UnbindForWriting()
}

// DepthPass writes the depth visualization into the composer buffer.
func (r *Renderer) DepthPass(f *pipeline.Frame) {
	pass := r.scene.DepthPass
	if err := f.ApplyDepth(pass.Bundle); err != nil {
		logger.Error(err)
	}

	composer := r.scene.Composer
	composer.BindForWriting()
	gl.Clear(gl.COLOR_BUFFER_BIT)
	pass.Draw(r.quadVAO)
	composer.UnbindForWriting()
	composer.SwapBuffers()
}

// OceanPass raymarches the ocean over the composer output into the final
// image.
func (r *Renderer) OceanPass(f *pipeline.Frame) {
	pass := r.scene.OceanPass
	if err := f.ApplyOcean(pass.Bundle); err != nil {
		logger.Error(err)
	}
	// the composer swapped after the depth pass
	if err := pass.Bundle.SetTexture("tDiffuse", r.scene.Composer.GetTextureID()); err != nil {
		logger.Error(err)
	}

	r.offscreenRenderer.BindForWriting()
	gl.Clear(gl.COLOR_BUFFER_BIT)
	pass.Draw(r.quadVAO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (r *Renderer) Present() error {
	return r.present()
}

func (r *Renderer) presentToScreen() error {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.blitProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.offscreenRenderer.TextureID())
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.context.EndFrame()
	return nil
}

// resize makes every render surface and the camera follow the framebuffer.
func (r *Renderer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if w, h := r.offscreenRenderer.Size(); w == width && h == height {
		return
	}
	logger.Debugf("Resizing to %dx%d", width, height)
	r.scene.Resize(width, height)
	r.offscreenRenderer.Resize(width, height)
	r.driver.Frame.Resize(width, height)
	r.camera.SetAspect(width, height)
}

// ResetCamera puts the camera back at its starting pose.
func (r *Renderer) ResetCamera() {
	r.camera.SetPosition(scene.CameraPosition)
	r.controls = scene.NewOrbitControls(r.camera, mgl32.Vec3{})
	logger.Debug("Camera reset")
}

func (r *Renderer) handleInput() {
	_, height := r.context.GetFramebufferSize()
	cursor := r.context.Cursor()
	r.controls.Pointer(cursor.X, cursor.Y, cursor.Down, float32(height))
	if scroll := r.context.ScrollDelta(); scroll != 0 {
		r.controls.Dolly(scroll)
	}
	r.controls.Update()
}

// Run is the interactive loop. It returns when the window closes or ctx is
// cancelled.
func (r *Renderer) Run(ctx context.Context) error {
	logger.Notice("Starting interactive render loop")
	start := r.context.Time()
	defer func() {
		if elapsed := r.context.Time() - start; elapsed > 0 {
			logger.Infof("Average %.1f fps", float64(r.driver.Stats.Frames)/elapsed)
		}
	}()

	for !r.context.ShouldClose() {
		if err := ctx.Err(); err != nil {
			logger.Infof("Render loop stopped: %v", err)
			return nil
		}
		r.resize(r.context.GetFramebufferSize())
		r.handleInput()
		if err := r.driver.Tick(); err != nil {
			return err
		}
	}
	return nil
}
