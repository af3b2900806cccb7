package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goseascape/graphics"
	"github.com/richinsley/goseascape/log"
	options "github.com/richinsley/goseascape/options"
)

var logger = log.New("glfw")

// Context owns a GLFW window and tracks pointer and scroll input for it.
type Context struct {
	window *glfw.Window
	// interval is the swap interval applied when the context is made current.
	interval int
	scroll float32
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

var _ graphics.Context = (*Context)(nil)

// New creates a GL 4.1 core window. Hidden windows are used for offscreen
// rendering.
func New(options *options.SceneOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, "goseascape", nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		interval:     swapInterval(visible),
		keyCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetScrollCallback(c.glfwScrollCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	c.scroll += float32(yoff)
}

// Cursor returns the pointer position scaled from window to framebuffer
// pixels.
func (c *Context) Cursor() graphics.Cursor {
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}

	cursorX, cursorY := c.window.GetCursorPos()
	return graphics.Cursor{
		X:    float32(cursorX * scaleX),
		Y:    float32(cursorY * scaleY),
		Down: c.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
	}
}

func (c *Context) ScrollDelta() float32 {
	d := c.scroll
	c.scroll = 0
	return d
}

// swapInterval ties a visible window to vsync so that EndFrame returns once
// per display refresh. Hidden windows render as fast as frames are consumed.
func swapInterval(visible bool) int {
	if visible {
		return 1
	}
	return 0
}

// MakeCurrent makes the context current for the calling goroutine and
// applies its swap interval.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
	glfw.SwapInterval(c.interval)
	logger.Debugf("Swap interval %d", c.interval)
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logger.Debug("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logger.Debug("GLFW terminated")
}
