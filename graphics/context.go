package graphics

// Cursor is the pointer state in framebuffer pixels, origin top left.
type Cursor struct {
	X, Y float32
	Down bool
}

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// Cursor returns the current left button pointer state.
	Cursor() Cursor
	// ScrollDelta returns the vertical scroll since the last call.
	ScrollDelta() float32
}
