package inputs

import (
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

var ErrIncompleteFramebuffer = errors.New("framebuffer is not complete")

// RenderTarget is one framebuffer with a color texture and a sampleable depth
// texture, both filled by a single scene draw.
type RenderTarget struct {
	fbo        uint32
	colorID    uint32
	depthID    uint32
	resolution [3]float32

	color *Texture
	depth *Texture
}

// NewRenderTarget allocates an RGB8 color texture and a 24 bit depth texture,
// both nearest filtered without mipmaps. There is no stencil.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	rt := &RenderTarget{}

	gl.GenFramebuffers(1, &rt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)

	gl.GenTextures(1, &rt.colorID)
	gl.BindTexture(gl.TEXTURE_2D, rt.colorID)
	setNearest()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.colorID, 0)

	gl.GenTextures(1, &rt.depthID)
	gl.BindTexture(gl.TEXTURE_2D, rt.depthID)
	setNearest()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, rt.depthID, 0)

	rt.allocate(width, height)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		rt.Destroy()
		return nil, fmt.Errorf("render target (status 0x%x): %w", status, ErrIncompleteFramebuffer)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	rt.color = &Texture{ctype: "color", textureID: rt.colorID, res: &rt.resolution}
	rt.depth = &Texture{ctype: "depth", textureID: rt.depthID, res: &rt.resolution}
	return rt, nil
}

func setNearest() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (rt *RenderTarget) allocate(width, height int) {
	gl.BindTexture(gl.TEXTURE_2D, rt.colorID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, rt.depthID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	rt.resolution = [3]float32{float32(width), float32(height), 1.0}
}

// BindForWriting binds the target and sets the viewport to cover it.
func (rt *RenderTarget) BindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	gl.Viewport(0, 0, int32(rt.resolution[0]), int32(rt.resolution[1]))
}

func (rt *RenderTarget) UnbindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resize reallocates both textures. Contents are undefined until the next draw.
func (rt *RenderTarget) Resize(width, height int) {
	if width == int(rt.resolution[0]) && height == int(rt.resolution[1]) {
		return
	}
	rt.allocate(width, height)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Color is the rasterized scene color.
func (rt *RenderTarget) Color() IChannel { return rt.color }

// Depth is the rasterized scene depth, sampled as a float in [0,1].
func (rt *RenderTarget) Depth() IChannel { return rt.depth }

func (rt *RenderTarget) Size() (int, int) {
	return int(rt.resolution[0]), int(rt.resolution[1])
}

// ReadDepth reads back the depth attachment, bottom row first.
func (rt *RenderTarget) ReadDepth() []float32 {
	w, h := rt.Size()
	depth := make([]float32, w*h)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, rt.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(depth))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return depth
}

func (rt *RenderTarget) Destroy() {
	gl.DeleteFramebuffers(1, &rt.fbo)
	gl.DeleteTextures(1, &rt.colorID)
	gl.DeleteTextures(1, &rt.depthID)
}
