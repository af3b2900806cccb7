package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	inputs "github.com/richinsley/goseascape/inputs"
	shader "github.com/richinsley/goseascape/shader"
)

// OffscreenRenderer owns the framebuffer the ocean pass writes the final
// image into, and a second framebuffer with three R8UI planes that the
// final image is converted into for the encoder.
type OffscreenRenderer struct {
	fbo           uint32
	textureID     uint32
	yuvFbo        uint32
	yuvTextureIDs [3]uint32
	yuvProgram    uint32
	width         int
	height        int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{}

	// --- Create Main FBO for rendering ---
	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)

	// --- Create YUV FBO for conversion ---
	gl.GenFramebuffers(1, &or.yuvFbo)
	gl.GenTextures(3, &or.yuvTextureIDs[0])

	or.allocate(width, height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo (status 0x%x): %w", status, inputs.ErrIncompleteFramebuffer)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, or.yuvFbo)
	for i := 0; i < 3; i++ {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), gl.TEXTURE_2D, or.yuvTextureIDs[i], 0)
	}
	drawBuffers := []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2}
	gl.DrawBuffers(3, &drawBuffers[0])
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		or.Destroy()
		return nil, fmt.Errorf("yuv fbo (status 0x%x): %w", status, inputs.ErrIncompleteFramebuffer)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	var err error
	or.yuvProgram, err = newProgram(shader.GenerateVertexShader(), shader.GetYUVFragmentShader())
	if err != nil {
		or.Destroy()
		return nil, fmt.Errorf("failed to create yuv program: %w", err)
	}
	return or, nil
}

func (or *OffscreenRenderer) allocate(width, height int) {
	or.width, or.height = width, height

	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	for i := 0; i < 3; i++ {
		gl.BindTexture(gl.TEXTURE_2D, or.yuvTextureIDs[i])
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8UI, int32(width), int32(height), 0, gl.RED_INTEGER, gl.UNSIGNED_BYTE, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Resize reallocates every attachment.
func (or *OffscreenRenderer) Resize(width, height int) {
	if width == or.width && height == or.height {
		return
	}
	or.allocate(width, height)
}

// BindForWriting binds the main FBO and sets the viewport to cover it.
func (or *OffscreenRenderer) BindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.Viewport(0, 0, int32(or.width), int32(or.height))
}

func (or *OffscreenRenderer) TextureID() uint32 { return or.textureID }

func (or *OffscreenRenderer) Size() (int, int) { return or.width, or.height }

// ReadYUV converts the final image to planar yuv444p and reads the three
// planes back, top row first.
func (or *OffscreenRenderer) ReadYUV(quadVAO uint32) []byte {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.yuvFbo)
	gl.Viewport(0, 0, int32(or.width), int32(or.height))
	gl.UseProgram(or.yuvProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.BindVertexArray(quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	planeSize := or.width * or.height
	yuvData := make([]byte, planeSize*3)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	for i := 0; i < 3; i++ {
		gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + uint32(i))
		gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RED_INTEGER, gl.UNSIGNED_BYTE, gl.Ptr(yuvData[i*planeSize:]))
	}
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return yuvData
}

// ReadRGBA reads the final image as interleaved RGBA floats, bottom row
// first.
func (or *OffscreenRenderer) ReadRGBA() []float32 {
	pixels := make([]float32, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.FLOAT, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteFramebuffers(1, &or.yuvFbo)
	gl.DeleteTextures(3, &or.yuvTextureIDs[0])
	if or.yuvProgram != 0 {
		gl.DeleteProgram(or.yuvProgram)
	}
}
