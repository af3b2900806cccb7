package inputs

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer manages two sets of FBOs and textures for double-buffering.
// A pass writes into one while the next pass samples the other.
type Buffer struct {
	ctype string

	fbo        [2]uint32
	textureID  [2]uint32
	readIndex  int // Index of the texture holding the last finished output
	writeIndex int // Index of the FBO to write to

	resolution [3]float32
}

// NewBuffer creates two RGBA8 framebuffers of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	b := &Buffer{
		ctype:      "buffer",
		readIndex:  0,
		writeIndex: 1,
	}

	for i := 0; i < 2; i++ {
		var fbo, texture uint32
		gl.GenTextures(1, &texture)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

		gl.GenFramebuffers(1, &fbo)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)

		b.fbo[i] = fbo
		b.textureID[i] = texture

		if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			b.Destroy()
			return nil, fmt.Errorf("buffer framebuffer %d: %w", i, ErrIncompleteFramebuffer)
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	b.resolution = [3]float32{float32(width), float32(height), 1.0}
	return b, nil
}

// BindForWriting binds the current write-target FBO.
func (b *Buffer) BindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.fbo[b.writeIndex])
	gl.Viewport(0, 0, int32(b.resolution[0]), int32(b.resolution[1]))
}

func (b *Buffer) UnbindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// SwapBuffers makes the texture just written the one that is read.
func (b *Buffer) SwapBuffers() {
	b.readIndex, b.writeIndex = b.writeIndex, b.readIndex
}

// GetTextureID returns the texture holding the last finished output.
func (b *Buffer) GetTextureID() uint32 {
	return b.textureID[b.readIndex]
}

// Resize changes the size of both textures.
func (b *Buffer) Resize(width, height int) {
	if width == int(b.resolution[0]) && height == int(b.resolution[1]) {
		return
	}

	b.resolution = [3]float32{float32(width), float32(height), 1.0}
	for i := 0; i < 2; i++ {
		gl.BindTexture(gl.TEXTURE_2D, b.textureID[i])
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// IChannel Interface Implementation
func (b *Buffer) GetCType() string       { return b.ctype }
func (b *Buffer) ChannelRes() [3]float32 { return b.resolution }
func (b *Buffer) GetSamplerType() string { return "sampler2D" }
func (b *Buffer) Destroy() {
	gl.DeleteFramebuffers(2, &b.fbo[0])
	gl.DeleteTextures(2, &b.textureID[0])
}
