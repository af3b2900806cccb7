package inputs

// IChannel is a texture that a pass samples.
type IChannel interface {
	// GetCType returns the kind of input, e.g. "buffer" or "depth".
	GetCType() string

	// GetTextureID returns the OpenGL texture ID that should be bound.
	GetTextureID() uint32

	// ChannelRes returns the resolution of the input channel as a vec3.
	ChannelRes() [3]float32

	// Destroy releases any resources held by the channel.
	Destroy()

	// GetSamplerType returns the GLSL sampler type.
	GetSamplerType() string
}

// Texture is a channel view of a texture owned by something else, such as one
// attachment of a RenderTarget. Destroy is a no-op; the owner frees it.
type Texture struct {
	ctype     string
	textureID uint32
	res       *[3]float32
}

func (t *Texture) GetCType() string       { return t.ctype }
func (t *Texture) GetTextureID() uint32   { return t.textureID }
func (t *Texture) ChannelRes() [3]float32 { return *t.res }
func (t *Texture) GetSamplerType() string { return "sampler2D" }
func (t *Texture) Destroy()               {}
