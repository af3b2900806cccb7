package renderer

import (
	"fmt"

	inputs "github.com/richinsley/goseascape/inputs"
	"github.com/richinsley/goseascape/pipeline"
	"github.com/richinsley/goseascape/scene"
	shader "github.com/richinsley/goseascape/shader"
)

// Scene holds the GPU resources built for a scene.Scene: its meshes, the
// render target they are rasterized into, the composer buffer and the two
// post passes.
type Scene struct {
	Source       *scene.Scene
	Meshes       []*Mesh
	ScenePass    *ScenePass
	RenderTarget *inputs.RenderTarget
	Composer     *inputs.Buffer
	DepthPass    *RenderPass
	OceanPass    *RenderPass
}

// LoadScene uploads src and compiles the passes. On error everything created
// so far is released.
func LoadScene(src *scene.Scene, width, height int) (s *Scene, err error) {
	s = &Scene{Source: src}
	defer func() {
		if err != nil {
			s.Destroy()
			s = nil
		}
	}()

	for _, m := range src.Meshes {
		s.Meshes = append(s.Meshes, NewMesh(m))
	}
	if s.ScenePass, err = NewScenePass(); err != nil {
		return
	}
	if s.RenderTarget, err = inputs.NewRenderTarget(width, height); err != nil {
		return
	}
	if s.Composer, err = inputs.NewBuffer(width, height); err != nil {
		return
	}
	if s.DepthPass, err = NewRenderPass(shader.DepthFragmentShader(), pipeline.NewDepthBundle()); err != nil {
		return
	}
	if s.OceanPass, err = NewRenderPass(shader.OceanFragmentShader(), pipeline.NewOceanBundle()); err != nil {
		return
	}

	// both passes sample the same depth texture
	rt := s.RenderTarget
	if err = bindChannel(s.DepthPass.Bundle, "tDepth", rt.Depth()); err != nil {
		return
	}
	if err = bindChannel(s.DepthPass.Bundle, "tDiffuse", rt.Color()); err != nil {
		return
	}
	if err = bindChannel(s.OceanPass.Bundle, "tDepth", rt.Depth()); err != nil {
		return
	}
	if err = bindChannel(s.OceanPass.Bundle, "tDiffuse", s.Composer); err != nil {
		return
	}
	logger.Infof("Loaded scene with %d meshes at %dx%d", len(s.Meshes), width, height)
	return s, nil
}

func (s *Scene) Resize(width, height int) {
	s.RenderTarget.Resize(width, height)
	s.Composer.Resize(width, height)
}

func (s *Scene) Destroy() {
	for _, m := range s.Meshes {
		m.Destroy()
	}
	if s.ScenePass != nil {
		s.ScenePass.Destroy()
	}
	if s.RenderTarget != nil {
		s.RenderTarget.Destroy()
	}
	if s.Composer != nil {
		s.Composer.Destroy()
	}
	if s.DepthPass != nil {
		s.DepthPass.Destroy()
	}
	if s.OceanPass != nil {
		s.OceanPass.Destroy()
	}
}

// bindChannel points a sampler uniform at a channel's texture after checking
// that the channel can be sampled that way.
func bindChannel(b *pipeline.Bundle, name string, ch inputs.IChannel) error {
	u, ok := b.Lookup(name)
	if !ok {
		return fmt.Errorf("%s pass: %q: %w", b.Name, name, pipeline.ErrUnknownUniform)
	}
	if u.Type.String() != ch.GetSamplerType() {
		return fmt.Errorf("%s pass: %q is %s, %s channel is %s: %w",
			b.Name, name, u.Type, ch.GetCType(), ch.GetSamplerType(), pipeline.ErrUniformType)
	}
	res := ch.ChannelRes()
	logger.Debugf("%s pass: %s <- %s texture %d (%.0fx%.0f)", b.Name, name, ch.GetCType(), ch.GetTextureID(), res[0], res[1])
	return b.SetTexture(name, ch.GetTextureID())
}
