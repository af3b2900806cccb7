package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goseascape/pipeline"
	shader "github.com/richinsley/goseascape/shader"
	xlate "github.com/richinsley/goseascape/translator"
)

// RenderPass is one full-screen post pass. Its uniforms are the slots of a
// pipeline.Bundle, uploaded in bundle order on every draw.
type RenderPass struct {
	Name          string
	ShaderProgram uint32
	Bundle        *pipeline.Bundle
	// locations[i] belongs to Bundle.Uniforms()[i]; -1 when the uniform
	// was optimized out.
	locations []int32
}

// NewRenderPass translates a WebGL2 fragment shader, links it with the
// full-screen quad vertex shader and resolves the bundle's uniforms through
// the translator's name mapping.
func NewRenderPass(fragmentSource string, bundle *pipeline.Bundle) (*RenderPass, error) {
	code, names, err := xlate.TranslateFragment(fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%s pass: %w", bundle.Name, err)
	}

	program, err := newProgram(shader.GenerateVertexShader(), code)
	if err != nil {
		return nil, fmt.Errorf("%s pass: %w", bundle.Name, err)
	}

	pass := &RenderPass{
		Name:          bundle.Name,
		ShaderProgram: program,
		Bundle:        bundle,
	}
	for _, u := range bundle.Uniforms() {
		loc := int32(-1)
		if mapped, ok := names[u.Name]; ok {
			loc = uniformLocation(program, mapped)
		}
		if loc == -1 {
			logger.Debugf("%s pass: uniform %s is inactive", bundle.Name, u.Name)
		}
		pass.locations = append(pass.locations, loc)
	}
	return pass, nil
}

// Draw renders the quad into the currently bound framebuffer. Samplers take
// texture units in declaration order starting at 0.
func (p *RenderPass) Draw(quadVAO uint32) {
	gl.UseProgram(p.ShaderProgram)

	var unit uint32
	for i, u := range p.Bundle.Uniforms() {
		loc := p.locations[i]
		switch u.Type {
		case pipeline.Sampler2D:
			gl.ActiveTexture(gl.TEXTURE0 + unit)
			gl.BindTexture(gl.TEXTURE_2D, u.Texture)
			if loc != -1 {
				gl.Uniform1i(loc, int32(unit))
			}
			unit++
		case pipeline.Float:
			if loc != -1 {
				gl.Uniform1f(loc, u.Float)
			}
		case pipeline.Vec3:
			if loc != -1 {
				gl.Uniform3f(loc, u.Vec3[0], u.Vec3[1], u.Vec3[2])
			}
		}
	}

	gl.BindVertexArray(quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	for i := uint32(0); i < unit; i++ {
		gl.ActiveTexture(gl.TEXTURE0 + i)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

func (p *RenderPass) Destroy() {
	gl.DeleteProgram(p.ShaderProgram)
}
