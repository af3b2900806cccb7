package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goseascape/scene"
	shader "github.com/richinsley/goseascape/shader"
)

// floats per vertex: position, normal, color
const vertexStride = 9

// Mesh is a scene.Mesh uploaded to the GPU.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
	mode  uint32
	model mgl32.Mat4
	lit   bool
}

func NewMesh(m *scene.Mesh) *Mesh {
	data := make([]float32, 0, m.VertexCount()*vertexStride)
	for i, p := range m.Positions {
		n, c := m.Normals[i], m.Colors[i]
		data = append(data, p[0], p[1], p[2], n[0], n[1], n[2], c[0], c[1], c[2])
	}

	gm := &Mesh{
		count: int32(m.VertexCount()),
		mode:  gl.TRIANGLES,
		model: m.Model,
		lit:   m.Lit,
	}
	if m.Primitive == scene.Lines {
		gm.mode = gl.LINES
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.GenBuffers(1, &gm.vbo)
	gl.BindVertexArray(gm.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	for attr := uint32(0); attr < 3; attr++ {
		gl.EnableVertexAttribArray(attr)
		gl.VertexAttribPointerWithOffset(attr, 3, gl.FLOAT, false, vertexStride*4, uintptr(attr*3*4))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return gm
}

func (m *Mesh) Destroy() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// ScenePass draws meshes with ambient plus directional Lambert shading.
type ScenePass struct {
	program       uint32
	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
	litLoc        int32
	ambientLoc    int32
	lightColorLoc int32
	lightDirLoc   int32
}

func NewScenePass() (*ScenePass, error) {
	program, err := newProgram(shader.SceneVertexShader(), shader.SceneFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("scene pass: %w", err)
	}
	return &ScenePass{
		program:       program,
		modelLoc:      uniformLocation(program, "u_model"),
		viewLoc:       uniformLocation(program, "u_view"),
		projectionLoc: uniformLocation(program, "u_projection"),
		litLoc:        uniformLocation(program, "u_lit"),
		ambientLoc:    uniformLocation(program, "u_ambient"),
		lightColorLoc: uniformLocation(program, "u_lightColor"),
		lightDirLoc:   uniformLocation(program, "u_lightDir"),
	}, nil
}

func (sp *ScenePass) Draw(meshes []*Mesh, s *scene.Scene, camera *scene.Camera) {
	gl.UseProgram(sp.program)

	view := camera.ViewMatrix()
	projection := camera.ProjectionMatrix()
	ambient := s.Ambient.Color.Mul(s.Ambient.Intensity)
	lightColor := s.Sun.Color.Mul(s.Sun.Intensity)
	lightDir := s.Sun.Direction()

	gl.UniformMatrix4fv(sp.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(sp.projectionLoc, 1, false, &projection[0])
	gl.Uniform3f(sp.ambientLoc, ambient[0], ambient[1], ambient[2])
	gl.Uniform3f(sp.lightColorLoc, lightColor[0], lightColor[1], lightColor[2])
	gl.Uniform3f(sp.lightDirLoc, lightDir[0], lightDir[1], lightDir[2])

	for _, m := range meshes {
		lit := int32(0)
		if m.lit {
			lit = 1
		}
		gl.Uniform1i(sp.litLoc, lit)
		gl.UniformMatrix4fv(sp.modelLoc, 1, false, &m.model[0])
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (sp *ScenePass) Destroy() {
	gl.DeleteProgram(sp.program)
}
