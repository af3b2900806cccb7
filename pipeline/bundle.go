package pipeline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goseascape/seascape"
)

type UniformType int

const (
	Sampler2D UniformType = iota
	Float
	Vec3
)

func (t UniformType) String() string {
	switch t {
	case Sampler2D:
		return "sampler2D"
	case Float:
		return "float"
	case Vec3:
		return "vec3"
	}
	return fmt.Sprintf("UniformType(%d)", int(t))
}

// Uniform is one typed slot of a pass. Only the field matching Type is used.
type Uniform struct {
	Name    string
	Type    UniformType
	Float   float32
	Vec3    mgl32.Vec3
	Texture uint32
}

// Bundle is the ordered uniform set of one shader pass. The names and types
// are the contract with the fragment shader.
type Bundle struct {
	Name     string
	uniforms []Uniform
	index    map[string]int
}

func newBundle(name string, uniforms ...Uniform) *Bundle {
	b := &Bundle{
		Name:     name,
		uniforms: uniforms,
		index:    make(map[string]int, len(uniforms)),
	}
	for i, u := range uniforms {
		b.index[u.Name] = i
	}
	return b
}

// NewDepthBundle returns the depth visualization pass uniforms.
func NewDepthBundle() *Bundle {
	return newBundle("depth",
		Uniform{Name: "tDepth", Type: Sampler2D},
		Uniform{Name: "tDiffuse", Type: Sampler2D},
		Uniform{Name: "cameraNear", Type: Float},
		Uniform{Name: "cameraFar", Type: Float},
		Uniform{Name: "t", Type: Float, Float: seascape.DefaultBlend},
	)
}

// NewOceanBundle returns the raymarch ocean pass uniforms.
func NewOceanBundle() *Bundle {
	return newBundle("ocean",
		Uniform{Name: "iResolution", Type: Vec3},
		Uniform{Name: "iTime", Type: Float, Float: InitialTime},
		Uniform{Name: "tDepth", Type: Sampler2D},
		Uniform{Name: "tDiffuse", Type: Sampler2D},
		Uniform{Name: "cameraNear", Type: Float},
		Uniform{Name: "cameraFar", Type: Float},
		Uniform{Name: "cameraAngle", Type: Vec3},
		Uniform{Name: "cameraOrigin", Type: Vec3, Vec3: InitialCameraOrigin},
	)
}

// Uniforms returns the slots in declaration order.
func (b *Bundle) Uniforms() []Uniform {
	out := make([]Uniform, len(b.uniforms))
	copy(out, b.uniforms)
	return out
}

func (b *Bundle) Lookup(name string) (Uniform, bool) {
	i, ok := b.index[name]
	if !ok {
		return Uniform{}, false
	}
	return b.uniforms[i], true
}

func (b *Bundle) slot(name string, t UniformType) (*Uniform, error) {
	i, ok := b.index[name]
	if !ok {
		return nil, fmt.Errorf("%s pass: %q: %w", b.Name, name, ErrUnknownUniform)
	}
	u := &b.uniforms[i]
	if u.Type != t {
		return nil, fmt.Errorf("%s pass: %q is %s, not %s: %w", b.Name, name, u.Type, t, ErrUniformType)
	}
	return u, nil
}

func (b *Bundle) SetFloat(name string, v float32) error {
	u, err := b.slot(name, Float)
	if err != nil {
		return err
	}
	u.Float = v
	return nil
}

func (b *Bundle) SetVec3(name string, v mgl32.Vec3) error {
	u, err := b.slot(name, Vec3)
	if err != nil {
		return err
	}
	u.Vec3 = v
	return nil
}

// SetTexture binds a GL texture handle to a sampler slot.
func (b *Bundle) SetTexture(name string, texture uint32) error {
	u, err := b.slot(name, Sampler2D)
	if err != nil {
		return err
	}
	u.Texture = texture
	return nil
}

// ApplyDepth writes the per-frame values of the depth visualization pass.
func (f *Frame) ApplyDepth(b *Bundle) error {
	if err := b.SetFloat("cameraNear", f.CameraNear); err != nil {
		return err
	}
	return b.SetFloat("cameraFar", f.CameraFar)
}

// ApplyOcean writes the per-frame values of the ocean pass.
func (f *Frame) ApplyOcean(b *Bundle) error {
	for _, set := range []func() error{
		func() error { return b.SetVec3("iResolution", f.Resolution) },
		func() error { return b.SetFloat("iTime", f.ElapsedTime) },
		func() error { return b.SetFloat("cameraNear", f.CameraNear) },
		func() error { return b.SetFloat("cameraFar", f.CameraFar) },
		func() error { return b.SetVec3("cameraAngle", f.CameraAngle) },
		func() error { return b.SetVec3("cameraOrigin", f.CameraOrigin) },
	} {
		if err := set(); err != nil {
			return err
		}
	}
	return nil
}
