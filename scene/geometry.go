package scene

import "github.com/go-gl/mathgl/mgl32"

type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Mesh is a non-indexed vertex list with per-vertex normal and color.
type Mesh struct {
	Name      string
	Primitive Primitive
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec3
	Model     mgl32.Mat4
	// Lit meshes are shaded by the scene lights; others draw their vertex
	// color as is.
	Lit bool
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Hex converts a 0xRRGGBB color to floats.
func Hex(c uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// NewBox returns an axis aligned box centered on the origin.
func NewBox(name string, width, height, depth float32, color mgl32.Vec3) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	m := &Mesh{
		Name:      name,
		Primitive: Triangles,
		Model:     mgl32.Ident4(),
		Lit:       true,
	}

	// face normal, then the in-plane u and v axes scaled to half extents
	faces := []struct {
		n, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -hz}, mgl32.Vec3{0, hy, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, hz}, mgl32.Vec3{0, hy, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{hx, 0, 0}, mgl32.Vec3{0, 0, -hz}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{hx, 0, 0}, mgl32.Vec3{0, 0, hz}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{hx, 0, 0}, mgl32.Vec3{0, hy, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-hx, 0, 0}, mgl32.Vec3{0, hy, 0}},
	}
	half := mgl32.Vec3{hx, hy, hz}
	for _, f := range faces {
		c := mgl32.Vec3{f.n[0] * half[0], f.n[1] * half[1], f.n[2] * half[2]}
		corners := [4]mgl32.Vec3{
			c.Sub(f.u).Sub(f.v),
			c.Add(f.u).Sub(f.v),
			c.Add(f.u).Add(f.v),
			c.Sub(f.u).Add(f.v),
		}
		for _, i := range []int{0, 1, 2, 0, 2, 3} {
			m.Positions = append(m.Positions, corners[i])
			m.Normals = append(m.Normals, f.n)
			m.Colors = append(m.Colors, color)
		}
	}
	return m
}

// NewGrid returns a square line grid on the XZ plane. The two lines through
// the middle use center, the rest use line.
func NewGrid(name string, size float32, divisions int, center, line mgl32.Vec3) *Mesh {
	m := &Mesh{
		Name:      name,
		Primitive: Lines,
		Model:     mgl32.Ident4(),
	}

	step := size / float32(divisions)
	half := size / 2
	mid := divisions / 2
	up := mgl32.Vec3{0, 1, 0}

	k := -half
	for i := 0; i <= divisions; i++ {
		m.Positions = append(m.Positions,
			mgl32.Vec3{-half, 0, k}, mgl32.Vec3{half, 0, k},
			mgl32.Vec3{k, 0, -half}, mgl32.Vec3{k, 0, half},
		)
		c := line
		if i == mid {
			c = center
		}
		for j := 0; j < 4; j++ {
			m.Colors = append(m.Colors, c)
			m.Normals = append(m.Normals, up)
		}
		k += step
	}
	return m
}
