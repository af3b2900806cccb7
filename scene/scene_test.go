package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHex(t *testing.T) {
	type spec struct {
		c   uint32
		exp mgl32.Vec3
	}
	specs := []spec{
		{0x000000, mgl32.Vec3{0, 0, 0}},
		{0x00ff00, mgl32.Vec3{0, 1, 0}},
		{0xffffff, mgl32.Vec3{1, 1, 1}},
		{0x404040, mgl32.Vec3{64.0 / 255, 64.0 / 255, 64.0 / 255}},
	}
	for index, s := range specs {
		if got := Hex(s.c); !got.ApproxEqualThreshold(s.exp, 1e-6) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}

func TestBox(t *testing.T) {
	box := NewBox("box", 10, 10, 10, Hex(BoxColor))
	if box.VertexCount() != 36 {
		t.Fatalf("expected 36 vertices; got %d", box.VertexCount())
	}
	for i, p := range box.Positions {
		for c := 0; c < 3; c++ {
			if p[c] != 5 && p[c] != -5 {
				t.Fatalf("[spec %d] expected vertex on a box corner; got %v", i, p)
			}
		}
		n := box.Normals[i]
		if p.Dot(n) != 5 {
			t.Fatalf("[spec %d] expected vertex %v on the face with normal %v", i, p, n)
		}
	}

	// Each triangle winds counter clockwise seen from outside.
	for i := 0; i < len(box.Positions); i += 3 {
		a, b, c := box.Positions[i], box.Positions[i+1], box.Positions[i+2]
		if b.Sub(a).Cross(c.Sub(a)).Dot(box.Normals[i]) <= 0 {
			t.Fatalf("[spec %d] expected outward winding", i/3)
		}
	}
}

func TestGrid(t *testing.T) {
	grid := NewGrid("grid", 50, 50, Hex(GridCenter), Hex(GridLine))
	if grid.VertexCount() != 51*4 {
		t.Fatalf("expected %d vertices; got %d", 51*4, grid.VertexCount())
	}
	if grid.Primitive != Lines {
		t.Fatalf("expected line primitive")
	}

	centers := 0
	for i, c := range grid.Colors {
		if c == Hex(GridCenter) {
			centers++
			if p := grid.Positions[i]; p[0] != 0 && p[2] != 0 {
				t.Fatalf("[spec %d] expected center line through the origin; got %v", i, p)
			}
		}
	}
	if centers != 4 {
		t.Fatalf("expected 4 center line vertices; got %d", centers)
	}
}

func TestDemoScene(t *testing.T) {
	s := NewDemoScene()
	if len(s.Meshes) != 2 {
		t.Fatalf("expected grid and box; got %d meshes", len(s.Meshes))
	}

	box := s.Meshes[1]
	center := box.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if center.Vec3() != BoxPosition {
		t.Fatalf("expected box at %v; got %v", BoxPosition, center.Vec3())
	}
	if !box.Lit || s.Meshes[0].Lit {
		t.Fatalf("expected only the box to be lit")
	}

	exp := mgl32.Vec3{4, 2, 4}.Normalize()
	if got := s.Sun.Direction(); !got.ApproxEqualThreshold(exp, 1e-6) {
		t.Fatalf("expected sun direction %v; got %v", exp, got)
	}
	if s.Sun.Intensity != 0.5 {
		t.Fatalf("expected sun intensity 0.5; got %f", s.Sun.Intensity)
	}
}
