package seascape

import "github.com/go-gl/mathgl/mgl32"

// FromEuler builds the ocean pass camera matrix from three angles.
//
// This is not a standard yaw-pitch-roll composition. Each angle contributes a
// (sin, cos) pair and the nine coefficients are combined exactly as below.
// The result is column-major, so m.Col(i) is GLSL's m[i].
func FromEuler(ang mgl32.Vec3) mgl32.Mat3 {
	a1 := mgl32.Vec2{sin32(ang[0]), cos32(ang[0])}
	a2 := mgl32.Vec2{sin32(ang[1]), cos32(ang[1])}
	a3 := mgl32.Vec2{sin32(ang[2]), cos32(ang[2])}

	c0 := mgl32.Vec3{
		a1[1]*a3[1] + a1[0]*a2[0]*a3[0],
		a1[1]*a2[0]*a3[0] + a3[1]*a1[0],
		-a2[1] * a3[0],
	}
	c1 := mgl32.Vec3{
		-a2[1] * a1[0],
		a1[1] * a2[1],
		a2[0],
	}
	c2 := mgl32.Vec3{
		a3[1]*a1[0]*a2[0] + a1[1]*a3[0],
		a1[0]*a3[0] - a1[1]*a3[1]*a2[0],
		a2[1] * a3[1],
	}
	return mgl32.Mat3FromCols(c0, c1, c2)
}

// RowMul computes the GLSL product v * m, treating v as a row vector.
// Component i of the result is dot(v, m[i]).
func RowMul(v mgl32.Vec3, m mgl32.Mat3) mgl32.Vec3 {
	return mgl32.Vec3{v.Dot(m.Col(0)), v.Dot(m.Col(1)), v.Dot(m.Col(2))}
}
