package seascape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Scalar helpers with GLSL semantics.

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func pow32(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

func floor32(x float32) float32 { return float32(math.Floor(float64(x))) }

func fract(x float32) float32 { return x - floor32(x) }

// mix is GLSL mix: x*(1-a) + y*a.
func mix(x, y, a float32) float32 {
	return x*(1-a) + y*a
}

func mixVec3(x, y mgl32.Vec3, a float32) mgl32.Vec3 {
	return mgl32.Vec3{mix(x[0], y[0], a), mix(x[1], y[1], a), mix(x[2], y[2], a)}
}

func mixVec4(x, y mgl32.Vec4, a float32) mgl32.Vec4 {
	return mgl32.Vec4{mix(x[0], y[0], a), mix(x[1], y[1], a), mix(x[2], y[2], a), mix(x[3], y[3], a)}
}

// smoothstep follows the GLSL formula literally, including edge0 > edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// reflect is GLSL reflect: i - 2*dot(n,i)*n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
