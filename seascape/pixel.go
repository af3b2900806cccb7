package seascape

import "github.com/go-gl/mathgl/mgl32"

// Gamma is the output power curve of the ocean pass.
const Gamma = 0.65

// Uniforms holds the per-frame inputs of the ocean pass.
type Uniforms struct {
	Resolution   mgl32.Vec3
	Time         float32
	CameraAngle  mgl32.Vec3
	CameraOrigin mgl32.Vec3
	CameraNear   float32
	CameraFar    float32
}

// Sample is the raymarched result for one fragment.
type Sample struct {
	Dir   mgl32.Vec3
	Hit   Hit
	Color mgl32.Vec4
	// Distance is the unscaled length of Hit.Point - origin.
	Distance float32
}

// RayDirection returns the view ray through fragment coordinate coord.
func RayDirection(coord mgl32.Vec2, resolution, angle mgl32.Vec3) mgl32.Vec3 {
	uv := mgl32.Vec2{coord[0] / resolution[0], coord[1] / resolution[1]}
	uv = mgl32.Vec2{uv[0]*2 - 1, uv[1]*2 - 1}
	uv[0] *= resolution[0] / resolution[1]

	dir := mgl32.Vec3{uv[0], uv[1], -2.0}.Normalize()
	dir[2] += uv.Len() * 0.14
	return RowMul(dir.Normalize(), FromEuler(angle))
}

// Sample traces and shades the fragment at coord.
func (u Uniforms) Sample(coord mgl32.Vec2) Sample {
	sea := NewSea(u.Time)
	ori := u.CameraOrigin
	dir := RayDirection(coord, u.Resolution, u.CameraAngle)

	hit := sea.HeightMapTracing(ori, dir)
	dist := hit.Point.Sub(ori)
	n := sea.Normal(hit.Point, dist.Dot(dist)*(0.1/u.Resolution[0]))

	color := mixVec3(
		SkyColor(dir),
		SeaColor(hit.Point, n, Light, dir, dist),
		pow32(smoothstep(0, -0.02, dir[1]), 0.2))

	return Sample{
		Dir:      dir,
		Hit:      hit,
		Color:    gammaCorrect(color),
		Distance: dist.Len(),
	}
}

// gammaCorrect applies pow(color, Gamma). Negative channels clamp to zero
// since pow is undefined for them.
func gammaCorrect(c mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{
		pow32(max(c[0], 0), Gamma),
		pow32(max(c[1], 0), Gamma),
		pow32(max(c[2], 0), Gamma),
		1.0,
	}
}
