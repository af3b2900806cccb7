package seascape

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultBlend is the default mix factor of the depth visualization pass.
	DefaultBlend = 0.5

	// BackgroundThreshold marks scene pixels that are treated as empty.
	BackgroundThreshold = 0.9999999

	rayDistanceScale = 1.0 / 10.0
	sceneDepthScale  = 100.0
)

// PerspectiveDepthToViewZ converts a perspective depth buffer value to view
// space Z.
func PerspectiveDepthToViewZ(z, near, far float32) float32 {
	return (near * far) / ((far-near)*z - far)
}

// DepthValue is the visualized depth channel for depth buffer value z.
// The view space depth is computed but the channel is 1 - z.
func DepthValue(z, near, far float32) float32 {
	_ = PerspectiveDepthToViewZ(z, near, far)
	return mgl32.Clamp(1-z, 0, 1)
}

// DepthVisualization blends scene color with the visualized depth.
func DepthVisualization(color mgl32.Vec4, z, near, far, t float32) mgl32.Vec4 {
	d := DepthValue(z, near, far)
	return mixVec4(color, mgl32.Vec4{d, d, d, 1}, t)
}

// RayMarchDistance scales a raymarched hit distance into [0,1].
func RayMarchDistance(distance float32) float32 {
	return mgl32.Clamp(distance*rayDistanceScale, 0, 1)
}

// SceneDistance maps a depth buffer value into [0,1]. Only the last
// hundredth of the depth range maps above zero.
func SceneDistance(z float32) float32 {
	return mgl32.Clamp(1-(1-z)*sceneDepthScale, 0, 1)
}

// Composite picks the nearer of the raymarched and rasterized surfaces.
// Scene pixels at the background depth never occlude the ocean.
func Composite(rayColor mgl32.Vec4, rayDistance float32, sceneColor mgl32.Vec4, z float32) mgl32.Vec4 {
	rd := RayMarchDistance(rayDistance)
	sd := SceneDistance(z)
	if rd < sd || sd > BackgroundThreshold {
		return rayColor
	}
	return sceneColor
}
