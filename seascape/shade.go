package seascape

import "github.com/go-gl/mathgl/mgl32"

// Light is the fixed sun direction of the ocean pass.
var Light = mgl32.Vec3{0.0, 1.0, 0.8}.Normalize()

func Diffuse(n, l mgl32.Vec3, p float32) float32 {
	return pow32(n.Dot(l)*0.4+0.6, p)
}

// Specular is a normalised Phong lobe around the reflected eye ray.
func Specular(n, l, e mgl32.Vec3, s float32) float32 {
	nrm := (s + 8.0) / (Pi * 8.0)
	return pow32(max(reflect(e, n).Dot(l), 0), s) * nrm
}

// SkyColor is a vertical gradient of the ray direction.
func SkyColor(e mgl32.Vec3) mgl32.Vec3 {
	y := (max(e[1], 0)*0.8 + 0.2) * 0.8
	return mgl32.Vec3{pow32(1-y, 2), 1 - y, 0.6 + (1-y)*0.4}.Mul(1.1)
}

// SeaColor shades a surface point p with normal n seen along eye from
// dist = p - origin.
func SeaColor(p, n, l, eye, dist mgl32.Vec3) mgl32.Vec3 {
	fresnel := mgl32.Clamp(1-n.Dot(eye.Mul(-1)), 0, 1)
	fresnel = pow32(fresnel, 3) * 0.5

	reflected := SkyColor(reflect(eye, n))
	refracted := SeaBase.Add(SeaWaterColor.Mul(Diffuse(n, l, 80) * 0.12))

	color := mixVec3(refracted, reflected, fresnel)

	atten := max(1-dist.Dot(dist)*0.001, 0)
	color = color.Add(SeaWaterColor.Mul((p[1] - SeaHeight) * 0.18 * atten))

	spec := Specular(n, l, eye, 60)
	return color.Add(mgl32.Vec3{spec, spec, spec})
}
