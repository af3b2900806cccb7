package seascape

import "github.com/go-gl/mathgl/mgl32"

// Hit is the result of tracing a ray against the height field.
type Hit struct {
	T     float32
	Point mgl32.Vec3
	// Iterations is the number of secant steps taken; zero for a miss.
	Iterations int
}

// HeightMapTracing intersects the ray ori + t*dir with the coarse surface.
//
// If the far bound is still above the surface the ray misses and T is
// FarBound with Point at the far bound. Otherwise exactly NumSteps secant
// steps narrow the [tm, tx] bracket.
func (s Sea) HeightMapTracing(ori, dir mgl32.Vec3) Hit {
	tm := float32(0)
	tx := float32(FarBound)

	hx := s.Map(ori.Add(dir.Mul(tx)))
	if hx > 0 {
		return Hit{T: tx, Point: ori.Add(dir.Mul(tx))}
	}

	hm := s.Map(ori.Add(dir.Mul(tm)))
	var (
		tmid float32
		p    mgl32.Vec3
	)
	for i := 0; i < NumSteps; i++ {
		tmid = mix(tm, tx, hm/(hm-hx))
		p = ori.Add(dir.Mul(tmid))
		hmid := s.Map(p)
		if hmid < 0 {
			tx = tmid
			hx = hmid
		} else {
			tm = tmid
			hm = hmid
		}
	}
	return Hit{T: tmid, Point: p, Iterations: NumSteps}
}

// Normal estimates the fine surface normal at p by forward differences.
func (s Sea) Normal(p mgl32.Vec3, eps float32) mgl32.Vec3 {
	ny := s.MapDetailed(p)
	nx := s.MapDetailed(mgl32.Vec3{p[0] + eps, p[1], p[2]}) - ny
	nz := s.MapDetailed(mgl32.Vec3{p[0], p[1], p[2] + eps}) - ny
	return mgl32.Vec3{nx, eps, nz}.Normalize()
}
