package seascape

import "github.com/go-gl/mathgl/mgl32"

const (
	NumSteps     = 8
	Pi           = 3.141592
	IterGeometry = 1
	IterFragment = 2

	SeaHeight = 0.6
	SeaChoppy = 4.0
	SeaSpeed  = 0.8
	SeaFreq   = 0.16

	// FarBound is the far end of the tracing bracket. A ray whose far sample
	// is still above the surface is treated as sky.
	FarBound = 1000.0
)

var (
	SeaBase       = mgl32.Vec3{0.0, 0.09, 0.18}
	SeaWaterColor = mgl32.Vec3{0.8, 0.9, 0.6}.Mul(0.6)

	// octaveM is mat2(1.6,1.2,-1.2,1.6), column-major.
	octaveM = mgl32.Mat2{1.6, 1.2, -1.2, 1.6}
)

// Hash maps a lattice point to a pseudo random value in [0,1).
func Hash(p mgl32.Vec2) float32 {
	h := p.Dot(mgl32.Vec2{127.1, 311.7})
	return fract(sin32(h) * 43758.5453123)
}

// Noise is 2D value noise in [-1,1], bilinear over Hash with a 3t²-2t³ fade.
func Noise(p mgl32.Vec2) float32 {
	i := mgl32.Vec2{floor32(p[0]), floor32(p[1])}
	f := mgl32.Vec2{fract(p[0]), fract(p[1])}
	u := mgl32.Vec2{f[0] * f[0] * (3 - 2*f[0]), f[1] * f[1] * (3 - 2*f[1])}

	return -1 + 2*mix(
		mix(Hash(i), Hash(i.Add(mgl32.Vec2{1, 0})), u[0]),
		mix(Hash(i.Add(mgl32.Vec2{0, 1})), Hash(i.Add(mgl32.Vec2{1, 1})), u[0]),
		u[1])
}

// SeaOctave is one octave of the wave pattern.
func SeaOctave(uv mgl32.Vec2, choppy float32) float32 {
	n := Noise(uv)
	uv = uv.Add(mgl32.Vec2{n, n})
	wv := mgl32.Vec2{1 - mgl32.Abs(sin32(uv[0])), 1 - mgl32.Abs(sin32(uv[1]))}
	swv := mgl32.Vec2{mgl32.Abs(cos32(uv[0])), mgl32.Abs(cos32(uv[1]))}
	wv = mgl32.Vec2{mix(wv[0], swv[0], wv[0]), mix(wv[1], swv[1], wv[1])}
	return pow32(1-pow32(wv[0]*wv[1], 0.65), choppy)
}

// Sea is the animated height field at a fixed point in time.
type Sea struct {
	// Time is SEA_TIME, i.e. 1 + elapsedTime*SeaSpeed.
	Time float32
}

// NewSea returns the height field for the given elapsed time.
func NewSea(elapsedTime float32) Sea {
	return Sea{Time: 1 + elapsedTime*SeaSpeed}
}

// Height sums the given number of octaves at the xz position of p.
func (s Sea) Height(p mgl32.Vec3, iterations int) float32 {
	freq := float32(SeaFreq)
	amp := float32(SeaHeight)
	choppy := float32(SeaChoppy)
	uv := mgl32.Vec2{p[0] * 0.75, p[2]}
	shift := mgl32.Vec2{s.Time, s.Time}

	var h float32
	for i := 0; i < iterations; i++ {
		d := SeaOctave(uv.Add(shift).Mul(freq), choppy)
		d += SeaOctave(uv.Sub(shift).Mul(freq), choppy)
		h += d * amp
		uv = mgl32.Vec2{uv.Dot(octaveM.Col(0)), uv.Dot(octaveM.Col(1))}
		freq *= 1.9
		amp *= 0.22
		choppy = mix(choppy, 1.0, 0.2)
	}
	return h
}

// Map is the signed height of p above the coarse surface.
func (s Sea) Map(p mgl32.Vec3) float32 {
	return p[1] - s.Height(p, IterGeometry)
}

// MapDetailed is the signed height of p above the fine surface.
func (s Sea) MapDetailed(p mgl32.Vec3) float32 {
	return p[1] - s.Height(p, IterFragment)
}
