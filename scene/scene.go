package scene

import "github.com/go-gl/mathgl/mgl32"

// Demo scene parameters.
const (
	CameraFov  = 75
	CameraNear = 0.01
	CameraFar  = 2000

	GridSize      = 50
	GridDivisions = 50
	GridCenter    = 0x444444
	GridLine      = 0x888888

	BoxSize  = 10
	BoxColor = 0x00ff00

	AmbientColor = 0x404040
	SunColor     = 0xffffff
	SunIntensity = 0.5
)

var (
	CameraPosition = mgl32.Vec3{0, 4, 20}
	BoxPosition    = mgl32.Vec3{0, -5, 0}
	SunPosition    = mgl32.Vec3{4, 2, 4}
)

type AmbientLight struct {
	Color     mgl32.Vec3
	Intensity float32
}

// DirectionalLight shines from Position towards Target.
type DirectionalLight struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
	Target    mgl32.Vec3
}

// Direction is the unit vector from the lit surface towards the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

type Scene struct {
	Meshes     []*Mesh
	Ambient    AmbientLight
	Sun        DirectionalLight
	Background mgl32.Vec3
}

func (s *Scene) Add(m *Mesh) {
	s.Meshes = append(s.Meshes, m)
}

// NewDemoScene returns a green box half sunk below a grid.
func NewDemoScene() *Scene {
	s := &Scene{
		Ambient: AmbientLight{Color: Hex(AmbientColor), Intensity: 1},
		Sun: DirectionalLight{
			Color:     Hex(SunColor),
			Intensity: SunIntensity,
			Position:  SunPosition,
		},
	}

	s.Add(NewGrid("grid", GridSize, GridDivisions, Hex(GridCenter), Hex(GridLine)))

	box := NewBox("box", BoxSize, BoxSize, BoxSize, Hex(BoxColor))
	box.Model = mgl32.Translate3D(BoxPosition[0], BoxPosition[1], BoxPosition[2])
	s.Add(box)

	return s
}

// NewDemoCamera returns the demo camera looking at the origin.
func NewDemoCamera(aspect float32) *Camera {
	c := NewPerspectiveCamera(CameraFov, aspect, CameraNear, CameraFar)
	c.SetPosition(CameraPosition)
	c.LookAt(mgl32.Vec3{})
	return c
}
