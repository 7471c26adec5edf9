package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// minPolar keeps the orbit away from the poles where the up vector degenerates.
const minPolar = 0.01

// State is a read-only copy of the camera parameters.
type State struct {
	Position rl.Vector3
	Target   rl.Vector3
	Fovy     float32 // vertical field of view in degrees
	Near     float32
	Far      float32
	Aspect   float32
}

// Options configure a new OrbitCamera.
type Options struct {
	Position    rl.Vector3
	Target      rl.Vector3
	FocusOffset rl.Vector3 // camera position relative to a focused point
	Fovy        float32
	Near        float32
	Far         float32
	OrbitSpeed  float32 // radians per unit of orbit delta
	ZoomSpeed   float32
	PanSpeed    float32
	MinDistance float32
	MaxDistance float32
}

// DefaultOptions returns the establishing shot of the editor viewport.
func DefaultOptions() Options {
	return Options{
		Position:    rl.Vector3{X: 8, Y: 8, Z: 12},
		Target:      rl.Vector3{X: 0, Y: 1, Z: 0},
		FocusOffset: rl.Vector3{X: 8, Y: 8, Z: 12},
		Fovy:        60,
		Near:        0.1,
		Far:         2000,
		OrbitSpeed:  0.005,
		ZoomSpeed:   1,
		PanSpeed:    0.002,
		MinDistance: 1,
		MaxDistance: 500,
	}
}

// OrbitCamera looks at Target from Position and is moved by orbit, pan and zoom input.
type OrbitCamera struct {
	Position    rl.Vector3
	Target      rl.Vector3
	Up          rl.Vector3
	FocusOffset rl.Vector3
	Fovy        float32
	Near        float32
	Far         float32
	Aspect      float32

	OrbitSpeed  float32
	ZoomSpeed   float32
	PanSpeed    float32
	MinDistance float32
	MaxDistance float32
}

func New(opts Options) *OrbitCamera {
	return &OrbitCamera{
		Position:    opts.Position,
		Target:      opts.Target,
		Up:          rl.Vector3{X: 0, Y: 1, Z: 0},
		FocusOffset: opts.FocusOffset,
		Fovy:        opts.Fovy,
		Near:        opts.Near,
		Far:         opts.Far,
		Aspect:      1,
		OrbitSpeed:  opts.OrbitSpeed,
		ZoomSpeed:   opts.ZoomSpeed,
		PanSpeed:    opts.PanSpeed,
		MinDistance: opts.MinDistance,
		MaxDistance: opts.MaxDistance,
	}
}

// Distance returns the distance between camera and target.
func (c *OrbitCamera) Distance() float32 {
	return rl.Vector3Distance(c.Position, c.Target)
}

// Orbit rotates the camera around the target. delta.X turns around the
// vertical axis, delta.Y tilts towards or away from the poles.
func (c *OrbitCamera) Orbit(delta rl.Vector2) {
	offset := rl.Vector3Subtract(c.Position, c.Target)
	radius := rl.Vector3Length(offset)
	if radius == 0 {
		return
	}
	azimuth := math32.Atan2(offset.X, offset.Z)
	polar := math32.Acos(clamp(offset.Y/radius, -1, 1))

	azimuth -= delta.X * c.OrbitSpeed
	polar = clamp(polar-delta.Y*c.OrbitSpeed, minPolar, math32.Pi-minPolar)

	c.Position = rl.Vector3Add(c.Target, spherical(radius, polar, azimuth))
}

// Zoom moves the camera along its view direction. Positive delta zooms in.
func (c *OrbitCamera) Zoom(delta float32) {
	offset := rl.Vector3Subtract(c.Position, c.Target)
	radius := rl.Vector3Length(offset)
	if radius == 0 {
		return
	}
	newRadius := clamp(radius*math32.Pow(0.95, delta*c.ZoomSpeed), c.MinDistance, c.MaxDistance)
	c.Position = rl.Vector3Add(c.Target, rl.Vector3Scale(offset, newRadius/radius))
}

// Pan slides camera and target together in the view plane.
// The step grows with the distance to the target.
func (c *OrbitCamera) Pan(delta rl.Vector2) {
	_, right, up := c.basis()
	scale := c.Distance() * c.PanSpeed
	move := rl.Vector3Add(
		rl.Vector3Scale(right, -delta.X*scale),
		rl.Vector3Scale(up, delta.Y*scale),
	)
	c.Position = rl.Vector3Add(c.Position, move)
	c.Target = rl.Vector3Add(c.Target, move)
}

// Focus looks at point from the fixed focus offset. It is a hard cut.
func (c *OrbitCamera) Focus(point rl.Vector3) {
	c.Target = point
	c.Position = rl.Vector3Add(point, c.FocusOffset)
}

// Resize recomputes the aspect ratio for a viewport of w by h pixels.
func (c *OrbitCamera) Resize(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

// Ray returns the world ray through a point given in normalized device
// coordinates, x right and y up, both in [-1, 1].
func (c *OrbitCamera) Ray(ndc rl.Vector2) rl.Ray {
	forward, right, up := c.basis()
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)
	dir := rl.Vector3Add(forward, rl.Vector3Add(
		rl.Vector3Scale(right, ndc.X*tanHalf*c.Aspect),
		rl.Vector3Scale(up, ndc.Y*tanHalf),
	))
	return rl.Ray{Position: c.Position, Direction: rl.Vector3Normalize(dir)}
}

func (c *OrbitCamera) State() State {
	return State{
		Position: c.Position,
		Target:   c.Target,
		Fovy:     c.Fovy,
		Near:     c.Near,
		Far:      c.Far,
		Aspect:   c.Aspect,
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// basis returns the normalized forward, right and up vectors of the view.
func (c *OrbitCamera) basis() (forward, right, up rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.Up))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

func spherical(radius, polar, azimuth float32) rl.Vector3 {
	sinPolar := math32.Sin(polar)
	return rl.Vector3{
		X: radius * sinPolar * math32.Sin(azimuth),
		Y: radius * math32.Cos(polar),
		Z: radius * sinPolar * math32.Cos(azimuth),
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
