package world

import (
	"openstudio/internal/camera"
	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridSlices  int32   = 60
	gridSpacing float32 = 1
	lightRadius float32 = 0.25
	// lightBoost is the largest brightening point lights can add to a box.
	lightBoost float32 = 0.6
)

var (
	BackgroundColor = engine.MustParseHexColor("#0f1220")
	wireColor       = rl.NewColor(0, 0, 0, 60)
	lightColor      = rl.NewColor(255, 240, 200, 255)
)

// Renderer draws scene entities as flat shaded boxes inside BeginMode3D.
type Renderer struct {
	ShowGrid bool
	Wires    bool

	drawn  int
	culled int
}

func NewRenderer() *Renderer {
	return &Renderer{ShowGrid: true, Wires: true}
}

// Draw renders the entities visible from cam. Must be called between
// rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(cam camera.State, entities []*engine.Entity) {
	if r.ShowGrid {
		rl.DrawGrid(gridSlices, gridSpacing)
	}

	visible := VisibleEntities(cam, entities)
	r.drawn = len(visible)
	r.culled = len(entities) - len(visible)

	var lights []*engine.Entity
	for _, e := range entities {
		if e.Kind == engine.KindLight {
			lights = append(lights, e)
		}
	}

	for _, e := range visible {
		if e.Kind == engine.KindLight {
			r.drawLight(e)
			continue
		}
		r.drawBox(e, shade(e.Color, e.Transform.Position, lights))
	}
}

// Stats returns how many entities the last Draw call drew and culled.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

func (r *Renderer) drawBox(e *engine.Entity, color rl.Color) {
	t := e.Transform
	rl.PushMatrix()
	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	rl.Rotatef(t.Rotation.Y*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(t.Rotation.X*rl.Rad2deg, 1, 0, 0)
	rl.Rotatef(t.Rotation.Z*rl.Rad2deg, 0, 0, 1)
	rl.DrawCube(rl.Vector3{}, t.Scale.X, t.Scale.Y, t.Scale.Z, color)
	if r.Wires && e.Kind != engine.KindHelper {
		rl.DrawCubeWires(rl.Vector3{}, t.Scale.X, t.Scale.Y, t.Scale.Z, wireColor)
	}
	rl.PopMatrix()
}

func (r *Renderer) drawLight(e *engine.Entity) {
	rl.DrawSphere(e.Transform.Position, lightRadius, lightColor)
	rl.DrawSphereWires(e.Transform.Position, e.Range*0.02, 8, 8, rl.Fade(lightColor, 0.3))
}

// VisibleEntities returns the entities whose bounding sphere touches the camera frustum.
func VisibleEntities(cam camera.State, entities []*engine.Entity) []*engine.Entity {
	f := ExtractFrustum(cam)
	visible := make([]*engine.Entity, 0, len(entities))
	for _, e := range entities {
		if f.ContainsSphere(e.Transform.Position, boundingRadius(e)) {
			visible = append(visible, e)
		}
	}
	return visible
}

func boundingRadius(e *engine.Entity) float32 {
	if e.Kind == engine.KindLight {
		return lightRadius
	}
	return rl.Vector3Length(e.Transform.Scale) / 2
}

// shade brightens c by the point lights reaching p. Each light falls off
// quadratically to zero at its range.
func shade(c rl.Color, p rl.Vector3, lights []*engine.Entity) rl.Color {
	var lit float32
	for _, l := range lights {
		if l.Range <= 0 {
			continue
		}
		d := rl.Vector3Distance(l.Transform.Position, p)
		if d >= l.Range {
			continue
		}
		f := 1 - d/l.Range
		lit += l.Intensity * f * f
	}
	if lit <= 0 {
		return c
	}
	k := 1 + lightBoost*min(lit, 1)
	channel := func(v uint8) uint8 {
		return uint8(min(float32(v)*k, 255))
	}
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), c.A)
}
