package physics

import (
	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPickDistance matches the far plane of the editor camera.
const DefaultPickDistance float32 = 2000

type RaycastHit struct {
	Entity   *engine.Entity
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Candidates is anything that can enumerate pickable entities.
// engine.Scene does it with a linear scan; a spatial index can take its place.
type Candidates interface {
	ForEachSelectable(fn func(e *engine.Entity) bool)
}

// Viewer turns a pointer position in normalized device coordinates into a world ray.
type Viewer interface {
	Ray(ndc rl.Vector2) rl.Ray
}

// Pick returns the ID of the nearest selectable entity under the pointer.
func Pick(ndc rl.Vector2, v Viewer, c Candidates) (engine.ID, bool) {
	hit, ok := Raycast(v.Ray(ndc), c, DefaultPickDistance)
	if !ok {
		return engine.NoID, false
	}
	return hit.Entity.ID, true
}

// Raycast checks the ray against every candidate box and returns the closest hit.
// Rotated entities are tested as oriented boxes. On equal distances the
// candidate visited first wins.
func Raycast(ray rl.Ray, c Candidates, maxDistance float32) (RaycastHit, bool) {
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	var closest RaycastHit
	found := false

	c.ForEachSelectable(func(e *engine.Entity) bool {
		hit, ok := raycastEntity(ray, e, maxDistance)
		if !ok {
			return true
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			closest.Entity = e
			found = true
		}
		return true
	})

	return closest, found
}

// EntityBounds returns the world space box around e, accounting for its rotation.
func EntityBounds(e *engine.Entity) AABB {
	t := e.Transform
	if t.Rotation == (rl.Vector3{}) {
		return NewAABBFromCenter(t.Position, t.Scale)
	}
	return NewOBB(t.Position, t.Scale, t.Rotation).Bounds()
}

func raycastEntity(ray rl.Ray, e *engine.Entity, maxDistance float32) (RaycastHit, bool) {
	t := e.Transform
	if t.Rotation == (rl.Vector3{}) {
		return RaycastBox(ray, NewAABBFromCenter(t.Position, t.Scale), maxDistance)
	}
	return RaycastOBB(ray, NewOBB(t.Position, t.Scale, t.Rotation), maxDistance)
}

// RaycastBox intersects a ray with a box. The ray direction must be normalized.
// The hit distance is the entry point, or the exit point when the origin is inside the box.
func RaycastBox(ray rl.Ray, box AABB, maxDistance float32) (RaycastHit, bool) {
	origin, dir := ray.Position, ray.Direction
	tmin := float32(-1e30)
	tmax := float32(1e30)

	if !slab(origin.X, dir.X, box.Min.X, box.Max.X, &tmin, &tmax) ||
		!slab(origin.Y, dir.Y, box.Min.Y, box.Max.Y, &tmin, &tmax) ||
		!slab(origin.Z, dir.Z, box.Min.Z, box.Max.Z, &tmin, &tmax) {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(dir, t))
	return RaycastHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

// faceNormal picks the normal of the face that point lies on.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	const epsilon = float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}
