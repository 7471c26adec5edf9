package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented bounding box.
type OBB struct {
	Center   rl.Vector3    // world space center
	HalfSize rl.Vector3    // half extents along the local axes
	Axes     [3]rl.Vector3 // local X, Y, Z axes in world space
}

// NewOBB builds a box from center, full size and Euler rotation in radians.
// Rotations apply Z first, then X, then Y, the order the renderer uses.
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rot := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixRotateZ(rotation.Z), rl.MatrixRotateX(rotation.X)),
		rl.MatrixRotateY(rotation.Y),
	)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
		},
	}
}

// toLocal expresses a world direction in the box's axes.
func (o OBB) toLocal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(v, o.Axes[0]),
		Y: rl.Vector3DotProduct(v, o.Axes[1]),
		Z: rl.Vector3DotProduct(v, o.Axes[2]),
	}
}

// toWorld is the inverse of toLocal for directions.
func (o OBB) toWorld(v rl.Vector3) rl.Vector3 {
	w := rl.Vector3Scale(o.Axes[0], v.X)
	w = rl.Vector3Add(w, rl.Vector3Scale(o.Axes[1], v.Y))
	return rl.Vector3Add(w, rl.Vector3Scale(o.Axes[2], v.Z))
}

// Bounds returns the smallest axis aligned box enclosing o.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i, axis := range o.Axes {
		h := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}[i]
		ext.X += abs(axis.X) * h
		ext.Y += abs(axis.Y) * h
		ext.Z += abs(axis.Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// RaycastOBB intersects a ray with an oriented box by running the slab test
// in the box's local frame. The ray direction must be normalized.
func RaycastOBB(ray rl.Ray, o OBB, maxDistance float32) (RaycastHit, bool) {
	local := rl.Ray{
		Position:  o.toLocal(rl.Vector3Subtract(ray.Position, o.Center)),
		Direction: o.toLocal(ray.Direction),
	}
	box := AABB{Min: rl.Vector3Negate(o.HalfSize), Max: o.HalfSize}
	hit, ok := RaycastBox(local, box, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}
	hit.Point = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, hit.Distance))
	hit.Normal = o.toWorld(hit.Normal)
	return hit, true
}
