package world

import (
	"openstudio/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a camera: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing into the frustum.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the clip planes from the combined view projection
// matrix of the editor camera (Gribb/Hartmann).
func ExtractFrustum(cam camera.State) Frustum {
	view := rl.MatrixLookAt(cam.Position, cam.Target, rl.Vector3{X: 0, Y: 1, Z: 0})
	proj := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, cam.Aspect, cam.Near, cam.Far)
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	w := rows[3]

	// plane 2i is w + row i, plane 2i+1 is w - row i
	var f Frustum
	for i := range 3 {
		for j, sign := range [2]float32{1, -1} {
			r := rows[i]
			f.planes[2*i+j] = normalizePlane(Plane{
				normal:   rl.Vector3{X: w[0] + sign*r[0], Y: w[1] + sign*r[1], Z: w[2] + sign*r[2]},
				distance: w[3] + sign*r[3],
			})
		}
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}
