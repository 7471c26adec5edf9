package game

import (
	"openstudio/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type GizmoMode int

const (
	GizmoMove GizmoMode = iota
	GizmoRotate
)

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoHitDist   float32 = 0.3
	gizmoRingHit   float32 = 0.4
	gizmoThickness float32 = 0.06

	// radians of rotation per world unit dragged
	gizmoRotateRate = math32.Pi / 4
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// gizmoState tracks an axis drag. It is guarded by the editor lock.
type gizmoState struct {
	mode          GizmoMode
	dragging      bool
	axisIdx       int
	planeNormal   rl.Vector3
	dragStart     float32
	initPos       rl.Vector3
	initRot       rl.Vector3
	hoveredAxisID int // -1 = none
}

func (e *Editor) SetGizmoMode(m GizmoMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gizmo.mode = m
}

func (e *Editor) GizmoMode() GizmoMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gizmo.mode
}

// HoverGizmo updates the highlighted axis for the pointer at ndc.
func (e *Editor) HoverGizmo(ndc rl.Vector2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gizmo.dragging {
		return
	}
	e.gizmo.hoveredAxisID = e.pickGizmoAxis(e.camera.Ray(ndc))
}

// BeginGizmoDrag starts dragging a gizmo axis under the pointer.
// It reports false when no axis is hit, so the click can go to picking.
func (e *Editor) BeginGizmoDrag(ndc rl.Vector2) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beginDrag(e.camera.Ray(ndc))
}

// DragGizmo moves or rotates the selection to follow the pointer.
func (e *Editor) DragGizmo(ndc rl.Vector2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateDrag(e.camera.Ray(ndc))
}

func (e *Editor) EndGizmoDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gizmo.dragging = false
}

func (e *Editor) GizmoDragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gizmo.dragging
}

// pickGizmoAxis returns the index of the gizmo axis closest to ray, or -1.
func (e *Editor) pickGizmoAxis(ray rl.Ray) int {
	sel := e.selection.Entity()
	if sel == nil {
		return -1
	}
	center := sel.Transform.Position
	bestDist := float32(999.0)
	bestAxis := -1

	if e.gizmo.mode == GizmoRotate {
		radius := gizmoLength * 0.8
		for i, normal := range gizmoAxes {
			pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, center, normal)
			if !ok {
				continue
			}
			distFromRing := math32.Abs(rl.Vector3Distance(pt, center) - radius)
			if distFromRing < gizmoRingHit && distFromRing < bestDist {
				bestDist = distFromRing
				bestAxis = i
			}
		}
		return bestAxis
	}

	for i, axis := range gizmoAxes {
		_, t2, dist := closestPointBetweenRays(ray.Position, ray.Direction, center, axis)
		if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist && dist < bestDist {
			bestDist = dist
			bestAxis = i
		}
	}
	return bestAxis
}

func (e *Editor) beginDrag(ray rl.Ray) bool {
	axisIdx := e.pickGizmoAxis(ray)
	if axisIdx < 0 {
		return false
	}
	sel := e.selection.Entity()
	g := &e.gizmo
	g.axisIdx = axisIdx
	g.initPos = sel.Transform.Position
	g.initRot = sel.Transform.Rotation

	axis := gizmoAxes[axisIdx]
	if g.mode == GizmoRotate {
		g.planeNormal = axis
	} else {
		// plane containing the axis and facing the camera as much as possible
		viewDir := rl.Vector3Normalize(rl.Vector3Subtract(g.initPos, e.camera.Position))
		g.planeNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(axis, rl.Vector3CrossProduct(viewDir, axis)))
	}

	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, g.initPos, g.planeNormal)
	if !ok {
		return false
	}
	g.dragStart = e.dragParam(pt)
	g.dragging = true
	return true
}

// dragParam measures pt along the drag: distance along the axis when moving,
// angle around it when rotating.
func (e *Editor) dragParam(pt rl.Vector3) float32 {
	g := &e.gizmo
	rel := rl.Vector3Subtract(pt, g.initPos)
	if g.mode != GizmoRotate {
		return rl.Vector3DotProduct(rel, gizmoAxes[g.axisIdx])
	}
	u := gizmoAxes[(g.axisIdx+1)%3]
	v := gizmoAxes[(g.axisIdx+2)%3]
	return math32.Atan2(rl.Vector3DotProduct(rel, v), rl.Vector3DotProduct(rel, u)) / gizmoRotateRate
}

func (e *Editor) updateDrag(ray rl.Ray) {
	g := &e.gizmo
	if !g.dragging {
		return
	}
	if e.selection.Entity() == nil {
		g.dragging = false
		return
	}
	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, g.initPos, g.planeNormal)
	if !ok {
		return
	}
	delta := e.dragParam(pt) - g.dragStart

	switch g.mode {
	case GizmoMove:
		p := rl.Vector3Add(g.initPos, rl.Vector3Scale(gizmoAxes[g.axisIdx], delta))
		e.mutator.Apply(Edits{Position: Axes(p.X, p.Y, p.Z)})
	case GizmoRotate:
		r := rl.Vector3Add(g.initRot, rl.Vector3Scale(gizmoAxes[g.axisIdx], delta*gizmoRotateRate))
		e.mutator.Apply(Edits{Rotation: Axes(r.X, r.Y, r.Z)})
	}
}

// drawGizmo draws the selection outline and the gizmo. Call with the lock
// held, inside BeginMode3D.
func (e *Editor) drawGizmo() {
	sel := e.selection.Entity()
	if sel == nil {
		return
	}

	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	t := sel.Transform
	drawRotatedBoxWires(t.Position, t.Scale, t.Rotation, colorAccentLight)

	center := t.Position
	g := &e.gizmo
	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if (g.dragging && g.axisIdx == i) || (!g.dragging && g.hoveredAxisID == i) {
			color = rl.Yellow
		}

		switch g.mode {
		case GizmoMove:
			end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			rl.DrawCubeV(end, rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}, color)
		case GizmoRotate:
			const segments = 16
			radius := gizmoLength * 0.8
			u := gizmoAxes[(i+1)%3]
			v := gizmoAxes[(i+2)%3]
			point := func(s int) rl.Vector3 {
				a := float32(s) / segments * 2 * math32.Pi
				p := rl.Vector3Add(rl.Vector3Scale(u, radius*math32.Cos(a)), rl.Vector3Scale(v, radius*math32.Sin(a)))
				return rl.Vector3Add(center, p)
			}
			for s := range segments {
				rl.DrawCylinderEx(point(s), point(s+1), gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
			}
		}
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// drawHoverBounds outlines the world box of the hovered entity. Call with the
// lock held, inside BeginMode3D.
func (e *Editor) drawHoverBounds() {
	ent := e.scene.Find(e.hovered)
	if ent == nil {
		return
	}
	rl.DrawBoundingBox(physics.EntityBounds(ent).BoundingBox(), rl.Yellow)
}

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v rl.Vector3) (t1, t2, dist float32) {
	w := rl.Vector3Subtract(a, b)
	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := rl.Vector3Add(a, rl.Vector3Scale(u, t1))
	p2 := rl.Vector3Add(b, rl.Vector3Scale(v, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return
}

// rayPlaneIntersect returns where a ray hits a plane given by a point and normal.
func rayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math32.Abs(denom) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// drawRotatedBoxWires draws the edges of a box with Euler rotation in radians.
func drawRotatedBoxWires(center, size, rotation rl.Vector3, color rl.Color) {
	rot := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixRotateZ(rotation.Z), rl.MatrixRotateX(rotation.X)),
		rl.MatrixRotateY(rotation.Y),
	)
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	corners := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}
	for i := range corners {
		corners[i] = rl.Vector3Add(rl.Vector3Transform(corners[i], rot), center)
	}
	for i := range 4 {
		rl.DrawLine3D(corners[i], corners[(i+1)%4], color)
		rl.DrawLine3D(corners[4+i], corners[4+(i+1)%4], color)
		rl.DrawLine3D(corners[i], corners[4+i], color)
	}
}
