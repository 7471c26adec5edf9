package game

import (
	"log/slog"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AxisEdit carries optional per-axis values. Nil axes are left alone.
type AxisEdit struct {
	X, Y, Z *float32
}

// Axes returns an AxisEdit that sets all three axes.
func Axes(x, y, z float32) *AxisEdit {
	return &AxisEdit{X: &x, Y: &y, Z: &z}
}

// Edits is a partial update of the selected entity.
type Edits struct {
	Position *AxisEdit
	Rotation *AxisEdit // radians
	Color    *rl.Color
}

// Mutator is the only path by which user edits reach the scene.
type Mutator struct {
	selection *Selection
	log       *slog.Logger
}

func NewMutator(selection *Selection) *Mutator {
	return &Mutator{
		selection: selection,
		log:       slog.With("component", "mutator"),
	}
}

// Apply writes the present, finite fields of edits to the selected entity
// and refreshes the selection snapshot. With nothing selected it does nothing.
func (m *Mutator) Apply(edits Edits) {
	e := m.selection.Entity()
	if e == nil {
		m.log.Debug("dropping edit, nothing selected")
		return
	}

	if edits.Position != nil {
		m.applyAxes(&e.Transform.Position, edits.Position, "position")
	}
	if edits.Rotation != nil {
		m.applyAxes(&e.Transform.Rotation, edits.Rotation, "rotation")
	}
	if edits.Color != nil {
		c := *edits.Color
		c.A = 255
		m.selection.commitColor(c)
	}

	m.selection.Refresh()
}

func (m *Mutator) applyAxes(v *rl.Vector3, edit *AxisEdit, field string) {
	setAxis(&v.X, edit.X, m.log, field, "x")
	setAxis(&v.Y, edit.Y, m.log, field, "y")
	setAxis(&v.Z, edit.Z, m.log, field, "z")
}

func setAxis(dst *float32, src *float32, log *slog.Logger, field, axis string) {
	if src == nil {
		return
	}
	if !finite(*src) {
		log.Debug("ignoring non-finite value", "field", field, "axis", axis, "value", *src)
		return
	}
	*dst = *src
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
