package game

import (
	"log/slog"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultHighlightColor is drawn on the selected entity instead of its own color.
var DefaultHighlightColor = engine.MustParseHexColor("#ffd166")

// emptySnapshotColor is shown by the inspector while nothing is selected.
var emptySnapshotColor = engine.MustParseHexColor("#cccccc")

// Snapshot is a read-only copy of the selected entity's editable fields.
// Changes go back through Mutator.Apply, never through a Snapshot.
type Snapshot struct {
	ID       engine.ID
	Name     string
	Position rl.Vector3
	Rotation rl.Vector3
	Color    rl.Color
}

// EmptySnapshot returns the snapshot used while nothing is selected.
func EmptySnapshot() Snapshot {
	return Snapshot{Color: emptySnapshotColor}
}

// IsEmpty reports whether s describes no selection.
func (s Snapshot) IsEmpty() bool {
	return s.ID == engine.NoID
}

// Selection tracks which entity is selected and owns its highlight.
//
// While an entity is selected its rendered color is the highlight color.
// The color it had when it entered the selection is kept here and written
// back when it leaves, so repeated select and deselect cycles never drift.
type Selection struct {
	scene     *engine.Scene
	highlight rl.Color
	current   engine.ID
	restore   rl.Color
	snapshot  Snapshot
	log       *slog.Logger

	// OnChanged fires with a fresh snapshot after every Select, Deselect and Refresh.
	OnChanged engine.EventWithArg[Snapshot]
}

func NewSelection(scene *engine.Scene, highlight rl.Color) *Selection {
	return &Selection{
		scene:     scene,
		highlight: highlight,
		snapshot:  EmptySnapshot(),
		log:       slog.With("component", "selection"),
	}
}

// Current returns the selected ID or engine.NoID.
func (s *Selection) Current() engine.ID {
	return s.current
}

// Entity returns the selected entity or nil.
func (s *Selection) Entity() *engine.Entity {
	return s.scene.Find(s.current)
}

// Snapshot returns the last emitted snapshot.
func (s *Selection) Snapshot() Snapshot {
	return s.snapshot
}

// IsHighlighted reports whether id is the selected entity.
func (s *Selection) IsHighlighted(id engine.ID) bool {
	return id != engine.NoID && id == s.current
}

// Select makes id the selection. IDs that are unknown or not selectable clear it.
// Selecting the current entity again only re-emits its snapshot.
func (s *Selection) Select(id engine.ID) {
	e := s.scene.Find(id)
	if e != nil && !e.Selectable() {
		s.log.Debug("ignoring unselectable entity", "id", id, "kind", e.Kind)
		e = nil
	}
	if e != nil && e.ID == s.current {
		s.emit(s.snapshotOf(e))
		return
	}
	s.release()
	if e == nil {
		s.emit(EmptySnapshot())
		return
	}
	s.current = e.ID
	s.restore = e.Color
	e.Color = s.highlight
	s.log.Debug("selected", "id", e.ID, "name", e.Name)
	s.emit(s.snapshotOf(e))
}

// Deselect clears the selection and restores the color of the previous entity.
func (s *Selection) Deselect() {
	s.Select(engine.NoID)
}

// Refresh re-reads the selected entity after an edit without touching the highlight.
// It does nothing while nothing is selected.
func (s *Selection) Refresh() {
	if s.current == engine.NoID {
		return
	}
	e := s.scene.Find(s.current)
	if e == nil {
		s.log.Debug("selected entity is gone", "id", s.current)
		s.current = engine.NoID
		s.emit(EmptySnapshot())
		return
	}
	s.emit(s.snapshotOf(e))
}

// commitColor records c as the true color of the selected entity, so that
// leaving the selection restores c rather than the color captured on entry.
func (s *Selection) commitColor(c rl.Color) {
	e := s.scene.Find(s.current)
	if e == nil {
		return
	}
	e.BaseColor = c
	s.restore = c
}

// release puts back the captured color of the selected entity and goes idle.
func (s *Selection) release() {
	if s.current == engine.NoID {
		return
	}
	if prev := s.scene.Find(s.current); prev != nil {
		prev.Color = s.restore
	}
	s.current = engine.NoID
}

func (s *Selection) snapshotOf(e *engine.Entity) Snapshot {
	return Snapshot{
		ID:       e.ID,
		Name:     e.DisplayName(),
		Position: e.Transform.Position,
		Rotation: e.Transform.Rotation,
		Color:    s.restore,
	}
}

func (s *Selection) emit(snap Snapshot) {
	s.snapshot = snap
	s.OnChanged.Invoke(snap)
}
