package game

import (
	"math/rand/v2"
	"testing"

	"openstudio/internal/camera"
	"openstudio/internal/engine"
	"openstudio/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) (*Editor, *engine.Scene) {
	t.Helper()
	scene := engine.NewScene("Test")
	regions := world.Regions{
		{Name: "London"},
		{Name: "Westminster", Center: rl.Vector3{X: -10, Z: -6}},
	}
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewPCG(3, 4))
	return NewEditor(scene, regions, opts), scene
}

func TestEditorAddCube(t *testing.T) {
	t.Run("should add a named cube near the origin and select it", func(t *testing.T) {
		// given
		ed, scene := newTestEditor(t)
		// when
		id := ed.AddCube()
		// then
		cube := scene.Find(id)
		require.NotNil(t, cube)
		assert.Equal(t, engine.KindCube, cube.Kind)
		assert.Equal(t, "Cube", cube.Name)
		p := cube.Transform.Position
		assert.True(t, p.X >= -3 && p.X <= 3, "x %v", p.X)
		assert.True(t, p.Y >= 0.5 && p.Y <= 2.5, "y %v", p.Y)
		assert.True(t, p.Z >= -3 && p.Z <= 3, "z %v", p.Z)

		snap := ed.Snapshot()
		assert.Equal(t, id, snap.ID)
		assert.Equal(t, cube.BaseColor, snap.Color)
		assert.Equal(t, DefaultHighlightColor, cube.Color)
	})
	t.Run("should restore the previous selection color", func(t *testing.T) {
		ed, scene := newTestEditor(t)
		first := ed.AddCube()
		ed.AddCube()
		c := scene.Find(first)
		assert.Equal(t, c.BaseColor, c.Color)
	})
}

func TestEditorAddLight(t *testing.T) {
	// given
	ed, scene := newTestEditor(t)
	cube := ed.AddCube()
	// when
	id := ed.AddLight()
	// then
	light := scene.Find(id)
	require.NotNil(t, light)
	assert.Equal(t, engine.KindLight, light.Kind)
	assert.Equal(t, ed.CameraState().Position, light.Transform.Position)
	assert.Equal(t, float32(1), light.Intensity)
	assert.Equal(t, float32(50), light.Range)
	assert.False(t, light.Selectable())
	assert.Equal(t, cube, ed.Snapshot().ID)
}

func TestEditorFocusRegion(t *testing.T) {
	t.Run("should look at the region from the focus offset", func(t *testing.T) {
		ed, _ := newTestEditor(t)
		require.NoError(t, ed.FocusRegion("Westminster"))
		state := ed.CameraState()
		assert.Equal(t, rl.Vector3{X: -10, Z: -6}, state.Target)
		assert.Equal(t, rl.Vector3{X: -2, Y: 8, Z: 6}, state.Position)
	})
	t.Run("should be idempotent", func(t *testing.T) {
		ed, _ := newTestEditor(t)
		require.NoError(t, ed.FocusRegion("London"))
		first := ed.CameraState()
		require.NoError(t, ed.FocusRegion("London"))
		assert.Equal(t, first, ed.CameraState())
	})
	t.Run("should reject unknown regions and keep the camera", func(t *testing.T) {
		ed, _ := newTestEditor(t)
		before := ed.CameraState()
		err := ed.FocusRegion("Atlantis")
		assert.ErrorIs(t, err, ErrUnknownRegion)
		assert.Equal(t, before, ed.CameraState())
	})
}

func TestEditorPointerDown(t *testing.T) {
	t.Run("should select what is under the pointer", func(t *testing.T) {
		// given
		ed, scene := newTestEditor(t)
		target := addBox(scene, "Target", gray)
		target.Transform.Position = camera.DefaultOptions().Target
		// when
		id := ed.PointerDown(rl.Vector2{})
		// then
		assert.Equal(t, target.ID, id)
		assert.Equal(t, target.ID, ed.Snapshot().ID)
	})
	t.Run("should deselect on a miss", func(t *testing.T) {
		// given
		ed, scene := newTestEditor(t)
		target := addBox(scene, "Target", gray)
		target.Transform.Position = camera.DefaultOptions().Target
		ed.PointerDown(rl.Vector2{})
		// when
		id := ed.PointerDown(rl.Vector2{X: 0.99, Y: 0.99})
		// then
		assert.Equal(t, engine.NoID, id)
		assert.True(t, ed.Snapshot().IsEmpty())
		assert.Equal(t, gray, target.Color)
	})
}

func TestEditorHover(t *testing.T) {
	// given
	ed, scene := newTestEditor(t)
	target := addBox(scene, "Target", gray)
	target.Transform.Position = camera.DefaultOptions().Target
	// when
	id := ed.Hover(rl.Vector2{})
	// then
	assert.Equal(t, target.ID, id)
	assert.True(t, ed.Snapshot().IsEmpty(), "hovering must not select")
	assert.Equal(t, gray, target.Color)
	assert.Equal(t, engine.NoID, ed.Hover(rl.Vector2{X: 0.99, Y: 0.99}))
}

func TestEditorApplyEdit(t *testing.T) {
	// given
	ed, scene := newTestEditor(t)
	id := ed.AddCube()
	var got []Snapshot
	ed.Subscribe(func(s Snapshot) { got = append(got, s) })
	// when
	ed.ApplyEdit(Edits{Position: Axes(1, 2, 3), Rotation: &AxisEdit{Y: f32(0.5)}})
	// then
	cube := scene.Find(id)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, cube.Transform.Position)
	assert.Equal(t, float32(0.5), cube.Transform.Rotation.Y)
	require.Len(t, got, 1)
	assert.Equal(t, cube.Transform.Position, got[0].Position)
}

func TestEditorAnimation(t *testing.T) {
	// given
	ed, scene := newTestEditor(t)
	id := ed.AddCube()
	// when
	assert.True(t, ed.ToggleAnimation())
	ed.Update(1.0 / 60)
	ed.Update(1.0 / 60)
	// then
	assert.InDelta(t, 0.02, scene.Find(id).Transform.Rotation.Y, 1e-6)
	// when
	ed.Close()
	// then
	assert.False(t, ed.Spinning())
	assert.True(t, ed.Snapshot().IsEmpty())
}

func TestEditorFocusEntity(t *testing.T) {
	ed, _ := newTestEditor(t)
	id := ed.AddCube()
	require.True(t, ed.FocusEntity(id))
	assert.False(t, ed.FocusEntity(engine.ID(999)))
	state := ed.CameraState()
	assert.Equal(t, ed.Snapshot().Position, state.Target)
}

func TestEditorOutlinerReveal(t *testing.T) {
	t.Run("should reveal the newest entity once", func(t *testing.T) {
		// given
		ed, scene := newTestEditor(t)
		addBox(scene, "A", gray)
		addBox(scene, "B", gray)
		ed.outlinerRows()
		// when
		id := ed.AddCube()
		rows, reveal := ed.outlinerRows()
		// then
		require.Len(t, rows, 3)
		assert.Equal(t, 2, reveal)
		assert.Equal(t, id, rows[reveal].id)
		_, reveal = ed.outlinerRows()
		assert.Equal(t, -1, reveal)
	})
	t.Run("should reveal added lights", func(t *testing.T) {
		ed, _ := newTestEditor(t)
		id := ed.AddLight()
		rows, reveal := ed.outlinerRows()
		require.Equal(t, 0, reveal)
		assert.Equal(t, id, rows[0].id)
		assert.False(t, rows[0].selectable)
	})
}

func TestEditorView(t *testing.T) {
	ed, _ := newTestEditor(t)
	ed.AddCube()
	var n int
	ed.View(func(cam rl.Camera3D, state camera.State, entities []*engine.Entity) {
		n = len(entities)
		assert.Equal(t, state.Position, cam.Position)
	})
	assert.Equal(t, 1, n)
}

func TestHSLColor(t *testing.T) {
	c := hslColor(0, 0.6, 0.6)
	// hsl(0, 60%, 60%) is #d65c5c
	assert.InDelta(t, 0xd6, int(c.R), 1)
	assert.InDelta(t, 0x5c, int(c.G), 1)
	assert.InDelta(t, 0x5c, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)
}
