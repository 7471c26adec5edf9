package game

import (
	"testing"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Run("should build a single axis position edit", func(t *testing.T) {
		edits, ok := parseField("pos.y", " 2.5 ")
		require.True(t, ok)
		require.NotNil(t, edits.Position)
		assert.Nil(t, edits.Position.X)
		assert.Nil(t, edits.Position.Z)
		assert.Equal(t, float32(2.5), *edits.Position.Y)
		assert.Nil(t, edits.Rotation)
	})
	t.Run("should build a rotation edit", func(t *testing.T) {
		edits, ok := parseField("rot.z", "-1")
		require.True(t, ok)
		assert.Equal(t, float32(-1), *edits.Rotation.Z)
	})
	t.Run("should parse hex colors", func(t *testing.T) {
		edits, ok := parseField(colorFieldID, "#3366ff")
		require.True(t, ok)
		assert.Equal(t, engine.MustParseHexColor("#3366ff"), *edits.Color)
	})
	t.Run("should drop text that does not parse", func(t *testing.T) {
		for _, tc := range []struct{ id, text string }{
			{"pos.x", ""},
			{"pos.x", "1.2.3"},
			{"pos.w", "1"},
			{"scale.x", "1"},
			{colorFieldID, "#12345"},
			{colorFieldID, "red"},
		} {
			_, ok := parseField(tc.id, tc.text)
			assert.False(t, ok, "%s=%q", tc.id, tc.text)
		}
	})
}

func TestToNDC(t *testing.T) {
	assert.Equal(t, rl.Vector2{X: 0, Y: 0}, toNDC(rl.Vector2{X: 640, Y: 360}, 1280, 720))
	assert.Equal(t, rl.Vector2{X: -1, Y: 1}, toNDC(rl.Vector2{X: 0, Y: 0}, 1280, 720))
	assert.Equal(t, rl.Vector2{X: 1, Y: -1}, toNDC(rl.Vector2{X: 1280, Y: 720}, 1280, 720))
}

func TestMouseInPanel(t *testing.T) {
	assert.True(t, mouseInPanel(rl.Vector2{X: 600, Y: 10}, 1280, 720))
	assert.True(t, mouseInPanel(rl.Vector2{X: 100, Y: 300}, 1280, 720))
	assert.True(t, mouseInPanel(rl.Vector2{X: 1200, Y: 300}, 1280, 720))
	assert.True(t, mouseInPanel(rl.Vector2{X: 600, Y: 710}, 1280, 720))
	assert.False(t, mouseInPanel(rl.Vector2{X: 600, Y: 300}, 1280, 720))
}

func TestRevealScroll(t *testing.T) {
	const visible = 5 * outlinerItemHeight
	t.Run("should keep the scroll when the row is in view", func(t *testing.T) {
		assert.Equal(t, int32(0), revealScroll(0, 2, visible))
	})
	t.Run("should scroll down until the row is at the bottom", func(t *testing.T) {
		assert.Equal(t, 10*outlinerItemHeight-visible, revealScroll(0, 9, visible))
	})
	t.Run("should scroll up to a row above the view", func(t *testing.T) {
		assert.Equal(t, 3*outlinerItemHeight, revealScroll(8*outlinerItemHeight, 3, visible))
	})
}
