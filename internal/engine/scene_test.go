package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAdd(t *testing.T) {
	t.Run("should assign increasing IDs", func(t *testing.T) {
		// given
		scene := NewScene("Test")
		a := NewEntity(KindBuilding, rl.Gray)
		b := NewEntity(KindCube, rl.Red)
		// when
		idA := scene.Add(a)
		idB := scene.Add(b)
		// then
		assert.Equal(t, ID(1), idA)
		assert.Equal(t, ID(2), idB)
		assert.Equal(t, idA, a.ID)
		assert.Equal(t, 2, scene.Len())
	})
	t.Run("should default name to kind name", func(t *testing.T) {
		scene := NewScene("Test")
		e := NewEntity(KindCube, rl.Red)
		scene.Add(e)
		assert.Equal(t, "Cube", e.Name)
	})
	t.Run("should keep explicit name", func(t *testing.T) {
		scene := NewScene("Test")
		e := NewEntity(KindBuilding, rl.Red)
		e.Name = "Gherkin"
		scene.Add(e)
		assert.Equal(t, "Gherkin", e.Name)
	})
	t.Run("should notify listeners after the ID is set", func(t *testing.T) {
		scene := NewScene("Test")
		var got ID
		scene.OnAdded.AddListener(func(e *Entity) { got = e.ID })
		id := scene.Add(NewEntity(KindCube, rl.Red))
		assert.Equal(t, id, got)
	})
	t.Run("should initialize a zero value scene", func(t *testing.T) {
		var scene Scene
		id := scene.Add(NewEntity(KindCube, rl.Red))
		assert.NotNil(t, scene.Find(id))
	})
}

func TestSceneRemove(t *testing.T) {
	t.Run("should remove entity and never reuse its ID", func(t *testing.T) {
		// given
		scene := NewScene("Test")
		a := NewEntity(KindCube, rl.Red)
		b := NewEntity(KindCube, rl.Blue)
		idA := scene.Add(a)
		idB := scene.Add(b)
		// when
		scene.Remove(idA)
		idC := scene.Add(NewEntity(KindCube, rl.Green))
		// then
		assert.Nil(t, scene.Find(idA))
		assert.Same(t, b, scene.Find(idB))
		assert.Equal(t, []*Entity{b, scene.Find(idC)}, scene.Entities())
		assert.NotEqual(t, idA, idC)
	})
	t.Run("should ignore unknown IDs", func(t *testing.T) {
		scene := NewScene("Test")
		scene.Add(NewEntity(KindCube, rl.Red))
		scene.Remove(99)
		assert.Equal(t, 1, scene.Len())
	})
}

func TestSceneFind(t *testing.T) {
	scene := NewScene("Test")
	e := NewEntity(KindBuilding, rl.Gray)
	e.Name = "Shard"
	id := scene.Add(e)

	assert.Same(t, e, scene.Find(id))
	assert.Nil(t, scene.Find(NoID))
	assert.Nil(t, scene.Find(99999))
}

func TestSceneForEachSelectable(t *testing.T) {
	// given
	scene := NewScene("Test")
	river := NewEntity(KindHelper, rl.Blue)
	river.Unselectable = true
	scene.Add(river)
	b1 := NewEntity(KindBuilding, rl.Gray)
	scene.Add(b1)
	scene.Add(NewLight(rl.Vector3{}, 1, 50))
	flagged := NewEntity(KindCube, rl.Red)
	flagged.Unselectable = true
	scene.Add(flagged)
	c1 := NewEntity(KindCube, rl.Red)
	scene.Add(c1)

	t.Run("should visit only selectable entities in insertion order", func(t *testing.T) {
		var got []*Entity
		scene.ForEachSelectable(func(e *Entity) bool {
			got = append(got, e)
			return true
		})
		assert.Equal(t, []*Entity{b1, c1}, got)
	})
	t.Run("should stop when visitor returns false", func(t *testing.T) {
		var n int
		scene.ForEachSelectable(func(e *Entity) bool {
			n++
			return false
		})
		assert.Equal(t, 1, n)
	})
}

func TestEntitySelectable(t *testing.T) {
	cases := []struct {
		name         string
		kind         Kind
		unselectable bool
		want         bool
	}{
		{"building", KindBuilding, false, true},
		{"cube", KindCube, false, true},
		{"light", KindLight, false, false},
		{"helper", KindHelper, false, false},
		{"flagged cube", KindCube, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(tc.kind, rl.Gray)
			e.Unselectable = tc.unselectable
			assert.Equal(t, tc.want, e.Selectable())
		})
	}
}

func TestEntityDisplayName(t *testing.T) {
	e := NewEntity(KindBuilding, rl.Gray)
	assert.Equal(t, "Building", e.DisplayName())
	e.Name = "Tower"
	assert.Equal(t, "Tower", e.DisplayName())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestNewLight(t *testing.T) {
	pos := rl.Vector3{X: 8, Y: 8, Z: 12}
	l := NewLight(pos, 1, 50)
	require.Equal(t, KindLight, l.Kind)
	assert.Equal(t, pos, l.Transform.Position)
	assert.Equal(t, float32(50), l.Range)
	assert.False(t, l.Selectable())
}
