package world

import (
	"math/rand/v2"
	"testing"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestBuildCity(t *testing.T) {
	t.Run("should add river and buildings", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		BuildCity(scene, DefaultCityOptions(), newTestRand())
		// then
		require.Equal(t, DefaultBuildings+1, scene.Len())
		river := scene.Entities()[0]
		assert.Equal(t, engine.KindHelper, river.Kind)
		assert.True(t, river.Unselectable)
		assert.False(t, river.Selectable())
		assert.Equal(t, rl.Vector3{X: 30, Y: 0.1, Z: 2.5}, river.Transform.Scale)
		assert.Equal(t, rl.Vector3{X: 0, Y: 0.02, Z: 0}, river.Transform.Position)
		assert.InDelta(t, 0.35, river.Transform.Rotation.Y, 1e-6)
		assert.Equal(t, "#1a3a6a", engine.HexColor(river.Color))
	})
	t.Run("should place buildings round robin within their district", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		BuildCity(scene, CityOptions{Buildings: 30}, newTestRand())
		// then
		for i, e := range scene.Entities()[1:] {
			c := clusters[i%3]
			assert.Equal(t, engine.KindBuilding, e.Kind)
			assert.True(t, e.Selectable())
			assert.LessOrEqual(t, abs32(e.Transform.Position.X-c.center.X), float32(0.6), "building %d", i)
			assert.LessOrEqual(t, abs32(e.Transform.Position.Z-c.center.Z), float32(0.6), "building %d", i)
		}
	})
	t.Run("should stand buildings on the ground", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		BuildCity(scene, DefaultCityOptions(), newTestRand())
		// then
		for i, e := range scene.Entities()[1:] {
			h := e.Transform.Scale.Y
			c := clusters[i%3]
			assert.GreaterOrEqual(t, h, float32(0.3))
			assert.LessOrEqual(t, h, 0.3+c.maxHeight)
			assert.InDelta(t, h/2, e.Transform.Position.Y, 1e-6)
			assert.Equal(t, float32(1), e.Transform.Scale.X)
			assert.Equal(t, float32(1), e.Transform.Scale.Z)
		}
	})
	t.Run("should use the accent color only in canary wharf", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		BuildCity(scene, DefaultCityOptions(), newTestRand())
		// then
		accents := 0
		for i, e := range scene.Entities()[1:] {
			if e.BaseColor == accentColor {
				accents++
				assert.Equal(t, 1, i%3, "building %d", i)
				continue
			}
			assert.Equal(t, buildingColor, e.BaseColor)
		}
		assert.Positive(t, accents)
	})
	t.Run("should accent canary wharf buildings of any height", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		BuildCity(scene, CityOptions{Buildings: 3000}, newTestRand())
		// then
		wharf, accents, shortAccents := 0, 0, 0
		for i, e := range scene.Entities()[1:] {
			if i%3 != 1 {
				continue
			}
			wharf++
			if e.BaseColor != accentColor {
				continue
			}
			accents++
			if e.Transform.Scale.Y < 0.3+0.7*5 {
				shortAccents++
			}
		}
		assert.Positive(t, shortAccents)
		share := float64(accents) / float64(wharf)
		assert.InDelta(t, 0.3, share, 0.08)
	})
	t.Run("should return london and district regions", func(t *testing.T) {
		// given
		scene := engine.NewScene("Test")
		// when
		regions := BuildCity(scene, DefaultCityOptions(), newTestRand())
		// then
		assert.Equal(t, []string{"London", "City of London", "Canary Wharf", "Westminster"}, regions.Names())
		r, ok := regions.Find("Westminster")
		require.True(t, ok)
		assert.Equal(t, rl.Vector3{X: -10, Z: -6}, r.Center)
		r, ok = regions.Find(RootRegion)
		require.True(t, ok)
		assert.Equal(t, rl.Vector3{}, r.Center)
	})
	t.Run("should be reproducible for the same seed", func(t *testing.T) {
		// given
		a := engine.NewScene("A")
		b := engine.NewScene("B")
		// when
		BuildCity(a, CityOptions{Buildings: 12}, newTestRand())
		BuildCity(b, CityOptions{Buildings: 12}, newTestRand())
		// then
		for i := range a.Entities() {
			assert.Equal(t, a.Entities()[i].Transform, b.Entities()[i].Transform)
		}
	})
	t.Run("should build no buildings when asked for none", func(t *testing.T) {
		scene := engine.NewScene("Test")
		BuildCity(scene, CityOptions{}, newTestRand())
		assert.Equal(t, 1, scene.Len())
	})
}

func TestRegionsFind(t *testing.T) {
	regions := Regions{{Name: "A", Center: rl.Vector3{X: 1}}}
	_, ok := regions.Find("B")
	assert.False(t, ok)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
