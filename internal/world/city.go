package world

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RootRegion is the name of the region covering the whole city.
const RootRegion = "London"

// DefaultBuildings is the number of buildings BuildCity places by default.
const DefaultBuildings = 120

var (
	buildingColor = engine.MustParseHexColor("#888888")
	accentColor   = engine.MustParseHexColor("#a8b6ff")
	riverColor    = engine.MustParseHexColor("#1a3a6a")
)

type cluster struct {
	name      string
	center    rl.Vector3
	maxHeight float32
	accent    bool // some glass towers get the accent color
}

// clusters are visited round robin, building i goes to clusters[i%len(clusters)].
var clusters = []cluster{
	{name: "City of London", center: rl.Vector3{X: -2, Z: 2}, maxHeight: 3},
	{name: "Canary Wharf", center: rl.Vector3{X: 10, Z: -4}, maxHeight: 5, accent: true},
	{name: "Westminster", center: rl.Vector3{X: -10, Z: -6}, maxHeight: 3},
}

const (
	minBuildingHeight = 0.3
	clusterJitter     = 1.2
	accentThreshold   = 0.7
)

type CityOptions struct {
	Buildings int
}

func DefaultCityOptions() CityOptions {
	return CityOptions{Buildings: DefaultBuildings}
}

// BuildCity populates scene with a stylised London: a river helper plus
// opts.Buildings boxes spread over three districts. It returns the regions
// the camera can focus on. All randomness comes from rng.
func BuildCity(scene *engine.Scene, opts CityOptions, rng *rand.Rand) Regions {
	scene.Add(newRiver())

	for i := range opts.Buildings {
		scene.Add(newBuilding(i, rng))
	}

	regions := Regions{{Name: RootRegion, Center: rl.Vector3{}}}
	for _, c := range clusters {
		regions = append(regions, Region{Name: c.name, Center: c.center})
	}

	slog.Info("city built", "buildings", opts.Buildings, "regions", len(regions))
	return regions
}

func newRiver() *engine.Entity {
	e := engine.NewEntity(engine.KindHelper, riverColor)
	e.Name = "Thames"
	e.Unselectable = true
	e.Transform.Position = rl.Vector3{X: 0, Y: 0.02, Z: 0}
	e.Transform.Rotation = rl.Vector3{Y: 0.35}
	e.Transform.Scale = rl.Vector3{X: 30, Y: 0.1, Z: 2.5}
	return e
}

func newBuilding(i int, rng *rand.Rand) *engine.Entity {
	c := clusters[i%len(clusters)]

	x := c.center.X + (rng.Float32()-0.5)*clusterJitter
	z := c.center.Z + (rng.Float32()-0.5)*clusterJitter
	h := minBuildingHeight + rng.Float32()*c.maxHeight
	color := buildingColor
	// the accent draw is independent of height and only taken in accent districts
	if c.accent && rng.Float32() > accentThreshold {
		color = accentColor
	}

	e := engine.NewEntity(engine.KindBuilding, color)
	e.Name = fmt.Sprintf("%s %d", c.name, i/len(clusters)+1)
	e.Transform.Position = rl.Vector3{X: x, Y: h / 2, Z: z}
	e.Transform.Scale = rl.Vector3{X: 1, Y: h, Z: 1}
	return e
}
