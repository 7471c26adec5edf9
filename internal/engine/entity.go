package engine

import (
	"github.com/ErikKalkoken/go-set"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ID identifies an entity for the lifetime of its scene.
type ID uint64

// NoID is the zero ID. It never refers to an entity.
const NoID ID = 0

type Kind int

const (
	KindBuilding Kind = iota
	KindCube
	KindLight
	KindHelper
)

var kindNames = map[Kind]string{
	KindBuilding: "Building",
	KindCube:     "Cube",
	KindLight:    "Light",
	KindHelper:   "Helper",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// unpickableKinds are never returned by picking, whatever their flags say.
var unpickableKinds = set.Of(KindLight, KindHelper)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in radians
	Scale    rl.Vector3 // Box extents, set at build time
}

// Entity is one object placed in the scene.
type Entity struct {
	ID           ID
	Kind         Kind
	Name         string
	Transform    Transform
	BaseColor    rl.Color // true color as last committed by the user or generator
	Color        rl.Color // rendered color, the highlight while selected
	Unselectable bool

	// Point light parameters, only meaningful for KindLight.
	Intensity float32
	Range     float32
}

// NewEntity returns an entity of the given kind with unit extents.
// The ID is assigned when the entity is added to a Scene.
func NewEntity(kind Kind, color rl.Color) *Entity {
	return &Entity{
		Kind: kind,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		BaseColor: color,
		Color:     color,
	}
}

// NewLight returns a point light entity at pos.
func NewLight(pos rl.Vector3, intensity, rng float32) *Entity {
	e := NewEntity(KindLight, rl.White)
	e.Transform.Position = pos
	e.Transform.Scale = rl.Vector3{}
	e.Intensity = intensity
	e.Range = rng
	return e
}

// Selectable reports whether picking may return this entity.
func (e *Entity) Selectable() bool {
	return !e.Unselectable && !unpickableKinds.Contains(e.Kind)
}

// DisplayName returns the name shown in the inspector.
func (e *Entity) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Kind.String()
}
