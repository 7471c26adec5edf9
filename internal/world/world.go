package world

import (
	"math/rand/v2"

	"openstudio/internal/engine"
)

// World bundles the scene with what the viewport needs to show it.
type World struct {
	Scene    *engine.Scene
	Regions  Regions
	Renderer *Renderer
}

// New builds the default city into a fresh scene.
func New(opts CityOptions, rng *rand.Rand) *World {
	scene := engine.NewScene("London")
	return &World{
		Scene:    scene,
		Regions:  BuildCity(scene, opts, rng),
		Renderer: NewRenderer(),
	}
}

// NewRand returns the generator for a city seed. Seed 0 picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
