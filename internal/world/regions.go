package world

import rl "github.com/gen2brain/raylib-go/raylib"

// Region is a named point of interest the camera can focus on.
type Region struct {
	Name   string
	Center rl.Vector3
}

// Regions keeps the order in which the city builder created them.
type Regions []Region

// Find returns the region with the given name.
func (rs Regions) Find(name string) (Region, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

func (rs Regions) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}
