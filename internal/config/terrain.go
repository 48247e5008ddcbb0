package config

import (
	"strings"
	"sync"
)

const (
	TerrainFlat  = "flat"
	TerrainHills = "hills"
)

// Terrain selects the generator used for the initial world area.
type Terrain struct {
	Kind      string `yaml:"kind"`
	Seed      int64  `yaml:"seed"`
	Height    int    `yaml:"height"`    // flat: solid layers; hills: minimum column height
	Amplitude int    `yaml:"amplitude"` // hills only
}

func DefaultTerrain() Terrain {
	return Terrain{
		Kind:      TerrainFlat,
		Seed:      1337,
		Height:    1,
		Amplitude: 6,
	}
}

var (
	terrainMu     sync.RWMutex
	globalTerrain = DefaultTerrain()
)

// GetTerrain returns a copy of the terrain settings
func GetTerrain() Terrain {
	terrainMu.RLock()
	defer terrainMu.RUnlock()
	return globalTerrain
}

// SetTerrain replaces the terrain settings. Unknown kinds fall back to flat.
func SetTerrain(t Terrain) {
	t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))
	if t.Kind != TerrainHills {
		t.Kind = TerrainFlat
	}
	t.Height = max(t.Height, 1)
	t.Amplitude = max(t.Amplitude, 0)

	terrainMu.Lock()
	defer terrainMu.Unlock()
	globalTerrain = t
}
