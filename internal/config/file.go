package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML configuration.
type File struct {
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Log        LogConfig        `yaml:"log"`
}

type SimulationConfig struct {
	TickIntervalMs   int `yaml:"tick_interval_ms"`
	UnloadEveryTicks int `yaml:"unload_every_ticks"`
}

type WorldConfig struct {
	InitialRadius int     `yaml:"initial_radius"`
	RetainRadius  int     `yaml:"retain_radius"`
	Terrain       Terrain `yaml:"terrain"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Simulation: SimulationConfig{
			TickIntervalMs:   16,
			UnloadEveryTicks: 0,
		},
		World: WorldConfig{
			InitialRadius: 10,
			RetainRadius:  10,
			Terrain:       DefaultTerrain(),
		},
		Physics: DefaultPhysics(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Apply publishes f to the package-level settings.
func Apply(f *File) {
	SetTickInterval(time.Duration(f.Simulation.TickIntervalMs) * time.Millisecond)
	SetUnloadEveryTicks(f.Simulation.UnloadEveryTicks)
	SetInitialRadius(f.World.InitialRadius)
	SetRetainRadius(f.World.RetainRadius)
	SetTerrain(f.World.Terrain)
	SetPhysics(f.Physics)
}
