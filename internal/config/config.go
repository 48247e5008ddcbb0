package config

import (
	"sync"
	"time"
)

// SimulationSettings holds tick and chunk retention configuration
type SimulationSettings struct {
	mu               sync.RWMutex
	tickInterval     time.Duration
	unloadEveryTicks int
	initialRadius    int // in chunks
	retainRadius     int // in chunks
}

var globalSimulationSettings = &SimulationSettings{
	tickInterval:     16 * time.Millisecond,
	unloadEveryTicks: 0, // disabled
	initialRadius:    10,
	retainRadius:     10,
}

// GetTickInterval returns the target duration of one simulation tick
func GetTickInterval() time.Duration {
	globalSimulationSettings.mu.RLock()
	defer globalSimulationSettings.mu.RUnlock()
	return globalSimulationSettings.tickInterval
}

// SetTickInterval sets the target tick duration
func SetTickInterval(d time.Duration) {
	globalSimulationSettings.mu.Lock()
	defer globalSimulationSettings.mu.Unlock()

	// Clamp to reasonable values
	if d < time.Millisecond {
		d = time.Millisecond
	}
	if d > time.Second {
		d = time.Second
	}

	globalSimulationSettings.tickInterval = d
}

// GetUnloadEveryTicks returns how often far chunks are unloaded (0 = never)
func GetUnloadEveryTicks() int {
	globalSimulationSettings.mu.RLock()
	defer globalSimulationSettings.mu.RUnlock()
	return globalSimulationSettings.unloadEveryTicks
}

// SetUnloadEveryTicks sets the unload cadence; negative values disable it
func SetUnloadEveryTicks(n int) {
	globalSimulationSettings.mu.Lock()
	defer globalSimulationSettings.mu.Unlock()
	globalSimulationSettings.unloadEveryTicks = max(n, 0)
}

// GetInitialRadius returns the half-width, in chunks, of the pre-populated area
func GetInitialRadius() int {
	globalSimulationSettings.mu.RLock()
	defer globalSimulationSettings.mu.RUnlock()
	return globalSimulationSettings.initialRadius
}

// SetInitialRadius sets the pre-populated area half-width
func SetInitialRadius(radius int) {
	globalSimulationSettings.mu.Lock()
	defer globalSimulationSettings.mu.Unlock()
	globalSimulationSettings.initialRadius = min(max(radius, 0), 64)
}

// GetRetainRadius returns the horizontal chunk radius kept around the player
func GetRetainRadius() int {
	globalSimulationSettings.mu.RLock()
	defer globalSimulationSettings.mu.RUnlock()
	return globalSimulationSettings.retainRadius
}

// SetRetainRadius sets the retention radius in chunks
func SetRetainRadius(radius int) {
	globalSimulationSettings.mu.Lock()
	defer globalSimulationSettings.mu.Unlock()
	globalSimulationSettings.retainRadius = min(max(radius, 1), 64)
}
