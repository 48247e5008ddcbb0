package config

import "sync"

// Physics holds the actor movement constants.
type Physics struct {
	// Gravity is subtracted from the vertical velocity once per airborne tick.
	Gravity       float32    `yaml:"gravity"`
	JumpVelocity  float32    `yaml:"jump_velocity"`
	GroundSpeed   float32    `yaml:"ground_speed"`
	AirSpeed      float32    `yaml:"air_speed"`
	GroundDamping float32    `yaml:"ground_damping"`
	AirDamping    float32    `yaml:"air_damping"`
	ActorSize     float32    `yaml:"actor_size"`
	RespawnBelow  float32    `yaml:"respawn_below"`
	Spawn         [3]float32 `yaml:"spawn,flow"`
}

const standardGravity = 9.80665

// DefaultPhysics returns the built-in movement constants.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:       standardGravity,
		JumpVelocity:  standardGravity * 12,
		GroundSpeed:   3,
		AirSpeed:      2,
		GroundDamping: 1.5,
		AirDamping:    1.01,
		ActorSize:     0.25,
		RespawnBelow:  -100,
		Spawn:         [3]float32{10/2 + 0.5, 5, 10/2 + 0.5},
	}
}

var (
	physicsMu     sync.RWMutex
	globalPhysics = DefaultPhysics()
)

// GetPhysics returns a copy of the current movement constants
func GetPhysics() Physics {
	physicsMu.RLock()
	defer physicsMu.RUnlock()
	return globalPhysics
}

// SetPhysics replaces the movement constants. Damping factors below 1 would
// accelerate instead of slow down and are raised to 1; a non-positive actor
// size falls back to the default.
func SetPhysics(p Physics) {
	def := DefaultPhysics()
	p.GroundDamping = max(p.GroundDamping, 1)
	p.AirDamping = max(p.AirDamping, 1)
	if p.ActorSize <= 0 {
		p.ActorSize = def.ActorSize
	}

	physicsMu.Lock()
	defer physicsMu.Unlock()
	globalPhysics = p
}
