package player

import (
	"math"

	"blockworld/internal/config"
	"blockworld/internal/physics"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	PlayerEyeHeight = 1.5
)

type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3 // units per second
	Landing  bool

	// Yaw is the horizontal heading in radians, Pitch the vertical look angle
	// clamped to [-π/2, π/2].
	Yaw   float64
	Pitch float64

	// Spawn is where Respawn puts the player. Defaults to the configured spawn point.
	Spawn    mgl32.Vec3
	Respawns int

	resolver *physics.Resolver
	log      *zap.Logger
}

func New(w world.BlockSource, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	spawn := config.GetPhysics().Spawn
	p := &Player{
		Spawn:    mgl32.Vec3{spawn[0], spawn[1], spawn[2]},
		resolver: physics.NewResolver(w),
		log:      log,
	}
	p.reset()
	return p
}

// SetSpawn moves the spawn point and places the player there without counting a respawn.
func (p *Player) SetSpawn(pos mgl32.Vec3) {
	p.Spawn = pos
	p.reset()
}

func (p *Player) reset() {
	p.Position = p.Spawn
	p.Velocity = mgl32.Vec3{0, 0, 0}
	p.Landing = true
	p.Yaw = math.Pi / 2
	p.Pitch = 0
}

// Respawn puts the player back at the spawn point, grounded and at rest.
func (p *Player) Respawn() {
	p.reset()
	p.Respawns++

	p.log.Info("Player respawned",
		zap.Float32("x", p.Position.X()),
		zap.Float32("y", p.Position.Y()),
		zap.Float32("z", p.Position.Z()))
}

// State returns the kinematic state handed to the collision resolver.
func (p *Player) State() physics.State {
	return physics.State{
		Position: p.Position,
		Velocity: p.Velocity,
		Size:     config.GetPhysics().ActorSize,
		Landing:  p.Landing,
	}
}
