package player

import (
	"math"

	"blockworld/internal/config"
	"blockworld/internal/input"
	"blockworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// walkDirection sums the held movement keys into a unit XZ heading relative to Yaw.
// Returns the zero vector when nothing (or only opposing keys) is held.
func (p *Player) walkDirection(im *input.InputManager) mgl32.Vec3 {
	const deg90 = math.Pi / 2

	var wx, wz float64
	add := func(angle float64) {
		wx += math.Cos(p.Yaw + angle)
		wz += math.Sin(p.Yaw + angle)
	}
	if im.IsActive(input.ActionMoveRight) {
		add(deg90 * 0)
	}
	if im.IsActive(input.ActionMoveLeft) {
		add(deg90 * 2)
	}
	if im.IsActive(input.ActionMoveForward) {
		add(deg90 * 3)
	}
	if im.IsActive(input.ActionMoveBackward) {
		add(deg90 * 1)
	}

	l := math.Hypot(wx, wz)
	if l < 1e-9 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{float32(wx / l), 0, float32(wz / l)}
}

// UpdatePosition advances the player by dt seconds: gravity, jumping and walking
// update the velocity, then the collision resolver moves the player.
func (p *Player) UpdatePosition(dt float64, im *input.InputManager) {
	defer profiling.Track("player.Update.Position")()
	if dt <= 0 {
		return
	}
	phys := config.GetPhysics()

	if !p.Landing {
		p.Velocity[1] -= phys.Gravity
	}

	if im.IsActive(input.ActionJump) && p.Landing {
		p.Velocity[1] = phys.JumpVelocity
	}

	// Airborne players can still steer, just slower than on the ground.
	walk := p.walkDirection(im)
	if walk.Len() > 0 {
		speed := phys.AirSpeed
		if p.Landing {
			speed = phys.GroundSpeed
		}
		p.Velocity[0] = speed * walk.X()
		p.Velocity[2] = speed * walk.Z()
	} else {
		damping := phys.AirDamping
		if p.Landing {
			damping = phys.GroundDamping
		}
		p.Velocity[0] /= damping
		p.Velocity[2] /= damping
	}

	step := float32(dt)
	s := p.State()
	s.Velocity = p.Velocity.Mul(step)

	s = p.resolver.Resolve(s)

	p.Position = s.Position
	p.Velocity = s.Velocity.Mul(1 / step)
	p.Landing = s.Landing

	if p.Position.Y() < phys.RespawnBelow {
		p.Respawn()
	}
}
