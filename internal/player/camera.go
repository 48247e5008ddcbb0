package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MouseSensitivity divides raw pointer deltas into radians.
const MouseSensitivity = 100.0

// EyePosition is where the camera sits and where the view mesh is centred.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, PlayerEyeHeight, 0})
}

// Look turns the player by a pointer delta. Vertical look is limited to straight
// up and straight down.
func (p *Player) Look(dx, dy float64) {
	p.Yaw += dx / MouseSensitivity
	p.Pitch -= dy / MouseSensitivity
	p.Pitch = max(p.Pitch, -math.Pi/2)
	p.Pitch = min(p.Pitch, math.Pi/2)
}

// FrontVector returns the unit view direction.
func (p *Player) FrontVector() mgl32.Vec3 {
	forward := p.Yaw + 3*math.Pi/2
	fx := float32(math.Cos(forward) * math.Cos(p.Pitch))
	fy := float32(math.Sin(p.Pitch))
	fz := float32(math.Sin(forward) * math.Cos(p.Pitch))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}
