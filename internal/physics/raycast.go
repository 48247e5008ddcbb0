package physics

import (
	"blockworld/internal/profiling"
	"blockworld/internal/registry"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	raycastStep = 0.02
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int // last non-render cell crossed before the hit
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction in fixed steps and reports the
// first renderable block whose unit cell contains a sample point.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, src world.BlockSource) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	direction = direction.Normalize()
	steps := int(maxDist / raycastStep)

	lastEmpty := cellOf(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * raycastStep
		if dist < minDist {
			continue
		}

		cell := cellOf(start.Add(direction.Mul(dist)))
		if registry.IsRender(src.GetBlock(cell[0], cell[1], cell[2])) {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: lastEmpty,
				Distance:         dist,
				Hit:              true,
			}
		}
		lastEmpty = cell
	}

	return RaycastResult{}
}

func cellOf(p mgl32.Vec3) [3]int {
	return [3]int{floorInt(p.X()), floorInt(p.Y()), floorInt(p.Z())}
}
