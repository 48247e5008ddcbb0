package physics_test

import (
	"testing"

	"blockworld/internal/physics"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorWorld() *world.World {
	w := world.NewEmpty()
	c := w.GetChunk(0, 0, 0)
	c.CreateFlatmap()
	return w
}

func TestFallingActorLandsOnFloor(t *testing.T) {
	w := world.New()

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 5, 0.5},
		Velocity: mgl32.Vec3{0, -20, 0},
		Size:     0.25,
	})

	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, out.Position)
	assert.Equal(t, float32(0), out.Velocity.Y())
	assert.True(t, out.Landing)
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	w := world.New()
	w.SetBlock(1, 1, 0, world.BlockTypeDirt)
	w.SetBlock(1, 2, 0, world.BlockTypeDirt)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 1, 0.5},
		Velocity: mgl32.Vec3{0.5, 0, 0},
		Size:     0.25,
	})

	assert.InDelta(t, 0.875, out.Position.X(), 1e-6)
	assert.Equal(t, float32(0), out.Velocity.X())
	assert.Equal(t, float32(1), out.Position.Y())
	assert.True(t, out.Landing)
}

func TestWallOnNegativeSide(t *testing.T) {
	w := floorWorld()
	w.SetBlock(0, 1, 2, world.BlockTypeDirt)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{1.5, 1, 2.5},
		Velocity: mgl32.Vec3{-0.5, 0, 0},
		Size:     0.25,
	})

	assert.InDelta(t, 1.125, out.Position.X(), 1e-6)
	assert.Equal(t, float32(0), out.Velocity.X())
}

func TestMovingAwayFromWallIsNotClamped(t *testing.T) {
	w := floorWorld()
	w.SetBlock(1, 1, 0, world.BlockTypeDirt)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.875, 1, 0.5},
		Velocity: mgl32.Vec3{-0.25, 0, 0},
		Size:     0.25,
	})

	assert.InDelta(t, 0.625, out.Position.X(), 1e-6)
	assert.InDelta(t, -0.25, out.Velocity.X(), 1e-6)
}

func TestGlassIsCollidable(t *testing.T) {
	w := floorWorld()
	w.SetBlock(0, 1, 1, world.BlockTypeGlass)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 1, 0.5},
		Velocity: mgl32.Vec3{0, 0, 0.5},
		Size:     0.25,
	})

	assert.InDelta(t, 0.875, out.Position.Z(), 1e-6)
	assert.Equal(t, float32(0), out.Velocity.Z())
}

func TestRisingActorHitsCeiling(t *testing.T) {
	w := floorWorld()
	w.SetBlock(0, 4, 0, world.BlockTypeDirt)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 1, 0.5},
		Velocity: mgl32.Vec3{0, 5, 0},
		Size:     0.25,
		Landing:  true,
	})

	assert.Equal(t, float32(4), out.Position.Y())
	assert.Equal(t, float32(0), out.Velocity.Y())
	assert.False(t, out.Landing)
}

func TestFreeFallInOpenAir(t *testing.T) {
	w := world.NewEmpty()

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 10, 0.5},
		Velocity: mgl32.Vec3{0, -1, 0},
		Size:     0.25,
		Landing:  true,
	})

	assert.Equal(t, mgl32.Vec3{0.5, 9, 0.5}, out.Position)
	assert.Equal(t, float32(-1), out.Velocity.Y())
	assert.False(t, out.Landing)
}

func TestResolveIsIdempotentAtRest(t *testing.T) {
	w := world.New()
	r := physics.NewResolver(w)

	rest := physics.State{Position: mgl32.Vec3{3.5, 1, -2.5}, Size: 0.25}
	once := r.Resolve(rest)
	twice := r.Resolve(once)

	assert.Equal(t, once, twice)
	assert.True(t, once.Landing)
	assert.Equal(t, rest.Position, once.Position)
}

func TestRestingOffGridIsNotLanding(t *testing.T) {
	w := world.New()
	out := physics.ResolveCollision(w, physics.State{Position: mgl32.Vec3{0.5, 1.5, 0.5}, Size: 0.25})
	assert.False(t, out.Landing)
}

func TestVerticalCandidatesOrderedByTravel(t *testing.T) {
	w := world.NewEmpty()
	for _, y := range []int{1, 3, 5} {
		w.SetBlock(0, y, 0, world.BlockTypeDirt)
	}
	r := physics.NewResolver(w)

	heights := func(cs []physics.VerticalFootprintCandidate) []int {
		out := make([]int, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.Y)
		}
		return out
	}

	falling := r.VerticalCandidates(mgl32.Vec3{0.5, 6, 0.5}, mgl32.Vec3{0, -6, 0})
	assert.Equal(t, []int{5, 3, 1}, heights(falling))

	rising := r.VerticalCandidates(mgl32.Vec3{0.5, 0, 0.5}, mgl32.Vec3{0, 6, 0})
	assert.Equal(t, []int{1, 3, 5}, heights(rising))
}

func TestFallingStopsOnHighestSurface(t *testing.T) {
	w := world.NewEmpty()
	w.SetBlock(0, 1, 0, world.BlockTypeDirt)
	w.SetBlock(0, 5, 0, world.BlockTypeDirt)

	out := physics.ResolveCollision(w, physics.State{
		Position: mgl32.Vec3{0.5, 8, 0.5},
		Velocity: mgl32.Vec3{0, -10, 0},
		Size:     0.25,
	})

	assert.Equal(t, float32(6), out.Position.Y())
	assert.True(t, out.Landing)
}

func TestHorizontalCandidatesPointIntoOpenCell(t *testing.T) {
	w := world.NewEmpty()
	w.SetBlock(1, 0, 0, world.BlockTypeDirt)
	r := physics.NewResolver(w)

	var found *physics.HorizontalFaceCandidate
	for _, c := range r.HorizontalCandidates(mgl32.Vec3{0.5, 0, 0.5}) {
		if c.Axis == physics.AxisX && c.Plane == 1 && c.SpanMin == 0 {
			found = &c
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, float32(-1), found.Dir)
	assert.Equal(t, float32(1), found.SpanMax)
}
