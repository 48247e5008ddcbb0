package physics

import (
	"math"

	"blockworld/internal/profiling"
	"blockworld/internal/registry"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	AxisX = 0
	AxisZ = 2

	// LandingHalfExtent is the half side of the square footprint used for vertical contacts.
	LandingHalfExtent = 0.125
)

// State is the kinematic state of an actor for one resolution call.
// Velocity is already scaled to the tick's time delta.
type State struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Size     float32 // horizontal footprint diameter
	Landing  bool
}

// HorizontalFaceCandidate is a vertical block face that may stop X or Z movement.
// Dir points out of the solid block, into the open cell the face borders.
type HorizontalFaceCandidate struct {
	Axis    int
	Plane   float32
	Dir     float32
	SpanMin float32
	SpanMax float32
}

// VerticalFootprintCandidate is the unit top/bottom rectangle of a solid block at height Y.
type VerticalFootprintCandidate struct {
	Y          int
	MinX, MinZ float32
	MaxX, MaxZ float32
}

type rect struct {
	minX, minZ, maxX, maxZ float32
}

// Resolver resolves actor movement against the collidable blocks of a world.
// It keeps no state between calls.
type Resolver struct {
	src world.BlockSource
}

func NewResolver(src world.BlockSource) *Resolver {
	return &Resolver{src: src}
}

// ResolveCollision resolves s against w in one shot.
func ResolveCollision(w world.BlockSource, s State) State {
	return NewResolver(w).Resolve(s)
}

// Resolve runs the horizontal pass, then the vertical pass, then integrates
// position by the corrected velocity.
func (r *Resolver) Resolve(s State) State {
	defer profiling.Track("physics.Resolve")()
	s = r.resolveHorizontal(s)
	s = r.resolveVertical(s)
	return integrate(s)
}

func (r *Resolver) collidable(x, y, z int) bool {
	return registry.IsCollidable(r.src.GetBlock(x, y, z))
}

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// HorizontalCandidates lists the faces between open cells around pos and their
// collidable X/Z neighbours: a 3x3 column neighbourhood at the actor's feet and
// head levels. Only one cell around the actor is examined.
func (r *Resolver) HorizontalCandidates(pos mgl32.Vec3) []HorizontalFaceCandidate {
	bx, by, bz := floorInt(pos.X()), floorInt(pos.Y()), floorInt(pos.Z())

	var candidates []HorizontalFaceCandidate
	for x := bx - 1; x <= bx+1; x++ {
		for z := bz - 1; z <= bz+1; z++ {
			for y := by; y <= by+1; y++ {
				if r.collidable(x, y, z) {
					continue
				}
				fx, fz := float32(x), float32(z)
				if r.collidable(x-1, y, z) {
					candidates = append(candidates, HorizontalFaceCandidate{Axis: AxisX, Plane: fx, Dir: 1, SpanMin: fz, SpanMax: fz + 1})
				}
				if r.collidable(x+1, y, z) {
					candidates = append(candidates, HorizontalFaceCandidate{Axis: AxisX, Plane: fx + 1, Dir: -1, SpanMin: fz, SpanMax: fz + 1})
				}
				if r.collidable(x, y, z-1) {
					candidates = append(candidates, HorizontalFaceCandidate{Axis: AxisZ, Plane: fz, Dir: 1, SpanMin: fx, SpanMax: fx + 1})
				}
				if r.collidable(x, y, z+1) {
					candidates = append(candidates, HorizontalFaceCandidate{Axis: AxisZ, Plane: fz + 1, Dir: -1, SpanMin: fx, SpanMax: fx + 1})
				}
			}
		}
	}
	return candidates
}

// collidesWithBox reports whether a square of side 2*half centred at (boxX, boxZ)
// straddles the face plane within the face span.
func (c HorizontalFaceCandidate) collidesWithBox(boxX, boxZ, half float32) bool {
	along, across := boxX, boxZ
	if c.Axis == AxisZ {
		along, across = boxZ, boxX
	}
	return along > c.Plane-half &&
		along < c.Plane+half &&
		across > c.SpanMin-half &&
		across < c.SpanMax+half
}

// resolveHorizontal clamps X/Z movement against faces the actor is moving into.
// Hits are applied in enumeration order; a later clamp on the same axis wins.
func (r *Resolver) resolveHorizontal(s State) State {
	half := s.Size / 2
	boxX := s.Position.X() + s.Velocity.X()
	boxZ := s.Position.Z() + s.Velocity.Z()

	var hits []HorizontalFaceCandidate
	for _, c := range r.HorizontalCandidates(s.Position) {
		if s.Velocity[c.Axis]*c.Dir >= 0 {
			continue
		}
		if c.collidesWithBox(boxX, boxZ, half) {
			hits = append(hits, c)
		}
	}

	for _, c := range hits {
		s.Position[c.Axis] = c.Plane + half*c.Dir
		s.Velocity[c.Axis] = 0
	}
	return s
}

// VerticalCandidates lists collidable blocks in the 3x3 columns around pos whose
// height lies in the range swept by vel. Candidates are ordered nearest-first in
// the direction of travel: descending heights when falling, ascending otherwise.
func (r *Resolver) VerticalCandidates(pos, vel mgl32.Vec3) []VerticalFootprintCandidate {
	bx, bz := floorInt(pos.X()), floorInt(pos.Z())
	current := floorInt(pos.Y())
	moved := floorInt(pos.Y() + vel.Y())
	lo, hi := min(current, moved), max(current, moved)

	var candidates []VerticalFootprintCandidate
	collect := func(y int) {
		for x := bx - 1; x <= bx+1; x++ {
			for z := bz - 1; z <= bz+1; z++ {
				if r.collidable(x, y, z) {
					candidates = append(candidates, unitFootprint(x, y, z))
				}
			}
		}
	}

	if vel.Y() < 0 {
		for y := hi; y >= lo; y-- {
			collect(y)
		}
	} else {
		for y := lo; y <= hi; y++ {
			collect(y)
		}
	}
	return candidates
}

func unitFootprint(x, y, z int) VerticalFootprintCandidate {
	fx, fz := float32(x), float32(z)
	return VerticalFootprintCandidate{Y: y, MinX: fx, MinZ: fz, MaxX: fx + 1, MaxZ: fz + 1}
}

// overlaps reports whether any corner of f lies strictly inside c.
func (c VerticalFootprintCandidate) overlaps(f rect) bool {
	inside := func(x, z float32) bool {
		return x > c.MinX && x < c.MaxX && z > c.MinZ && z < c.MaxZ
	}
	return inside(f.minX, f.minZ) ||
		inside(f.maxX, f.minZ) ||
		inside(f.maxX, f.maxZ) ||
		inside(f.minX, f.maxZ)
}

// landingFootprint is the narrow square around the actor's horizontal destination.
func landingFootprint(s State) rect {
	x := s.Position.X() + s.Velocity.X()
	z := s.Position.Z() + s.Velocity.Z()
	return rect{
		minX: x - LandingHalfExtent,
		minZ: z - LandingHalfExtent,
		maxX: x + LandingHalfExtent,
		maxZ: z + LandingHalfExtent,
	}
}

// resolveVertical stops the actor on the first surface it reaches this tick.
func (r *Resolver) resolveVertical(s State) State {
	footprint := landingFootprint(s)
	vy := s.Velocity.Y()

	if vy == 0 {
		s.Landing = r.supported(s.Position, footprint)
		return s
	}

	for _, c := range r.VerticalCandidates(s.Position, s.Velocity) {
		if !c.overlaps(footprint) {
			continue
		}
		if vy < 0 {
			s.Position[1] = float32(c.Y + 1)
			s.Landing = true
		} else {
			s.Position[1] = float32(c.Y)
			s.Landing = false
		}
		s.Velocity[1] = 0
		return s
	}

	s.Landing = false
	return s
}

// supported reports whether an actor without vertical motion rests exactly on
// top of a collidable block under its footprint.
func (r *Resolver) supported(pos mgl32.Vec3, footprint rect) bool {
	feet := floorInt(pos.Y())
	if float32(feet) != pos.Y() {
		return false
	}
	below := feet - 1
	bx, bz := floorInt(pos.X()), floorInt(pos.Z())
	for x := bx - 1; x <= bx+1; x++ {
		for z := bz - 1; z <= bz+1; z++ {
			if r.collidable(x, below, z) && unitFootprint(x, below, z).overlaps(footprint) {
				return true
			}
		}
	}
	return false
}

func integrate(s State) State {
	s.Position = s.Position.Add(s.Velocity)
	return s
}
