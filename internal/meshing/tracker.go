package meshing

import (
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ChangeSource is a BlockSource that reports edits made since the last build.
type ChangeSource interface {
	world.BlockSource
	// ModCount changes whenever a chunk is loaded or unloaded.
	ModCount() uint64
	// TakeDirty reports whether any loaded chunk in [lo, hi] was modified and marks them clean.
	TakeDirty(lo, hi world.ChunkCoord) bool
}

// Tracker rebuilds the view mesh when the viewer moves into another chunk, and,
// for a ChangeSource, when a chunk under the last scan was edited or the set of
// loaded chunks changed.
type Tracker struct {
	last   world.ChunkCoord
	center [3]int
	mods   uint64
	built  bool
	mesh   Mesh
	log    *zap.Logger
}

func NewTracker(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{log: log}
}

// scanChunks returns the chunk range read by BuildFaceMesh centred on (cx, cy, cz).
func scanChunks(cx, cy, cz int) (lo, hi world.ChunkCoord) {
	lo = world.CalcChunkPos(cx-ScanRadiusX, cy-ScanRadiusY, cz-ScanRadiusZ)
	hi = world.CalcChunkPos(cx+ScanRadiusX-1, cy+ScanRadiusY-1, cz+ScanRadiusZ-1)
	return lo, hi
}

// Update returns the current mesh and whether it was rebuilt by this call.
func (t *Tracker) Update(src world.BlockSource, viewer mgl32.Vec3) (Mesh, bool) {
	center := [3]int{
		world.BlockCoord(viewer.X()),
		world.BlockCoord(viewer.Y()),
		world.BlockCoord(viewer.Z()),
	}
	coord := world.CalcChunkPos(center[0], center[1], center[2])
	cs, tracked := src.(ChangeSource)

	reason := ""
	switch {
	case !t.built:
		reason = "initial"
	case coord != t.last:
		reason = "chunk crossed"
	case tracked && cs.ModCount() != t.mods:
		reason = "chunks loaded or unloaded"
	case tracked && cs.TakeDirty(scanChunks(t.center[0], t.center[1], t.center[2])):
		reason = "blocks edited"
	default:
		return t.mesh, false
	}

	t.mesh = BuildFaceMesh(src, center[0], center[1], center[2])
	t.last = coord
	t.center = center
	t.built = true
	if tracked {
		// Building may create empty chunks on demand; settle both counters afterwards.
		cs.TakeDirty(scanChunks(center[0], center[1], center[2]))
		t.mods = cs.ModCount()
	}

	t.log.Debug("Rebuilt view mesh",
		zap.String("reason", reason),
		zap.Int("cx", coord.X), zap.Int("cy", coord.Y), zap.Int("cz", coord.Z),
		zap.Int("vertices", t.mesh.VertexCount))
	return t.mesh, true
}

// Mesh returns the last built mesh.
func (t *Tracker) Mesh() Mesh {
	return t.mesh
}
