package world

import (
	"blockworld/internal/profiling"

	"go.uber.org/zap"
)

const (
	// DefaultInitialRadius pre-populates chunk x,z in [-10, 10) at chunk y=0.
	DefaultInitialRadius = 10
	// DefaultRetainRadius is the horizontal chunk radius UnloadFarChunks keeps.
	DefaultRetainRadius = 10
)

// World is a sparse, chunked block grid. Chunk lookup is total: asking for a
// chunk that does not exist creates and stores an empty one.
type World struct {
	store *ChunkStore
	gen   TerrainGenerator
	log   *zap.Logger

	initialRadius int
	retainRadius  int
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for chunk lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithGenerator replaces the flat terrain generator used for the initial area.
func WithGenerator(gen TerrainGenerator) Option {
	return func(w *World) {
		if gen != nil {
			w.gen = gen
		}
	}
}

// WithInitialRadius sets the half-width, in chunks, of the pre-populated area.
func WithInitialRadius(radius int) Option {
	return func(w *World) {
		w.initialRadius = max(radius, 0)
	}
}

// WithRetainRadius sets the horizontal chunk radius kept by UnloadFarChunks.
func WithRetainRadius(radius int) Option {
	return func(w *World) {
		w.retainRadius = max(radius, 1)
	}
}

func newWorld(opts []Option) *World {
	w := &World{
		gen:           NewFlatGenerator(1),
		log:           zap.NewNop(),
		initialRadius: DefaultInitialRadius,
		retainRadius:  DefaultRetainRadius,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.store = NewChunkStore(w.log.Named("chunks"))
	return w
}

// New creates a world with a square of flat-terrain chunks around the origin.
func New(opts ...Option) *World {
	w := newWorld(opts)

	r := w.initialRadius
	for cz := -r; cz < r; cz++ {
		for cx := -r; cx < r; cx++ {
			chunk := NewChunk(cx, 0, cz)
			w.gen.PopulateChunk(chunk)
			w.store.AddChunk(chunk.Coord(), chunk)
		}
	}

	w.log.Info("World initialised",
		zap.Int("chunks", w.store.Len()),
		zap.Int("initial_radius", r),
		zap.Int("retain_radius", w.retainRadius))
	return w
}

// NewEmpty creates a world without any pre-populated chunks.
func NewEmpty(opts ...Option) *World {
	return newWorld(opts)
}

// GetChunk returns the chunk at (cx, cy, cz), creating an empty one if needed. Never nil.
func (w *World) GetChunk(cx, cy, cz int) *Chunk {
	return w.store.GetChunk(cx, cy, cz, true)
}

// TryGetChunk returns the chunk at (cx, cy, cz) without creating it.
func (w *World) TryGetChunk(cx, cy, cz int) (*Chunk, bool) {
	chunk := w.store.GetChunk(cx, cy, cz, false)
	return chunk, chunk != nil
}

// GetChunkFromBlockCoords returns the chunk containing the block at the specified world coordinates.
func (w *World) GetChunkFromBlockCoords(x, y, z int, create bool) *Chunk {
	c := CalcChunkPos(x, y, z)
	return w.store.GetChunk(c.X, c.Y, c.Z, create)
}

// GetBlock returns the block at global coordinates, creating the owning chunk on demand.
func (w *World) GetBlock(x, y, z int) BlockType {
	chunk := w.GetChunkFromBlockCoords(x, y, z, true)
	if chunk == nil {
		return BlockTypeAir
	}
	lx, ly, lz := CalcBlockPos(x, y, z)
	return chunk.GetBlock(lx, ly, lz)
}

// PeekBlock is GetBlock without creation-on-demand: missing chunks read as air.
func (w *World) PeekBlock(x, y, z int) BlockType {
	chunk := w.GetChunkFromBlockCoords(x, y, z, false)
	if chunk == nil {
		return BlockTypeAir
	}
	lx, ly, lz := CalcBlockPos(x, y, z)
	return chunk.GetBlock(lx, ly, lz)
}

// IsAir checks if the block at the specified world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.PeekBlock(x, y, z) == BlockTypeAir
}

// SetBlock sets the block type at the specified world coordinates.
func (w *World) SetBlock(x, y, z int, val BlockType) {
	chunk := w.GetChunkFromBlockCoords(x, y, z, true)
	lx, ly, lz := CalcBlockPos(x, y, z)

	if err := chunk.SetBlock(lx, ly, lz, val); err != nil {
		w.log.Error("Set block failed",
			zap.Int("x", x), zap.Int("y", y), zap.Int("z", z), zap.Error(err))
		return
	}

	// Mark neighbor chunks dirty if we touched a border block
	w.markDirtyIf(lx == 0, x-1, y, z)
	w.markDirtyIf(lx == ChunkSizeX-1, x+1, y, z)
	w.markDirtyIf(ly == 0, x, y-1, z)
	w.markDirtyIf(ly == ChunkSizeY-1, x, y+1, z)
	w.markDirtyIf(lz == 0, x, y, z-1)
	w.markDirtyIf(lz == ChunkSizeZ-1, x, y, z+1)
}

func (w *World) markDirtyIf(cond bool, x, y, z int) {
	if !cond {
		return
	}
	if nb := w.GetChunkFromBlockCoords(x, y, z, false); nb != nil {
		nb.dirty = true
	}
}

// UnloadFarChunks drops every chunk whose horizontal chunk coordinate lies outside
// [r-R, r+R) around the chunk holding block (x, y, z). All vertical layers of a
// retained column are kept. Returns number of removed chunks.
func (w *World) UnloadFarChunks(x, y, z int) int {
	defer profiling.Track("world.UnloadFarChunks")()
	ref := CalcChunkPos(x, y, z)
	r := w.retainRadius

	removed := w.store.Retain(func(c ChunkCoord) bool {
		return c.X >= ref.X-r && c.X < ref.X+r && c.Z >= ref.Z-r && c.Z < ref.Z+r
	})
	if removed > 0 {
		w.log.Info("Unloaded far chunks",
			zap.Int("removed", removed),
			zap.Int("remaining", w.store.Len()),
			zap.Int("ref_cx", ref.X),
			zap.Int("ref_cz", ref.Z))
	}
	return removed
}

// ModCount returns a counter that changes whenever a chunk is loaded or unloaded.
func (w *World) ModCount() uint64 {
	return w.store.GetModCount()
}

// TakeDirty reports whether any loaded chunk in the inclusive range [lo, hi] was
// modified since it was last taken, and marks those chunks clean. Missing chunks
// are not created.
func (w *World) TakeDirty(lo, hi ChunkCoord) bool {
	dirty := false
	for cy := lo.Y; cy <= hi.Y; cy++ {
		for cz := lo.Z; cz <= hi.Z; cz++ {
			for cx := lo.X; cx <= hi.X; cx++ {
				chunk := w.store.GetChunk(cx, cy, cz, false)
				if chunk != nil && chunk.IsDirty() {
					chunk.SetClean()
					dirty = true
				}
			}
		}
	}
	return dirty
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int {
	return w.store.Len()
}

// Chunks returns every loaded chunk in a stable order.
func (w *World) Chunks() []ChunkWithCoord {
	return w.store.GetAllChunks()
}

// RetainRadius returns the horizontal chunk radius used by UnloadFarChunks.
func (w *World) RetainRadius() int {
	return w.retainRadius
}
