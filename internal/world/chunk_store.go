package world

import (
	"sort"
	"sync"

	"blockworld/internal/profiling"

	"go.uber.org/zap"
)

// ChunkStore manages the storage and retrieval of chunks.
// All mutation goes through mu's write lock, including creation-on-demand
// triggered by reads.
type ChunkStore struct {
	// Map of chunks indexed by their coordinates
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // Increases on any chunk add/remove

	log *zap.Logger
}

// NewChunkStore creates a new chunk store.
func NewChunkStore(log *zap.Logger) *ChunkStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
		log:    log,
	}
}

// GetChunk returns the chunk at the specified chunk coordinates.
// If the chunk doesn't exist and create is true, it will be created (but NOT populated).
func (cs *ChunkStore) GetChunk(chunkX, chunkY, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Y: chunkY, Z: chunkZ}
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		// Double-check locking: another goroutine might have created it while we were waiting for the lock
		if existing, ok := cs.chunks[coord]; ok {
			cs.mu.Unlock()
			return existing
		}

		chunk = NewChunk(chunkX, chunkY, chunkZ)
		cs.chunks[coord] = chunk
		cs.modCount++
		cs.mu.Unlock()

		cs.log.Debug("Created empty chunk", zap.Int("cx", chunkX), zap.Int("cy", chunkY), zap.Int("cz", chunkZ))
	}
	return chunk
}

// AddChunk adds a pre-generated chunk to the store. An existing chunk at coord is kept.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[coord]; !ok {
		cs.chunks[coord] = chunk
		cs.modCount++
	}
}

// Retain rebuilds the chunk map so that it only holds the chunks keep accepts.
// Returns number of removed chunks.
func (cs *ChunkStore) Retain(keep func(ChunkCoord) bool) int {
	defer profiling.Track("world.Retain")()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	retained := make(map[ChunkCoord]*Chunk, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		if keep(coord) {
			retained[coord] = chunk
		}
	}
	removed := len(cs.chunks) - len(retained)
	if removed > 0 {
		cs.modCount++
	}
	cs.chunks = retained
	return removed
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// GetAllChunks returns every stored chunk ordered by (Y, Z, X).
func (cs *ChunkStore) GetAllChunks() []ChunkWithCoord {
	cs.mu.RLock()
	chunks := make([]ChunkWithCoord, 0, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
	}
	cs.mu.RUnlock()

	sort.Slice(chunks, func(i, j int) bool {
		a, b := chunks[i].Coord, chunks[j].Coord
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return chunks
}
