package world

import "math"

// ChunkCoord is the composite key of a chunk in chunk-grid units.
type ChunkCoord struct {
	X, Y, Z int
}

// ChunkWithCoord pairs a chunk with the key it is stored under.
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// floorDiv rounds towards negative infinity, so -1/16 is -1 rather than 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the floor modulo: the result is always in [0, b) for b > 0.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// CalcChunkPos maps a global block coordinate to the coordinate of the chunk holding it.
func CalcChunkPos(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSizeX),
		Y: floorDiv(y, ChunkSizeY),
		Z: floorDiv(z, ChunkSizeZ),
	}
}

// CalcBlockPos maps a global block coordinate to chunk-local coordinates in [0, size).
func CalcBlockPos(x, y, z int) (lx, ly, lz int) {
	return mod(x, ChunkSizeX), mod(y, ChunkSizeY), mod(z, ChunkSizeZ)
}

// BlockCoord floors a world-space component to the integer block coordinate containing it.
func BlockCoord(v float32) int {
	return int(math.Floor(float64(v)))
}
