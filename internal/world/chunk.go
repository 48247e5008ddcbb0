package world

import (
	"errors"
	"fmt"
)

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ErrOutOfRange is returned when a local chunk coordinate falls outside [0, size).
var ErrOutOfRange = errors.New("local coordinate out of range")

// Chunk represents a 16x16x16 section of the world
type Chunk struct {
	X, Y, Z int
	blocks  []BlockType
	dirty   bool
}

// NewChunk creates a new chunk at the specified chunk coordinates.
// Every cell starts out as air.
func NewChunk(x, y, z int) *Chunk {
	return &Chunk{
		X:      x,
		Y:      y,
		Z:      z,
		blocks: make([]BlockType, ChunkVolume),
		dirty:  true,
	}
}

// Coord returns the chunk-grid coordinate of c.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Y: c.Y, Z: c.Z}
}

// index converts local coordinates (x, y, z) → flat index
func index(x, y, z int) int {
	return z*(ChunkSizeY*ChunkSizeX) + y*ChunkSizeX + x
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block type at the specified local coordinates
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) error {
	if !inBounds(x, y, z) {
		return fmt.Errorf("chunk (%d,%d,%d): set (%d,%d,%d): %w", c.X, c.Y, c.Z, x, y, z, ErrOutOfRange)
	}

	idx := index(x, y, z)
	if c.blocks[idx] != blockType {
		c.blocks[idx] = blockType
		c.dirty = true
	}
	return nil
}

// CreateFlatmap lays a single dirt layer over the whole chunk footprint at local y=0.
func (c *Chunk) CreateFlatmap() {
	for z := range ChunkSizeZ {
		for x := range ChunkSizeX {
			c.blocks[index(x, 0, z)] = BlockTypeDirt
		}
	}
	c.dirty = true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// Count returns how many cells hold blockType.
func (c *Chunk) Count(blockType BlockType) int {
	n := 0
	for _, bt := range c.blocks {
		if bt == blockType {
			n++
		}
	}
	return n
}

// IsDirty returns whether the chunk has been modified since last render
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}
