package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// TerrainGenerator fills freshly created chunks.
type TerrainGenerator interface {
	// HeightAt returns the number of solid layers above world y=0 at column (x, z).
	HeightAt(worldX, worldZ int) int
	PopulateChunk(c *Chunk)
}

// FlatGenerator produces a flat dirt floor starting at world y=0.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator returns a generator laying height dirt layers (height=1 is a single floor layer).
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: max(height, 0)}
}

func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

// PopulateChunk fills every layer with world y in [0, height).
func (g *FlatGenerator) PopulateChunk(c *Chunk) {
	if g.height == 0 {
		return
	}
	chunkBaseY := c.Y * ChunkSizeY
	if chunkBaseY > g.height-1 || chunkBaseY+ChunkSizeY <= 0 {
		return
	}
	if c.Y == 0 {
		c.CreateFlatmap()
	}
	for ly := range ChunkSizeY {
		wy := chunkBaseY + ly
		if wy <= 0 || wy >= g.height {
			continue
		}
		for lz := range ChunkSizeZ {
			for lx := range ChunkSizeX {
				c.blocks[index(lx, ly, lz)] = BlockTypeDirt
			}
		}
		c.dirty = true
	}
}

// HillsGenerator raises the floor into rolling dirt hills driven by Perlin noise.
// Heights are clamped to a single chunk layer so the whole surface lives at chunk y=0.
type HillsGenerator struct {
	noise     *perlin.Perlin
	base      int
	amplitude int
	scale     float64
}

// NewHillsGenerator returns a generator whose column heights lie in
// [base, base+amplitude), or exactly base when amplitude is 0.
func NewHillsGenerator(seed int64, base, amplitude int) *HillsGenerator {
	base = min(max(base, 1), ChunkSizeY)
	return &HillsGenerator{
		// alpha 2, beta 2, 3 octaves
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		base:      base,
		amplitude: min(max(amplitude, 0), ChunkSizeY-base),
		scale:     24,
	}
}

func (g *HillsGenerator) HeightAt(worldX, worldZ int) int {
	if g.amplitude == 0 {
		return g.base
	}
	n := g.noise.Noise2D(float64(worldX)/g.scale, float64(worldZ)/g.scale) // roughly [-1, 1]
	v := min(max((n+1)/2, 0), 1)
	return g.base + min(int(math.Floor(v*float64(g.amplitude))), g.amplitude-1)
}

// PopulateChunk fills each column with dirt from world y=0 up to HeightAt.
func (g *HillsGenerator) PopulateChunk(c *Chunk) {
	if c.Y != 0 {
		return
	}
	baseX, baseZ := c.X*ChunkSizeX, c.Z*ChunkSizeZ
	for lz := range ChunkSizeZ {
		for lx := range ChunkSizeX {
			h := min(g.HeightAt(baseX+lx, baseZ+lz), ChunkSizeY)
			for ly := 0; ly < h; ly++ {
				c.blocks[index(lx, ly, lz)] = BlockTypeDirt
			}
		}
	}
	c.dirty = true
}
