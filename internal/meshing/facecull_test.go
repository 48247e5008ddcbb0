package meshing

import (
	"testing"

	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockMap is a sparse BlockSource; anything not set reads as air.
type blockMap map[[3]int]world.BlockType

func (m blockMap) GetBlock(x, y, z int) world.BlockType {
	return m[[3]int{x, y, z}]
}

func vertexAt(m Mesh, i int) mgl32.Vec3 {
	o := i * VertexStride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func TestSingleBlockMesh(t *testing.T) {
	src := blockMap{{0, 0, 0}: world.BlockTypeDirt}

	m := BuildFaceMesh(src, 0, 0, 0)

	assert.Equal(t, 6, m.Faces())
	assert.Equal(t, 36, m.VertexCount) // 6 faces * 2 triangles * 3 vertices
	assert.Len(t, m.Vertices, 36*VertexStride)
}

func TestFaceHasFourDistinctCorners(t *testing.T) {
	src := blockMap{{0, 0, 0}: world.BlockTypeDirt}
	m := BuildFaceMesh(src, 0, 0, 0)

	for f := 0; f < m.Faces(); f++ {
		distinct := map[mgl32.Vec3]struct{}{}
		for v := 0; v < 6; v++ {
			distinct[vertexAt(m, f*6+v)] = struct{}{}
		}
		assert.Len(t, distinct, 4, "face %d", f)
	}
}

func TestVertexAttributes(t *testing.T) {
	src := blockMap{{2, 3, 4}: world.BlockTypeDirt}
	m := BuildFaceMesh(src, 0, 0, 0)
	require.NotEmpty(t, m.Vertices)

	for i := 0; i < m.VertexCount; i++ {
		o := i * VertexStride
		uv := m.Vertices[o+3 : o+5]
		assert.Contains(t, []float32{0, 1}, uv[0])
		assert.Contains(t, []float32{0, 1}, uv[1])
		assert.Equal(t, []float32{1, 1, 1, 1}, m.Vertices[o+5:o+9])

		p := vertexAt(m, i)
		assert.True(t, p.X() >= 2 && p.X() <= 3 && p.Y() >= 3 && p.Y() <= 4 && p.Z() >= 4 && p.Z() <= 5, "vertex %v outside block", p)
	}
}

func TestAdjacentBlocksHideSharedFaces(t *testing.T) {
	src := blockMap{
		{0, 0, 0}: world.BlockTypeDirt,
		{1, 0, 0}: world.BlockTypeDirt,
	}
	assert.Equal(t, 10, BuildFaceMesh(src, 0, 0, 0).Faces())
}

func TestSeparatedBlocks(t *testing.T) {
	src := blockMap{
		{0, 0, 0}: world.BlockTypeDirt,
		{2, 0, 0}: world.BlockTypeDirt,
	}
	assert.Equal(t, 12, BuildFaceMesh(src, 0, 0, 0).Faces())
}

func TestAirOnlyEmitsNothing(t *testing.T) {
	m := BuildFaceMesh(blockMap{}, 5, -3, 7)
	assert.Zero(t, m.VertexCount)
	assert.Empty(t, m.Vertices)
}

func TestEnclosedAirCell(t *testing.T) {
	src := blockMap{}
	for x := range 3 {
		for y := range 3 {
			for z := range 3 {
				src[[3]int{x, y, z}] = world.BlockTypeDirt
			}
		}
	}
	src[[3]int{1, 1, 1}] = world.BlockTypeAir

	m := BuildFaceMesh(src, 1, 1, 1)
	// 9 outer faces per side plus the 6 dirt faces lining the cavity.
	require.Equal(t, 6*9+6, m.Faces())

	inside := func(v float32) bool { return v > 1 && v < 2 }
	cavity := mgl32.Vec3{1.5, 1.5, 1.5}
	lining := 0
	for f := 0; f < m.Faces(); f++ {
		var centre mgl32.Vec3
		for i := range 6 {
			centre = centre.Add(vertexAt(m, f*6+i))
		}
		centre = centre.Mul(1.0 / 6)

		assert.False(t, inside(centre.X()) && inside(centre.Y()) && inside(centre.Z()),
			"face %d at %v lies inside the air cell", f, centre)

		if centre.Sub(cavity).Len() < 0.51 {
			lining++
			a, b, c := vertexAt(m, f*6), vertexAt(m, f*6+1), vertexAt(m, f*6+2)
			normal := b.Sub(a).Cross(c.Sub(a))
			assert.Greater(t, normal.Dot(cavity.Sub(centre)), float32(0), "lining face %d faces the cavity", f)
		}
	}
	assert.Equal(t, 6, lining)
}

func TestGlassNeighbourExposesFace(t *testing.T) {
	src := blockMap{
		{0, 0, 0}: world.BlockTypeDirt,
		{1, 0, 0}: world.BlockTypeGlass,
	}
	// Dirt keeps all 6 faces; glass hides only the face against opaque dirt.
	assert.Equal(t, 11, BuildFaceMesh(src, 0, 0, 0).Faces())

	twoGlass := blockMap{
		{0, 0, 0}: world.BlockTypeGlass,
		{1, 0, 0}: world.BlockTypeGlass,
	}
	assert.Equal(t, 12, BuildFaceMesh(twoGlass, 0, 0, 0).Faces())
}

func TestScanBoundaryFacesAreEmitted(t *testing.T) {
	// (15,0,0) is the last scanned column for a scan centred on x=0.
	src := blockMap{
		{15, 0, 0}: world.BlockTypeDirt,
		{16, 0, 0}: world.BlockTypeDirt,
	}
	assert.Equal(t, 6, BuildFaceMesh(src, 0, 0, 0).Faces())

	// Both blocks are interior when the scan is centred on x=16.
	assert.Equal(t, 10, BuildFaceMesh(src, 16, 0, 0).Faces())
}

func TestOutwardWinding(t *testing.T) {
	src := blockMap{{0, 0, 0}: world.BlockTypeDirt}
	m := BuildFaceMesh(src, 0, 0, 0)
	centre := mgl32.Vec3{0.5, 0.5, 0.5}

	for tri := 0; tri < m.VertexCount/3; tri++ {
		a, b, c := vertexAt(m, tri*3), vertexAt(m, tri*3+1), vertexAt(m, tri*3+2)
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, normal.Dot(centroid.Sub(centre)), float32(0), "triangle %d winds inward", tri)
	}
}

func TestFlatFloorMesh(t *testing.T) {
	w := world.New()

	m := BuildFaceMesh(w, 0, 1, 0)

	// 32x32 floor blocks in the scan: every top and bottom face is exposed,
	// side faces only along the four scan edges.
	const side = 2 * world.ChunkSizeX
	assert.Equal(t, side*side*2+side*4, m.Faces())
}

func TestBuildFaceMeshDeterministic(t *testing.T) {
	w := world.New()
	w.SetBlock(3, 1, 3, world.BlockTypeGlass)
	w.SetBlock(4, 2, -7, world.BlockTypeDirt)

	a := BuildFaceMesh(w, 2, 1, 2)
	b := BuildFaceMesh(w, 2, 1, 2)
	assert.Equal(t, a, b)
}

func TestBuildFaceMeshAtFloorsViewpoint(t *testing.T) {
	src := blockMap{{-16, 0, 0}: world.BlockTypeDirt}

	// Viewer at x=-0.5 is in block column -1, so x=-16 is still inside [-17, 14].
	m := BuildFaceMeshAt(src, mgl32.Vec3{-0.5, 0.5, 0.5})
	assert.Equal(t, 6, m.Faces())

	// Viewer at x=0.5 scans [-16, 15]; -16 sits on the edge.
	assert.Equal(t, 6, BuildFaceMeshAt(src, mgl32.Vec3{0.5, 0.5, 0.5}).Faces())

	// Viewer at x=1.5 scans [-15, 16]; -16 is outside.
	assert.Zero(t, BuildFaceMeshAt(src, mgl32.Vec3{1.5, 0.5, 0.5}).Faces())
}
