package meshing

import (
	"blockworld/internal/profiling"
	"blockworld/internal/registry"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz + uv.st + tint.rgba)
const VertexStride = 9

// ScanRadius is the half-width of the cubic region scanned around the viewer.
const (
	ScanRadiusX = world.ChunkSizeX
	ScanRadiusY = world.ChunkSizeY
	ScanRadiusZ = world.ChunkSizeZ
)

// Vertex is one interleaved vertex of the block mesh.
type Vertex struct {
	Pos   [3]float32
	UV    [2]float32
	Color [4]float32
}

// Mesh is a flat triangle list ready for upload.
type Mesh struct {
	Vertices    []float32
	VertexCount int
}

// Faces returns the number of quads in the mesh.
func (m Mesh) Faces() int {
	return m.VertexCount / 6
}

var white = [4]float32{1, 1, 1, 1}

// Corner offsets for every face, counter-clockwise when viewed from outside the
// block. Texture coordinates run (0,0) (1,0) (1,1) (0,1) in the same order.
var faceCorners = [6][4][3]float32{
	world.FaceLeft:   {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	world.FaceRight:  {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	world.FaceTop:    {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	world.FaceBottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	world.FaceFront:  {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	world.FaceBack:   {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
}

var cornerUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// appendQuad pushes two triangles (v0,v1,v2) and (v2,v3,v0).
func appendQuad(dst []float32, q [4]Vertex) []float32 {
	for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
		v := q[i]
		dst = append(dst,
			v.Pos[0], v.Pos[1], v.Pos[2],
			v.UV[0], v.UV[1],
			v.Color[0], v.Color[1], v.Color[2], v.Color[3],
		)
	}
	return dst
}

func faceQuad(face world.BlockFace, x, y, z int) [4]Vertex {
	var q [4]Vertex
	for i, c := range faceCorners[face] {
		q[i] = Vertex{
			Pos:   [3]float32{float32(x) + c[0], float32(y) + c[1], float32(z) + c[2]},
			UV:    cornerUV[i],
			Color: white,
		}
	}
	return q
}

// BuildFaceMesh emits every visible face of render blocks in the cuboid
// [c-R, c+R) on each axis around block (cx, cy, cz).
//
// A face is visible when its neighbour is transparent or when the block sits on
// the scan boundary on that side, so the edge of the region is never left open.
func BuildFaceMesh(src world.BlockSource, cx, cy, cz int) Mesh {
	defer profiling.Track("meshing.BuildFaceMesh")()

	minX, maxX := cx-ScanRadiusX, cx+ScanRadiusX-1
	minY, maxY := cy-ScanRadiusY, cy+ScanRadiusY-1
	minZ, maxZ := cz-ScanRadiusZ, cz+ScanRadiusZ-1

	vertices := make([]float32, 0, 4096)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !registry.IsRender(src.GetBlock(x, y, z)) {
					continue
				}

				onEdge := [6]bool{
					world.FaceLeft:   x == minX,
					world.FaceRight:  x == maxX,
					world.FaceTop:    y == maxY,
					world.FaceBottom: y == minY,
					world.FaceFront:  z == maxZ,
					world.FaceBack:   z == minZ,
				}

				for _, face := range world.Faces {
					if !onEdge[face] {
						dx, dy, dz := face.Offset()
						if !registry.IsTransparent(src.GetBlock(x+dx, y+dy, z+dz)) {
							continue
						}
					}
					vertices = appendQuad(vertices, faceQuad(face, x, y, z))
				}
			}
		}
	}

	return Mesh{
		Vertices:    vertices,
		VertexCount: len(vertices) / VertexStride,
	}
}

// BuildFaceMeshAt centres the scan on the block containing pos.
func BuildFaceMeshAt(src world.BlockSource, pos mgl32.Vec3) Mesh {
	return BuildFaceMesh(src,
		world.BlockCoord(pos.X()),
		world.BlockCoord(pos.Y()),
		world.BlockCoord(pos.Z()))
}
