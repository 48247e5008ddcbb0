package world

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeGlass
)

// BlockSource is the read primitive shared by the mesher and the collision resolver.
type BlockSource interface {
	GetBlock(x, y, z int) BlockType
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceLeft   BlockFace = iota // -X
	FaceRight                   // +X
	FaceTop                     // +Y
	FaceBottom                  // -Y
	FaceFront                   // +Z
	FaceBack                    // -Z
)

// Faces lists every face in emission order.
var Faces = [6]BlockFace{FaceLeft, FaceRight, FaceTop, FaceBottom, FaceFront, FaceBack}

// Offset returns the unit step towards the neighbour sharing this face.
func (f BlockFace) Offset() (dx, dy, dz int) {
	switch f {
	case FaceLeft:
		return -1, 0, 0
	case FaceRight:
		return 1, 0, 0
	case FaceTop:
		return 0, 1, 0
	case FaceBottom:
		return 0, -1, 0
	case FaceFront:
		return 0, 0, 1
	case FaceBack:
		return 0, 0, -1
	default:
		return 0, 0, 0
	}
}

func (f BlockFace) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return "unknown"
	}
}
