package registry

import (
	"fmt"
	"sort"

	"blockworld/internal/world"
)

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID   world.BlockType
	Name string
	Code rune // single-character external code

	Render      bool // participates in mesh extraction
	Transparent bool // does not occlude neighbouring faces
	Collidable  bool // participates in collision queries
}

var (
	blocks = make(map[world.BlockType]*BlockDefinition)
	codes  = make(map[rune]world.BlockType)
)

// register is only called from init; the table is read-only afterwards.
func register(def BlockDefinition) {
	if _, dup := blocks[def.ID]; dup {
		panic(fmt.Sprintf("registry: duplicate block id %d", def.ID))
	}
	if _, dup := codes[def.Code]; dup {
		panic(fmt.Sprintf("registry: duplicate block code %q", def.Code))
	}
	d := def
	blocks[def.ID] = &d
	codes[def.Code] = def.ID
}

func init() {
	register(BlockDefinition{
		ID:          world.BlockTypeAir,
		Name:        "air",
		Code:        ' ',
		Render:      false,
		Transparent: true,
		Collidable:  false,
	})
	register(BlockDefinition{
		ID:          world.BlockTypeDirt,
		Name:        "dirt",
		Code:        'd',
		Render:      true,
		Transparent: false,
		Collidable:  true,
	})
	// Glass lets neighbouring faces show through but still blocks movement.
	register(BlockDefinition{
		ID:          world.BlockTypeGlass,
		Name:        "glass",
		Code:        'g',
		Render:      true,
		Transparent: true,
		Collidable:  true,
	})
}

// Get returns the definition of bt. Unknown types resolve to air.
func Get(bt world.BlockType) BlockDefinition {
	if def, ok := blocks[bt]; ok {
		return *def
	}
	return *blocks[world.BlockTypeAir]
}

// ByCode resolves a single-character external code.
func ByCode(code rune) (world.BlockType, bool) {
	bt, ok := codes[code]
	return bt, ok
}

// All returns every registered definition ordered by ID.
func All() []BlockDefinition {
	out := make([]BlockDefinition, 0, len(blocks))
	for _, def := range blocks {
		out = append(out, *def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func IsRender(bt world.BlockType) bool      { return Get(bt).Render }
func IsTransparent(bt world.BlockType) bool { return Get(bt).Transparent }
func IsCollidable(bt world.BlockType) bool  { return Get(bt).Collidable }
