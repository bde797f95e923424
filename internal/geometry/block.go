package geometry

// Block is a rectangular cuboid with a labeled face on each of its six
// sides. Height >= Width >= Depth for the blocks in the puzzle inventory,
// though rotated variants need not preserve that ordering among
// themselves — only the canonical Faces ordering is an invariant.
//
// Faces is always ordered [Front, Back, Left, Right, Top, Bottom];
// rotation re-sorts into this order after relabeling directions.
type Block struct {
	Height int
	Width  int
	Depth  int
	Faces  [6]Face
	Label  string
}

// FaceAt returns the face pointing in direction d.
func (b Block) FaceAt(d Direction) Face {
	return b.Faces[faceIndexOf(d)]
}

// OppositeFaceAt returns the face opposite direction d.
func (b Block) OppositeFaceAt(d Direction) Face {
	return b.Faces[oppositeIndexOf(d)]
}

// OppositeFace returns the face on the opposite side of the block from f,
// looking f's owning block up in inventory by f.Block. Mirrors
// `Face::opposite` in the original Rust source, which resolves through a
// static BLOCKS table the same way.
func OppositeFace(inventory []Block, f Face) Face {
	return inventory[f.Block].OppositeFaceAt(f.Dir)
}
