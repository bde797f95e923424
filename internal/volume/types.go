package volume

import "github.com/ehrlich-b/puzzlebox/internal/geometry"

// blockInPuzzle is a lightweight index into the rotation table plus a
// placement position — the stack and the state array both hold this triple
// rather than a full block copy, so removal on backtrack is symbolic.
type blockInPuzzle struct {
	blockID  int
	rotID    int
	position int
}

// StackEntry is the external-collaborator-facing snapshot of one placed
// block: its rotated geometry (for dimensions and face labels), its
// original block index (for coloring), and the integer coordinates of its
// low corner.
type StackEntry struct {
	Block   geometry.Block
	BlockID int
	X, Y, Z int
}
