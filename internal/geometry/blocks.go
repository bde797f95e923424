package geometry

// BlockCount is the number of blocks making up the puzzle.
const BlockCount = 9

// Puzzle cuboid dimensions.
const (
	Height = 12
	Width  = 11
	Depth  = 9
)

// Face-area classes of the puzzle's three distinct outer-face shapes.
const (
	AreaL = Height * Width // 132
	AreaM = Height * Depth // 108
	AreaS = Width * Depth  // 99
)

// TargetFaceSum is the required sum of visible face values on each of the
// six outer faces of the assembled puzzle.
const TargetFaceSum = 100

// Blocks is the fixed inventory of nine blocks that make up the puzzle,
// reproduced bit-exactly from the original source's BLOCKS table.
var Blocks = [BlockCount]Block{
	{
		Height: 9, Width: 6, Depth: 5,
		Label: "bigger_chunk",
		Faces: [6]Face{
			{Value: 43, Long: 9, Short: 6, Block: 0, Dir: Front},
			{Value: 18, Long: 9, Short: 6, Block: 0, Dir: Back},
			{Value: 7, Long: 9, Short: 5, Block: 0, Dir: Left},
			{Value: 47, Long: 9, Short: 5, Block: 0, Dir: Right},
			{Value: 36, Long: 6, Short: 5, Block: 0, Dir: Top},
			{Value: 14, Long: 6, Short: 5, Block: 0, Dir: Bottom},
		},
	},
	{
		Height: 9, Width: 6, Depth: 3,
		Label: "thinner_chunk",
		Faces: [6]Face{
			{Value: 34, Long: 9, Short: 6, Block: 1, Dir: Front},
			{Value: 31, Long: 9, Short: 6, Block: 1, Dir: Back},
			{Value: 41, Long: 9, Short: 3, Block: 1, Dir: Left},
			{Value: 24, Long: 9, Short: 3, Block: 1, Dir: Right},
			{Value: 16, Long: 6, Short: 3, Block: 1, Dir: Top},
			{Value: 33, Long: 6, Short: 3, Block: 1, Dir: Bottom},
		},
	},
	{
		Height: 9, Width: 5, Depth: 5,
		Label: "square_chunk",
		Faces: [6]Face{
			{Value: 38, Long: 9, Short: 5, Block: 2, Dir: Front},
			{Value: 53, Long: 9, Short: 5, Block: 2, Dir: Back},
			{Value: 8, Long: 9, Short: 5, Block: 2, Dir: Left},
			{Value: 44, Long: 9, Short: 5, Block: 2, Dir: Right},
			{Value: 30, Long: 5, Short: 5, Block: 2, Dir: Top},
			{Value: 22, Long: 5, Short: 5, Block: 2, Dir: Bottom},
		},
	},
	{
		Height: 9, Width: 4, Depth: 3,
		Label: "small_chunk",
		Faces: [6]Face{
			{Value: 49, Long: 9, Short: 4, Block: 3, Dir: Front},
			{Value: 15, Long: 9, Short: 4, Block: 3, Dir: Back},
			{Value: 27, Long: 9, Short: 3, Block: 3, Dir: Left},
			{Value: 9, Long: 9, Short: 3, Block: 3, Dir: Right},
			{Value: 3, Long: 4, Short: 3, Block: 3, Dir: Top},
			{Value: 54, Long: 4, Short: 3, Block: 3, Dir: Bottom},
		},
	},
	{
		Height: 9, Width: 4, Depth: 2,
		Label: "smaller_chunk",
		Faces: [6]Face{
			{Value: 29, Long: 9, Short: 4, Block: 4, Dir: Front},
			{Value: 11, Long: 9, Short: 4, Block: 4, Dir: Back},
			{Value: 48, Long: 9, Short: 2, Block: 4, Dir: Left},
			{Value: 37, Long: 9, Short: 2, Block: 4, Dir: Right},
			{Value: 45, Long: 4, Short: 2, Block: 4, Dir: Top},
			{Value: 51, Long: 4, Short: 2, Block: 4, Dir: Bottom},
		},
	},
	{
		Height: 6, Width: 5, Depth: 4,
		Label: "big_brick",
		Faces: [6]Face{
			{Value: 6, Long: 6, Short: 5, Block: 5, Dir: Front},
			{Value: 23, Long: 6, Short: 5, Block: 5, Dir: Back},
			{Value: 4, Long: 6, Short: 4, Block: 5, Dir: Left},
			{Value: 50, Long: 6, Short: 4, Block: 5, Dir: Right},
			{Value: 19, Long: 5, Short: 4, Block: 5, Dir: Top},
			{Value: 32, Long: 5, Short: 4, Block: 5, Dir: Bottom},
		},
	},
	{
		Height: 6, Width: 4, Depth: 4,
		Label: "long_square",
		Faces: [6]Face{
			{Value: 1, Long: 6, Short: 4, Block: 6, Dir: Front},
			{Value: 40, Long: 6, Short: 4, Block: 6, Dir: Back},
			{Value: 13, Long: 6, Short: 4, Block: 6, Dir: Left},
			{Value: 25, Long: 6, Short: 4, Block: 6, Dir: Right},
			{Value: 52, Long: 4, Short: 4, Block: 6, Dir: Top},
			{Value: 46, Long: 4, Short: 4, Block: 6, Dir: Bottom},
		},
	},
	{
		Height: 5, Width: 5, Depth: 3,
		Label: "short_square",
		Faces: [6]Face{
			{Value: 10, Long: 5, Short: 5, Block: 7, Dir: Front},
			{Value: 20, Long: 5, Short: 5, Block: 7, Dir: Back},
			{Value: 28, Long: 5, Short: 3, Block: 7, Dir: Left},
			{Value: 35, Long: 5, Short: 3, Block: 7, Dir: Right},
			{Value: 5, Long: 5, Short: 3, Block: 7, Dir: Top},
			{Value: 17, Long: 5, Short: 3, Block: 7, Dir: Bottom},
		},
	},
	{
		Height: 5, Width: 4, Depth: 3,
		Label: "small_brick",
		Faces: [6]Face{
			{Value: 39, Long: 5, Short: 4, Block: 8, Dir: Front},
			{Value: 42, Long: 5, Short: 4, Block: 8, Dir: Back},
			{Value: 21, Long: 5, Short: 3, Block: 8, Dir: Left},
			{Value: 2, Long: 5, Short: 3, Block: 8, Dir: Right},
			{Value: 26, Long: 4, Short: 3, Block: 8, Dir: Top},
			{Value: 12, Long: 4, Short: 3, Block: 8, Dir: Bottom},
		},
	},
}

// AllFaces flattens the inventory's faces in block order, for use by the
// pair-filter's combination search.
func AllFaces() []Face {
	faces := make([]Face, 0, BlockCount*6)
	for _, b := range Blocks {
		faces = append(faces, b.Faces[:]...)
	}
	return faces
}
