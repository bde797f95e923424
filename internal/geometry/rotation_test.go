package geometry

import "testing"

func testCube() Block {
	return Block{
		Height: 3, Width: 2, Depth: 1,
		Faces: [6]Face{
			{Value: 10, Long: 3, Short: 2, Dir: Front},
			{Value: 11, Long: 3, Short: 2, Dir: Back},
			{Value: 12, Long: 3, Short: 1, Dir: Left},
			{Value: 13, Long: 3, Short: 1, Dir: Right},
			{Value: 14, Long: 2, Short: 1, Dir: Top},
			{Value: 15, Long: 2, Short: 1, Dir: Bottom},
		},
	}
}

func TestRotBlockFourTimesAboutSameAxisRestoresOriginal(t *testing.T) {
	block := testCube()
	got := block
	for i := 0; i < 4; i++ {
		got = RotBlock(Top, got)
	}
	if got.Height != block.Height || got.Width != block.Width || got.Depth != block.Depth {
		t.Fatalf("dims = %dx%dx%d, want %dx%dx%d", got.Height, got.Width, got.Depth, block.Height, block.Width, block.Depth)
	}
	for _, d := range []Direction{Front, Back, Left, Right, Top, Bottom} {
		if got.FaceAt(d).Value != block.FaceAt(d).Value {
			t.Errorf("face %s value = %d, want %d", d, got.FaceAt(d).Value, block.FaceAt(d).Value)
		}
	}
}

func TestRotFacesKeepsCanonicalOrder(t *testing.T) {
	block := testCube()
	rotated := RotFaces(Front, block.Faces)
	want := []Direction{Front, Back, Left, Right, Top, Bottom}
	for i, f := range rotated {
		if f.Dir != want[i] {
			t.Errorf("rotated[%d].Dir = %s, want %s", i, f.Dir, want[i])
		}
	}
}

func TestAllRotationsProduces24Entries(t *testing.T) {
	block := testCube()
	rots := AllRotations(block)
	if len(rots) != 24 {
		t.Fatalf("len(rots) = %d, want 24", len(rots))
	}
}

func TestShapeRotationsDedupesCube(t *testing.T) {
	cube := Block{
		Height: 2, Width: 2, Depth: 2,
		Faces: [6]Face{
			{Dir: Front}, {Dir: Back}, {Dir: Left}, {Dir: Right}, {Dir: Top}, {Dir: Bottom},
		},
	}
	rots := ShapeRotations(cube)
	if len(rots) != 1 {
		t.Errorf("len(rots) = %d, want 1 for a dimensionally-symmetric cube", len(rots))
	}
}

func TestShapeRotationsDistinctBox(t *testing.T) {
	block := testCube() // 3x2x1, all dimensions distinct
	rots := ShapeRotations(block)
	if len(rots) != 6 {
		t.Errorf("len(rots) = %d, want 6 for a box with three distinct dimensions", len(rots))
	}
}
