package volume

import (
	"testing"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

func testBlock2x1x1(label string) geometry.Block {
	return geometry.Block{
		Height: 2, Width: 1, Depth: 1,
		Label: label,
		Faces: [6]geometry.Face{
			{Value: 2, Long: 2, Short: 1, Block: 1, Dir: geometry.Front},
			{Value: 2, Long: 2, Short: 1, Block: 1, Dir: geometry.Back},
			{Value: 2, Long: 2, Short: 1, Block: 1, Dir: geometry.Left},
			{Value: 2, Long: 2, Short: 1, Block: 1, Dir: geometry.Right},
			{Value: 1, Long: 1, Short: 1, Block: 1, Dir: geometry.Top},
			{Value: 1, Long: 1, Short: 1, Block: 1, Dir: geometry.Bottom},
		},
	}
}

func runToDone(s *Solver) {
	for !s.Done() && s.Step() {
	}
}

func TestSolveTwo2x1x1InTwoByTwoByOneShapeOnly(t *testing.T) {
	inventory := []geometry.Block{testBlock2x1x1("A"), testBlock2x1x1("B")}
	s := newWithInventory(inventory, 2, 2, 1, true)
	runToDone(s)

	if got := len(s.solutions); got != 4 {
		t.Errorf("solutions = %d, want 4", got)
	}
}

func TestSolveFour2x1x1InTwoByTwoByTwoShapeOnly(t *testing.T) {
	inventory := []geometry.Block{
		testBlock2x1x1("A"), testBlock2x1x1("B"),
		testBlock2x1x1("C"), testBlock2x1x1("D"),
	}
	s := newWithInventory(inventory, 2, 2, 2, true)
	runToDone(s)

	if got := len(s.solutions); got != 216 {
		t.Errorf("solutions = %d, want 216", got)
	}
}

func TestSolveLabeledToyToTargetTwelve(t *testing.T) {
	blockA := geometry.Block{
		Height: 2, Width: 1, Depth: 1, Label: "A",
		Faces: [6]geometry.Face{
			{Value: 9, Long: 2, Short: 1, Block: 0, Dir: geometry.Front},
			{Value: 8, Long: 2, Short: 1, Block: 0, Dir: geometry.Back},
			{Value: 12, Long: 2, Short: 1, Block: 0, Dir: geometry.Left},
			{Value: 14, Long: 2, Short: 1, Block: 0, Dir: geometry.Right},
			{Value: 6, Long: 1, Short: 1, Block: 0, Dir: geometry.Top},
			{Value: 7, Long: 1, Short: 1, Block: 0, Dir: geometry.Bottom},
		},
	}
	blockB := geometry.Block{
		Height: 2, Width: 1, Depth: 1, Label: "B",
		Faces: [6]geometry.Face{
			{Value: 3, Long: 2, Short: 1, Block: 1, Dir: geometry.Front},
			{Value: 4, Long: 2, Short: 1, Block: 1, Dir: geometry.Back},
			{Value: 13, Long: 2, Short: 1, Block: 1, Dir: geometry.Left},
			{Value: 12, Long: 2, Short: 1, Block: 1, Dir: geometry.Right},
			{Value: 6, Long: 1, Short: 1, Block: 1, Dir: geometry.Top},
			{Value: 5, Long: 1, Short: 1, Block: 1, Dir: geometry.Bottom},
		},
	}

	s := newLabeledWithInventory([]geometry.Block{blockA, blockB}, 2, 2, 1, 12)
	runToDone(s)

	if got := len(s.solutions); got != 8 {
		t.Errorf("solutions = %d, want 8", got)
	}
}

func TestAllRotationsProduces24DistinctBlocks(t *testing.T) {
	block := geometry.Block{
		Height: 3, Width: 2, Depth: 1,
		Faces: [6]geometry.Face{
			{Value: 0, Long: 3, Short: 2, Dir: geometry.Front},
			{Value: 1, Long: 3, Short: 2, Dir: geometry.Back},
			{Value: 2, Long: 3, Short: 1, Dir: geometry.Left},
			{Value: 3, Long: 3, Short: 1, Dir: geometry.Right},
			{Value: 4, Long: 2, Short: 1, Dir: geometry.Top},
			{Value: 5, Long: 2, Short: 1, Dir: geometry.Bottom},
		},
	}

	rots := geometry.AllRotations(block)
	if len(rots) != 24 {
		t.Fatalf("len(rots) = %d, want 24", len(rots))
	}

	distinct := make(map[string]bool)
	for _, r := range rots {
		distinct[blockSignature(r)] = true
	}
	if len(distinct) != 24 {
		t.Errorf("distinct rotations = %d, want 24", len(distinct))
	}
}

func blockSignature(b geometry.Block) string {
	s := ""
	for _, f := range b.Faces {
		s += string(rune('a'+int(f.Dir))) + itoa(f.Value) + ","
	}
	return itoa(b.Height) + "x" + itoa(b.Width) + "x" + itoa(b.Depth) + "|" + s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestStackAndRemPartitionBlockCount(t *testing.T) {
	inventory := []geometry.Block{testBlock2x1x1("A"), testBlock2x1x1("B")}
	s := newWithInventory(inventory, 2, 2, 1, true)

	for i := 0; i < 5 && !s.Done(); i++ {
		if len(s.stack)+len(s.rem) != s.blockCount() {
			t.Fatalf("|stack|+|rem| = %d, want %d", len(s.stack)+len(s.rem), s.blockCount())
		}
		s.Step()
	}
}
