package pairfilter

import "github.com/ehrlich-b/puzzlebox/internal/geometry"

// FacePair is a candidate assignment of two face combinations to opposite
// sides of the puzzle for one area class.
type FacePair struct {
	Side0 []geometry.Face
	Side1 []geometry.Face
}

// MatchCombosInPairs takes combinations pairwise as candidate opposite
// sides for a puzzle-face pair of the given long x short dimensions.
// Rejects a pair when its two combinations share a block via non-opposite
// faces, or when they share a block via opposite faces but that block
// lacks the dimension needed to span the puzzle along the axis
// perpendicular to this area class. Combinations containing a face too
// large to fit the target are skipped entirely.
func MatchCombosInPairs(combos [][]geometry.Face, long, short int) []FacePair {
	area := long * short

	var pairs []FacePair

	for i := 0; i < len(combos); i++ {
		solA := combos[i]

		tooBig := false
		for _, faceA := range solA {
			if faceA.Long > long || faceA.Short > short {
				tooBig = true
				break
			}
		}
		if tooBig {
			continue
		}

	roger:
		for _, solB := range combos[i:] {
			for _, faceB := range solB {
				if faceB.Long > long || faceB.Short > short {
					continue roger
				}
			}
			for _, faceA := range solA {
				for _, faceB := range solB {
					if faceA.Block != faceB.Block {
						continue
					}
					if faceA.Dir.Opposite() != faceB.Dir {
						// share a block via non-opposite faces: reject
						continue roger
					}
					if !blockSpansAxis(faceA.Block, area, faceA.Dir) {
						continue roger
					}
				}
			}
			pairs = append(pairs, FacePair{Side0: solA, Side1: solB})
		}
	}

	return pairs
}

// blockSpansAxis reports whether the block sharing a pair via opposite
// faces on direction dir has the dimension required to span the puzzle
// along the axis perpendicular to area class area.
func blockSpansAxis(blockIdx int, area int, dir geometry.Direction) bool {
	block := geometry.Blocks[blockIdx]

	var want int
	switch area {
	case geometry.AreaL:
		want = geometry.Depth
	case geometry.AreaM:
		want = geometry.Width
	case geometry.AreaS:
		want = geometry.Height
	}

	var dim int
	switch dir {
	case geometry.Front, geometry.Back:
		dim = block.Depth
	case geometry.Left, geometry.Right:
		dim = block.Width
	case geometry.Top, geometry.Bottom:
		dim = block.Height
	}

	return dim == want
}
