// Package pairfilter enumerates and validates candidate opposite-puzzle-face
// compositions for the labeled volumetric solver: which subsets of block
// faces can tile a given puzzle face and sum to the target, which such
// subsets can be paired as opposite sides, and which combinations of the
// three area-class pairs admit a globally consistent corner labeling.
package pairfilter

import (
	"github.com/ehrlich-b/puzzlebox/internal/geometry"
	"github.com/ehrlich-b/puzzlebox/internal/tiler"
)

// CombinationsToN enumerates subsets of faces such that: no two faces share
// a block, the summed area equals long*short, the summed value equals n,
// and the faces tile the long x short rectangle.
//
// Built breadth-first: grow one candidate subset by one face at a time,
// pruning as soon as the summed area exceeds the target area or the summed
// value exceeds n. This mirrors combinations_to_n in the original solver.
func CombinationsToN(faces []geometry.Face, long, short, n int) [][]geometry.Face {
	area := long * short

	type candidate struct {
		chosen []geometry.Face
		remain []geometry.Face
	}

	var solutions [][]geometry.Face
	candidates := []candidate{{chosen: nil, remain: faces}}

	for len(candidates) > 0 {
		var next []candidate
		for _, c := range candidates {
			for i := range c.remain {
				chosen := append(append([]geometry.Face(nil), c.chosen...), c.remain[i])

				forbidden := make(map[int]bool, len(chosen))
				for _, f := range chosen {
					forbidden[f.Block] = true
				}
				var rem []geometry.Face
				for _, f := range c.remain[i+1:] {
					if !forbidden[f.Block] {
						rem = append(rem, f)
					}
				}

				currentArea := 0
				for _, f := range chosen {
					currentArea += f.Area()
				}
				if currentArea > area {
					continue
				}

				sum := 0
				for _, f := range chosen {
					sum += f.Value
				}

				if sum == n && currentArea == area && formsRectangle(long, short, chosen) {
					solutions = append(solutions, chosen)
				} else if sum < n {
					next = append(next, candidate{chosen: chosen, remain: rem})
				}
			}
		}
		candidates = next
	}
	return solutions
}

func formsRectangle(long, short int, faces []geometry.Face) bool {
	rects := make([]tiler.Rect, len(faces))
	for i, f := range faces {
		rects[i] = tiler.Rect{Long: f.Long, Short: f.Short, Value: f.Value}
	}
	return tiler.TilesRectangle(long, short, rects)
}
