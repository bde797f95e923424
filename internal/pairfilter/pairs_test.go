package pairfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

func TestMatchCombosInPairsRejectsSharedBlockViaNonOppositeFaces(t *testing.T) {
	combos := [][]geometry.Face{
		{{Value: 1, Long: 1, Short: 1, Block: 0, Dir: geometry.Front}},
		{{Value: 1, Long: 1, Short: 1, Block: 0, Dir: geometry.Left}}, // same block, not opposite Front
	}

	pairs := MatchCombosInPairs(combos, geometry.Height, geometry.Width)

	for _, p := range pairs {
		assert.NotEqual(t, combos[0][0], p.Side0[0])
	}
}

func TestMatchCombosInPairsAllowsDisjointBlocks(t *testing.T) {
	combos := [][]geometry.Face{
		{{Value: 1, Long: 1, Short: 1, Block: 0, Dir: geometry.Front}},
		{{Value: 1, Long: 1, Short: 1, Block: 1, Dir: geometry.Front}},
	}

	pairs := MatchCombosInPairs(combos, geometry.Height, geometry.Width)

	assert.NotEmpty(t, pairs)
}

func TestBlockSpansAxisComparesAgainstPuzzleDimension(t *testing.T) {
	// block 0 ("bigger_chunk") has Width 6, far short of the puzzle's
	// Width (11), so it cannot span the AreaM axis via Left/Right.
	assert.False(t, blockSpansAxis(0, geometry.AreaM, geometry.Left))
}
