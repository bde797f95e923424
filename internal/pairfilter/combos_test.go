package pairfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

func TestCombinationsToNFindsExactTilingSum(t *testing.T) {
	faces := []geometry.Face{
		{Value: 5, Long: 2, Short: 1, Block: 0, Dir: geometry.Front},
		{Value: 7, Long: 2, Short: 1, Block: 1, Dir: geometry.Front},
		{Value: 100, Long: 2, Short: 2, Block: 2, Dir: geometry.Front}, // too big, must not be chosen
	}

	got := CombinationsToN(faces, 2, 2, 12)

	assert.Len(t, got, 1)
	assert.ElementsMatch(t, []geometry.Face{faces[0], faces[1]}, got[0])
}

func TestCombinationsToNExcludesOverTargetSums(t *testing.T) {
	faces := []geometry.Face{
		{Value: 50, Long: 2, Short: 1, Block: 0, Dir: geometry.Front},
		{Value: 60, Long: 2, Short: 1, Block: 1, Dir: geometry.Front},
	}

	got := CombinationsToN(faces, 2, 2, 12)

	assert.Empty(t, got)
}
