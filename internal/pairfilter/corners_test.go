package pairfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

// cubeFace builds a minimal face for a single synthetic block, sharing
// geometry.Blocks[0]'s index so geometry.OppositeFace resolves a
// structurally valid opposite direction.
func cubeFace(dir geometry.Direction) geometry.Face {
	return geometry.Face{Block: 0, Dir: dir}
}

func TestCompatibleSixComboAcceptsConsistentCubeCorners(t *testing.T) {
	pairS := FacePair{
		Side0: []geometry.Face{cubeFace(geometry.Top)},
		Side1: []geometry.Face{cubeFace(geometry.Bottom)},
	}
	pairM := FacePair{
		Side0: []geometry.Face{cubeFace(geometry.Left)},
		Side1: []geometry.Face{cubeFace(geometry.Right)},
	}
	pairL := FacePair{
		Side0: []geometry.Face{cubeFace(geometry.Front)},
		Side1: []geometry.Face{cubeFace(geometry.Back)},
	}

	assert.True(t, CompatibleSixCombo(pairS, pairM, pairL))
}

func TestFindCornerRejectsOppositeFaceTriples(t *testing.T) {
	facesS := []geometry.Face{cubeFace(geometry.Top)}
	facesM := []geometry.Face{cubeFace(geometry.Bottom)} // opposite of Top: not a corner
	facesL := []geometry.Face{cubeFace(geometry.Front)}

	_, ok := findCorner(facesS, facesM, facesL)
	require.False(t, ok)
}

func TestPropagateDetectsContradiction(t *testing.T) {
	cons := constraints{}
	cons[keyOf(cubeFace(geometry.Top))] = geometry.Top

	_, ok := propagate(cons, []faceGroup{
		{faces: []geometry.Face{cubeFace(geometry.Top)}, dir: geometry.Left},
	})

	assert.False(t, ok, "assigning a second, conflicting direction to an already-constrained face must fail")
}
