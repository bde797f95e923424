package dodeca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToDone(s *Solver) {
	for !s.Done() && s.Step() {
	}
}

func TestDefaultPentagonsAdmitsASolution(t *testing.T) {
	s := New(DefaultPentagons())
	runToDone(s)

	assert.NotEmpty(t, s.solutions, "expected at least one solution for the default inventory")
}

func TestEveryCompletedTriangleSumsTo96(t *testing.T) {
	s := New(DefaultPentagons())
	runToDone(s)
	require.NotEmpty(t, s.solutions)

	for _, sol := range s.solutions {
		facetVals := s.facetsFromSolution(sol)
		for _, fs := range triToFacets {
			sum := facetVals[fs[0]] + facetVals[fs[1]] + facetVals[fs[2]]
			assert.Equal(t, TargetTriangleSum, sum)
		}
	}
}

func TestRotatedLabelsFiveSingleRotationsRestoreOriginal(t *testing.T) {
	labels := [5]int{1, 2, 3, 4, 5}
	got := labels
	for r := 0; r < 5; r++ {
		got = rotatedLabels(got, 1)
	}
	assert.Equal(t, labels, got)
}

func TestStackAndRemPartitionPentagonCount(t *testing.T) {
	s := New(DefaultPentagons())

	for i := 0; i < 5 && !s.Done(); i++ {
		assert.Equal(t, PentagonCount, len(s.stack)+len(s.rem))
		s.Step()
	}
}

func TestPlaceRejectsAlreadyFilledFacet(t *testing.T) {
	s := New(DefaultPentagons())
	// Slot 0 was filled by the seed placement; placing any other pentagon
	// there again must fail even before any triangle check runs.
	ok := s.place(1, 0, 0)
	assert.False(t, ok)
}
