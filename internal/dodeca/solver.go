package dodeca

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ehrlich-b/puzzlebox/internal/obslog"
)

// Solver is a stateful, single-threaded, stepwise DFS placing twelve
// pentagons onto the twelve structural slots of a dodecahedron, pruning
// whenever a completed icosahedral triangle would not sum to
// TargetTriangleSum.
type Solver struct {
	pentagons [][5]int

	facets [FacetCount]int
	stack  []placement
	rem    map[int]bool

	done      bool
	solutions map[string][]placement
}

// New builds a solver over the given twelve-pentagon inventory, seeding it
// by placing pentagon 0 at rotation 0 in slot 0 before returning — this
// fixes the dodecahedron's orientation, factoring out the sixty rotational
// duplicates of an unconstrained seed.
func New(pentagons [PentagonCount][5]int) *Solver {
	s := &Solver{
		pentagons: make([][5]int, PentagonCount),
		rem:       make(map[int]bool, PentagonCount),
		solutions: make(map[string][]placement),
	}
	copy(s.pentagons, pentagons[:])
	for i := range s.pentagons {
		s.rem[i] = true
	}

	s.deeper(0, 0)
	return s
}

// Stack returns the current placement, in placement order.
func (s *Solver) Stack() []StackEntry {
	entries := make([]StackEntry, len(s.stack))
	for i, p := range s.stack {
		entries[i] = StackEntry{
			PentagonID: p.pentagonID,
			Rotation:   p.rotation,
			Slot:       p.slot,
			Labels:     rotatedLabels(s.pentagons[p.pentagonID], p.rotation),
		}
	}
	return entries
}

// Solutions returns the accumulated complete solutions, formatted as the
// twenty triangle sums of the fully labeled facet array. Iteration order is
// unspecified.
func (s *Solver) Solutions() []string {
	out := make([]string, 0, len(s.solutions))
	for _, sol := range s.solutions {
		out = append(out, printTriangles(s.facetsFromSolution(sol)))
	}
	return out
}

func (s *Solver) facetsFromSolution(sol []placement) [FacetCount]int {
	var f [FacetCount]int
	for _, p := range sol {
		labels := rotatedLabels(s.pentagons[p.pentagonID], p.rotation)
		for c := 0; c < 5; c++ {
			f[5*p.slot+c] = labels[c]
		}
	}
	return f
}

// Done reports whether the search is exhausted.
func (s *Solver) Done() bool {
	return s.done
}

// StepToSolution repeatedly steps until either a new complete placement is
// reached (true) or the search is exhausted (false).
func (s *Solver) StepToSolution() bool {
	for s.Step() {
		if len(s.stack) == PentagonCount {
			return true
		}
	}
	return false
}

// Step advances one search edge: go deeper if possible, else move sideways
// or backtrack until a sideways move is found or the stack empties.
func (s *Solver) Step() bool {
	obslog.Log.Trace().Msg("step")
	if len(s.rem) > 0 {
		rem := s.sortedRem()
		slot := len(s.stack)
		for _, pentagonID := range rem {
			for r := 0; r < 5; r++ {
				if s.place(pentagonID, r, slot) {
					s.commitDeeper(pentagonID, r, slot)
					return true
				}
			}
		}
	}

	for {
		if s.moveSidewayOrBacktrack() {
			return true
		}
		if len(s.stack) == 0 {
			break
		}
	}
	s.done = true
	return false
}

func (s *Solver) sortedRem() []int {
	ids := make([]int, 0, len(s.rem))
	for id := range s.rem {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Solver) moveSidewayOrBacktrack() bool {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.undo(top)
	s.rem[top.pentagonID] = true
	obslog.Log.Trace().Int("pentagon", top.pentagonID).Int("slot", top.slot).Msg("backtrack")

	// The seed placement fixes the orientation: once it is popped, the
	// search is exhausted rather than retrying slot 0.
	if len(s.stack) == 0 {
		return false
	}

	for r := top.rotation + 1; r < 5; r++ {
		if s.place(top.pentagonID, r, top.slot) {
			s.commitDeeper(top.pentagonID, r, top.slot)
			obslog.Log.Trace().Int("pentagon", top.pentagonID).Int("rotation", r).Msg("sideway")
			return true
		}
	}
	for id := top.pentagonID + 1; id < len(s.pentagons); id++ {
		if !s.rem[id] {
			continue
		}
		for r := 0; r < 5; r++ {
			if s.place(id, r, top.slot) {
				s.commitDeeper(id, r, top.slot)
				obslog.Log.Trace().Int("pentagon", id).Int("rotation", r).Msg("sideway")
				return true
			}
		}
	}
	return false
}

func (s *Solver) deeper(pentagonID, rotation int) bool {
	slot := len(s.stack)
	if !s.place(pentagonID, rotation, slot) {
		return false
	}
	s.commitDeeper(pentagonID, rotation, slot)
	return true
}

func (s *Solver) commitDeeper(pentagonID, rotation, slot int) {
	obslog.Log.Trace().Int("pentagon", pentagonID).Int("rotation", rotation).Int("slot", slot).Msg("deeper")
	s.stack = append(s.stack, placement{pentagonID: pentagonID, rotation: rotation, slot: slot})
	delete(s.rem, pentagonID)

	if len(s.stack) == PentagonCount {
		key := solutionKey(s.facets)
		if _, exists := s.solutions[key]; !exists {
			sol := make([]placement, len(s.stack))
			copy(sol, s.stack)
			s.solutions[key] = sol
		}
		obslog.Log.Debug().Msg("solution found")
	}
}

// place attempts to write pentagon pentagonID, at rotation rot, into slot:
// every target facet must currently be zero, and every triangle that would
// become fully written must sum to TargetTriangleSum. Only after all five
// facets pass both checks are they written.
func (s *Solver) place(pentagonID, rot, slot int) bool {
	labels := rotatedLabels(s.pentagons[pentagonID], rot)

	for c := 0; c < 5; c++ {
		if s.facets[5*slot+c] != 0 {
			return false
		}
	}

	for c := 0; c < 5; c++ {
		f := 5*slot + c
		tri := facets[f].triangle
		sum := 0
		complete := true
		for _, of := range triToFacets[tri] {
			val := s.facets[of]
			if of == f {
				val = labels[c]
			}
			if val == 0 {
				complete = false
			}
			sum += val
		}
		if complete && sum != TargetTriangleSum {
			obslog.Log.Trace().Int("pentagon", pentagonID).Int("rotation", rot).Int("slot", slot).Int("triangle", tri).Msg("prune")
			return false
		}
	}

	for c := 0; c < 5; c++ {
		s.facets[5*slot+c] = labels[c]
	}
	return true
}

func (s *Solver) undo(p placement) {
	for c := 0; c < 5; c++ {
		s.facets[5*p.slot+c] = 0
	}
}

// rotatedLabels applies rotation rot to a pentagon's five labels: corner c
// receives labels[(c-rot+5)%5], matching the original tool's
// idx = base + (i+rot)%5 convention read the other way round.
func rotatedLabels(labels [5]int, rot int) [5]int {
	var out [5]int
	for c := 0; c < 5; c++ {
		out[c] = labels[(c-rot+5)%5]
	}
	return out
}

func solutionKey(facets [FacetCount]int) string {
	var sb strings.Builder
	for _, v := range facets {
		fmt.Fprintf(&sb, "%d;", v)
	}
	return sb.String()
}

// printTriangles renders the twenty triangle sums of a completed facet
// array, one per line, for solution reporting.
func printTriangles(facetVals [FacetCount]int) string {
	var sb strings.Builder
	for t, fs := range triToFacets {
		sum := facetVals[fs[0]] + facetVals[fs[1]] + facetVals[fs[2]]
		fmt.Fprintf(&sb, "triangle %2d: %2d + %2d + %2d = %d\n", t, facetVals[fs[0]], facetVals[fs[1]], facetVals[fs[2]], sum)
	}
	return sb.String()
}
