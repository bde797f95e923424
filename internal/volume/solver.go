// Package volume implements the stepwise depth-first volumetric solver: it
// places rotated blocks into a 3-D occupancy grid at the earliest empty
// cell in row-major order, maintaining per-face partial sums and free
// areas, pruning whenever a partial sum exceeds the target or a face can no
// longer be completed.
package volume

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
	"github.com/ehrlich-b/puzzlebox/internal/obslog"
)

// Solver is a stateful, single-threaded, stepwise DFS over block
// placements in a Height x Width x Depth cuboid.
type Solver struct {
	height, width, depth int
	sliceArea            int
	target               int // face-sum target; only meaningful if labeled
	labeled              bool

	rotBlocks [][]geometry.Block
	stack     []blockInPuzzle
	rem       map[int]bool
	position  int
	state     []*blockInPuzzle

	faceSums      [6]int
	faceFreeAreas [6]int
	faceCells     [6][]int

	done      bool
	solutions map[string][]blockInPuzzle
}

// New builds a solver for the 12x11x9 puzzle cuboid. When shapeOnly is
// true, no face-sum constraints apply and only shape rotations are used
// (purely geometric tiling). Otherwise all 24 rotations are enumerated and
// the target face-sum is 100. The first block is placed in its first
// rotation at cell 0 before New returns.
func New(shapeOnly bool) *Solver {
	if shapeOnly {
		return newSolver(geometry.Blocks[:], geometry.Height, geometry.Width, geometry.Depth, false, 0)
	}
	return newSolver(geometry.Blocks[:], geometry.Height, geometry.Width, geometry.Depth, true, geometry.TargetFaceSum)
}

// NewCustom builds a solver over a caller-supplied block inventory, puzzle
// dimensions and target face-sum, for experimenting with configurations
// loaded via internal/config instead of the compiled-in puzzle.
func NewCustom(inventory []geometry.Block, height, width, depth int, shapeOnly bool, target int) *Solver {
	if shapeOnly {
		return newSolver(inventory, height, width, depth, false, 0)
	}
	return newSolver(inventory, height, width, depth, true, target)
}

// newWithInventory builds a solver over an arbitrary block inventory and
// puzzle dimensions: shape-only when shapeOnly is true, otherwise labeled
// with the compiled-in target face-sum. Used directly by tests exercising
// the small geometric scenarios of the testable properties (2x2x1, 2x2x2
// toy puzzles).
func newWithInventory(inventory []geometry.Block, height, width, depth int, shapeOnly bool) *Solver {
	if shapeOnly {
		return newSolver(inventory, height, width, depth, false, 0)
	}
	return newSolver(inventory, height, width, depth, true, geometry.TargetFaceSum)
}

// newLabeledWithInventory builds a labeled-mode solver over a custom
// inventory, puzzle dimensions and target face-sum, used by tests
// exercising the labeled toy scenario of the testable properties.
func newLabeledWithInventory(inventory []geometry.Block, height, width, depth, target int) *Solver {
	return newSolver(inventory, height, width, depth, true, target)
}

func newSolver(inventory []geometry.Block, height, width, depth int, labeled bool, target int) *Solver {
	rotBlocks := make([][]geometry.Block, len(inventory))
	for i, b := range inventory {
		if labeled {
			rotBlocks[i] = geometry.AllRotations(b)
		} else {
			rotBlocks[i] = geometry.ShapeRotations(b)
		}
	}

	sliceArea := height * width
	s := &Solver{
		height:    height,
		width:     width,
		depth:     depth,
		sliceArea: sliceArea,
		target:    target,
		labeled:   labeled,
		rotBlocks: rotBlocks,
		rem:       make(map[int]bool, len(inventory)),
		state:     make([]*blockInPuzzle, height*width*depth),
		faceFreeAreas: [6]int{
			height * width, height * width,
			height * depth, height * depth,
			width * depth, width * depth,
		},
		solutions: make(map[string][]blockInPuzzle),
	}
	for i := range inventory {
		s.rem[i] = true
	}
	s.faceCells = s.computeFaceCells()

	s.deeper(0, 0)
	return s
}

// computeFaceCells precomputes, for each puzzle direction, the full list of
// state-array indices belonging to that outer face.
func (s *Solver) computeFaceCells() [6][]int {
	var cells [6][]int

	var front, back, left, right, top, bottom []int
	for j := 0; j < s.width; j++ {
		for i := 0; i < s.height; i++ {
			front = append(front, j*s.height+i)
			back = append(back, (s.depth-1)*s.sliceArea+j*s.height+i)
		}
	}
	for k := 0; k < s.depth; k++ {
		for i := 0; i < s.height; i++ {
			left = append(left, k*s.sliceArea+i)
			right = append(right, k*s.sliceArea+(s.width-1)*s.height+i)
		}
	}
	for k := 0; k < s.depth; k++ {
		for j := 0; j < s.width; j++ {
			top = append(top, k*s.sliceArea+j*s.height+s.height-1)
			bottom = append(bottom, k*s.sliceArea+j*s.height)
		}
	}

	cells[geometry.Front] = front
	cells[geometry.Back] = back
	cells[geometry.Left] = left
	cells[geometry.Right] = right
	cells[geometry.Top] = top
	cells[geometry.Bottom] = bottom
	return cells
}

func (s *Solver) blockCount() int {
	return len(s.rotBlocks)
}

// Stack returns the current placement, in placement order.
func (s *Solver) Stack() []StackEntry {
	entries := make([]StackEntry, len(s.stack))
	for i, bip := range s.stack {
		x := bip.position % s.height
		y := (bip.position % s.sliceArea) / s.height
		z := bip.position / s.sliceArea
		entries[i] = StackEntry{
			Block:   s.rotBlocks[bip.blockID][bip.rotID],
			BlockID: bip.blockID,
			X:       x, Y: y, Z: z,
		}
	}
	return entries
}

// Solutions returns the accumulated complete solutions, formatted as
// labeled face grids. Iteration order is unspecified.
func (s *Solver) Solutions() []string {
	out := make([]string, 0, len(s.solutions))
	for _, sol := range s.solutions {
		out = append(out, printState(s.height, s.width, s.depth, s.rotBlocks, stateFromSolution(sol)))
	}
	return out
}

func stateFromSolution(sol []blockInPuzzle) []*blockInPuzzle {
	out := make([]*blockInPuzzle, len(sol))
	for i := range sol {
		b := sol[i]
		out[i] = &b
	}
	return out
}

// Done reports whether the search is exhausted.
func (s *Solver) Done() bool {
	return s.done
}

// StepToSolution repeatedly steps until either a new complete placement is
// reached (true) or the search is exhausted (false).
func (s *Solver) StepToSolution() bool {
	for s.Step() {
		if len(s.stack) == s.blockCount() {
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
		for _, blockID := range rem {
			for rotID := range s.rotBlocks[blockID] {
				if s.deeper(blockID, rotID) {
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
	blockID, rotID, position := top.blockID, top.rotID, top.position

	s.removeBlockFromState(top)
	s.removeBlockFromFaceState(top)
	s.position = position
	s.rem[blockID] = true
	obslog.Log.Trace().Int("block", blockID).Int("position", position).Msg("backtrack")

	limit := len(s.rotBlocks[blockID])
	// Discard rotational invariants: limit the possible rotations of the
	// 1st block. Valid only because AllRotations groups its 24 rotations
	// as six face-up choices x four in-plane spins (see geometry.AllRotations).
	if s.labeled && len(s.stack) == 0 {
		limit /= 4
	}

	for r := rotID + 1; r < limit; r++ {
		if s.deeper(blockID, r) {
			obslog.Log.Trace().Int("block", blockID).Int("rot", r).Msg("sideway")
			return true
		}
	}
	for b := blockID + 1; b < s.blockCount(); b++ {
		if !s.rem[b] {
			continue
		}
		for r := range s.rotBlocks[b] {
			if s.deeper(b, r) {
				obslog.Log.Trace().Int("block", b).Int("rot", r).Msg("sideway")
				return true
			}
		}
	}
	return false
}

// deeper tries to place one more rotated block at the current position.
func (s *Solver) deeper(blockID, rotID int) bool {
	bip := blockInPuzzle{blockID: blockID, rotID: rotID, position: s.position}
	newPosition, ok := s.place3D(bip)
	if !ok {
		obslog.Log.Trace().Int("block", blockID).Int("rot", rotID).Int("position", s.position).Msg("prune")
		return false
	}
	obslog.Log.Trace().Int("block", blockID).Int("rot", rotID).Int("position", s.position).Msg("deeper")
	s.stack = append(s.stack, bip)
	delete(s.rem, blockID)
	s.position = newPosition

	if s.position == s.height*s.width*s.depth {
		key := solutionKey(s.state)
		if _, exists := s.solutions[key]; !exists {
			sol := make([]blockInPuzzle, len(s.state))
			for i, mbip := range s.state {
				sol[i] = *mbip
			}
			s.solutions[key] = sol
		}
		obslog.Log.Debug().Msg("solution found")
	}
	return true
}

func solutionKey(state []*blockInPuzzle) string {
	var sb strings.Builder
	for _, bip := range state {
		if bip == nil {
			sb.WriteString("_;")
			continue
		}
		fmt.Fprintf(&sb, "%d,%d,%d;", bip.blockID, bip.rotID, bip.position)
	}
	return sb.String()
}

// place3D attempts to place bip at its recorded position, applying the
// fit checks of section 4.4 before committing any state mutation.
func (s *Solver) place3D(bip blockInPuzzle) (int, bool) {
	block := s.rotBlocks[bip.blockID][bip.rotID]
	startPoint := bip.position

	xStart := startPoint % s.height
	xEnd := xStart + block.Height
	yStart := (startPoint % s.sliceArea) / s.height
	yEnd := yStart + block.Width
	zStart := startPoint / s.sliceArea
	zEnd := zStart + block.Depth

	if xEnd > s.height || yEnd > s.width || zEnd > s.depth {
		return 0, false
	}

	if s.labeled {
		touches := []struct {
			trigger bool
			dir     geometry.Direction
		}{
			{xStart == 0, geometry.Bottom},
			{xEnd == s.height, geometry.Top},
			{yStart == 0, geometry.Left},
			{yEnd == s.width, geometry.Right},
			{zStart == 0, geometry.Front},
			{zEnd == s.depth, geometry.Back},
		}
		for _, t := range touches {
			if !t.trigger {
				continue
			}
			if !s.fitsFace(t.dir, block, xStart, xEnd, yStart, yEnd, zStart, zEnd) {
				return 0, false
			}
		}
	}

	for k := zStart; k < zEnd; k++ {
		for j := yStart; j < yEnd; j++ {
			for i := xStart; i < xEnd; i++ {
				if s.state[k*s.sliceArea+j*s.height+i] != nil {
					return 0, false
				}
			}
		}
	}

	for k := zStart; k < zEnd; k++ {
		for j := yStart; j < yEnd; j++ {
			for i := xStart; i < xEnd; i++ {
				cp := bip
				s.state[k*s.sliceArea+j*s.height+i] = &cp
			}
		}
	}

	if s.labeled {
		for _, t := range []struct {
			trigger bool
			dir     geometry.Direction
		}{
			{xStart == 0, geometry.Bottom},
			{xEnd == s.height, geometry.Top},
			{yStart == 0, geometry.Left},
			{yEnd == s.width, geometry.Right},
			{zStart == 0, geometry.Front},
			{zEnd == s.depth, geometry.Back},
		} {
			if !t.trigger {
				continue
			}
			idx := faceIndex(t.dir)
			s.faceSums[idx] += block.Faces[idx].Value
			s.faceFreeAreas[idx] -= block.Faces[idx].Area()
		}
	}

	volume := s.sliceArea * s.depth
	newStart := volume
	for i := startPoint; i < volume; i++ {
		if s.state[i] == nil {
			newStart = i
			break
		}
	}
	return newStart, true
}

// fitsFace runs the per-face check of 4.4: reject if the new sum exceeds
// target; if it reaches target, the entire face must end up covered either
// by already-placed blocks or by this candidate's projection; if it stays
// below target, reject when free area would be exhausted without reaching
// it.
func (s *Solver) fitsFace(dir geometry.Direction, block geometry.Block, xStart, xEnd, yStart, yEnd, zStart, zEnd int) bool {
	idx := faceIndex(dir)
	newSum := s.faceSums[idx] + block.Faces[idx].Value
	if newSum > s.target {
		return false
	}
	if newSum == s.target {
		if !s.faceWouldBeComplete(dir, xStart, xEnd, yStart, yEnd, zStart, zEnd) {
			return false
		}
	}
	if newSum < s.target && s.faceFreeAreas[idx]-block.Faces[idx].Area() == 0 {
		return false
	}
	return true
}

// faceWouldBeComplete scans an entire puzzle face, requiring every cell to
// be either already filled or within the candidate block's projection onto
// that face.
func (s *Solver) faceWouldBeComplete(dir geometry.Direction, xStart, xEnd, yStart, yEnd, zStart, zEnd int) bool {
	for _, idx := range s.faceCells[dir] {
		i := idx % s.height
		j := (idx % s.sliceArea) / s.height
		k := idx / s.sliceArea

		withinProjection := k >= zStart && k < zEnd && j >= yStart && j < yEnd && i >= xStart && i < xEnd
		if withinProjection {
			if s.state[idx] != nil {
				return false
			}
			continue
		}
		if s.state[idx] == nil {
			return false
		}
	}
	return true
}

func (s *Solver) removeBlockFromState(bip blockInPuzzle) {
	block := s.rotBlocks[bip.blockID][bip.rotID]
	position := bip.position

	xStart := position % s.height
	xEnd := xStart + block.Height
	yStart := (position % s.sliceArea) / s.height
	yEnd := yStart + block.Width
	zStart := position / s.sliceArea
	zEnd := zStart + block.Depth

	for k := zStart; k < zEnd; k++ {
		for j := yStart; j < yEnd; j++ {
			for i := xStart; i < xEnd; i++ {
				s.state[k*s.sliceArea+j*s.height+i] = nil
			}
		}
	}
}

func (s *Solver) removeBlockFromFaceState(bip blockInPuzzle) {
	if !s.labeled {
		return
	}
	block := s.rotBlocks[bip.blockID][bip.rotID]
	position := bip.position

	xStart := position % s.height
	xEnd := xStart + block.Height
	yStart := (position % s.sliceArea) / s.height
	yEnd := yStart + block.Width
	zStart := position / s.sliceArea
	zEnd := zStart + block.Depth

	for _, t := range []struct {
		trigger bool
		dir     geometry.Direction
	}{
		{xStart == 0, geometry.Bottom},
		{xEnd == s.height, geometry.Top},
		{yStart == 0, geometry.Left},
		{yEnd == s.width, geometry.Right},
		{zStart == 0, geometry.Front},
		{zEnd == s.depth, geometry.Back},
	} {
		if !t.trigger {
			continue
		}
		idx := faceIndex(t.dir)
		s.faceSums[idx] -= block.Faces[idx].Value
		s.faceFreeAreas[idx] += block.Faces[idx].Area()
	}
}

func faceIndex(d geometry.Direction) int {
	return int(d)
}
