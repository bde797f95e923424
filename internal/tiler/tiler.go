// Package tiler decides whether a multiset of rectangular faces can exactly
// tile a target rectangle, used to pre-filter admissible outer-face
// compositions before they're handed to the pair-filter.
package tiler

// Rect is a face rectangle candidate for tiling: Long x Short, carrying an
// opaque Value used only to mark occupied cells while tracing.
type Rect struct {
	Long  int
	Short int
	Value int
}

// frontier is one partially-tiled candidate: the next empty cell to fill,
// the occupancy grid so far, and the faces still available to place.
type frontier struct {
	start    int
	occupied []int // 0 = empty, else the occupying face's Value
	remain   []Rect
}

// TilesRectangle returns true iff faces can be placed — each either in its
// natural or 90-degree-rotated orientation — to exactly tile a
// target Long x Short rectangle without overlap.
//
// Algorithm: breadth-first over placement frontiers. At each step, the
// lowest-index empty cell is the only place a piece may be anchored (its
// top-left corner); trying every remaining face in both orientations there
// either narrows the frontier or completes the tiling. The search returns
// true on the first completed tiling; exhausted frontiers fail silently —
// tiling failure is routine, not an error.
func TilesRectangle(targetLong, targetShort int, faces []Rect) bool {
	size := targetLong * targetShort
	frontiers := []frontier{{
		start:    0,
		occupied: make([]int, size),
		remain:   faces,
	}}

	for len(frontiers) > 0 {
		var next []frontier
		for _, f := range frontiers {
			for i, face := range f.remain {
				rem := removeAt(f.remain, i)

				if ok, newStart, newOccupied := place(targetLong, targetShort, f.start, f.occupied, face.Long, face.Short, face.Value); ok {
					if newStart < 0 {
						if len(rem) == 0 {
							return true
						}
					} else {
						next = append(next, frontier{start: newStart, occupied: newOccupied, remain: rem})
					}
				}

				if face.Long != face.Short {
					if ok, newStart, newOccupied := place(targetLong, targetShort, f.start, f.occupied, face.Short, face.Long, face.Value); ok {
						if newStart < 0 {
							if len(rem) == 0 {
								return true
							}
						} else {
							next = append(next, frontier{start: newStart, occupied: newOccupied, remain: rem})
						}
					}
				}
			}
		}
		frontiers = next
	}
	return false
}

// place attempts to anchor a pieceLong x pieceShort rectangle with its
// top-left corner at the lowest empty cell (start), in a targetLong x
// targetShort grid. Returns ok=false if the piece doesn't fit inside the
// rectangle or would overlap an occupied cell. On success, newStart is the
// new lowest empty cell index, or -1 if the grid is now full.
func place(targetLong, targetShort, start int, occupied []int, pieceLong, pieceShort, value int) (ok bool, newStart int, newOccupied []int) {
	xStart := start % targetLong
	xEnd := xStart + pieceLong
	yStart := start / targetLong
	yEnd := yStart + pieceShort

	if xEnd > targetLong || yEnd > targetShort {
		return false, 0, nil
	}

	out := append([]int(nil), occupied...)
	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			idx := y*targetLong + x
			if occupied[idx] != 0 {
				return false, 0, nil
			}
			out[idx] = value
		}
	}

	for idx, v := range out {
		if v == 0 {
			return true, idx, out
		}
	}
	return true, -1, out
}

func removeAt(faces []Rect, i int) []Rect {
	rem := make([]Rect, 0, len(faces)-1)
	rem = append(rem, faces[:i]...)
	rem = append(rem, faces[i+1:]...)
	return rem
}
