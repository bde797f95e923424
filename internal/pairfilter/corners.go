package pairfilter

import "github.com/ehrlich-b/puzzlebox/internal/geometry"

// corner is three faces of one block, one from each area-class side.
type corner struct {
	small, medium, large geometry.Face
}

// findCorner looks, among three face lists (one per area class), for the
// unique triple belonging to the same block where no two faces are
// opposite each other (i.e. a genuine corner of that block, not two faces
// on the same axis).
func findCorner(facesS, facesM, facesL []geometry.Face) (corner, bool) {
	var corners []corner
	for _, fs := range facesS {
		block := fs.Block
		for _, fm := range facesM {
			if fm.Block != block || fs.Dir.Opposite() == fm.Dir {
				continue
			}
			for _, fl := range facesL {
				if fl.Block != block {
					continue
				}
				if fs.Dir.Opposite() == fl.Dir || fm.Dir.Opposite() == fl.Dir {
					continue
				}
				corners = append(corners, corner{small: fs, medium: fm, large: fl})
			}
		}
	}
	if len(corners) == 1 {
		return corners[0], true
	}
	return corner{}, false
}

// faceKey identifies a face by block+direction for use as a map key, since
// geometry.Face itself isn't comparable-safe as a map key across copies
// with identical fields (it is, in fact, but the key makes intent explicit).
type faceKey struct {
	block int
	dir   geometry.Direction
}

func keyOf(f geometry.Face) faceKey {
	return faceKey{block: f.Block, dir: f.Dir}
}

// constraints is the partial assignment of puzzle-facing directions to
// block faces built up by propagation.
type constraints map[faceKey]geometry.Direction

// CompatibleSixCombo verifies that every block appearing across the three
// area-class pairs admits a globally consistent Top/Bottom/Left/Right/
// Front/Back labeling: each block-face corner (fs, fm, fl) determines a
// handedness, and propagating Top/Bottom for the small pair, Left/Right for
// the medium pair and Front/Back (sign from the first corner) for the large
// pair must not produce a contradiction anywhere.
func CompatibleSixCombo(pairS, pairM, pairL FacePair) bool {
	var corners []corner
	for _, facesS := range [][]geometry.Face{pairS.Side0, pairS.Side1} {
		for _, facesM := range [][]geometry.Face{pairM.Side0, pairM.Side1} {
			for _, facesL := range [][]geometry.Face{pairL.Side0, pairL.Side1} {
				c, ok := findCorner(facesS, facesM, facesL)
				if !ok {
					return false
				}
				corners = append(corners, c)
			}
		}
	}

	c0 := corners[0]

	cons := constraints{}
	// Seed: the first face of the first corner goes Top, the second Left
	// (arbitrary choices; the mirror assignment is equally valid).
	cons[keyOf(c0.small)] = geometry.Top
	cons[keyOf(c0.medium)] = geometry.Left

	var lastConstraint geometry.Direction
	switch {
	case c0.small.Dir.Prod(c0.medium.Dir) == c0.large.Dir:
		lastConstraint = geometry.Front
	case c0.small.Dir.Prod(c0.medium.Dir) == c0.large.Dir.Opposite():
		lastConstraint = geometry.Back
	default:
		panic("pairfilter: corner handedness is neither Front nor Back")
	}

	cons, ok := propagate(cons, []faceGroup{
		{pairS.Side0, geometry.Top},
		{pairS.Side1, geometry.Bottom},
		{pairM.Side0, geometry.Left},
		{pairM.Side1, geometry.Right},
		{pairL.Side0, lastConstraint},
		{pairL.Side1, lastConstraint.Opposite()},
	})
	if !ok {
		return false
	}

	for _, c := range corners {
		if !isCornerPossible(c, cons) {
			return false
		}
	}
	return true
}

type faceGroup struct {
	faces []geometry.Face
	dir   geometry.Direction
}

// propagate is a single-pass fixpoint: assigning a face to a direction
// simultaneously assigns its block's opposite face to the opposite
// direction. Any clash with an existing assignment aborts with (nil,
// false) — a cheap early exit on contradiction.
func propagate(cons constraints, groups []faceGroup) (constraints, bool) {
	for _, g := range groups {
		for _, f := range g.faces {
			if old, ok := cons[keyOf(f)]; ok {
				if old != g.dir {
					return nil, false
				}
			} else {
				cons[keyOf(f)] = g.dir
			}

			of := geometry.OppositeFace(geometry.Blocks[:], f)
			odir := g.dir.Opposite()
			if old, ok := cons[keyOf(of)]; ok {
				if old != odir {
					return nil, false
				}
			} else {
				cons[keyOf(of)] = odir
			}
		}
	}
	return cons, true
}

// isCornerPossible verifies a recorded corner's Prod identity matches the
// directions ultimately assigned to its three faces.
func isCornerPossible(c corner, cons constraints) bool {
	rotS, rotM, rotL := cons[keyOf(c.small)], cons[keyOf(c.medium)], cons[keyOf(c.large)]
	positive := c.small.Dir.Prod(c.medium.Dir) == c.large.Dir
	cPositive := rotS.Prod(rotM) == rotL
	return positive == cPositive
}
