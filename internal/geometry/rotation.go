package geometry

import "sort"

// RotFace returns a new face with the same Value/Long/Short/Block and a Dir
// rotated 90 degrees about axis. Rotation about any axis leaves the two
// faces pointing along that axis (axis and its opposite) untouched and
// cyclically permutes the other four.
func RotFace(axis Direction, face Face) Face {
	newDir, changed := rotatedDir(axis, face.Dir)
	if !changed {
		return face
	}
	res := face
	res.Dir = newDir
	return res
}

func rotatedDir(axis, dir Direction) (Direction, bool) {
	switch axis {
	case Front:
		switch dir {
		case Left:
			return Bottom, true
		case Right:
			return Top, true
		case Top:
			return Left, true
		case Bottom:
			return Right, true
		}
	case Back:
		switch dir {
		case Left:
			return Top, true
		case Right:
			return Bottom, true
		case Top:
			return Right, true
		case Bottom:
			return Left, true
		}
	case Left:
		switch dir {
		case Front:
			return Top, true
		case Back:
			return Bottom, true
		case Top:
			return Back, true
		case Bottom:
			return Front, true
		}
	case Right:
		switch dir {
		case Front:
			return Bottom, true
		case Back:
			return Top, true
		case Top:
			return Front, true
		case Bottom:
			return Back, true
		}
	case Top:
		switch dir {
		case Front:
			return Right, true
		case Back:
			return Left, true
		case Left:
			return Front, true
		case Right:
			return Back, true
		}
	case Bottom:
		switch dir {
		case Front:
			return Left, true
		case Back:
			return Right, true
		case Left:
			return Back, true
		case Right:
			return Front, true
		}
	}
	return dir, false
}

// RotFaces applies RotFace elementwise and re-sorts into the canonical
// Front/Back/Left/Right/Top/Bottom order, since rotation shuffles which
// direction occupies which slot.
func RotFaces(axis Direction, faces [6]Face) [6]Face {
	rotated := make([]Face, 6)
	for i, f := range faces {
		rotated[i] = RotFace(axis, f)
	}
	sort.Slice(rotated, func(i, j int) bool {
		return faceIndexOf(rotated[i].Dir) < faceIndexOf(rotated[j].Dir)
	})
	var out [6]Face
	copy(out[:], rotated)
	return out
}

// RotBlock rotates a block 90 degrees about axis: permutes its three
// dimensions and relabels each face's directional tag.
//
//   - about Front/Back: height <-> width
//   - about Left/Right: height <-> depth
//   - about Top/Bottom: width <-> depth
func RotBlock(axis Direction, block Block) Block {
	res := block
	res.Faces = RotFaces(axis, block.Faces)
	switch axis {
	case Front, Back:
		res.Height, res.Width = block.Width, block.Height
	case Left, Right:
		res.Height, res.Depth = block.Depth, block.Height
	case Top, Bottom:
		res.Width, res.Depth = block.Depth, block.Width
	}
	return res
}

// axisSequence applies a sequence of axis rotations in order.
func axisSequence(block Block, axes []Direction) Block {
	res := block
	for _, axis := range axes {
		res = RotBlock(axis, res)
	}
	return res
}

// faceUpChoices are the six ways to bring a face to the "up" position:
// identity, then rotate about Top, Back, Back+Top, Right, Right+Top.
var faceUpChoices = [][]Direction{
	{},
	{Top},
	{Back},
	{Back, Top},
	{Right},
	{Right, Top},
}

// inPlaneSpins are the four in-plane spins once a face is up: identity and
// the three 180 degree turns about Top, Right and Back.
var inPlaneSpins = [][]Direction{
	{},
	{Top, Top},
	{Right, Right},
	{Back, Back},
}

// AllRotations generates the 24 proper rotations of block as two nested
// series: six face-up selections composed with four in-plane spins.
//
// The enumeration order is semantically load-bearing: to eliminate
// whole-puzzle rotational equivalence in labeled mode, callers restrict the
// first placed block's rotation index to the first quarter of this list
// (six out of twenty-four, see stack-emptying retry logic in
// internal/volume). This function must keep iterating face-up choices in
// the outer loop and in-plane spins in the inner loop, exactly as here, or
// that restriction silently becomes wrong.
func AllRotations(block Block) []Block {
	result := make([]Block, 0, 24)
	for _, faceUp := range faceUpChoices {
		for _, spin := range inPlaneSpins {
			res := axisSequence(block, faceUp)
			res = axisSequence(res, spin)
			result = append(result, res)
		}
	}
	return result
}

// ShapeRotations yields up to six rotations deduplicated by the
// (Height, Width, Depth) triple, for purely geometric (unlabeled) tiling.
func ShapeRotations(block Block) []Block {
	result := make([]Block, 0, 6)
	seen := make(map[[3]int]bool, 6)
	for _, faceUp := range faceUpChoices {
		res := axisSequence(block, faceUp)
		dims := [3]int{res.Height, res.Width, res.Depth}
		if seen[dims] {
			continue
		}
		seen[dims] = true
		result = append(result, res)
	}
	return result
}
