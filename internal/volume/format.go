package volume

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

// printState renders a complete (or partial) placement as six labeled
// grids of two-digit face values, one per outer puzzle face, row-major
// over the two axes parallel to that face. Empty cells render blank.
func printState(height, width, depth int, rotBlocks [][]geometry.Block, state []*blockInPuzzle) string {
	sliceArea := height * width
	var sb strings.Builder

	cell := func(idx int, dir geometry.Direction) string {
		bip := state[idx]
		if bip == nil {
			return "   "
		}
		value := rotBlocks[bip.blockID][bip.rotID].Faces[int(dir)].Value
		return fmt.Sprintf("%02d ", value)
	}

	sb.WriteString("Front:\n")
	for i := height - 1; i >= 0; i-- {
		for j := 0; j < width; j++ {
			sb.WriteString(cell(j*height+i, geometry.Front))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Back:\n")
	for i := height - 1; i >= 0; i-- {
		for j := width - 1; j >= 0; j-- {
			sb.WriteString(cell((depth-1)*sliceArea+j*height+i, geometry.Back))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Left:\n")
	for i := height - 1; i >= 0; i-- {
		for k := depth - 1; k >= 0; k-- {
			sb.WriteString(cell(k*sliceArea+i, geometry.Left))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Right:\n")
	for i := height - 1; i >= 0; i-- {
		for k := 0; k < depth; k++ {
			sb.WriteString(cell(k*sliceArea+(width-1)*height+i, geometry.Right))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Top:\n")
	for k := depth - 1; k >= 0; k-- {
		for j := 0; j < width; j++ {
			sb.WriteString(cell(k*sliceArea+j*height+height-1, geometry.Top))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Bottom:\n")
	for k := 0; k < depth; k++ {
		for j := 0; j < width; j++ {
			sb.WriteString(cell(k*sliceArea+j*height, geometry.Bottom))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
