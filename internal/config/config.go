// Package config loads custom block and pentagon inventories from YAML,
// for experimenting with the solvers beyond their compiled-in puzzles.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ehrlich-b/puzzlebox/internal/dodeca"
	"github.com/ehrlich-b/puzzlebox/internal/geometry"
)

// FaceValues maps a direction name (front, back, left, right, top, bottom)
// to the label value on that side of a block.
type FaceValues map[string]int

// BlockConfig is the YAML shape of one custom block.
type BlockConfig struct {
	Label  string     `yaml:"label"`
	Height int        `yaml:"height"`
	Width  int        `yaml:"width"`
	Depth  int        `yaml:"depth"`
	Faces  FaceValues `yaml:"faces"`
}

// Inventory is the YAML shape of a full custom-puzzle configuration file:
// either a block inventory for the volumetric solver, a pentagon inventory
// for the dodecahedral solver, or both.
type Inventory struct {
	BlockConfigs    []BlockConfig `yaml:"blocks,omitempty"`
	PentagonConfigs [][5]int      `yaml:"pentagons,omitempty"`

	// Puzzle dimensions and target face-sum for the volumetric solver. Zero
	// means "use the compiled-in 12x11x9 / target-100 puzzle constants".
	Height int `yaml:"height,omitempty"`
	Width  int `yaml:"width,omitempty"`
	Depth  int `yaml:"depth,omitempty"`
	Target int `yaml:"target,omitempty"`
}

// Dims returns the configured puzzle dimensions and target, substituting
// the compiled-in constants for any field left at zero.
func (inv *Inventory) Dims() (height, width, depth, target int) {
	height, width, depth, target = inv.Height, inv.Width, inv.Depth, inv.Target
	if height == 0 {
		height = geometry.Height
	}
	if width == 0 {
		width = geometry.Width
	}
	if depth == 0 {
		depth = geometry.Depth
	}
	if target == 0 {
		target = geometry.TargetFaceSum
	}
	return
}

var directionNames = map[string]geometry.Direction{
	"front": geometry.Front, "back": geometry.Back,
	"left": geometry.Left, "right": geometry.Right,
	"top": geometry.Top, "bottom": geometry.Bottom,
}

// Load reads and parses a YAML inventory file.
func Load(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	var inv Inventory
	if err := yaml.NewDecoder(f).Decode(&inv); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	return &inv, nil
}

// Blocks converts the configured block list into geometry.Block values,
// validating that every block names all six directions exactly once.
func (inv *Inventory) Blocks() ([]geometry.Block, error) {
	return toBlocks(inv.BlockConfigs)
}

func toBlocks(cfgs []BlockConfig) ([]geometry.Block, error) {
	blocks := make([]geometry.Block, len(cfgs))
	for bi, cfg := range cfgs {
		var faces [6]geometry.Face
		var seen [6]bool
		for name, value := range cfg.Faces {
			dir, ok := directionNames[name]
			if !ok {
				return nil, errors.Errorf("config: block %q names unknown direction %q", cfg.Label, name)
			}
			idx := int(dir)
			if seen[idx] {
				return nil, errors.Errorf("config: block %q repeats direction %q", cfg.Label, name)
			}
			seen[idx] = true
			long, short := faceDims(dir, cfg.Height, cfg.Width, cfg.Depth)
			faces[idx] = geometry.Face{Value: value, Long: long, Short: short, Block: bi, Dir: dir}
		}
		for idx, ok := range seen {
			if !ok {
				return nil, errors.Errorf("config: block %q missing direction %s", cfg.Label, geometry.Direction(idx))
			}
		}
		blocks[bi] = geometry.Block{
			Height: cfg.Height, Width: cfg.Width, Depth: cfg.Depth,
			Faces: faces, Label: cfg.Label,
		}
	}
	return blocks, nil
}

// faceDims returns the (long, short) rectangle dimensions of the face
// pointing in dir, given the block's three dimensions — the larger of the
// two dimensions perpendicular to dir is Long.
func faceDims(dir geometry.Direction, height, width, depth int) (long, short int) {
	var a, b int
	switch dir {
	case geometry.Front, geometry.Back:
		a, b = height, width
	case geometry.Left, geometry.Right:
		a, b = height, depth
	case geometry.Top, geometry.Bottom:
		a, b = width, depth
	}
	if a >= b {
		return a, b
	}
	return b, a
}

// Pentagons validates and returns the configured pentagon inventory for the
// dodecahedral solver.
func (inv *Inventory) Pentagons() ([dodeca.PentagonCount][5]int, error) {
	var out [dodeca.PentagonCount][5]int
	if len(inv.PentagonConfigs) != dodeca.PentagonCount {
		return out, errors.Errorf("config: expected %d pentagons, got %d", dodeca.PentagonCount, len(inv.PentagonConfigs))
	}
	copy(out[:], inv.PentagonConfigs)
	return out, nil
}
