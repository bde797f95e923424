package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/puzzlebox/internal/tiler"
)

var tileCmd = &cobra.Command{
	Use:   "tile",
	Short: "Standalone rectangle-tiler checks",
}

var tileCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a list of rectangles can exactly tile a target rectangle",
	Long: `Check whether a list of rectangles can exactly tile a target rectangle.

Example:
  puzzlebox tile check --target 4x3 --faces 4x1,2x1,3x2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		facesFlag, _ := cmd.Flags().GetString("faces")

		targetLong, targetShort, err := parseDims(target)
		if err != nil {
			return errors.Wrap(err, "tile check: parsing --target")
		}

		var faces []tiler.Rect
		for i, spec := range strings.Split(facesFlag, ",") {
			long, short, err := parseDims(spec)
			if err != nil {
				return errors.Wrapf(err, "tile check: parsing --faces entry %d", i)
			}
			faces = append(faces, tiler.Rect{Long: long, Short: short, Value: i + 1})
		}

		if tiler.TilesRectangle(targetLong, targetShort, faces) {
			fmt.Println("tiles: true")
		} else {
			fmt.Println("tiles: false")
		}
		return nil
	},
}

// parseDims parses a "LxS" dimension spec into (long, short).
func parseDims(spec string) (long, short int, err error) {
	parts := strings.SplitN(strings.TrimSpace(spec), "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected LxS, got %q", spec)
	}
	long, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid long dimension in %q", spec)
	}
	short, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid short dimension in %q", spec)
	}
	return long, short, nil
}

func init() {
	tileCmd.AddCommand(tileCheckCmd)

	tileCheckCmd.Flags().String("target", "", "target rectangle as LxS (required)")
	tileCheckCmd.Flags().String("faces", "", "comma-separated LxS rectangles to tile with (required)")
	tileCheckCmd.MarkFlagRequired("target")
	tileCheckCmd.MarkFlagRequired("faces")
}
