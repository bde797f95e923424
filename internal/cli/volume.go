package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/puzzlebox/internal/config"
	"github.com/ehrlich-b/puzzlebox/internal/geometry"
	"github.com/ehrlich-b/puzzlebox/internal/obslog"
	"github.com/ehrlich-b/puzzlebox/internal/stepper"
	"github.com/ehrlich-b/puzzlebox/internal/volume"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Volumetric cuboid-packing solver",
}

func newVolumeSolver(cmd *cobra.Command) (*volume.Solver, error) {
	shapeOnly, _ := cmd.Flags().GetBool("shape-only")
	cfgPath, _ := cmd.Flags().GetString("config")

	if cfgPath == "" {
		return volume.New(shapeOnly), nil
	}

	inv, err := config.Load(cfgPath)
	if err != nil {
		return nil, errors.Wrap(err, "volume: loading custom config")
	}
	blocks, err := inv.Blocks()
	if err != nil {
		return nil, errors.Wrap(err, "volume: converting custom config")
	}
	height, width, depth, target := inv.Dims()
	return volume.NewCustom(blocks, height, width, depth, shapeOnly, target), nil
}

var volumeSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the volumetric solver to completion and print every solution found",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		obslog.SetVerbose(verbose)

		s, err := newVolumeSolver(cmd)
		if err != nil {
			return err
		}
		stepper.RunToCompletion(s)

		solutions := s.Solutions()
		fmt.Printf("found %d solution(s)\n", len(solutions))
		for i, sol := range solutions {
			fmt.Printf("--- solution %d ---\n%s\n", i+1, sol)
		}
		return nil
	},
}

var volumeStepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance the volumetric solver a fixed number of search edges and print its stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		s, err := newVolumeSolver(cmd)
		if err != nil {
			return err
		}
		stepper.AdvanceN(s, count)

		fmt.Printf("done=%t, placed=%d\n", s.Done(), len(s.Stack()))
		for _, entry := range s.Stack() {
			fmt.Printf("  block %q at (%d, %d, %d)\n", entry.Block.Label, entry.X, entry.Y, entry.Z)
		}
		return nil
	},
}

var volumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the compiled-in nine-block inventory",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range geometry.Blocks {
			fmt.Printf("%-15s %dx%dx%d\n", b.Label, b.Height, b.Width, b.Depth)
			for _, f := range b.Faces {
				fmt.Printf("  %-6s value=%-3d %dx%d\n", f.Dir, f.Value, f.Long, f.Short)
			}
		}
	},
}

func init() {
	volumeCmd.AddCommand(volumeSolveCmd)
	volumeCmd.AddCommand(volumeStepCmd)
	volumeCmd.AddCommand(volumeShowCmd)

	volumeCmd.PersistentFlags().Bool("shape-only", false, "ignore face-sum labels, solve the purely geometric tiling")
	volumeCmd.PersistentFlags().String("config", "", "path to a custom YAML block inventory (default: compiled-in puzzle)")

	volumeSolveCmd.Flags().Bool("verbose", false, "log every search edge (deeper/sideway/backtrack/prune)")
	volumeStepCmd.Flags().Int("count", 1, "number of search edges to advance")
}
