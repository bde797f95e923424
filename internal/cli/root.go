// Package cli wires the cobra command tree for the puzzle solvers: volume
// (volumetric cuboid packing), dodeca (dodecahedral facet labeling), tile
// (standalone rectangle-tiler check) and serve (HTTP API).
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Stepwise solvers for the cuboid-packing and dodecahedron puzzles",
	Long: `puzzlebox solves two combinatorial puzzles via stepwise depth-first
search: packing nine labeled blocks into a cuboid so every outer face sums
to a target, and labeling twelve pentagons onto a dodecahedron so every
icosahedral triangle sums to 96.`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(dodecaCmd)
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(serveCmd)
}
