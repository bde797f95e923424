package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/puzzlebox/internal/config"
	"github.com/ehrlich-b/puzzlebox/internal/dodeca"
	"github.com/ehrlich-b/puzzlebox/internal/obslog"
	"github.com/ehrlich-b/puzzlebox/internal/stepper"
)

var dodecaCmd = &cobra.Command{
	Use:   "dodeca",
	Short: "Dodecahedral facet-labeling solver",
}

func newDodecaSolver(cmd *cobra.Command) (*dodeca.Solver, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		return dodeca.New(dodeca.DefaultPentagons()), nil
	}

	inv, err := config.Load(cfgPath)
	if err != nil {
		return nil, errors.Wrap(err, "dodeca: loading custom config")
	}
	pentagons, err := inv.Pentagons()
	if err != nil {
		return nil, errors.Wrap(err, "dodeca: converting custom config")
	}
	return dodeca.New(pentagons), nil
}

var dodecaSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the dodecahedral solver to completion and print every solution found",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		obslog.SetVerbose(verbose)

		s, err := newDodecaSolver(cmd)
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

var dodecaStepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance the dodecahedral solver a fixed number of search edges and print its stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		s, err := newDodecaSolver(cmd)
		if err != nil {
			return err
		}
		stepper.AdvanceN(s, count)

		fmt.Printf("done=%t, placed=%d\n", s.Done(), len(s.Stack()))
		for _, entry := range s.Stack() {
			fmt.Printf("  pentagon %d rotation %d in slot %d: %v\n", entry.PentagonID, entry.Rotation, entry.Slot, entry.Labels)
		}
		return nil
	},
}

func init() {
	dodecaCmd.AddCommand(dodecaSolveCmd)
	dodecaCmd.AddCommand(dodecaStepCmd)

	dodecaCmd.PersistentFlags().String("config", "", "path to a custom YAML pentagon inventory (default: compiled-in demo inventory)")

	dodecaSolveCmd.Flags().Bool("verbose", false, "log every search edge (deeper/sideway/backtrack/prune)")
	dodecaStepCmd.Flags().Int("count", 1, "number of search edges to advance")
}
