package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

var (
	flagShowSolution bool
	flagShowCoords   bool
	flagShowLinks    bool
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print every layer of a level",
	Long: `Print the level as ASCII, one block per layer from front (z=0) to back.

Starts are upper-case color letters, flow segments lower-case ones.
With --solution the shipped solution is drawn in; levels without one are
solved on the spot, bounded by solver.max_steps.

Examples:
  flow3d show easy
  flow3d show hard --solution --links`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowSolution, "solution", false, "Draw the solution")
	showCmd.Flags().BoolVar(&flagShowCoords, "coords", false, "Label rows and columns")
	showCmd.Flags().BoolVar(&flagShowLinks, "links", false, "Draw segments as arrows along their links")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lvl, err := a.loader().LoadByID(args[0])
	if err != nil {
		return err
	}

	p, err := lvl.NewPuzzle()
	if err != nil {
		return err
	}

	if flagShowSolution {
		solution := lvl.Solution
		if len(solution) == 0 {
			a.logger.Debug("no shipped solution, solving", "level", lvl.ID, "max_steps", a.cfg.Solver.MaxSteps)
			res := puzzle.Solve(p, a.cfg.Solver.MaxSteps)
			if !res.Solved {
				return fmt.Errorf("level %s: no solution found after %d steps", lvl.ID, res.Steps)
			}
			solution = res.Solution
		}
		if err := puzzle.Apply(p, solution); err != nil {
			return fmt.Errorf("level %s: %w", lvl.ID, err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)  %d×%d×%d  %d pairs\n\n", lvl.Name, lvl.ID, lvl.Size, lvl.Size, lvl.Size, len(lvl.Pairs))
	fmt.Fprint(out, puzzle.RenderASCII(p, puzzle.RenderOptions{
		ShowCoords: flagShowCoords,
		ShowLinks:  flagShowLinks,
		EmptyChar:  '.',
	}))
	return nil
}
