package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/puzzle"
)

var flagNoSolve bool

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Check level files",
	Long: `Parse each level file and check its structure: cube size, paired
starts, bounds, duplicate starts and colors. A shipped solution must win.
Unless --no-solve is given, the solver then looks for a full covering
solution within solver.max_steps search nodes.

Exits non-zero if any file fails. A solver that runs out of steps is
reported as a warning, not a failure.

Examples:
  flow3d validate ./levels/*.yaml
  flow3d validate cube.yaml --no-solve`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagNoSolve, "no-solve", false, "Skip the solvability search")
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	loader := a.loader()
	failed := 0

	for _, file := range args {
		lvl, err := loader.LoadFile(file)
		if err != nil {
			fmt.Fprintf(out, "FAIL  %s: %v\n", file, err)
			failed++
			continue
		}

		if err := validateLevel(lvl, a.cfg.Solver.MaxSteps, !flagNoSolve, out); err != nil {
			fmt.Fprintf(out, "FAIL  %s: %v\n", file, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed validation", failed, len(args))
	}
	return nil
}

// validateLevel checks a structurally valid level's solution and
// solvability, printing one status line.
func validateLevel(lvl levels.Level, maxSteps int, solve bool, out io.Writer) error {
	if len(lvl.Solution) > 0 {
		if err := lvl.CheckSolution(); err != nil {
			return err
		}
	}

	if !solve {
		fmt.Fprintf(out, "OK    %s (%s): %d×%d×%d, %d pairs\n", lvl.FilePath, lvl.ID, lvl.Size, lvl.Size, lvl.Size, len(lvl.Pairs))
		return nil
	}

	p, err := lvl.NewPuzzle()
	if err != nil {
		return err
	}

	res := puzzle.Solve(p, maxSteps)
	switch {
	case res.Solved:
		fmt.Fprintf(out, "OK    %s (%s): solvable, %d search steps\n", lvl.FilePath, lvl.ID, res.Steps)
	case res.Exhausted:
		fmt.Fprintf(out, "WARN  %s (%s): solver gave up after %d steps\n", lvl.FilePath, lvl.ID, res.Steps)
	default:
		return fmt.Errorf("level %s has no solution", lvl.ID)
	}
	return nil
}
