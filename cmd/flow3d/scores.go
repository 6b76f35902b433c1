package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/platform/tui"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best solve times",
	Long: `Display the fastest solves for the given level, or a summary of every
level that has been solved.

Examples:
  flow3d scores
  flow3d scores medium --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Open solve storage
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		all, err := store.AllLevelStats()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(out, "No solves recorded yet.")
			return nil
		}

		ids := make([]string, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintf(out, "  %-12s  %-6s  %-7s  %-8s  %-8s  %s\n", "Level", "Solves", "Players", "Best", "Average", "Fewest moves")
		fmt.Fprintf(out, "  %-12s  %-6s  %-7s  %-8s  %-8s  %s\n", "-----", "------", "-------", "----", "-------", "------------")
		for _, id := range ids {
			st := all[id]
			fmt.Fprintf(out, "  %-12s  %-6d  %-7d  %-8s  %-8s  %d\n",
				id, st.Solves, st.Players, tui.FormatDuration(st.BestTime), tui.FormatDuration(st.AvgTime), st.FewestMoves)
		}
		return nil
	}

	levelID := args[0]
	title := levelID
	// Solves of levels that no longer load are still shown
	if lvl, err := a.loader().LoadByID(levelID); err == nil {
		title = lvl.Name
	} else if !errors.Is(err, levels.ErrNotFound) {
		return err
	}

	solves, err := store.BestSolves(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Times - %s\n", title)
	fmt.Fprintln(out)

	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'flow3d play %s' to set the first time!\n", levelID)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Time", "Moves", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "----", "-----", "----")

	for i, s := range solves {
		player := s.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-8s  %-5d  %s\n",
			i+1, player, tui.FormatDuration(s.Duration), s.Moves, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d solves by %d players, average %s\n", stats.Solves, stats.Players, tui.FormatDuration(stats.AvgTime))
	}
	return nil
}
