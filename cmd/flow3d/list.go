package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus any level files found in the levels directory.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lvls, err := a.loader().LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(lvls) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-*s  %-4s  %-5s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Pairs", "Difficulty", "Source")
	fmt.Fprintf(out, "  %-*s  %-*s  %-4s  %-5s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "-----", "----------", "------")

	for _, lvl := range lvls {
		source := lvl.FilePath
		if lvl.IsBuiltin() {
			source = "builtin"
		}
		difficulty := lvl.Difficulty()
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %-4d  %-5d  %-10s  %s\n",
			maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.Size, len(lvl.Pairs), difficulty, source)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flow3d play <id>' to play a level.")
	return nil
}
