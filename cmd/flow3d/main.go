// flow3d is a 3D connect-the-dots puzzle for the terminal.
//
// Usage:
//
//	flow3d list                      - List available levels
//	flow3d play [level]              - Pick a level, or play one directly
//	flow3d show <level>              - Print every layer of a level
//	flow3d validate <file...>        - Check level files and their solvability
//	flow3d scores [level]            - Show best solve times
//	flow3d serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.flow3d/config.yaml, ./configs/flow3d.yaml)
//	--db <path>         - Solve database (default: ~/.flow3d/solves.db)
//	--levels <dir>      - Directory of extra level files
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flow3d",
	Short: "Flow3D - connect the dots through a cube",
	Long: `Flow3D is a connect-the-dots puzzle played in a cube. Join every pair
of same-colored starts with a flow so that the flows fill every cell.

Available commands:
  list      - Show all levels
  play      - Play a level in the terminal
  show      - Print the layers of a level
  validate  - Check level files
  scores    - View best solve times
  serve     - Start SSH server for remote play

Examples:
  flow3d list
  flow3d play easy
  flow3d show medium --solution
  flow3d validate ./levels/*.yaml
  flow3d serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
