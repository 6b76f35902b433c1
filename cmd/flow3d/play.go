package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/platform/tui"
)

// debugLogFile receives TUI logs at debug level; the terminal belongs to
// the game while it runs.
const debugLogFile = "flow3d-debug.log"

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start the level menu, or play the given level directly.

Controls:
  Arrows/hjkl  - Move the cursor in the current layer
  [ and ]      - Move the cursor one layer up or down
  Space/Enter  - Grab a start or a flow, then drop the drawn path
  Esc          - Cancel the drag (or back to the menu)
  X            - Clear the flow under the cursor
  R            - Restart the level
  N            - Next level, after a win
  Q/Ctrl+C     - Quit

Examples:
  flow3d play
  flow3d play medium
  flow3d play my-level --levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lvls, err := a.loadLevels()
	if err != nil {
		return err
	}

	theme, ok := tui.ThemeByName(a.cfg.Theme)
	if !ok {
		a.logger.Warn("unknown theme, using default", "theme", a.cfg.Theme, "known", tui.ThemeNames())
	}
	tui.SetTheme(theme)

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open solve storage
	store, err := a.openStore()
	if err != nil {
		a.logger.Warn("could not open solve database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	tuiLogger, closeLog, err := a.tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		Levels: lvls,
		Store:  store,
		Player: a.player(),
		Logger: tuiLogger,
		Width:  width,
		Height: height,
	}
	if len(args) == 1 {
		opts.StartLevel = args[0]
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// tuiLogger returns a logger that stays off the terminal. At debug level
// it writes to debugLogFile, otherwise it discards.
func (a *app) tuiLogger() (*log.Logger, func(), error) {
	if a.level > log.DebugLevel {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	return logging.New(f, a.level, "flow3d"), func() { f.Close() }, nil
}
