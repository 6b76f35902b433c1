package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flow3d/internal/config"
	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/storage"
)

// app bundles what every command needs: the resolved config and a logger.
type app struct {
	cfg    config.Config
	level  log.Level
	logger *log.Logger
}

// newApp loads the config and applies the global flag overrides.
func newApp(logOut io.Writer) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.LevelsDir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		level:  level,
		logger: logging.New(logOut, level, "flow3d"),
	}
	a.logger.Debug("config loaded", "levels", cfg.LevelsDir, "db", cfg.DBPath, "theme", cfg.Theme)
	return a, nil
}

// loader returns a level loader over the built-in levels and the levels dir.
func (a *app) loader() *levels.Loader {
	return levels.NewLoader(config.ExpandHome(a.cfg.LevelsDir), a.logger)
}

// loadLevels loads every level, failing when there are none.
func (a *app) loadLevels() ([]levels.Level, error) {
	lvls, err := a.loader().LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return lvls, nil
}

// openStore opens the solve database.
func (a *app) openStore() (*storage.Store, error) {
	return storage.Open(a.cfg.DBPath)
}

// player returns the name recorded with local solves.
func (a *app) player() string {
	if a.cfg.Player != "" {
		return a.cfg.Player
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
