package config

import (
	_ "embed"
)

//go:embed defaults/flow3d.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
// It matches defaults/flow3d.yaml.
func Default() Config {
	return Config{
		LevelsDir: "~/.flow3d/levels",
		DBPath:    "~/.flow3d/solves.db",
		Theme:     "default",
		LogLevel:  "info",
		Solver: SolverConfig{
			MaxSteps: 2_000_000,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            "~/.flow3d/host_key",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
