// Package config provides YAML-based configuration loading for Flow3D.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the CLI, the TUI and the SSH server.
type Config struct {
	LevelsDir string       `yaml:"levels_dir"`
	DBPath    string       `yaml:"db_path"`
	Theme     string       `yaml:"theme"`
	LogLevel  string       `yaml:"log_level"`
	Player    string       `yaml:"player"` // Name recorded with local solves, $USER when empty
	Solver    SolverConfig `yaml:"solver"`
	SSH       SSHConfig    `yaml:"ssh"`
}

// SolverConfig bounds the backtracking solver used by validate and hints.
type SolverConfig struct {
	MaxSteps int `yaml:"max_steps"` // 0 means unbounded
}

// SSHConfig defines the SSH front end.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MetricsAddress     string `yaml:"metrics_address"` // HTTP metrics and scores, disabled when empty
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks values that YAML cannot constrain.
func (c Config) Validate() error {
	if c.Solver.MaxSteps < 0 {
		return fmt.Errorf("solver.max_steps must not be negative, got %d", c.Solver.MaxSteps)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("ssh.address must be set")
	}
	if c.SSH.MetricsAddress != "" && c.SSH.MetricsAddress == c.SSH.Address {
		return fmt.Errorf("ssh.metrics_address must differ from ssh.address")
	}
	return nil
}
