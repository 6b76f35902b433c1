package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow3d.yaml")
	data := []byte("theme: neon\nsolver:\n  max_steps: 500\nssh:\n  idle_timeout_minutes: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, 500, cfg.Solver.MaxSteps)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout())

	// Keys absent from the file keep defaults.
	assert.Equal(t, Default().DBPath, cfg.DBPath)
	assert.Equal(t, Default().SSH.Address, cfg.SSH.Address)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  max_steps: -1\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_steps")

	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded default when nothing else exists")

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "flow3d.yaml"), []byte("theme: mono\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".flow3d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".flow3d", "config.yaml"), []byte("theme: neon\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme, "user config wins over local")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.SSH.Address = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SSH.IdleTimeoutMinutes = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SSH.MetricsAddress = cfg.SSH.Address
	assert.Error(t, cfg.Validate())

	cfg.SSH.MetricsAddress = ":9090"
	assert.NoError(t, cfg.Validate())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".flow3d", "solves.db"), ExpandHome("~/.flow3d/solves.db"))
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "", ExpandHome(""))
}
