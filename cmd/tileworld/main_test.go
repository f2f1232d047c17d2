package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tileworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stage: pan\nwindow:\n  width: 800\n  height: 600\n"), 0o644))

	cmd, opts := parseFlags(t, "--config", path, "--height", "400", "--stage", "move")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 400, cfg.Window.Height)
	assert.Equal(t, "move", cfg.Stage)
}

func TestLoadConfigUnsetFlagsKeepFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tileworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  watch: true\n  path: maps/a.yaml\n"), 0o644))

	cmd, opts := parseFlags(t, "-c", path)

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.True(t, cfg.Level.Watch)
	assert.Equal(t, "maps/a.yaml", cfg.Level.Path)
	assert.Equal(t, "follow", cfg.Stage)
}

func TestLoadConfigRejectsBadStage(t *testing.T) {
	cmd, opts := parseFlags(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "--stage", "zoom")

	_, err := loadConfig(cmd, opts)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoadLevel(t *testing.T) {
	cmd, opts := parseFlags(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	lvl, err := loadLevel(cfg)
	require.NoError(t, err)
	assert.Equal(t, 28, lvl.Cols())

	cfg.Level.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = loadLevel(cfg)
	assert.Error(t, err)
}
