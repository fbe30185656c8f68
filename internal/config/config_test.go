package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.Equal(t, 30*time.Second, cfg.CheckpointInterval)
}

func TestLoadFillsOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/duelrewind\nmetrics_enabled: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/duelrewind", cfg.DataDir)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.Equal(t, 30*time.Second, cfg.CheckpointInterval)
}

func TestLoadOverridesCheckpointInterval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkpoint_interval: 10s\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.CheckpointInterval)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
