package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "test")
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9092, cfg.Port)
	require.Equal(t, "release", cfg.Mode)
	require.Equal(t, 54*time.Second, cfg.PingPeriod)
	require.Equal(t, "ws://localhost:9092/ws/signal", cfg.RelayURL)
	require.NotEmpty(t, cfg.STUNServers)
	require.Equal(t, 10, cfg.JoinLimit)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("CONFIG_ENV", "test")
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := []byte("mode: debug\nport: 9999\nrelay_url: ws://relay.example.org/ws/signal\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.test.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Mode)
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, "ws://relay.example.org/ws/signal", cfg.RelayURL)
	// Untouched keys keep their defaults.
	require.Equal(t, int64(65536), cfg.ReadLimit)
}
