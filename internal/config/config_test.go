package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/apprise-node/internal/config"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://apprise.org", cfg.AppriseDomain)
	assert.Zero(t, cfg.AppriseTimeout)
	assert.Equal(t, 1000, cfg.MaxBatchSize)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APPRISE_DOMAIN", "http://apprise:8000")
	t.Setenv("APPRISE_TIMEOUT", "15s")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://apprise:8000", cfg.AppriseDomain)
	assert.Equal(t, 15*time.Second, cfg.AppriseTimeout)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APPRISE_TIMEOUT", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MAX_BATCH_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
