package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"roomBooker/internal/models"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: dev
http_server:
  address: 0.0.0.0:9090
  timeout: 2s
booking:
  room_window: "08:30-19:00"
  seed: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.False(t, cfg.Database.Enabled)
	assert.True(t, cfg.Booking.Seed)
	assert.Equal(t, time.Minute, cfg.Booking.SnapshotInterval)

	windows, err := cfg.Booking.Windows()
	require.NoError(t, err)
	assert.Equal(t, models.Window{Start: models.NewTimeOfDay(0, 0), End: models.NewTimeOfDay(23, 59)}, windows[models.KindWorkspace])
	assert.Equal(t, models.Window{Start: models.NewTimeOfDay(8, 30), End: models.NewTimeOfDay(19, 0)}, windows[models.KindConferenceRoom])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "booking:\n  room_window: \"18:00-09:00\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "booking:\n  workspace_window: \"all day\"\n"))
	assert.Error(t, err)
}
