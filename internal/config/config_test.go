package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "0.0.0.0:35814", cfg.Address())
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: "9000"
  pprof: true
relay:
  fetchTimeout: 5s
  maxImageBytes: 1024
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.True(t, cfg.Server.Pprof)
	assert.Equal(t, 5*time.Second, cfg.Relay.FetchTimeout)
	assert.Equal(t, 60*time.Second, cfg.Relay.InvokeTimeout)
	assert.Equal(t, int64(1024), cfg.Relay.MaxImageBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("RELAY_SERVER_PORT", "12345")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "12345", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Relay.FetchTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Relay.MaxImageBytes = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}

func TestValidateServerMode(t *testing.T) {
	cfg := Default()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())

	cfg.Server.Mode = "debug"
	assert.NoError(t, cfg.Validate())
}
