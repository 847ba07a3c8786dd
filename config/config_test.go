package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "", cfg.Namespace)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"namespace = \"vpn\"\n\n[logging]\nlevel = \"debug\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "vpn", cfg.Namespace)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unspecified fields keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadInvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("namespace = [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoggingConfigToSpec(t *testing.T) {
	c := LoggingConfig{Level: "warn"}
	assert.Equal(t, "warn", c.ToSpec())

	c = LoggingConfig{Components: map[string]string{"monitor": "debug"}}
	assert.Equal(t, "info,monitor=debug", c.ToSpec())

	c = LoggingConfig{}
	assert.Equal(t, "", c.ToSpec())
}
