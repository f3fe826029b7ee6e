package goCommon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrEthical07/goCommon/result"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "Config.Log.Level"},
		{"empty format", func(c *Config) { c.Log.Format = "" }, "Config.Log.Format"},
		{"unknown output", func(c *Config) { c.Log.Output = "/var/log/x" }, "Config.Log.Output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.True(t, result.HasKind(err, result.KindValue))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("log:\n  level: debug\nmetrics:\n  track_truncations: false\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format, "unset keys keep defaults")
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Metrics.TrackTruncations)
}

func TestParseConfigEmptyDocument(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigSyntaxErrors(t *testing.T) {
	for _, doc := range []string{
		"log: [unclosed",
		"log:\n  colour: red\n",
	} {
		_, err := ParseConfig([]byte(doc))
		require.Error(t, err, doc)
		assert.True(t, result.HasKind(err, result.KindSyntax), "expected syntax kind for %q, got %v", doc, err)
	}
}

func TestParseConfigValidationError(t *testing.T) {
	_, err := ParseConfig([]byte("log:\n  format: xml\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gocommon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: console\n  output: stdout\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, result.HasKind(err, result.KindOS))

	var e result.Error
	require.True(t, errors.As(err, &e))
	assert.Contains(t, e.Describe(), "OSError: ")
}
