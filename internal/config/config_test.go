package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cricklet/movehighlight/internal/helpers"
)

func TestDefaultIsValid(t *testing.T) {
	assert.True(t, IsNil(Default().Validate()))
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
server:
  port: 9000
log:
  level: debug
  format: json
friendly_color: black
threat_workers: 3
`))
	require.True(t, IsNil(err), err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 64, cfg.Render.SquareSize)
	assert.Equal(t, "black", cfg.FriendlyColor)
	assert.Equal(t, 3, cfg.ThreatWorkers)
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{
		"server: [",
		"server:\n  port: -1",
		"friendly_color: red",
		"render:\n  square_size: 2",
		"log:\n  format: xml",
	} {
		_, err := Parse([]byte(raw))
		assert.False(t, IsNil(err), raw)
	}
}

func TestLoadWithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	t.Setenv("MOVEHIGHLIGHT_PORT", "9100")
	t.Setenv("MOVEHIGHLIGHT_FRIENDLY_COLOR", "black")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.True(t, IsNil(err), err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "black", cfg.FriendlyColor)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.False(t, IsNil(err))
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("MOVEHIGHLIGHT_PORT", "eighty")
	_, err := Load("")
	assert.False(t, IsNil(err))
}
