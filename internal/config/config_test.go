package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvWidth, EnvHeight, EnvFPS, EnvDemo, EnvScale, EnvLogLevel, EnvLogFormat, EnvLogSource, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadMergesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 320
  title: " preview "
demo:
  name: Lines
logging:
  level: DEBUG
  source: true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep defaults")
	assert.Equal(t, "preview", cfg.Window.Title)
	assert.Equal(t, "lines", cfg.Demo.Name)
	assert.Equal(t, 20, cfg.Demo.Scale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Source)
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o600))
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Defaults().Window, cfg.Window)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWidth, "1024")
	t.Setenv(EnvFPS, "not-a-number")
	t.Setenv(EnvScale, "-3")
	t.Setenv(EnvDemo, "Builder")
	t.Setenv(EnvLogSource, "yes")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 30, cfg.Window.FPS)
	assert.Equal(t, 20, cfg.Demo.Scale)
	assert.Equal(t, "builder", cfg.Demo.Name)
	assert.True(t, cfg.Logging.Source)

	env, ok := EnvOverrideFor("window.width")
	assert.True(t, ok)
	assert.Equal(t, EnvWidth, env)
	_, ok = EnvOverrideFor("window.height")
	assert.False(t, ok)
	_, ok = EnvOverrideFor("export.dir")
	assert.False(t, ok)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Defaults()
	cfg.Demo.Name = "lines"
	cfg.Export.Format = "pdf"
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigPathXDG(t *testing.T) {
	if os.Getenv("HOME") == "" {
		t.Skip("no HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(p))
}
