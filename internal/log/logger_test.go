package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "TRUE")
	t.Setenv(EnvFile, "")
	opts := FromEnv()
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "json", opts.Format)
	assert.True(t, opts.AddSource)
	assert.Empty(t, opts.File)
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	l := InitWriter(Options{Level: "info"}, &buf)
	l.Debug("hidden")
	l.Info("frame rendered", "markers", 3, "name", "two words")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF frame rendered")
	assert.Contains(t, out, "markers=3")
	assert.Contains(t, out, `name="two words"`)
	assert.Contains(t, out, "app=frender")
}

func TestComponentAttrs(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(Options{Level: "debug", Format: "json"}, &buf)
	WithOperation(WithComponent("demo"), "switch").Debug("next")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "demo", rec["component"])
	assert.Equal(t, "switch", rec["op"])
	assert.Equal(t, "next", rec["msg"])
}

func TestFileOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "frender.log")
	l := InitWriter(Options{Level: "warn", File: path}, &buf)
	l.Info("skipped")
	l.Warn("written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
	assert.NotContains(t, string(data), "skipped")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
