package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bousai_recommend/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := config.Default()
	cfg.Log.Output = "file"
	cfg.Log.Format = "json"
	cfg.Log.FilePath = path

	l, err := New(cfg)
	require.NoError(t, err)
	l.Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNew_DebugSuppressedAtInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := config.Default()
	cfg.Log.Output = "file"
	cfg.Log.FilePath = path

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
