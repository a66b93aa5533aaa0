package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.in), v.in)
	}
}

func TestInitFile(t *testing.T) {
	def := slog.Default()
	t.Cleanup(func() { slog.SetDefault(def) })

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "warn", Destination: "file"}
	path := filepath.Join(dir, LogFile)

	for i, appendLog := range []bool{false, true, false} {
		closeLog, err := Init(dir, cfg, appendLog)
		require.NoError(t, err)
		slog.Info("hidden")
		slog.Warn("shown", "run", i)
		require.NoError(t, closeLog())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		switch i {
		case 1:
			assert.Contains(t, string(data), `"run":0`)
			assert.Contains(t, string(data), `"run":1`)
		default:
			assert.Contains(t, string(data), `"run":`+string(rune('0'+i)))
			assert.NotContains(t, string(data), `"run":1`)
		}
	}
}

func TestInitNoDir(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	_, err := Init(filepath.Join(t.TempDir(), "missing"), cfg, true)
	assert.Error(t, err)
}
