package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tplay.log")

	log, err := New(Config{Level: "debug", Path: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug("transition", zap.String("to", "Playing"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"transition"`)
	assert.Contains(t, string(data), `"to":"Playing"`)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tplay.log")

	log, err := New(Config{Level: "warn", Path: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty", Path: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "tplay.log", filepath.Base(DefaultPath()))
	assert.Equal(t, "tplay", filepath.Base(filepath.Dir(DefaultPath())))
}
