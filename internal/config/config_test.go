//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := expandPath(tt.input); result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, want config.toml", paths[len(paths)-1])
	}
	if filepath.Base(filepath.Dir(paths[0])) != "tplay" {
		t.Errorf("first path = %q, want a tplay config dir", paths[0])
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "unicode", cfg.Icons)
	assert.True(t, cfg.MPRIS)
	assert.Equal(t, "next-or-replay", cfg.Playback.AfterFinish)
	assert.True(t, cfg.Playback.AutoAdvance)
	assert.True(t, cfg.Playback.AutoplayOnSkip)
	assert.True(t, cfg.Playback.SkipUnplayable)
	assert.Equal(t, 5*time.Second, cfg.Playback.SeekStep)
	assert.InDelta(t, 0.1, cfg.Playback.VolumeStep, 1e-9)
	assert.Equal(t, 200*time.Millisecond, cfg.UI.TickInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.State.Enabled)
	require.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExplicitFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
music_dir = "/srv/music"
mpris = false

[playback]
after_finish = "loop"
auto_advance = false
seek_step = "10s"

[ui]
tick_interval = "150ms"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/music", cfg.MusicDir)
	assert.False(t, cfg.MPRIS, "explicit false survives defaults")
	assert.Equal(t, "loop", cfg.Playback.AfterFinish)
	assert.False(t, cfg.Playback.AutoAdvance)
	assert.True(t, cfg.Playback.AutoplayOnSkip, "unset keys keep defaults")
	assert.Equal(t, 10*time.Second, cfg.Playback.SeekStep)
	assert.Equal(t, 150*time.Millisecond, cfg.UI.TickInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tick too fast", "[ui]\ntick_interval = \"20ms\"\n"},
		{"tick too slow", "[ui]\ntick_interval = \"1s\"\n"},
		{"unknown policy", "[playback]\nafter_finish = \"shuffle\"\n"},
		{"unknown icons", "icons = \"emoji\"\n"},
		{"volume step zero", "[playback]\nvolume_step = 0.0\n"},
		{"unknown log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "this is = = not toml"))
	assert.Error(t, err)
}
