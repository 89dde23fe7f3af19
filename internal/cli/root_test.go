package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tplay/internal/transport"
)

// writeConfig writes a config that keeps logs and state inside dir.
func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	content := "[log]\npath = \"" + filepath.Join(dir, "tplay.log") + "\"\n" +
		"[state]\nenabled = false\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestExecute_RunsWithTracks(t *testing.T) {
	dir := t.TempDir()
	music := t.TempDir()
	touch(t, filepath.Join(music, "b.mp3"))
	touch(t, filepath.Join(music, "a.flac"))
	cfg := writeConfig(t, dir, "")

	var got *setup
	var errOut bytes.Buffer
	code := execute([]string{"--config", cfg, "--after-finish", "loop", music}, &errOut, func(s *setup) error {
		got = s
		return nil
	})

	require.Equal(t, ExitOK, code, errOut.String())
	require.NotNil(t, got)
	assert.Equal(t, 2, got.cat.Len())
	assert.Equal(t, transport.Loop, got.policy)
	assert.Equal(t, []string{music}, got.sources)
	assert.FileExists(t, filepath.Join(dir, "tplay.log"))
}

func TestExecute_NoTracks(t *testing.T) {
	dir := t.TempDir()
	empty := t.TempDir()
	cfg := writeConfig(t, dir, "")

	var errOut bytes.Buffer
	code := execute([]string{"--config", cfg, empty}, &errOut, func(*setup) error {
		t.Fatal("UI must not start without tracks")
		return nil
	})

	assert.Equal(t, ExitNoTracks, code)
	assert.Contains(t, errOut.String(), "no tracks found")
	assert.Contains(t, errOut.String(), "searched: "+empty)
}

func TestExecute_Failures(t *testing.T) {
	dir := t.TempDir()
	music := t.TempDir()
	touch(t, filepath.Join(music, "a.mp3"))
	cfg := writeConfig(t, dir, "")
	badCfg := writeConfig(t, t.TempDir(), "[ui]\ntick_interval = \"1s\"\n")

	noop := func(*setup) error { return nil }
	tests := []struct {
		name string
		args []string
		run  runFunc
	}{
		{"missing config file", []string{"--config", filepath.Join(dir, "nope.toml"), music}, noop},
		{"invalid config value", []string{"--config", badCfg, music}, noop},
		{"unknown policy", []string{"--config", cfg, "--after-finish", "shuffle", music}, noop},
		{"unknown log level", []string{"--config", cfg, "--log-level", "loud", music}, noop},
		{"unknown flag", []string{"--volume", "3"}, noop},
		{"ui failure", []string{"--config", cfg, music}, func(*setup) error { return errors.New("no terminal") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			code := execute(tt.args, &errOut, tt.run)
			assert.Equal(t, ExitFailure, code)
			assert.NotEmpty(t, errOut.String())
		})
	}
}

func TestExecute_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	music := t.TempDir()
	touch(t, filepath.Join(music, "a.mp3"))
	cfg := writeConfig(t, dir, "[playback]\nafter_finish = \"next-or-stop\"\n")

	var got *setup
	code := execute([]string{"--config", cfg, "--log-level", "debug", music}, &bytes.Buffer{}, func(s *setup) error {
		got = s
		return nil
	})

	require.Equal(t, ExitOK, code)
	assert.Equal(t, transport.NextOrStop, got.policy)
	assert.Equal(t, "debug", got.cfg.Log.Level)
}

func TestDefaultSource(t *testing.T) {
	assert.Equal(t, "/srv/music", defaultSource("/srv/music"))

	t.Setenv("HOME", t.TempDir())
	assert.Equal(t, ".", defaultSource(""))

	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "Music"), 0o755))
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, "Music"), defaultSource(""))
}
