package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// MusicDir is played when no path is given.
	MusicDir string `koanf:"music_dir"`
	Icons    string `koanf:"icons" default:"unicode" validate:"oneof=nerd unicode none"`
	// MPRIS exposes media keys over D-Bus (linux).
	MPRIS bool `koanf:"mpris" default:"true"`

	Playback PlaybackConfig `koanf:"playback"`
	UI       UIConfig       `koanf:"ui"`
	Log      LogConfig      `koanf:"log"`
	State    StateConfig    `koanf:"state"`
}

// PlaybackConfig controls transport behaviour.
type PlaybackConfig struct {
	AfterFinish    string        `koanf:"after_finish" default:"next-or-replay" validate:"oneof=next-or-replay next-or-stop loop"`
	AutoAdvance    bool          `koanf:"auto_advance" default:"true"`     // start the next track when one ends
	AutoplayOnSkip bool          `koanf:"autoplay_on_skip" default:"true"` // keep playing across next/previous
	SkipUnplayable bool          `koanf:"skip_unplayable" default:"true"`  // move past tracks that fail to decode
	SeekStep       time.Duration `koanf:"seek_step" default:"5s" validate:"min=1s,max=5m"`
	VolumeStep     float64       `koanf:"volume_step" default:"0.1" validate:"gt=0,lte=1"`
	Volume         float64       `koanf:"volume" default:"1" validate:"gte=0,lte=1"` // initial level when no state is saved
}

// UIConfig controls the event loop.
type UIConfig struct {
	TickInterval time.Duration `koanf:"tick_interval" default:"200ms" validate:"min=100ms,max=250ms"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level      string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	Path       string `koanf:"path"` // empty means $XDG_STATE_HOME/tplay/tplay.log
	MaxSizeMB  int    `koanf:"max_size_mb" default:"5" validate:"gte=1"`
	MaxBackups int    `koanf:"max_backups" default:"3" validate:"gte=0"`
}

// StateConfig controls the session state database.
type StateConfig struct {
	Enabled bool   `koanf:"enabled" default:"true"`
	Path    string `koanf:"path"` // empty means $XDG_DATA_HOME/tplay/tplay.db
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	// Only fails on malformed default tags.
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the config files in order of priority (last wins). extra, when
// not empty, is loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", extra)
		}
	}

	// Defaults first so that explicit false/zero values in files win.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.Log.Path = expandPath(cfg.Log.Path)
	cfg.State.Path = expandPath(cfg.State.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tplay/config.toml
		filepath.Join(xdg.ConfigHome, "tplay", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
