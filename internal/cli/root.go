// Package cli is the command-line entry point: it parses flags, builds the
// components and runs the UI.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/audio"
	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/logger"
	"github.com/llehouerou/tplay/internal/transport"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNoTracks = 2
)

type flags struct {
	configPath  string
	logLevel    string
	afterFinish string
	probe       bool
}

// setup is what the UI needs once startup checks have passed.
type setup struct {
	cfg     *config.Config
	log     *zap.Logger
	cat     *catalog.Catalog
	policy  transport.AfterFinish
	sources []string
}

// runFunc runs the UI over a prepared setup.
type runFunc func(s *setup) error

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stderr, runUI)
}

func execute(args []string, errOut io.Writer, run runFunc) int {
	cmd := newRootCmd(run)
	cmd.SetArgs(args)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(errOut, errmsg.WithHints("tplay: "+err.Error(), err))
	if errors.Is(err, catalog.ErrNoTracksFound) {
		return ExitNoTracks
	}
	return ExitFailure
}

func newRootCmd(run runFunc) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "tplay [paths...]",
		Short: "tplay plays local audio files in the terminal.",
		Long: `tplay loads audio files (mp3, flac, wav, ogg) from the given files and
directories and plays them with keyboard transport controls.

Without paths it plays music_dir from the config, else ~/Music, else the
current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(f, args)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()
			return run(s)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "additional config file, loaded last")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.afterFinish, "after-finish", "", "what play does after the last track ended: next-or-replay, next-or-stop or loop")
	cmd.Flags().BoolVar(&f.probe, "probe-durations", false, "decode headers at startup to show every track's duration")
	return cmd
}

// prepare loads the config, opens the log and builds the catalog. Nothing
// touches the audio device or the terminal yet.
func prepare(f flags, args []string) (*setup, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, errors.Wrap(err, string(errmsg.OpConfigLoad))
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.afterFinish != "" {
		cfg.Playback.AfterFinish = f.afterFinish
	}
	policy, err := transport.ParseAfterFinish(cfg.Playback.AfterFinish)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, errors.Wrap(err, string(errmsg.OpLogOpen))
	}

	sources := args
	if len(sources) == 0 {
		sources = []string{defaultSource(cfg.MusicDir)}
	}
	loader := catalog.Loader{Log: log}
	if f.probe {
		loader.Probe = audio.ProbeDuration
	}
	cat, err := loader.Load(sources...)
	if err != nil {
		_ = log.Sync()
		err = errors.Wrap(err, string(errmsg.OpCatalogLoad))
		return nil, errors.WithHintf(err, "searched: %s", strings.Join(sources, ", "))
	}

	log.Info("starting",
		zap.Strings("sources", sources),
		zap.Int("tracks", cat.Len()),
		zap.Stringer("after_finish", policy),
	)
	return &setup{cfg: cfg, log: log, cat: cat, policy: policy, sources: sources}, nil
}

// defaultSource picks the directory played when no path is given.
func defaultSource(musicDir string) string {
	if musicDir != "" {
		return musicDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Music")
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return "."
}
