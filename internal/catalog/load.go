package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/audio"
)

// Loader builds a catalog from files and directories.
type Loader struct {
	// Log receives skipped entries. Nil discards.
	Log *zap.Logger
	// Probe, when set, computes track durations at load time. Decoding every
	// header is slow on large libraries, so it is off unless asked for.
	Probe func(path string) (time.Duration, error)
}

// Load resolves each path (file or directory, walked recursively) into tracks.
// Directory contents are sorted by path; explicit files keep argument order.
// Unreadable entries are skipped. ErrNoTracksFound is returned when nothing
// playable remains.
func (l Loader) Load(paths ...string) (*Catalog, error) {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			log.Warn("skipping path", zap.String("path", root), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			if audio.IsSupported(root) {
				add(root)
			}
			continue
		}
		found, err := findMusicFiles(root, log)
		if err != nil {
			log.Warn("scan failed", zap.String("path", root), zap.Error(err))
		}
		for _, f := range found {
			add(f)
		}
	}

	tracks := make([]Track, 0, len(files))
	for _, path := range files {
		t, err := l.readTrack(path)
		if err != nil {
			log.Warn("skipping unreadable track", zap.String("path", path), zap.Error(err))
			continue
		}
		tracks = append(tracks, t)
	}

	if len(tracks) == 0 {
		return nil, errors.WithHint(ErrNoTracksFound, "pass a directory or files with .mp3, .flac, .wav or .ogg extensions")
	}
	log.Info("catalog loaded", zap.Int("tracks", len(tracks)))
	return New(tracks...), nil
}

func findMusicFiles(root string, log *zap.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Keep walking past unreadable subdirectories.
			if path == root {
				return err
			}
			log.Debug("walk error", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && audio.IsSupported(path) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func (l Loader) readTrack(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return Track{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Track{}, err
	}

	t := Track{
		Path:  path,
		Title: titleFromPath(path),
		Size:  info.Size(),
	}

	// Missing or unparsable tags are common; fall back to the file name.
	if m, err := tag.ReadFrom(f); err == nil {
		if title := m.Title(); title != "" {
			t.Title = title
		}
		t.Artist = m.Artist()
		t.Album = m.Album()
		t.TrackNumber, _ = m.Track()
	}

	if l.Probe != nil {
		d, err := l.Probe(path)
		if err != nil {
			return Track{}, err
		}
		t.Duration = d
	}
	return t, nil
}
