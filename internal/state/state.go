// Package state persists what the player remembers between runs: the volume
// and the last track played. The catalog itself is never stored.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "tplay"
	dbFileName   = "tplay.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *string
}

// Open opens the database at path, or $XDG_DATA_HOME/tplay/tplay.db when
// path is empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create state directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open state database")
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init state schema")
	}

	return &Manager{db: db}, nil
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close flushes a pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var flushErr error
	if pending != nil {
		flushErr = saveLastPath(m.db, *pending)
	}

	return errors.CombineErrors(flushErr, m.db.Close())
}

// SaveLastTrack records path as the last played track. Writes are debounced
// so rapid track changes only hit the disk once.
func (m *Manager) SaveLastTrack(path string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &path

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveLastPath(m.db, *pending)
		}
	})
}
