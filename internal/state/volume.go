package state

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
)

// Playback is the saved playback state.
type Playback struct {
	Volume    float64
	LastPath  string
	UpdatedAt time.Time
}

// GetPlayback returns the saved state, or nil if nothing was saved yet.
func (m *Manager) GetPlayback() (*Playback, error) {
	return getPlayback(m.db)
}

// SaveVolume persists the volume level.
func (m *Manager) SaveVolume(volume float64) error {
	_, err := m.db.Exec(`
		INSERT INTO playback_state (id, volume, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			updated_at = excluded.updated_at
	`, volume, time.Now().Unix())
	return errors.Wrap(err, "save volume")
}

func getPlayback(db *sql.DB) (*Playback, error) {
	var p Playback
	var updated int64

	row := db.QueryRow(`SELECT volume, last_path, updated_at FROM playback_state WHERE id = 1`)
	err := row.Scan(&p.Volume, &p.LastPath, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is not an error
	}
	if err != nil {
		return nil, errors.Wrap(err, "read playback state")
	}
	p.UpdatedAt = time.Unix(updated, 0)
	return &p, nil
}

func saveLastPath(db *sql.DB, path string) error {
	_, err := db.Exec(`
		INSERT INTO playback_state (id, last_path, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_path = excluded.last_path,
			updated_at = excluded.updated_at
	`, path, time.Now().Unix())
	return errors.Wrap(err, "save last track")
}
