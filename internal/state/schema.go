package state

import (
	"database/sql"

	"github.com/llehouerou/tplay/internal/db"
)

const currentSchemaVersion = 1

func initSchema(conn *sql.DB) error {
	return db.WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS playback_state (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				volume REAL NOT NULL DEFAULT 1.0,
				last_path TEXT NOT NULL DEFAULT '',
				updated_at INTEGER NOT NULL DEFAULT 0
			);
		`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}
