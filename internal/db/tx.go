// Package db holds small helpers over database/sql.
package db

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

// WithTx runs fn in a transaction, committing when fn succeeds and rolling
// back otherwise.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.CombineErrors(err, errors.Wrap(rbErr, "rollback"))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}
