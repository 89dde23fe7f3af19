package transport

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTransition is returned when a command is not valid in the
	// current state. The state is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrEndOfCatalog is returned by Play from Finished on the last track
	// under the next-or-stop policy.
	ErrEndOfCatalog = errors.New("end of catalog")
	// ErrEmptyCatalog is returned by Play when there is nothing to play.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

func invalid(cmd Command, s State) error {
	return errors.Wrapf(ErrInvalidTransition, "%s while %s", cmd, s)
}
