package session

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoHandle is returned by commands that need an open track.
	ErrNoHandle = errors.New("no track loaded")
	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("session closed")
)

// DecodeError reports a track that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err contains a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
