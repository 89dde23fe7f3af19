//go:build !linux

package mpris

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/transport"
)

// Controller is the part of the engine driven over D-Bus.
type Controller interface {
	Play() error
	Pause() error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	Seek(delta time.Duration) error
	SeekTo(pos time.Duration) error
	SetVolume(level float64)
	Status() transport.Status
}

// Adapter is a no-op where D-Bus is not available.
type Adapter struct{}

// New returns a no-op adapter.
func New(_ Controller, _ *zap.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op.
func (a *Adapter) Close() error {
	return nil
}
