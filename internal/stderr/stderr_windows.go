//go:build windows

package stderr

import "go.uber.org/zap"

// Capture is inert on Windows; its audio backend does not write to fd 2.
type Capture struct {
	Lines <-chan string
}

// Start returns an inert capture.
func Start(_ *zap.Logger) (*Capture, error) {
	return &Capture{Lines: make(chan string)}, nil
}

// Stop is a no-op on Windows.
func (c *Capture) Stop() {}
