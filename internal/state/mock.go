// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	playback *Playback
	saveErr  error
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPlayback() (*Playback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playback == nil {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	p := *m.playback
	return &p, nil
}

func (m *Mock) SaveVolume(volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ensure().Volume = volume
	return nil
}

func (m *Mock) SaveLastTrack(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure().LastPath = path
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) ensure() *Playback {
	if m.playback == nil {
		m.playback = &Playback{Volume: 1}
	}
	return m.playback
}

// Test helpers

func (m *Mock) SetPlayback(p *Playback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playback = p
}

func (m *Mock) FailSave(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
