// internal/audio/mock.go
package audio

import (
	"sync"
	"time"
)

// Mock is a test double for Output. It keeps count of live streams so tests
// can check that at most one handle exists at a time.
type Mock struct {
	mu        sync.Mutex
	openErrs  map[string]error
	startErr  error
	durations map[string]time.Duration
	opened    []string
	streams   []*MockStream
	live      int
	maxLive   int
}

// NewMock creates a mock output where every path opens successfully.
func NewMock() *Mock {
	return &Mock{
		openErrs:  make(map[string]error),
		durations: make(map[string]time.Duration),
	}
}

func (m *Mock) Open(path string) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opened = append(m.opened, path)
	if err := m.openErrs[path]; err != nil {
		return nil, err
	}

	st := &MockStream{
		mock:     m,
		path:     path,
		duration: m.durations[path],
		startErr: m.startErr,
		level:    1,
		done:     make(chan struct{}),
	}
	m.streams = append(m.streams, st)
	m.live++
	m.maxLive = max(m.maxLive, m.live)
	return st, nil
}

// Test helpers

// FailOpen makes Open(path) return err.
func (m *Mock) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErrs[path] = err
}

// FailStart makes Start fail with err on streams opened afterwards.
func (m *Mock) FailStart(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startErr = err
}

// SetDuration sets the duration reported by streams opened for path.
func (m *Mock) SetDuration(path string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[path] = d
}

// Opened returns every path passed to Open, including failed ones.
func (m *Mock) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

// Live returns the number of opened and not yet closed streams.
func (m *Mock) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// MaxLive returns the highest number of simultaneously live streams seen.
func (m *Mock) MaxLive() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxLive
}

// Last returns the most recently opened stream, or nil.
func (m *Mock) Last() *MockStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.streams) == 0 {
		return nil
	}
	return m.streams[len(m.streams)-1]
}

// MockStream is the Stream returned by Mock.
type MockStream struct {
	mock     *Mock
	path     string
	startErr error

	mu       sync.Mutex
	position time.Duration
	duration time.Duration
	level    float64
	started  bool
	paused   bool
	closed   bool
	err      error
	done     chan struct{}
	doneOnce sync.Once
}

func (s *MockStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *MockStream) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

func (s *MockStream) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

func (s *MockStream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.mock.mu.Lock()
	s.mock.live--
	s.mock.mu.Unlock()
	return nil
}

func (s *MockStream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *MockStream) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

func (s *MockStream) Seek(to time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = min(max(to, 0), s.duration)
	return nil
}

func (s *MockStream) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = clampLevel(level)
}

func (s *MockStream) Done() <-chan struct{} { return s.done }

func (s *MockStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Path returns the path the stream was opened for.
func (s *MockStream) Path() string { return s.path }

// Advance moves the playback position forward by d unless paused or stopped.
func (s *MockStream) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started && !s.paused && !s.closed {
		s.position += d
	}
}

// Finish simulates the end of the stream. A non-nil err is reported by Err.
func (s *MockStream) Finish(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.doneOnce.Do(func() { close(s.done) })
}

// Started reports whether Start succeeded.
func (s *MockStream) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Paused reports whether the stream is paused.
func (s *MockStream) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Closed reports whether Close was called.
func (s *MockStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Volume returns the last level set.
func (s *MockStream) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Verify Mock implements Output at compile time.
var (
	_ Output = (*Mock)(nil)
	_ Stream = (*MockStream)(nil)
)
