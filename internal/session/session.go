// Package session owns the single live audio handle. Every command and the
// end-of-stream observation run on one owner goroutine; the UI side reads a
// cached snapshot through Poll, which never blocks.
package session

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/audio"
	"github.com/llehouerou/tplay/internal/catalog"
)

// RefreshInterval is the default period at which the snapshot is refreshed
// from the handle's position.
const RefreshInterval = 50 * time.Millisecond

// Progress is the snapshot returned by Poll.
type Progress struct {
	Elapsed  time.Duration
	Duration time.Duration
	// Finished is true in exactly one Poll after the handle reached its end.
	Finished bool
	// Err is the decoder error seen at end of stream, if any. Only set
	// together with Finished.
	Err error
}

type request struct {
	fn    func() error
	reply chan error
}

// Session serialises all access to the live audio handle.
type Session struct {
	out     audio.Output
	log     *zap.Logger
	refresh time.Duration

	reqs      chan request
	quit      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once

	// Owned by the loop goroutine.
	handle   audio.Stream
	path     string
	ended    bool
	elapsed  time.Duration
	duration time.Duration
	level    float64

	// Guards the published snapshot.
	mu        sync.Mutex
	snap      Progress
	live      bool
	finished  bool
	finishErr error
}

// New starts the owner goroutine. Call Close to stop it.
func New(out audio.Output, opts ...Option) *Session {
	s := &Session{
		out:     out,
		log:     zap.NewNop(),
		refresh: RefreshInterval,
		level:   1,
		reqs:    make(chan request),
		quit:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

func (s *Session) run() {
	defer close(s.exited)

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		var done <-chan struct{}
		if s.handle != nil && !s.ended {
			done = s.handle.Done()
		}

		select {
		case r := <-s.reqs:
			err := r.fn()
			s.publish()
			r.reply <- err

		case <-done:
			s.ended = true
			err := s.handle.Err()
			if err != nil {
				s.log.Warn("stream ended with error", zap.String("path", s.path), zap.Error(err))
			} else {
				s.log.Debug("stream ended", zap.String("path", s.path))
			}
			s.setFinished(err)
			s.publish()

		case <-ticker.C:
			s.publish()

		case <-s.quit:
			s.release()
			s.publish()
			return
		}
	}
}

// do runs fn on the owner goroutine and waits for it.
func (s *Session) do(fn func() error) error {
	r := request{fn: fn, reply: make(chan error, 1)}
	select {
	case s.reqs <- r:
		return <-r.reply
	case <-s.exited:
		return ErrClosed
	}
}

// publish refreshes the snapshot. Loop goroutine only.
func (s *Session) publish() {
	if s.handle != nil && !s.ended {
		// Elapsed never goes backwards on its own; seeks set it explicitly.
		if pos := s.handle.Position(); pos > s.elapsed {
			s.elapsed = pos
		}
		if d := s.handle.Duration(); d > 0 {
			s.duration = d
		}
	}

	s.mu.Lock()
	s.snap.Elapsed = s.elapsed
	s.snap.Duration = s.duration
	s.live = s.handle != nil
	s.mu.Unlock()
}

func (s *Session) setFinished(err error) {
	s.mu.Lock()
	s.finished = true
	s.finishErr = err
	s.mu.Unlock()
}

func (s *Session) clearFinished() {
	s.mu.Lock()
	s.finished = false
	s.finishErr = nil
	s.mu.Unlock()
}

// release closes the handle if any. Loop goroutine only.
func (s *Session) release() {
	if s.handle == nil {
		return
	}
	if err := s.handle.Close(); err != nil {
		s.log.Warn("close stream", zap.String("path", s.path), zap.Error(err))
	}
	s.handle = nil
	s.path = ""
	s.ended = false
	s.elapsed = 0
	s.duration = 0
}

// Open releases any held handle, then opens track. On failure no handle is
// held and a *DecodeError is returned.
func (s *Session) Open(track catalog.Track) error {
	return s.do(func() error {
		s.release()
		s.clearFinished()

		h, err := s.out.Open(track.Path)
		if err != nil {
			return &DecodeError{Path: track.Path, Err: err}
		}
		h.SetVolume(s.level)

		s.handle = h
		s.path = track.Path
		s.duration = h.Duration()
		if s.duration == 0 {
			s.duration = track.Duration
		}
		s.log.Debug("opened", zap.String("path", track.Path), zap.Duration("duration", s.duration))
		return nil
	})
}

// Start begins output on the held handle. If the output cannot start the
// handle is released.
func (s *Session) Start() error {
	return s.do(func() error {
		if s.handle == nil {
			return ErrNoHandle
		}
		if err := s.handle.Start(); err != nil {
			path := s.path
			s.release()
			return errors.Wrapf(err, "start %s", path)
		}
		return nil
	})
}

// Pause suspends output. No-op without a handle.
func (s *Session) Pause() {
	_ = s.do(func() error {
		if s.handle != nil && !s.ended {
			s.handle.Pause()
		}
		return nil
	})
}

// Resume continues output. No-op without a handle.
func (s *Session) Resume() {
	_ = s.do(func() error {
		if s.handle != nil && !s.ended {
			s.handle.Resume()
		}
		return nil
	})
}

// Stop releases the handle. Safe to call repeatedly.
func (s *Session) Stop() {
	_ = s.do(func() error {
		s.release()
		s.clearFinished()
		return nil
	})
}

// Seek moves the position by delta relative to the current elapsed time.
func (s *Session) Seek(delta time.Duration) error {
	return s.do(func() error {
		return s.seekTo(s.elapsed + delta)
	})
}

// SeekTo moves to an absolute position.
func (s *Session) SeekTo(pos time.Duration) error {
	return s.do(func() error {
		return s.seekTo(pos)
	})
}

func (s *Session) seekTo(pos time.Duration) error {
	if s.handle == nil || s.ended {
		return ErrNoHandle
	}
	pos = max(pos, 0)

	if s.duration > 0 && pos >= s.duration {
		// Past the end behaves like a natural end of stream.
		s.ended = true
		s.elapsed = s.duration
		s.handle.Pause()
		s.setFinished(nil)
		return nil
	}

	if err := s.handle.Seek(pos); err != nil {
		return errors.Wrapf(err, "seek to %s", pos)
	}
	s.elapsed = pos
	return nil
}

// SetVolume sets the output level in [0, 1]. The level carries over to
// handles opened later.
func (s *Session) SetVolume(level float64) {
	level = min(max(level, 0), 1)
	_ = s.do(func() error {
		s.level = level
		if s.handle != nil {
			s.handle.SetVolume(level)
		}
		return nil
	})
}

// Poll returns the latest snapshot without blocking. The Finished flag is
// consumed by the call that observes it.
func (s *Session) Poll() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.snap
	if s.finished {
		p.Finished = true
		p.Err = s.finishErr
		s.finished = false
		s.finishErr = nil
	}
	return p
}

// Position returns the elapsed time of the latest snapshot. Unlike Poll it
// leaves the finished flag alone.
func (s *Session) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Elapsed
}

// Live reports whether a handle is held.
func (s *Session) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Close releases the handle and stops the owner goroutine. Safe to call
// more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.exited
	return nil
}
