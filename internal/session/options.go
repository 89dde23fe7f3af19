package session

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRefreshInterval sets how often the snapshot is refreshed.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.refresh = d
		}
	}
}

// WithVolume sets the initial output level.
func WithVolume(level float64) Option {
	return func(s *Session) {
		s.level = min(max(level, 0), 1)
	}
}
