package app

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/session"
	"github.com/llehouerou/tplay/internal/transport"
)

// playResult reports the outcome of a command that may start output. When
// the track cannot be decoded and skipping is enabled, the following tracks
// are tried in order until one plays or the catalog ends.
func (m *Model) playResult(err error, op errmsg.Op) {
	if err == nil {
		m.clearNotice()
		return
	}
	if !session.IsDecodeError(err) || !m.playback.SkipUnplayable {
		m.report(err, op)
		return
	}

	var de *session.DecodeError
	errors.As(err, &de)
	skipped := []string{de.Path}
	for range m.engine.Status().Count {
		if nextErr := m.engine.Next(); nextErr != nil {
			// Reached the end without finding a playable track.
			break
		}
		err = m.engine.Play()
		if err == nil {
			m.log.Info("skipped unplayable tracks", zap.Strings("paths", skipped))
			m.setNotice(errmsg.FormatWith(errmsg.OpTrackDecode, filepath.Base(de.Path), de.Err)+" (skipped)", true)
			return
		}
		if !errors.As(err, &de) {
			m.report(err, op)
			return
		}
		skipped = append(skipped, de.Path)
	}
	m.log.Warn("no playable track left", zap.Strings("paths", skipped))
	m.setNotice(errmsg.FormatWith(errmsg.OpTrackDecode, filepath.Base(de.Path), de.Err), true)
}

// report shows err as a notice. Expected refusals (boundaries, commands that
// do not apply in the current state) are not errors worth showing.
func (m *Model) report(err error, op errmsg.Op) {
	if err == nil {
		return
	}
	if errors.Is(err, catalog.ErrAtBoundary) || errors.Is(err, transport.ErrInvalidTransition) {
		m.log.Debug("command ignored", zap.Error(err))
		return
	}
	m.log.Warn("command failed", zap.String("op", string(op)), zap.Error(err))
	if errors.Is(err, transport.ErrEndOfCatalog) {
		m.setNotice("End of tracks", false)
		return
	}
	m.setNotice(errmsg.Format(op, err), true)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = notice{text: text, isErr: isErr}
}

func (m *Model) clearNotice() {
	m.notice = notice{}
}

// saveVolume persists the current level for the next start.
func (m Model) saveVolume() {
	if m.stateMgr == nil {
		return
	}
	if err := m.stateMgr.SaveVolume(m.engine.Status().Volume); err != nil {
		m.log.Warn("save volume", zap.Error(err))
	}
}
