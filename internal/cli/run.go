package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/app"
	"github.com/llehouerou/tplay/internal/audio"
	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/icons"
	"github.com/llehouerou/tplay/internal/mpris"
	"github.com/llehouerou/tplay/internal/session"
	"github.com/llehouerou/tplay/internal/state"
	"github.com/llehouerou/tplay/internal/stderr"
	"github.com/llehouerou/tplay/internal/transport"
)

// runUI wires the audio output, engine and optional services, then runs the
// terminal UI until the user quits.
func runUI(s *setup) error {
	cfg, log := s.cfg, s.log
	icons.Init(cfg.Icons)

	var st state.Interface
	stateMgr := openState(s)
	if stateMgr != nil {
		st = stateMgr
		defer func() {
			if err := stateMgr.Close(); err != nil {
				log.Warn(errmsg.Format(errmsg.OpStateSave, err))
			}
		}()
	}
	volume := restoreState(s, st)

	capture, err := stderr.Start(log)
	if err != nil {
		log.Warn("stderr capture disabled", zap.Error(err))
	} else {
		defer capture.Stop()
	}

	sess := session.New(audio.NewSpeaker(), session.WithLogger(log), session.WithVolume(volume))
	defer func() { _ = sess.Close() }()

	eng := transport.New(sess, s.cat, transport.Options{
		AfterFinish:    s.policy,
		AutoAdvance:    cfg.Playback.AutoAdvance,
		AutoplayOnSkip: cfg.Playback.AutoplayOnSkip,
		Volume:         volume,
		Log:            log,
	})
	defer func() { _ = eng.Close() }()

	if cfg.MPRIS {
		adapter, err := mpris.New(eng, log)
		if err != nil {
			log.Warn(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			defer func() { _ = adapter.Close() }()
		}
	}

	deps := app.Deps{
		Engine: eng,
		Config: cfg,
		State:  st,
		Source: s.sources[0],
		Log:    log,
	}
	if capture != nil {
		deps.Stderr = capture.Lines
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, string(errmsg.OpInitialize))
	}
	log.Info("quit")
	return nil
}

// openState opens the session state database, or returns nil when disabled
// or unavailable. Playback works without it.
func openState(s *setup) *state.Manager {
	if !s.cfg.State.Enabled {
		return nil
	}
	m, err := state.Open(s.cfg.State.Path)
	if err != nil {
		s.log.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return nil
	}
	return m
}

// restoreState moves the catalog to the last played track and returns the
// starting volume.
func restoreState(s *setup, st state.Interface) float64 {
	volume := s.cfg.Playback.Volume
	if st == nil {
		return volume
	}
	p, err := st.GetPlayback()
	if err != nil {
		s.log.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return volume
	}
	if p == nil {
		return volume
	}
	if idx := s.cat.IndexOf(p.LastPath); idx >= 0 {
		_ = s.cat.Select(idx)
	}
	return p.Volume
}
