//go:build linux

// Package mpris exposes the transport over D-Bus (MPRIS2) so desktop media
// keys and applets can control playback.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/catalog"
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

var _ Controller = (*transport.Engine)(nil)

// Adapter owns the MPRIS server.
type Adapter struct {
	server *server.Server
	log    *zap.Logger
}

// New creates the server and starts listening in the background.
func New(ctrl Controller, log *zap.Logger) (*Adapter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		server: server.NewServer("tplay", &rootAdapter{}, &playerAdapter{ctrl: ctrl, log: log}),
		log:    log,
	}
	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn("mpris listen", zap.Error(err))
		}
	}()
	return a, nil
}

// Close stops the server and releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error              { return nil }
func (r *rootAdapter) Quit() error               { return nil }
func (r *rootAdapter) CanQuit() (bool, error)    { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error)   { return false, nil }
func (r *rootAdapter) Identity() (string, error) { return "tplay", nil }

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl Controller
	log  *zap.Logger
}

// ignore drops refusals a remote caller cannot act on: commands that do not
// apply in the current state and skips past either end.
func (p *playerAdapter) ignore(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, transport.ErrInvalidTransition) || errors.Is(err, catalog.ErrAtBoundary) {
		p.log.Debug("mpris command ignored", zap.String("op", op), zap.Error(err))
		return nil
	}
	p.log.Warn("mpris command failed", zap.String("op", op), zap.Error(err))
	return err
}

func (p *playerAdapter) Next() error      { return p.ignore("next", p.ctrl.Next()) }
func (p *playerAdapter) Previous() error  { return p.ignore("previous", p.ctrl.Previous()) }
func (p *playerAdapter) Pause() error     { return p.ignore("pause", p.ctrl.Pause()) }
func (p *playerAdapter) PlayPause() error { return p.ignore("play-pause", p.ctrl.Toggle()) }
func (p *playerAdapter) Stop() error      { return p.ignore("stop", p.ctrl.Stop()) }
func (p *playerAdapter) Play() error      { return p.ignore("play", p.ctrl.Play()) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.ignore("seek", p.ctrl.Seek(time.Duration(offset)*time.Microsecond))
}

// SetPosition only applies to the current track, as MPRIS requires.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	st := p.ctrl.Status()
	if !st.HasTrack || trackID != formatTrackID(st.Track.Path) {
		return nil
	}
	return p.ignore("set-position", p.ctrl.SeekTo(time.Duration(position)*time.Microsecond))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.ctrl.Status().State {
	case transport.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case transport.StatePaused:
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusStopped, nil
	}
}

func (p *playerAdapter) Rate() (float64, error)        { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error       { return nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.ctrl.Status()
	if !st.HasTrack {
		return types.Metadata{}, nil
	}
	t := st.Track
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(t.Path)),
		Length:      types.Microseconds(st.Duration.Microseconds()),
		Title:       t.DisplayTitle(),
		Album:       t.Album,
		TrackNumber: t.TrackNumber,
		Url:         "file://" + t.Path,
	}
	if t.Artist != "" {
		meta.Title = t.Title
		meta.Artist = []string{t.Artist}
	}
	if art := findCoverArt(t.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.ctrl.Status().Volume, nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.ctrl.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Status().Elapsed.Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	st := p.ctrl.Status()
	return st.Index < st.Count-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.ctrl.Status().Index > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.ctrl.Status().Count > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.ctrl.Status().State == transport.StatePlaying, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.ctrl.Status().State.IsActive(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
