// Package transport is the authoritative playback state machine. It validates
// commands against the current state, drives the session and moves the catalog
// cursor. The UI polls it with Tick; other goroutines read Status or subscribe
// to events.
package transport

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/session"
)

// Player is the session capability the engine drives.
type Player interface {
	Open(track catalog.Track) error
	Start() error
	Pause()
	Resume()
	Stop()
	Seek(delta time.Duration) error
	SeekTo(pos time.Duration) error
	SetVolume(level float64)
	Poll() session.Progress
	Position() time.Duration
}

// Verify Session implements Player at compile time.
var _ Player = (*session.Session)(nil)

// Status is a read-only snapshot of the engine.
type Status struct {
	State    State
	Reason   string
	Track    catalog.Track
	HasTrack bool
	Index    int
	Count    int
	Elapsed  time.Duration
	Duration time.Duration
	Volume   float64
}

// Progress returns elapsed/duration in [0, 1], 0 when the duration is unknown.
func (s Status) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(float64(s.Elapsed)/float64(s.Duration), 1)
}

// Engine owns the transport state and the catalog cursor.
type Engine struct {
	mu sync.RWMutex

	player Player
	cat    *catalog.Catalog
	opts   Options
	log    *zap.Logger

	state    State
	reason   string
	elapsed  time.Duration
	duration time.Duration
	volume   float64
	played   int // index of the last track output started on, -1 if none

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// New creates an engine in the Stopped state positioned on the catalog's
// current track.
func New(p Player, cat *catalog.Catalog, opts Options) *Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		player: p,
		cat:    cat,
		opts:   opts,
		log:    log,
		state:  StateStopped,
		volume: clampVolume(opts.Volume),
		played: -1,
	}
	p.SetVolume(e.volume)
	return e
}

// Apply runs a command without arguments.
func (e *Engine) Apply(cmd Command) error {
	switch cmd {
	case CmdPlay:
		return e.Play()
	case CmdPause:
		return e.Pause()
	case CmdResume:
		return e.Resume()
	case CmdToggle:
		return e.Toggle()
	case CmdStop:
		return e.Stop()
	case CmdNext:
		return e.Next()
	case CmdPrevious:
		return e.Previous()
	case CmdFirst:
		return e.First()
	case CmdLast:
		return e.Last()
	default:
		return errors.Newf("unknown command %d", cmd)
	}
}

// Play starts or resumes playback.
//
// From Paused it resumes. From Finished the after-finish policy picks the
// track. From Stopped or Error the current track is played. If the track
// cannot be opened the state is unchanged and a *session.DecodeError is
// returned.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playLocked()
}

func (e *Engine) playLocked() error {
	switch e.state {
	case StatePlaying:
		return invalid(CmdPlay, e.state)
	case StatePaused:
		e.player.Resume()
		e.setState(StatePlaying)
		return nil
	case StateFinished:
		idx, err := e.afterFinishTarget()
		if err != nil {
			return err
		}
		return e.startAt(idx)
	default:
		if e.cat.IsEmpty() {
			return ErrEmptyCatalog
		}
		return e.startAt(e.cat.Index())
	}
}

func (e *Engine) afterFinishTarget() (int, error) {
	idx := e.cat.Index()
	if e.cat.HasNext() {
		return idx + 1, nil
	}
	switch e.opts.AfterFinish {
	case NextOrStop:
		return idx, ErrEndOfCatalog
	case Loop:
		return 0, nil
	default:
		return idx, nil
	}
}

// startAt opens the track at idx and starts output on it. The catalog
// cursor moves only once the track has opened. Caller must hold mu.
func (e *Engine) startAt(idx int) error {
	track, ok := e.cat.Track(idx)
	if !ok {
		return errors.Wrapf(catalog.ErrIndexOutOfRange, "start %d of %d", idx, e.cat.Len())
	}

	if err := e.player.Open(track); err != nil {
		e.log.Warn("open failed", zap.String("path", track.Path), zap.Error(err))
		return err
	}
	_ = e.cat.Select(idx)
	if err := e.player.Start(); err != nil {
		e.log.Warn("start failed", zap.String("path", track.Path), zap.Error(err))
		e.reason = err.Error()
		e.elapsed = 0
		e.setState(StateError)
		return err
	}

	prev := e.played
	e.played = idx
	e.reason = ""
	e.elapsed = 0
	e.duration = track.Duration
	e.setState(StatePlaying)
	e.log.Debug("playing", zap.Int("index", idx), zap.String("path", track.Path))
	e.emitTrack(TrackChange{Track: track, Index: idx, PreviousIndex: prev})
	return nil
}

// Pause suspends playback. Only valid while Playing.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return invalid(CmdPause, e.state)
	}
	e.player.Pause()
	e.setState(StatePaused)
	return nil
}

// Resume continues paused playback. Only valid while Paused.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return invalid(CmdResume, e.state)
	}
	e.player.Resume()
	e.setState(StatePlaying)
	return nil
}

// Toggle pauses when playing, otherwise plays.
func (e *Engine) Toggle() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StatePlaying {
		e.player.Pause()
		e.setState(StatePaused)
		return nil
	}
	return e.playLocked()
}

// Stop releases the handle. Valid in every state.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	return nil
}

func (e *Engine) stopLocked() {
	e.player.Stop()
	e.elapsed = 0
	e.reason = ""
	e.setState(StateStopped)
}

// Next moves to the next track. At the last track it returns
// catalog.ErrAtBoundary and changes nothing.
func (e *Engine) Next() error {
	return e.skip(catalog.Next)
}

// Previous moves to the previous track. At the first track it returns
// catalog.ErrAtBoundary and changes nothing.
func (e *Engine) Previous() error {
	return e.skip(catalog.Previous)
}

func (e *Engine) skip(dir catalog.Direction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	can := e.cat.HasNext()
	if dir == catalog.Previous {
		can = e.cat.HasPrevious()
	}
	if !can {
		return errors.Wrapf(catalog.ErrAtBoundary, "%s from track %d", dir, e.cat.Index()+1)
	}

	wasPlaying := e.state == StatePlaying
	e.stopLocked()
	e.cat.Advance(dir)

	if wasPlaying && e.opts.AutoplayOnSkip {
		return e.startAt(e.cat.Index())
	}
	return nil
}

// Select moves the cursor to index, keeping playback going if it was
// playing and auto-play on skip is enabled. An invalid index returns
// catalog.ErrIndexOutOfRange and changes nothing.
func (e *Engine) Select(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cat.Track(index); !ok {
		return errors.Wrapf(catalog.ErrIndexOutOfRange, "select %d of %d", index, e.cat.Len())
	}

	wasPlaying := e.state == StatePlaying
	e.stopLocked()
	_ = e.cat.Select(index)

	if wasPlaying && e.opts.AutoplayOnSkip {
		return e.startAt(index)
	}
	return nil
}

// PlayAt stops whatever is playing and plays the track at index.
func (e *Engine) PlayAt(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cat.Track(index); !ok {
		return errors.Wrapf(catalog.ErrIndexOutOfRange, "play %d of %d", index, e.cat.Len())
	}
	e.stopLocked()
	_ = e.cat.Select(index)
	return e.startAt(index)
}

// First selects the first track.
func (e *Engine) First() error {
	return e.Select(0)
}

// Last selects the last track.
func (e *Engine) Last() error {
	e.mu.RLock()
	n := e.cat.Len()
	e.mu.RUnlock()
	return e.Select(n - 1)
}

// Seek moves the position by delta. Only valid while Playing or Paused.
func (e *Engine) Seek(delta time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.IsActive() {
		return invalid(cmdSeek, e.state)
	}
	if err := e.player.Seek(delta); err != nil {
		return err
	}
	e.elapsed = e.clampElapsed(e.player.Position())
	e.emitPosition(PositionChange{Position: e.elapsed})
	return nil
}

// SeekTo moves to an absolute position. Only valid while Playing or Paused.
func (e *Engine) SeekTo(pos time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.IsActive() {
		return invalid(cmdSeek, e.state)
	}
	if err := e.player.SeekTo(pos); err != nil {
		return err
	}
	e.elapsed = e.clampElapsed(e.player.Position())
	e.emitPosition(PositionChange{Position: e.elapsed})
	return nil
}

func (e *Engine) clampElapsed(d time.Duration) time.Duration {
	d = max(d, 0)
	if e.duration > 0 {
		d = min(d, e.duration)
	}
	return d
}

// SetVolume sets the output level, clamped to [0, 1].
func (e *Engine) SetVolume(level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setVolumeLocked(level)
}

// AdjustVolume changes the level by step and returns the new level.
func (e *Engine) AdjustVolume(step float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setVolumeLocked(e.volume + step)
	return e.volume
}

func (e *Engine) setVolumeLocked(level float64) {
	e.volume = clampVolume(level)
	e.player.SetVolume(e.volume)
}

func clampVolume(level float64) float64 {
	return min(max(level, 0), 1)
}

// Tick polls the session, records progress and applies the end-of-track
// transition. It never blocks on audio.
func (e *Engine) Tick() Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.player.Poll()
	if e.state.IsActive() {
		e.elapsed = p.Elapsed
		if p.Duration > 0 {
			e.duration = p.Duration
		}
	}
	ev := Event{Elapsed: e.elapsed, Duration: e.duration}

	if !p.Finished || !e.state.IsActive() {
		return ev
	}

	ev.Finished = true
	e.player.Stop()
	e.elapsed = e.duration
	ev.Elapsed = e.elapsed

	if p.Err != nil {
		e.reason = p.Err.Error()
		e.setState(StateError)
		ev.Err = p.Err
		return ev
	}
	e.setState(StateFinished)

	if !e.opts.AutoAdvance {
		return ev
	}
	if !e.cat.HasNext() && e.opts.AfterFinish != Loop {
		return ev
	}
	if err := e.playLocked(); err != nil {
		ev.Err = err
		return ev
	}
	ev.Advanced = true
	ev.Elapsed = e.elapsed
	ev.Duration = e.duration
	return ev
}

// Status returns a snapshot of the engine. Safe from any goroutine.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	track, ok := e.cat.Current()
	st := Status{
		State:    e.state,
		Reason:   e.reason,
		Track:    track,
		HasTrack: ok,
		Index:    e.cat.Index(),
		Count:    e.cat.Len(),
		Elapsed:  e.elapsed,
		Duration: e.duration,
		Volume:   e.volume,
	}
	if !e.state.IsActive() && e.state != StateFinished {
		st.Elapsed = 0
		st.Duration = track.Duration
	}
	return st
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Tracks returns a copy of the catalog's tracks.
func (e *Engine) Tracks() []catalog.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cat.Tracks()
}

func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	prev := e.state
	e.state = s
	e.log.Debug("transition", zap.Stringer("from", prev), zap.Stringer("to", s))
	e.emitState(StateChange{Previous: prev, Current: s})
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	if e.closed {
		sub.close()
		return sub
	}
	e.subs = append(e.subs, sub)
	return sub
}

func (e *Engine) emitState(ev StateChange) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendState(ev)
	}
}

func (e *Engine) emitTrack(ev TrackChange) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendTrack(ev)
	}
}

func (e *Engine) emitPosition(ev PositionChange) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendPosition(ev)
	}
}

// Close stops playback and closes every subscription.
func (e *Engine) Close() error {
	e.mu.Lock()
	e.stopLocked()
	e.mu.Unlock()

	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	return nil
}
