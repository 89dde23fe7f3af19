package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/transport"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, TickCmd(m.tick)

	case TrackChangedMsg:
		if m.stateMgr != nil {
			m.stateMgr.SaveLastTrack(msg.Track.Path)
		}
		m.list.Jump(msg.Index)
		return m, WatchTrackChanges(m.sub)

	case StderrMsg:
		m.setNotice(msg.Line, false)
		return m, WatchStderr(m.stderr)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleTick() {
	ev := m.engine.Tick()
	if ev.Err == nil {
		return
	}
	st := m.engine.Status()
	if st.State != transport.StateError {
		// Auto-advance could not open the next track.
		m.playResult(ev.Err, errmsg.OpTrackChange)
		return
	}
	title := st.Track.DisplayTitle()
	m.log.Warn("playback failed", zap.String("track", title), zap.Error(ev.Err))
	m.setNotice(errmsg.FormatWith(errmsg.OpPlaybackStart, title, ev.Err), true)
}

// transportKeys maps actions that are plain transport commands.
var transportKeys = map[keymap.Action]struct {
	cmd transport.Command
	op  errmsg.Op
}{
	keymap.ActionPlayPause:  {transport.CmdToggle, errmsg.OpPlaybackStart},
	keymap.ActionStop:       {transport.CmdStop, errmsg.OpPlaybackStop},
	keymap.ActionNextTrack:  {transport.CmdNext, errmsg.OpTrackChange},
	keymap.ActionPrevTrack:  {transport.CmdPrevious, errmsg.OpTrackChange},
	keymap.ActionFirstTrack: {transport.CmdFirst, errmsg.OpTrackChange},
	keymap.ActionLastTrack:  {transport.CmdLast, errmsg.OpTrackChange},
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)
	if c, ok := transportKeys[action]; ok {
		m.playResult(m.engine.Apply(c.cmd), c.op)
		return m, nil
	}
	switch action {
	case keymap.ActionQuit:
		m.saveVolume()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resize()
	case keymap.ActionSeekForward:
		m.report(m.engine.Seek(m.playback.SeekStep), errmsg.OpPlaybackSeek)
	case keymap.ActionSeekBack:
		m.report(m.engine.Seek(-m.playback.SeekStep), errmsg.OpPlaybackSeek)
	case keymap.ActionVolumeUp:
		m.engine.AdjustVolume(m.playback.VolumeStep)
	case keymap.ActionVolumeDown:
		m.engine.AdjustVolume(-m.playback.VolumeStep)
	case keymap.ActionMoveUp:
		m.list.MoveUp()
	case keymap.ActionMoveDown:
		m.list.MoveDown()
	case keymap.ActionPlayHere:
		if idx := m.list.Selected(); idx >= 0 {
			m.playResult(m.engine.PlayAt(idx), errmsg.OpPlaybackStart)
		}
	}
	return m, nil
}
