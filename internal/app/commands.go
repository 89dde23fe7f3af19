package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tplay/internal/transport"
)

// TickCmd returns a command that sends TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchTrackChanges waits for the next track change on sub. It returns nil
// once the subscription is closed.
func WatchTrackChanges(sub *transport.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-sub.TrackChanged:
			return TrackChangedMsg(ev)
		case <-sub.Done:
			return nil
		}
	}
}

// WatchStderr waits for the next captured stderr line.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
