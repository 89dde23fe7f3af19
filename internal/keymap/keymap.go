package keymap

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes the keys bound to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "tracklist"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"right", "n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"left", "p"}, "Previous track", "playback"},
	{ActionFirstTrack, []string{"home"}, "First track", "playback"},
	{ActionLastTrack, []string{"end"}, "Last track", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek back", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},

	// Track list
	{ActionMoveUp, []string{"up", "k"}, "Move up", "tracklist"},
	{ActionMoveDown, []string{"down", "j"}, "Move down", "tracklist"},
	{ActionPlayHere, []string{"enter"}, "Play selected", "tracklist"},
}

// displayKey returns how a key is shown in help text.
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "shift+right":
		return "⇧→"
	case "shift+left":
		return "⇧←"
	}
	return k
}

// KeyBinding converts b to a bubbles key binding for the help view.
func (b Binding) KeyBinding() key.Binding {
	var shown []string
	for _, k := range b.Keys {
		if d := displayKey(k); !slices.Contains(shown, d) {
			shown = append(shown, d)
		}
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(shown, "/"), b.Description),
	)
}

// Help implements help.KeyMap over a binding set.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// shortHelp lists the actions shown in the one-line help.
var shortHelp = []Action{ActionPlayPause, ActionStop, ActionNextTrack, ActionPrevTrack, ActionHelp, ActionQuit}

// NewHelp groups bindings by context for the full help view.
func NewHelp(bindings []Binding) Help {
	var h Help
	byAction := make(map[Action]Binding, len(bindings))
	groups := make(map[string][]key.Binding)
	var order []string
	for _, b := range bindings {
		byAction[b.Action] = b
		if _, ok := groups[b.Context]; !ok {
			order = append(order, b.Context)
		}
		groups[b.Context] = append(groups[b.Context], b.KeyBinding())
	}
	for _, a := range shortHelp {
		if b, ok := byAction[a]; ok {
			h.short = append(h.short, b.KeyBinding())
		}
	}
	for _, ctx := range order {
		h.full = append(h.full, groups[ctx])
	}
	return h
}

func (h Help) ShortHelp() []key.Binding  { return h.short }
func (h Help) FullHelp() [][]key.Binding { return h.full }
