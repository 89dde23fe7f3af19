// Package app is the terminal UI event loop: it maps key presses to transport
// commands, polls the engine on a fixed tick and renders the result.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/state"
	"github.com/llehouerou/tplay/internal/transport"
	"github.com/llehouerou/tplay/internal/ui/tracklist"
)

// Deps holds what the model needs from startup.
type Deps struct {
	Engine *transport.Engine
	Config *config.Config
	State  state.Interface // nil when session state is disabled
	Stderr <-chan string   // captured backend output, may be nil
	Source string          // shown in the header
	Log    *zap.Logger
}

// Model is the root application model.
type Model struct {
	engine   *transport.Engine
	stateMgr state.Interface
	sub      *transport.Subscription
	stderr   <-chan string
	log      *zap.Logger

	playback config.PlaybackConfig
	tick     time.Duration
	source   string

	keys     *keymap.Resolver
	helpKeys keymap.Help
	help     help.Model
	showHelp bool

	list   tracklist.Model
	notice notice

	Width  int
	Height int
}

// notice is the last message shown under the player bar.
type notice struct {
	text  string
	isErr bool
}

// New creates the model. It subscribes to engine events, so the caller must
// close the engine after the program exits.
func New(d Deps) Model {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := d.Config
	if cfg == nil {
		cfg = config.Default()
	}

	list := tracklist.New(d.Engine.Tracks())
	if st := d.Engine.Status(); st.Index >= 0 {
		list.Jump(st.Index)
	}

	return Model{
		engine:   d.Engine,
		stateMgr: d.State,
		sub:      d.Engine.Subscribe(),
		stderr:   d.Stderr,
		log:      log,
		playback: cfg.Playback,
		tick:     cfg.UI.TickInterval,
		source:   d.Source,
		keys:     keymap.NewResolver(keymap.Bindings),
		helpKeys: keymap.NewHelp(keymap.Bindings),
		help:     help.New(),
		list:     list,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(m.tick),
		WatchTrackChanges(m.sub),
		WatchStderr(m.stderr),
	)
}
