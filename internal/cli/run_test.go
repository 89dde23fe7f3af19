package cli

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/catalog"
	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/state"
)

func newSetup() *setup {
	cfg := config.Default()
	cfg.Playback.Volume = 0.7
	return &setup{
		cfg: cfg,
		log: zap.NewNop(),
		cat: catalog.New(
			catalog.Track{Path: "/m/a.mp3"},
			catalog.Track{Path: "/m/b.mp3"},
		),
	}
}

func TestRestoreState(t *testing.T) {
	s := newSetup()
	st := state.NewMock()
	st.SetPlayback(&state.Playback{Volume: 0.3, LastPath: "/m/b.mp3"})

	volume := restoreState(s, st)

	assert.InDelta(t, 0.3, volume, 1e-9)
	assert.Equal(t, 1, s.cat.Index())
}

func TestRestoreState_Fallbacks(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		s := newSetup()
		assert.InDelta(t, 0.7, restoreState(s, nil), 1e-9)
		assert.Equal(t, 0, s.cat.Index())
	})

	t.Run("nothing saved", func(t *testing.T) {
		s := newSetup()
		assert.InDelta(t, 0.7, restoreState(s, state.NewMock()), 1e-9)
	})

	t.Run("last track no longer in catalog", func(t *testing.T) {
		s := newSetup()
		st := state.NewMock()
		st.SetPlayback(&state.Playback{Volume: 0.5, LastPath: "/m/gone.mp3"})

		assert.InDelta(t, 0.5, restoreState(s, st), 1e-9)
		assert.Equal(t, 0, s.cat.Index())
	})

	t.Run("read error", func(t *testing.T) {
		s := newSetup()
		assert.InDelta(t, 0.7, restoreState(s, failingState{state.NewMock()}), 1e-9)
	})
}

type failingState struct{ *state.Mock }

func (failingState) GetPlayback() (*state.Playback, error) {
	return nil, errors.New("database is locked")
}

func TestOpenState(t *testing.T) {
	s := newSetup()
	s.cfg.State.Enabled = false
	assert.Nil(t, openState(s))

	s.cfg.State.Enabled = true
	s.cfg.State.Path = filepath.Join(t.TempDir(), "tplay.db")
	m := openState(s)
	require.NotNil(t, m)
	require.NoError(t, m.Close())
}
