package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/ui/headerbar"
	"github.com/llehouerou/tplay/internal/ui/layout"
	"github.com/llehouerou/tplay/internal/ui/playerbar"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

const noticeHeight = 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	st := m.engine.Status()
	parts := []string{headerbar.Render(m.source, m.Width)}
	if list := m.list.View(st.Index, st.State); list != "" {
		parts = append(parts, list)
	}
	parts = append(parts,
		playerbar.Render(playerbar.FromStatus(st), m.Width),
		m.renderNotice(),
		m.help.View(m.helpKeys),
	)
	return strings.Join(parts, "\n")
}

func (m Model) renderNotice() string {
	if m.notice.text == "" {
		return ""
	}
	// Only the first line fits; hints stay in the log.
	text, _, _ := strings.Cut(m.notice.text, "\n")
	text = " " + render.Truncate(text, max(m.Width-1, 0))
	s := styles.T().S()
	if m.notice.isErr {
		return s.Error.Render(text)
	}
	return s.Warning.Render(text)
}

// resize recomputes the track list size from the window and help height.
func (m *Model) resize() {
	helpHeight := lipgloss.Height(m.help.View(m.helpKeys))
	h := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: playerbar.Height,
		NoticeHeight:    noticeHeight,
		HelpHeight:      helpHeight,
	})
	m.list.SetSize(m.Width, h)
}
