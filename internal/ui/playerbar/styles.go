package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/transport"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

func barStyle() lipgloss.Style { return styles.Panel(false) }

func titleStyle(s transport.State) lipgloss.Style {
	if s == transport.StatePlaying {
		return styles.T().S().Title
	}
	return styles.T().S().Muted
}

func playingStyle() lipgloss.Style   { return styles.T().S().Playing }
func metaStyle() lipgloss.Style      { return styles.T().S().Muted }
func timeStyle() lipgloss.Style      { return styles.T().S().Base }
func errorStyle() lipgloss.Style     { return styles.T().S().Error }
func progressFilled() lipgloss.Style { return styles.T().S().ProgressFull }
func progressEmpty() lipgloss.Style  { return styles.T().S().ProgressEmpty }
