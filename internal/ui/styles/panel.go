package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns a rounded bordered box, highlighted when focused.
func Panel(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
