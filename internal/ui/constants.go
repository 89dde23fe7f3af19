// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the space consumed by a panel border, vertically and
	// horizontally.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the vertical overhead of a bordered panel with a header.
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight
)
