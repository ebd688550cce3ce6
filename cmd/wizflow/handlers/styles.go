package handlers

import "github.com/charmbracelet/lipgloss"

// Colors matching internal/ui/tui/styles.go palette.
var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	initialStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)
