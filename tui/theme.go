package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorGreen    lipgloss.Color = "#a6e3a1"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Width(12)
	focusStyle   = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(colorOverlay1).MarginTop(1)
	checkedStyle = lipgloss.NewStyle().Foreground(colorGreen)

	// TextStyle is the default style of a Label.
	TextStyle = lipgloss.NewStyle().Foreground(colorText)
)
