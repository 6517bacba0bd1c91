package tui

import "github.com/charmbracelet/lipgloss"

// Label displays a pushed string.
type Label struct {
	text  string
	style lipgloss.Style
}

// NewLabel returns an empty label rendered with TextStyle.
func NewLabel() *Label { return &Label{style: TextStyle} }

// WithStyle sets the style the label is rendered with.
func (l *Label) WithStyle(s lipgloss.Style) *Label {
	l.style = s
	return l
}

// Value returns the displayed text.
func (l *Label) Value() string { return l.text }

// SetValue displays s.
func (l *Label) SetValue(s string) { l.text = s }

// View renders the text.
func (l *Label) View() string { return l.style.Render(l.text) }
