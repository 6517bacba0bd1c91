package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ygrebnov/databind/controls"
)

// TextInput is an editable single-line text control backed by bubbles' textinput.
type TextInput struct {
	controls.Base
	input textinput.Model
}

// NewTextInput returns an empty, blurred text input with the given routing tag.
func NewTextInput(tag int, placeholder string) *TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	t := &TextInput{input: in}
	t.SetTag(tag)
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return t.input.Value() }

// SetValue replaces the text without notifying.
func (t *TextInput) SetValue(s string) { t.input.SetValue(s) }

// SetCharLimit limits the number of runes the user can enter; zero means no limit.
func (t *TextInput) SetCharLimit(n int) { t.input.CharLimit = n }

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd { return t.input.Focus() }

// Blur removes keyboard focus.
func (t *TextInput) Blur() { t.input.Blur() }

// Focused reports whether the input has keyboard focus.
func (t *TextInput) Focused() bool { return t.input.Focused() }

// Update handles msg and notifies subscribers when it changed the text.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() != before {
		t.Notify()
	}
	return cmd
}

// View renders the input.
func (t *TextInput) View() string { return t.input.View() }
