package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ygrebnov/databind/controls"
)

// Toggle is a checkbox. Space flips it while focused.
type Toggle struct {
	controls.Base
	on      bool
	focused bool
}

// NewToggle returns an unchecked toggle with the given routing tag.
func NewToggle(tag int) *Toggle {
	t := &Toggle{}
	t.SetTag(tag)
	return t
}

// Value reports whether the toggle is checked.
func (t *Toggle) Value() bool { return t.on }

// SetValue checks or unchecks the toggle without notifying.
func (t *Toggle) SetValue(on bool) { t.on = on }

// Focus gives the toggle keyboard focus.
func (t *Toggle) Focus() tea.Cmd {
	t.focused = true
	return nil
}

// Blur removes keyboard focus.
func (t *Toggle) Blur() { t.focused = false }

// Focused reports whether the toggle has keyboard focus.
func (t *Toggle) Focused() bool { return t.focused }

// Update flips the toggle on space and notifies subscribers.
func (t *Toggle) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == " " {
		t.on = !t.on
		t.Notify()
	}
	return nil
}

// View renders the checkbox.
func (t *Toggle) View() string {
	if t.on {
		return checkedStyle.Render("[x]")
	}
	return "[ ]"
}
