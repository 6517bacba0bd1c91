package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget is anything a Form can lay out.
type Widget interface {
	View() string
}

// Input is a Widget that takes keyboard focus and handles messages.
type Input interface {
	Widget
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
}

type row struct {
	label  string
	widget Widget
}

// Form is a tea.Model laying out labelled widgets, one per row. Tab and shift+tab move the
// focus over the Input rows; every other key goes to the focused input. Esc and ctrl+c quit.
type Form struct {
	title  string
	help   string
	rows   []row
	inputs []int // indexes into rows
	focus  int
	done   bool
}

// NewForm returns an empty form.
func NewForm(title string) *Form {
	return &Form{
		title: title,
		help:  "tab/shift+tab: move • space: toggle • esc: quit",
	}
}

// Add appends a row. Rows whose widget is an Input can take focus.
func (f *Form) Add(label string, w Widget) *Form {
	if _, ok := w.(Input); ok {
		f.inputs = append(f.inputs, len(f.rows))
	}
	f.rows = append(f.rows, row{label: label, widget: w})
	return f
}

// Focused returns the focused input, or nil when the form has none.
func (f *Form) Focused() Input {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.rows[f.inputs[f.focus]].widget.(Input)
}

// Done reports whether the user asked to quit.
func (f *Form) Done() bool { return f.done }

// Init focuses the first input.
func (f *Form) Init() tea.Cmd {
	in := f.Focused()
	if in == nil {
		return nil
	}
	return in.Focus()
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			f.done = true
			return f, tea.Quit
		case "tab", "down":
			return f, f.move(1)
		case "shift+tab", "up":
			return f, f.move(-1)
		}
	}
	in := f.Focused()
	if in == nil {
		return f, nil
	}
	return f, in.Update(msg)
}

func (f *Form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.Focused().Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.Focused().Focus()
}

// View implements tea.Model.
func (f *Form) View() string {
	var b strings.Builder
	if f.title != "" {
		b.WriteString(titleStyle.Render(f.title))
		b.WriteString("\n")
	}
	focused := -1
	if len(f.inputs) > 0 {
		focused = f.inputs[f.focus]
	}
	for i, r := range f.rows {
		marker := "  "
		label := labelStyle.Render(r.label)
		if i == focused {
			marker = focusStyle.Render("> ")
			label = focusStyle.Width(12).Render(r.label)
		}
		b.WriteString(marker)
		b.WriteString(label)
		b.WriteString(r.widget.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(f.help))
	return b.String()
}
