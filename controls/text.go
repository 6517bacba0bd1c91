package controls

// Label displays optional text. Its zero value shows no text.
type Label struct {
	Base
	text *string
}

// NewLabel returns an empty label.
func NewLabel() *Label { return &Label{} }

// Text returns the displayed text, nil when none.
func (l *Label) Text() *string { return l.text }

// SetText displays s.
func (l *Label) SetText(s string) { l.text = &s }

// Value is Text.
func (l *Label) Value() *string { return l.text }

// SetValue displays a copy of *v, or no text for nil.
func (l *Label) SetValue(v *string) {
	if v == nil {
		l.text = nil
		return
	}
	s := *v
	l.text = &s
}

// TextField is an editable single-line text control. It always holds some text: setting
// nil displays the empty string.
type TextField struct {
	Base
	text string
}

// NewTextField returns an empty text field with the given routing tag.
func NewTextField(tag int) *TextField {
	f := &TextField{}
	f.SetTag(tag)
	return f
}

// Text returns the current text.
func (f *TextField) Text() string { return f.text }

// SetText replaces the text without notifying.
func (f *TextField) SetText(s string) { f.text = s }

// Value returns a pointer to a copy of the current text; it is never nil.
func (f *TextField) Value() *string {
	s := f.text
	return &s
}

// SetValue replaces the text without notifying; nil clears it.
func (f *TextField) SetValue(v *string) {
	if v == nil {
		f.text = ""
		return
	}
	f.text = *v
}

// Type replaces the text as a user edit and notifies.
func (f *TextField) Type(s string) {
	f.text = s
	f.Notify()
}
