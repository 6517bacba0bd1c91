package controls

// Button is a two-state button. A tap toggles its selected state.
type Button struct {
	Base
	selected bool
}

// NewButton returns an unselected button with the given routing tag.
func NewButton(tag int) *Button {
	b := &Button{}
	b.SetTag(tag)
	return b
}

// Selected reports the selected state.
func (b *Button) Selected() bool { return b.selected }

// Value is Selected.
func (b *Button) Value() bool { return b.selected }

// SetValue sets the selected state without notifying.
func (b *Button) SetValue(v bool) { b.selected = v }

// Tap toggles the selected state and notifies.
func (b *Button) Tap() {
	b.selected = !b.selected
	b.Notify()
}

// Switch is an on/off control.
type Switch struct {
	Base
	on bool
}

// NewSwitch returns a switch in the off position with the given routing tag.
func NewSwitch(tag int) *Switch {
	s := &Switch{}
	s.SetTag(tag)
	return s
}

// On reports the switch position.
func (s *Switch) On() bool { return s.on }

// Value is On.
func (s *Switch) Value() bool { return s.on }

// SetValue moves the switch without notifying.
func (s *Switch) SetValue(v bool) { s.on = v }

// Toggle flips the switch and notifies.
func (s *Switch) Toggle() {
	s.on = !s.on
	s.Notify()
}
