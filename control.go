package databind

import "weak"

// ChangeHandler receives user-edit notifications from editable controls.
// Registry implements it; hosts normally never implement it themselves.
type ChangeHandler interface {
	// ControlChanged is called after a user edit on the control identified by tag.
	ControlChanged(tag int)
}

// Editable is the capability a control needs for two-way binding.
//
// Tag is a positive routing token assigned by the host before binding and unique among the
// currently bound controls. It is read when a two-way binding is bound and must not change
// afterwards: the control notifies with its current tag, so edits after a change are dropped. The control raises a single change event on user interaction by
// calling ControlChanged(Tag()) on every subscribed handler. Subscribe and Unsubscribe match
// handlers by identity.
type Editable interface {
	Tag() int
	Subscribe(h ChangeHandler)
	Unsubscribe(h ChangeHandler)
}

// Destroyable is implemented by controls whose lifetime the host ends explicitly.
// A destroyed control is treated like a collected one: bindings to it become inert.
type Destroyable interface {
	Destroyed() bool
}

// Pushable is a control displaying a single value of type V.
type Pushable[V any] interface {
	SetValue(v V)
}

// Pullable is a control whose displayed value can also be read back.
type Pullable[V any] interface {
	Pushable[V]
	Value() V
}

// controlRef is a non-owning reference to a control.
type controlRef[C any] struct {
	wp weak.Pointer[C]
}

func makeControlRef[C any](c *C) controlRef[C] {
	return controlRef[C]{wp: weak.Make(c)}
}

// live returns the control if it has neither been collected nor destroyed.
func (r controlRef[C]) live() (*C, bool) {
	c := r.wp.Value()
	if c == nil {
		return nil, false
	}
	if d, ok := any(c).(Destroyable); ok && d.Destroyed() {
		return nil, false
	}
	return c, true
}
