package controls

import (
	"slices"

	"github.com/ygrebnov/databind"
)

// Base carries the routing tag, change subscriptions and lifetime of a control.
// Embed it to make a control Editable and Destroyable.
type Base struct {
	tag       int
	handlers  []databind.ChangeHandler
	destroyed bool
}

// Tag returns the routing tag; zero means unassigned.
func (b *Base) Tag() int { return b.tag }

// SetTag assigns the routing tag. Assign it before two-way binding.
func (b *Base) SetTag(tag int) { b.tag = tag }

// Subscribe adds h to the handlers notified on user edits. Subscribing the same handler
// twice has no effect. Handlers must be comparable.
func (b *Base) Subscribe(h databind.ChangeHandler) {
	if h == nil || slices.Contains(b.handlers, h) {
		return
	}
	b.handlers = append(b.handlers, h)
}

// Unsubscribe removes h.
func (b *Base) Unsubscribe(h databind.ChangeHandler) {
	b.handlers = slices.DeleteFunc(b.handlers, func(x databind.ChangeHandler) bool { return x == h })
}

// Subscribers returns the number of subscribed handlers.
func (b *Base) Subscribers() int { return len(b.handlers) }

// Destroy ends the control's life: bindings to it become inert and it stops notifying.
func (b *Base) Destroy() {
	b.destroyed = true
	b.handlers = nil
}

// Destroyed reports whether Destroy was called.
func (b *Base) Destroyed() bool { return b.destroyed }

// Notify raises the change event on every subscribed handler.
func (b *Base) Notify() {
	if b.destroyed {
		return
	}
	// A handler may unsubscribe while being notified.
	for _, h := range slices.Clone(b.handlers) {
		h.ControlChanged(b.tag)
	}
}
