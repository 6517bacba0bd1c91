package databind

import "log/slog"

// Option configures a Registry at construction time.
type Option[M any] func(*Registry[M])

// WithModel sets the initial model.
func WithModel[M any](m M) Option[M] {
	return func(r *Registry[M]) { r.model = &m }
}

// WithDefaults makes the registry start from the zero M with `default:"..."` struct tags
// applied, instead of having no model, when WithModel is not given. The same value is used
// whenever Update or ControlChanged needs a model before one has been set.
//
// Supported tags follow the usual forms: a literal for scalar fields, "dive" for nested
// structs, "alloc" for maps and slices, and defaultElem:"dive" for collections of structs.
// An invalid literal is a programming error and panics with ErrSetDefault.
func WithDefaults[M any]() Option[M] {
	return func(r *Registry[M]) { r.defaults = true }
}

// WithLogger sets the logger used for debug records about binds, updates and change events.
// A nil logger is ignored.
func WithLogger[M any](l *slog.Logger) Option[M] {
	return func(r *Registry[M]) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPeerRefresh makes a user edit also refresh the other two-way controls bound to the
// touched fields, e.g. a second text field showing the same amount in another currency.
// By default only one-way bindings are refreshed after an edit.
func WithPeerRefresh[M any]() Option[M] {
	return func(r *Registry[M]) { r.peers = true }
}
