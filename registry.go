package databind

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/errors"
	"github.com/ygrebnov/databind/internal/defaults"
)

// Registry owns a model value of type M and keeps bound controls in sync with it.
//
// A Registry is not safe for concurrent use. All calls, including the ControlChanged
// notifications raised by controls, must come from one goroutine, normally the host's UI
// loop. Push and pull functions must not call back into the registry.
type Registry[M any] struct {
	id     uuid.UUID
	logger *slog.Logger

	model    *M
	defaults bool
	peers    bool

	oneWay []*OneWay[M]
	twoWay []*TwoWay[M]
}

// New creates a registry. Without WithModel or WithDefaults the registry starts with no
// model: bindings push nothing until SetModel is called, and controls keep their own
// initial values.
func New[M any](opts ...Option[M]) *Registry[M] {
	r := &Registry[M]{
		id:     uuid.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.model == nil && r.defaults {
		r.model = r.emptyModel()
	}
	return r
}

// ID identifies the registry in log records.
func (r *Registry[M]) ID() uuid.UUID { return r.id }

// HasModel reports whether a model has been set.
func (r *Registry[M]) HasModel() bool { return r.model != nil }

// Model returns a copy of the current model and whether one is set.
func (r *Registry[M]) Model() (M, bool) {
	if r.model == nil {
		var zero M
		return zero, false
	}
	return *r.model, true
}

// SetModel replaces the model and pushes it through every one-way binding, then every
// two-way binding, in the order they were bound. Bindings to gone controls are skipped.
func (r *Registry[M]) SetModel(m M) {
	r.model = &m

	applied := 0
	for _, b := range r.oneWay {
		if b.push(r.model) {
			applied++
		}
	}
	for _, b := range r.twoWay {
		if b.push(r.model) {
			applied++
		}
	}
	r.debug("set model", slog.Int("applied", applied))
}

// Bind registers one-way and two-way bindings, in the order given. When a model is present,
// each binding's control receives the current field value right away. Two-way bindings also
// subscribe the registry to their control's change notifications.
//
// Bind panics with an ErrInvalidTag error when a two-way binding's control has no positive tag.
func (r *Registry[M]) Bind(bindings ...Binding[M]) *Registry[M] {
	for _, b := range bindings {
		switch b := b.(type) {
		case *OneWay[M]:
			r.bindOneWay(b)
		case *TwoWay[M]:
			r.bindTwoWay(b)
		}
	}
	return r
}

// BindOneWay is Bind restricted to one-way bindings.
func (r *Registry[M]) BindOneWay(bindings ...*OneWay[M]) *Registry[M] {
	for _, b := range bindings {
		r.bindOneWay(b)
	}
	return r
}

// BindTwoWay is Bind restricted to two-way bindings.
func (r *Registry[M]) BindTwoWay(bindings ...*TwoWay[M]) *Registry[M] {
	for _, b := range bindings {
		r.bindTwoWay(b)
	}
	return r
}

func (r *Registry[M]) bindOneWay(b *OneWay[M]) {
	if b == nil {
		return
	}
	if r.model != nil {
		b.push(r.model)
	}
	r.oneWay = append(r.oneWay, b)
	r.debug("bind", slog.String("kind", "one-way"), slog.String("field", b.ref.String()),
		slog.String("control", b.controlType))
}

func (r *Registry[M]) bindTwoWay(b *TwoWay[M]) {
	if b == nil {
		return
	}
	if tag, ok := b.controlTag(); ok {
		b.tag = tag
	}
	if b.tag <= 0 {
		panic(errorc.With(
			errors.ErrInvalidTag,
			errorc.String(errors.ErrorFieldFieldPath, b.ref.path),
			errorc.String(errors.ErrorFieldControlType, b.controlType),
			errorc.String(errors.ErrorFieldControlTag, strconv.Itoa(b.tag)),
		))
	}
	if r.model != nil {
		b.push(r.model)
	}
	r.twoWay = append(r.twoWay, b)
	if !b.subscribe(r) {
		r.logger.Warn("bind to a gone control", slog.String("registry", r.id.String()),
			slog.String("field", b.ref.String()), slog.Int("tag", b.tag))
		return
	}
	r.debug("bind", slog.String("kind", "two-way"), slog.String("field", b.ref.String()),
		slog.String("control", b.controlType), slog.Int("tag", b.tag))
}

// Unbind removes every binding, of both kinds, targeting field. Controls keep whatever they
// last displayed. Two-way bindings are unsubscribed from their control first. Unbinding a
// field with no bindings does nothing.
func (r *Registry[M]) Unbind(field Referrer) {
	ref := field.Ref()

	removed := 0
	kept := r.oneWay[:0]
	for _, b := range r.oneWay {
		if b.ref == ref {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	clear(r.oneWay[len(kept):])
	r.oneWay = kept

	var dropped []*TwoWay[M]
	keptTwo := make([]*TwoWay[M], 0, len(r.twoWay))
	for _, b := range r.twoWay {
		if b.ref == ref {
			dropped = append(dropped, b)
			continue
		}
		keptTwo = append(keptTwo, b)
	}
	// A control shared with a binding of another field stays subscribed.
	for _, b := range dropped {
		shared := slices.ContainsFunc(keptTwo, func(k *TwoWay[M]) bool { return k.tag == b.tag })
		if !shared {
			b.unsubscribe(r)
		}
	}
	removed += len(dropped)
	r.twoWay = keptTwo

	r.debug("unbind", slog.String("field", ref.String()), slog.Int("removed", removed))
}

// Len returns the number of registered one-way and two-way bindings, including bindings
// whose control is gone.
func (r *Registry[M]) Len() (oneWay, twoWay int) {
	return len(r.oneWay), len(r.twoWay)
}

// ControlChanged handles a user edit on the control identified by tag. Editable controls
// call it on their subscribed handlers; hosts may also call it directly.
//
// First every two-way binding routed to tag pulls from its control into the model, in bind
// order. Only then are the one-way bindings of the touched fields pushed, so they all observe
// the settled model. Other two-way controls on the touched fields are refreshed only when the
// registry was created with WithPeerRefresh.
func (r *Registry[M]) ControlChanged(tag int) {
	r.ensureModel()

	touched := make(map[FieldRef]struct{})
	pulled := 0
	for _, b := range r.twoWay {
		if b.tag != tag {
			continue
		}
		if b.pullFn(r.model) {
			pulled++
		}
		touched[b.ref] = struct{}{}
	}

	pushed := 0
	for _, b := range r.oneWay {
		if _, ok := touched[b.ref]; ok && b.push(r.model) {
			pushed++
		}
	}

	if r.peers {
		for _, b := range r.twoWay {
			if b.tag == tag {
				continue
			}
			if _, ok := touched[b.ref]; ok && b.push(r.model) {
				pushed++
			}
		}
	}

	r.debug("control changed", slog.Int("tag", tag), slog.Int("touched", len(touched)),
		slog.Int("pulled", pulled), slog.Int("pushed", pushed))
}

// update writes through the field setter and re-pushes matching bindings.
func (r *Registry[M]) update(ref FieldRef, write func(m *M)) bool {
	r.ensureModel()
	write(r.model)

	applied := false
	for _, b := range r.oneWay {
		if b.ref == ref && b.push(r.model) {
			applied = true
		}
	}
	for _, b := range r.twoWay {
		if b.ref == ref && b.push(r.model) {
			applied = true
		}
	}
	r.debug("update", slog.String("field", ref.String()), slog.Bool("applied", applied))
	return applied
}

// ensureModel materializes the empty model when none has been set.
func (r *Registry[M]) ensureModel() {
	if r.model == nil {
		r.model = r.emptyModel()
	}
}

// emptyModel returns the zero M, with `default` tags applied when WithDefaults is set.
func (r *Registry[M]) emptyModel() *M {
	m := new(M)
	if !r.defaults {
		return m
	}
	rv := reflect.ValueOf(m).Elem()
	if rv.Kind() != reflect.Struct {
		return m
	}
	if err := defaults.Apply(rv); err != nil {
		panic(errorc.With(err, errorc.String(errors.ErrorFieldModelType, rv.Type().String())))
	}
	return m
}

func (r *Registry[M]) debug(msg string, attrs ...slog.Attr) {
	if !r.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs = append(attrs, slog.String("registry", r.id.String()))
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
