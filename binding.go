package databind

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/errors"
)

// Binding is a one-way or two-way binding for model type M, accepted by Registry.Bind.
// Implementations are *OneWay[M] and *TwoWay[M].
type Binding[M any] interface {
	Referrer
	// push writes the current field value of m into the control.
	// It reports false when the control is gone.
	push(m *M) bool
}

// OneWay couples a model field to a control, model to control only.
type OneWay[M any] struct {
	ref         FieldRef
	controlType string
	pushFn      func(m *M) bool
}

// NewOneWay binds field to control. push receives the control, the field value and the whole
// model; it is called on bind (when a model is present) and whenever the field changes.
// The binding keeps only a weak reference to control.
func NewOneWay[M, V, C any](field Field[M, V], control *C, push func(c *C, v V, m M)) *OneWay[M] {
	if control == nil {
		panic(nilControlErr[C](field.ref))
	}
	if push == nil {
		panic(errorc.With(errors.ErrNilFunc, errorc.String(errors.ErrorFieldFieldPath, field.ref.path)))
	}
	cr := makeControlRef(control)
	return &OneWay[M]{
		ref:         field.ref,
		controlType: reflect.TypeFor[*C]().String(),
		pushFn: func(m *M) bool {
			c, ok := cr.live()
			if !ok {
				return false
			}
			push(c, field.get(m), *m)
			return true
		},
	}
}

// Ref returns the field the binding targets.
func (b *OneWay[M]) Ref() FieldRef { return b.ref }

func (b *OneWay[M]) push(m *M) bool { return b.pushFn(m) }

// TwoWay couples a model field to an editable control in both directions.
type TwoWay[M any] struct {
	ref         FieldRef
	tag         int
	controlType string
	pushFn      func(m *M) bool
	pullFn      func(m *M) bool
	controlTag  func() (int, bool)
	subscribe   func(h ChangeHandler) bool
	unsubscribe func(h ChangeHandler) bool
}

// NewTwoWay binds field to the editable control. push is used as in NewOneWay; pull reads the
// control and writes the new value into the model, doing any conversion itself. A pull that
// fails to convert writes whatever it chooses (typically the zero value): the registry does
// not inspect it.
//
// The control's Tag is read here and read again when the binding is bound; assigning a
// different tag after Bind has no effect on routing.
func NewTwoWay[M, V, C any, PC interface {
	*C
	Editable
}](field Field[M, V], control PC, push func(c PC, v V, m M), pull func(m *M, c PC)) *TwoWay[M] {
	if (*C)(control) == nil {
		panic(nilControlErr[C](field.ref))
	}
	if push == nil || pull == nil {
		panic(errorc.With(errors.ErrNilFunc, errorc.String(errors.ErrorFieldFieldPath, field.ref.path)))
	}
	cr := makeControlRef((*C)(control))
	live := func() (PC, bool) {
		c, ok := cr.live()
		return PC(c), ok
	}
	return &TwoWay[M]{
		ref:         field.ref,
		tag:         control.Tag(),
		controlType: reflect.TypeFor[PC]().String(),
		pushFn: func(m *M) bool {
			c, ok := live()
			if !ok {
				return false
			}
			push(c, field.get(m), *m)
			return true
		},
		pullFn: func(m *M) bool {
			c, ok := live()
			if !ok {
				return false
			}
			pull(m, c)
			return true
		},
		controlTag: func() (int, bool) {
			c, ok := live()
			if !ok {
				return 0, false
			}
			return c.Tag(), true
		},
		subscribe: func(h ChangeHandler) bool {
			c, ok := live()
			if ok {
				c.Subscribe(h)
			}
			return ok
		},
		unsubscribe: func(h ChangeHandler) bool {
			c, ok := live()
			if ok {
				c.Unsubscribe(h)
			}
			return ok
		},
	}
}

// Ref returns the field the binding targets.
func (b *TwoWay[M]) Ref() FieldRef { return b.ref }

// Tag returns the routing token taken from the control, at construction and again at Bind.
func (b *TwoWay[M]) Tag() int { return b.tag }

func (b *TwoWay[M]) push(m *M) bool { return b.pushFn(m) }

func nilControlErr[C any](ref FieldRef) error {
	return errorc.With(
		errors.ErrNilControl,
		errorc.String(errors.ErrorFieldFieldPath, ref.path),
		errorc.String(errors.ErrorFieldControlType, reflect.TypeFor[*C]().String()),
	)
}
