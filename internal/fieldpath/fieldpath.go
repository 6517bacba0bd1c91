// Package fieldpath resolves dotted field paths against struct types and reads or writes
// the addressed field through reflection.
package fieldpath

import (
	"reflect"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/constants"
	"github.com/ygrebnov/databind/errors"
)

type step struct {
	// index of the field in its parent struct.
	index int
	// deref is set when the parent is reached through a pointer to struct.
	deref bool
}

// Path is a resolved field path. The zero value is not usable.
type Path struct {
	root  reflect.Type
	name  string
	steps []step
	leaf  reflect.Type
}

// Resolve resolves path against the struct type root. Every segment must name an exported,
// directly declared field; intermediate segments must be structs or pointers to structs.
func Resolve(root reflect.Type, path string) (Path, error) {
	if root == nil || root.Kind() != reflect.Struct {
		typeName := "<nil>"
		if root != nil {
			typeName = root.String()
		}
		return Path{}, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldModelType, typeName),
		)
	}

	notFound := func() error {
		return errorc.With(
			errors.ErrFieldNotFound,
			errorc.String(errors.ErrorFieldModelType, root.String()),
			errorc.String(errors.ErrorFieldFieldPath, path),
		)
	}

	if path == "" {
		return Path{}, notFound()
	}

	segments := strings.Split(path, constants.FieldPathSeparator)
	steps := make([]step, 0, len(segments))
	t := root
	for i, seg := range segments {
		deref := false
		if i > 0 && t.Kind() == reflect.Ptr {
			t = t.Elem()
			deref = true
		}
		if t.Kind() != reflect.Struct {
			return Path{}, notFound()
		}
		idx := -1
		for j := 0; j < t.NumField(); j++ {
			f := t.Field(j)
			if f.Name == seg && f.PkgPath == "" {
				idx = j
				break
			}
		}
		if idx < 0 {
			return Path{}, notFound()
		}
		steps = append(steps, step{index: idx, deref: deref})
		t = t.Field(idx).Type
	}

	return Path{root: root, name: path, steps: steps, leaf: t}, nil
}

// Name returns the path as given to Resolve.
func (p Path) Name() string { return p.name }

// Root returns the struct type the path was resolved against.
func (p Path) Root() reflect.Type { return p.root }

// Type returns the type of the addressed field.
func (p Path) Type() reflect.Type { return p.leaf }

// Get returns the addressed field of the struct value rv. The result is invalid when an
// intermediate pointer is nil.
func (p Path) Get(rv reflect.Value) reflect.Value {
	v := rv
	for _, s := range p.steps {
		if s.deref {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		v = v.Field(s.index)
	}
	return v
}

// Set stores x into the addressed field of the addressable struct value rv, allocating
// nil intermediate pointers on the way.
func (p Path) Set(rv, x reflect.Value) {
	v := rv
	for _, s := range p.steps {
		if s.deref {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(s.index)
	}
	v.Set(x)
}
