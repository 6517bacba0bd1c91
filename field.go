package databind

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/errors"
	"github.com/ygrebnov/databind/internal/fieldpath"
)

// FieldRef identifies a field of a model type. Two refs to the same field of the same
// model type are equal, so FieldRef can be compared with == and used as a map key.
type FieldRef struct {
	model reflect.Type
	path  string
}

// Ref returns r itself, so a FieldRef can be passed wherever a Referrer is expected.
func (r FieldRef) Ref() FieldRef { return r }

// Path returns the field name or dotted path the ref was built from.
func (r FieldRef) Path() string { return r.path }

func (r FieldRef) String() string {
	if r.model == nil {
		return r.path
	}
	return r.model.String() + "." + r.path
}

// Referrer is anything that identifies a model field: a FieldRef or a Field.
type Referrer interface {
	Ref() FieldRef
}

// Field is a typed accessor for the field of M holding a V.
type Field[M, V any] struct {
	ref FieldRef
	get func(*M) V
	set func(*M, V)
}

// NewField builds a Field from explicit accessors. name identifies the field: two fields
// of the same model with the same name are the same field. set may be nil for a read-only
// field, which can only be used with one-way bindings.
func NewField[M, V any](name string, get func(*M) V, set func(*M, V)) Field[M, V] {
	if name == "" || get == nil {
		panic(errorc.With(
			errors.ErrInvalidField,
			errorc.String(errors.ErrorFieldModelType, reflect.TypeFor[M]().String()),
			errorc.String(errors.ErrorFieldFieldPath, name),
		))
	}
	return Field[M, V]{
		ref: FieldRef{model: reflect.TypeFor[M](), path: name},
		get: get,
		set: set,
	}
}

// LookupField resolves an exported field of the struct type M by name or dotted path,
// e.g. "Address.Line1". Intermediate pointers to structs are followed; reading through a
// nil pointer yields the zero V and writing allocates it. The field type must be exactly V.
func LookupField[M, V any](path string) (Field[M, V], error) {
	mt := reflect.TypeFor[M]()
	p, err := fieldpath.Resolve(mt, path)
	if err != nil {
		return Field[M, V]{}, err
	}
	vt := reflect.TypeFor[V]()
	if p.Type() != vt {
		return Field[M, V]{}, errorc.With(
			errors.ErrFieldTypeMismatch,
			errorc.String(errors.ErrorFieldFieldPath, path),
			errorc.String(errors.ErrorFieldFieldType, p.Type().String()),
			errorc.String(errors.ErrorFieldValueType, vt.String()),
		)
	}

	get := func(m *M) V {
		var out V
		if fv := p.Get(reflect.ValueOf(m).Elem()); fv.IsValid() {
			// Set rather than a type assertion: a nil interface field must read as nil.
			reflect.ValueOf(&out).Elem().Set(fv)
		}
		return out
	}
	set := func(m *M, v V) {
		// reflect.ValueOf(nil interface) is invalid; store the zero value instead.
		x := reflect.ValueOf(&v).Elem()
		p.Set(reflect.ValueOf(m).Elem(), x)
	}

	return Field[M, V]{ref: FieldRef{model: mt, path: path}, get: get, set: set}, nil
}

// FieldOf is like LookupField but panics if the field cannot be resolved.
// It is meant for package-level field declarations.
func FieldOf[M, V any](path string) Field[M, V] {
	f, err := LookupField[M, V](path)
	if err != nil {
		panic(err)
	}
	return f
}

// Ref returns the identity of the field.
func (f Field[M, V]) Ref() FieldRef { return f.ref }

// Get reads the field from m.
func (f Field[M, V]) Get(m *M) V { return f.get(m) }

// Set writes v into m. It panics for a read-only field.
func (f Field[M, V]) Set(m *M, v V) {
	if f.set == nil {
		panic(readOnlyErr(f.ref))
	}
	f.set(m, v)
}

// Writable reports whether the field has a setter.
func (f Field[M, V]) Writable() bool { return f.set != nil }

func (f Field[M, V]) String() string { return fmt.Sprintf("Field(%s)", f.ref) }

func readOnlyErr(ref FieldRef) error {
	return errorc.With(errors.ErrReadOnlyField, errorc.String(errors.ErrorFieldFieldPath, ref.path))
}
