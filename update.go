package databind

// Update writes value into the registry's model at field, then pushes the new value through
// every one-way and then every two-way binding of that field, in bind order. It returns
// true if at least one of those bindings reached a live control; false means nobody is
// displaying the field any more.
//
// When the registry has no model yet, the empty model is created first. Update panics if
// field is read-only, leaving the registry untouched.
func Update[M, V any](r *Registry[M], field Field[M, V], value V) bool {
	if !field.Writable() {
		panic(readOnlyErr(field.ref))
	}
	return r.update(field.ref, func(m *M) { field.Set(m, value) })
}
