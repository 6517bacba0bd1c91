package databind

// To is the one-way shorthand (field => control): the control displays the field through its
// own SetValue.
func To[M, V, C any, PC interface {
	*C
	Pushable[V]
}](field Field[M, V], control PC) *OneWay[M] {
	return NewOneWay[M, V, C](field, (*C)(control), func(c *C, v V, _ M) { PC(c).SetValue(v) })
}

// Sync is the two-way shorthand (field <=> control): the control displays the field through
// SetValue, and its Value is written back into the field on every user edit.
// Sync panics with ErrReadOnlyField if field has no setter.
func Sync[M, V, C any, PC interface {
	*C
	Editable
	Pullable[V]
}](field Field[M, V], control PC) *TwoWay[M] {
	if !field.Writable() {
		panic(readOnlyErr(field.ref))
	}
	return NewTwoWay[M, V, C, PC](field, control,
		func(c PC, v V, _ M) { c.SetValue(v) },
		func(m *M, c PC) { field.Set(m, c.Value()) },
	)
}
