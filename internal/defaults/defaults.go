// Package defaults fills zero-valued struct fields from `default` struct tags.
// It is used to build the empty model a registry starts from.
package defaults

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/constants"
	"github.com/ygrebnov/databind/errors"
)

// Apply walks the struct value and applies defaults according to `default` and `defaultElem` tags.
// Supported forms:
//   - `default:"<literal>"` sets the field if it is zero
//   - `default:"dive"` on a struct or pointer-to-struct recurses into its fields
//   - `default:"alloc"` allocates an empty map/slice when the field is nil
//   - `defaultElem:"dive"` recurses into slice/array elements or map values that are structs
//
// rv must be an addressable struct value.
func Apply(rv reflect.Value) error {
	typ := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		fv := rv.Field(i)

		if dtag := field.Tag.Get(constants.TagDefault); dtag != "" && dtag != constants.TagSkip {
			if err := applyDefaultTag(fv, dtag, field.Name); err != nil {
				return err
			}
		}
		if etag := field.Tag.Get(constants.TagDefaultElem); etag == constants.TagDive {
			if err := diveElements(fv); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyDefaultTag(fv reflect.Value, tag, fieldName string) error {
	switch tag {
	case constants.TagDive:
		return diveInto(fv)
	case constants.TagAlloc:
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
		} else if fv.Kind() == reflect.Map && fv.IsNil() {
			fv.Set(reflect.MakeMap(fv.Type()))
		}
		return nil
	default:
		if err := setLiteral(fv, tag); err != nil {
			return errorc.With(
				errors.ErrSetDefault,
				errorc.String(errors.ErrorFieldFieldPath, fieldName),
				errorc.Error(errors.ErrorFieldCause, err),
			)
		}
		return nil
	}
}

// diveInto recurses into a struct or *struct field. A nil *struct is allocated first.
func diveInto(fv reflect.Value) error {
	switch fv.Kind() {
	case reflect.Ptr:
		if fv.Type().Elem().Kind() != reflect.Struct {
			return nil
		}
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return Apply(fv.Elem())
	case reflect.Struct:
		return Apply(fv)
	default:
		return nil
	}
}

func diveElements(fv reflect.Value) error {
	cont := fv
	if cont.Kind() == reflect.Ptr && !cont.IsNil() {
		cont = cont.Elem()
	}
	switch cont.Kind() {
	case reflect.Slice, reflect.Array:
		for j := 0; j < cont.Len(); j++ {
			ev := cont.Index(j)
			if ev.Kind() == reflect.Ptr && !ev.IsNil() {
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				if err := Apply(ev); err != nil {
					return err
				}
			}
		}
	case reflect.Map:
		for _, key := range cont.MapKeys() {
			mv := cont.MapIndex(key)
			if mv.Kind() == reflect.Ptr {
				if !mv.IsNil() && mv.Elem().Kind() == reflect.Struct {
					if err := Apply(mv.Elem()); err != nil {
						return err
					}
				}
				continue
			}
			// Map values are not addressable: copy, modify, write back.
			if mv.Kind() == reflect.Struct {
				sv := reflect.New(mv.Type()).Elem()
				sv.Set(mv)
				if err := Apply(sv); err != nil {
					return err
				}
				cont.SetMapIndex(key, sv)
			}
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// setLiteral sets a literal default value into fv if it is zero.
// For pointer-to-scalar fields, it allocates and sets the pointed value.
//
//nolint:gocyclo // one case per kind
func setLiteral(fv reflect.Value, lit string) error {
	target := fv
	if target.Kind() == reflect.Ptr {
		if target.IsNil() {
			switch target.Type().Elem().Kind() {
			case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
				// complex types are never allocated for a literal
			default:
				target.Set(reflect.New(target.Type().Elem()))
			}
		}
		if !target.IsNil() {
			target = target.Elem()
		}
	}

	if !target.CanSet() || !target.IsZero() {
		return nil
	}

	if target.Type() == durationType {
		d, err := time.ParseDuration(lit)
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		target.SetInt(int64(d))
		return nil
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(lit)
	case reflect.Bool:
		switch strings.ToLower(lit) {
		case "1", "true", "t", "yes", "y", "on":
			target.SetBool(true)
		case "0", "false", "f", "no", "n", "off":
			target.SetBool(false)
		default:
			return fmt.Errorf("parse bool: %q", lit)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv, err := strconv.ParseInt(strings.TrimSpace(lit), 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}
		target.SetInt(iv)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		uv, err := strconv.ParseUint(strings.TrimSpace(lit), 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}
		target.SetUint(uv)
	case reflect.Float32, reflect.Float64:
		fv, err := strconv.ParseFloat(strings.TrimSpace(lit), target.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse float: %w", err)
		}
		target.SetFloat(fv)
	default:
		return errorc.With(
			errors.ErrDefaultLiteralUnsupportedKind,
			errorc.String(errors.ErrorFieldDefaultLiteralKind, target.Kind().String()),
		)
	}
	return nil
}
