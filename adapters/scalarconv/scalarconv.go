//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Package scalarconv adapts the string values a
// [github.com/cliframe/posixarg.ParseResult] binds (a single string, or
// a []string) into typed Go values, using
// [github.com/alexflint/go-scalar] for the scalar conversions. The
// other shapes a result can hold ([][]string, bool, int) are not
// handled.
//
// This is deliberately a separate package: the core posixarg package
// performs no type coercion, defaulting, or validation of option
// values (that is out of its scope). Callers who want a typed value
// out of a parsed option or positional import this adapter on top of
// the core result, instead of the core growing an opinion about int
// parsing, duration parsing, and so on.
package scalarconv

import (
	"fmt"
	"reflect"

	"github.com/alexflint/go-scalar"
)

// Into converts a single scalar option/positional value (as returned
// by [posixarg.ParsedOption.Value] or [posixarg.ParsedPositional.Value]
// for an arity-one binding) into dst, which must be a non-nil pointer.
//
// dst's pointee type determines the conversion: go-scalar supports the
// builtin numeric, bool, and string kinds plus any type implementing
// [encoding.TextUnmarshaler]. value must itself be a string; passing
// anything else (e.g. a []string from a multi-value binding) is a
// programmer error and returns an error rather than panicking.
func Into(value any, dst any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("scalarconv: value %v is not a scalar string", value)
	}
	return scalar.ParseValue(reflect.ValueOf(dst).Elem(), s)
}

// IntoSlice converts each element of a multi-value option/positional
// binding (a []string, as returned for an arity-many binding) into a
// freshly allocated slice of the type dst's pointee element type, and
// stores the result through dst.
//
// dst must be a non-nil pointer to a slice, e.g. *[]int.
func IntoSlice(values []string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("scalarconv: dst must be a pointer to a slice, got %T", dst)
	}
	elemType := rv.Elem().Type().Elem()
	out := reflect.MakeSlice(rv.Elem().Type(), len(values), len(values))
	for i, v := range values {
		elem := reflect.New(elemType)
		if err := scalar.ParseValue(elem.Elem(), v); err != nil {
			return fmt.Errorf("scalarconv: element %d: %w", i, err)
		}
		out.Index(i).Set(elem.Elem())
	}
	rv.Elem().Set(out)
	return nil
}
