package helper

import (
	"fmt"
)

// GetTypedValueOf runs getFn and asserts its result to T. The error names both
// the expected and the actual type.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T
	raw, err := getFn()
	if err != nil {
		return zero, err
	}
	if v, ok := raw.(T); ok {
		return v, nil
	}
	return zero, fmt.Errorf("unexpected type: want %T, got %T", zero, raw)
}

// Must returns v, or panics with err.
// Use when failure is a programming error, e.g. building a combinator from
// arguments known to be non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrCompute returns value when ok is true. Otherwise it returns the default,
// which may be a literal T or a supplier func() T evaluated lazily.
// A nil default yields the zero value.
func GetOrCompute[T any](value T, ok bool, def any) T {
	if ok {
		return value
	}
	switch d := def.(type) {
	case nil:
	case func() T:
		if d != nil {
			return d()
		}
	case T:
		return d
	}
	var zero T
	return zero
}
