package fn

import (
	"fmt"
	"reflect"
)

// IsFunctionN reports whether v is a non-nil func declaring exactly n
// parameters. Variadic funcs never match: their declared count does not say
// how many arguments they take.
func IsFunctionN(v any, n int) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	t := rv.Type()
	return !t.IsVariadic() && t.NumIn() == n
}

func IsFunction0(v any) bool { return IsFunctionN(v, 0) }

func IsFunction1(v any) bool { return IsFunctionN(v, 1) }

func IsFunction2(v any) bool { return IsFunctionN(v, 2) }

func IsFunction3(v any) bool { return IsFunctionN(v, 3) }

func notAFunction(v any, want string) error {
	return fmt.Errorf("%w: got %T, want %s", ErrNotAFunction, v, want)
}

// Coerce0 converts a dynamically typed supplier into a Function0.
func Coerce0[R any](v any) (Function0[R], error) {
	switch f := v.(type) {
	case nil:
		return nil, MissingFunction("function")
	case Function0[R]:
		return OfFunction0(f)
	case func() R:
		return OfFunction0(f)
	case interface{ Apply() R }:
		return f.Apply, nil
	}
	return nil, notAFunction(v, "func() R")
}

// Coerce1 converts a func(T) R, a Function1[T, R] or any value with an
// Apply(T) R method into a Function1.
func Coerce1[T, R any](v any) (Function1[T, R], error) {
	switch f := v.(type) {
	case nil:
		return nil, MissingFunction("function")
	case Function1[T, R]:
		return OfFunction1(f)
	case func(T) R:
		return OfFunction1(f)
	case interface{ Apply(T) R }:
		return f.Apply, nil
	}
	return nil, notAFunction(v, "func(T) R")
}

// Coerce2 is Coerce1 for two arguments.
func Coerce2[T1, T2, R any](v any) (Function2[T1, T2, R], error) {
	switch f := v.(type) {
	case nil:
		return nil, MissingFunction("function")
	case Function2[T1, T2, R]:
		return OfFunction2(f)
	case func(T1, T2) R:
		return OfFunction2(f)
	case interface{ Apply(T1, T2) R }:
		return f.Apply, nil
	}
	return nil, notAFunction(v, "func(T1, T2) R")
}

// Coerce3 is Coerce1 for three arguments.
func Coerce3[T1, T2, T3, R any](v any) (Function3[T1, T2, T3, R], error) {
	switch f := v.(type) {
	case nil:
		return nil, MissingFunction("function")
	case Function3[T1, T2, T3, R]:
		return OfFunction3(f)
	case func(T1, T2, T3) R:
		return OfFunction3(f)
	case interface{ Apply(T1, T2, T3) R }:
		return f.Apply, nil
	}
	return nil, notAFunction(v, "func(T1, T2, T3) R")
}

// CoercePredicate1 accepts a func(T) bool, a Predicate1[T], a Function1[T, bool]
// or any value with a Test(T) bool method.
func CoercePredicate1[T any](v any) (Predicate1[T], error) {
	switch p := v.(type) {
	case nil:
		return nil, MissingFunction("predicate")
	case Predicate1[T]:
		return OfPredicate1(p)
	case func(T) bool:
		return OfPredicate1(p)
	case Function1[T, bool]:
		return OfPredicate1(Predicate1[T](p))
	case interface{ Test(T) bool }:
		return p.Test, nil
	}
	return nil, notAFunction(v, "func(T) bool")
}

// CoercePredicate2 is CoercePredicate1 for two arguments.
func CoercePredicate2[T1, T2 any](v any) (Predicate2[T1, T2], error) {
	switch p := v.(type) {
	case nil:
		return nil, MissingFunction("predicate")
	case Predicate2[T1, T2]:
		return OfPredicate2(p)
	case func(T1, T2) bool:
		return OfPredicate2(p)
	case Function2[T1, T2, bool]:
		return OfPredicate2(Predicate2[T1, T2](p))
	case interface{ Test(T1, T2) bool }:
		return p.Test, nil
	}
	return nil, notAFunction(v, "func(T1, T2) bool")
}

// CoerceComparator accepts a func(T, T) int, a Comparator[T] or any value with
// a Compare(T, T) int method.
func CoerceComparator[T any](v any) (Comparator[T], error) {
	switch c := v.(type) {
	case nil:
		return nil, MissingFunction("comparator")
	case Comparator[T]:
		return OfComparator(c)
	case func(T, T) int:
		return OfComparator(c)
	case interface{ Compare(T, T) int }:
		return c.Compare, nil
	}
	return nil, notAFunction(v, "func(T, T) int")
}
