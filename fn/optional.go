package fn

import "fmt"

// Optional is a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) IsEmpty() bool { return !o.present }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value, or v when absent.
func (o Optional[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// OrElseGet returns the value, or supplier() when absent. A nil supplier yields
// the zero value.
func (o Optional[T]) OrElseGet(supplier Function0[T]) T {
	if o.present {
		return o.value
	}
	if supplier == nil {
		var zero T
		return zero
	}
	return supplier()
}

// Filter keeps the value only when p holds for it.
func (o Optional[T]) Filter(p Predicate1[T]) Optional[T] {
	if !o.present || p == nil || p(o.value) {
		return o
	}
	return None[T]()
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOptional applies f to a present value.
func MapOptional[T, R any](o Optional[T], f Function1[T, R]) Optional[R] {
	if !o.present || f == nil {
		return None[R]()
	}
	return Some(f(o.value))
}
