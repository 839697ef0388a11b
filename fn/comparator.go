package fn

import (
	"cmp"
	"fmt"
	"strings"
)

// Comparator orders two values: negative when a precedes b, zero when they
// rank equally, positive when a follows b.
type Comparator[T any] func(a, b T) int

func (c Comparator[T]) Compare(a, b T) int { return c(a, b) }

// Reversed flips the sign of every result. c is called once per comparison
// with the original argument order.
func (c Comparator[T]) Reversed() Comparator[T] {
	mustNotBeNil(c == nil, "comparator")
	return func(a, b T) int {
		switch r := c(a, b); {
		case r < 0:
			return 1
		case r > 0:
			return -1
		default:
			return 0
		}
	}
}

// ThenComparing breaks ties of c with next.
func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	mustNotBeNil(c == nil, "comparator")
	mustNotBeNil(next == nil, "next")
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// NaturalOrder compares ordered values with cmp.Compare.
func NaturalOrder[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// LexicographicOrder compares the fmt.Sprint representations of its arguments.
// It is the fallback ordering of every Sort, Min and Max given a nil
// comparator, so []int{1, 10, 2} is already sorted under it.
func LexicographicOrder[T any]() Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// Comparing orders by key(t) using keyCmp.
func Comparing[T, K any](key Function1[T, K], keyCmp Comparator[K]) (Comparator[T], error) {
	if key == nil {
		return nil, MissingFunction("key")
	}
	if keyCmp == nil {
		return nil, MissingFunction("keyComparator")
	}
	return func(a, b T) int { return keyCmp(key(a), key(b)) }, nil
}

// OfComparator normalizes c. It fails only when c is nil.
func OfComparator[T any](c Comparator[T]) (Comparator[T], error) {
	if c == nil {
		return nil, MissingFunction("comparator")
	}
	return c, nil
}

// OrLexicographic substitutes LexicographicOrder for a nil comparator.
func OrLexicographic[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return LexicographicOrder[T]()
	}
	return c
}
