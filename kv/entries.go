package kv

import (
	"iter"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/omap"
)

// Entry is the element type seen by partial functions, comparators and
// reduce operators.
type Entry[K comparable, V any] = fn.Tuple2[K, V]

func entries[K comparable, V any](m *omap.Map[K, V]) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m.All() {
			if !yield(fn.NewTuple2(k, v)) {
				return
			}
		}
	}
}

func tupled[K comparable, V any](p fn.Predicate2[K, V]) fn.Predicate1[Entry[K, V]] {
	return func(e Entry[K, V]) bool { return p(e.First, e.Second) }
}

func tupledFunc[K comparable, V, R any](f fn.Function2[K, V, R]) fn.Function1[Entry[K, V], R] {
	return func(e Entry[K, V]) R { return f(e.First, e.Second) }
}

// Partial builds a partial function over entries from a key/value predicate
// and mapper. A nil isDefinedAt makes it defined everywhere.
func Partial[K comparable, V, R any](isDefinedAt fn.Predicate2[K, V], mapper fn.Function2[K, V, R]) (fn.PartialFunction[Entry[K, V], R], error) {
	if mapper == nil {
		return nil, fn.MissingFunction("mapper")
	}
	var domain fn.Predicate1[Entry[K, V]]
	if isDefinedAt != nil {
		domain = tupled(isDefinedAt)
	}
	return fn.Partial(domain, tupledFunc(mapper))
}

// PartialToTuple is Partial producing (keyMapper(k, v), valueMapper(k, v)).
func PartialToTuple[K comparable, V, K2, V2 any](
	isDefinedAt fn.Predicate2[K, V],
	keyMapper fn.Function2[K, V, K2],
	valueMapper fn.Function2[K, V, V2],
) (fn.PartialFunction[Entry[K, V], fn.Tuple2[K2, V2]], error) {
	if keyMapper == nil {
		return nil, fn.MissingFunction("keyMapper")
	}
	if valueMapper == nil {
		return nil, fn.MissingFunction("valueMapper")
	}
	var domain fn.Predicate1[Entry[K, V]]
	if isDefinedAt != nil {
		domain = tupled(isDefinedAt)
	}
	return fn.PartialToTuple(domain, tupledFunc(keyMapper), tupledFunc(valueMapper))
}
