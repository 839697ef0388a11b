// Package kv applies the collection algorithms to insertion-ordered maps.
//
// The element type is the entry fn.Tuple2[K, V]. Predicates and mappers take
// the key and the value as two arguments; partial functions, comparators and
// reduce operators work on whole entries. Results preserve the encounter order
// of the source, and when a mapping produces the same key twice the later
// value wins while the key keeps its first position.
//
// A nil *omap.Map is treated as empty and the source is never modified.
package kv
