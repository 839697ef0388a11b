// Package omap provides Map, an associative container that remembers insertion
// order. Grouping results and the kv engine use it so that "first-seen key
// first" and left-biased tie-breaks are deterministic, which a Go map cannot
// guarantee.
//
// A nil *Map reads as empty. Writes to a nil *Map panic, like writes to a nil
// Go map.
package omap

import (
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/on-the-ground/collect_ive_go/fn"
)

// Map is an insertion-ordered map. Updating an existing key keeps its position;
// deleting and re-inserting moves it to the end.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// New returns an empty Map with room for capacity entries.
func New[K comparable, V any](capacity ...int) *Map[K, V] {
	n := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		n = capacity[0]
	}
	return &Map[K, V]{om: orderedmap.New[K, V](n)}
}

// FromGoMap copies m. Go maps are unordered, so the resulting order is
// unspecified.
func FromGoMap[K comparable, V any](m map[K]V) *Map[K, V] {
	out := New[K, V](len(m))
	for k, v := range m {
		out.Set(k, v)
	}
	return out
}

// Of builds a Map from entries; a later duplicate key overwrites the value
// but keeps the first position.
func Of[K comparable, V any](entries ...fn.Tuple2[K, V]) *Map[K, V] {
	out := New[K, V](len(entries))
	for _, e := range entries {
		out.Set(e.First, e.Second)
	}
	return out
}

// FromEntries is Of for an existing slice of entries.
func FromEntries[K comparable, V any](entries []fn.Tuple2[K, V]) *Map[K, V] {
	return Of(entries...)
}

// E is shorthand for fn.NewTuple2(k, v).
func E[K comparable, V any](k K, v V) fn.Tuple2[K, V] {
	return fn.NewTuple2(k, v)
}

func (m *Map[K, V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(k)
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Set inserts or updates k.
func (m *Map[K, V]) Set(k K, v V) {
	if m.om == nil {
		m.om = orderedmap.New[K, V]()
	}
	m.om.Set(k, v)
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m == nil || m.om == nil {
		return false
	}
	_, ok := m.om.Delete(k)
	return ok
}

// Keys returns a copy of the keys in insertion order. It is nil for an empty Map.
func (m *Map[K, V]) Keys() []K {
	var out []K
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// Values returns a copy of the values in insertion order. It is nil for an
// empty Map.
func (m *Map[K, V]) Values() []V {
	var out []V
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the entries in insertion order.
func (m *Map[K, V]) Entries() []fn.Tuple2[K, V] {
	out := make([]fn.Tuple2[K, V], 0, m.Len())
	for k, v := range m.All() {
		out = append(out, fn.NewTuple2(k, v))
	}
	return out
}

// All iterates in insertion order. The map must not be modified during
// iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.om == nil {
			return
		}
		for p := m.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. Cloning nil yields an empty Map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// ToGoMap copies the entries into a Go map, dropping the order.
func (m *Map[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, v)
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}
