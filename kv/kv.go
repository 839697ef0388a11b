package kv

import (
	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/internal/engine"
	"github.com/on-the-ground/collect_ive_go/omap"
)

// Filter keeps the entries satisfying p. A nil p returns a copy of src.
func Filter[K comparable, V any](src *omap.Map[K, V], p fn.Predicate2[K, V]) *omap.Map[K, V] {
	if p == nil {
		return src.Clone()
	}
	return omap.FromEntries(engine.Filter(entries(src), tupled(p)))
}

// FilterNot drops the entries satisfying p. A nil p returns a copy of src.
func FilterNot[K comparable, V any](src *omap.Map[K, V], p fn.Predicate2[K, V]) *omap.Map[K, V] {
	if p == nil {
		return src.Clone()
	}
	return omap.FromEntries(engine.Filter(entries(src), tupled(p.Negate())))
}

// Map rebuilds the map from the entries produced by mapper. When two entries
// map to the same key the later value wins.
func Map[K comparable, V any, K2 comparable, V2 any](src *omap.Map[K, V], mapper fn.Function2[K, V, fn.Tuple2[K2, V2]]) (*omap.Map[K2, V2], error) {
	if src.Len() == 0 {
		return omap.New[K2, V2](), nil
	}
	if mapper == nil {
		return nil, fn.MissingFunction("mapper")
	}
	return omap.FromEntries(engine.Map(entries(src), tupledFunc(mapper))), nil
}

// MapValues keeps every key and replaces its value with mapper(k, v).
func MapValues[K comparable, V, V2 any](src *omap.Map[K, V], mapper fn.Function2[K, V, V2]) (*omap.Map[K, V2], error) {
	if src.Len() == 0 {
		return omap.New[K, V2](), nil
	}
	if mapper == nil {
		return nil, fn.MissingFunction("mapper")
	}
	out := omap.New[K, V2](src.Len())
	for k, v := range src.All() {
		out.Set(k, mapper(k, v))
	}
	return out, nil
}

// Collect maps the entries inside the domain of pf into a new map.
func Collect[K comparable, V any, K2 comparable, V2 any](src *omap.Map[K, V], pf fn.PartialFunction[Entry[K, V], fn.Tuple2[K2, V2]]) (*omap.Map[K2, V2], error) {
	if src.Len() == 0 {
		return omap.New[K2, V2](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return omap.FromEntries(engine.Collect(entries(src), pf)), nil
}

// ApplyOrElse maps every entry through pf where it is defined and through
// orElse elsewhere.
func ApplyOrElse[K comparable, V any, K2 comparable, V2 any](
	src *omap.Map[K, V],
	pf fn.PartialFunction[Entry[K, V], fn.Tuple2[K2, V2]],
	orElse fn.Function2[K, V, fn.Tuple2[K2, V2]],
) (*omap.Map[K2, V2], error) {
	if src.Len() == 0 {
		return omap.New[K2, V2](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	if orElse == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	return omap.FromEntries(engine.ApplyOrElse(entries(src), pf, tupledFunc(orElse))), nil
}

// ApplyOrElseWith maps the entries satisfying p with defaultMapper and the
// others with orElseMapper. A nil p sends every entry to defaultMapper.
func ApplyOrElseWith[K comparable, V any, K2 comparable, V2 any](
	src *omap.Map[K, V],
	defaultMapper, orElseMapper fn.Function2[K, V, fn.Tuple2[K2, V2]],
	p fn.Predicate2[K, V],
) (*omap.Map[K2, V2], error) {
	if src.Len() == 0 {
		return omap.New[K2, V2](), nil
	}
	if orElseMapper == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	pf, err := Partial(p, defaultMapper)
	if err != nil {
		return nil, err
	}
	return omap.FromEntries(engine.ApplyOrElse(entries(src), pf, tupledFunc(orElseMapper))), nil
}

// FoldLeft accumulates from initial over the entries satisfying p in
// insertion order. An empty src or a nil accumulator returns initial.
func FoldLeft[K comparable, V, R any](src *omap.Map[K, V], initial R, accumulator fn.Function3[R, K, V, R], p fn.Predicate2[K, V]) R {
	if src.Len() == 0 || accumulator == nil {
		return initial
	}
	acc := func(r R, e Entry[K, V]) R { return accumulator(r, e.First, e.Second) }
	return engine.FoldLeft(entries(src), initial, acc, tupled(fn.OrAlwaysTrue2(p)))
}

// Reduce folds the entries with op starting from the first one.
func Reduce[K comparable, V any](src *omap.Map[K, V], op fn.BinaryOperator[Entry[K, V]]) (fn.Optional[Entry[K, V]], error) {
	if src.Len() == 0 {
		return fn.None[Entry[K, V]](), nil
	}
	if op == nil {
		return fn.None[Entry[K, V]](), fn.MissingFunction("accumulator")
	}
	return engine.Reduce(entries(src), op), nil
}

// GroupBy splits the entries satisfying p into sub-maps by key.
func GroupBy[K comparable, V any, G comparable](src *omap.Map[K, V], key fn.Function2[K, V, G], p fn.Predicate2[K, V]) (*omap.Map[G, *omap.Map[K, V]], error) {
	if src.Len() == 0 {
		return omap.New[G, *omap.Map[K, V]](), nil
	}
	if key == nil {
		return nil, fn.MissingFunction("keyMapper")
	}
	grouped := engine.GroupMultiKey(entries(src), func(e Entry[K, V]) []G {
		return []G{key(e.First, e.Second)}
	}, tupled(fn.OrAlwaysTrue2(p)))
	return subMaps(grouped), nil
}

// GroupByMultiKey adds every entry satisfying p to the sub-map of each key
// returned by keys.
func GroupByMultiKey[K comparable, V any, G comparable](src *omap.Map[K, V], keys fn.Function2[K, V, []G], p fn.Predicate2[K, V]) (*omap.Map[G, *omap.Map[K, V]], error) {
	if src.Len() == 0 {
		return omap.New[G, *omap.Map[K, V]](), nil
	}
	if keys == nil {
		return nil, fn.MissingFunction("discriminatorKeys")
	}
	return subMaps(engine.GroupMultiKey(entries(src), tupledFunc(keys), tupled(fn.OrAlwaysTrue2(p)))), nil
}

func subMaps[G, K comparable, V any](grouped *omap.Map[G, []Entry[K, V]]) *omap.Map[G, *omap.Map[K, V]] {
	out := omap.New[G, *omap.Map[K, V]](grouped.Len())
	for g, es := range grouped.All() {
		out.Set(g, omap.FromEntries(es))
	}
	return out
}

// GroupMap groups valueMapper(k, v) by key(k, v) for the entries satisfying p.
func GroupMap[K comparable, V any, G comparable, R any](src *omap.Map[K, V], key fn.Function2[K, V, G], valueMapper fn.Function2[K, V, R], p fn.Predicate2[K, V]) (*omap.Map[G, []R], error) {
	if src.Len() == 0 {
		return omap.New[G, []R](), nil
	}
	pf, err := PartialToTuple(p, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return engine.GroupMap(entries(src), pf), nil
}

// GroupMapPartial groups by the (group, value) pairs produced by pf.
func GroupMapPartial[K comparable, V any, G comparable, R any](src *omap.Map[K, V], pf fn.PartialFunction[Entry[K, V], fn.Tuple2[G, R]]) (*omap.Map[G, []R], error) {
	if src.Len() == 0 {
		return omap.New[G, []R](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMap(entries(src), pf), nil
}

// GroupMapReduce reduces every GroupMap group with op in insertion order.
func GroupMapReduce[K comparable, V any, G comparable, R any](src *omap.Map[K, V], op fn.BinaryOperator[R], key fn.Function2[K, V, G], valueMapper fn.Function2[K, V, R]) (*omap.Map[G, R], error) {
	if src.Len() == 0 {
		return omap.New[G, R](), nil
	}
	pf, err := PartialToTuple(nil, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return GroupMapReducePartial(src, op, pf)
}

func GroupMapReducePartial[K comparable, V any, G comparable, R any](src *omap.Map[K, V], op fn.BinaryOperator[R], pf fn.PartialFunction[Entry[K, V], fn.Tuple2[G, R]]) (*omap.Map[G, R], error) {
	if src.Len() == 0 {
		return omap.New[G, R](), nil
	}
	if op == nil {
		return nil, fn.MissingFunction("reduceOperator")
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMapReduce(entries(src), op, pf), nil
}

// Partition splits the entries satisfying p by discriminator. Both keys are
// always present, true first.
func Partition[K comparable, V any](src *omap.Map[K, V], discriminator fn.Predicate2[K, V], p fn.Predicate2[K, V]) (*omap.Map[bool, *omap.Map[K, V]], error) {
	if src.Len() == 0 {
		parts := omap.New[bool, *omap.Map[K, V]](2)
		parts.Set(true, omap.New[K, V]())
		parts.Set(false, omap.New[K, V]())
		return parts, nil
	}
	if discriminator == nil {
		return nil, fn.MissingFunction("discriminator")
	}
	return subMaps(engine.Partition(entries(src), tupled(discriminator), tupled(fn.OrAlwaysTrue2(p)))), nil
}

// TakeWhile keeps the longest leading run of entries satisfying p.
func TakeWhile[K comparable, V any](src *omap.Map[K, V], p fn.Predicate2[K, V]) *omap.Map[K, V] {
	return omap.FromEntries(engine.TakeWhile(entries(src), tupled(fn.OrAlwaysTrue2(p))))
}

// DropWhile drops the longest leading run of entries satisfying p.
func DropWhile[K comparable, V any](src *omap.Map[K, V], p fn.Predicate2[K, V]) *omap.Map[K, V] {
	return omap.FromEntries(engine.DropWhile(entries(src), tupled(fn.OrAlwaysTrue2(p))))
}

// Sliding returns the windows of size consecutive entries advancing by one.
func Sliding[K comparable, V any](src *omap.Map[K, V], size int) ([]*omap.Map[K, V], error) {
	if src.Len() > 0 && size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return toMaps(engine.Sliding(src.Entries(), size)), nil
}

// Split returns consecutive chunks of size entries.
func Split[K comparable, V any](src *omap.Map[K, V], size int) ([]*omap.Map[K, V], error) {
	if src.Len() == 0 {
		return []*omap.Map[K, V]{}, nil
	}
	if size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return toMaps(engine.Split(src.Entries(), size)), nil
}

func toMaps[K comparable, V any](chunks [][]Entry[K, V]) []*omap.Map[K, V] {
	out := make([]*omap.Map[K, V], 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, omap.FromEntries(chunk))
	}
	return out
}

// Sort returns a copy whose insertion order follows comparator. A nil
// comparator orders entries by their "(key, value)" text.
func Sort[K comparable, V any](src *omap.Map[K, V], comparator fn.Comparator[Entry[K, V]]) *omap.Map[K, V] {
	return omap.FromEntries(engine.Sort(src.Entries(), fn.OrLexicographic(comparator)))
}

// ByKey orders entries by key.
func ByKey[K comparable, V any](keyCmp fn.Comparator[K]) fn.Comparator[Entry[K, V]] {
	return func(a, b Entry[K, V]) int { return keyCmp(a.First, b.First) }
}

// ByValue orders entries by value.
func ByValue[K comparable, V any](valueCmp fn.Comparator[V]) fn.Comparator[Entry[K, V]] {
	return func(a, b Entry[K, V]) int { return valueCmp(a.Second, b.Second) }
}

func Min[K comparable, V any](src *omap.Map[K, V], comparator fn.Comparator[Entry[K, V]]) (Entry[K, V], bool) {
	return MinOptional(src, comparator).Get()
}

func Max[K comparable, V any](src *omap.Map[K, V], comparator fn.Comparator[Entry[K, V]]) (Entry[K, V], bool) {
	return MaxOptional(src, comparator).Get()
}

// MinOptional returns the first smallest entry, None for an empty src.
func MinOptional[K comparable, V any](src *omap.Map[K, V], comparator fn.Comparator[Entry[K, V]]) fn.Optional[Entry[K, V]] {
	return engine.Min(entries(src), fn.OrLexicographic(comparator))
}

// MaxOptional returns the first largest entry, None for an empty src.
func MaxOptional[K comparable, V any](src *omap.Map[K, V], comparator fn.Comparator[Entry[K, V]]) fn.Optional[Entry[K, V]] {
	return engine.Max(entries(src), fn.OrLexicographic(comparator))
}

// RemoveAll keeps the entries of src equal to no entry of other. Entries are
// compared whole; a nil equality selects deep structural equality.
func RemoveAll[K comparable, V any](src, other *omap.Map[K, V], equality fn.Predicate2[Entry[K, V], Entry[K, V]]) *omap.Map[K, V] {
	if other.Len() == 0 {
		return src.Clone()
	}
	return omap.FromEntries(engine.RemoveAll(entries(src), other.Entries(), equality))
}

// RetainAll keeps the entries of src equal to some entry of other.
func RetainAll[K comparable, V any](src, other *omap.Map[K, V], equality fn.Predicate2[Entry[K, V], Entry[K, V]]) *omap.Map[K, V] {
	if src.Len() == 0 || other.Len() == 0 {
		return omap.New[K, V]()
	}
	return omap.FromEntries(engine.RetainAll(entries(src), other.Entries(), equality))
}

// ToArray collects pf over the entries inside its domain.
func ToArray[K comparable, V, R any](src *omap.Map[K, V], pf fn.PartialFunction[Entry[K, V], R]) ([]R, error) {
	if src.Len() == 0 {
		return []R{}, nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.Collect(entries(src), pf), nil
}

// PutIfAbsent stores v under k unless k is present. It returns the value now
// held for k and whether it was already there.
func PutIfAbsent[K comparable, V any](dst *omap.Map[K, V], k K, v V) (actual V, loaded bool, err error) {
	if dst == nil {
		return actual, false, fn.NilDestination("destination")
	}
	if existing, ok := dst.Get(k); ok {
		return existing, true, nil
	}
	dst.Set(k, v)
	return v, false, nil
}

// ComputeIfAbsent stores mapping(k) under k unless k is present, and returns
// the value held for k. mapping is not called for a present key.
func ComputeIfAbsent[K comparable, V any](dst *omap.Map[K, V], k K, mapping fn.Function1[K, V]) (V, error) {
	var zero V
	if dst == nil {
		return zero, fn.NilDestination("destination")
	}
	if existing, ok := dst.Get(k); ok {
		return existing, nil
	}
	if mapping == nil {
		return zero, fn.MissingFunction("mappingFunction")
	}
	v := mapping(k)
	dst.Set(k, v)
	return v, nil
}
