package seq

import (
	"slices"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/internal/engine"
	"github.com/on-the-ground/collect_ive_go/omap"
)

// Filter keeps the elements satisfying p. A nil p returns a copy of src.
func Filter[T any](src []T, p fn.Predicate1[T]) []T {
	if p == nil {
		return slices.Clone(src)
	}
	return engine.Filter(slices.Values(src), p)
}

// FilterNot drops the elements satisfying p. A nil p returns a copy of src.
func FilterNot[T any](src []T, p fn.Predicate1[T]) []T {
	if p == nil {
		return slices.Clone(src)
	}
	return engine.Filter(slices.Values(src), p.Negate())
}

// Map applies mapper to every element.
func Map[T, R any](src []T, mapper fn.Function1[T, R]) ([]R, error) {
	if len(src) == 0 {
		return []R{}, nil
	}
	if mapper == nil {
		return nil, fn.MissingFunction("mapper")
	}
	return engine.Map(slices.Values(src), mapper), nil
}

// Collect maps the elements inside the domain of pf and drops the others.
func Collect[T, R any](src []T, pf fn.PartialFunction[T, R]) ([]R, error) {
	if len(src) == 0 {
		return []R{}, nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.Collect(slices.Values(src), pf), nil
}

// ApplyOrElse maps every element: through pf where it is defined, through
// orElse elsewhere. The result has len(src) elements.
func ApplyOrElse[T, R any](src []T, pf fn.PartialFunction[T, R], orElse fn.Function1[T, R]) ([]R, error) {
	if len(src) == 0 {
		return []R{}, nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	if orElse == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	return engine.ApplyOrElse(slices.Values(src), pf, orElse), nil
}

// ApplyOrElseWith maps the elements satisfying p with defaultMapper and the
// others with orElseMapper. A nil p sends every element to defaultMapper.
func ApplyOrElseWith[T, R any](src []T, defaultMapper, orElseMapper fn.Function1[T, R], p fn.Predicate1[T]) ([]R, error) {
	if len(src) == 0 {
		return []R{}, nil
	}
	if orElseMapper == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	pf, err := fn.Partial(p, defaultMapper)
	if err != nil {
		return nil, err
	}
	return engine.ApplyOrElse(slices.Values(src), pf, orElseMapper), nil
}

// FoldLeft accumulates from initial over the elements satisfying p, left to
// right. An empty src or a nil accumulator returns initial.
func FoldLeft[T, R any](src []T, initial R, accumulator fn.Function2[R, T, R], p fn.Predicate1[T]) R {
	if len(src) == 0 || accumulator == nil {
		return initial
	}
	return engine.FoldLeft(slices.Values(src), initial, accumulator, fn.OrAlwaysTrue1(p))
}

// Reduce folds src with op starting from its first element. It is None for an
// empty src.
func Reduce[T any](src []T, op fn.BinaryOperator[T]) (fn.Optional[T], error) {
	if len(src) == 0 {
		return fn.None[T](), nil
	}
	if op == nil {
		return fn.None[T](), fn.MissingFunction("accumulator")
	}
	return engine.Reduce(slices.Values(src), op), nil
}

// GroupBy groups the elements satisfying p by key.
func GroupBy[T any, K comparable](src []T, key fn.Function1[T, K], p fn.Predicate1[T]) (*omap.Map[K, []T], error) {
	return GroupMap(src, key, fn.Identity[T](), p)
}

// GroupByMultiKey adds every element satisfying p to the group of each key
// returned by keys.
func GroupByMultiKey[T any, K comparable](src []T, keys fn.Function1[T, []K], p fn.Predicate1[T]) (*omap.Map[K, []T], error) {
	if len(src) == 0 {
		return omap.New[K, []T](), nil
	}
	if keys == nil {
		return nil, fn.MissingFunction("discriminatorKeys")
	}
	return engine.GroupMultiKey(slices.Values(src), keys, fn.OrAlwaysTrue1(p)), nil
}

// GroupMap groups valueMapper(t) by key(t) for the elements satisfying p.
func GroupMap[T any, K comparable, R any](src []T, key fn.Function1[T, K], valueMapper fn.Function1[T, R], p fn.Predicate1[T]) (*omap.Map[K, []R], error) {
	if len(src) == 0 {
		return omap.New[K, []R](), nil
	}
	pf, err := fn.PartialToTuple(p, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return engine.GroupMap(slices.Values(src), pf), nil
}

// GroupMapPartial groups by the (key, value) pairs produced by pf, skipping
// elements outside its domain.
func GroupMapPartial[T any, K comparable, R any](src []T, pf fn.PartialFunction[T, fn.Tuple2[K, R]]) (*omap.Map[K, []R], error) {
	if len(src) == 0 {
		return omap.New[K, []R](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMap(slices.Values(src), pf), nil
}

// GroupMapReduce reduces every GroupMap group with op, in encounter order.
func GroupMapReduce[T any, K comparable, R any](src []T, op fn.BinaryOperator[R], key fn.Function1[T, K], valueMapper fn.Function1[T, R]) (*omap.Map[K, R], error) {
	if len(src) == 0 {
		return omap.New[K, R](), nil
	}
	pf, err := fn.PartialToTuple(nil, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return GroupMapReducePartial(src, op, pf)
}

// GroupMapReducePartial is GroupMapReduce with a tuple-producing partial function.
func GroupMapReducePartial[T any, K comparable, R any](src []T, op fn.BinaryOperator[R], pf fn.PartialFunction[T, fn.Tuple2[K, R]]) (*omap.Map[K, R], error) {
	if len(src) == 0 {
		return omap.New[K, R](), nil
	}
	if op == nil {
		return nil, fn.MissingFunction("reduceOperator")
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMapReduce(slices.Values(src), op, pf), nil
}

// Partition splits the elements satisfying p by discriminator. Both the true
// and the false key are always present.
func Partition[T any](src []T, discriminator fn.Predicate1[T], p fn.Predicate1[T]) (*omap.Map[bool, []T], error) {
	if len(src) > 0 && discriminator == nil {
		return nil, fn.MissingFunction("discriminator")
	}
	return engine.Partition(slices.Values(src), discriminator, fn.OrAlwaysTrue1(p)), nil
}

// TakeWhile returns the longest prefix whose elements satisfy p.
// A nil p takes everything.
func TakeWhile[T any](src []T, p fn.Predicate1[T]) []T {
	return engine.TakeWhile(slices.Values(src), fn.OrAlwaysTrue1(p))
}

// DropWhile drops the longest prefix whose elements satisfy p.
// A nil p drops everything.
func DropWhile[T any](src []T, p fn.Predicate1[T]) []T {
	return engine.DropWhile(slices.Values(src), fn.OrAlwaysTrue1(p))
}

// Sliding returns the windows of size advancing by one element.
func Sliding[T any](src []T, size int) ([][]T, error) {
	if len(src) > 0 && size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return engine.Sliding(src, size), nil
}

// Split returns consecutive chunks of size; the last one may be shorter.
func Split[T any](src []T, size int) ([][]T, error) {
	if len(src) == 0 {
		return [][]T{}, nil
	}
	if size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return engine.Split(src, size), nil
}

// Sort returns a stably sorted copy. A nil comparator compares the fmt.Sprint
// representations, so numbers sort lexicographically: [1 10 2 21].
func Sort[T any](src []T, comparator fn.Comparator[T]) []T {
	return engine.Sort(src, fn.OrLexicographic(comparator))
}

// Min returns the first smallest element under comparator (lexicographic when
// nil), and false for an empty src.
func Min[T any](src []T, comparator fn.Comparator[T]) (T, bool) {
	return MinOptional(src, comparator).Get()
}

// Max returns the first largest element under comparator (lexicographic when
// nil), and false for an empty src.
func Max[T any](src []T, comparator fn.Comparator[T]) (T, bool) {
	return MaxOptional(src, comparator).Get()
}

func MinOptional[T any](src []T, comparator fn.Comparator[T]) fn.Optional[T] {
	return engine.Min(slices.Values(src), fn.OrLexicographic(comparator))
}

func MaxOptional[T any](src []T, comparator fn.Comparator[T]) fn.Optional[T] {
	return engine.Max(slices.Values(src), fn.OrLexicographic(comparator))
}

// RemoveAll keeps the elements of src equal to no element of other. A nil
// equality selects deep structural equality.
func RemoveAll[T any](src, other []T, equality fn.Predicate2[T, T]) []T {
	if len(other) == 0 {
		return slices.Clone(src)
	}
	return engine.RemoveAll(slices.Values(src), other, equality)
}

// RetainAll keeps the elements of src equal to some element of other. A nil
// equality selects deep structural equality.
func RetainAll[T any](src, other []T, equality fn.Predicate2[T, T]) []T {
	if len(src) == 0 || len(other) == 0 {
		return []T{}
	}
	return engine.RetainAll(slices.Values(src), other, equality)
}

// ToMap collects the (key, value) pairs produced by pf. Later keys overwrite
// earlier values.
func ToMap[T any, K comparable, V any](src []T, pf fn.PartialFunction[T, fn.Tuple2[K, V]]) (*omap.Map[K, V], error) {
	if len(src) == 0 {
		return omap.New[K, V](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return omap.Of(engine.Collect(slices.Values(src), pf)...), nil
}
