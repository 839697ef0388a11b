package str

import (
	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/internal/engine"
	"github.com/on-the-ground/collect_ive_go/omap"
	"github.com/on-the-ground/collect_ive_go/shared/helper"
)

func Filter(src string, p fn.Predicate1[rune]) string {
	if p == nil {
		return src
	}
	return join(engine.Filter(chars(src), onRune(p)))
}

func FilterNot(src string, p fn.Predicate1[rune]) string {
	if p == nil {
		return src
	}
	return join(engine.Filter(chars(src), onRune(p.Negate())))
}

// Map applies mapper to every rune.
func Map[R any](src string, mapper fn.Function1[rune, R]) ([]R, error) {
	if src == "" {
		return []R{}, nil
	}
	if mapper == nil {
		return nil, fn.MissingFunction("mapper")
	}
	return engine.Map(runes(src), mapper), nil
}

// MapRunes is Map for rune-to-rune mappers, returning a string.
func MapRunes(src string, mapper fn.Function1[rune, rune]) (string, error) {
	out, err := Map(src, mapper)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func Collect[R any](src string, pf fn.PartialFunction[rune, R]) ([]R, error) {
	if src == "" {
		return []R{}, nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.Collect(runes(src), pf), nil
}

// ApplyOrElse maps every rune through pf where it is defined and through
// orElse elsewhere.
func ApplyOrElse[R any](src string, pf fn.PartialFunction[rune, R], orElse fn.Function1[rune, R]) ([]R, error) {
	if src == "" {
		return []R{}, nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	if orElse == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	return engine.ApplyOrElse(runes(src), pf, orElse), nil
}

func ApplyOrElseWith[R any](src string, defaultMapper, orElseMapper fn.Function1[rune, R], p fn.Predicate1[rune]) ([]R, error) {
	if src == "" {
		return []R{}, nil
	}
	if orElseMapper == nil {
		return nil, fn.MissingFunction("orElseMapper")
	}
	pf, err := fn.Partial(p, defaultMapper)
	if err != nil {
		return nil, err
	}
	return engine.ApplyOrElse(runes(src), pf, orElseMapper), nil
}

func FoldLeft[R any](src string, initial R, accumulator fn.Function2[R, rune, R], p fn.Predicate1[rune]) R {
	if src == "" || accumulator == nil {
		return initial
	}
	return engine.FoldLeft(runes(src), initial, accumulator, fn.OrAlwaysTrue1(p))
}

func Reduce(src string, op fn.BinaryOperator[rune]) (fn.Optional[rune], error) {
	if src == "" {
		return fn.None[rune](), nil
	}
	if op == nil {
		return fn.None[rune](), fn.MissingFunction("accumulator")
	}
	return engine.Reduce(runes(src), op), nil
}

// GroupBy collects the runes satisfying p into one string per key.
func GroupBy[G comparable](src string, key fn.Function1[rune, G], p fn.Predicate1[rune]) (*omap.Map[G, string], error) {
	if src == "" {
		return omap.New[G, string](), nil
	}
	if key == nil {
		return nil, fn.MissingFunction("keyMapper")
	}
	byKey := func(c char) []G { return []G{key(c.r)} }
	return joined(engine.GroupMultiKey(chars(src), byKey, onRune(fn.OrAlwaysTrue1(p)))), nil
}

func GroupByMultiKey[G comparable](src string, keys fn.Function1[rune, []G], p fn.Predicate1[rune]) (*omap.Map[G, string], error) {
	if src == "" {
		return omap.New[G, string](), nil
	}
	if keys == nil {
		return nil, fn.MissingFunction("discriminatorKeys")
	}
	byKeys := func(c char) []G { return keys(c.r) }
	return joined(engine.GroupMultiKey(chars(src), byKeys, onRune(fn.OrAlwaysTrue1(p)))), nil
}

func GroupMap[G comparable, R any](src string, key fn.Function1[rune, G], valueMapper fn.Function1[rune, R], p fn.Predicate1[rune]) (*omap.Map[G, []R], error) {
	if src == "" {
		return omap.New[G, []R](), nil
	}
	pf, err := fn.PartialToTuple(p, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return engine.GroupMap(runes(src), pf), nil
}

func GroupMapPartial[G comparable, R any](src string, pf fn.PartialFunction[rune, fn.Tuple2[G, R]]) (*omap.Map[G, []R], error) {
	if src == "" {
		return omap.New[G, []R](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMap(runes(src), pf), nil
}

func GroupMapReduce[G comparable, R any](src string, op fn.BinaryOperator[R], key fn.Function1[rune, G], valueMapper fn.Function1[rune, R]) (*omap.Map[G, R], error) {
	if src == "" {
		return omap.New[G, R](), nil
	}
	pf, err := fn.PartialToTuple(nil, key, valueMapper)
	if err != nil {
		return nil, err
	}
	return GroupMapReducePartial(src, op, pf)
}

func GroupMapReducePartial[G comparable, R any](src string, op fn.BinaryOperator[R], pf fn.PartialFunction[rune, fn.Tuple2[G, R]]) (*omap.Map[G, R], error) {
	if src == "" {
		return omap.New[G, R](), nil
	}
	if op == nil {
		return nil, fn.MissingFunction("reduceOperator")
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return engine.GroupMapReduce(runes(src), op, pf), nil
}

// Partition splits the runes satisfying p by discriminator into the true and
// false strings. Both keys are always present.
func Partition(src string, discriminator fn.Predicate1[rune], p fn.Predicate1[rune]) (*omap.Map[bool, string], error) {
	if src != "" && discriminator == nil {
		return nil, fn.MissingFunction("discriminator")
	}
	var disc fn.Predicate1[char]
	if discriminator != nil {
		disc = onRune(discriminator)
	}
	return joined(engine.Partition(chars(src), disc, onRune(fn.OrAlwaysTrue1(p)))), nil
}

// TakeWhile returns the longest prefix whose runes satisfy p.
func TakeWhile(src string, p fn.Predicate1[rune]) string {
	return src[:prefixLen(src, fn.OrAlwaysTrue1(p))]
}

// DropWhile returns src without the longest prefix whose runes satisfy p.
func DropWhile(src string, p fn.Predicate1[rune]) string {
	return src[prefixLen(src, fn.OrAlwaysTrue1(p)):]
}

// Sliding returns the substrings of size runes advancing by one rune.
func Sliding(src string, size int) ([]string, error) {
	if src != "" && size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return joinAll(engine.Sliding(charSlice(src), size)), nil
}

// Split cuts src into substrings of size runes; the last may be shorter.
func Split(src string, size int) ([]string, error) {
	if src == "" {
		return []string{}, nil
	}
	if size <= 0 {
		return nil, fn.InvalidSize(size)
	}
	return joinAll(engine.Split(charSlice(src), size)), nil
}

// Sort returns the runes of src stably sorted by comparator.
func Sort(src string, comparator fn.Comparator[rune]) string {
	return join(engine.Sort(charSlice(src), byRune(orCodePoint(comparator))))
}

func Min(src string, comparator fn.Comparator[rune]) (rune, bool) {
	return MinOptional(src, comparator).Get()
}

func Max(src string, comparator fn.Comparator[rune]) (rune, bool) {
	return MaxOptional(src, comparator).Get()
}

func MinOptional(src string, comparator fn.Comparator[rune]) fn.Optional[rune] {
	return engine.Min(runes(src), orCodePoint(comparator))
}

func MaxOptional(src string, comparator fn.Comparator[rune]) fn.Optional[rune] {
	return engine.Max(runes(src), orCodePoint(comparator))
}

// RemoveAll drops the runes of src that equal some rune of other. A nil
// equality compares the encoded bytes, so distinct invalid bytes stay distinct.
func RemoveAll(src, other string, equality fn.Predicate2[rune, rune]) string {
	if other == "" {
		return src
	}
	contains := containedIn(other, equality)
	return join(engine.Filter(chars(src), func(c char) bool { return !contains(c) }))
}

// RetainAll keeps the runes of src that equal some rune of other.
func RetainAll(src, other string, equality fn.Predicate2[rune, rune]) string {
	if src == "" || other == "" {
		return ""
	}
	return join(engine.Filter(chars(src), containedIn(other, equality)))
}

func containedIn(other string, equality fn.Predicate2[rune, rune]) fn.Predicate1[char] {
	if equality == nil {
		var texts []string
		for c := range chars(other) {
			texts = append(texts, c.text)
		}
		set := helper.NewEqualitySet(texts...)
		return func(c char) bool { return set.Contains(c.text) }
	}
	others := charSlice(other)
	return func(c char) bool {
		for _, o := range others {
			if equality(c.r, o.r) {
				return true
			}
		}
		return false
	}
}

// ToMap collects the (key, value) pairs pf produces for the runes in its
// domain. Later keys overwrite earlier values.
func ToMap[K comparable, V any](src string, pf fn.PartialFunction[rune, fn.Tuple2[K, V]]) (*omap.Map[K, V], error) {
	if src == "" {
		return omap.New[K, V](), nil
	}
	if pf == nil {
		return nil, fn.MissingFunction("partialFunction")
	}
	return omap.FromEntries(engine.Collect(runes(src), pf)), nil
}
