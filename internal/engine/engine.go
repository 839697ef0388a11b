// Package engine holds the single-pass algorithms shared by the seq, kv and str
// packages. Every function here trusts its caller: required functions are
// non-nil and optional predicates have already been defaulted.
package engine

import (
	"iter"
	"slices"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/omap"
	"github.com/on-the-ground/collect_ive_go/shared/helper"
)

func Filter[T any](src iter.Seq[T], p fn.Predicate1[T]) []T {
	var out []T
	for t := range src {
		if p(t) {
			out = append(out, t)
		}
	}
	return out
}

func Map[T, R any](src iter.Seq[T], f fn.Function1[T, R]) []R {
	var out []R
	for t := range src {
		out = append(out, f(t))
	}
	return out
}

// Collect is Filter(pf.IsDefinedAt) followed by Map(pf.Apply), in one pass.
func Collect[T, R any](src iter.Seq[T], pf fn.PartialFunction[T, R]) []R {
	var out []R
	for t := range src {
		if pf.IsDefinedAt(t) {
			out = append(out, pf.Apply(t))
		}
	}
	return out
}

// ApplyOrElse maps every element, through pf inside its domain and through
// orElse outside it.
func ApplyOrElse[T, R any](src iter.Seq[T], pf fn.PartialFunction[T, R], orElse fn.Function1[T, R]) []R {
	var out []R
	for t := range src {
		out = append(out, fn.ApplyOrElse(pf, t, orElse))
	}
	return out
}

func FoldLeft[T, R any](src iter.Seq[T], initial R, acc fn.Function2[R, T, R], p fn.Predicate1[T]) R {
	result := initial
	for t := range src {
		if p(t) {
			result = acc(result, t)
		}
	}
	return result
}

// Reduce folds from the first element. It is None for an empty source.
func Reduce[T any](src iter.Seq[T], op fn.BinaryOperator[T]) fn.Optional[T] {
	var (
		result T
		seen   bool
	)
	for t := range src {
		if !seen {
			result, seen = t, true
			continue
		}
		result = op(result, t)
	}
	if !seen {
		return fn.None[T]()
	}
	return fn.Some(result)
}

// GroupMap appends pf's value to the group of pf's key for every element in the
// domain of pf. Groups are ordered by first-seen key.
func GroupMap[T any, K comparable, R any](src iter.Seq[T], pf fn.PartialFunction[T, fn.Tuple2[K, R]]) *omap.Map[K, []R] {
	groups := omap.New[K, []R]()
	for t := range src {
		if !pf.IsDefinedAt(t) {
			continue
		}
		kv := pf.Apply(t)
		group, _ := groups.Get(kv.First)
		groups.Set(kv.First, append(group, kv.Second))
	}
	return groups
}

// GroupMultiKey places each accepted element in the group of every key it
// yields. An element with no keys joins no group.
func GroupMultiKey[T any, K comparable](src iter.Seq[T], keys fn.Function1[T, []K], p fn.Predicate1[T]) *omap.Map[K, []T] {
	groups := omap.New[K, []T]()
	for t := range src {
		if !p(t) {
			continue
		}
		for _, k := range keys(t) {
			group, _ := groups.Get(k)
			groups.Set(k, append(group, t))
		}
	}
	return groups
}

// GroupMapReduce is GroupMap followed by Reduce of every group, folded in
// encounter order as values arrive.
func GroupMapReduce[T any, K comparable, R any](src iter.Seq[T], op fn.BinaryOperator[R], pf fn.PartialFunction[T, fn.Tuple2[K, R]]) *omap.Map[K, R] {
	reduced := omap.New[K, R]()
	for t := range src {
		if !pf.IsDefinedAt(t) {
			continue
		}
		kv := pf.Apply(t)
		if acc, ok := reduced.Get(kv.First); ok {
			reduced.Set(kv.First, op(acc, kv.Second))
		} else {
			reduced.Set(kv.First, kv.Second)
		}
	}
	return reduced
}

// Partition always returns both keys, true first.
func Partition[T any](src iter.Seq[T], discriminator fn.Predicate1[T], p fn.Predicate1[T]) *omap.Map[bool, []T] {
	var matched, rest []T
	for t := range src {
		if !p(t) {
			continue
		}
		if discriminator(t) {
			matched = append(matched, t)
		} else {
			rest = append(rest, t)
		}
	}
	parts := omap.New[bool, []T](2)
	parts.Set(true, matched)
	parts.Set(false, rest)
	return parts
}

// TakeWhile returns the longest prefix satisfying p.
func TakeWhile[T any](src iter.Seq[T], p fn.Predicate1[T]) []T {
	var out []T
	for t := range src {
		if !p(t) {
			break
		}
		out = append(out, t)
	}
	return out
}

// DropWhile returns everything from the first element failing p onward.
func DropWhile[T any](src iter.Seq[T], p fn.Predicate1[T]) []T {
	var out []T
	dropping := true
	for t := range src {
		if dropping && p(t) {
			continue
		}
		dropping = false
		out = append(out, t)
	}
	return out
}

// Sliding returns windows of size advancing by one. A size not smaller than
// len(items) yields the whole input as the single window. size must be > 0.
func Sliding[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return [][]T{}
	}
	if size >= len(items) {
		return [][]T{slices.Clone(items)}
	}
	out := make([][]T, 0, len(items)-size+1)
	for i := 0; i+size <= len(items); i++ {
		out = append(out, slices.Clone(items[i:i+size]))
	}
	return out
}

// Split returns consecutive chunks of size; the last may be shorter.
// size must be > 0.
func Split[T any](items []T, size int) [][]T {
	out := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		out = append(out, slices.Clone(chunk))
	}
	return out
}

// Sort returns a stably sorted copy.
func Sort[T any](items []T, cmp fn.Comparator[T]) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}

// Min keeps the earliest of equally small elements.
func Min[T any](src iter.Seq[T], cmp fn.Comparator[T]) fn.Optional[T] {
	return Reduce(src, fn.MinBy(cmp))
}

// Max keeps the earliest of equally large elements.
func Max[T any](src iter.Seq[T], cmp fn.Comparator[T]) fn.Optional[T] {
	return Reduce(src, fn.MaxBy(cmp))
}

// RemoveAll keeps the elements of src matching nothing in other.
// A nil eq selects helper.Equals.
func RemoveAll[T any](src iter.Seq[T], other []T, eq fn.Predicate2[T, T]) []T {
	contains := containsFunc(other, eq)
	return Filter(src, func(t T) bool { return !contains(t) })
}

// RetainAll keeps the elements of src matching something in other.
// A nil eq selects helper.Equals.
func RetainAll[T any](src iter.Seq[T], other []T, eq fn.Predicate2[T, T]) []T {
	return Filter(src, containsFunc(other, eq))
}

func containsFunc[T any](other []T, eq fn.Predicate2[T, T]) fn.Predicate1[T] {
	if eq == nil {
		set := helper.NewEqualitySet(other...)
		return set.Contains
	}
	return func(t T) bool {
		return slices.ContainsFunc(other, func(o T) bool { return eq(t, o) })
	}
}
