// Package seq applies the collection algorithms to slices.
//
// A nil slice is treated as empty, the input slice is never modified, and every
// result is freshly allocated. Optional predicates may be nil and then accept
// every element. Required functions are only checked when the source is
// non-empty; a missing one yields an error wrapping fn.ErrMissingFunction
// before any element is processed.
//
//	groups, _ := seq.GroupBy([]int{1, 2, 3, 6, 11}, func(n int) int { return n % 2 }, nil)
//	// {1: [1 3 11], 0: [2 6]}
//
// Grouping results are *omap.Map values ordered by first-seen key.
package seq
