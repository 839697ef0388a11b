package seq_test

import (
	"cmp"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/omap"
	"github.com/on-the-ground/collect_ive_go/seq"
)

func isOdd(n int) bool { return n%2 != 0 }

func parity(n int) int { return n % 2 }

func TestFilter(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 3, 5}, seq.Filter(src, isOdd))
	assert.Equal(t, []int{2, 4}, seq.FilterNot(src, isOdd))

	all := seq.Filter(src, nil)
	assert.Equal(t, src, all)
	all[0] = 100
	assert.Equal(t, 1, src[0], "nil predicate must copy, not alias")

	assert.Empty(t, seq.Filter[int](nil, isOdd))
	assert.Equal(t, src, seq.FilterNot(src, nil))
}

func TestMap(t *testing.T) {
	out, err := seq.Map([]int{1, 2, 3}, strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	_, err = seq.Map[int, string]([]int{1}, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)

	out, err = seq.Map[int, string](nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCollectAndApplyOrElse(t *testing.T) {
	src := []int{1, 2, 3, 4}
	pf, err := fn.Partial(isOdd, func(n int) int { return n * 10 })
	require.NoError(t, err)

	collected, err := seq.Collect(src, pf)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 30}, collected)

	applied, err := seq.ApplyOrElse(src, pf, func(n int) int { return -n })
	require.NoError(t, err)
	assert.Equal(t, []int{10, -2, 30, -4}, applied)

	with, err := seq.ApplyOrElseWith(src, func(n int) int { return n * 10 }, func(n int) int { return -n }, isOdd)
	require.NoError(t, err)
	assert.Equal(t, applied, with)

	_, err = seq.Collect[int, int](src, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
	_, err = seq.ApplyOrElse(src, pf, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
	_, err = seq.ApplyOrElseWith(src, nil, func(n int) int { return n }, isOdd)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestFoldLeftAndReduce(t *testing.T) {
	sum := func(acc, n int) int { return acc + n }
	assert.Equal(t, 9, seq.FoldLeft([]int{1, 2, 3, 4, 5}, 0, sum, isOdd))
	assert.Equal(t, 7, seq.FoldLeft(nil, 7, sum, nil))
	assert.Equal(t, 7, seq.FoldLeft([]int{1}, 7, nil, nil))

	concat := seq.FoldLeft([]int{1, 2, 3}, "", func(acc string, n int) string { return acc + strconv.Itoa(n) }, nil)
	assert.Equal(t, "123", concat, "fold runs left to right")

	product, err := seq.Reduce([]int{5, 7, 9}, func(a, b int) int { return a * b })
	require.NoError(t, err)
	v, ok := product.Get()
	assert.True(t, ok)
	assert.Equal(t, 315, v)

	empty, err := seq.Reduce[int](nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = seq.Reduce([]int{1}, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestGroupBy(t *testing.T) {
	groups, err := seq.GroupBy([]int{1, 2, 3, 6, 11}, parity, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, groups.Keys(), "first-seen key order")
	odd, _ := groups.Get(1)
	even, _ := groups.Get(0)
	assert.Equal(t, []int{1, 3, 11}, odd)
	assert.Equal(t, []int{2, 6}, even)

	filtered, err := seq.GroupBy([]int{1, 2, 3, 6, 11}, parity, func(n int) bool { return n > 2 })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, filtered.Keys())
	odd, _ = filtered.Get(1)
	assert.Equal(t, []int{3, 11}, odd)

	_, err = seq.GroupBy[int, int]([]int{1}, nil, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)

	empty, err := seq.GroupBy[int, int](nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestGroupByMultiKey(t *testing.T) {
	words := []string{"go", "gopher", "rust"}
	groups, err := seq.GroupByMultiKey(words, func(s string) []rune { return []rune(s[:1] + s[len(s)-1:]) }, nil)
	require.NoError(t, err)
	assert.Equal(t, []rune{'g', 'o', 'r', 't'}, groups.Keys())
	gs, _ := groups.Get('g')
	assert.Equal(t, []string{"go", "gopher"}, gs)
	rs, _ := groups.Get('r')
	assert.Equal(t, []string{"gopher", "rust"}, rs)

	_, err = seq.GroupByMultiKey[string, rune](words, nil, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestGroupMapAndReduce(t *testing.T) {
	src := []string{"a", "bb", "cc", "ddd", "e"}
	length := func(s string) int { return len(s) }
	upper := func(s string) string { return s + "!" }

	grouped, err := seq.GroupMap(src, length, upper, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, grouped.Keys())
	twos, _ := grouped.Get(2)
	assert.Equal(t, []string{"bb!", "cc!"}, twos)

	reduced, err := seq.GroupMapReduce(src, func(a, b string) string { return a + b }, length, upper)
	require.NoError(t, err)
	assert.Equal(t, omap.Of(omap.E(1, "a!e!"), omap.E(2, "bb!cc!"), omap.E(3, "ddd!")), reduced)

	_, err = seq.GroupMap[string, int, string](src, length, nil, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
	_, err = seq.GroupMapReduce[string, int, string](src, nil, length, upper)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestGroupMapPartial(t *testing.T) {
	pf, err := fn.PartialToTuple(isOdd, parity, func(n int) string { return strconv.Itoa(n) })
	require.NoError(t, err)

	grouped, err := seq.GroupMapPartial([]int{1, 2, 3}, pf)
	require.NoError(t, err)
	assert.Equal(t, omap.Of(omap.E(1, []string{"1", "3"})), grouped)

	reduced, err := seq.GroupMapReducePartial([]int{1, 2, 3}, func(a, b string) string { return a + "," + b }, pf)
	require.NoError(t, err)
	assert.Equal(t, omap.Of(omap.E(1, "1,3")), reduced)

	_, err = seq.GroupMapPartial[int, int, string]([]int{1}, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestPartition(t *testing.T) {
	parts, err := seq.Partition([]int{1, 2, 3, 4, 5}, isOdd, func(n int) bool { return n < 5 })
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, parts.Keys())
	odd, _ := parts.Get(true)
	even, _ := parts.Get(false)
	assert.Equal(t, []int{1, 3}, odd)
	assert.Equal(t, []int{2, 4}, even)

	allOdd, err := seq.Partition([]int{1, 3}, isOdd, nil)
	require.NoError(t, err)
	assert.True(t, allOdd.Has(false), "both keys are always present")
	none, _ := allOdd.Get(false)
	assert.Empty(t, none)

	_, err = seq.Partition([]int{1}, nil, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestTakeDropWhile(t *testing.T) {
	src := []int{1, 3, 4, 5, 7}
	assert.Equal(t, []int{1, 3}, seq.TakeWhile(src, isOdd))
	assert.Equal(t, []int{4, 5, 7}, seq.DropWhile(src, isOdd))

	assert.Equal(t, src, seq.TakeWhile(src, nil))
	assert.Empty(t, seq.DropWhile(src, nil))
	assert.Equal(t, src, append(seq.TakeWhile(src, nil), seq.DropWhile(src, nil)...), "a nil predicate still splits src in two")
	assert.Empty(t, seq.TakeWhile([]int{2}, isOdd))
}

func TestSlidingAndSplit(t *testing.T) {
	windows, err := seq.Sliding([]int{7, 8, 9}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 8}, {8, 9}}, windows)

	whole, err := seq.Sliding([]int{7, 8, 9}, 5)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 8, 9}}, whole)

	chunks, err := seq.Split([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)

	ragged, err := seq.Split([]int{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3}}, ragged)

	_, err = seq.Sliding([]int{1}, 0)
	assert.ErrorIs(t, err, fn.ErrInvalidSize)
	_, err = seq.Split([]int{1}, -1)
	assert.ErrorIs(t, err, fn.ErrInvalidSize)

	empty, err := seq.Split[int](nil, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSliding_WindowsDoNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	windows, err := seq.Sliding(src, 2)
	require.NoError(t, err)
	windows[0][1] = 100
	assert.Equal(t, 2, windows[1][0])
	assert.Equal(t, []int{1, 2, 3}, src)
}

func TestSort(t *testing.T) {
	src := []int{1, 10, 21, 2}
	assert.Equal(t, []int{1, 10, 2, 21}, seq.Sort(src, nil), "default comparator is lexicographic")
	assert.Equal(t, []int{1, 2, 10, 21}, seq.Sort(src, fn.NaturalOrder[int]()))
	assert.Equal(t, []int{1, 10, 21, 2}, src, "source is not reordered")

	type pair struct {
		k int
		v string
	}
	pairs := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	byKey := func(a, b pair) int { return cmp.Compare(a.k, b.k) }
	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, seq.Sort(pairs, byKey), "stable")
}

func TestMinMax(t *testing.T) {
	src := []int{3, 10, 2, 21}
	lo, ok := seq.Min(src, fn.NaturalOrder[int]())
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	hi, ok := seq.Max(src, fn.NaturalOrder[int]())
	assert.True(t, ok)
	assert.Equal(t, 21, hi)

	lex, _ := seq.Max(src, nil)
	assert.Equal(t, 3, lex)

	_, ok = seq.Min[int](nil, nil)
	assert.False(t, ok)
	assert.True(t, seq.MaxOptional[int](nil, nil).IsEmpty())

	type item struct {
		rank int
		name string
	}
	items := []item{{1, "first"}, {1, "second"}}
	byRank := func(a, b item) int { return cmp.Compare(a.rank, b.rank) }
	first, _ := seq.Min(items, byRank)
	assert.Equal(t, "first", first.name, "ties keep the earliest element")
	first, _ = seq.Max(items, byRank)
	assert.Equal(t, "first", first.name, "ties keep the earliest element")
}

func TestRemoveRetainAll(t *testing.T) {
	src := []int{1, 2, 3}
	other := []int{1, 3}
	assert.Equal(t, []int{2}, seq.RemoveAll(src, other, nil))
	assert.Equal(t, []int{1, 3}, seq.RetainAll(src, other, nil))

	assert.Equal(t, src, seq.RemoveAll(src, nil, nil))
	assert.Empty(t, seq.RetainAll(src, nil, nil))

	sameParity := func(a, b int) bool { return a%2 == b%2 }
	assert.Equal(t, []int{2}, seq.RemoveAll(src, []int{5}, sameParity))
	assert.Equal(t, []int{1, 3}, seq.RetainAll(src, []int{5}, sameParity))
}

func TestRemoveAll_DeepEquality(t *testing.T) {
	src := [][]string{{"a"}, {"b", "c"}, {"d"}}
	other := [][]string{{"b", "c"}}
	assert.Equal(t, [][]string{{"a"}, {"d"}}, seq.RemoveAll(src, other, nil))
	assert.Equal(t, [][]string{{"b", "c"}}, seq.RetainAll(src, other, nil))
}

func TestToMap(t *testing.T) {
	pf, err := fn.PartialToTuple(nil, parity, strconv.Itoa)
	require.NoError(t, err)
	m, err := seq.ToMap([]int{1, 2, 3}, pf)
	require.NoError(t, err)
	assert.Equal(t, omap.Of(omap.E(1, "3"), omap.E(0, "2")), m, "later keys overwrite earlier values")

	_, err = seq.ToMap[int, int, string]([]int{1}, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func randomInts(r *rand.Rand) []int {
	out := make([]int, r.IntN(20))
	for i := range out {
		out[i] = r.IntN(50) - 25
	}
	return out
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	positive := func(n int) bool { return n > 0 }
	double := func(n int) int { return n * 2 }
	pf, err := fn.Partial(positive, double)
	require.NoError(t, err)

	for range 200 {
		src := randomInts(r)

		collected, err := seq.Collect(src, pf)
		require.NoError(t, err)
		mapped, err := seq.Map(seq.Filter(src, positive), double)
		require.NoError(t, err)
		assert.Equal(t, append([]int{}, mapped...), append([]int{}, collected...))

		applied, err := seq.ApplyOrElse(src, pf, fn.Identity[int]())
		require.NoError(t, err)
		assert.Len(t, applied, len(src))

		parts, err := seq.Partition(src, positive, nil)
		require.NoError(t, err)
		yes, _ := parts.Get(true)
		no, _ := parts.Get(false)
		assert.Len(t, src, len(yes)+len(no))

		taken, dropped := seq.TakeWhile(src, positive), seq.DropWhile(src, positive)
		assert.Equal(t, src, append(append([]int{}, taken...), dropped...))

		add := func(a, b int) int { return a + b }
		reduced, err := seq.GroupMapReduce(src, add, parity, double)
		require.NoError(t, err)
		grouped, err := seq.GroupMap(src, parity, double, nil)
		require.NoError(t, err)
		require.Equal(t, grouped.Keys(), reduced.Keys())
		for k, vs := range grouped.All() {
			want, err := seq.Reduce(vs, add)
			require.NoError(t, err)
			got, _ := reduced.Get(k)
			assert.Equal(t, want.OrElse(0), got)
		}
	}
}
