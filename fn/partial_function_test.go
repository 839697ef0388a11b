package fn_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func TestPartial(t *testing.T) {
	pf, err := fn.Partial(isEven, func(n int) string { return strconv.Itoa(n) })
	require.NoError(t, err)

	assert.True(t, pf.IsDefinedAt(4))
	assert.False(t, pf.IsDefinedAt(3))
	assert.Equal(t, "4", pf.Apply(4))

	total, err := fn.Partial(nil, func(n int) int { return -n })
	require.NoError(t, err)
	assert.True(t, total.IsDefinedAt(3))

	_, err = fn.Partial[int, int](isEven, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestPartialToTuple(t *testing.T) {
	pf, err := fn.PartialToTuple(
		isEven,
		func(n int) string { return "k" + strconv.Itoa(n) },
		func(n int) int { return n * n },
	)
	require.NoError(t, err)

	assert.False(t, pf.IsDefinedAt(1))
	assert.Equal(t, fn.NewTuple2("k4", 16), pf.Apply(4))

	_, err = fn.PartialToTuple[int, int, int](isEven, nil, func(n int) int { return n })
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
	_, err = fn.PartialToTuple[int, int, int](isEven, func(n int) int { return n }, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestAndThenPartial(t *testing.T) {
	half, err := fn.Partial(isEven, func(n int) int { return n / 2 })
	require.NoError(t, err)

	shown, err := fn.AndThenPartial(half, func(n int) string { return strconv.Itoa(n) })
	require.NoError(t, err)
	assert.False(t, shown.IsDefinedAt(5))
	assert.Equal(t, "5", shown.Apply(10))
}

func TestComposePartial(t *testing.T) {
	half, err := fn.Partial(isEven, func(n int) int { return n / 2 })
	require.NoError(t, err)

	byLength, err := fn.ComposePartial(half, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.True(t, byLength.IsDefinedAt("ab"))
	assert.False(t, byLength.IsDefinedAt("abc"))
	assert.Equal(t, 2, byLength.Apply("abcd"))
}

func TestOrElse_LeftBiased(t *testing.T) {
	small, err := fn.Partial(func(n int) bool { return n < 10 }, func(int) string { return "small" })
	require.NoError(t, err)
	even, err := fn.Partial(isEven, func(int) string { return "even" })
	require.NoError(t, err)

	union, err := fn.OrElse(small, even)
	require.NoError(t, err)

	assert.Equal(t, "small", union.Apply(4))
	assert.Equal(t, "even", union.Apply(12))
	assert.True(t, union.IsDefinedAt(3))
	assert.False(t, union.IsDefinedAt(13))

	_, err = fn.OrElse(small, nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestLiftAndApplyOrElse(t *testing.T) {
	half, err := fn.Partial(isEven, func(n int) int { return n / 2 })
	require.NoError(t, err)

	lifted, err := fn.Lift(half)
	require.NoError(t, err)
	assert.Equal(t, fn.Some(3), lifted(6))
	assert.Equal(t, fn.None[int](), lifted(7))

	negate := func(n int) int { return -n }
	assert.Equal(t, 3, fn.ApplyOrElse(half, 6, negate))
	assert.Equal(t, -7, fn.ApplyOrElse(half, 7, negate))
}

func TestOptional(t *testing.T) {
	some := fn.Some(5)
	none := fn.None[int]()

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.True(t, none.IsEmpty())
	assert.Equal(t, 9, none.OrElse(9))
	assert.Equal(t, 5, some.OrElse(9))
	assert.Equal(t, 11, none.OrElseGet(func() int { return 11 }))
	assert.Equal(t, 0, none.OrElseGet(nil))
	assert.Equal(t, "Some(5)", some.String())
	assert.Equal(t, "None", none.String())
	assert.Equal(t, fn.Some("5"), fn.MapOptional(some, strconv.Itoa))
	assert.True(t, some.Filter(isEven).IsEmpty())
	assert.True(t, fn.Some(4).Filter(isEven).IsPresent())
}
