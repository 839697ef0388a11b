package fn_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper struct{}

func (upper) Apply(s string) string { return strings.ToUpper(s) }

type nonEmpty struct{}

func (nonEmpty) Test(s string) bool { return s != "" }

func TestIsFunctionN(t *testing.T) {
	assert.True(t, fn.IsFunction0(func() int { return 1 }))
	assert.True(t, fn.IsFunction1(func(int) int { return 1 }))
	assert.True(t, fn.IsFunction2(fn.Predicate2[int, int](func(a, b int) bool { return a < b })))
	assert.True(t, fn.IsFunction3(func(a, b, c int) {}))

	assert.False(t, fn.IsFunction1(func(a, b int) int { return a }))
	assert.False(t, fn.IsFunction1(nil))
	assert.False(t, fn.IsFunction1(42))
	assert.False(t, fn.IsFunction1((func(int) int)(nil)))

	// variadic funcs are rejected instead of being counted by their declared parameters
	variadic := func(a int, rest ...int) int { return a }
	assert.False(t, fn.IsFunction1(variadic))
	assert.False(t, fn.IsFunction2(variadic))
}

func TestCoerce1(t *testing.T) {
	raw := func(s string) int { return len(s) }

	f, err := fn.Coerce1[string, int](raw)
	require.NoError(t, err)
	assert.Equal(t, 3, f("abc"))

	f, err = fn.Coerce1[string, int](fn.Function1[string, int](raw))
	require.NoError(t, err)
	assert.Equal(t, 2, f("ab"))

	g, err := fn.Coerce1[string, string](upper{})
	require.NoError(t, err)
	assert.Equal(t, "AB", g("ab"))

	_, err = fn.Coerce1[string, int](nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)

	_, err = fn.Coerce1[string, int](func(a, b string) int { return 0 })
	assert.ErrorIs(t, err, fn.ErrNotAFunction)

	_, err = fn.Coerce1[string, int]((func(string) int)(nil))
	assert.ErrorIs(t, err, fn.ErrMissingFunction)
}

func TestCoerceOtherArities(t *testing.T) {
	f0, err := fn.Coerce0[int](func() int { return 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, f0())

	f2, err := fn.Coerce2[int, int, int](func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, 1, f2(3, 2))

	f3, err := fn.Coerce3[int, int, int, int](fn.Function3[int, int, int, int](func(a, b, c int) int { return a + b + c }))
	require.NoError(t, err)
	assert.Equal(t, 6, f3(1, 2, 3))

	_, err = fn.Coerce2[int, int, int]("not a function")
	assert.ErrorIs(t, err, fn.ErrNotAFunction)
}

func TestCoercePredicatesAndComparator(t *testing.T) {
	p, err := fn.CoercePredicate1[string](nonEmpty{})
	require.NoError(t, err)
	assert.True(t, p("x"))

	p, err = fn.CoercePredicate1[string](fn.Function1[string, bool](func(s string) bool { return s == "" }))
	require.NoError(t, err)
	assert.True(t, p(""))

	p2, err := fn.CoercePredicate2[int, int](func(a, b int) bool { return a == b })
	require.NoError(t, err)
	assert.True(t, p2(1, 1))

	c, err := fn.CoerceComparator[int](func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Negative(t, c(1, 2))

	_, err = fn.CoerceComparator[int](nil)
	assert.ErrorIs(t, err, fn.ErrMissingFunction)

	_, err = fn.CoercePredicate1[int](func(int) int { return 0 })
	assert.ErrorIs(t, err, fn.ErrNotAFunction)
}
