package fn

type key3[T1, T2, T3 comparable] struct {
	t1 T1
	t2 T2
	t3 T3
}

// Tableize1 memoizes a pure function by its argument. maxTableSize bounds each
// of the two generations of the table; 0 selects config.Current().MemoTableSize.
//
// The function may be called more than once for the same argument when
// callers race on a miss. When T is an interface type, arguments whose dynamic
// value is not comparable (a slice in an any, say) are passed straight to
// pureFn and never memoized.
func Tableize1[T comparable, R any](pureFn Function1[T, R], maxTableSize uint32) (Function1[T, R], error) {
	if pureFn == nil {
		return nil, MissingFunction("pureFn")
	}
	memo := newTable[T, R](maxTableSize)
	return func(t T) R {
		if !memo.cacheable(t) {
			return pureFn(t)
		}
		v, ok := memo.load(t)
		if !ok {
			v = pureFn(t)
			memo.store(t, v)
		}
		return v
	}, nil
}

// Tableize2 memoizes a pure function of two arguments.
func Tableize2[T1, T2 comparable, R any](pureFn Function2[T1, T2, R], maxTableSize uint32) (Function2[T1, T2, R], error) {
	if pureFn == nil {
		return nil, MissingFunction("pureFn")
	}
	memo := newTable[Tuple2[T1, T2], R](maxTableSize)
	return func(t1 T1, t2 T2) R {
		k := Tuple2[T1, T2]{First: t1, Second: t2}
		if !memo.cacheable(k) {
			return pureFn(t1, t2)
		}
		v, ok := memo.load(k)
		if !ok {
			v = pureFn(t1, t2)
			memo.store(k, v)
		}
		return v
	}, nil
}

// Tableize3 memoizes a pure function of three arguments.
func Tableize3[T1, T2, T3 comparable, R any](pureFn Function3[T1, T2, T3, R], maxTableSize uint32) (Function3[T1, T2, T3, R], error) {
	if pureFn == nil {
		return nil, MissingFunction("pureFn")
	}
	memo := newTable[key3[T1, T2, T3], R](maxTableSize)
	return func(t1 T1, t2 T2, t3 T3) R {
		k := key3[T1, T2, T3]{t1: t1, t2: t2, t3: t3}
		if !memo.cacheable(k) {
			return pureFn(t1, t2, t3)
		}
		v, ok := memo.load(k)
		if !ok {
			v = pureFn(t1, t2, t3)
			memo.store(k, v)
		}
		return v
	}, nil
}
