package fn

// Function0 is a supplier.
type Function0[R any] func() R

// Function1 maps one argument to a result.
type Function1[T, R any] func(T) R

// Function2 maps two arguments to a result.
type Function2[T1, T2, R any] func(T1, T2) R

// Function3 maps three arguments to a result.
type Function3[T1, T2, T3, R any] func(T1, T2, T3) R

func (f Function0[R]) Apply() R { return f() }

func (f Function1[T, R]) Apply(t T) R { return f(t) }

func (f Function2[T1, T2, R]) Apply(t1 T1, t2 T2) R { return f(t1, t2) }

func (f Function3[T1, T2, T3, R]) Apply(t1 T1, t2 T2, t3 T3) R { return f(t1, t2, t3) }

// OfFunction0 normalizes f. It fails only when f is nil.
func OfFunction0[R any](f Function0[R]) (Function0[R], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	return f, nil
}

// OfFunction1 normalizes f. It fails only when f is nil.
func OfFunction1[T, R any](f Function1[T, R]) (Function1[T, R], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	return f, nil
}

// OfFunction2 normalizes f. It fails only when f is nil.
func OfFunction2[T1, T2, R any](f Function2[T1, T2, R]) (Function2[T1, T2, R], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	return f, nil
}

// OfFunction3 normalizes f. It fails only when f is nil.
func OfFunction3[T1, T2, T3, R any](f Function3[T1, T2, T3, R]) (Function3[T1, T2, T3, R], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	return f, nil
}

// Identity returns a function that returns its argument.
func Identity[T any]() Function1[T, T] {
	return func(t T) T { return t }
}

// Constant returns a supplier of v.
func Constant[R any](v R) Function0[R] {
	return func() R { return v }
}

// AndThen0 returns after(f()).
func AndThen0[R, V any](f Function0[R], after Function1[R, V]) (Function0[V], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	if after == nil {
		return nil, MissingFunction("after")
	}
	return func() V { return after(f()) }, nil
}

// AndThen1 returns after(f(t)).
func AndThen1[T, R, V any](f Function1[T, R], after Function1[R, V]) (Function1[T, V], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	if after == nil {
		return nil, MissingFunction("after")
	}
	return func(t T) V { return after(f(t)) }, nil
}

// AndThen2 returns after(f(t1, t2)).
func AndThen2[T1, T2, R, V any](f Function2[T1, T2, R], after Function1[R, V]) (Function2[T1, T2, V], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	if after == nil {
		return nil, MissingFunction("after")
	}
	return func(t1 T1, t2 T2) V { return after(f(t1, t2)) }, nil
}

// AndThen3 returns after(f(t1, t2, t3)).
func AndThen3[T1, T2, T3, R, V any](f Function3[T1, T2, T3, R], after Function1[R, V]) (Function3[T1, T2, T3, V], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	if after == nil {
		return nil, MissingFunction("after")
	}
	return func(t1 T1, t2 T2, t3 T3) V { return after(f(t1, t2, t3)) }, nil
}

// Compose returns f(before(s)).
func Compose[S, T, R any](f Function1[T, R], before Function1[S, T]) (Function1[S, R], error) {
	if f == nil {
		return nil, MissingFunction("function")
	}
	if before == nil {
		return nil, MissingFunction("before")
	}
	return func(s S) R { return f(before(s)) }, nil
}
