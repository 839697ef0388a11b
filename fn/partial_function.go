package fn

// PartialFunction is a function defined on a subset of T. Apply must only be
// called where IsDefinedAt holds; elsewhere its result is unspecified.
type PartialFunction[T, R any] interface {
	IsDefinedAt(T) bool
	Apply(T) R
}

type partial[T, R any] struct {
	isDefinedAt Predicate1[T]
	apply       Function1[T, R]
}

func (p partial[T, R]) IsDefinedAt(t T) bool { return p.isDefinedAt(t) }

func (p partial[T, R]) Apply(t T) R { return p.apply(t) }

// Partial pairs a domain predicate with a mapper. A nil predicate makes the
// function defined everywhere.
func Partial[T, R any](isDefinedAt Predicate1[T], mapper Function1[T, R]) (PartialFunction[T, R], error) {
	if mapper == nil {
		return nil, MissingFunction("mapper")
	}
	return partial[T, R]{
		isDefinedAt: OrAlwaysTrue1(isDefinedAt),
		apply:       mapper,
	}, nil
}

// PartialToTuple builds a partial function producing (keyMapper(t), valueMapper(t)).
// The grouping algorithms consume it to filter and extract a key/value pair in
// one step.
func PartialToTuple[T, K, V any](
	isDefinedAt Predicate1[T],
	keyMapper Function1[T, K],
	valueMapper Function1[T, V],
) (PartialFunction[T, Tuple2[K, V]], error) {
	if keyMapper == nil {
		return nil, MissingFunction("keyMapper")
	}
	if valueMapper == nil {
		return nil, MissingFunction("valueMapper")
	}
	return partial[T, Tuple2[K, V]]{
		isDefinedAt: OrAlwaysTrue1(isDefinedAt),
		apply: func(t T) Tuple2[K, V] {
			return Tuple2[K, V]{First: keyMapper(t), Second: valueMapper(t)}
		},
	}, nil
}

// AndThenPartial maps the result of pf with after. The domain is unchanged.
func AndThenPartial[T, R, V any](pf PartialFunction[T, R], after Function1[R, V]) (PartialFunction[T, V], error) {
	if pf == nil {
		return nil, MissingFunction("partialFunction")
	}
	if after == nil {
		return nil, MissingFunction("after")
	}
	return partial[T, V]{
		isDefinedAt: pf.IsDefinedAt,
		apply:       func(t T) V { return after(pf.Apply(t)) },
	}, nil
}

// ComposePartial feeds before(s) into pf, for the domain test as well as for Apply.
func ComposePartial[S, T, R any](pf PartialFunction[T, R], before Function1[S, T]) (PartialFunction[S, R], error) {
	if pf == nil {
		return nil, MissingFunction("partialFunction")
	}
	if before == nil {
		return nil, MissingFunction("before")
	}
	return partial[S, R]{
		isDefinedAt: func(s S) bool { return pf.IsDefinedAt(before(s)) },
		apply:       func(s S) R { return pf.Apply(before(s)) },
	}, nil
}

// OrElse is defined wherever first or second is; first wins where both are.
func OrElse[T, R any](first, second PartialFunction[T, R]) (PartialFunction[T, R], error) {
	if first == nil {
		return nil, MissingFunction("first")
	}
	if second == nil {
		return nil, MissingFunction("second")
	}
	return partial[T, R]{
		isDefinedAt: func(t T) bool { return first.IsDefinedAt(t) || second.IsDefinedAt(t) },
		apply: func(t T) R {
			if first.IsDefinedAt(t) {
				return first.Apply(t)
			}
			return second.Apply(t)
		},
	}, nil
}

// Lift turns pf into a total function returning None outside the domain.
func Lift[T, R any](pf PartialFunction[T, R]) (Function1[T, Optional[R]], error) {
	if pf == nil {
		return nil, MissingFunction("partialFunction")
	}
	return func(t T) Optional[R] {
		if pf.IsDefinedAt(t) {
			return Some(pf.Apply(t))
		}
		return None[R]()
	}, nil
}

// ApplyOrElse returns pf.Apply(t) inside the domain and orElse(t) outside.
// Both arguments must be non-nil.
func ApplyOrElse[T, R any](pf PartialFunction[T, R], t T, orElse Function1[T, R]) R {
	if pf.IsDefinedAt(t) {
		return pf.Apply(t)
	}
	return orElse(t)
}
