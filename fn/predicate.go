package fn

// Predicate1 tests one argument.
type Predicate1[T any] func(T) bool

// Predicate2 tests two arguments.
type Predicate2[T1, T2 any] func(T1, T2) bool

func (p Predicate1[T]) Test(t T) bool { return p(t) }

// And short-circuits: other is not called when p is false.
func (p Predicate1[T]) And(other Predicate1[T]) Predicate1[T] {
	mustNotBeNil(p == nil, "predicate")
	mustNotBeNil(other == nil, "other")
	return func(t T) bool { return p(t) && other(t) }
}

// Or short-circuits: other is not called when p is true.
func (p Predicate1[T]) Or(other Predicate1[T]) Predicate1[T] {
	mustNotBeNil(p == nil, "predicate")
	mustNotBeNil(other == nil, "other")
	return func(t T) bool { return p(t) || other(t) }
}

func (p Predicate1[T]) Negate() Predicate1[T] {
	mustNotBeNil(p == nil, "predicate")
	return func(t T) bool { return !p(t) }
}

func (p Predicate1[T]) ToFunction() Function1[T, bool] {
	return Function1[T, bool](p)
}

func (p Predicate2[T1, T2]) Test(t1 T1, t2 T2) bool { return p(t1, t2) }

// And short-circuits: other is not called when p is false.
func (p Predicate2[T1, T2]) And(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	mustNotBeNil(p == nil, "predicate")
	mustNotBeNil(other == nil, "other")
	return func(t1 T1, t2 T2) bool { return p(t1, t2) && other(t1, t2) }
}

// Or short-circuits: other is not called when p is true.
func (p Predicate2[T1, T2]) Or(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	mustNotBeNil(p == nil, "predicate")
	mustNotBeNil(other == nil, "other")
	return func(t1 T1, t2 T2) bool { return p(t1, t2) || other(t1, t2) }
}

func (p Predicate2[T1, T2]) Negate() Predicate2[T1, T2] {
	mustNotBeNil(p == nil, "predicate")
	return func(t1 T1, t2 T2) bool { return !p(t1, t2) }
}

func (p Predicate2[T1, T2]) ToFunction() Function2[T1, T2, bool] {
	return Function2[T1, T2, bool](p)
}

// Not is the function form of Negate.
func Not[T any](p Predicate1[T]) Predicate1[T] {
	return p.Negate()
}

func AlwaysTrue1[T any]() Predicate1[T] {
	return func(T) bool { return true }
}

func AlwaysFalse1[T any]() Predicate1[T] {
	return func(T) bool { return false }
}

func AlwaysTrue2[T1, T2 any]() Predicate2[T1, T2] {
	return func(T1, T2) bool { return true }
}

func AlwaysFalse2[T1, T2 any]() Predicate2[T1, T2] {
	return func(T1, T2) bool { return false }
}

// OfPredicate1 normalizes p. It fails only when p is nil.
func OfPredicate1[T any](p Predicate1[T]) (Predicate1[T], error) {
	if p == nil {
		return nil, MissingFunction("predicate")
	}
	return p, nil
}

// OfPredicate2 normalizes p. It fails only when p is nil.
func OfPredicate2[T1, T2 any](p Predicate2[T1, T2]) (Predicate2[T1, T2], error) {
	if p == nil {
		return nil, MissingFunction("predicate")
	}
	return p, nil
}

// OrAlwaysTrue1 substitutes AlwaysTrue1 for a nil predicate.
func OrAlwaysTrue1[T any](p Predicate1[T]) Predicate1[T] {
	if p == nil {
		return AlwaysTrue1[T]()
	}
	return p
}

// OrAlwaysTrue2 substitutes AlwaysTrue2 for a nil predicate.
func OrAlwaysTrue2[T1, T2 any](p Predicate2[T1, T2]) Predicate2[T1, T2] {
	if p == nil {
		return AlwaysTrue2[T1, T2]()
	}
	return p
}
