package fn

// BinaryOperator combines two values of the same type. Reductions apply it in
// encounter order and rely on the caller for associativity.
type BinaryOperator[T any] func(T, T) T

func (op BinaryOperator[T]) Apply(a, b T) T { return op(a, b) }

func (op BinaryOperator[T]) ToFunction() Function2[T, T, T] {
	return Function2[T, T, T](op)
}

// MinBy keeps the smaller argument under c, and a on ties.
func MinBy[T any](c Comparator[T]) BinaryOperator[T] {
	mustNotBeNil(c == nil, "comparator")
	return func(a, b T) T {
		if c(a, b) <= 0 {
			return a
		}
		return b
	}
}

// MaxBy keeps the larger argument under c, and a on ties.
func MaxBy[T any](c Comparator[T]) BinaryOperator[T] {
	mustNotBeNil(c == nil, "comparator")
	return func(a, b T) T {
		if c(a, b) >= 0 {
			return a
		}
		return b
	}
}

// OfBinaryOperator normalizes op. It fails only when op is nil.
func OfBinaryOperator[T any](op BinaryOperator[T]) (BinaryOperator[T], error) {
	if op == nil {
		return nil, MissingFunction("operator")
	}
	return op, nil
}
