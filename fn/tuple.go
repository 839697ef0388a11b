package fn

import "fmt"

// Tuple2 holds two values of possibly different types. Partial functions built
// by PartialToTuple produce it, and the kv engine uses it as its entry type.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{First: first, Second: second}
}

func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.First, t.Second
}

// String returns "(first, second)".
func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}
