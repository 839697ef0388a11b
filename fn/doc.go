// Package fn provides typed function, predicate and comparator wrappers and the
// partial-function abstraction used by the seq, kv and str collection engines.
//
// Every wrapper is a defined func type, so a plain closure of the matching
// signature can be passed wherever a wrapper is expected:
//
//	isEven := fn.Predicate1[int](func(n int) bool { return n%2 == 0 })
//	positiveEven := isEven.And(func(n int) bool { return n > 0 })
//
//	pf, _ := fn.Partial(positiveEven, func(n int) string { return strconv.Itoa(n) })
//	pf.IsDefinedAt(4) // true
//	pf.Apply(4)       // "4"
//
// Operations that change a type parameter (AndThen, Compose, Lift, ...) are
// package-level functions because Go methods cannot introduce type parameters.
//
// Values of static type any can be normalized with the Coerce family, which
// inspects the dynamic type and declared arity. Variadic funcs are never
// accepted as fixed-arity functions.
//
// Tableize1..3 memoize pure functions in a bounded two-generation table.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package fn
