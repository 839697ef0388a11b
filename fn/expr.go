package fn

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.uber.org/zap"

	"github.com/on-the-ground/collect_ive_go/config"
)

// ExprPredicate1 compiles an expr-lang expression into a predicate. The tested
// value is bound to "it":
//
//	adult, _ := fn.ExprPredicate1[Person]("it.Age >= 18")
//
// The expression is compiled once. An evaluation error, or a result that is not
// a bool, makes the predicate false.
func ExprPredicate1[T any](code string) (Predicate1[T], error) {
	program, err := compileBool(code)
	if err != nil {
		return nil, err
	}
	return func(t T) bool {
		return runBool(program, code, map[string]any{"it": t})
	}, nil
}

// ExprPredicate2 is ExprPredicate1 for two arguments, bound to "a" and "b".
// With the kv package, "a" is the key and "b" the value.
func ExprPredicate2[T1, T2 any](code string) (Predicate2[T1, T2], error) {
	program, err := compileBool(code)
	if err != nil {
		return nil, err
	}
	return func(t1 T1, t2 T2) bool {
		return runBool(program, code, map[string]any{"a": t1, "b": t2})
	}, nil
}

func compileBool(code string) (*vm.Program, error) {
	program, err := expr.Compile(code, expr.AsBool())
	if err != nil {
		config.Logger().Debug("invalid expression", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return program, nil
}

func runBool(program *vm.Program, code string, env map[string]any) bool {
	out, err := expr.Run(program, env)
	if err != nil {
		config.Logger().Debug("expression evaluation failed", zap.String("code", code), zap.Error(err))
		return false
	}
	b, _ := out.(bool)
	return b
}
