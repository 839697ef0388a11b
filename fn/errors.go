package fn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/collect_ive_go/config"
	"go.uber.org/zap"
)

var (
	// ErrMissingFunction is returned when a required function, predicate,
	// comparator or accumulator is nil.
	ErrMissingFunction = errors.New("missing required function")

	// ErrInvalidSize is returned by Sliding and Split when size <= 0.
	ErrInvalidSize = errors.New("size must be greater than 0")

	// ErrNotAFunction is returned by the Coerce family for values that are not
	// functions of the expected shape.
	ErrNotAFunction = errors.New("value is not a function of the expected type")

	// ErrNilDestination is returned by write-style helpers given a nil container.
	ErrNilDestination = errors.New("destination must not be nil")

	// ErrInvalidExpression is returned when an expression predicate does not
	// compile.
	ErrInvalidExpression = errors.New("invalid expression")
)

// MissingFunction wraps ErrMissingFunction with the name of the nil argument.
func MissingFunction(argument string) error {
	config.Logger().Debug("missing required function", zap.String("argument", argument))
	return fmt.Errorf("%w: %s", ErrMissingFunction, argument)
}

// InvalidSize wraps ErrInvalidSize with the rejected value.
func InvalidSize(size int) error {
	config.Logger().Debug("invalid size", zap.Int("size", size))
	return fmt.Errorf("%w: %d", ErrInvalidSize, size)
}

// NilDestination wraps ErrNilDestination with the name of the nil argument.
func NilDestination(argument string) error {
	config.Logger().Debug("nil destination", zap.String("argument", argument))
	return fmt.Errorf("%w: %s", ErrNilDestination, argument)
}

func mustNotBeNil(isNil bool, argument string) {
	if isNil {
		panic(MissingFunction(argument))
	}
}
