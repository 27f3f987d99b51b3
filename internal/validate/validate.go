// Package validate hosts the argument checks shared by the public packages.
//
// Example:
//
//	if err := validate.Required(predicate, "predicate"); err != nil {
//		return err
//	}
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidArgument is matched by every *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	instance *validator.Validate
	once     sync.Once
)

// Instance returns the shared validator used for tag expressions. It is safe
// for concurrent use.
func Instance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// ArgumentError reports a required argument that was absent.
type ArgumentError struct {
	// Name is the parameter name as written in the public signature.
	Name string
}

// Error renders the error as "invalid argument: <name> cannot be nil".
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s cannot be nil", ErrInvalidArgument, e.Name)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold for every ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Required returns an *ArgumentError when value is absent. Nil funcs, pointers,
// maps, slices, channels and interfaces count as absent. Values of other kinds
// are always present, zero or not.
func Required(value any, name string) error {
	if value == nil {
		return &ArgumentError{Name: name}
	}
	if rv := reflect.ValueOf(value); nilable(rv.Kind()) && rv.IsNil() {
		return &ArgumentError{Name: name}
	}
	return nil
}

// MustRequire panics with the *ArgumentError produced by Required. Operations
// call it before touching any element so a nil capability never half-runs.
func MustRequire(value any, name string) {
	if err := Required(value, name); err != nil {
		panic(err)
	}
}

func nilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return true
	default:
		return false
	}
}
