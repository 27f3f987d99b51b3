// Package predicate builds fp.Predicate values from matchers and from
// validator tag expressions.
//
// Example:
//
//	adults := people.Filter(predicate.Create[Person](ageAtLeast(18)))
//	valid := emails.Filter(predicate.MustTag[string]("email"))
package predicate

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/charmingruby/sequence/fp"
	"github.com/charmingruby/sequence/internal/validate"
)

// ErrInvalidArgument is matched by the panic value of Create when the matcher is nil.
var ErrInvalidArgument = validate.ErrInvalidArgument

// ErrInvalidTag is wrapped by Tag when the expression is not understood by the validator.
var ErrInvalidTag = errors.New("predicate: invalid tag")

// Matcher decides whether an item matches.
type Matcher[T any] interface {
	Matches(item T) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc[T any] func(item T) bool

// Matches calls fn(item).
func (fn MatcherFunc[T]) Matches(item T) bool {
	return fn(item)
}

// Create returns a predicate delegating to m. A nil matcher panics with an
// *ArgumentError.
func Create[T any](m Matcher[T]) fp.Predicate[T] {
	validate.MustRequire(m, "matcher")
	return m.Matches
}

// Tag returns a predicate that matches items passing the validator tag
// expression, e.g. "gt=5", "oneof=red green" or "required,email". The
// expression is checked once up front; an unknown tag yields an error
// wrapping ErrInvalidTag.
//
// The validator does not apply field tags to struct values, so struct element
// types (and pointers to them) other than time.Time are rejected with
// ErrInvalidTag. When T is an interface, items whose dynamic value is such a
// struct never match.
func Tag[T any](tag string) (p fp.Predicate[T], err error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidTag)
	}
	typ := reflect.TypeFor[T]()
	if opaque(typ) {
		return nil, fmt.Errorf("%w: %q cannot be applied to struct type %s", ErrInvalidTag, tag, typ)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	var zero T
	// the validator panics on unknown tags; the outcome for zero is irrelevant
	_ = validate.Instance().Var(zero, tag)

	dynamic := typ.Kind() == reflect.Interface
	return func(item T) bool {
		if dynamic && opaque(reflect.TypeOf(item)) {
			return false
		}
		return validate.Instance().Var(item, tag) == nil
	}, nil
}

var timeType = reflect.TypeFor[time.Time]()

// opaque reports whether the validator would skip tags on values of t.
func opaque(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct && t != timeType
}

// MustTag is like Tag but panics when the expression is invalid.
func MustTag[T any](tag string) fp.Predicate[T] {
	p, err := Tag[T](tag)
	if err != nil {
		panic(err)
	}
	return p
}
