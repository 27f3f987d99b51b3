// Package option implements a generic Option type for presence/absence semantics.
//
// Sequences return Options from FirstOption, LastOption and Find so that an
// element which is itself nil can be told apart from "no element".
package option

import (
	"errors"
	"fmt"
)

// ErrNone is returned by Unwrap when the Option is empty and no error was supplied.
var ErrNone = errors.New("option: missing value")

// Option represents presence or absence of a value of type T. The zero value is
// None. Some(nil) is valid for nil-capable types; use IsSome to tell it apart
// from None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring map lookups
// and the comma-ok idiom.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the Option holds a value, even a nil one.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the held value, or fallback when empty.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Unwrap converts the Option into Go's (value, error) pair. When empty it
// returns err, or ErrNone if err is nil.
//
// Example:
//
//	user, err := users.Find(byID(42)).Unwrap(ErrUserNotFound)
func (o Option[T]) Unwrap(err error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	if err == nil {
		err = ErrNone
	}
	var zero T
	return zero, err
}

// Filter keeps the value when predicate returns true, otherwise it becomes None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Map transforms the held value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
