// Package seq provides Sequence, an eager and chainable wrapper over an ordered
// slice, plus a lazy pull-based Iterator for callers that want one.
//
// Every Sequence operation runs to completion and returns a fresh Sequence;
// the slice a Sequence wraps is never written by this package.
//
// Example:
//
//	names := seq.Map(
//		seq.From(users...).Where(isActive).Take(10),
//		func(u User) string { return u.Name },
//	).ToList()
package seq

import (
	"fmt"
	"iter"
	"slices"
)

// Sequence is an ordered, read-only view over a slice of T. The zero value is
// an empty sequence and is ready to use.
type Sequence[T any] struct {
	items []T
}

// From wraps the given elements in call order. From(slice...) wraps slice
// without copying it.
func From[T any](items ...T) Sequence[T] {
	return FromSlice(items)
}

// FromSlice wraps items without copying. A nil slice yields an empty sequence.
func FromSlice[T any](items []T) Sequence[T] {
	return Sequence[T]{items: items}
}

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Collect drains values into a new sequence. A nil iterator yields an empty
// sequence.
func Collect[T any](values iter.Seq[T]) Sequence[T] {
	if values == nil {
		return Empty[T]()
	}
	return FromSlice(slices.Collect(values))
}

// Values returns an iterator over the elements in order.
func (s Sequence[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// Enumerate returns an iterator over index/element pairs in order.
func (s Sequence[T]) Enumerate() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Count returns the number of elements.
func (s Sequence[T]) Count() int {
	return len(s.items)
}

// String renders the sequence for debugging, e.g. "Sequence[1 2 3]".
func (s Sequence[T]) String() string {
	return fmt.Sprintf("Sequence%v", s.items)
}
