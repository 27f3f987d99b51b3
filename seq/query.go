package seq

import (
	"github.com/charmingruby/sequence/fp"
	"github.com/charmingruby/sequence/internal/validate"
	"github.com/charmingruby/sequence/option"
)

// Any reports whether the sequence has at least one element.
func (s Sequence[T]) Any() bool {
	return len(s.items) > 0
}

// AnyMatch reports whether at least one element satisfies predicate. It stops
// at the first match. A nil predicate panics with an *ArgumentError.
func (s Sequence[T]) AnyMatch(predicate fp.Predicate[T]) bool {
	validate.MustRequire(predicate, "predicate")
	for _, v := range s.items {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. An empty sequence
// satisfies any predicate. A nil predicate panics with an *ArgumentError.
func (s Sequence[T]) All(predicate fp.Predicate[T]) bool {
	validate.MustRequire(predicate, "predicate")
	for _, v := range s.items {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Filter keeps the elements satisfying predicate, preserving order. A nil
// predicate panics with an *ArgumentError.
func (s Sequence[T]) Filter(predicate fp.Predicate[T]) Sequence[T] {
	validate.MustRequire(predicate, "predicate")
	if len(s.items) == 0 {
		return Empty[T]()
	}
	result := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return FromSlice(result)
}

// Where is an alias for Filter.
func (s Sequence[T]) Where(predicate fp.Predicate[T]) Sequence[T] {
	return s.Filter(predicate)
}

// Find returns the first element satisfying predicate. A nil predicate panics
// with an *ArgumentError.
func (s Sequence[T]) Find(predicate fp.Predicate[T]) option.Option[T] {
	validate.MustRequire(predicate, "predicate")
	for _, v := range s.items {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// Skip drops the first n elements and returns the rest. n <= 0 drops nothing;
// n >= Count yields an empty sequence.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	n = max(n, 0)
	if n >= len(s.items) {
		return Empty[T]()
	}
	return FromSlice(clone(s.items[n:]))
}

// Take returns at most the first n elements. n <= 0 yields an empty sequence;
// asking for more than Count returns every element.
func (s Sequence[T]) Take(n int) Sequence[T] {
	if n <= 0 || len(s.items) == 0 {
		return Empty[T]()
	}
	n = min(n, len(s.items))
	return FromSlice(clone(s.items[:n]))
}

// Concat appends items after the receiver's elements. With no items the
// receiver is returned as is. Concat(nil) on a nil-capable element type appends
// a single nil element; use ConcatSlice(nil) to append nothing.
func (s Sequence[T]) Concat(items ...T) Sequence[T] {
	return s.ConcatSlice(items)
}

// ConcatSlice appends items after the receiver's elements. A nil or empty
// slice returns the receiver as is.
func (s Sequence[T]) ConcatSlice(items []T) Sequence[T] {
	if len(items) == 0 {
		return s
	}
	result := make([]T, 0, len(s.items)+len(items))
	result = append(result, s.items...)
	result = append(result, items...)
	return FromSlice(result)
}

// ForEach runs action on every element in order and returns a sequence over
// the same elements, so actions may mutate elements that are pointers. A nil
// action panics with an *ArgumentError.
func (s Sequence[T]) ForEach(action fp.Action[T]) Sequence[T] {
	validate.MustRequire(action, "action")
	for _, v := range s.items {
		action(v)
	}
	return s
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
