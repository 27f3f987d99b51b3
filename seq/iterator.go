package seq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/sequence/internal/validate"
)

// Iterator is a lazy, pull-based iterator. Unlike Sequence operations, the
// Iter helpers do no work until Next is called. The zero value is exhausted.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// Values adapts the iterator to a range-over-func iterator. The underlying
// iterator is consumed as the result is ranged over.
func (it Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iterator returns a lazy iterator over the sequence's elements.
func (s Sequence[T]) Iterator() Iterator[T] {
	return FromSliceIter(s.items)
}

// FromSliceIter creates an iterator over values without copying.
func FromSliceIter[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// RangeIter lazily yields start..count inclusive, matching Range.
func RangeIter[N constraints.Integer](start, count N) Iterator[N] {
	if count < start {
		return Iterator[N]{}
	}
	current, done := start, false
	return Iterator[N]{
		next: func() (N, bool) {
			if done {
				return 0, false
			}
			v := current
			if current == count {
				done = true
			} else {
				current++
			}
			return v, true
		},
	}
}

// MapIter lazily transforms iterator values. A nil fn panics with an
// *ArgumentError.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	validate.MustRequire(fn, "mapping")
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// FilterIter keeps values satisfying predicate. A nil predicate panics with an
// *ArgumentError.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	validate.MustRequire(predicate, "predicate")
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// TakeIter returns an iterator that yields at most n elements.
func TakeIter[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
	}
}

// DropIter skips the first n elements.
func DropIter[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				skipped = true
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
			}
			return it.Next()
		},
	}
}

// CollectIter exhausts the iterator into a Sequence.
func CollectIter[T any](it Iterator[T]) Sequence[T] {
	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	return FromSlice(result)
}
