package seq

import (
	"golang.org/x/exp/constraints"

	"github.com/charmingruby/sequence/internal/validate"
)

// Map applies mapping to every element in order and returns the results. A nil
// mapping panics with an *ArgumentError.
func Map[T any, V any](s Sequence[T], mapping func(T) V) Sequence[V] {
	validate.MustRequire(mapping, "mapping")
	if len(s.items) == 0 {
		return Empty[V]()
	}
	out := make([]V, len(s.items))
	for i, v := range s.items {
		out[i] = mapping(v)
	}
	return FromSlice(out)
}

// Select is an alias for Map.
func Select[T any, V any](s Sequence[T], mapping func(T) V) Sequence[V] {
	return Map(s, mapping)
}

// OfType keeps the elements whose dynamic type is V and narrows the sequence to
// that type. V may be an interface, in which case elements implementing it are
// kept.
//
// Example:
//
//	names := seq.OfType[string](seq.From[any](1, "a", 2.0, "b")) // Sequence[a b]
func OfType[V any, T any](s Sequence[T]) Sequence[V] {
	return OfTypeFunc(s, func(item T) (V, bool) {
		v, ok := any(item).(V)
		return v, ok
	})
}

// OfTypeFunc keeps the elements for which discriminator reports true, narrowed
// to the value it returns. A nil discriminator panics with an *ArgumentError.
func OfTypeFunc[T any, V any](s Sequence[T], discriminator func(T) (V, bool)) Sequence[V] {
	validate.MustRequire(discriminator, "discriminator")
	if len(s.items) == 0 {
		return Empty[V]()
	}
	out := make([]V, 0, len(s.items))
	for _, item := range s.items {
		if v, ok := discriminator(item); ok {
			out = append(out, v)
		}
	}
	return FromSlice(out)
}

// Range returns the consecutive integers from start up to and including count.
// The second argument is the last value produced, not the number of values:
// Range(1, 1000) holds 1..1000, and Range(5, 7) holds 5, 6, 7. count < start
// yields an empty sequence.
func Range[N constraints.Integer](start, count N) Sequence[N] {
	if count < start {
		return Empty[N]()
	}
	// unsigned difference stays correct for signed N thanks to wraparound
	size := uint64(count) - uint64(start) + 1
	items := make([]N, 0, size)
	for i := start; ; i++ {
		items = append(items, i)
		if i == count {
			break
		}
	}
	return FromSlice(items)
}
