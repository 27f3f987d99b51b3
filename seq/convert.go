package seq

// ToList returns an independent copy of the elements. Changing the copy never
// affects the sequence. The result is never nil.
func (s Sequence[T]) ToList() []T {
	return clone(s.items)
}

// ToCollection returns the slice backing the sequence, without copying.
//
// The result aliases the sequence: writing to it changes what this sequence
// and every value sharing its storage (ForEach results, unchanged Concat
// results) observe. Callers mutating it concurrently with other use of the
// sequence must synchronize themselves.
func (s Sequence[T]) ToCollection() []T {
	return s.items
}

// ToArray returns a fixed-size snapshot: a copy whose capacity equals its
// length, so appending to it always reallocates.
func (s Sequence[T]) ToArray() []T {
	out := clone(s.items)
	return out[:len(out):len(out)]
}

// Set is an unordered collection of distinct elements.
type Set[T comparable] map[T]struct{}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of distinct elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the elements as a sequence, in no particular order.
func (s Set[T]) Values() Sequence[T] {
	out := make([]T, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	return FromSlice(out)
}

// ToSet returns the distinct elements of s, compared with ==.
//
// When T is an interface type, an element whose dynamic type is not comparable
// (a slice, map or func) makes ToSet panic, as it would for any map key.
func ToSet[T comparable](s Sequence[T]) Set[T] {
	set := make(Set[T], len(s.items))
	for _, item := range s.items {
		set[item] = struct{}{}
	}
	return set
}
