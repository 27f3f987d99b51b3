package seq

import "github.com/charmingruby/sequence/option"

// First returns the first element, or ErrEmptySequence.
func (s Sequence[T]) First() (T, error) {
	return s.FirstOption().Unwrap(ErrEmptySequence)
}

// FirstOrDefault returns the first element, or the zero value of T when empty.
func (s Sequence[T]) FirstOrDefault() T {
	v, _ := s.FirstOption().Get()
	return v
}

// FirstOption returns the first element as an Option.
func (s Sequence[T]) FirstOption() option.Option[T] {
	if len(s.items) == 0 {
		return option.None[T]()
	}
	return option.Some(s.items[0])
}

// Last returns the last element, or ErrEmptySequence.
func (s Sequence[T]) Last() (T, error) {
	return s.LastOption().Unwrap(ErrEmptySequence)
}

// LastOrDefault returns the last element, or the zero value of T when empty.
func (s Sequence[T]) LastOrDefault() T {
	v, _ := s.LastOption().Get()
	return v
}

// LastOption returns the last element as an Option.
func (s Sequence[T]) LastOption() option.Option[T] {
	if len(s.items) == 0 {
		return option.None[T]()
	}
	return option.Some(s.items[len(s.items)-1])
}
