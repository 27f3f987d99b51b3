// Package fp defines the capabilities callers hand to a sequence: predicates,
// mappings and actions. Each is a plain function type, so a func literal can be
// passed wherever one is expected.
//
// Example:
//
//	even := fp.Predicate[int](func(n int) bool { return n%2 == 0 })
//	odd := even.Not()
package fp

// Predicate answers true or false for a single element.
type Predicate[T any] func(T) bool

// Match applies the predicate to item.
func (p Predicate[T]) Match(item T) bool {
	return p(item)
}

// Not returns the negation of p.
//
// Example:
//
//	nonEmpty := fp.Predicate[string](func(s string) bool { return s == "" }).Not()
func (p Predicate[T]) Not() Predicate[T] {
	return func(item T) bool {
		return !p(item)
	}
}

// And returns a predicate matching when p and every one of others match. It
// stops at the first predicate that rejects the item.
func (p Predicate[T]) And(others ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		if !p(item) {
			return false
		}
		for _, other := range others {
			if !other(item) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate matching when p or any one of others matches.
func (p Predicate[T]) Or(others ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		if p(item) {
			return true
		}
		for _, other := range others {
			if other(item) {
				return true
			}
		}
		return false
	}
}

// Mapping transforms one element into a value of a possibly different type.
type Mapping[T any, V any] func(T) V

// Map applies the mapping to item.
func (m Mapping[T, V]) Map(item T) V {
	return m(item)
}

// Action performs a side effect on an element.
type Action[T any] func(T)

// Execute applies the action to item.
func (a Action[T]) Execute(item T) {
	a(item)
}

// Then returns an action running a and then next on the same item.
func (a Action[T]) Then(next Action[T]) Action[T] {
	return func(item T) {
		a(item)
		next(item)
	}
}

// Identity returns the supplied value unchanged. It is the neutral mapping.
func Identity[T any](v T) T {
	return v
}

// Then composes two mappings left to right: the result maps with first and
// feeds the output to second.
//
// Example:
//
//	length := fp.Then(strings.TrimSpace, func(s string) int { return len(s) })
func Then[A any, B any, C any](first func(A) B, second func(B) C) Mapping[A, C] {
	return func(value A) C {
		return second(first(value))
	}
}

// Compose composes same-typed mappings in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) Mapping[T, T] {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}
