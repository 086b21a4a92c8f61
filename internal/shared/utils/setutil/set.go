// Package setutil provides a small generic set used when deduplicating
// labels, emails and bundle names.
package setutil

// Set is a set of comparable values backed by map[T]struct{}.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates a set holding the given values.
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{
		items: make(map[T]struct{}, len(values)),
	}
	s.AddAll(values)
	return s
}

// Add adds a value to the set.
func (s *Set[T]) Add(v T) {
	s.items[v] = struct{}{}
}

// AddAll adds all values to the set.
func (s *Set[T]) AddAll(values []T) {
	for _, v := range values {
		s.items[v] = struct{}{}
	}
}

// Has returns true if the value exists in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// ToSlice returns all values as a slice.
// The order is not guaranteed.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s.items))
	for v := range s.items {
		result = append(result, v)
	}
	return result
}

// Equal reports whether both sets hold exactly the same values.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.items {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Distinct returns values without duplicates, keeping first-seen order.
func Distinct[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
