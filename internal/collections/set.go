package collections

import "fmt"

// Set is a generic set data structure using a map with zero-size values
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set with the given initial values
func NewSet[T comparable](vs ...T) Set[T] {
	s := Set[T]{}
	s.Add(vs...)
	return s
}

// Add adds one or more values to the set
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Delete removes a value from the set if present
func (s Set[T]) Delete(v T) {
	delete(s, v)
}

// Has checks if the set contains the given value
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Clone returns an independent copy of the set. Mutating the clone does not
// affect the original, which matters when a resolution chain branches.
func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Len returns the number of values in the set
func (s Set[T]) Len() int {
	return len(s)
}

// Members returns all values in the set as a slice
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}

// String returns a string representation of the set
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}
