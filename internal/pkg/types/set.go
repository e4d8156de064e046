// Package types holds small generic containers shared by the services.
package types

import (
	"iter"
	"maps"
)

// Set is a generic hash set implementation for comparable types.
//
// It provides membership tests and insertion using a map[T]struct{}
// internally. This type is mutable: Add modifies the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value belongs to the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// ToIter returns an iterator over all elements in the set.
// The order of elements is not guaranteed.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}
