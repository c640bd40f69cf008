package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// FindIndex returns the position of item in slice, or -1 if it is absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Set is an unordered collection of distinct values that can be listed in ascending order.
type Set[T constraints.Ordered] map[T]struct{}

func NewSet[T constraints.Ordered](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Remove(item T) {
	delete(s, item)
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Union adds every item of other to s.
func (s Set[T]) Union(other Set[T]) {
	for item := range other {
		s.Add(item)
	}
}

// Sorted lists the items in ascending order
func (s Set[T]) Sorted() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}
