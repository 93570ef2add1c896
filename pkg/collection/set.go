package collection

import "fmt"

// Set is a Group that holds every value at most once. Insertion order is
// preserved, so positions stay stable and can be used as references.
//
// The embedded Group is reachable for callers that deliberately bypass the
// uniqueness check (positional replacement through s.Group.Change).
type Set[T Equaler[T]] struct {
	Group[T]
}

// NewSet creates an unbounded set holding items. Duplicate items fail with
// ErrAlreadyExists.
func NewSet[T Equaler[T]](items ...T) (*Set[T], error) {
	return NewBoundedSet(Unbounded, items...)
}

// NewBoundedSet creates a set with the given capacity holding items.
func NewBoundedSet[T Equaler[T]](capacity int, items ...T) (*Set[T], error) {
	s := &Set[T]{Group: Group[T]{capacity: max(capacity, Unbounded)}}
	if err := s.Add(items...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Set[T]) checkAbsent(v T) error {
	if s.Contains(v) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, v)
	}
	return nil
}

// Add appends values that are not yet present. If any value is already in
// the set, or repeated within items, nothing is added.
func (s *Set[T]) Add(items ...T) error {
	for i, v := range items {
		if err := s.checkAbsent(v); err != nil {
			return err
		}
		for _, prev := range items[:i] {
			if prev.Equal(v) {
				return fmt.Errorf("%w: %v", ErrAlreadyExists, v)
			}
		}
	}
	return s.Group.Add(items...)
}

// TryAdd appends v unless an equal value is present or the set is full.
// It reports whether v was added.
func (s *Set[T]) TryAdd(v T) bool {
	if s.Contains(v) {
		return false
	}
	return s.Group.Add(v) == nil
}

// Insert places v before index i unless an equal value is present.
func (s *Set[T]) Insert(i int, v T) error {
	if err := s.checkAbsent(v); err != nil {
		return err
	}
	return s.Group.Insert(i, v)
}

// Change replaces the value at index i with v unless an equal value is
// present anywhere in the set, including at i itself.
func (s *Set[T]) Change(i int, v T) error {
	if err := s.checkAbsent(v); err != nil {
		return err
	}
	return s.Group.Change(i, v)
}

// Intersection returns the values present in both sets, in s's order.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := &Set[T]{}
	for _, v := range s.items {
		if other.Contains(v) {
			out.items = append(out.items, cloneValue(v))
		}
	}
	return out
}

// Union returns the values of s followed by those of other not in s.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := &Set[T]{}
	for _, v := range s.items {
		out.TryAdd(cloneValue(v))
	}
	for _, v := range other.items {
		out.TryAdd(cloneValue(v))
	}
	return out
}

// Difference returns the values of s that are absent from other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := &Set[T]{}
	for _, v := range s.items {
		if !other.Contains(v) {
			out.items = append(out.items, cloneValue(v))
		}
	}
	return out
}

// ReverseDifference returns the values of other that are absent from s.
func (s *Set[T]) ReverseDifference(other *Set[T]) *Set[T] {
	return other.Difference(s)
}

// SymmetricDifference returns the values present in exactly one of the sets.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	return s.Union(other).Difference(s.Intersection(other))
}

// IntersectWith keeps only the values also present in other.
func (s *Set[T]) IntersectWith(other *Set[T]) {
	s.items = s.Intersection(other).items
}

// UnionWith appends the values of other that s does not hold yet.
// The capacity is not enforced for the result of set algebra.
func (s *Set[T]) UnionWith(other *Set[T]) {
	s.items = s.Union(other).items
}

// Subtract removes every value that is also present in other.
func (s *Set[T]) Subtract(other *Set[T]) {
	s.items = s.Difference(other).items
}

// SymmetricSubtract keeps the values present in exactly one of the sets.
func (s *Set[T]) SymmetricSubtract(other *Set[T]) {
	s.items = s.SymmetricDifference(other).items
}

// Equal reports whether both sets have the same cardinality and the same
// members, regardless of order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.items {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{Group: *s.Group.Clone()}
}
