// Package collection provides ordered containers over values with
// content-based equality. Group is a capacity-bounded sequence, Set is a
// Group that refuses duplicate values and adds set algebra.
package collection

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrNotFound is returned when a value is not part of the container.
	ErrNotFound = errors.New("element not found")
	// ErrAlreadyExists is returned when a Set already holds an equal value.
	ErrAlreadyExists = errors.New("element already exists")
	// ErrIndexOutOfRange is returned for positions outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCapacityExceeded is returned when an insertion would grow a
	// bounded container past its capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Unbounded is the capacity of a container without an element limit.
const Unbounded = 0

// Equaler is implemented by values that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// cloner is implemented by values that own memory and need a deep copy.
type cloner[T any] interface {
	Clone() T
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Group is an ordered sequence of values bounded by a capacity.
// The zero value is an empty, unbounded group.
type Group[T Equaler[T]] struct {
	items    []T
	capacity int
}

// NewGroup creates a group with the given capacity holding items.
// A capacity of Unbounded (or less) means no limit.
func NewGroup[T Equaler[T]](capacity int, items ...T) (*Group[T], error) {
	g := &Group[T]{capacity: max(capacity, Unbounded)}
	if err := g.Add(items...); err != nil {
		return nil, err
	}
	return g, nil
}

// Len returns the number of values in the group.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Capacity returns the maximum number of values, or Unbounded.
func (g *Group[T]) Capacity() int {
	return g.capacity
}

// IsEmpty reports whether the group holds no values.
func (g *Group[T]) IsEmpty() bool {
	return len(g.items) == 0
}

// At returns the value at index i.
func (g *Group[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(g.items) {
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(g.items))
	}
	return g.items[i], nil
}

// Search returns the index of the first value equal to v.
func (g *Group[T]) Search(v T) (int, error) {
	for i, item := range g.items {
		if item.Equal(v) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Contains reports whether a value equal to v is present.
func (g *Group[T]) Contains(v T) bool {
	_, err := g.Search(v)
	return err == nil
}

func (g *Group[T]) fits(n int) error {
	if g.capacity > Unbounded && len(g.items)+n > g.capacity {
		return fmt.Errorf("%w: %d + %d > %d", ErrCapacityExceeded, len(g.items), n, g.capacity)
	}
	return nil
}

// Add appends values to the end of the group. Either all values are
// appended or, if the capacity would be exceeded, none.
func (g *Group[T]) Add(items ...T) error {
	if err := g.fits(len(items)); err != nil {
		return err
	}
	g.items = append(g.items, items...)
	return nil
}

// Insert places v before the value currently at index i.
func (g *Group[T]) Insert(i int, v T) error {
	if i < 0 || i >= len(g.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(g.items))
	}
	if err := g.fits(1); err != nil {
		return err
	}
	g.items = append(g.items, v)
	copy(g.items[i+1:], g.items[i:])
	g.items[i] = v
	return nil
}

// Remove deletes the first value equal to v.
func (g *Group[T]) Remove(v T) error {
	i, err := g.Search(v)
	if err != nil {
		return err
	}
	return g.RemoveAt(i)
}

// RemoveAt deletes the value at index i.
func (g *Group[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(g.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(g.items))
	}
	g.items = append(g.items[:i], g.items[i+1:]...)
	return nil
}

// Change replaces the value at index i with v.
func (g *Group[T]) Change(i int, v T) error {
	if i < 0 || i >= len(g.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(g.items))
	}
	g.items[i] = v
	return nil
}

// Clear removes every value. The capacity is kept.
func (g *Group[T]) Clear() {
	clear(g.items)
	g.items = g.items[:0]
}

// Values returns a copy of the values in order.
func (g *Group[T]) Values() []T {
	out := make([]T, len(g.items))
	for i, item := range g.items {
		out[i] = cloneValue(item)
	}
	return out
}

// All iterates over index/value pairs in order.
func (g *Group[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range g.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Equal reports whether both groups hold equal values in the same order.
func (g *Group[T]) Equal(other *Group[T]) bool {
	if len(g.items) != len(other.items) {
		return false
	}
	for i := range g.items {
		if !g.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the group.
func (g *Group[T]) Clone() *Group[T] {
	return &Group[T]{items: g.Values(), capacity: g.capacity}
}

// String renders the group as {a, b, c}.
func (g *Group[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, item := range g.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte('}')
	return sb.String()
}
