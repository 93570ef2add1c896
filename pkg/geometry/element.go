package geometry

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gomodel/pkg/collection"
)

var (
	// ErrPointCountFixed is returned by structural mutations (add, remove,
	// clear) of an element whose point count cannot change.
	ErrPointCountFixed = errors.New("point count is fixed")
	// ErrPointCountMismatch is returned when a fixed element is built or
	// overwritten from a point list of the wrong length.
	ErrPointCountMismatch = errors.New("point count mismatch")
	// ErrPointCountExceeded is returned when a bounded element is full.
	ErrPointCountExceeded = errors.New("point count exceeded")
	// ErrPointDuplicated is returned when an element would hold a point twice.
	ErrPointDuplicated = errors.New("point duplicated")
	// ErrPointNotFound is returned for points or point indices that are not
	// part of the element.
	ErrPointNotFound = errors.New("point not found")
)

// pointErr attaches the element-level kind to a container failure while
// keeping the container error reachable through errors.Is.
func pointErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, collection.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrPointDuplicated, err)
	case errors.Is(err, collection.ErrNotFound), errors.Is(err, collection.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %w", ErrPointNotFound, err)
	case errors.Is(err, collection.ErrCapacityExceeded):
		return fmt.Errorf("%w: %w", ErrPointCountExceeded, err)
	}
	return err
}

// Element is an ordered collection of distinct points bounded by a capacity.
// Fixed elements keep exactly Capacity points for their whole life; only
// point replacement is allowed on them.
type Element struct {
	points collection.Set[Point]
	fixed  bool
}

// NewElement creates a growable element with the given capacity.
// Use collection.Unbounded for no limit.
func NewElement(capacity int, pts ...Point) (Element, error) {
	s, err := collection.NewBoundedSet(capacity, pts...)
	if err != nil {
		return Element{}, pointErr(err)
	}
	return Element{points: *s}, nil
}

func newFixedElement(count int, pts []Point) (Element, error) {
	if len(pts) != count {
		return Element{}, fmt.Errorf("%w: got %d points, want %d", ErrPointCountMismatch, len(pts), count)
	}
	e, err := NewElement(count, pts...)
	if err != nil {
		return Element{}, err
	}
	e.fixed = true
	return e, nil
}

// Points returns a copy of the points in order.
func (e Element) Points() []Point {
	return e.points.Values()
}

// Point returns the point at index i.
func (e Element) Point(i int) (Point, error) {
	p, err := e.points.At(i)
	return p, pointErr(err)
}

// pointAt is Point without the range error; missing points read as the
// origin.
func (e Element) pointAt(i int) Point {
	p, _ := e.points.At(i)
	return p
}

// CountPoint returns the number of points currently held.
func (e Element) CountPoint() int {
	return e.points.Len()
}

// Capacity returns the maximum number of points, or collection.Unbounded.
func (e Element) Capacity() int {
	return e.points.Capacity()
}

// IsFixed reports whether the point count is locked.
func (e Element) IsFixed() bool {
	return e.fixed
}

// ContainsPoint reports whether p is one of the element's points.
func (e Element) ContainsPoint(p Point) bool {
	return e.points.Contains(p)
}

// own gives e a private copy of its points. Element values are copied by
// assignment, so every in-place mutation starts here.
func (e *Element) own() {
	e.points = *e.points.Clone()
}

// AddPoint appends p.
func (e *Element) AddPoint(p Point) error {
	if e.fixed {
		return ErrPointCountFixed
	}
	e.own()
	return pointErr(e.points.Add(p))
}

// RemovePoint removes p.
func (e *Element) RemovePoint(p Point) error {
	if e.fixed {
		return ErrPointCountFixed
	}
	e.own()
	return pointErr(e.points.Remove(p))
}

// RemovePointAt removes the point at index i.
func (e *Element) RemovePointAt(i int) error {
	if e.fixed {
		return ErrPointCountFixed
	}
	e.own()
	return pointErr(e.points.RemoveAt(i))
}

// ClearPoints removes every point.
func (e *Element) ClearPoints() error {
	if e.fixed {
		return ErrPointCountFixed
	}
	e.own()
	e.points.Clear()
	return nil
}

// ChangePoint replaces the point equal to from with to.
func (e *Element) ChangePoint(from, to Point) error {
	i, err := e.points.Search(from)
	if err != nil {
		return fmt.Errorf("%w: %v", pointErr(err), from)
	}
	return e.ChangePointAt(i, to)
}

// ChangePointAt replaces the point at index i with p. This is the only
// mutation permitted on fixed elements.
func (e *Element) ChangePointAt(i int, p Point) error {
	if i < 0 || i >= e.points.Len() {
		return fmt.Errorf("%w: index %d of %d", ErrPointNotFound, i, e.points.Len())
	}
	e.own()
	return pointErr(e.points.Change(i, p))
}

// CopyFrom overwrites e's points with other's. A fixed element only accepts
// a source with exactly its own point count. On error e is unchanged.
func (e *Element) CopyFrom(other Element) error {
	if e.fixed && other.CountPoint() != e.Capacity() {
		return fmt.Errorf("%w: got %d points, want %d", ErrPointCountMismatch, other.CountPoint(), e.Capacity())
	}
	if !e.fixed && e.Capacity() != collection.Unbounded && other.CountPoint() > e.Capacity() {
		return fmt.Errorf("%w: %d > %d", ErrPointCountExceeded, other.CountPoint(), e.Capacity())
	}
	points, err := collection.NewBoundedSet(e.Capacity(), other.Points()...)
	if err != nil {
		return pointErr(err)
	}
	e.points = *points
	return nil
}

// Equal reports whether both elements hold the same points, in any order.
func (e Element) Equal(other Element) bool {
	return e.points.Equal(&other.points)
}

// Clone returns an element that shares no memory with e.
func (e Element) Clone() Element {
	return Element{points: *e.points.Clone(), fixed: e.fixed}
}

func (e Element) String() string {
	return e.points.String()
}
