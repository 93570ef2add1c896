package geometry

import "math"

// FacePoints is the number of corners of a face.
const FacePoints = 3

// Measurer is implemented by elements with a size.
type Measurer interface {
	Length() float64
	Area() float64
}

// Face is a flat triangle with three distinct corners. Two faces are equal
// when they have the same corners in any order.
type Face struct {
	Element
}

// NewFace creates a face from its three corners
func NewFace(a, b, c Point) (Face, error) {
	return NewFaceFrom([]Point{a, b, c})
}

// NewFaceFrom creates a face from a list that must hold exactly three
// distinct points
func NewFaceFrom(pts []Point) (Face, error) {
	e, err := newFixedElement(FacePoints, pts)
	if err != nil {
		return Face{}, err
	}
	return Face{Element: e}, nil
}

// Vertices returns the three corners in order
func (f Face) Vertices() [3]Point {
	return [3]Point{f.pointAt(0), f.pointAt(1), f.pointAt(2)}
}

// EdgeLengths returns the lengths of the three edges (v0-v1, v1-v2, v2-v0)
func (f Face) EdgeLengths() [3]float64 {
	v := f.Vertices()
	return [3]float64{
		v[0].Distance(v[1]),
		v[1].Distance(v[2]),
		v[2].Distance(v[0]),
	}
}

// Perimeter returns the sum of all edge lengths
func (f Face) Perimeter() float64 {
	e := f.EdgeLengths()
	return e[0] + e[1] + e[2]
}

// Length is the perimeter
func (f Face) Length() float64 {
	return f.Perimeter()
}

// Area calculates the area of the triangle from its side lengths (Heron)
func (f Face) Area() float64 {
	e := f.EdgeLengths()
	s := (e[0] + e[1] + e[2]) / 2
	// rounding can push a degenerate triangle slightly below zero
	return math.Sqrt(math.Max(0, s*(s-e[0])*(s-e[1])*(s-e[2])))
}

// Center returns the centroid of the triangle
func (f Face) Center() Point {
	v := f.Vertices()
	return Point{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
		Z: (v[0].Z + v[1].Z + v[2].Z) / 3,
	}
}

// Normal returns the unit normal following the right-hand rule over the
// corner order. A degenerate face has a zero normal.
func (f Face) Normal() Vector3 {
	v := f.Vertices()
	edge1 := v[1].Vector3().Sub(v[0].Vector3())
	edge2 := v[2].Vector3().Sub(v[0].Vector3())
	return edge1.Cross(edge2).Normalize()
}

// Equal reports whether both faces have the same corners
func (f Face) Equal(other Face) bool {
	return f.Element.Equal(other.Element)
}

// Clone returns a face that shares no memory with f
func (f Face) Clone() Face {
	return Face{Element: f.Element.Clone()}
}
