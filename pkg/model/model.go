// Package model holds the Model aggregate: a named collection of distinct
// faces and distinct lines with aggregate metrics and model algebra.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/gomodel/pkg/collection"
	"github.com/philipparndt/gomodel/pkg/geometry"
)

// DefaultName is the name and description of a model nobody has named yet.
const DefaultName = "EMPTY"

var (
	// ErrFaceExists is returned when a model already holds an equal face.
	ErrFaceExists = errors.New("face already exists")
	// ErrFaceNotFound is returned for a face the model does not hold.
	ErrFaceNotFound = errors.New("face not found")
	// ErrLineExists is returned when a model already holds an equal line.
	ErrLineExists = errors.New("line already exists")
	// ErrLineNotFound is returned for a line the model does not hold.
	ErrLineNotFound = errors.New("line not found")
	// ErrPointNotFound is returned for point indices outside an element.
	ErrPointNotFound = geometry.ErrPointNotFound
)

// Model represents a 3D model made of faces and lines. No two faces and no
// two lines of a model are equal. Copies made with Clone are deep.
type Model struct {
	Name        string
	Description string
	faces       collection.Set[geometry.Face]
	lines       collection.Set[geometry.Line]
}

// New creates an empty model with the default name and description
func New() *Model {
	return &Model{Name: DefaultName, Description: DefaultName}
}

// NewFrom creates a model holding the given faces and lines. Repeated
// faces or lines are kept once.
func NewFrom(faces []geometry.Face, lines []geometry.Line) *Model {
	m := New()
	m.AddFaces(faces...)
	m.AddLines(lines...)
	return m
}

// FaceCount returns the number of faces
func (m *Model) FaceCount() int {
	return m.faces.Len()
}

// LineCount returns the number of lines
func (m *Model) LineCount() int {
	return m.lines.Len()
}

// ElementCount returns the number of faces and lines
func (m *Model) ElementCount() int {
	return m.FaceCount() + m.LineCount()
}

// PointCount returns the number of element corners. Points shared by
// several elements are counted once per element.
func (m *Model) PointCount() int {
	return geometry.FacePoints*m.FaceCount() + geometry.LinePoints*m.LineCount()
}

// IsEmpty reports whether the model has neither faces nor lines
func (m *Model) IsEmpty() bool {
	return m.ElementCount() == 0
}

// ContainFace reports whether an equal face is part of the model
func (m *Model) ContainFace(f geometry.Face) bool {
	return m.faces.Contains(f)
}

// ContainLine reports whether an equal line is part of the model
func (m *Model) ContainLine(l geometry.Line) bool {
	return m.lines.Contains(l)
}

// Faces returns copies of the faces in insertion order
func (m *Model) Faces() []geometry.Face {
	return m.faces.Values()
}

// Lines returns copies of the lines in insertion order
func (m *Model) Lines() []geometry.Line {
	return m.lines.Values()
}

// Face returns a copy of the face at index i
func (m *Model) Face(i int) (geometry.Face, error) {
	f, err := m.faces.At(i)
	if err != nil {
		return geometry.Face{}, fmt.Errorf("%w: %w", ErrFaceNotFound, err)
	}
	return f.Clone(), nil
}

// Line returns a copy of the line at index i
func (m *Model) Line(i int) (geometry.Line, error) {
	l, err := m.lines.At(i)
	if err != nil {
		return geometry.Line{}, fmt.Errorf("%w: %w", ErrLineNotFound, err)
	}
	return l.Clone(), nil
}

// Points returns every corner of every face, then every end point of every
// line, without removing repeats
func (m *Model) Points() []geometry.Point {
	out := make([]geometry.Point, 0, m.PointCount())
	for _, f := range m.faces.All() {
		out = append(out, f.Points()...)
	}
	for _, l := range m.lines.All() {
		out = append(out, l.Points()...)
	}
	return out
}

// Area returns the summed area of all faces
func (m *Model) Area() float64 {
	total := 0.0
	for _, f := range m.faces.All() {
		total += f.Area()
	}
	return total
}

// Length returns the summed length of all lines
func (m *Model) Length() float64 {
	total := 0.0
	for _, l := range m.lines.All() {
		total += l.Length()
	}
	return total
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxOf(m.Points()...)
}

// BoundingBoxVolume returns the volume of the bounding box. It is zero for
// flat and empty models.
func (m *Model) BoundingBoxVolume() float64 {
	return m.BoundingBox().Volume()
}

// Clear removes every face and line. Name and description are kept.
func (m *Model) Clear() {
	m.ClearFaces()
	m.ClearLines()
}

// Equal reports whether both models hold the same faces and the same lines,
// in any order. Name and description are not compared.
func (m *Model) Equal(other *Model) bool {
	return m.faces.Equal(&other.faces) && m.lines.Equal(&other.lines)
}

// Clone returns a deep copy of the model
func (m *Model) Clone() *Model {
	return &Model{
		Name:        m.Name,
		Description: m.Description,
		faces:       *m.faces.Clone(),
		lines:       *m.lines.Clone(),
	}
}

func (m *Model) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", m.Name, m.Description)
	fmt.Fprintf(&sb, "faces (%d):\n", m.FaceCount())
	for i, f := range m.faces.All() {
		fmt.Fprintf(&sb, "  %d: %v\n", i, f)
	}
	fmt.Fprintf(&sb, "lines (%d):\n", m.LineCount())
	for i, l := range m.lines.All() {
		fmt.Fprintf(&sb, "  %d: %v\n", i, l)
	}
	return sb.String()
}
