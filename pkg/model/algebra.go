package model

import (
	"fmt"

	"github.com/philipparndt/gomodel/pkg/geometry"
)

// AddFaces adds every face not yet present and skips the rest
func (m *Model) AddFaces(faces ...geometry.Face) {
	for _, f := range faces {
		m.faces.TryAdd(f.Clone())
	}
}

// AddLines adds every line not yet present and skips the rest
func (m *Model) AddLines(lines ...geometry.Line) {
	for _, l := range lines {
		m.lines.TryAdd(l.Clone())
	}
}

// SubtractFaces removes every given face. If any of them is missing the
// model is left unchanged and ErrFaceNotFound is returned.
func (m *Model) SubtractFaces(faces ...geometry.Face) error {
	for _, f := range faces {
		if !m.faces.Contains(f) {
			return fmt.Errorf("%w: %v", ErrFaceNotFound, f)
		}
	}
	for _, f := range faces {
		// a repeated argument was already removed
		_ = m.faces.Remove(f)
	}
	return nil
}

// SubtractLines removes every given line, or none if any is missing
func (m *Model) SubtractLines(lines ...geometry.Line) error {
	for _, l := range lines {
		if !m.lines.Contains(l) {
			return fmt.Errorf("%w: %v", ErrLineNotFound, l)
		}
	}
	for _, l := range lines {
		_ = m.lines.Remove(l)
	}
	return nil
}

// AddModel merges other's faces and lines into m, skipping those m already
// holds. It never fails.
func (m *Model) AddModel(other *Model) {
	m.AddFaces(other.faces.Values()...)
	m.AddLines(other.lines.Values()...)
}

// SubtractModel removes other's faces and lines from m. Every one of them
// must be present in m, otherwise m is left unchanged and a not-found error
// is returned.
func (m *Model) SubtractModel(other *Model) error {
	faces, lines := other.faces.Values(), other.lines.Values()
	for _, l := range lines {
		if !m.lines.Contains(l) {
			return fmt.Errorf("%w: %v", ErrLineNotFound, l)
		}
	}
	if err := m.SubtractFaces(faces...); err != nil {
		return err
	}
	return m.SubtractLines(lines...)
}

// Plus returns the lenient union of m and other. Neither operand changes.
func (m *Model) Plus(other *Model) *Model {
	out := m.Clone()
	out.AddModel(other)
	return out
}

// Minus returns m without other's faces and lines. Neither operand changes.
func (m *Model) Minus(other *Model) (*Model, error) {
	out := m.Clone()
	if err := out.SubtractModel(other); err != nil {
		return nil, err
	}
	return out, nil
}
