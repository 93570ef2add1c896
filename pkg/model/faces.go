package model

import (
	"fmt"

	"github.com/philipparndt/gomodel/pkg/geometry"
)

// AddFace appends f unless an equal face is already present
func (m *Model) AddFace(f geometry.Face) error {
	if !m.faces.TryAdd(f.Clone()) {
		return fmt.Errorf("%w: %v", ErrFaceExists, f)
	}
	return nil
}

// AddFacePoints builds a face from three corners and adds it
func (m *Model) AddFacePoints(a, b, c geometry.Point) error {
	f, err := geometry.NewFace(a, b, c)
	if err != nil {
		return err
	}
	return m.AddFace(f)
}

func (m *Model) faceIndex(f geometry.Face) (int, error) {
	i, err := m.faces.Search(f)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrFaceNotFound, f)
	}
	return i, nil
}

// RemoveFace removes the face equal to f
func (m *Model) RemoveFace(f geometry.Face) error {
	i, err := m.faceIndex(f)
	if err != nil {
		return err
	}
	return m.RemoveFaceAt(i)
}

// RemoveFacePoints removes the face with corners a, b and c
func (m *Model) RemoveFacePoints(a, b, c geometry.Point) error {
	f, err := geometry.NewFace(a, b, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFaceNotFound, err)
	}
	return m.RemoveFace(f)
}

// RemoveFaceAt removes the face at index i
func (m *Model) RemoveFaceAt(i int) error {
	if err := m.faces.RemoveAt(i); err != nil {
		return fmt.Errorf("%w: %w", ErrFaceNotFound, err)
	}
	return nil
}

// ChangeFace replaces the face equal to from with to. The replacement is
// not checked against the other faces of the model.
func (m *Model) ChangeFace(from, to geometry.Face) error {
	i, err := m.faceIndex(from)
	if err != nil {
		return err
	}
	return m.ChangeFaceAt(i, to)
}

// ChangeFaceAt replaces the face at index i with to, without a uniqueness
// check.
func (m *Model) ChangeFaceAt(i int, to geometry.Face) error {
	if err := m.faces.Group.Change(i, to.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrFaceNotFound, err)
	}
	return nil
}

// editFace applies edit to a copy of the face at index i and stores the
// copy back only if edit succeeds.
func (m *Model) editFace(i int, edit func(f *geometry.Face) error) error {
	f, err := m.Face(i)
	if err != nil {
		return err
	}
	if err := edit(&f); err != nil {
		return err
	}
	return m.faces.Group.Change(i, f)
}

func checkFacePoint(point int) error {
	if point < 0 || point >= geometry.FacePoints {
		return fmt.Errorf("%w: face point index %d", ErrPointNotFound, point)
	}
	return nil
}

// ChangeFacePoint replaces the corner from of face f with to
func (m *Model) ChangeFacePoint(f geometry.Face, from, to geometry.Point) error {
	i, err := m.faceIndex(f)
	if err != nil {
		return err
	}
	return m.ChangeFaceAtPoint(i, from, to)
}

// ChangeFacePointAt replaces corner number point (0-2) of face f with to
func (m *Model) ChangeFacePointAt(f geometry.Face, point int, to geometry.Point) error {
	i, err := m.faceIndex(f)
	if err != nil {
		return err
	}
	return m.ChangeFaceAtPointAt(i, point, to)
}

// ChangeFaceAtPoint replaces the corner from of the face at index i with to
func (m *Model) ChangeFaceAtPoint(i int, from, to geometry.Point) error {
	return m.editFace(i, func(f *geometry.Face) error {
		return f.ChangePoint(from, to)
	})
}

// ChangeFaceAtPointAt replaces corner number point (0-2) of the face at
// index i with to
func (m *Model) ChangeFaceAtPointAt(i, point int, to geometry.Point) error {
	if err := checkFacePoint(point); err != nil {
		return err
	}
	return m.editFace(i, func(f *geometry.Face) error {
		return f.ChangePointAt(point, to)
	})
}

// ClearFaces removes every face
func (m *Model) ClearFaces() {
	m.faces.Clear()
}
