package model

import (
	"fmt"

	"github.com/philipparndt/gomodel/pkg/geometry"
)

// AddLine appends l unless an equal line is already present
func (m *Model) AddLine(l geometry.Line) error {
	if !m.lines.TryAdd(l.Clone()) {
		return fmt.Errorf("%w: %v", ErrLineExists, l)
	}
	return nil
}

// AddLinePoints builds a line between a and b and adds it
func (m *Model) AddLinePoints(a, b geometry.Point) error {
	l, err := geometry.NewLine(a, b)
	if err != nil {
		return err
	}
	return m.AddLine(l)
}

func (m *Model) lineIndex(l geometry.Line) (int, error) {
	i, err := m.lines.Search(l)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrLineNotFound, l)
	}
	return i, nil
}

// RemoveLine removes the line equal to l
func (m *Model) RemoveLine(l geometry.Line) error {
	i, err := m.lineIndex(l)
	if err != nil {
		return err
	}
	return m.RemoveLineAt(i)
}

// RemoveLinePoints removes the line between a and b
func (m *Model) RemoveLinePoints(a, b geometry.Point) error {
	l, err := geometry.NewLine(a, b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLineNotFound, err)
	}
	return m.RemoveLine(l)
}

// RemoveLineAt removes the line at index i
func (m *Model) RemoveLineAt(i int) error {
	if err := m.lines.RemoveAt(i); err != nil {
		return fmt.Errorf("%w: %w", ErrLineNotFound, err)
	}
	return nil
}

// ChangeLine replaces the line equal to from with to, without a uniqueness
// check
func (m *Model) ChangeLine(from, to geometry.Line) error {
	i, err := m.lineIndex(from)
	if err != nil {
		return err
	}
	return m.ChangeLineAt(i, to)
}

// ChangeLineAt replaces the line at index i with to
func (m *Model) ChangeLineAt(i int, to geometry.Line) error {
	if err := m.lines.Group.Change(i, to.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrLineNotFound, err)
	}
	return nil
}

func (m *Model) editLine(i int, edit func(l *geometry.Line) error) error {
	l, err := m.Line(i)
	if err != nil {
		return err
	}
	if err := edit(&l); err != nil {
		return err
	}
	return m.lines.Group.Change(i, l)
}

// ChangeLinePoint replaces the end point from of line l with to
func (m *Model) ChangeLinePoint(l geometry.Line, from, to geometry.Point) error {
	i, err := m.lineIndex(l)
	if err != nil {
		return err
	}
	return m.ChangeLineAtPoint(i, from, to)
}

// ChangeLinePointAt replaces end point number point (0-1) of line l with to
func (m *Model) ChangeLinePointAt(l geometry.Line, point int, to geometry.Point) error {
	i, err := m.lineIndex(l)
	if err != nil {
		return err
	}
	return m.ChangeLineAtPointAt(i, point, to)
}

// ChangeLineAtPoint replaces the end point from of the line at index i
func (m *Model) ChangeLineAtPoint(i int, from, to geometry.Point) error {
	return m.editLine(i, func(l *geometry.Line) error {
		return l.ChangePoint(from, to)
	})
}

// ChangeLineAtPointAt replaces end point number point (0-1) of the line at
// index i
func (m *Model) ChangeLineAtPointAt(i, point int, to geometry.Point) error {
	if point < 0 || point >= geometry.LinePoints {
		return fmt.Errorf("%w: line point index %d", ErrPointNotFound, point)
	}
	return m.editLine(i, func(l *geometry.Line) error {
		return l.ChangePointAt(point, to)
	})
}

// ClearLines removes every line
func (m *Model) ClearLines() {
	m.lines.Clear()
}
