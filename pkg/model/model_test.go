package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomodel/pkg/collection"
	"github.com/philipparndt/gomodel/pkg/geometry"
)

func pt(x, y, z float64) geometry.Point {
	return geometry.NewPoint(x, y, z)
}

func face(t *testing.T, a, b, c geometry.Point) geometry.Face {
	t.Helper()
	f, err := geometry.NewFace(a, b, c)
	require.NoError(t, err)
	return f
}

func line(t *testing.T, a, b geometry.Point) geometry.Line {
	t.Helper()
	l, err := geometry.NewLine(a, b)
	require.NoError(t, err)
	return l
}

func TestNewModelDefaults(t *testing.T) {
	m := New()
	assert.Equal(t, DefaultName, m.Name)
	assert.Equal(t, DefaultName, m.Description)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0.0, m.BoundingBoxVolume())
}

func TestModelScenario(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFacePoints(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)))
	require.NoError(t, m.AddLinePoints(pt(0, 0, 0), pt(0, 0, 1)))

	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 1, m.LineCount())
	assert.Equal(t, 2, m.ElementCount())
	assert.Equal(t, 5, m.PointCount())
	assert.InDelta(t, 0.5, m.Area(), 1e-10)
	assert.InDelta(t, 1.0, m.Length(), 1e-10)
	assert.InDelta(t, 1.0, m.BoundingBoxVolume(), 1e-10, "the line lifts the flat face into a unit box")
}

func TestModelBoundingBoxVolume(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFacePoints(pt(0, 0, 0), pt(2, 0, 0), pt(0, 3, 0)))
	assert.Equal(t, 0.0, m.BoundingBoxVolume(), "a single flat face has no volume")

	require.NoError(t, m.AddFacePoints(pt(0, 0, 4), pt(2, 0, 4), pt(0, 3, 4)))
	assert.InDelta(t, 24.0, m.BoundingBoxVolume(), 1e-10)
}

func TestModelPointCountIgnoresSharing(t *testing.T) {
	m := New()
	shared := pt(0, 0, 0)
	require.NoError(t, m.AddFacePoints(shared, pt(1, 0, 0), pt(0, 1, 0)))
	require.NoError(t, m.AddFacePoints(shared, pt(1, 0, 0), pt(0, 0, 1)))
	require.NoError(t, m.AddLinePoints(shared, pt(1, 0, 0)))

	assert.Equal(t, 3*m.FaceCount()+2*m.LineCount(), m.PointCount())
	assert.Equal(t, 8, m.PointCount())
	assert.Len(t, m.Points(), 8)
}

func TestModelFaceUniqueness(t *testing.T) {
	m := New()
	f := face(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	require.NoError(t, m.AddFace(f))

	err := m.AddFace(face(t, pt(0, 1, 0), pt(0, 0, 0), pt(1, 0, 0)))
	assert.ErrorIs(t, err, ErrFaceExists, "same corners in another order")
	assert.True(t, m.ContainFace(f))

	err = m.AddFacePoints(pt(0, 0, 0), pt(0, 0, 0), pt(1, 0, 0))
	assert.ErrorIs(t, err, geometry.ErrPointDuplicated)
	assert.Equal(t, 1, m.FaceCount())
}

func TestModelLineUniqueness(t *testing.T) {
	m := New()
	require.NoError(t, m.AddLinePoints(pt(0, 0, 0), pt(1, 1, 1)))
	assert.ErrorIs(t, m.AddLinePoints(pt(1, 1, 1), pt(0, 0, 0)), ErrLineExists)
	assert.True(t, m.ContainLine(line(t, pt(0, 0, 0), pt(1, 1, 1))))
}

func TestModelRemove(t *testing.T) {
	m := New()
	a, b, c := pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)
	require.NoError(t, m.AddFacePoints(a, b, c))
	require.NoError(t, m.AddLinePoints(a, b))

	assert.ErrorIs(t, m.RemoveFacePoints(a, b, pt(9, 9, 9)), ErrFaceNotFound)
	assert.ErrorIs(t, m.RemoveFaceAt(1), ErrFaceNotFound)
	assert.ErrorIs(t, m.RemoveFaceAt(1), collection.ErrIndexOutOfRange)
	require.NoError(t, m.RemoveFacePoints(c, a, b))
	assert.ErrorIs(t, m.RemoveFace(face(t, a, b, c)), ErrFaceNotFound)

	assert.ErrorIs(t, m.RemoveLineAt(-1), ErrLineNotFound)
	assert.ErrorIs(t, m.RemoveLinePoints(a, c), ErrLineNotFound)
	require.NoError(t, m.RemoveLineAt(0))
	assert.True(t, m.IsEmpty())
}

func TestChangeFaceSkipsUniquenessCheck(t *testing.T) {
	m := New()
	f1 := face(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	f2 := face(t, pt(0, 0, 1), pt(1, 0, 1), pt(0, 1, 1))
	require.NoError(t, m.AddFace(f1))
	require.NoError(t, m.AddFace(f2))

	require.NoError(t, m.ChangeFace(f2, f1))
	assert.Equal(t, 2, m.FaceCount())
	got, err := m.Face(1)
	require.NoError(t, err)
	assert.True(t, got.Equal(f1), "the replacement duplicates face 0")

	assert.ErrorIs(t, m.ChangeFace(f2, f1), ErrFaceNotFound)
	assert.ErrorIs(t, m.ChangeFaceAt(2, f2), ErrFaceNotFound)
}

func TestChangeLine(t *testing.T) {
	m := New()
	l1 := line(t, pt(0, 0, 0), pt(1, 0, 0))
	l2 := line(t, pt(0, 0, 0), pt(2, 0, 0))
	require.NoError(t, m.AddLine(l1))

	require.NoError(t, m.ChangeLine(l1, l2))
	assert.InDelta(t, 2.0, m.Length(), 1e-10)
	assert.ErrorIs(t, m.ChangeLine(l1, l2), ErrLineNotFound)
	assert.ErrorIs(t, m.ChangeLineAt(1, l1), ErrLineNotFound)
}

func TestChangeFacePoint(t *testing.T) {
	m := New()
	f := face(t, pt(0, 0, 0), pt(3, 0, 0), pt(0, 4, 0))
	require.NoError(t, m.AddFace(f))

	require.NoError(t, m.ChangeFacePoint(f, pt(3, 0, 0), pt(1, 0, 0)))
	assert.InDelta(t, 2.0, m.Area(), 1e-10)

	require.NoError(t, m.ChangeFaceAtPointAt(0, 2, pt(0, 1, 0)))
	assert.InDelta(t, 0.5, m.Area(), 1e-10)

	moved := face(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	require.NoError(t, m.ChangeFacePointAt(moved, 0, pt(0, 0, 2)))
	assert.False(t, m.ContainFace(moved))

	err := m.ChangeFaceAtPointAt(0, 1, pt(0, 0, 2))
	assert.ErrorIs(t, err, geometry.ErrPointDuplicated, "element errors propagate")

	err = m.ChangeFaceAtPoint(0, pt(7, 7, 7), pt(8, 8, 8))
	assert.ErrorIs(t, err, ErrPointNotFound)

	assert.ErrorIs(t, m.ChangeFacePoint(moved, pt(0, 0, 0), pt(5, 5, 5)), ErrFaceNotFound)
	assert.ErrorIs(t, m.ChangeFaceAtPointAt(4, 0, pt(5, 5, 5)), ErrFaceNotFound)
}

func TestChangeFacePointIndexThreeFails(t *testing.T) {
	faces := [][3]geometry.Point{
		{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)},
		{pt(-1, 2, 3), pt(4, 5, 6), pt(7, 8, -9)},
		{pt(0.5, 0.5, 0.5), pt(1e6, 0, 0), pt(0, 0, -1e-6)},
	}
	for _, v := range faces {
		m := New()
		f := face(t, v[0], v[1], v[2])
		require.NoError(t, m.AddFace(f))

		assert.ErrorIs(t, m.ChangeFaceAtPointAt(0, 3, pt(9, 9, 9)), ErrPointNotFound)
		assert.ErrorIs(t, m.ChangeFacePointAt(f, 3, pt(9, 9, 9)), ErrPointNotFound)
		assert.True(t, m.ContainFace(f), "failed change leaves the face untouched")
	}
}

func TestChangeLinePoint(t *testing.T) {
	m := New()
	l := line(t, pt(0, 0, 0), pt(1, 0, 0))
	require.NoError(t, m.AddLine(l))

	assert.ErrorIs(t, m.ChangeLineAtPointAt(0, 2, pt(3, 0, 0)), ErrPointNotFound)
	assert.ErrorIs(t, m.ChangeLinePointAt(l, 2, pt(3, 0, 0)), ErrPointNotFound)

	require.NoError(t, m.ChangeLinePoint(l, pt(1, 0, 0), pt(3, 0, 0)))
	assert.InDelta(t, 3.0, m.Length(), 1e-10)

	require.NoError(t, m.ChangeLineAtPoint(0, pt(0, 0, 0), pt(1, 0, 0)))
	assert.InDelta(t, 2.0, m.Length(), 1e-10)

	require.NoError(t, m.ChangeLineAtPointAt(0, 1, pt(1, 0, 5)))
	assert.InDelta(t, 5.0, m.Length(), 1e-10)
}

func TestModelClear(t *testing.T) {
	m := New()
	m.Name = "box"
	require.NoError(t, m.AddFacePoints(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)))
	require.NoError(t, m.AddLinePoints(pt(0, 0, 0), pt(1, 0, 0)))

	m.ClearFaces()
	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 1, m.LineCount())

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "box", m.Name)
}

func TestModelCloneIsDeep(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFacePoints(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)))
	require.NoError(t, m.AddLinePoints(pt(0, 0, 0), pt(1, 0, 0)))

	c := m.Clone()
	require.True(t, c.Equal(m))

	require.NoError(t, c.ChangeFaceAtPointAt(0, 0, pt(0, 0, 9)))
	require.NoError(t, c.ChangeLineAtPointAt(0, 1, pt(0, 0, 9)))
	c.Name = "copy"

	assert.False(t, c.Equal(m))
	assert.InDelta(t, 0.5, m.Area(), 1e-10)
	assert.InDelta(t, 1.0, m.Length(), 1e-10)
	assert.Equal(t, DefaultName, m.Name)

	faces := m.Faces()
	require.NoError(t, faces[0].ChangePointAt(0, pt(4, 4, 4)))
	assert.InDelta(t, 0.5, m.Area(), 1e-10, "Faces returns copies")
}

func TestModelEqualIgnoresOrder(t *testing.T) {
	f1 := face(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	f2 := face(t, pt(0, 0, 1), pt(1, 0, 1), pt(0, 1, 1))

	a := NewFrom([]geometry.Face{f1, f2}, nil)
	b := NewFrom([]geometry.Face{f2, f1, f2}, nil)
	assert.Equal(t, 2, b.FaceCount(), "constructor keeps repeats once")
	assert.True(t, a.Equal(b))

	b.Name = "other"
	assert.True(t, a.Equal(b), "name is not part of equality")
}

func TestModelString(t *testing.T) {
	m := New()
	require.NoError(t, m.AddLinePoints(pt(0, 0, 0), pt(1, 0, 0)))
	assert.Equal(t, "EMPTY: EMPTY\nfaces (0):\nlines (1):\n  0: {(0, 0, 0), (1, 0, 0)}\n", m.String())
}
