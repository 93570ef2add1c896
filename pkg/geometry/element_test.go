package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomodel/pkg/collection"
)

var (
	origin = NewPoint(0, 0, 0)
	unitX  = NewPoint(1, 0, 0)
	unitY  = NewPoint(0, 1, 0)
	unitZ  = NewPoint(0, 0, 1)
)

func TestElementGrowable(t *testing.T) {
	e, err := NewElement(3, origin)
	require.NoError(t, err)
	assert.False(t, e.IsFixed())

	require.NoError(t, e.AddPoint(unitX))
	require.NoError(t, e.AddPoint(unitY))
	assert.Equal(t, 3, e.CountPoint())

	err = e.AddPoint(unitZ)
	assert.ErrorIs(t, err, ErrPointCountExceeded)
	assert.ErrorIs(t, err, collection.ErrCapacityExceeded)

	require.NoError(t, e.RemovePoint(unitX))
	assert.Equal(t, []Point{origin, unitY}, e.Points())
	assert.ErrorIs(t, e.RemovePoint(unitX), ErrPointNotFound)

	require.NoError(t, e.RemovePointAt(0))
	assert.ErrorIs(t, e.RemovePointAt(5), ErrPointNotFound)

	require.NoError(t, e.ClearPoints())
	assert.Equal(t, 0, e.CountPoint())
	assert.Equal(t, 3, e.Capacity())
}

func TestElementRejectsDuplicatePoints(t *testing.T) {
	_, err := NewElement(collection.Unbounded, origin, origin)
	assert.ErrorIs(t, err, ErrPointDuplicated)

	e, err := NewElement(collection.Unbounded, origin, unitX)
	require.NoError(t, err)
	assert.ErrorIs(t, e.AddPoint(unitX), ErrPointDuplicated)
	assert.ErrorIs(t, e.ChangePointAt(0, unitX), ErrPointDuplicated)
}

func TestFixedElementStructure(t *testing.T) {
	_, err := NewFaceFrom([]Point{origin, unitX})
	assert.ErrorIs(t, err, ErrPointCountMismatch)
	_, err = NewLineFrom([]Point{origin, unitX, unitY})
	assert.ErrorIs(t, err, ErrPointCountMismatch)

	f, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)
	assert.True(t, f.IsFixed())
	assert.Equal(t, FacePoints, f.Capacity())

	assert.ErrorIs(t, f.AddPoint(unitZ), ErrPointCountFixed)
	assert.ErrorIs(t, f.RemovePoint(origin), ErrPointCountFixed)
	assert.ErrorIs(t, f.RemovePointAt(0), ErrPointCountFixed)
	assert.ErrorIs(t, f.ClearPoints(), ErrPointCountFixed)
	assert.Equal(t, 3, f.CountPoint())
}

func TestElementChangePoint(t *testing.T) {
	f, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)

	require.NoError(t, f.ChangePoint(unitX, unitZ))
	assert.Equal(t, []Point{origin, unitZ, unitY}, f.Points())

	assert.ErrorIs(t, f.ChangePoint(unitX, unitZ), ErrPointNotFound)
	assert.ErrorIs(t, f.ChangePointAt(3, unitX), ErrPointNotFound)
	assert.ErrorIs(t, f.ChangePointAt(-1, unitX), ErrPointNotFound)

	require.NoError(t, f.ChangePointAt(0, NewPoint(5, 5, 5)))
	p, err := f.Point(0)
	require.NoError(t, err)
	assert.Equal(t, NewPoint(5, 5, 5), p)
}

func TestElementCopyFrom(t *testing.T) {
	f, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)
	l, err := NewLine(origin, unitZ)
	require.NoError(t, err)

	assert.ErrorIs(t, f.CopyFrom(l.Element), ErrPointCountMismatch)

	g, err := NewFace(unitX, unitY, unitZ)
	require.NoError(t, err)
	require.NoError(t, f.CopyFrom(g.Element))
	assert.True(t, f.Equal(g))

	small, err := NewElement(1)
	require.NoError(t, err)
	assert.ErrorIs(t, small.CopyFrom(l.Element), ErrPointCountExceeded)
}

func TestElementCopyFromSelf(t *testing.T) {
	f, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)

	require.NoError(t, f.CopyFrom(f.Element))
	assert.Equal(t, 3, f.CountPoint())
	assert.Equal(t, [3]Point{origin, unitX, unitY}, f.Vertices())
}

func TestElementCopyFromFailureKeepsPoints(t *testing.T) {
	e, err := NewElement(3, origin, unitX)
	require.NoError(t, err)
	big, err := NewElement(collection.Unbounded, origin, unitX, unitY, unitZ)
	require.NoError(t, err)

	assert.ErrorIs(t, e.CopyFrom(big), ErrPointCountExceeded)
	assert.Equal(t, []Point{origin, unitX}, e.Points())
}

func TestElementPlainCopiesDoNotShareState(t *testing.T) {
	f1, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)

	f2 := f1
	require.NoError(t, f2.ChangePointAt(0, NewPoint(5, 5, 5)))
	assert.Equal(t, [3]Point{origin, unitX, unitY}, f1.Vertices())
	assert.Equal(t, [3]Point{NewPoint(5, 5, 5), unitX, unitY}, f2.Vertices())

	require.NoError(t, f1.ChangePointAt(1, unitZ))
	assert.Equal(t, unitX, f2.Vertices()[1])

	e1, err := NewElement(collection.Unbounded, origin)
	require.NoError(t, err)
	e2 := e1
	require.NoError(t, e2.AddPoint(unitX))
	assert.Equal(t, 1, e1.CountPoint())
	assert.Equal(t, 2, e2.CountPoint())
}

func TestElementEqualityIgnoresOrder(t *testing.T) {
	a, _ := NewFace(origin, unitX, unitY)
	b, _ := NewFace(unitY, origin, unitX)
	c, _ := NewFace(origin, unitX, unitZ)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	l1, _ := NewLine(origin, unitX)
	l2, _ := NewLine(unitX, origin)
	assert.True(t, l1.Equal(l2))
}

func TestElementCloneIsDeep(t *testing.T) {
	a, err := NewFace(origin, unitX, unitY)
	require.NoError(t, err)
	b := a.Clone()

	require.NoError(t, b.ChangePointAt(0, unitZ))
	assert.Equal(t, origin, a.Vertices()[0])
	assert.Equal(t, unitZ, b.Vertices()[0])
	assert.True(t, b.IsFixed())
}

func TestElementString(t *testing.T) {
	l, err := NewLine(origin, unitX)
	require.NoError(t, err)
	assert.Equal(t, "{(0, 0, 0), (1, 0, 0)}", l.String())
}
