package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSetters(t *testing.T) {
	var p Point
	p.SetX(1)
	p.SetY(2)
	p.SetZ(3)
	assert.Equal(t, NewPoint(1, 2, 3), p)

	p.Set(4, 5, 6)
	assert.Equal(t, "(4, 5, 6)", p.String())

	for i, want := range []float64{4, 5, 6} {
		got, err := p.Coord(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := p.Coord(3)
	assert.ErrorIs(t, err, ErrVectorSize)
}

func TestPointEqualityIsExact(t *testing.T) {
	a, b := 0.1, 0.2
	assert.True(t, NewPoint(1, 2, 3).Equal(NewPoint(1, 2, 3)))
	assert.False(t, NewPoint(a+b, 0, 0).Equal(NewPoint(0.3, 0, 0)), "no tolerance")
}

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5.0, NewPoint(0, 0, 0).Distance(NewPoint(3, 4, 0)), 1e-10)
	assert.InDelta(t, 0.0, NewPoint(1, 1, 1).Distance(NewPoint(1, 1, 1)), 1e-10)
}

func TestPointVectorConversion(t *testing.T) {
	p := NewPoint(1, -2, 3)
	assert.Equal(t, p, PointAt(p.Vector3()))
}
