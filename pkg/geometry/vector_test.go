package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, comps ...float64) Vector[float64] {
	t.Helper()
	v, err := NewVectorOf(len(comps), comps...)
	require.NoError(t, err)
	return v
}

func TestNewVectorOfChecksLength(t *testing.T) {
	_, err := NewVectorOf(3, 1.0, 2.0)
	assert.ErrorIs(t, err, ErrVectorSize)

	v := NewVector[float32](4)
	assert.Equal(t, 4, v.Dim())
	assert.Equal(t, []float32{0, 0, 0, 0}, v.Components())
}

func TestVectorComponentAccess(t *testing.T) {
	v := vec(t, 1, 2)

	require.NoError(t, v.Set(1, 5))
	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	assert.ErrorIs(t, v.Set(2, 0), ErrVectorSize)
	assert.ErrorIs(t, v.Set(-1, 0), ErrVectorSize)
	_, err = v.At(2)
	assert.ErrorIs(t, err, ErrVectorSize)

	assert.ErrorIs(t, v.SetAll(1, 2, 3), ErrVectorSize)
	require.NoError(t, v.SetAll(7, 8))
	assert.Equal(t, "(7, 8)", v.String())
}

func TestVectorArithmetic(t *testing.T) {
	a := vec(t, 1, 2, 3)
	b := vec(t, 4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(vec(t, 5, 7, 9)))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.Equal(vec(t, 3, 3, 3)))

	assert.True(t, a.Scale(2).Equal(vec(t, 2, 4, 6)))
	assert.True(t, a.Equal(vec(t, 1, 2, 3)), "value forms leave operands untouched")

	_, err = a.Add(vec(t, 1, 2))
	assert.ErrorIs(t, err, ErrVectorSize)
}

func TestVectorInPlaceArithmetic(t *testing.T) {
	a := vec(t, 1, 1)
	require.NoError(t, a.AddAssign(vec(t, 2, 3)))
	assert.True(t, a.Equal(vec(t, 3, 4)))

	require.NoError(t, a.SubAssign(vec(t, 1, 1)))
	assert.True(t, a.Equal(vec(t, 2, 3)))

	a.ScaleAssign(-1)
	assert.True(t, a.Equal(vec(t, -2, -3)))

	assert.ErrorIs(t, a.AddAssign(vec(t, 1)), ErrVectorSize)
}

func TestVectorCross(t *testing.T) {
	c, err := vec(t, 0, 1, 0).Cross(vec(t, 0, 0, 1))
	require.NoError(t, err)
	assert.True(t, c.Equal(vec(t, 1, 0, 0)))

	_, err = vec(t, 1, 0).Cross(vec(t, 0, 1))
	assert.ErrorIs(t, err, ErrCrossProductNotDefined)
}

func TestVectorNorms(t *testing.T) {
	v := vec(t, 3, 0, -4)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"L0", v.L0(), 2},
		{"L1", v.L1(), 7},
		{"L2", v.L2(), 5},
		{"LInf", v.LInf(), 4},
		{"Module", v.Module(), 5},
		{"Length", v.Length(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-10)
		})
	}

	for p, want := range []float64{2, 7, 5} {
		got, err := v.L(p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-10)
	}
	_, err := v.L(3)
	assert.ErrorIs(t, err, ErrLpNormNotDefined)

	assert.Zero(t, NewVector[float64](0).LInf())
}

func TestVectorCopiesDoNotShareComponents(t *testing.T) {
	v := vec(t, 1, 2, 3)

	w := v
	require.NoError(t, w.Set(0, 9))
	assert.Equal(t, []float64{1, 2, 3}, v.Components())
	assert.Equal(t, []float64{9, 2, 3}, w.Components())

	u := v
	require.NoError(t, u.AddAssign(vec(t, 1, 1, 1)))
	u.ScaleAssign(2)
	assert.Equal(t, []float64{1, 2, 3}, v.Components())
	assert.Equal(t, []float64{4, 6, 8}, u.Components())
}

func TestVectorEqualIsExact(t *testing.T) {
	a, b := 0.1, 0.2
	assert.False(t, vec(t, a+b).Equal(vec(t, 0.3)))
	assert.False(t, vec(t, 1, 2).Equal(vec(t, 1, 2, 0)))
}
