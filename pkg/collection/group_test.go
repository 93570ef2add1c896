package collection

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type num int

func (n num) Equal(other num) bool { return n == other }

func (n num) String() string { return strconv.Itoa(int(n)) }

func TestGroupAddAndCapacity(t *testing.T) {
	g, err := NewGroup[num](3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Capacity())

	require.NoError(t, g.Add(2))
	assert.Equal(t, 3, g.Len(), "groups allow duplicates")

	err = g.Add(4)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, g.Len())

	_, err = NewGroup[num](1, 1, 2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestGroupZeroValueIsUnbounded(t *testing.T) {
	var g Group[num]
	assert.True(t, g.IsEmpty())
	for i := range 100 {
		require.NoError(t, g.Add(num(i)))
	}
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, Unbounded, g.Capacity())
}

func TestGroupSearch(t *testing.T) {
	g, err := NewGroup[num](Unbounded, 5, 7, 5)
	require.NoError(t, err)

	i, err := g.Search(5)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "search returns the first match")

	i, err = g.Search(7)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = g.Search(9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, g.Contains(9))
}

func TestGroupPositional(t *testing.T) {
	g, err := NewGroup[num](Unbounded, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Insert(1, 9))
	assert.Equal(t, []num{1, 9, 2, 3}, g.Values())

	assert.ErrorIs(t, g.Insert(4, 0), ErrIndexOutOfRange, "insert cannot append")
	assert.ErrorIs(t, g.Insert(-1, 0), ErrIndexOutOfRange)

	require.NoError(t, g.Change(0, 8))
	assert.ErrorIs(t, g.Change(10, 0), ErrIndexOutOfRange)

	require.NoError(t, g.RemoveAt(1))
	assert.Equal(t, []num{8, 2, 3}, g.Values())
	assert.ErrorIs(t, g.RemoveAt(3), ErrIndexOutOfRange)

	require.NoError(t, g.Remove(2))
	assert.ErrorIs(t, g.Remove(2), ErrNotFound)
	assert.Equal(t, []num{8, 3}, g.Values())

	v, err := g.At(1)
	require.NoError(t, err)
	assert.Equal(t, num(3), v)
	_, err = g.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGroupInsertRespectsCapacity(t *testing.T) {
	g, err := NewGroup[num](2, 1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Insert(0, 3), ErrCapacityExceeded)
}

func TestGroupClearKeepsCapacity(t *testing.T) {
	g, err := NewGroup[num](2, 1, 2)
	require.NoError(t, err)
	g.Clear()
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 2, g.Capacity())
}

func TestGroupEqualIsOrdered(t *testing.T) {
	a, _ := NewGroup[num](Unbounded, 1, 2)
	b, _ := NewGroup[num](Unbounded, 2, 1)
	c, _ := NewGroup[num](Unbounded, 1, 2)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))
}

func TestGroupAllStopsEarly(t *testing.T) {
	g, _ := NewGroup[num](Unbounded, 1, 2, 3)
	var seen []int
	for i := range g.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestGroupString(t *testing.T) {
	g, _ := NewGroup[num](Unbounded, 1, 2, 3)
	assert.Equal(t, "{1, 2, 3}", g.String())

	var empty Group[num]
	assert.Equal(t, "{}", empty.String())
}
