package boxed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a, err := New[Shape](&Circle{Radius: 1})
	require.NoError(t, err)
	b, err := New[Shape](&Circle{Radius: 1})
	require.NoError(t, err)

	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b), "distinct owned objects compare unequal regardless of state")
	assert.False(t, Equal(b, a))
}

func TestEqual_AcrossViews(t *testing.T) {
	c := &Circle{Radius: 1}
	a, err := New[Shape](c)
	require.NoError(t, err)

	n, err := MoveUpcast[any](&a)
	require.NoError(t, err)

	direct, err := New[*Circle](c)
	require.NoError(t, err)

	// Same object address through different views.
	assert.True(t, Equal(n, direct))
	assert.True(t, Equal(direct, n))
	direct.Release()
}

func TestEqual_EmptySentinel(t *testing.T) {
	var e1, e2 Ptr[Shape]
	a, err := New[Shape](&Circle{Radius: 1})
	require.NoError(t, err)

	assert.True(t, Equal(e1, e2), "two empty boxes are equal")
	assert.False(t, Equal(a, e1))
	assert.False(t, Equal(e1, a))
}

func TestOrdering_MatchesAddressOrder(t *testing.T) {
	a, err := New[Shape](&Circle{Radius: 1})
	require.NoError(t, err)
	b, err := New[Shape](&Circle{Radius: 2})
	require.NoError(t, err)

	// Whatever the allocation order, the relations must be mutually
	// consistent and anti-symmetric in both operand orders.
	if Less(a, b) {
		assert.True(t, LessEqual(a, b))
		assert.True(t, Greater(b, a))
		assert.True(t, GreaterEqual(b, a))
		assert.False(t, Less(b, a))
		assert.Equal(t, -1, Compare(a, b))
		assert.Equal(t, 1, Compare(b, a))
	} else {
		assert.True(t, Greater(a, b))
		assert.True(t, GreaterEqual(a, b))
		assert.True(t, Less(b, a))
		assert.True(t, LessEqual(b, a))
		assert.Equal(t, 1, Compare(a, b))
		assert.Equal(t, -1, Compare(b, a))
	}
}

func TestOrdering_EmptyOrdersFirst(t *testing.T) {
	var e Ptr[Shape]
	a, err := New[Shape](&Circle{Radius: 1})
	require.NoError(t, err)

	assert.True(t, Less(e, a))
	assert.True(t, LessEqual(e, a))
	assert.True(t, Greater(a, e))
	assert.True(t, GreaterEqual(a, e))
	assert.Equal(t, 0, Compare(e, e))
	assert.True(t, LessEqual(e, e))
	assert.True(t, GreaterEqual(e, e))
}
