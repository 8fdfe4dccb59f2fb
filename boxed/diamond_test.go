package boxed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two base views sharing a common root view, satisfied by one most-derived
// object: the Go rendering of multiple inheritance over a shared virtual
// base. Both base views must reach the shared root state of the same object.

type Versioned interface {
	V() int
}

type SideA interface {
	Versioned
	A() int
}

type SideB interface {
	Versioned
	B() int
}

type Diamond struct {
	v     int
	a     int
	b     int
	value int
}

func (d *Diamond) V() int { return d.v }
func (d *Diamond) A() int { return d.a }
func (d *Diamond) B() int { return d.b }

func newDiamond(value int) *Diamond {
	return &Diamond{v: 42, a: 3, b: 101, value: value}
}

func TestDiamond_BothBaseViews(t *testing.T) {
	d, err := New[*Diamond](newDiamond(7))
	require.NoError(t, err)

	viaA, err := Upcast[SideA](d)
	require.NoError(t, err)
	viaB, err := Upcast[SideB](d)
	require.NoError(t, err)

	assert.Equal(t, 3, viaA.Get().A())
	assert.Equal(t, 42, viaA.Get().V())

	assert.Equal(t, 101, viaB.Get().B())
	assert.Equal(t, 42, viaB.Get().V())
}

func TestDiamond_SharedRootFromOneObject(t *testing.T) {
	d, err := New[*Diamond](newDiamond(7))
	require.NoError(t, err)

	// The move forms keep identity, so both root views must observe the
	// same mutation.
	viaA, err := Upcast[SideA](d)
	require.NoError(t, err)

	root, err := MoveUpcast[Versioned](&viaA)
	require.NoError(t, err)
	assert.Equal(t, 42, root.Get().V())

	root.Get().(*Diamond).v = 43
	assert.Equal(t, 43, root.Get().V())
}

func TestDiamond_CloneKeepsMostDerivedState(t *testing.T) {
	d, err := New[*Diamond](newDiamond(9))
	require.NoError(t, err)

	viaA, err := Upcast[SideA](d)
	require.NoError(t, err)
	c, err := viaA.Clone()
	require.NoError(t, err)

	got, ok := c.Get().(*Diamond)
	require.True(t, ok, "clone through a base view must keep the most-derived type")
	assert.Equal(t, 9, got.value)
	assert.Equal(t, 3, got.a)
	assert.Equal(t, 101, got.b)
	assert.Equal(t, 42, got.v)
	assert.NotSame(t, viaA.Get().(*Diamond), got)
}

func TestDiamond_DowncastAcrossSides(t *testing.T) {
	d, err := New[*Diamond](newDiamond(7))
	require.NoError(t, err)

	viaA, err := Upcast[SideA](d)
	require.NoError(t, err)

	// Cross-cast: from the A view over to the B view.
	viaB, err := DynamicCast[SideB](viaA)
	require.NoError(t, err)
	require.False(t, viaB.Empty())
	assert.Equal(t, 101, viaB.Get().B())
	assert.Equal(t, 42, viaB.Get().V())
}
