package boxed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyvalue/poly/mempool"
)

func TestMakePooled(t *testing.T) {
	pool := mempool.New(func() *Circle { return new(Circle) })

	b, err := MakePooled[Shape](pool, Circle{Radius: 2})
	require.NoError(t, err)
	require.False(t, b.Empty())
	assert.Equal(t, 2.0, b.Get().(*Circle).Radius)

	gets, puts := pool.Stats()
	assert.EqualValues(t, 1, gets)
	assert.EqualValues(t, 0, puts)

	b.Destroy()
	gets, puts = pool.Stats()
	assert.EqualValues(t, 1, gets)
	assert.EqualValues(t, 1, puts, "destroy returns the slot")
}

func TestMakePooled_CloneRoutesThroughPool(t *testing.T) {
	pool := mempool.New(func() *Circle { return new(Circle) })

	b, err := MakePooled[Shape](pool, Circle{Radius: 2})
	require.NoError(t, err)

	c, err := b.Clone()
	require.NoError(t, err)
	assert.NotSame(t, b.Get().(*Circle), c.Get().(*Circle))
	assert.Equal(t, 2.0, c.Get().(*Circle).Radius)

	gets, _ := pool.Stats()
	assert.EqualValues(t, 2, gets, "clone acquires its slot from the pool")

	b.Destroy()
	c.Destroy()
	gets, puts := pool.Stats()
	assert.Equal(t, gets, puts, "every slot back in the pool")
}

func TestMakePooled_ReleaseHandsSlotToCaller(t *testing.T) {
	pool := mempool.New(func() *Circle { return new(Circle) })

	b, err := MakePooled[Shape](pool, Circle{Radius: 2})
	require.NoError(t, err)

	got := b.Release()
	require.NotNil(t, got)
	assert.True(t, b.Empty())

	_, puts := pool.Stats()
	assert.EqualValues(t, 0, puts, "released slot belongs to the caller now")

	pool.Put(got.(*Circle))
	_, puts = pool.Stats()
	assert.EqualValues(t, 1, puts)
}

func TestMakePooledWith_FailedCloneRollsBack(t *testing.T) {
	pool := mempool.New(func() *Circle { return new(Circle) })
	boom := fmt.Errorf("no duplicate today")

	b, err := MakePooledWith[Shape](pool, Circle{Radius: 2},
		func(*Circle) (*Circle, error) { return nil, boom })
	require.NoError(t, err)

	_, err = b.Clone()
	require.Error(t, err)

	gets, puts := pool.Stats()
	assert.EqualValues(t, 2, gets)
	assert.EqualValues(t, 1, puts, "the slot acquired for the failed clone must be returned")

	assert.False(t, b.Empty(), "a failed clone leaves the source intact")
	b.Destroy()
}
