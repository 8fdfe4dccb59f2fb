package boxed

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeze(t *testing.T) {
	var live atomic.Int64
	b := countedBox(t, 5, &live)

	f, err := Freeze(b)
	require.NoError(t, err)
	require.False(t, f.Empty())
	assert.EqualValues(t, 2, live.Load(), "freeze duplicates")
	assert.NotSame(t, b.Get().(*counted), f.Get().(*counted))
	assert.Equal(t, 5, f.Get().State())

	b.Destroy()
	f.Destroy()
	assert.EqualValues(t, 0, live.Load())
}

func TestMoveFreeze_ThenMoveThaw_KeepsIdentity(t *testing.T) {
	var live atomic.Int64
	b := countedBox(t, 5, &live)
	before := b.Get()

	f := MoveFreeze(&b)
	assert.True(t, b.Empty())
	assert.Same(t, before.(*counted), f.Get().(*counted))
	assert.EqualValues(t, 1, live.Load())

	m := f.MoveThaw()
	assert.True(t, f.Empty())
	assert.Same(t, before.(*counted), m.Get().(*counted))
	assert.EqualValues(t, 1, live.Load())

	m.Destroy()
	assert.EqualValues(t, 0, live.Load())
}

func TestFrozen_ThawDuplicates(t *testing.T) {
	var live atomic.Int64
	b := countedBox(t, 5, &live)

	f := MoveFreeze(&b)
	m, err := f.Thaw()
	require.NoError(t, err)
	assert.EqualValues(t, 2, live.Load())
	assert.NotSame(t, f.Get().(*counted), m.Get().(*counted))

	// The frozen side never observes the thawed copy's mutation.
	m.Get().SetState(99)
	assert.Equal(t, 5, f.Get().State())

	f.Destroy()
	m.Destroy()
	assert.EqualValues(t, 0, live.Load())
}

func TestFrozen_Empty(t *testing.T) {
	var f Frozen[Shape]
	assert.True(t, f.Empty())
	assert.Nil(t, f.Get())
	assert.Panics(t, func() { f.MustGet() })

	c, err := f.Clone()
	require.NoError(t, err)
	assert.True(t, c.Empty())
}
