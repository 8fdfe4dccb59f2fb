// Package mempool provides typed object pools implementing the poly.Pool
// allocator capability. Pool-owned boxes acquire their storage from a pool
// and return it on destruction, so hot clone/destroy cycles stop allocating.
//
// Slots handed back to Put are reused as-is; a slot acquired from Get may
// carry the previous occupant's state until the caller overwrites it.
package mempool

import (
	"sync"
	"sync/atomic"
)

// Pool is a typed object pool over sync.Pool.
type Pool[T any] struct {
	p    *sync.Pool
	gets atomic.Int64
	puts atomic.Int64
}

// New creates a pool that builds fresh slots with ctor when empty.
func New[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

// Get acquires a slot, building one if none is pooled.
func (p *Pool[T]) Get() *T {
	p.gets.Add(1)
	return p.p.Get().(*T)
}

// Put returns a slot for reuse. The slot must not be used afterward.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	p.puts.Add(1)
	p.p.Put(v)
}

// Stats reports the number of Get and Put calls so far. Useful for
// verifying that every acquired slot is eventually returned.
func (p *Pool[T]) Stats() (gets, puts int64) {
	return p.gets.Load(), p.puts.Load()
}
