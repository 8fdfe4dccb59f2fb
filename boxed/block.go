package boxed

import (
	"reflect"

	"github.com/polyvalue/poly"
	"github.com/polyvalue/poly/errors"
)

// block is the type-erased control layer behind a box. A block owns exactly
// one concrete object and exposes it through the view type T only.
//
// clone produces a new block with the identical adaptation chain, holding a
// freshly duplicated object of the same dynamic type. locate returns the
// owned object viewed as T; it is side-effect free and stable between
// mutating operations. release transfers raw ownership to the caller and
// leaves the block unable to locate or destroy the object. destroy runs the
// bound release strategy exactly once; callers never invoke it after release.
type block[T any] interface {
	clone() (block[T], error)
	locate() T
	release() T
	destroy()
}

// ownedBlock owns a separately allocated concrete object together with the
// duplication and release strategies bound at construction. The strategies
// stay bound to the concrete type U regardless of the view the block is later
// seen through.
type ownedBlock[T any, U any] struct {
	p    *U
	copy poly.CopyFunc[U]
	drop poly.DropFunc[U]
}

func (b *ownedBlock[T, U]) clone() (block[T], error) {
	q, err := b.copy(b.p)
	if err != nil {
		return nil, errors.CloneFailed(typeName[*U](), err)
	}
	return &ownedBlock[T, U]{p: q, copy: b.copy, drop: b.drop}, nil
}

func (b *ownedBlock[T, U]) locate() T {
	return any(b.p).(T)
}

func (b *ownedBlock[T, U]) release() T {
	p := b.p
	b.p = nil
	return any(p).(T)
}

func (b *ownedBlock[T, U]) destroy() {
	if b.p == nil {
		return
	}
	if b.drop != nil {
		b.drop(b.p)
	}
	b.p = nil
}

// directBlock embeds the concrete object inline. Backs the in-place factory.
type directBlock[T any, U any] struct {
	u        U
	copy     poly.CopyFunc[U]
	drop     poly.DropFunc[U]
	released bool
}

func (b *directBlock[T, U]) clone() (block[T], error) {
	q, err := b.copy(&b.u)
	if err != nil {
		return nil, errors.CloneFailed(typeName[*U](), err)
	}
	return &directBlock[T, U]{u: *q, copy: b.copy, drop: b.drop}, nil
}

func (b *directBlock[T, U]) locate() T {
	return any(&b.u).(T)
}

func (b *directBlock[T, U]) release() T {
	b.released = true
	return any(&b.u).(T)
}

func (b *directBlock[T, U]) destroy() {
	if b.released {
		return
	}
	b.released = true
	if b.drop != nil {
		b.drop(&b.u)
	}
}

// pooledBlock owns an object whose storage belongs to an injected pool.
// Duplication acquires a fresh slot from the pool and destruction returns
// the slot; release hands the slot to the caller, who becomes responsible
// for returning it.
type pooledBlock[T any, U any] struct {
	p    *U
	pool poly.Pool[U]
	copy poly.CopyFunc[U]
}

func (b *pooledBlock[T, U]) clone() (block[T], error) {
	q := b.pool.Get()
	if b.copy != nil {
		tmp, err := b.copy(b.p)
		if err != nil {
			// Roll back the acquired slot before propagating.
			b.pool.Put(q)
			return nil, errors.CloneFailed(typeName[*U](), err)
		}
		*q = *tmp
	} else {
		*q = *b.p
	}
	return &pooledBlock[T, U]{p: q, pool: b.pool, copy: b.copy}, nil
}

func (b *pooledBlock[T, U]) locate() T {
	return any(b.p).(T)
}

func (b *pooledBlock[T, U]) release() T {
	p := b.p
	b.p = nil
	return any(p).(T)
}

func (b *pooledBlock[T, U]) destroy() {
	if b.p == nil {
		return
	}
	b.pool.Put(b.p)
	b.p = nil
}

func typeName[U any]() string {
	return reflect.TypeOf((*U)(nil)).Elem().String()
}

func isInterface[U any]() bool {
	return reflect.TypeOf((*U)(nil)).Elem().Kind() == reflect.Interface
}
