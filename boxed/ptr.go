package boxed

import (
	"github.com/polyvalue/poly"
	"github.com/polyvalue/poly/errors"
)

// Ptr is an owning box over a polymorphic object, viewed as T. T is normally
// an interface type or a pointer type; the zero Ptr is empty and ready for
// use.
//
// A Ptr holds a cached observer (for branchless access) plus a control block
// that really owns the object. Exactly one Ptr owns a given object at a
// time: Clone duplicates the object through its bound duplication strategy,
// and the control-block chain is never shared between boxes.
//
// Go has no destructors, so ownership ends explicitly: Destroy runs the
// object's release strategy, Release transfers the object out instead.
type Ptr[T any] struct {
	obs T
	cb  block[T]
}

// New adopts the already-allocated object u, viewed as T. A nil u yields an
// empty box. The default duplication strategy (shallow value copy of U) and
// an empty release strategy are bound to U at this call site.
//
// U must be the object's concrete type: binding an interface-typed slot
// would duplicate the reference instead of the object, so every constructor
// rejects it as a construction error.
func New[T any, U any](u *U) (Ptr[T], error) {
	if u == nil {
		return Ptr[T]{}, nil
	}
	if isInterface[U]() {
		return Ptr[T]{}, errors.AliasedConstruction(typeName[U]())
	}
	return NewWith[T](u, poly.DefaultCopy[U](), nil)
}

// NewWith adopts u with an explicit duplication strategy and release
// strategy. drop may be nil when the object needs no cleanup.
func NewWith[T any, U any](u *U, copy poly.CopyFunc[U], drop poly.DropFunc[U]) (Ptr[T], error) {
	if u == nil {
		return Ptr[T]{}, nil
	}
	if copy == nil {
		return Ptr[T]{}, errors.InvalidInput(errors.PhaseConstruct, "nil duplication strategy")
	}
	if isInterface[U]() {
		return Ptr[T]{}, errors.AliasedConstruction(typeName[U]())
	}
	obs, ok := any(u).(T)
	if !ok {
		return Ptr[T]{}, errors.NotAssignable(errors.PhaseConstruct, typeName[*U](), typeName[T]())
	}
	return Ptr[T]{obs: obs, cb: &ownedBlock[T, U]{p: u, copy: copy, drop: drop}}, nil
}

// Make constructs a box in place around the value v, avoiding a separate
// adoption step. The object is embedded in the box's own control block.
func Make[T any, U any](v U) (Ptr[T], error) {
	if isInterface[U]() {
		return Ptr[T]{}, errors.AliasedConstruction(typeName[U]())
	}
	return MakeWith[T](v, poly.DefaultCopy[U](), nil)
}

// MakeWith is Make with explicit duplication and release strategies.
func MakeWith[T any, U any](v U, copy poly.CopyFunc[U], drop poly.DropFunc[U]) (Ptr[T], error) {
	if copy == nil {
		return Ptr[T]{}, errors.InvalidInput(errors.PhaseConstruct, "nil duplication strategy")
	}
	if isInterface[U]() {
		return Ptr[T]{}, errors.AliasedConstruction(typeName[U]())
	}
	b := &directBlock[T, U]{u: v, copy: copy, drop: drop}
	obs, ok := any(&b.u).(T)
	if !ok {
		return Ptr[T]{}, errors.NotAssignable(errors.PhaseConstruct, typeName[*U](), typeName[T]())
	}
	return Ptr[T]{obs: obs, cb: b}, nil
}

// MakePooled constructs a box whose object lives in a slot acquired from
// pool. Construction, duplication and destruction all route through the
// pool; Release hands the slot to the caller, who becomes responsible for
// returning it.
func MakePooled[T any, U any](pool poly.Pool[U], v U) (Ptr[T], error) {
	return MakePooledWith[T](pool, v, nil)
}

// MakePooledWith is MakePooled with an explicit duplication strategy. The
// strategy produces the duplicate's state; its result is copied into a slot
// acquired from the pool, which is returned if the strategy fails.
func MakePooledWith[T any, U any](pool poly.Pool[U], v U, copy poly.CopyFunc[U]) (Ptr[T], error) {
	if pool == nil {
		return Ptr[T]{}, errors.InvalidInput(errors.PhaseAlloc, "nil pool")
	}
	if isInterface[U]() {
		return Ptr[T]{}, errors.AliasedConstruction(typeName[U]())
	}
	p := pool.Get()
	*p = v
	obs, ok := any(p).(T)
	if !ok {
		pool.Put(p)
		return Ptr[T]{}, errors.NotAssignable(errors.PhaseConstruct, typeName[*U](), typeName[T]())
	}
	return Ptr[T]{obs: obs, cb: &pooledBlock[T, U]{p: p, pool: pool, copy: copy}}, nil
}

// Get returns the owned object viewed as T, or the zero T when empty.
func (p Ptr[T]) Get() T {
	return p.obs
}

// Empty reports whether the box owns nothing.
func (p Ptr[T]) Empty() bool {
	return p.cb == nil
}

// MustGet returns the owned object and panics when the box is empty,
// mirroring the contract of dereferencing a null owning pointer.
func (p Ptr[T]) MustGet() T {
	if p.cb == nil {
		panic("boxed: MustGet on empty box")
	}
	return p.obs
}

// Clone returns a new box owning an independent duplicate of the object,
// with the same dynamic type, built by the duplication strategy bound when
// the object was first boxed. Cloning an empty box yields an empty box.
// On failure the receiver is untouched and no memory is leaked.
func (p Ptr[T]) Clone() (Ptr[T], error) {
	if p.cb == nil {
		return Ptr[T]{}, nil
	}
	cb, err := p.cb.clone()
	if err != nil {
		return Ptr[T]{}, err
	}
	return Ptr[T]{obs: cb.locate(), cb: cb}, nil
}

// Move transfers ownership into the returned box and leaves the receiver
// empty. No duplication is performed; the owned object keeps its identity.
func (p *Ptr[T]) Move() Ptr[T] {
	out := Ptr[T]{obs: p.obs, cb: p.cb}
	p.clear()
	return out
}

// CopyFrom replaces the receiver's object with a duplicate of src's.
// Self-assignment is a no-op. The duplicate is produced before the old
// object is destroyed, so a failed duplication leaves the receiver exactly
// as it was.
func (p *Ptr[T]) CopyFrom(src *Ptr[T]) error {
	if p == src {
		return nil
	}
	if src.cb == nil {
		p.Destroy()
		return nil
	}
	cb, err := src.cb.clone()
	if err != nil {
		return err
	}
	p.Destroy()
	p.cb = cb
	p.obs = cb.locate()
	return nil
}

// MoveFrom destroys the receiver's object, adopts src's, and leaves src
// empty. Self-move is a no-op.
func (p *Ptr[T]) MoveFrom(src *Ptr[T]) {
	if p == src {
		return
	}
	p.Destroy()
	p.obs = src.obs
	p.cb = src.cb
	src.clear()
}

// Release transfers raw ownership of the object to the caller and leaves
// the box empty. The object's release strategy does not run; the caller is
// responsible for the object thereafter. Releasing an empty box returns the
// zero T with no state change.
func (p *Ptr[T]) Release() T {
	if p.cb == nil {
		var zero T
		return zero
	}
	v := p.cb.release()
	p.clear()
	return v
}

// Destroy runs the owned object's release strategy and empties the box.
// Destroying an empty box is a no-op.
func (p *Ptr[T]) Destroy() {
	if p.cb == nil {
		return
	}
	p.cb.destroy()
	p.clear()
}

// Swap exchanges the contents of two boxes.
func (p *Ptr[T]) Swap(q *Ptr[T]) {
	p.obs, q.obs = q.obs, p.obs
	p.cb, q.cb = q.cb, p.cb
}

func (p *Ptr[T]) clear() {
	var zero T
	p.obs = zero
	p.cb = nil
}

// Reset replaces p's object with a freshly adopted u, binding the default
// strategies to U as New does. A nil u empties the box. Resetting to the
// object p already owns is a no-op.
func Reset[T any, U any](p *Ptr[T], u *U) error {
	if u == nil {
		p.Destroy()
		return nil
	}
	if p.cb != nil && any(u) == any(p.obs) {
		return nil
	}
	fresh, err := New[T](u)
	if err != nil {
		return err
	}
	p.MoveFrom(&fresh)
	return nil
}
