package boxed

// Frozen is a read-only owning box: the const-qualified view of a Ptr. Go
// has no type qualifiers, so the qualifier change is a surface change only:
// the control-block chain passes through untouched, and ownership and the
// object's dynamic type are preserved. Freezing and thawing follow the cast
// rules: the copying forms duplicate, the Move forms consume.
//
// The restriction is advisory in the same sense a const pointer's is: Frozen
// exposes no mutating operations, but a T that is itself a pointer or
// interface still reaches the object.
type Frozen[T any] struct {
	p Ptr[T]
}

// Freeze returns a read-only box owning a duplicate of h's object.
func Freeze[T any](h Ptr[T]) (Frozen[T], error) {
	c, err := h.Clone()
	if err != nil {
		return Frozen[T]{}, err
	}
	return Frozen[T]{p: c}, nil
}

// MoveFreeze returns a read-only box that takes over h's object, leaving h
// empty.
func MoveFreeze[T any](h *Ptr[T]) Frozen[T] {
	return Frozen[T]{p: h.Move()}
}

// Thaw returns a mutable box owning a duplicate of f's object: the
// const-removal direction.
func (f Frozen[T]) Thaw() (Ptr[T], error) {
	return f.p.Clone()
}

// MoveThaw returns a mutable box that takes over f's object, leaving f
// empty.
func (f *Frozen[T]) MoveThaw() Ptr[T] {
	return f.p.Move()
}

// Get returns the owned object viewed as T, or the zero T when empty.
func (f Frozen[T]) Get() T {
	return f.p.Get()
}

// Empty reports whether the box owns nothing.
func (f Frozen[T]) Empty() bool {
	return f.p.Empty()
}

// MustGet returns the owned object and panics when the box is empty.
func (f Frozen[T]) MustGet() T {
	return f.p.MustGet()
}

// Clone returns a read-only box owning an independent duplicate.
func (f Frozen[T]) Clone() (Frozen[T], error) {
	c, err := f.p.Clone()
	if err != nil {
		return Frozen[T]{}, err
	}
	return Frozen[T]{p: c}, nil
}

// Destroy runs the owned object's release strategy and empties the box.
func (f *Frozen[T]) Destroy() {
	f.p.Destroy()
}
