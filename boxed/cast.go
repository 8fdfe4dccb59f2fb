package boxed

import (
	"github.com/polyvalue/poly/errors"
)

// Cast entry points produce a new box of a related view type. The copying
// forms never mutate their source: they clone the owned object and wrap the
// clone's control block in the appropriate adapter. The Move forms consume
// the source instead, leaving it empty, and perform no duplication.

// Upcast widens h to the less specific view T, duplicating the owned object.
// The object's most-derived type is preserved: cloning the result still runs
// the duplication strategy bound at the original construction.
func Upcast[T any, U any](h Ptr[U]) (Ptr[T], error) {
	if h.cb == nil {
		return Ptr[T]{}, nil
	}
	tmp, err := h.Clone()
	if err != nil {
		return Ptr[T]{}, err
	}
	out, err := MoveUpcast[T](&tmp)
	if err != nil {
		// The duplicate was already built; run its release strategy before
		// propagating.
		tmp.Destroy()
		return Ptr[T]{}, err
	}
	return out, nil
}

// MoveUpcast widens h to the view T, consuming it. On failure the source is
// left untouched.
func MoveUpcast[T any, U any](h *Ptr[U]) (Ptr[T], error) {
	if h.cb == nil {
		return Ptr[T]{}, nil
	}
	cb, err := newUpcastBlock[T](h.cb)
	if err != nil {
		return Ptr[T]{}, err
	}
	h.clear()
	return Ptr[T]{obs: cb.locate(), cb: cb}, nil
}

// DynamicCast narrows h to the view T after a dynamic type test. A failed
// test is not an error: the result is simply empty, and no duplication is
// performed. A successful test yields a box owning a fresh duplicate, with
// the checked view cached so later access pays nothing.
func DynamicCast[T any, U any](h Ptr[U]) (Ptr[T], error) {
	if h.cb == nil {
		return Ptr[T]{}, nil
	}
	// Pre-test the source before paying for a clone.
	if _, ok := any(h.obs).(T); !ok {
		return Ptr[T]{}, nil
	}
	tmp, err := h.Clone()
	if err != nil {
		return Ptr[T]{}, err
	}
	cb, ok := newCheckedBlock[T](tmp.cb)
	if !ok {
		// The clone has the same dynamic type as the pre-tested source, so
		// this cannot happen with a well-behaved duplication strategy.
		tmp.Destroy()
		return Ptr[T]{}, errors.NotAssignable(errors.PhaseCast, typeName[U](), typeName[T]())
	}
	return Ptr[T]{obs: cb.locate(), cb: cb}, nil
}

// StaticCast narrows h to the view T without checking, duplicating the owned
// object. The caller guarantees the object's dynamic type satisfies T; a
// violated guarantee panics when the narrowed view is first materialized,
// which happens inside the cast itself. No comma-ok test runs anywhere on
// the happy path.
func StaticCast[T any, U any](h Ptr[U]) (Ptr[T], error) {
	if h.cb == nil {
		return Ptr[T]{}, nil
	}
	tmp, err := h.Clone()
	if err != nil {
		return Ptr[T]{}, err
	}
	cb := &staticBlock[T, U]{inner: tmp.cb}
	return Ptr[T]{obs: cb.locate(), cb: cb}, nil
}
