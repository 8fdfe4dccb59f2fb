package boxed

import (
	"github.com/polyvalue/poly/errors"
)

// Adapter blocks wrap an inner block of a related view type and re-expose it
// under a different one. Cloning an adapter clones the inner block first and
// rebuilds the same adapter around the clone, so the result carries the
// identical adaptation chain and dynamic type. Adapters nest arbitrarily.

// upcastBlock widens a block[U] to the less specific view T. The conversion
// is validated once when the adapter is built; locate never fails afterward.
type upcastBlock[T any, U any] struct {
	inner block[U]
}

func newUpcastBlock[T any, U any](inner block[U]) (*upcastBlock[T, U], error) {
	if _, ok := any(inner.locate()).(T); !ok {
		return nil, errors.NotAssignable(errors.PhaseCast, typeName[U](), typeName[T]())
	}
	return &upcastBlock[T, U]{inner: inner}, nil
}

func (b *upcastBlock[T, U]) clone() (block[T], error) {
	ic, err := b.inner.clone()
	if err != nil {
		return nil, err
	}
	return &upcastBlock[T, U]{inner: ic}, nil
}

func (b *upcastBlock[T, U]) locate() T {
	return any(b.inner.locate()).(T)
}

func (b *upcastBlock[T, U]) release() T {
	return any(b.inner.release()).(T)
}

func (b *upcastBlock[T, U]) destroy() {
	b.inner.destroy()
}

// staticBlock narrows a block[U] to the view T without checking. The caller
// guarantees the owned object's dynamic type satisfies T; a violated
// guarantee panics at locate time. The narrowing is recomputed on every call
// rather than cached, so a clone's fresh object gets its own conversion.
type staticBlock[T any, U any] struct {
	inner block[U]
}

func (b *staticBlock[T, U]) clone() (block[T], error) {
	ic, err := b.inner.clone()
	if err != nil {
		return nil, err
	}
	return &staticBlock[T, U]{inner: ic}, nil
}

func (b *staticBlock[T, U]) locate() T {
	return any(b.inner.locate()).(T)
}

func (b *staticBlock[T, U]) release() T {
	return any(b.inner.release()).(T)
}

func (b *staticBlock[T, U]) destroy() {
	b.inner.destroy()
}

// checkedBlock narrows a block[U] to the view T with a dynamic type test.
// The test runs once at construction and the checked result is cached;
// construction fails instead of producing an adapter with a nil cache.
type checkedBlock[T any, U any] struct {
	inner  block[U]
	cached T
}

func newCheckedBlock[T any, U any](inner block[U]) (*checkedBlock[T, U], bool) {
	v, ok := any(inner.locate()).(T)
	if !ok {
		return nil, false
	}
	return &checkedBlock[T, U]{inner: inner, cached: v}, true
}

func (b *checkedBlock[T, U]) clone() (block[T], error) {
	ic, err := b.inner.clone()
	if err != nil {
		return nil, err
	}
	// The check re-runs against the freshly duplicated object, never the
	// cached value: the clone is a distinct allocation.
	nb, ok := newCheckedBlock[T](ic)
	if !ok {
		ic.destroy()
		return nil, errors.NotAssignable(errors.PhaseClone, typeName[U](), typeName[T]())
	}
	return nb, nil
}

func (b *checkedBlock[T, U]) locate() T {
	return b.cached
}

func (b *checkedBlock[T, U]) release() T {
	// Release through the inner block so the object's own release strategy
	// stays bound, but hand the caller the checked view.
	b.inner.release()
	return b.cached
}

func (b *checkedBlock[T, U]) destroy() {
	b.inner.destroy()
}
