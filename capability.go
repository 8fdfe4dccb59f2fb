package poly

// CopyFunc duplicates a concrete value, returning a pointer to a new,
// independently owned object with equivalent state. The source is not
// modified.
type CopyFunc[U any] func(*U) (*U, error)

// DropFunc releases a concrete value once its owner is done with it.
type DropFunc[U any] func(*U)

// Pool is the allocator capability. Construction, duplication and
// destruction of pool-owned objects route through Get/Put instead of the
// default allocation mechanism. Pools are injected explicitly at the call
// site, never ambient.
type Pool[U any] interface {
	Get() *U
	Put(*U)
}

// Clonable is the interface for types with a type-preserving Clone method.
// Clone returns a new copy of the receiver; K is normally a pointer type.
type Clonable[K any] interface {
	Clone() K
}

// DefaultCopy returns the default duplication strategy for U: a shallow
// value copy into a fresh allocation. Types holding interior pointers that
// must not be shared between copies should supply their own CopyFunc.
func DefaultCopy[U any]() CopyFunc[U] {
	return func(p *U) (*U, error) {
		c := *p
		return &c, nil
	}
}

// CopyFromClone adapts a Clonable implementation into a CopyFunc.
func CopyFromClone[U any, PU interface {
	Clonable[PU]
	*U
}]() CopyFunc[U] {
	return func(p *U) (*U, error) {
		return PU(p).Clone(), nil
	}
}
