// Package poly provides owning, value-semantic boxes over polymorphic data.
//
// A box owns exactly one object behind an interface view. Copying the box
// produces a new, independently owned copy of the underlying object built by
// the object's own duplication strategy, so two boxes never alias the same
// owned object and the object's most-derived type survives copies, casts and
// moves. This is the building block for putting polymorphic members inside
// otherwise value-typed aggregates without losing correct copy/destroy
// behavior.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	poly/            Root package with capability interfaces (CopyFunc,
//	                 DropFunc, Pool, Clonable)
//	├── boxed/       The box handle, its control-block hierarchy, and the
//	                 cast entry points
//	├── table/       Handle table: a container of owned boxes with
//	                 lifecycle observers
//	├── mempool/     Typed object pools backing allocator-aware boxes
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Construct a box over a concrete value, viewed through an interface:
//
//	b, err := boxed.New[Shape](&Circle{Radius: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Destroy()
//
//	c, err := b.Clone() // deep, type-preserving copy
//	fmt.Println(c.Get().Area())
//
// Narrow a box back to a concrete view when needed:
//
//	circle, err := boxed.DynamicCast[*Circle](b)
//	if circle.Empty() {
//	    // b did not hold a *Circle
//	}
//
// # Capabilities
//
// Duplication and destruction are strategies bound when a box is built, not
// properties of the view type. The defaults are a shallow value copy and no
// destructor; both can be replaced per box:
//
//	b, err := boxed.NewWith[Shape](conn,
//	    func(c *Conn) (*Conn, error) { return c.Dial() },
//	    func(c *Conn) { c.Close() })
//
// Allocator-aware boxes route construction, cloning and destruction through
// an injected Pool:
//
//	pool := mempool.New(func() *Circle { return new(Circle) })
//	b, err := boxed.MakePooled[Shape](pool, Circle{Radius: 2})
//
// # Ownership Model
//
// Single-threaded, single-owner: no operation synchronizes, suspends or
// blocks, and exactly one box owns a given object at a time. Callers sharing
// a box across goroutines supply their own synchronization, exactly as for
// any other single-owner value.
package poly
