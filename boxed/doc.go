// Package boxed implements the owning box type Ptr and its cast operations.
//
// A Ptr[T] owns exactly one object whose dynamic type satisfies the view T.
// Copying the box (Clone, CopyFrom, the copying casts) duplicates the owned
// object through the duplication strategy bound when the object was first
// boxed, never a strategy resolved from T, so the most-derived type and
// state survive any number of view changes:
//
//	b, _ := boxed.New[Shape](&Circle{Radius: 2})
//	s, _ := boxed.Upcast[Drawable](b)   // still owns a *Circle
//	c, _ := s.Clone()                   // duplicates the *Circle
//
// # Control Blocks
//
// Behind each box sits a control block that owns the object and erases its
// concrete type. Direct blocks embed the object inline (Make), owned blocks
// hold a pointer plus copy/drop strategies (New, NewWith), and pooled blocks
// route allocation through an injected pool (MakePooled). Casts wrap the
// source's block in an adapter block that re-exposes it under the target
// view; adapters nest, and cloning rebuilds the whole chain around a fresh
// duplicate.
//
// # Casts
//
//	Upcast[T](h)       widen, always succeeds for satisfying views
//	DynamicCast[T](h)  narrow with a type test; mismatch yields an empty box
//	StaticCast[T](h)   narrow unchecked; caller guarantees the dynamic type
//	Freeze(h)/Thaw     const-qualification view change
//
// The copying casts duplicate the owned object and never touch their source;
// each has a Move form that consumes the source without duplicating.
//
// # Lifecycle
//
// Go has no destructors, so an owning box ends its object explicitly:
// Destroy runs the bound release strategy, Release transfers the object out
// raw. Overwriting operations (CopyFrom, MoveFrom, Reset) destroy the old
// object before adopting the new one, except that a failed duplication
// leaves the target untouched.
package boxed
