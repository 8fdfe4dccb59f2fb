// Package table provides a handle table for owned polymorphic boxes.
//
// A Table keeps boxes behind opaque integer handles, preserving the boxes'
// single-owner value semantics inside a container: inserting consumes the
// source box, removing hands ownership back out, and duplicating an entry
// deep-copies its object.
//
// # Handle Table
//
// The Table maps integer handles to owned boxes:
//
//	shapes := table.New[Shape]()
//
//	// Adopt a box, get a handle (the box is consumed)
//	b, _ := boxed.New[Shape](&Circle{Radius: 2})
//	h, _ := shapes.Insert(&b)
//
//	// Observe the object by handle
//	s, ok := shapes.Get(h)
//
//	// Deep-copy one entry
//	h2, _ := shapes.Duplicate(h)
//
//	// Take ownership back out, or destroy in place
//	box, ok := shapes.Remove(h)
//	shapes.Drop(h2)
//
// # Lifecycle Events
//
// Observers receive Created/Duplicated/Released/Dropped events; the Counter
// observer keeps a live-object count:
//
//	var c table.Counter
//	shapes.Subscribe(&c)
//	...
//	fmt.Println(c.Live())
//
// Events also log through the package's zap logger (no-op by default; see
// SetLogger).
package table
