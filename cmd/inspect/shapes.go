package main

import "fmt"

// Shape is the polymorphic view the demo table holds its objects through.
type Shape interface {
	Area() float64
}

// Named is a narrower view only some shapes satisfy, used to demonstrate
// checked downcasts from the table.
type Named interface {
	Name() string
}

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 { return 3.14159265 * c.Radius * c.Radius }
func (c *Circle) Name() string  { return fmt.Sprintf("circle r=%.2f", c.Radius) }

type Rect struct {
	W, H float64
}

func (r *Rect) Area() float64 { return r.W * r.H }

func describe(s Shape) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	switch v := s.(type) {
	case *Rect:
		return fmt.Sprintf("rect %gx%g", v.W, v.H)
	default:
		return fmt.Sprintf("%T", s)
	}
}
