package table

import "sync/atomic"

// Handle is an opaque reference to a box in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for box lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDuplicated
	EventReleased
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDuplicated:
		return "duplicated"
	case EventReleased:
		return "released"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents a box lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives notifications about box lifecycle events.
type Observer interface {
	OnBoxEvent(Event)
}

// Counter is an Observer that tracks the number of live boxes in a table.
// Created and Duplicated raise the count; Released and Dropped lower it.
type Counter struct {
	n atomic.Int64
}

// OnBoxEvent implements Observer.
func (c *Counter) OnBoxEvent(e Event) {
	switch e.Type {
	case EventCreated, EventDuplicated:
		c.n.Add(1)
	case EventReleased, EventDropped:
		c.n.Add(-1)
	}
}

// Live returns the current live-box count.
func (c *Counter) Live() int64 {
	return c.n.Load()
}
