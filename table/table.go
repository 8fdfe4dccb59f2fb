package table

import (
	"sync"

	"go.uber.org/zap"

	"github.com/polyvalue/poly/boxed"
	"github.com/polyvalue/poly/errors"
)

// ErrClosed is returned for operations on a closed table.
var ErrClosed = errors.Closed("table")

// Table stores owned boxes behind integer handles, using slot + freelist
// storage. It is the container side of the library: polymorphic members kept
// by value semantics inside an otherwise plain data structure. Entries are
// single-owner: Insert consumes a box, Remove hands it back out, Drop
// destroys it in place, and Duplicate deep-copies one entry into another.
type Table[T any] struct {
	entries   []entry[T]
	freeList  []Handle
	observers []Observer
	log       *zap.Logger
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry[T any] struct {
	box   boxed.Ptr[T]
	valid bool
}

// Option configures a Table.
type Option func(*config)

type config struct {
	capacity int
	log      *zap.Logger
}

// WithCapacity preallocates slot storage for n entries.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLogger overrides the package logger for one table.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.log = l }
}

// New creates an empty table.
func New[T any](opts ...Option) *Table[T] {
	cfg := config{capacity: 64}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log
	if log == nil {
		log = Logger()
	}
	return &Table[T]{
		entries:  make([]entry[T], 0, cfg.capacity),
		freeList: make([]Handle, 0, 16),
		log:      log,
	}
}

// Insert adopts b's object into the table and returns its handle. The
// source box is consumed (left empty). Inserting an empty box or inserting
// into a closed table fails.
func (t *Table[T]) Insert(b *boxed.Ptr[T]) (Handle, error) {
	if b.Empty() {
		return 0, errors.InvalidInput(errors.PhaseTable, "insert of empty box")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}
	h := t.put(b.Move())
	t.mu.Unlock()

	t.notify(Event{Type: EventCreated, Handle: h, Value: t.view(h)})
	return h, nil
}

// Get returns the object behind h, viewed as T.
func (t *Table[T]) Get(h Handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil {
		var zero T
		return zero, false
	}
	return e.box.Get(), true
}

// Duplicate deep-copies the entry behind h into a new entry and returns the
// new handle. The duplicate has its own independently owned object of the
// same dynamic type.
func (t *Table[T]) Duplicate(h Handle) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}
	e := t.lookup(h)
	if e == nil {
		t.mu.Unlock()
		return 0, errors.NotFound(errors.PhaseTable, "handle")
	}
	clone, err := e.box.Clone()
	if err != nil {
		t.mu.Unlock()
		return 0, err
	}
	nh := t.put(clone)
	t.mu.Unlock()

	t.notify(Event{Type: EventDuplicated, Handle: nh, Value: t.view(nh)})
	return nh, nil
}

// Remove transfers the box behind h out of the table. The caller owns the
// returned box and its object from then on.
func (t *Table[T]) Remove(h Handle) (boxed.Ptr[T], bool) {
	t.mu.Lock()
	e := t.lookup(h)
	if e == nil {
		t.mu.Unlock()
		return boxed.Ptr[T]{}, false
	}
	out := e.box.Move()
	e.valid = false
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventReleased, Handle: h, Value: out.Get()})
	return out, true
}

// Drop destroys the box behind h in place, running its object's release
// strategy.
func (t *Table[T]) Drop(h Handle) bool {
	t.mu.Lock()
	e := t.lookup(h)
	if e == nil {
		t.mu.Unlock()
		return false
	}
	v := e.box.Get()
	e.box.Destroy()
	e.valid = false
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventDropped, Handle: h, Value: v})
	return true
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for i := range t.entries {
		if t.entries[i].valid {
			count++
		}
	}
	return count
}

// Each iterates over all live entries.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.entries {
		if t.entries[i].valid {
			if !fn(Handle(i+1), t.entries[i].box.Get()) {
				break
			}
		}
	}
}

// Clear drops all entries.
func (t *Table[T]) Clear() {
	// Collect handles first to avoid holding the lock during notify.
	var handles []Handle
	t.Each(func(h Handle, _ T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Drop(h)
	}
}

// Close drops all entries and stops accepting operations.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var dropped []Event
	for i := range t.entries {
		if t.entries[i].valid {
			dropped = append(dropped, Event{
				Type:   EventDropped,
				Handle: Handle(i + 1),
				Value:  t.entries[i].box.Get(),
			})
			t.entries[i].box.Destroy()
			t.entries[i].valid = false
		}
	}
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, e := range dropped {
		t.notify(e)
	}
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// put stores b and returns its handle. Caller holds the write lock.
func (t *Table[T]) put(b boxed.Ptr[T]) Handle {
	e := entry[T]{box: b, valid: true}

	if len(t.freeList) > 0 {
		h := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[h-1] = e
		return h
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// lookup returns the live entry behind h, or nil. Caller holds a lock.
func (t *Table[T]) lookup(h Handle) *entry[T] {
	if h == 0 {
		return nil
	}
	idx := int(h) - 1
	if idx >= len(t.entries) {
		return nil
	}
	e := &t.entries[idx]
	if !e.valid {
		return nil
	}
	return e
}

// view returns the current observer view behind h, for event payloads.
func (t *Table[T]) view(h Handle) any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e := t.lookup(h)
	if e == nil {
		return nil
	}
	return e.box.Get()
}

func (t *Table[T]) notify(e Event) {
	t.log.Debug("box lifecycle event",
		zap.String("event", e.Type.String()),
		zap.Uint32("handle", uint32(e.Handle)),
	)

	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnBoxEvent(e)
	}
}
