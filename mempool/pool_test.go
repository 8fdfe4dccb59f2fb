package mempool

import (
	"testing"
)

type slot struct {
	id int
}

func TestPool_GetPut(t *testing.T) {
	built := 0
	p := New(func() *slot {
		built++
		return new(slot)
	})

	a := p.Get()
	if a == nil {
		t.Fatal("Get returned nil")
	}
	a.id = 7
	p.Put(a)

	// The pooled slot may come back with its previous state.
	b := p.Get()
	if b == nil {
		t.Fatal("Get returned nil after Put")
	}

	gets, puts := p.Stats()
	if gets != 2 {
		t.Fatalf("expected 2 gets, got %d", gets)
	}
	if puts != 1 {
		t.Fatalf("expected 1 put, got %d", puts)
	}
	if built < 1 {
		t.Fatal("ctor never ran")
	}
}

func TestPool_PutNil(t *testing.T) {
	p := New(func() *slot { return new(slot) })
	p.Put(nil)

	_, puts := p.Stats()
	if puts != 0 {
		t.Fatalf("nil Put should not count, got %d", puts)
	}
}
