package boxed

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// Shape / Named form a small view hierarchy for cast tests.

type Shape interface {
	Area() float64
}

type Named interface {
	Name() string
}

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }
func (c *Circle) Name() string  { return "circle" }

type Square struct {
	Side float64
}

func (s *Square) Area() float64 { return s.Side * s.Side }

// ledger owns a slice, so the default shallow copy would share storage
// between copies; its Clone method is the correct duplication strategy.

type ledger struct {
	entries []string
}

func (l *ledger) Clone() *ledger {
	c := &ledger{entries: make([]string, len(l.entries))}
	copy(c.entries, l.entries)
	return c
}

// reporter / counted provide live-object accounting through the bound
// duplication and release strategies, standing in for constructor and
// destructor side effects.

type reporter interface {
	State() int
	SetState(int)
}

type counted struct {
	state int
	live  *atomic.Int64
}

func (c *counted) State() int     { return c.state }
func (c *counted) SetState(v int) { c.state = v }

func countedCopy(p *counted) (*counted, error) {
	p.live.Add(1)
	c := *p
	return &c, nil
}

func countedDrop(p *counted) {
	p.live.Add(-1)
}

// countedBox builds a box over a fresh counted object, raising live by one.
func countedBox(t *testing.T, state int, live *atomic.Int64) Ptr[reporter] {
	t.Helper()
	live.Add(1)
	b, err := NewWith[reporter](&counted{state: state, live: live}, countedCopy, countedDrop)
	require.NoError(t, err)
	return b
}
