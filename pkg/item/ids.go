package item

import (
	"sync"
	"time"
)

// IDGen hands out item IDs. An ID is the current time in milliseconds unless
// that would not exceed the last ID handed out, in which case it is last+1.
type IDGen struct {
	mu   sync.Mutex
	last ID
	now  func() time.Time
}

// NewIDGen returns a generator backed by the wall clock.
func NewIDGen() *IDGen {
	return &IDGen{now: time.Now}
}

// Next returns a fresh ID, strictly greater than every ID returned or observed before.
func (g *IDGen) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now
	if g.now != nil {
		now = g.now
	}
	id := ID(now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an existing ID so later IDs sort after it.
func (g *IDGen) Observe(id ID) {
	g.mu.Lock()
	if id > g.last {
		g.last = id
	}
	g.mu.Unlock()
}
