// Package status carries the error messages a UI shows for the collection.
//
// There are two severities. A transient message clears itself after a delay
// and is replaced by any newer transient message. A blocking message stays
// until ClearBlocking, and a UI shows it instead of its normal content.
package status

import (
	"sync"
	"time"
)

// DefaultTransientDelay is how long a transient message stays up.
const DefaultTransientDelay = 3 * time.Second

// State is the pair of active messages. Empty strings mean inactive.
type State struct {
	Transient string
	Blocking  string
}

// Channel holds at most one message of each severity.
type Channel struct {
	delay time.Duration

	mu        sync.Mutex
	state     State
	gen       uint64
	timer     *time.Timer
	listeners map[int]func(State)
	nextID    int
}

// New returns a channel whose transient messages clear after delay. A
// non-positive delay uses DefaultTransientDelay.
func New(delay time.Duration) *Channel {
	if delay <= 0 {
		delay = DefaultTransientDelay
	}
	return &Channel{delay: delay, listeners: make(map[int]func(State))}
}

// Current returns the active messages.
func (c *Channel) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Transient shows msg and (re)starts the clear timer.
func (c *Channel) Transient(msg string) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state.Transient = msg
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() { c.expire(gen) })
	c.mu.Unlock()
	c.notify()
}

// expire clears the transient message set by generation gen. A newer message
// has a newer generation and survives a stale timer.
func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state.Transient = ""
	c.timer = nil
	c.mu.Unlock()
	c.notify()
}

// Blocking shows msg until ClearBlocking.
func (c *Channel) Blocking(msg string) {
	c.mu.Lock()
	c.state.Blocking = msg
	c.mu.Unlock()
	c.notify()
}

// ClearBlocking removes the blocking message.
func (c *Channel) ClearBlocking() {
	c.mu.Lock()
	if c.state.Blocking == "" {
		c.mu.Unlock()
		return
	}
	c.state.Blocking = ""
	c.mu.Unlock()
	c.notify()
}

// Blocked reports whether a blocking message is active.
func (c *Channel) Blocked() bool {
	return c.Current().Blocking != ""
}

// Subscribe registers fn to receive every state change. fn runs on the
// goroutine that caused the change and must not block.
func (c *Channel) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Stop cancels a pending transient clear.
func (c *Channel) Stop() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
}

func (c *Channel) notify() {
	c.mu.Lock()
	st := c.state
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}
