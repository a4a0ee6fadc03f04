// Package notify holds the transient toast notification for a client.
// One toast is visible at a time; it auto-dismisses after a fixed
// duration or on explicit close, whichever comes first.
package notify

import (
	"sync"
	"time"
)

const DefaultTTL = 3 * time.Second

type Toast struct {
	Message string `json:"message"`
	Type    string `json:"type"` // success or error
}

type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Toast
	timer   *time.Timer
	stopped bool
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Push replaces the visible toast and restarts the dismiss timer.
func (c *Center) Push(message, typ string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.current = &Toast{Message: message, Type: typ}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.ttl, c.expire)
}

func (c *Center) expire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	c.timer = nil
}

// Dismiss closes the toast early. Safe when nothing is shown.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Current returns the visible toast, or nil.
func (c *Center) Current() *Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	copied := *c.current
	return &copied
}

// Stop cancels the pending timer and rejects further toasts. Called on
// session teardown so no timer fires afterwards.
func (c *Center) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.current = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
