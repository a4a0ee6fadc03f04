// Package debounce provides a trailing-edge debouncer: rapid updates to a
// value are folded into a single settlement once input has been quiet for
// the full window.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[T comparable] struct {
	mu       sync.Mutex
	window   time.Duration
	timer    *time.Timer
	raw      T
	settled  T
	pending  bool
	stopped  bool
	onSettle func(T)
}

// New creates a debouncer with the given quiescence window. onSettle is
// invoked at most once per quiet period, with the final raw value; it may
// be nil.
func New[T comparable](window time.Duration, onSettle func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		window:   window,
		onSettle: onSettle,
	}
}

// Set records a new raw value and restarts the wait window. Setting a
// value equal to the already-settled one cancels any pending settlement
// instead of scheduling a redundant one.
func (d *Debouncer[T]) Set(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.raw = value
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if value == d.settled {
		d.pending = false
		return
	}

	d.pending = true
	d.timer = time.AfterFunc(d.window, d.settle)
}

func (d *Debouncer[T]) settle() {
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return
	}
	d.settled = d.raw
	d.pending = false
	d.timer = nil
	value := d.settled
	cb := d.onSettle
	d.mu.Unlock()

	if cb != nil {
		cb(value)
	}
}

// Raw returns the latest value passed to Set.
func (d *Debouncer[T]) Raw() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Settled returns the last value that survived a full quiet window.
func (d *Debouncer[T]) Settled() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Pending reports whether a settlement is currently waiting on the window.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop cancels any pending timer and prevents all future settlements.
// Safe to call more than once.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
