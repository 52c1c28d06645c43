// Package debounce delays a value until its input settles.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the last pushed value once no new value arrived for delay.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	value   T
	pending bool
	gen     uint64
	stopped bool
}

// New creates a debouncer calling fn with the settled value.
// fn runs on the timer goroutine, or on the caller's goroutine for Flush.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Push replaces the pending value and restarts the delay.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.value = v
	d.pending = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush delivers the pending value immediately. Reports whether one was delivered.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	v, ok := d.takeLocked()
	d.mu.Unlock()

	if ok {
		d.fn(v)
	}
	return ok
}

// Stop drops the pending value. Later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.takeLocked()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Pending reports whether a value is waiting for delivery.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	v, ok := d.takeLocked()
	d.mu.Unlock()

	if ok {
		d.fn(v)
	}
}

func (d *Debouncer[T]) takeLocked() (T, bool) {
	var zero T
	if !d.pending {
		return zero, false
	}
	v := d.value
	d.value = zero
	d.pending = false
	d.gen++
	return v, true
}
