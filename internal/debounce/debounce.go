// Package debounce delays a callback until its trigger has been quiet for a
// fixed interval. Every trigger cancels the previous one.
package debounce

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the Debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs only the most recently triggered callback, and only once the
// delay has passed without another trigger.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	afterFunc AfterFunc
	timer     Timer
	// generation identifies the latest trigger. A timer whose generation is
	// stale when it fires does nothing.
	generation uint64
	pending    func()
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithAfterFunc replaces the scheduler, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(d *Debouncer) {
		d.afterFunc = fn
	}
}

// New creates a Debouncer with the given quiet interval.
func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		delay:     delay,
		afterFunc: stdAfterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the quiet interval.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger replaces any pending callback with fn and restarts the delay.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.generation++
	generation := d.generation
	d.pending = fn
	d.timer = d.afterFunc(d.delay, func() {
		d.fire(generation)
	})
}

func (d *Debouncer) fire(generation uint64) {
	d.mu.Lock()
	if generation != d.generation || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush runs the pending callback right away on the calling goroutine and
// reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.pending == nil {
		d.mu.Unlock()
		return false
	}
	d.stopLocked()
	d.generation++
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	fn()
	return true
}

// Pending reports whether a callback is waiting for its delay.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop drops the pending callback without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.generation++
	d.pending = nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
