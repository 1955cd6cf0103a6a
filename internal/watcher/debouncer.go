// Package watcher reports changes to a presentation file and coalesces
// bursts of change events.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the trailing-edge delay used when none is given.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer runs only the last callback of a burst, once the burst has
// been quiet for the configured duration.
type Debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer returns a Debouncer. A zero duration means DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger (re)schedules callback. Earlier pending callbacks are dropped.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that already fired cannot be stopped; the sequence
		// number keeps its callback from running after a newer Trigger.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce delay.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
