// Package transform drives the two-axis visual transform of a presentation
// and owns the busy flag that gates navigation while an animation runs.
//
// Geometry (Layout) is pure. Applying it is delegated to a Surface, which
// signals completion of each animated axis through a callback. The Driver
// keeps the busy flag set from the moment a translate begins until every
// animated axis has completed.
package transform

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/five82/brevity/internal/grid"
)

// Surface renders the transform. Implementations may call onComplete
// from any goroutine, at most once per ApplyTransform call.
type Surface interface {
	// Target selects the active deck and slide for subsequent calls.
	Target(pos grid.Position)
	// Offset returns the current offset of the targeted element on axis.
	Offset(axis Axis) int
	// ApplyTransform moves axis to offset over d. onComplete is nil for
	// instantaneous moves.
	ApplyTransform(axis Axis, offset int, d time.Duration, onComplete func())
}

// Driver applies translations to a Surface and arbitrates the busy flag.
type Driver struct {
	surface     Surface
	transitions bool

	busy atomic.Bool

	mu      sync.Mutex
	layout  Layout
	gen     uint64
	pending int
}

// NewDriver returns a Driver for surface. When transitions is false every
// translation snaps.
func NewDriver(surface Surface, layout Layout, transitions bool) *Driver {
	return &Driver{surface: surface, layout: layout, transitions: transitions}
}

// Busy reports whether an animation is in flight.
func (d *Driver) Busy() bool {
	return d.busy.Load()
}

// Layout returns the current geometry.
func (d *Driver) Layout() Layout {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layout
}

// SetLayout replaces the geometry used by subsequent translations.
func (d *Driver) SetLayout(l Layout) {
	d.mu.Lock()
	d.layout = l
	d.mu.Unlock()
}

// Release clears the busy flag and abandons outstanding completions.
func (d *Driver) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.pending = 0
	d.busy.Store(false)
}

type move struct {
	axis     Axis
	offset   int
	duration time.Duration
}

// Translate moves the surface to offsets (x, y) for pos. Busy is set
// before the surface is touched, even when already set, so a forced
// re-dispatch supersedes the animation in flight. Axes that do not move
// or have no duration snap without registering a completion. Busy holds
// until every moving axis completes and clears at once when none moves.
func (d *Driver) Translate(pos grid.Position, x, y int, speed Speed) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.busy.Store(true)
	layout := d.layout
	d.mu.Unlock()

	d.surface.Target(pos)

	var snaps, animated []move
	for _, m := range []move{{axis: X, offset: x}, {axis: Y, offset: y}} {
		if d.transitions {
			m.duration = layout.Duration(m.axis, speed)
		}
		if m.duration <= 0 || d.surface.Offset(m.axis) == m.offset {
			snaps = append(snaps, m)
			continue
		}
		animated = append(animated, m)
	}

	d.mu.Lock()
	if gen == d.gen {
		d.pending = len(animated)
	}
	d.mu.Unlock()

	for _, m := range snaps {
		d.surface.ApplyTransform(m.axis, m.offset, 0, nil)
	}
	if len(animated) == 0 {
		d.settle(gen)
		return
	}
	for _, m := range animated {
		d.surface.ApplyTransform(m.axis, m.offset, m.duration, d.completion(gen))
	}
}

func (d *Driver) completion(gen uint64) func() {
	var fired atomic.Bool
	return func() {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.pending--
		done := d.pending <= 0
		d.mu.Unlock()
		if done {
			d.settle(gen)
		}
	}
}

func (d *Driver) settle(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen == d.gen {
		d.busy.Store(false)
	}
}
