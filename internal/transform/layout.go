package transform

import (
	"math"
	"time"

	"github.com/five82/brevity/internal/grid"
)

// Axis identifies one of the two independently animated offsets.
type Axis int

const (
	// X moves the deck collection horizontally.
	X Axis = iota
	// Y moves the active deck vertically.
	Y
)

func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Speed selects the transition duration of a translate call.
type Speed int64

const (
	// Snap applies the transform instantly.
	Snap Speed = 0
	// Auto animates each axis over its viewport extent divided by the ratio.
	Auto Speed = -1
)

// Millis returns an explicit duration in milliseconds. Non-positive
// values snap.
func Millis(ms int64) Speed {
	if ms <= 0 {
		return Snap
	}
	return Speed(ms)
}

// DefaultRatio is the default animation speed in cells per millisecond.
const DefaultRatio = 0.16

// Layout holds the viewport geometry the transforms are computed from.
type Layout struct {
	Width  int     // viewport width in cells
	Height int     // viewport height in cells
	Ratio  float64 // cells per millisecond
}

// Offset returns the collection (x) and deck (y) offsets that bring pos
// into the viewport.
func (l Layout) Offset(pos grid.Position) (x, y int) {
	return -pos.Deck * l.Width, -pos.Slide * l.Height
}

// Duration returns the transition duration for axis at speed.
func (l Layout) Duration(axis Axis, speed Speed) time.Duration {
	switch {
	case speed == Auto:
		return l.millis(float64(l.extent(axis)))
	case speed > 0:
		return time.Duration(speed) * time.Millisecond
	default:
		return 0
	}
}

// DurationFor returns the explicit speed that covers distance cells at
// the layout ratio.
func (l Layout) DurationFor(distance int) Speed {
	if distance < 0 {
		distance = -distance
	}
	d := l.millis(float64(distance))
	if d <= 0 {
		return Snap
	}
	return Millis(d.Milliseconds())
}

func (l Layout) extent(axis Axis) int {
	if axis == Y {
		return l.Height
	}
	return l.Width
}

func (l Layout) ratio() float64 {
	if l.Ratio <= 0 || math.IsNaN(l.Ratio) || math.IsInf(l.Ratio, 0) {
		return DefaultRatio
	}
	return l.Ratio
}

func (l Layout) millis(distance float64) time.Duration {
	if distance <= 0 {
		return 0
	}
	ms := math.Round(distance / l.ratio())
	return time.Duration(ms) * time.Millisecond
}
