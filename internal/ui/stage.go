package ui

import (
	"math"
	"time"

	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/transform"
)

// track is one animated offset.
type track struct {
	from, to float64
	start    time.Time
	duration time.Duration
	done     func()
}

func (t *track) value(now time.Time) float64 {
	if t.duration <= 0 {
		return t.to
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		return t.to
	}
	if p < 0 {
		p = 0
	}
	return t.from + (t.to-t.from)*easeInOut(p)
}

func (t *track) animating() bool {
	return t.duration > 0
}

// finish ends the animation if its time is up and returns the completion
// callback to run, if any.
func (t *track) finish(now time.Time) func() {
	if t.duration <= 0 || now.Sub(t.start) < t.duration {
		return nil
	}
	done := t.done
	t.from, t.duration, t.done = t.to, 0, nil
	return done
}

func (t *track) set(to float64, now time.Time, d time.Duration, done func()) {
	if d <= 0 || done == nil {
		*t = track{from: to, to: to}
		return
	}
	*t = track{from: t.value(now), to: to, start: now, duration: d, done: done}
}

func easeInOut(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

// Stage is the transform.Surface of the terminal UI: one horizontal offset
// for the deck collection and one vertical offset per deck. Animations
// advance on frame ticks delivered to the bubbletea event loop.
type Stage struct {
	target grid.Position
	x      track
	y      []track
	now    func() time.Time
}

// NewStage returns a Stage for decks decks.
func NewStage(decks int) *Stage {
	s := &Stage{now: time.Now}
	s.Reset(decks)
	return s
}

// Reset drops every animation and sizes the stage for decks decks.
func (s *Stage) Reset(decks int) {
	s.target = grid.Position{}
	s.x = track{}
	s.y = make([]track, max(decks, 0))
}

// Target implements transform.Surface.
func (s *Stage) Target(pos grid.Position) {
	s.target = pos
}

// Offset implements transform.Surface. It reports the offset the axis is
// heading to.
func (s *Stage) Offset(axis transform.Axis) int {
	if t := s.track(axis); t != nil {
		return int(math.Round(t.to))
	}
	return 0
}

// ApplyTransform implements transform.Surface.
func (s *Stage) ApplyTransform(axis transform.Axis, offset int, d time.Duration, onComplete func()) {
	t := s.track(axis)
	if t == nil {
		return
	}
	t.set(float64(offset), s.now(), d, onComplete)
}

// X returns the rendered collection offset at now.
func (s *Stage) X(now time.Time) int {
	return int(math.Round(s.x.value(now)))
}

// Y returns the rendered offset of deck at now.
func (s *Stage) Y(deck int, now time.Time) int {
	if deck < 0 || deck >= len(s.y) {
		return 0
	}
	return int(math.Round(s.y[deck].value(now)))
}

// Animating reports whether any offset is still moving.
func (s *Stage) Animating() bool {
	if s.x.animating() {
		return true
	}
	for i := range s.y {
		if s.y[i].animating() {
			return true
		}
	}
	return false
}

// Advance finishes every animation that is due at now and runs their
// completion callbacks. It reports whether anything is still moving.
func (s *Stage) Advance(now time.Time) bool {
	var done []func()
	if f := s.x.finish(now); f != nil {
		done = append(done, f)
	}
	for i := range s.y {
		if f := s.y[i].finish(now); f != nil {
			done = append(done, f)
		}
	}
	for _, f := range done {
		f()
	}
	return s.Animating()
}

func (s *Stage) track(axis transform.Axis) *track {
	if axis == transform.X {
		return &s.x
	}
	if s.target.Deck < 0 || s.target.Deck >= len(s.y) {
		return nil
	}
	return &s.y[s.target.Deck]
}
