// Package nav owns the presentation cursor and resolves navigation
// requests against the grid.
//
// A Navigator is bound to one presentation instance and is not safe for
// concurrent use: every call is expected to come from the same event loop.
// The busy flag lives in the transform driver, which may be settled from
// other goroutines.
package nav

import (
	"errors"
	"log/slog"

	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/location"
	"github.com/five82/brevity/internal/transform"
)

// Outcome classifies the result of a navigation request.
type Outcome int

const (
	// Accepted means the position changed (or was re-asserted) and the
	// location was published.
	Accepted Outcome = iota
	// Boundary means the request pointed past the edge of the grid.
	Boundary
	// Rejected means an animation was in flight.
	Rejected
	// InvalidInput means the direction or target was not understood.
	InvalidInput
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Boundary:
		return "boundary"
	case Rejected:
		return "rejected"
	case InvalidInput:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result describes a single navigation request.
type Result struct {
	Outcome   Outcome
	Direction Direction
	From      grid.Position
	To        grid.Position
	// Token is the published location, set only for accepted results.
	Token string
}

// Options configures a Navigator.
type Options struct {
	Continuous bool
	Publisher  location.Publisher
	// Observer, when set, is told about every result including no-ops.
	Observer func(Result)
	Logger   *slog.Logger
}

// Navigator holds the cursor, the per-deck slide memory and the driver.
type Navigator struct {
	grid       grid.Grid
	pos        grid.Position
	memory     []int
	continuous bool

	driver    *transform.Driver
	publisher location.Publisher
	observer  func(Result)
	logger    *slog.Logger
}

// New returns a Navigator over g. Call Initialize before navigating.
func New(g grid.Grid, driver *transform.Driver, opts Options) *Navigator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Navigator{
		grid:       g,
		memory:     make([]int, g.Decks()),
		continuous: opts.Continuous,
		driver:     driver,
		publisher:  opts.Publisher,
		observer:   opts.Observer,
		logger:     logger,
	}
}

// Initialize places the cursor at start without animating. A start outside
// the grid falls back to the first slide of the first deck.
func (n *Navigator) Initialize(start grid.Position) Result {
	if !n.grid.Contains(start) {
		n.logger.Debug("start position outside grid", "deck", start.Deck, "slide", start.Slide)
		start = grid.Position{}
	}
	n.memory = make([]int, n.grid.Decks())
	n.memory[start.Deck] = start.Slide
	from := n.pos
	n.pos = start
	return n.commit(Result{Direction: None, From: from, To: start}, transform.Snap)
}

// Reinitialize tears the navigator down and initializes it over g.
func (n *Navigator) Reinitialize(g grid.Grid, start grid.Position) Result {
	n.driver.Release()
	n.memory = nil
	n.grid = g
	return n.Initialize(start)
}

// Navigate moves one step in dir using the configured continuity and the
// automatic transition speed.
func (n *Navigator) Navigate(dir Direction) Result {
	return n.navigate(dir, transform.Auto, Policy{Continuous: n.continuous})
}

// Swipe handles a touch-originated request. Continuity never applies, and
// a swipe against the edge of the grid returns the surface to the current
// slide.
func (n *Navigator) Swipe(dir Direction, speed transform.Speed) Result {
	res := n.navigate(dir, speed, Policy{Continuous: n.continuous, Touch: true})
	if res.Outcome == Boundary {
		n.translate(speed)
	}
	return res
}

// Next is equivalent to Navigate(Down).
func (n *Navigator) Next() Result { return n.Navigate(Down) }

// Prev is equivalent to Navigate(Up).
func (n *Navigator) Prev() Result { return n.Navigate(Up) }

// First jumps to the first slide of the first deck.
func (n *Navigator) First() Result {
	return n.NavigateTo(grid.Position{}, transform.Snap)
}

// Last jumps to the last slide of the last deck.
func (n *Navigator) Last() Result {
	d := n.grid.LastDeck()
	return n.NavigateTo(grid.Position{Deck: d, Slide: n.grid.LastSlide(d)}, transform.Snap)
}

// NavigateTo moves directly to pos.
func (n *Navigator) NavigateTo(pos grid.Position, speed transform.Speed) Result {
	res := Result{Direction: None, From: n.pos, To: n.pos}
	if n.driver.Busy() {
		return n.reject(res)
	}
	if !n.grid.Contains(pos) {
		res.Outcome = InvalidInput
		n.logger.Debug("navigate to position outside grid", "deck", pos.Deck, "slide", pos.Slide)
		return n.notify(res)
	}
	n.pos = pos
	n.memory[pos.Deck] = pos.Slide
	res.To = pos
	return n.commit(res, speed)
}

// Drag offsets the surface from the current position by (dx, dy) cells
// without animating. It reports false while busy.
func (n *Navigator) Drag(dx, dy int) bool {
	if n.driver.Busy() {
		return false
	}
	x, y := n.driver.Layout().Offset(n.pos)
	n.driver.Translate(n.pos, x+dx, y+dy, transform.Snap)
	return true
}

// Refresh re-applies the current position without animating, superseding
// any animation in flight. Used after the layout geometry changes.
func (n *Navigator) Refresh() {
	n.translate(transform.Snap)
}

// Position returns the current cursor.
func (n *Navigator) Position() grid.Position { return n.pos }

// Grid returns the grid the navigator was initialized over.
func (n *Navigator) Grid() grid.Grid { return n.grid }

// Busy reports whether an animation is in flight.
func (n *Navigator) Busy() bool { return n.driver.Busy() }

// Token returns the location token of the current position.
func (n *Navigator) Token() string { return location.Encode(n.pos) }

// LastActive returns the remembered slide of deck.
func (n *Navigator) LastActive(deck int) int {
	return remembered(n.grid, n.memory, deck)
}

func (n *Navigator) navigate(dir Direction, speed transform.Speed, p Policy) Result {
	res := Result{Direction: dir, From: n.pos, To: n.pos}
	if n.driver.Busy() {
		return n.reject(res)
	}
	r, err := Resolve(dir, n.pos, n.grid, n.memory, p)
	if err != nil {
		res.Outcome = InvalidInput
		if errors.Is(err, ErrInvalidDirection) {
			n.logger.Debug("invalid direction", "direction", int(dir), "error", err)
		} else {
			n.logger.Error("resolve failed", "error", err)
		}
		n.driver.Release()
		return n.notify(res)
	}
	if r.Boundary {
		res.Outcome = Boundary
		res.Direction = r.Direction
		n.logger.Debug("navigation at boundary", "direction", r.Direction.String(), "deck", n.pos.Deck, "slide", n.pos.Slide)
		n.driver.Release()
		return n.notify(res)
	}
	n.pos = r.Position
	n.memory[n.pos.Deck] = n.pos.Slide
	res.Direction = r.Direction
	res.To = n.pos
	return n.commit(res, speed)
}

func (n *Navigator) reject(res Result) Result {
	res.Outcome = Rejected
	n.logger.Debug("navigation rejected while busy", "direction", res.Direction.String())
	return n.notify(res)
}

// commit publishes the current position and dispatches its transform.
func (n *Navigator) commit(res Result, speed transform.Speed) Result {
	res.Outcome = Accepted
	res.Token = location.Encode(n.pos)
	if n.publisher != nil {
		n.publisher.Publish(res.Token)
	}
	n.translate(speed)
	return n.notify(res)
}

func (n *Navigator) translate(speed transform.Speed) {
	x, y := n.driver.Layout().Offset(n.pos)
	n.driver.Translate(n.pos, x, y, speed)
}

func (n *Navigator) notify(res Result) Result {
	if n.observer != nil {
		n.observer(res)
	}
	return res
}
