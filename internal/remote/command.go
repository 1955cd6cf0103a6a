// Package remote exposes the running presentation over HTTP so a second
// device (or the ctl subcommand) can read the location and navigate.
//
// Requests arrive on HTTP goroutines. They are handed to a Dispatcher,
// which executes them on the UI event loop and returns the navigation
// result; the handlers themselves never touch the navigator.
package remote

import (
	"context"
	"errors"

	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/transform"
)

// ErrUnavailable is returned by a Dispatcher that can no longer reach the
// event loop.
var ErrUnavailable = errors.New("presentation unavailable")

// Kind selects the navigator operation a Command runs.
type Kind int

const (
	Navigate Kind = iota
	Next
	Prev
	First
	Last
	Goto
)

func (k Kind) String() string {
	switch k {
	case Navigate:
		return "navigate"
	case Next:
		return "next"
	case Prev:
		return "prev"
	case First:
		return "first"
	case Last:
		return "last"
	case Goto:
		return "goto"
	default:
		return "unknown"
	}
}

// Command is a navigation request from a remote client.
type Command struct {
	Kind      Kind
	Direction nav.Direction
	// Position is the 0-based target of Goto.
	Position grid.Position
}

// Run executes c against n.
func (c Command) Run(n *nav.Navigator) nav.Result {
	switch c.Kind {
	case Next:
		return n.Next()
	case Prev:
		return n.Prev()
	case First:
		return n.First()
	case Last:
		return n.Last()
	case Goto:
		return n.NavigateTo(c.Position, transform.Auto)
	default:
		return n.Navigate(c.Direction)
	}
}

// Dispatcher runs a Command where the navigator lives and reports its
// result.
type Dispatcher func(ctx context.Context, cmd Command) (nav.Result, error)
