package nav

import (
	"fmt"

	"github.com/five82/brevity/internal/grid"
)

// Policy controls how vertical exhaustion is handled.
type Policy struct {
	// Continuous lets up/down spill over into the neighbouring deck.
	Continuous bool
	// Touch marks touch-originated requests, which never spill over.
	Touch bool
}

func (p Policy) spills() bool {
	return p.Continuous && !p.Touch
}

// Resolution is the outcome of resolving a direction against a grid.
type Resolution struct {
	// Direction is the direction that produced the move, which differs from
	// the request when a vertical request spilled over into a deck change.
	Direction Direction
	Position  grid.Position
	Boundary  bool
}

type stepKind int

const (
	moved stepKind = iota
	boundary
	redirect
)

type step struct {
	kind stepKind
	pos  grid.Position
	next Direction
}

// Resolve computes where dir leads from pos. memory holds the last active
// slide of every deck and is consulted when entering a deck horizontally;
// missing or out-of-range entries mean slide 0.
func Resolve(dir Direction, pos grid.Position, g grid.Grid, memory []int, p Policy) (Resolution, error) {
	if !g.Contains(pos) {
		return Resolution{}, fmt.Errorf("resolve from %+v: position outside grid", pos)
	}
	// A redirect only ever goes vertical to horizontal, so two steps suffice.
	for range 2 {
		var s step
		switch dir {
		case Up:
			s = stepUp(pos, p)
		case Down:
			s = stepDown(pos, g, p)
		case Left:
			s = stepLeft(pos, g, memory)
		case Right:
			s = stepRight(pos, g, memory)
		default:
			return Resolution{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
		}
		switch s.kind {
		case moved:
			return Resolution{Direction: dir, Position: s.pos}, nil
		case boundary:
			return Resolution{Direction: dir, Position: pos, Boundary: true}, nil
		}
		dir = s.next
	}
	return Resolution{Direction: dir, Position: pos, Boundary: true}, nil
}

func stepUp(pos grid.Position, p Policy) step {
	if pos.Slide > 0 {
		return step{kind: moved, pos: grid.Position{Deck: pos.Deck, Slide: pos.Slide - 1}}
	}
	if p.spills() {
		return step{kind: redirect, next: Left}
	}
	return step{kind: boundary}
}

func stepDown(pos grid.Position, g grid.Grid, p Policy) step {
	if pos.Slide < g.LastSlide(pos.Deck) {
		return step{kind: moved, pos: grid.Position{Deck: pos.Deck, Slide: pos.Slide + 1}}
	}
	if p.spills() {
		return step{kind: redirect, next: Right}
	}
	return step{kind: boundary}
}

func stepLeft(pos grid.Position, g grid.Grid, memory []int) step {
	if pos.Deck == 0 {
		return step{kind: boundary}
	}
	deck := pos.Deck - 1
	return step{kind: moved, pos: grid.Position{Deck: deck, Slide: remembered(g, memory, deck)}}
}

func stepRight(pos grid.Position, g grid.Grid, memory []int) step {
	if pos.Deck >= g.LastDeck() {
		return step{kind: boundary}
	}
	deck := pos.Deck + 1
	return step{kind: moved, pos: grid.Position{Deck: deck, Slide: remembered(g, memory, deck)}}
}

func remembered(g grid.Grid, memory []int, deck int) int {
	if deck < 0 || deck >= len(memory) {
		return 0
	}
	s := memory[deck]
	if s < 0 || s > g.LastSlide(deck) {
		return 0
	}
	return s
}
