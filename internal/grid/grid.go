// Package grid models the deck/slide layout of a presentation.
//
// A Grid is built once from the per-deck slide counts of a loaded
// presentation and never changes afterwards. Reloading a presentation
// builds a new Grid.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDecks is returned when a grid would contain no decks.
	ErrNoDecks = errors.New("grid has no decks")
	// ErrEmptyDeck is returned when a deck would contain no slides.
	ErrEmptyDeck = errors.New("deck has no slides")
)

// Position is a 0-based (deck, slide) cursor into a Grid.
type Position struct {
	Deck  int
	Slide int
}

// Grid holds the slide count of every deck.
type Grid struct {
	slides []int
}

// New builds a Grid from per-deck slide counts.
func New(slideCounts []int) (Grid, error) {
	if len(slideCounts) == 0 {
		return Grid{}, ErrNoDecks
	}
	slides := make([]int, len(slideCounts))
	for i, n := range slideCounts {
		if n < 1 {
			return Grid{}, fmt.Errorf("deck %d: %w", i+1, ErrEmptyDeck)
		}
		slides[i] = n
	}
	return Grid{slides: slides}, nil
}

// Decks returns the number of decks.
func (g Grid) Decks() int {
	return len(g.slides)
}

// Slides returns the number of slides in deck, or 0 when deck is out of range.
func (g Grid) Slides(deck int) int {
	if deck < 0 || deck >= len(g.slides) {
		return 0
	}
	return g.slides[deck]
}

// LastDeck returns the index of the last deck.
func (g Grid) LastDeck() int {
	return len(g.slides) - 1
}

// LastSlide returns the index of the last slide in deck.
func (g Grid) LastSlide(deck int) int {
	return g.Slides(deck) - 1
}

// Contains reports whether pos addresses an existing slide.
func (g Grid) Contains(pos Position) bool {
	if pos.Deck < 0 || pos.Deck >= len(g.slides) {
		return false
	}
	return pos.Slide >= 0 && pos.Slide < g.slides[pos.Deck]
}

// Clamp returns the nearest valid position to pos.
func (g Grid) Clamp(pos Position) Position {
	if len(g.slides) == 0 {
		return Position{}
	}
	pos.Deck = clamp(pos.Deck, 0, g.LastDeck())
	pos.Slide = clamp(pos.Slide, 0, g.LastSlide(pos.Deck))
	return pos
}

// Counts returns a copy of the per-deck slide counts.
func (g Grid) Counts() []int {
	out := make([]int, len(g.slides))
	copy(out, g.slides)
	return out
}

// Total returns the number of slides across all decks.
func (g Grid) Total() int {
	total := 0
	for _, n := range g.slides {
		total += n
	}
	return total
}

// Ordinal returns the 1-based index of pos when every slide is laid out
// deck after deck, or 0 when pos is outside the grid.
func (g Grid) Ordinal(pos Position) int {
	if !g.Contains(pos) {
		return 0
	}
	n := 0
	for d := 0; d < pos.Deck; d++ {
		n += g.slides[d]
	}
	return n + pos.Slide + 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
