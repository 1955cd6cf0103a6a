package grid

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew_RejectsEmptyGrid(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoDecks) {
		t.Fatalf("New(nil) error = %v, want ErrNoDecks", err)
	}
}

func TestNew_RejectsEmptyDeck(t *testing.T) {
	_, err := New([]int{2, 0, 1})
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("New error = %v, want ErrEmptyDeck", err)
	}
	if got := err.Error(); got != "deck 2: deck has no slides" {
		t.Fatalf("New error = %q, want deck number in message", got)
	}
}

func TestGrid_Bounds(t *testing.T) {
	g, err := New([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if g.Decks() != 3 {
		t.Fatalf("Decks() = %d, want 3", g.Decks())
	}
	if g.LastDeck() != 2 {
		t.Fatalf("LastDeck() = %d, want 2", g.LastDeck())
	}
	if g.LastSlide(1) != 2 {
		t.Fatalf("LastSlide(1) = %d, want 2", g.LastSlide(1))
	}
	if g.Slides(7) != 0 || g.Slides(-1) != 0 {
		t.Fatalf("Slides out of range should be 0")
	}
	if g.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", g.Total())
	}
}

func TestGrid_Contains(t *testing.T) {
	g, _ := New([]int{2, 3, 1})
	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{0, 1}, true},
		{Position{0, 2}, false},
		{Position{1, 2}, true},
		{Position{2, 1}, false},
		{Position{3, 0}, false},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.pos); got != tc.want {
			t.Fatalf("Contains(%+v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestGrid_Clamp(t *testing.T) {
	g, _ := New([]int{2, 3, 1})
	if got := g.Clamp(Position{Deck: 9, Slide: 9}); got != (Position{Deck: 2, Slide: 0}) {
		t.Fatalf("Clamp = %+v, want {2 0}", got)
	}
	if got := g.Clamp(Position{Deck: -4, Slide: 5}); got != (Position{Deck: 0, Slide: 1}) {
		t.Fatalf("Clamp = %+v, want {0 1}", got)
	}
}

func TestGrid_CountsIsCopy(t *testing.T) {
	g, _ := New([]int{2, 3})
	counts := g.Counts()
	counts[0] = 99
	if !reflect.DeepEqual(g.Counts(), []int{2, 3}) {
		t.Fatalf("Counts() leaked internal slice: %v", g.Counts())
	}
}

func TestGrid_Ordinal(t *testing.T) {
	g, _ := New([]int{2, 3, 1})
	if got := g.Ordinal(Position{Deck: 1, Slide: 2}); got != 5 {
		t.Fatalf("Ordinal = %d, want 5", got)
	}
	if got := g.Ordinal(Position{Deck: 3}); got != 0 {
		t.Fatalf("Ordinal outside grid = %d, want 0", got)
	}
}
