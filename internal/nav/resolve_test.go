package nav

import (
	"errors"
	"testing"

	"github.com/five82/brevity/internal/grid"
)

func mustGrid(t *testing.T, counts ...int) grid.Grid {
	t.Helper()
	g, err := grid.New(counts)
	if err != nil {
		t.Fatalf("grid.New(%v) returned error: %v", counts, err)
	}
	return g
}

func TestResolve_DownWithinDeck(t *testing.T) {
	g := mustGrid(t, 2, 3, 1, 4)
	memory := make([]int, g.Decks())
	for _, p := range []Policy{{}, {Continuous: true}, {Continuous: true, Touch: true}} {
		for d := 0; d < g.Decks(); d++ {
			for s := 0; s < g.LastSlide(d); s++ {
				from := grid.Position{Deck: d, Slide: s}
				r, err := Resolve(Down, from, g, memory, p)
				if err != nil {
					t.Fatalf("Resolve(down, %+v) returned error: %v", from, err)
				}
				want := grid.Position{Deck: d, Slide: s + 1}
				if r.Boundary || r.Position != want {
					t.Fatalf("Resolve(down, %+v, %+v) = %+v, want %+v", from, p, r, want)
				}
			}
		}
	}
}

func TestResolve_DownAtLastSlideOfLastDeckIsBoundary(t *testing.T) {
	g := mustGrid(t, 2, 3, 1)
	from := grid.Position{Deck: 2, Slide: 0}
	for _, p := range []Policy{{}, {Continuous: true}, {Continuous: true, Touch: true}} {
		r, err := Resolve(Down, from, g, make([]int, 3), p)
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if !r.Boundary || r.Position != from {
			t.Fatalf("Resolve(down, %+v, %+v) = %+v, want boundary", from, p, r)
		}
	}
}

func TestResolve_ContinuousSpillsIntoRememberedSlide(t *testing.T) {
	g := mustGrid(t, 2, 3, 1)
	memory := []int{1, 2, 0}
	r, err := Resolve(Down, grid.Position{Deck: 0, Slide: 1}, g, memory, Policy{Continuous: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if r.Boundary || r.Position != (grid.Position{Deck: 1, Slide: 2}) {
		t.Fatalf("Resolve = %+v, want deck 1 slide 2", r)
	}
	if r.Direction != Right {
		t.Fatalf("Direction = %v, want right", r.Direction)
	}

	r, err = Resolve(Up, grid.Position{Deck: 1, Slide: 0}, g, memory, Policy{Continuous: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if r.Position != (grid.Position{Deck: 0, Slide: 1}) || r.Direction != Left {
		t.Fatalf("Resolve(up) = %+v, want deck 0 slide 1 via left", r)
	}
}

func TestResolve_NoSpillWithoutContinuityOrInTouchMode(t *testing.T) {
	g := mustGrid(t, 2, 3, 1)
	from := grid.Position{Deck: 0, Slide: 1}
	for _, p := range []Policy{{}, {Continuous: true, Touch: true}} {
		r, err := Resolve(Down, from, g, make([]int, 3), p)
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if !r.Boundary || r.Position != from {
			t.Fatalf("Resolve(down, %+v) = %+v, want boundary", p, r)
		}
	}
}

func TestResolve_Horizontal(t *testing.T) {
	g := mustGrid(t, 2, 3, 1)
	cases := []struct {
		name     string
		dir      Direction
		from     grid.Position
		memory   []int
		want     grid.Position
		boundary bool
	}{
		{"right fresh deck", Right, at(0, 1), []int{1, 0, 0}, at(1, 0), false},
		{"right remembered", Right, at(0, 0), []int{0, 2, 0}, at(1, 2), false},
		{"right at last deck", Right, at(2, 0), []int{0, 0, 0}, at(2, 0), true},
		{"left remembered", Left, at(1, 2), []int{1, 2, 0}, at(0, 1), false},
		{"left at first deck", Left, at(0, 1), []int{1, 0, 0}, at(0, 1), true},
		{"stale memory ignored", Left, at(2, 0), []int{0, 9, 0}, at(1, 0), false},
		{"short memory", Right, at(0, 0), nil, at(1, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve(tc.dir, tc.from, g, tc.memory, Policy{Continuous: true})
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if r.Position != tc.want || r.Boundary != tc.boundary {
				t.Fatalf("Resolve = %+v, want %+v boundary=%v", r, tc.want, tc.boundary)
			}
		})
	}
}

func TestResolve_UpAtOriginIsBoundary(t *testing.T) {
	g := mustGrid(t, 2, 3)
	r, err := Resolve(Up, grid.Position{}, g, make([]int, 2), Policy{Continuous: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !r.Boundary || r.Position != (grid.Position{}) {
		t.Fatalf("Resolve(up at origin) = %+v, want boundary", r)
	}
}

func TestResolve_InvalidDirection(t *testing.T) {
	g := mustGrid(t, 2)
	_, err := Resolve(Direction(42), grid.Position{}, g, nil, Policy{})
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Resolve error = %v, want ErrInvalidDirection", err)
	}
	_, err = Resolve(None, grid.Position{}, g, nil, Policy{})
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Resolve(None) error = %v, want ErrInvalidDirection", err)
	}
}

func TestResolve_PositionOutsideGrid(t *testing.T) {
	g := mustGrid(t, 2)
	if _, err := Resolve(Down, grid.Position{Deck: 3}, g, nil, Policy{}); err == nil {
		t.Fatalf("expected error for position outside grid")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"up": Up, "DOWN": Down, " left ": Left, "Right": Right}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("ParseDirection(sideways) error = %v, want ErrInvalidDirection", err)
	}
}

func at(deck, slide int) grid.Position {
	return grid.Position{Deck: deck, Slide: slide}
}
