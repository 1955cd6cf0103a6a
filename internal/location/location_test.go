package location

import (
	"testing"

	"github.com/five82/brevity/internal/grid"
)

func TestEncode_AlwaysIncludesSlide(t *testing.T) {
	cases := []struct {
		pos  grid.Position
		want string
	}{
		{grid.Position{Deck: 0, Slide: 0}, "/1/1"},
		{grid.Position{Deck: 1, Slide: 0}, "/2/1"},
		{grid.Position{Deck: 2, Slide: 4}, "/3/5"},
	}
	for _, tc := range cases {
		if got := Encode(tc.pos); got != tc.want {
			t.Fatalf("Encode(%+v) = %q, want %q", tc.pos, got, tc.want)
		}
	}
	if got := Fragment(grid.Position{Deck: 1, Slide: 2}); got != "#/2/3" {
		t.Fatalf("Fragment = %q, want #/2/3", got)
	}
}

func TestDecode(t *testing.T) {
	def := grid.Position{Deck: 4, Slide: 5}
	cases := []struct {
		name  string
		token string
		want  grid.Position
	}{
		{"both segments", "/3/2", grid.Position{Deck: 2, Slide: 1}},
		{"hash prefix", "#/3/2", grid.Position{Deck: 2, Slide: 1}},
		{"no leading slash", "3/2", grid.Position{Deck: 2, Slide: 1}},
		{"deck only", "/2", grid.Position{Deck: 1, Slide: 5}},
		{"trailing slash", "/2/", grid.Position{Deck: 1, Slide: 5}},
		{"empty", "", def},
		{"hash only", "#", def},
		{"garbage deck", "/x/2", grid.Position{Deck: 4, Slide: 1}},
		{"garbage slide", "/2/y", grid.Position{Deck: 1, Slide: 5}},
		{"zero deck", "/0/2", grid.Position{Deck: 4, Slide: 1}},
		{"negative slide", "/2/-3", grid.Position{Deck: 1, Slide: 5}},
		{"extra segments ignored", "/1/1/9", grid.Position{Deck: 0, Slide: 0}},
		{"whitespace", "  /2/2 ", grid.Position{Deck: 1, Slide: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.token, def); got != tc.want {
				t.Fatalf("Decode(%q) = %+v, want %+v", tc.token, got, tc.want)
			}
		})
	}
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	g, err := grid.New([]int{2, 3, 4})
	if err != nil {
		t.Fatalf("grid.New returned error: %v", err)
	}
	for d := 0; d < g.Decks(); d++ {
		for s := 0; s < g.Slides(d); s++ {
			pos := grid.Position{Deck: d, Slide: s}
			if got := Decode(Encode(pos), grid.Position{}); got != pos {
				t.Fatalf("Decode(Encode(%+v)) = %+v", pos, got)
			}
		}
	}
}

func TestStart(t *testing.T) {
	if got := Start(1, 1); got != (grid.Position{}) {
		t.Fatalf("Start(1,1) = %+v, want origin", got)
	}
	if got := Start(3, 2); got != (grid.Position{Deck: 2, Slide: 1}) {
		t.Fatalf("Start(3,2) = %+v, want {2 1}", got)
	}
	if got := Start(0, -5); got != (grid.Position{}) {
		t.Fatalf("Start(0,-5) = %+v, want origin", got)
	}
}

func TestSplit(t *testing.T) {
	path, token := Split("talks/intro.md#/2/3")
	if path != "talks/intro.md" || token != "#/2/3" {
		t.Fatalf("Split = %q, %q", path, token)
	}
	path, token = Split("intro.md")
	if path != "intro.md" || token != "" {
		t.Fatalf("Split without fragment = %q, %q", path, token)
	}
}

func TestMulti_SkipsNil(t *testing.T) {
	var a, b Recorder
	pub := Multi(&a, nil, &b)
	pub.Publish("/1/1")
	pub.Publish("/2/1")
	if a.Last() != "/2/1" || len(b.Tokens) != 2 {
		t.Fatalf("Multi did not fan out: a=%v b=%v", a.Tokens, b.Tokens)
	}
}
