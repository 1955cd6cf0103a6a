// Package deck loads Markdown presentations.
//
// A presentation file is split into decks by lines containing only "==="
// and each deck into slides by lines containing only "---". Separators
// inside fenced code blocks are ignored. An optional YAML front matter
// block at the top of the file carries presentation defaults.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/brevity/internal/grid"
)

// ErrNoSlides is returned when a presentation contains no non-empty slide.
var ErrNoSlides = errors.New("presentation has no slides")

const (
	deckSeparator  = "==="
	slideSeparator = "---"
)

// Slide is a single panel of a presentation.
type Slide struct {
	Title string
	Body  string
}

// Deck is a vertical run of slides.
type Deck struct {
	Slides []Slide
}

// Presentation is a parsed presentation file.
type Presentation struct {
	Path  string
	Meta  Meta
	Decks []Deck
}

// Entry addresses one slide for listings and search.
type Entry struct {
	Position grid.Position
	Title    string
}

// Load reads and parses the presentation at path.
func Load(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = abs
	return p, nil
}

// Parse parses presentation source.
func Parse(data []byte) (*Presentation, error) {
	text := strings.ReplaceAll(string(bytes.TrimPrefix(data, []byte("\ufeff"))), "\r\n", "\n")
	meta, body, err := splitFrontMatter(text)
	if err != nil {
		return nil, err
	}
	p := &Presentation{Meta: meta}
	for _, raw := range splitDecks(body) {
		var d Deck
		for _, s := range raw {
			if strings.TrimSpace(s) == "" {
				continue
			}
			d.Slides = append(d.Slides, Slide{Title: titleOf(s), Body: strings.Trim(s, "\n")})
		}
		if len(d.Slides) > 0 {
			p.Decks = append(p.Decks, d)
		}
	}
	if len(p.Decks) == 0 {
		return nil, ErrNoSlides
	}
	return p, nil
}

// Counts returns the slide count of every deck.
func (p *Presentation) Counts() []int {
	counts := make([]int, len(p.Decks))
	for i, d := range p.Decks {
		counts[i] = len(d.Slides)
	}
	return counts
}

// Grid builds the navigation grid of the presentation.
func (p *Presentation) Grid() (grid.Grid, error) {
	return grid.New(p.Counts())
}

// Slide returns the slide at pos.
func (p *Presentation) Slide(pos grid.Position) (Slide, bool) {
	if pos.Deck < 0 || pos.Deck >= len(p.Decks) {
		return Slide{}, false
	}
	slides := p.Decks[pos.Deck].Slides
	if pos.Slide < 0 || pos.Slide >= len(slides) {
		return Slide{}, false
	}
	return slides[pos.Slide], true
}

// Entries lists every slide in reading order.
func (p *Presentation) Entries() []Entry {
	var out []Entry
	for d, dk := range p.Decks {
		for s, sl := range dk.Slides {
			out = append(out, Entry{Position: grid.Position{Deck: d, Slide: s}, Title: sl.Title})
		}
	}
	return out
}

// Title returns the front matter title, falling back to the title of the
// first slide.
func (p *Presentation) Title() string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	return p.Decks[0].Slides[0].Title
}

// splitDecks returns the raw slide texts of every deck.
func splitDecks(body string) [][]string {
	var (
		decks   [][]string
		slides  []string
		current strings.Builder
		fence   string
	)
	flushSlide := func() {
		slides = append(slides, current.String())
		current.Reset()
	}
	flushDeck := func() {
		flushSlide()
		decks = append(decks, slides)
		slides = nil
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if fence != "" {
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
		} else if marker := fenceMarker(trimmed); marker != "" {
			fence = marker
		} else {
			switch trimmed {
			case deckSeparator:
				flushDeck()
				continue
			case slideSeparator:
				flushSlide()
				continue
			}
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	flushDeck()
	return decks
}

func fenceMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	default:
		return ""
	}
}

func titleOf(slide string) string {
	first := ""
	for _, line := range strings.Split(slide, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if t := strings.TrimSpace(strings.TrimLeft(trimmed, "#")); t != "" {
				return t
			}
			continue
		}
		if first == "" && fenceMarker(trimmed) == "" {
			first = trimmed
		}
	}
	return first
}
