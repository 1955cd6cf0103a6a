package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/brevity/internal/deck"
	"github.com/five82/brevity/internal/grid"
)

// slideCache holds rendered slides cut to the viewport size.
type slideCache struct {
	renderer *deck.Renderer
	width    int
	height   int
	lines    map[grid.Position][]string
	failures int
}

func newSlideCache(renderer *deck.Renderer) *slideCache {
	return &slideCache{renderer: renderer, lines: make(map[grid.Position][]string)}
}

// reset drops every rendered slide; renderer replaces the current one when
// non-nil.
func (c *slideCache) reset(renderer *deck.Renderer) {
	if renderer != nil {
		c.renderer = renderer
	}
	c.renderer.Reset()
	c.lines = make(map[grid.Position][]string)
	c.failures = 0
}

func (c *slideCache) get(p *deck.Presentation, pos grid.Position, w, h int) []string {
	if w != c.width || h != c.height {
		c.width, c.height = w, h
		c.lines = make(map[grid.Position][]string)
	}
	if lines, ok := c.lines[pos]; ok {
		return lines
	}
	slide, ok := p.Slide(pos)
	if !ok {
		return nil
	}
	out, err := c.renderer.Render(slide.Body, w)
	if err != nil {
		c.failures++
	}
	lines := fit(out, w, h)
	c.lines[pos] = lines
	return lines
}

// fit centers content vertically in an w x h block, truncating what does
// not fit and padding every line to w cells.
func fit(content string, w, h int) []string {
	if h <= 0 {
		return nil
	}
	blank := strings.Repeat(" ", max(w, 0))
	out := make([]string, h)
	for i := range out {
		out[i] = blank
	}
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	top := (h - len(lines)) / 2
	for i, line := range lines {
		out[top+i] = pad(ansi.Truncate(line, w, ""), w)
	}
	return out
}

func pad(line string, w int) string {
	if gap := w - ansi.StringWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}

// compose draws the viewport: decks sit side by side at multiples of w,
// shifted by the stage's collection offset, and each deck's slides are
// stacked at multiples of h, shifted by that deck's offset. At most two
// decks are visible while the collection moves.
func compose(g grid.Grid, stage *Stage, now time.Time, w, h int, lines func(grid.Position) []string) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	type column struct {
		deck   int
		left   int
		offset int
	}
	x := stage.X(now)
	var visible []column
	for d := range g.Decks() {
		left := d*w + x
		if left >= w || left+w <= 0 {
			continue
		}
		visible = append(visible, column{deck: d, left: left, offset: stage.Y(d, now)})
	}

	blank := strings.Repeat(" ", w)
	rows := make([]string, h)
	for r := range rows {
		var b strings.Builder
		used := 0
		for _, col := range visible {
			lo := max(0, -col.left)
			hi := min(w, w-col.left)
			if col.left > used {
				b.WriteString(blank[:col.left-used])
				used = col.left
			}
			line := blank
			k := r - col.offset
			if slide := k / h; k >= 0 && slide < g.Slides(col.deck) {
				if ls := lines(grid.Position{Deck: col.deck, Slide: slide}); len(ls) == h {
					line = ls[k%h]
				}
			}
			b.WriteString(ansi.Cut(line, lo, hi))
			used += hi - lo
		}
		if used < w {
			b.WriteString(blank[:w-used])
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}
