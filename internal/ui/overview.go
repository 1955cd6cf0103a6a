package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/brevity/internal/grid"
)

const cellWidth = 4

// renderOverview draws the grid as a map: one column per deck, one cell
// per slide. The current slide and each deck's remembered slide are
// marked.
func (m Model) renderOverview(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	g := m.nav.Grid()
	pos := m.nav.Position()

	rows := height - 7
	cols := max(width/cellWidth, 1)
	decks := min(g.Decks(), cols)
	tallest := 0
	for d := range decks {
		tallest = max(tallest, g.Slides(d))
	}
	shown := min(tallest, max(rows, 1))

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.presentation.Title()))
	b.WriteString("\n\n")

	header := make([]string, 0, decks)
	for d := range decks {
		style := styles.MutedText
		if d == pos.Deck {
			style = styles.AccentText.Bold(true)
		}
		header = append(header, style.Render(fmt.Sprintf("%-*d", cellWidth, d+1)))
	}
	b.WriteString(strings.Join(header, ""))

	for s := range shown {
		b.WriteString("\n")
		for d := range decks {
			b.WriteString(m.overviewCell(g, grid.Position{Deck: d, Slide: s}, shown, styles))
		}
	}
	if decks < g.Decks() {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d more decks", g.Decks()-decks)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/o back · / jump · g list"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) overviewCell(g grid.Grid, p grid.Position, shown int, styles Styles) string {
	cell := func(s string, style lipgloss.Style) string {
		return style.Render(fmt.Sprintf("%-*s", cellWidth, s))
	}
	slides := g.Slides(p.Deck)
	switch {
	case p.Slide >= slides:
		return cell("", styles.Background)
	case p.Slide == shown-1 && slides > shown:
		return cell("⋮", styles.FaintText)
	case p == m.nav.Position():
		return cell("■", styles.AccentText.Bold(true))
	case p.Slide == m.nav.LastActive(p.Deck):
		return cell("◆", styles.InfoText)
	default:
		return cell("□", styles.MutedText)
	}
}

// renderGrid lists every slide with its location, windowed around the
// current one.
func (m Model) renderGrid(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	entries := m.presentation.Entries()
	current := m.nav.Grid().Ordinal(m.nav.Position()) - 1

	visible := max(height-2, 1)
	start := 0
	if current >= visible {
		start = current - visible/2
	}
	start = max(min(start, len(entries)-visible), 0)
	end := min(start+visible, len(entries))

	lines := make([]string, 0, visible+2)
	lines = append(lines, styles.MutedText.Render(fmt.Sprintf(" %d slides in %d decks", len(entries), m.nav.Grid().Decks())))
	for i := start; i < end; i++ {
		e := entries[i]
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		text := fmt.Sprintf(" %-8s %s", fmt.Sprintf("%d/%d", e.Position.Deck+1, e.Position.Slide+1), title)
		text = ansi.Truncate(text, width, "…")
		if i == current {
			lines = append(lines, styles.Selected.Width(width).Render(text))
			continue
		}
		lines = append(lines, styles.Text.Render(text))
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, styles.FaintText.Render(" enter/g back · j/k move · / jump"))

	bg := NewBgStyle(m.theme.Background)
	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines[:min(len(lines), height)], "\n")
}
