package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/five82/brevity/internal/deck"
	"github.com/five82/brevity/internal/grid"
)

const jumpVisible = 8

// jumpMsg asks the model to navigate to pos.
type jumpMsg struct {
	pos grid.Position
}

// jumpModal is the fuzzy jump-to-slide prompt.
type jumpModal struct {
	input   textinput.Model
	entries []deck.Entry
	labels  []string
	matches fuzzy.Matches
	cursor  int
}

func newJumpModal(entries []deck.Entry) jumpModal {
	input := textinput.New()
	input.Placeholder = "slide title or deck/slide"
	input.Prompt = "/ "
	input.CharLimit = 64
	input.Focus()

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = jumpLabel(e)
	}
	j := jumpModal{input: input, entries: entries, labels: labels}
	j.filter()
	return j
}

func jumpLabel(e deck.Entry) string {
	return fmt.Sprintf("%d/%d %s", e.Position.Deck+1, e.Position.Slide+1, e.Title)
}

// filter recomputes the matches for the current query. An empty query
// lists every slide in reading order.
func (j *jumpModal) filter() {
	query := strings.TrimSpace(j.input.Value())
	j.cursor = 0
	if query == "" {
		j.matches = make(fuzzy.Matches, len(j.labels))
		for i, l := range j.labels {
			j.matches[i] = fuzzy.Match{Str: l, Index: i}
		}
		return
	}
	j.matches = fuzzy.Find(query, j.labels)
}

// selected returns the entry under the cursor.
func (j jumpModal) selected() (deck.Entry, bool) {
	if j.cursor < 0 || j.cursor >= len(j.matches) {
		return deck.Entry{}, false
	}
	return j.entries[j.matches[j.cursor].Index], true
}

func (j jumpModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		j.input, cmd = j.input.Update(msg)
		return j, cmd, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return j, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		entry, ok := j.selected()
		if !ok {
			return j, nil, true
		}
		pos := entry.Position
		return j, func() tea.Msg { return jumpMsg{pos: pos} }, true
	}

	switch keyMsg.String() {
	case "up", "ctrl+p":
		if j.cursor > 0 {
			j.cursor--
		}
		return j, nil, false
	case "down", "ctrl+n", "tab":
		if j.cursor < len(j.matches)-1 {
			j.cursor++
		}
		return j, nil, false
	}

	before := j.input.Value()
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(keyMsg)
	if j.input.Value() != before {
		j.filter()
	}
	return j, cmd, false
}

func (j jumpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Jump to slide"))
	b.WriteString("\n\n")
	b.WriteString(j.input.View())
	b.WriteString("\n\n")

	if len(j.matches) == 0 {
		b.WriteString(styles.MutedText.Render("No matching slides"))
		return placeModal(theme, width, height, 60, b.String())
	}

	start := 0
	if j.cursor >= jumpVisible {
		start = j.cursor - jumpVisible + 1
	}
	end := min(start+jumpVisible, len(j.matches))
	for i := start; i < end; i++ {
		line := highlightMatch(j.matches[i], styles)
		if i == j.cursor {
			line = styles.Selected.Render("> " + j.matches[i].Str)
		} else {
			line = styles.Text.Render("  ") + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if rest := len(j.matches) - end; rest > 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d more", rest)))
	}
	return placeModal(theme, width, height, 60, b.String())
}

// highlightMatch renders the fuzzy-matched characters of m in the accent
// color.
func highlightMatch(m fuzzy.Match, styles Styles) string {
	if len(m.MatchedIndexes) == 0 {
		return styles.Text.Render(m.Str)
	}
	matched := make(map[int]struct{}, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = struct{}{}
	}
	accent := styles.AccentText.Bold(true)
	var b strings.Builder
	for i, r := range m.Str {
		ch := string(r)
		if _, ok := matched[i]; ok {
			b.WriteString(accent.Render(ch))
		} else {
			b.WriteString(styles.Text.Render(ch))
		}
	}
	return b.String()
}
