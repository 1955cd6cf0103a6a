package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/brevity/internal/nav"
)

// control is a clickable direction arrow in the footer.
type control struct {
	id      string
	label   string
	visible func(nav.Affordances) bool
	run     func(*nav.Navigator) nav.Result
}

var footerControls = []control{
	{
		id:      "ctl-prev",
		label:   "‹ prev",
		visible: func(a nav.Affordances) bool { return a.Prev },
		run:     (*nav.Navigator).Prev,
	},
	{
		id:      "ctl-left",
		label:   "←",
		visible: func(a nav.Affordances) bool { return a.Left },
		run:     func(n *nav.Navigator) nav.Result { return n.Navigate(nav.Left) },
	},
	{
		id:      "ctl-up",
		label:   "↑",
		visible: func(a nav.Affordances) bool { return a.Up },
		run:     func(n *nav.Navigator) nav.Result { return n.Navigate(nav.Up) },
	},
	{
		id:      "ctl-down",
		label:   "↓",
		visible: func(a nav.Affordances) bool { return a.Down },
		run:     func(n *nav.Navigator) nav.Result { return n.Navigate(nav.Down) },
	},
	{
		id:      "ctl-right",
		label:   "→",
		visible: func(a nav.Affordances) bool { return a.Right },
		run:     func(n *nav.Navigator) nav.Result { return n.Navigate(nav.Right) },
	},
	{
		id:      "ctl-next",
		label:   "next ›",
		visible: func(a nav.Affordances) bool { return a.Next },
		run:     (*nav.Navigator).Next,
	},
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	pos := m.nav.Position()
	g := m.nav.Grid()

	left := bg.Space() + bg.Render(m.presentation.Title(), styles.AccentText.Bold(true))
	if slide, ok := m.presentation.Slide(pos); ok && slide.Title != "" && slide.Title != m.presentation.Title() {
		left += bg.Render("  "+slide.Title, styles.MutedText)
	}

	var right []string
	if m.flash != "" {
		style := styles.SuccessText
		if m.flashErr {
			style = styles.DangerText
		}
		right = append(right, bg.Render(m.flash, style))
	}
	if m.lastErr != nil && m.flash == "" {
		right = append(right, bg.Render("reload failed", styles.DangerText))
	}
	if m.nav.Busy() {
		right = append(right, bg.Render("●", styles.WarningText))
	}
	right = append(right,
		bg.Render(fmt.Sprintf("deck %d/%d", pos.Deck+1, g.Decks()), styles.Text),
		bg.Render(fmt.Sprintf("slide %d/%d", pos.Slide+1, g.Slides(pos.Deck)), styles.Text),
	)
	return m.bar(bg, left, strings.Join(right, bg.Spaces(2))+bg.Space())
}

// renderFooter renders the direction controls and the location.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	a := m.nav.Affordances()
	parts := make([]string, 0, len(footerControls))
	for _, c := range footerControls {
		on := c.visible(a)
		style := styles.ControlOff
		if on {
			style = styles.Control
		}
		label := bg.Render(c.label, style)
		if on && m.adapters.Click {
			label = m.zones.Mark(c.id, label)
		}
		parts = append(parts, label)
	}
	left := bg.Space() + strings.Join(parts, bg.Spaces(2))

	g := m.nav.Grid()
	pos := m.nav.Position()
	right := strings.Join([]string{
		bg.Render(m.nav.Token(), styles.AccentText),
		bg.Render(fmt.Sprintf("%d/%d", g.Ordinal(pos), g.Total()), styles.MutedText),
		bg.Render("? help", styles.FaintText),
	}, bg.Spaces(2)) + bg.Space()

	return m.bar(bg, left, right)
}

// bar lays out left and right on one full-width line.
func (m Model) bar(bg BgStyle, left, right string) string {
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		left = ansi.Truncate(left, max(m.width-ansi.StringWidth(right)-1, 0), "…")
		gap = max(m.width-ansi.StringWidth(left)-ansi.StringWidth(right), 0)
	}
	return left + bg.Spaces(gap) + right
}

// facts lists runtime details for the diagnostics overlay.
func (m Model) facts() []string {
	snap := m.store.Snapshot()
	g := m.nav.Grid()
	layout := m.driver.Layout()
	facts := []string{
		"Presentation: " + m.presentation.Path,
		fmt.Sprintf("Decks: %d  Slides: %d  Location: %s", g.Decks(), g.Total(), m.nav.Token()),
		fmt.Sprintf("Viewport: %dx%d  Ratio: %.2f cells/ms", layout.Width, layout.Height, m.opts.Ratio),
		fmt.Sprintf("Capabilities: terminal=%t touch=%t transitions=%t mouse=%t",
			m.caps.Terminal, m.caps.Touch, m.caps.Transitions, m.caps.Mouse),
		fmt.Sprintf("Adapters: keyboard=%t wheel=%t touch=%t click=%t",
			m.adapters.Keyboard, m.adapters.Wheel, m.adapters.Touch, m.adapters.Click),
		fmt.Sprintf("Busy: %t  Navigations: %d  Last outcome: %s", m.nav.Busy(), snap.Navigations, snap.LastOutcome),
		fmt.Sprintf("Theme: %s (slides: %s)  Render failures: %d", m.theme.Name, m.renderStyle(), m.slides.failures),
	}
	if m.lastErr != nil {
		facts = append(facts, "Last error: "+m.lastErr.Error())
	}
	return facts
}
