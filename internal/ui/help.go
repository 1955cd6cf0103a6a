package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k up/down", "Next/previous slide in deck"},
				{"h/l left/right", "Previous/next deck"},
				{"space/pgdn", "Forward (continues into next deck)"},
				{"pgup", "Back"},
				{"home/end", "First/last slide"},
			},
		},
		{
			title: "Views",
			items: []helpItem{
				{"o/esc", "Toggle overview"},
				{"g", "Toggle slide grid"},
				{"/", "Jump to slide"},
				{"f", "Toggle fullscreen"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"y", "Copy location"},
				{"T", "Cycle theme"},
				{"D", "Diagnostics"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}
	if m.adapters.Wheel || m.adapters.Touch {
		mouse := helpSection{title: "Mouse"}
		if m.adapters.Wheel {
			mouse.items = append(mouse.items, helpItem{"wheel", "Next/previous slide"})
		}
		if m.adapters.Touch {
			mouse.items = append(mouse.items, helpItem{"drag", "Swipe between slides"})
		}
		if m.adapters.Click {
			mouse.items = append(mouse.items, helpItem{"click", "Footer arrows"})
		}
		sections = append(sections, mouse)
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(16)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(m.theme, m.width, m.height, 56, strings.TrimRight(b.String(), "\n"))
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
