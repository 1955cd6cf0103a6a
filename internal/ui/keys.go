package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the presentation.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	Diagnostics key.Binding
	Escape      key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding

	// View toggles
	Fullscreen key.Binding
	Overview   key.Binding
	Grid       key.Binding
	Jump       key.Binding
	Copy       key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Diagnostics"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous slide"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next slide"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous deck"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next deck"),
		),
		Next: key.NewBinding(
			key.WithKeys(" ", "pgdown", "enter"),
			key.WithHelp("space/pgdn", "Forward"),
		),
		Prev: key.NewBinding(
			key.WithKeys("pgup", "backspace"),
			key.WithHelp("pgup", "Back"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last slide"),
		),

		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle fullscreen"),
		),
		Overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Toggle overview"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Toggle slide grid"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Jump to slide"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy location"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev, k.First, k.Last},
		{k.Overview, k.Grid, k.Jump, k.Fullscreen, k.Copy},
		{k.CycleTheme, k.Diagnostics, k.Help, k.Quit},
	}
}
