package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the chrome colors and the glamour style used for slides.
type Theme struct {
	Name string

	// Glamour is the standard glamour style slides are rendered with.
	Glamour string

	// Base colors
	Background string // behind the slides
	Surface    string // header and footer bars
	SurfaceAlt string // overlays
	FocusBg    string // highlighted rows

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		ControlOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style

	// Control renders an available direction arrow, ControlOff an
	// unavailable one.
	Control    lipgloss.Style
	ControlOff lipgloss.Style
}

// WithBackground returns a copy of Styles with every style given an
// explicit background, so adjacent segments don't leave gaps.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Header:   s.Header.Background(bg),
		Footer:   s.Footer.Background(bg),
		Selected: s.Selected,

		Control:    s.Control.Background(bg),
		ControlOff: s.ControlOff.Background(bg),
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Dawnfox":  dawnfoxTheme(),
	"Dracula":  draculaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Dawnfox", "Dracula", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// EdenEast/nightfox.nvim palette
	return Theme{
		Name:    "Nightfox",
		Glamour: "dark",

		Background: "#192330", // bg1
		Surface:    "#131a24", // bg0
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#2b3b51", // sel0

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#aeafb0", // fg2
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#f4a261", // orange
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func dawnfoxTheme() Theme {
	return Theme{
		Name:    "Dawnfox",
		Glamour: "light",

		Background: "#faf4ed",
		Surface:    "#ebe0df",
		SurfaceAlt: "#ebe5df",
		FocusBg:    "#d0d8d8",

		Border:      "#bdbfc9",
		BorderFocus: "#286983",

		Text:    "#575279",
		Muted:   "#625c87",
		Faint:   "#9893a5",
		Accent:  "#286983",
		Success: "#618774",
		Warning: "#d7827e",
		Danger:  "#b4637a",
		Info:    "#56949f",
	}
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name:    "Dracula",
		Glamour: "dracula",

		Background: "#282A36", // Background
		Surface:    "#191A21", // BGDarker
		SurfaceAlt: "#21222C", // BGDark
		FocusBg:    "#44475A", // Selection

		Border:      "#44475A",
		BorderFocus: "#BD93F9", // Purple

		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Success: "#50FA7B",
		Warning: "#FFB86C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:    "Slate",
		Glamour: "dark",

		Background: "#0f172a", // slate-900
		Surface:    "#020617", // slate-950
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
	}
}
