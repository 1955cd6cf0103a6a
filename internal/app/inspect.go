package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/brevity/internal/deck"
	"github.com/five82/brevity/internal/location"
)

// Inspect writes a summary of the presentation at path: its settings, the
// shape of the grid and the location and title of every slide.
func Inspect(w io.Writer, path string) error {
	pres, err := deck.Load(path)
	if err != nil {
		return fmt.Errorf("load presentation: %w", err)
	}
	g, err := pres.Grid()
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	fmt.Fprintf(w, "Title:  %s\n", pres.Title())
	fmt.Fprintf(w, "Path:   %s\n", pres.Path)
	fmt.Fprintf(w, "Decks:  %d\n", g.Decks())
	fmt.Fprintf(w, "Slides: %d %v\n", g.Total(), g.Counts())

	meta := pres.Meta
	if meta.Continuous != nil {
		fmt.Fprintf(w, "Continuous: %t\n", *meta.Continuous)
	}
	if meta.Ratio != nil {
		fmt.Fprintf(w, "Ratio:  %s\n", strconv.FormatFloat(*meta.Ratio, 'g', -1, 64))
	}
	if meta.StartDeck > 0 || meta.StartSlide > 0 {
		fmt.Fprintf(w, "Start:  %s\n", location.Encode(location.Start(meta.StartDeck, meta.StartSlide)))
	}
	if meta.Theme != "" {
		fmt.Fprintf(w, "Theme:  %s\n", meta.Theme)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LOCATION", "TITLE")
	for _, e := range pres.Entries() {
		t.Row(location.Encode(e.Position), e.Title)
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
