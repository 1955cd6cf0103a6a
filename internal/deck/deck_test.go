package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/brevity/internal/grid"
)

const sample = `---
title: Quarterly review
continuous: false
ratio: 0.5
start_deck: 2
start_slide: 3
theme: kanagawa
---
# Welcome

Intro text
---
## Agenda
- one
- two
===
# Numbers

` + "```go" + `
x := 1
---
===
` + "```" + `
---

---
Plain first line
and more
===


===
# Last
`

func TestParse_SplitsDecksAndSlides(t *testing.T) {
	p, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := p.Counts()
	want := []int{2, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Counts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Counts = %v, want %v", got, want)
		}
	}

	titles := []string{}
	for _, e := range p.Entries() {
		titles = append(titles, e.Title)
	}
	wantTitles := []string{"Welcome", "Agenda", "Numbers", "Plain first line", "Last"}
	if strings.Join(titles, "|") != strings.Join(wantTitles, "|") {
		t.Fatalf("titles = %q, want %q", titles, wantTitles)
	}

	s, ok := p.Slide(grid.Position{Deck: 1, Slide: 0})
	if !ok {
		t.Fatalf("Slide(1,0) missing")
	}
	if !strings.Contains(s.Body, "x := 1\n---\n===") {
		t.Fatalf("fenced separators were split: %q", s.Body)
	}
}

func TestParse_FrontMatter(t *testing.T) {
	p, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	m := p.Meta
	if m.Title != "Quarterly review" || m.Theme != "kanagawa" {
		t.Fatalf("Meta = %+v", m)
	}
	if m.Continuous == nil || *m.Continuous {
		t.Fatalf("Continuous = %v, want false", m.Continuous)
	}
	if m.Ratio == nil || *m.Ratio != 0.5 {
		t.Fatalf("Ratio = %v, want 0.5", m.Ratio)
	}
	if m.StartDeck != 2 || m.StartSlide != 3 {
		t.Fatalf("start = %d/%d, want 2/3", m.StartDeck, m.StartSlide)
	}
	if p.Title() != "Quarterly review" {
		t.Fatalf("Title = %q", p.Title())
	}
}

func TestParse_LeadingSeparatorIsNotFrontMatter(t *testing.T) {
	p, err := Parse([]byte("---\n# One\n---\n# Two\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := p.Counts(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("Counts = %v, want [2]", got)
	}
	if p.Title() != "One" {
		t.Fatalf("Title = %q, want One", p.Title())
	}
}

func TestParse_InvalidYAMLIsLeadingSlide(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		counts []int
		title  string
	}{
		{"unclosed flow", "---\ntitle: [unclosed\n---\n# Slide\n", []int{2}, "title: [unclosed"},
		{"colons in list", "---\n# Agenda\n- Setup: install: go\n---\n# Two\n", []int{2}, "Agenda"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.src))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			got := p.Counts()
			if len(got) != len(tt.counts) || got[0] != tt.counts[0] {
				t.Fatalf("Counts = %v, want %v", got, tt.counts)
			}
			if p.Title() != tt.title {
				t.Fatalf("Title = %q, want %q", p.Title(), tt.title)
			}
			if p.Meta != (Meta{}) {
				t.Fatalf("Meta = %+v, want zero", p.Meta)
			}
		})
	}
}

func TestParse_BadFrontMatterValue(t *testing.T) {
	_, err := Parse([]byte("---\nstart_deck: two\n---\n# Slide\n"))
	if err == nil {
		t.Fatalf("expected front matter decode error")
	}
}

func TestParse_CRLF(t *testing.T) {
	p, err := Parse([]byte("# A\r\n---\r\n# B\r\n===\r\n# C\r\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := p.Counts(); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("Counts = %v, want [2 1]", got)
	}
}

func TestParse_NoSlides(t *testing.T) {
	for _, src := range []string{"", "  \n", "---\n\n---\n===\n"} {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrNoSlides) {
			t.Fatalf("Parse(%q) error = %v, want ErrNoSlides", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	if err := os.WriteFile(path, []byte("# Hello\n---\n# World\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !filepath.IsAbs(p.Path) {
		t.Fatalf("Path = %q, want absolute", p.Path)
	}
	g, err := p.Grid()
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	if g.Total() != 2 {
		t.Fatalf("Total = %d, want 2", g.Total())
	}

	if _, err := Load(filepath.Join(dir, "missing.md")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRenderer_RendersAndCaches(t *testing.T) {
	r := NewRenderer("notty")
	out, err := r.Render("# Title\n\nSome body text", 40)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Title") || !strings.Contains(plain, "Some body text") {
		t.Fatalf("rendered output missing content: %q", plain)
	}
	again, err := r.Render("# Title\n\nSome body text", 40)
	if err != nil || again != out {
		t.Fatalf("second render differed: %q vs %q (%v)", again, out, err)
	}
	wide, err := r.Render("# Title\n\nSome body text", 60)
	if err != nil {
		t.Fatalf("Render at new width returned error: %v", err)
	}
	if !strings.Contains(ansi.Strip(wide), "Some body text") {
		t.Fatalf("wide render missing content: %q", wide)
	}
}
