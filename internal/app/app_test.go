package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/brevity/internal/config"
	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/prefs"
)

const threeDecks = "# One\n---\n# Two\n===\n# Three\n---\n# Four\n===\n# Five\n"

func testOptions(t *testing.T, target string) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		ConfigPath: filepath.Join(dir, "config.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Target:     target,
	}
}

func TestPrepare_StartLocation(t *testing.T) {
	path := writeTalk(t, threeDecks)

	tests := []struct {
		name   string
		target string
		at     string
		over   config.Overrides
		want   grid.Position
	}{
		{"default", path, "", config.Overrides{}, grid.Position{}},
		{"fragment", path + "#/2/2", "", config.Overrides{}, grid.Position{Deck: 1, Slide: 1}},
		{"at beats fragment", path + "#/2/2", "/3/1", config.Overrides{}, grid.Position{Deck: 2}},
		{"partial fragment", path + "#/2", "", config.Overrides{}, grid.Position{Deck: 1}},
		{"start flags", path, "", config.Overrides{StartDeck: 2, StartSlide: 2}, grid.Position{Deck: 1, Slide: 1}},
		{"deck out of range", path + "#/9/1", "", config.Overrides{StartDeck: 2, StartSlide: 2}, grid.Position{Deck: 1}},
		{"slide out of range", path + "#/1/7", "", config.Overrides{StartDeck: 2, StartSlide: 2}, grid.Position{Deck: 0, Slide: 1}},
		{"fallback clamped", path + "#/3/4", "", config.Overrides{StartDeck: 2, StartSlide: 2}, grid.Position{Deck: 2}},
		{"start flags clamped", path, "", config.Overrides{StartDeck: 5, StartSlide: 3}, grid.Position{Deck: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t, tt.target)
			opts.At = tt.at
			opts.Overrides = tt.over
			sess, err := Prepare(opts)
			if err != nil {
				t.Fatalf("Prepare returned error: %v", err)
			}
			if sess.Start != tt.want {
				t.Fatalf("Start = %+v, want %+v", sess.Start, tt.want)
			}
		})
	}
}

func TestPrepare_FrontMatterThenFlags(t *testing.T) {
	path := writeTalk(t, "---\ncontinuous: false\nratio: 0.5\nstart_deck: 3\ntheme: Dracula\n---\n"+threeDecks)

	sess, err := Prepare(testOptions(t, path))
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if sess.Config.Continuous {
		t.Error("Continuous = true, want false from front matter")
	}
	if sess.Config.Ratio != 0.5 {
		t.Errorf("Ratio = %v, want 0.5", sess.Config.Ratio)
	}
	if sess.Start != (grid.Position{Deck: 2}) {
		t.Errorf("Start = %+v, want deck 3", sess.Start)
	}
	if sess.Theme != "Dracula" {
		t.Errorf("Theme = %q, want Dracula", sess.Theme)
	}

	on := true
	opts := testOptions(t, path)
	opts.Overrides = config.Overrides{Continuous: &on, Theme: "Slate"}
	sess, err = Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if !sess.Config.Continuous {
		t.Error("Continuous = false, want true from flag")
	}
	if sess.Theme != "Slate" {
		t.Errorf("Theme = %q, want Slate", sess.Theme)
	}
}

func TestPrepare_ThemeFromPrefs(t *testing.T) {
	path := writeTalk(t, threeDecks)
	opts := testOptions(t, path)
	if err := prefs.Save(opts.PrefsPath, prefs.Prefs{Theme: "Dawnfox"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	sess, err := Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if sess.Theme != "Dawnfox" {
		t.Fatalf("Theme = %q, want Dawnfox", sess.Theme)
	}
}

func TestPrepare_ResumesBookmark(t *testing.T) {
	path := writeTalk(t, threeDecks)
	opts := testOptions(t, path)
	if err := os.WriteFile(opts.ConfigPath, []byte("resume = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	if err := prefs.Save(opts.PrefsPath, prefs.Prefs{}.WithBookmark(abs, "/2/2")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	sess, err := Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if sess.Start != (grid.Position{Deck: 1, Slide: 1}) {
		t.Fatalf("Start = %+v, want /2/2", sess.Start)
	}

	// An explicit location wins over the bookmark.
	opts.Target = path + "#/3/1"
	sess, err = Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if sess.Start != (grid.Position{Deck: 2}) {
		t.Fatalf("Start = %+v, want /3/1", sess.Start)
	}
}

func TestPrepare_Errors(t *testing.T) {
	if _, err := Prepare(testOptions(t, "")); err == nil {
		t.Error("Prepare without target returned nil error")
	}
	if _, err := Prepare(testOptions(t, filepath.Join(t.TempDir(), "missing.md"))); err == nil {
		t.Error("Prepare of a missing file returned nil error")
	}
	opts := testOptions(t, writeTalk(t, threeDecks))
	if err := os.WriteFile(opts.ConfigPath, []byte("ratio = [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Prepare(opts); err == nil {
		t.Error("Prepare with invalid config returned nil error")
	}
}
