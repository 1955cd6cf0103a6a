package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Bookmarks == nil || len(p.Bookmarks) != 0 {
		t.Fatalf("Bookmarks = %v, want empty map", p.Bookmarks)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "brevity")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	data := "theme = \"Slate\"\n\n[bookmarks]\n\"/talks/a.md\" = \"/2/3\"\n"
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if tok, ok := p.Bookmark("/talks/a.md"); !ok || tok != "/2/3" {
		t.Fatalf("Bookmark = %q, %v, want /2/3", tok, ok)
	}
}

func TestSave_RoundTripsBookmarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	p := Prefs{Theme: "Kanagawa"}.WithBookmark("/talks/b.md", "/1/4")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(path)
	if loaded.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", loaded.Theme)
	}
	if tok, ok := loaded.Bookmark("/talks/b.md"); !ok || tok != "/1/4" {
		t.Fatalf("Bookmark = %q, %v, want /1/4", tok, ok)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}
}

func TestWithBookmark_DoesNotMutateReceiver(t *testing.T) {
	base := Prefs{Bookmarks: map[string]string{"a": "/1/1"}}
	next := base.WithBookmark("a", "/2/2")
	if base.Bookmarks["a"] != "/1/1" {
		t.Fatalf("receiver mutated: %v", base.Bookmarks)
	}
	if next.Bookmarks["a"] != "/2/2" {
		t.Fatalf("bookmark = %q, want /2/2", next.Bookmarks["a"])
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(path); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if _, ok := p.Bookmark("anything"); ok {
		t.Fatalf("unexpected bookmark after invalid file")
	}
}

func TestUpdate_KeepsOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Dracula"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	err := Update(path, func(p Prefs) Prefs { return p.WithBookmark("/talks/a.md", "/2/1") })
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	loaded := Load(path)
	if loaded.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want Dracula", loaded.Theme)
	}
	if tok, ok := loaded.Bookmark("/talks/a.md"); !ok || tok != "/2/1" {
		t.Fatalf("Bookmark = %q, %v, want /2/1", tok, ok)
	}
}
