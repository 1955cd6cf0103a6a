package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTalk(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.md")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write talk: %v", err)
	}
	return path
}

func TestInspect(t *testing.T) {
	path := writeTalk(t, "---\ntitle: Review\nstart_deck: 2\n---\n# Intro\n---\n# Agenda\n===\n# Numbers\n")

	var b strings.Builder
	if err := Inspect(&b, path); err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Title:  Review", "Decks:  2", "Slides: 3 [2 1]", "Start:  /2/1", "/1/2", "Agenda", "/2/1", "Numbers"} {
		if !strings.Contains(out, want) {
			t.Errorf("Inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_MissingFile(t *testing.T) {
	var b strings.Builder
	if err := Inspect(&b, filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatal("Inspect of a missing file returned nil error")
	}
}
