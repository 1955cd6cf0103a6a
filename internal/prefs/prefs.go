// Package prefs persists user preferences between sessions: the selected
// theme and the last location of each presentation. Preferences are stored
// in ~/.config/brevity/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// Bookmarks maps an absolute presentation path to its last location token.
	Bookmarks map[string]string `toml:"bookmarks"`
}

const (
	defaultPrefsPath = "~/.config/brevity/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, Bookmarks: map[string]string{}}
}

// Load reads preferences from path. Missing or unreadable files yield
// defaults; preferences never prevent a presentation from starting.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return defaults()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults()
	}

	p := defaults()
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return defaults()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.Bookmarks == nil {
		p.Bookmarks = map[string]string{}
	}
	return p
}

// Bookmark returns the saved location token for presentation.
func (p Prefs) Bookmark(presentation string) (string, bool) {
	tok, ok := p.Bookmarks[presentation]
	return tok, ok && tok != ""
}

// WithBookmark returns p with the location of presentation set to token.
func (p Prefs) WithBookmark(presentation, token string) Prefs {
	marks := make(map[string]string, len(p.Bookmarks)+1)
	for k, v := range p.Bookmarks {
		marks[k] = v
	}
	marks[presentation] = token
	p.Bookmarks = marks
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// mu serializes Update calls within the process.
var mu sync.Mutex

// Update loads the preferences at path, applies fn and saves the result.
func Update(path string, fn func(Prefs) Prefs) error {
	mu.Lock()
	defer mu.Unlock()
	return Save(path, fn(Load(path)))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
