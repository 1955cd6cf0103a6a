package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the navigator settings.
type Config struct {
	Debug      bool
	Ratio      float64
	Continuous bool
	// Adapter switches; nil means "not specified".
	Touch    *bool
	Mouse    *bool
	Keyboard *bool
	// StartDeck and StartSlide are 1-based.
	StartDeck  int
	StartSlide int
	Theme      string
	LogFile    string
	Remote     string
	Watch      bool
	Resume     bool
}

const (
	defaultConfigPath = "~/.config/brevity/config.toml"
	defaultLogFile    = "~/.local/state/brevity/brevity.log"
	defaultRatio      = 0.16
	defaultTheme      = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Ratio:      defaultRatio,
		Continuous: true,
		StartDeck:  1,
		StartSlide: 1,
		Theme:      defaultTheme,
		LogFile:    mustExpand(defaultLogFile),
		Watch:      true,
	}
}

// Load reads the config at path (the default location when empty). A
// missing file yields Default.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Debug      bool    `toml:"debug"`
		Ratio      float64 `toml:"ratio"`
		Continuous *bool   `toml:"continuous"`
		Touch      *bool   `toml:"touch"`
		Mouse      *bool   `toml:"mouse"`
		Keyboard   *bool   `toml:"keyboard"`
		StartDeck  int     `toml:"start_deck"`
		StartSlide int     `toml:"start_slide"`
		Theme      string  `toml:"theme"`
		LogFile    string  `toml:"log_file"`
		Remote     string  `toml:"remote"`
		Watch      *bool   `toml:"watch"`
		Resume     bool    `toml:"resume"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Debug = raw.Debug
	if valid(raw.Ratio) {
		cfg.Ratio = raw.Ratio
	}
	if raw.Continuous != nil {
		cfg.Continuous = *raw.Continuous
	}
	cfg.Touch, cfg.Mouse, cfg.Keyboard = raw.Touch, raw.Mouse, raw.Keyboard
	if raw.StartDeck > 0 {
		cfg.StartDeck = raw.StartDeck
	}
	if raw.StartSlide > 0 {
		cfg.StartSlide = raw.StartSlide
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.Remote = strings.TrimSpace(raw.Remote)
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	cfg.Resume = raw.Resume

	return cfg, nil
}

// Overrides are presentation- or command-line-level settings layered on top
// of a loaded Config. Zero values leave the Config untouched.
type Overrides struct {
	Continuous *bool
	Ratio      *float64
	StartDeck  int
	StartSlide int
	Theme      string
	Debug      *bool
	Remote     *string
	Watch      *bool
}

// Apply returns c with o layered on top.
func (c Config) Apply(o Overrides) Config {
	if o.Continuous != nil {
		c.Continuous = *o.Continuous
	}
	if o.Ratio != nil && valid(*o.Ratio) {
		c.Ratio = *o.Ratio
	}
	if o.StartDeck > 0 {
		c.StartDeck = o.StartDeck
	}
	if o.StartSlide > 0 {
		c.StartSlide = o.StartSlide
	}
	if theme := strings.TrimSpace(o.Theme); theme != "" {
		c.Theme = theme
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Remote != nil {
		c.Remote = strings.TrimSpace(*o.Remote)
	}
	if o.Watch != nil {
		c.Watch = *o.Watch
	}
	return c
}

// Dir returns the directory holding config and prefs.
func Dir() string {
	return filepath.Dir(mustExpand(defaultConfigPath))
}

func valid(ratio float64) bool {
	return ratio > 0 && !math.IsInf(ratio, 0) && !math.IsNaN(ratio)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
