// Package config loads the navigator configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/brevity/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	debug = false
//	ratio = 0.16          # cells per millisecond
//	continuous = true     # up/down spill over into the next deck
//	touch = true          # optional; auto-detected when absent
//	mouse = true
//	keyboard = true
//	start_deck = 1        # 1-based
//	start_slide = 1
//	theme = "Nightfox"
//	log_file = "~/.local/state/brevity/brevity.log"
//	remote = "127.0.0.1:7711"   # empty disables remote control
//	watch = true
//	resume = false
//
// All fields are optional. Tilde expansion is performed for log_file.
//
// # Layering
//
// Presentation front matter and command-line flags are applied on top of
// the loaded file with Config.Apply, in that order.
package config
