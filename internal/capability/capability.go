// Package capability probes the terminal once at startup and decides which
// gesture adapters the presentation enables.
package capability

import (
	"os"

	"golang.org/x/term"
)

// Capabilities is the immutable result of probing the environment.
type Capabilities struct {
	// Terminal is true when output goes to an interactive terminal.
	Terminal bool
	// Touch is true on terminals driven by a touch screen.
	Touch bool
	// Transitions is true when animated transitions should be drawn.
	Transitions bool
	// Mouse is true when mouse reporting can be requested.
	Mouse bool
}

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// Probe inspects env and whether stdout is a terminal.
func Probe(env Env, isTerminal bool) Capabilities {
	if env == nil {
		env = os.LookupEnv
	}
	termName, _ := env("TERM")
	dumb := termName == "dumb"

	c := Capabilities{Terminal: isTerminal}
	if v, ok := env("BREVITY_TOUCH"); ok && v == "1" {
		c.Touch = true
	}
	if _, ok := env("TERMUX_VERSION"); ok {
		c.Touch = true
	}
	_, reduced := env("BREVITY_REDUCED_MOTION")
	c.Transitions = isTerminal && !dumb && !reduced
	c.Mouse = isTerminal && !dumb
	return c
}

// ProbeStdout probes the process environment against os.Stdout.
func ProbeStdout() Capabilities {
	return Probe(os.LookupEnv, term.IsTerminal(int(os.Stdout.Fd())))
}

// Requested holds the per-adapter switches from configuration. A nil
// switch means "not specified".
type Requested struct {
	Keyboard *bool
	Mouse    *bool
	Touch    *bool
}

// Adapters lists the gesture adapters to install.
type Adapters struct {
	Keyboard bool
	// Wheel enables mouse-wheel navigation.
	Wheel bool
	// Touch enables drag-to-swipe navigation.
	Touch bool
	// Click enables the clickable direction controls.
	Click bool
}

// Select picks the input adapters. The touch adapter replaces keyboard and
// wheel only when it is enabled (auto-detected when not specified) and the
// device is touch. Otherwise keyboard and mouse follow their switches, both
// defaulting to on. Click controls are available whenever the mouse is.
func Select(req Requested, caps Capabilities) Adapters {
	touch := caps.Touch
	if req.Touch != nil {
		touch = *req.Touch
	}
	if touch && caps.Touch && caps.Mouse {
		return Adapters{Touch: true, Click: true}
	}
	return Adapters{
		Keyboard: enabled(req.Keyboard),
		Wheel:    enabled(req.Mouse) && caps.Mouse,
		Click:    caps.Mouse,
	}
}

func enabled(b *bool) bool {
	return b == nil || *b
}
