package capability

import "testing"

func envOf(vars map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func boolPtr(b bool) *bool { return &b }

func TestProbe(t *testing.T) {
	cases := []struct {
		name     string
		vars     map[string]string
		terminal bool
		want     Capabilities
	}{
		{"plain terminal", map[string]string{"TERM": "xterm-256color"}, true,
			Capabilities{Terminal: true, Transitions: true, Mouse: true}},
		{"not a terminal", map[string]string{"TERM": "xterm"}, false,
			Capabilities{}},
		{"dumb terminal", map[string]string{"TERM": "dumb"}, true,
			Capabilities{Terminal: true}},
		{"reduced motion", map[string]string{"TERM": "xterm", "BREVITY_REDUCED_MOTION": ""}, true,
			Capabilities{Terminal: true, Mouse: true}},
		{"termux", map[string]string{"TERM": "xterm", "TERMUX_VERSION": "0.118"}, true,
			Capabilities{Terminal: true, Touch: true, Transitions: true, Mouse: true}},
		{"forced touch", map[string]string{"BREVITY_TOUCH": "1"}, true,
			Capabilities{Terminal: true, Touch: true, Transitions: true, Mouse: true}},
		{"touch flag not 1", map[string]string{"BREVITY_TOUCH": "yes"}, true,
			Capabilities{Terminal: true, Transitions: true, Mouse: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Probe(envOf(tc.vars), tc.terminal); got != tc.want {
				t.Fatalf("Probe = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	desktop := Capabilities{Terminal: true, Transitions: true, Mouse: true}
	touchDevice := Capabilities{Terminal: true, Touch: true, Transitions: true, Mouse: true}

	cases := []struct {
		name string
		req  Requested
		caps Capabilities
		want Adapters
	}{
		{"desktop defaults", Requested{}, desktop, Adapters{Keyboard: true, Wheel: true, Click: true}},
		{"touch auto-detected", Requested{}, touchDevice, Adapters{Touch: true, Click: true}},
		{"touch disabled on touch device", Requested{Touch: boolPtr(false)}, touchDevice,
			Adapters{Keyboard: true, Wheel: true, Click: true}},
		{"touch forced on desktop", Requested{Touch: boolPtr(true)}, desktop,
			Adapters{Keyboard: true, Wheel: true, Click: true}},
		{"mouse disabled", Requested{Mouse: boolPtr(false)}, desktop, Adapters{Keyboard: true, Click: true}},
		{"keyboard disabled", Requested{Keyboard: boolPtr(false)}, desktop, Adapters{Wheel: true, Click: true}},
		{"no mouse support", Requested{}, Capabilities{Terminal: true}, Adapters{Keyboard: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Select(tc.req, tc.caps); got != tc.want {
				t.Fatalf("Select = %+v, want %+v", got, tc.want)
			}
		})
	}
}
