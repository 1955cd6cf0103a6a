package ui

import "testing"

func TestDefaultKeyMap_HelpIsComplete(t *testing.T) {
	keys := DefaultKeyMap()
	for i, row := range keys.FullHelp() {
		for _, b := range row {
			if len(b.Keys()) == 0 {
				t.Errorf("FullHelp row %d has a binding without keys", i)
			}
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
	if got := len(keys.ShortHelp()); got != 2 {
		t.Errorf("ShortHelp returned %d bindings, want 2", got)
	}
}

func TestDefaultKeyMap_NavigationKeysDistinct(t *testing.T) {
	keys := DefaultKeyMap()
	seen := map[string]string{}
	named := map[string][]string{
		"up":    keys.Up.Keys(),
		"down":  keys.Down.Keys(),
		"left":  keys.Left.Keys(),
		"right": keys.Right.Keys(),
		"next":  keys.Next.Keys(),
		"prev":  keys.Prev.Keys(),
		"first": keys.First.Keys(),
		"last":  keys.Last.Keys(),
	}
	for name, ks := range named {
		for _, k := range ks {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}
