// Package location converts grid positions to and from shareable
// location tokens of the form "/<deck>/<slide>" (1-based).
package location

import (
	"strconv"
	"strings"

	"github.com/five82/brevity/internal/grid"
)

// Encode returns the 1-based "/deck/slide" token for pos.
func Encode(pos grid.Position) string {
	return "/" + strconv.Itoa(pos.Deck+1) + "/" + strconv.Itoa(pos.Slide+1)
}

// Fragment returns the token prefixed with "#", as appended to a
// presentation path when sharing it.
func Fragment(pos grid.Position) string {
	return "#" + Encode(pos)
}

// Decode parses a token produced by Encode. A leading "#" is optional.
// Segments that are missing, unparsable or below 1 fall back to the
// matching field of def.
func Decode(token string, def grid.Position) grid.Position {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "#")
	token = strings.TrimPrefix(token, "/")

	pos := def
	parts := strings.Split(token, "/")
	if deck, ok := segment(parts, 0); ok {
		pos.Deck = deck
	}
	if slide, ok := segment(parts, 1); ok {
		pos.Slide = slide
	}
	return pos
}

// Start converts 1-based start deck/slide settings into a 0-based position.
func Start(startDeck, startSlide int) grid.Position {
	pos := grid.Position{Deck: startDeck - 1, Slide: startSlide - 1}
	if pos.Deck < 0 {
		pos.Deck = 0
	}
	if pos.Slide < 0 {
		pos.Slide = 0
	}
	return pos
}

// Split separates a "path#/d/s" argument into the path and the token.
// The token is empty when the argument carries no fragment.
func Split(arg string) (path, token string) {
	idx := strings.LastIndex(arg, "#")
	if idx < 0 {
		return arg, ""
	}
	return arg[:idx], arg[idx:]
}

func segment(parts []string, idx int) (int, bool) {
	if idx >= len(parts) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[idx]))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
