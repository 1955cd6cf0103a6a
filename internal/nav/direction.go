package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for direction tokens the resolver does not know.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a navigation request on the presentation grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether d moves within a deck.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// ParseDirection maps a direction token ("up", "down", "left", "right")
// to a Direction. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
