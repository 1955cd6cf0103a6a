package nav

// Affordances records which directional controls are offered at the
// current position. Prev and Next follow the reading order and only cross
// a deck edge in continuous mode; Left and Right are only offered where
// vertical movement is exhausted.
type Affordances struct {
	Prev, Next  bool
	Up, Down    bool
	Left, Right bool
}

// Affordances derives the control visibility from the current position.
func (n *Navigator) Affordances() Affordances {
	var a Affordances
	pos := n.pos
	if pos.Slide == 0 {
		if pos.Deck > 0 {
			a.Prev = n.continuous
			a.Left = true
		}
	} else {
		a.Prev = true
		a.Up = true
	}
	if pos.Slide == n.grid.LastSlide(pos.Deck) {
		if pos.Deck < n.grid.LastDeck() {
			a.Next = n.continuous
			a.Right = true
		}
	} else {
		a.Next = true
		a.Down = true
	}
	return a
}
