package grid

// Opposite returns the 180° reversal of d. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Reverses reports whether moving next right after d would double back.
// Nothing reverses None.
func (d Direction) Reverses(next Direction) bool {
	return d != None && next == d.Opposite()
}

// Offset returns the (row, col) delta of a single step in d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "direction(?)"
	}
}
