// Package entity provides the characters that walk the forest and the
// walker that moves them along planned paths.
package entity

// Direction is one of the four ways a character can face.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Offset returns the column and row deltas of one step in direction d.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Rotation is a quarter turn.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Rotate returns the direction after a quarter turn.
func (d Direction) Rotate(r Rotation) Direction {
	return Direction((int(d) + int(r) + len(Directions)) % len(Directions))
}
