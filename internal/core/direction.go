package core

// Direction is one of the four unit moves on the grid. The zero value means
// no direction and is used for "nothing requested".
type Direction uint8

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit vector for d. Screen coordinates grow downwards, so
// Up is (0,-1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

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

// Directions lists the four valid directions.
func Directions() []Direction { return []Direction{Up, Down, Left, Right} }
