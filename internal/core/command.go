package core

// Command is a discrete input produced by an InputSource.
type Command uint8

const (
	MoveUp Command = iota + 1
	MoveDown
	MoveLeft
	MoveRight
	SpeedUp
	SpeedDown
	Quit
)

// IsMove reports whether c requests a heading change.
func (c Command) IsMove() bool { return c >= MoveUp && c <= MoveRight }

// Direction maps a move command to its direction.
func (c Command) Direction() Direction {
	switch c {
	case MoveUp:
		return Up
	case MoveDown:
		return Down
	case MoveLeft:
		return Left
	case MoveRight:
		return Right
	default:
		return NoDirection
	}
}

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
