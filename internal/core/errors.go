package core

import "errors"

var (
	// ErrBoardFull is returned when no free cell is left for the apple.
	ErrBoardFull = errors.New("board is full")

	// ErrUnknownFrontend is returned when a frontend name is not registered.
	ErrUnknownFrontend = errors.New("unknown frontend")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)
