package logic

import "errors"

var (
	ErrBoardSizeOutOfRange = errors.New("board size out of range")
	ErrGameNotFound        = errors.New("game not found")
	ErrGameOver            = errors.New("game is over")
	ErrGameExists          = errors.New("game is already loaded")
	ErrInvalidRules        = errors.New("invalid rules")
)
