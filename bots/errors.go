package bots

import "errors"

var (
	// ErrNoMove is returned by SelectMove when the side to move has no legal
	// moves, i.e. the game is over by checkmate or stalemate.
	ErrNoMove = errors.New("no legal moves")

	ErrUnknownBot = errors.New("unknown bot")
)
