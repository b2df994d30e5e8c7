package rules

import (
	"fmt"

	"github.com/domino14/reversi/board"
)

// IllegalMoveError is returned when a move targets an occupied cell or
// captures nothing. It is always recoverable: the move is rejected and
// nothing changes.
type IllegalMoveError struct {
	Pos    board.Position
	Player board.Player
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v: %s", e.Pos, e.Player, e.Reason)
}
