package turnplayer

import (
	"context"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

// TurnPlayer picks a move for the side on turn in a session.
type TurnPlayer interface {
	ChooseMove(ctx context.Context, s *game.Session) (board.Position, error)
}
