package turnplayer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/move"
)

// ParseMove turns typed input such as "d3" or "pass" into a move for
// player. Captures are not filled in; the session computes them.
func ParseMove(player board.Player, fields []string) (*move.Move, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("unrecognized move: %s", strings.Join(fields, " "))
	}
	f := strings.ToLower(fields[0])
	if f == "pass" {
		return move.NewPassMove(player), nil
	}
	pos, err := board.PositionFromString(f)
	if err != nil {
		return nil, errors.New("unrecognized move: " + fields[0])
	}
	return move.NewPlayMove(pos, player, nil), nil
}

// ApplyParsed plays a parsed move on s.
func ApplyParsed(s *game.Session, m *move.Move) error {
	if m.Player() != s.CurrentPlayer() {
		return fmt.Errorf("it is %v's turn", s.CurrentPlayer())
	}
	if m.Action() == move.MoveTypePass {
		return s.Pass()
	}
	return s.ApplyMove(m.Position())
}
