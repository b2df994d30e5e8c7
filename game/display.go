package game

import (
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

func (s *Session) playerString(p board.Player, scores board.Scores) string {
	marker := " "
	if s.status == Playing && s.current == p {
		marker = "->"
	}
	return fmt.Sprintf("%-2s %-5s (%s) %2d", marker, p, p.Cell().DisplayString(), scores.For(p))
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (s *Session) ToDisplayText() string {
	bts := strings.Split(s.board.ToDisplayText(), "\n")
	hpadding := 3
	// Line 0 is blank; rows start on line 3.
	vpadding := 3
	scores := s.board.Scores()

	for pi, p := range board.Players {
		addText(bts, vpadding+pi, hpadding, s.playerString(p, scores))
	}
	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Turn %d", s.turn))
	if s.lastMove != nil {
		addText(bts, vpadding+4, hpadding,
			fmt.Sprintf("Last: %v %v", s.lastMove.Player(), s.lastMove.ShortDescription()))
	}
	if s.status == Finished {
		addText(bts, vpadding+6, hpadding, "Game is over. "+s.Winner().String()+".")
	}
	return strings.Join(bts, "\n")
}
