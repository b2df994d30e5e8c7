// Package rules implements Reversi move legality, captures and game-end
// detection. All functions are pure: boards are passed and returned by value.
package rules

import (
	"github.com/domino14/reversi/board"
)

type direction struct {
	dr, dc int
}

// directions are scanned in this order; captured positions are reported in
// the same order.
var directions = [8]direction{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Outcome is the result of a game.
type Outcome uint8

const (
	// NoOutcome means the game is not over.
	NoOutcome Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black wins"
	case WhiteWins:
		return "White wins"
	case Draw:
		return "Draw"
	}
	return "in progress"
}

// Winner returns the winning side, if any.
func (o Outcome) Winner() (board.Player, bool) {
	switch o {
	case BlackWins:
		return board.Black, true
	case WhiteWins:
		return board.White, true
	}
	return 0, false
}

// runLength returns how many opponent discs starting next to pos in
// direction d are bracketed by a disc of mine. Zero means no capture.
// Scanning stops at the board edge, so rows never wrap.
func runLength(b *board.Board, pos board.Position, d direction, mine, theirs board.Cell) int {
	n := 0
	cur := board.Position{Row: pos.Row + d.dr, Col: pos.Col + d.dc}
	for cur.InBounds() {
		switch b.At(cur) {
		case theirs:
			n++
		case mine:
			return n
		default:
			return 0
		}
		cur.Row += d.dr
		cur.Col += d.dc
	}
	return 0
}

func isLegal(b *board.Board, pos board.Position, mine, theirs board.Cell) bool {
	if !b.IsEmptyAt(pos) {
		return false
	}
	for _, d := range directions {
		if runLength(b, pos, d, mine, theirs) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for p in row-major order.
func LegalMoves(b board.Board, p board.Player) []board.Position {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	var moves []board.Position
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			pos := board.Position{Row: r, Col: c}
			if isLegal(&b, pos, mine, theirs) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// CountMoves returns len(LegalMoves(b, p)) without allocating.
func CountMoves(b board.Board, p board.Player) int {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	n := 0
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			if isLegal(&b, board.Position{Row: r, Col: c}, mine, theirs) {
				n++
			}
		}
	}
	return n
}

// HasAnyMove returns true if p has at least one legal move.
func HasAnyMove(b board.Board, p board.Player) bool {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			if isLegal(&b, board.Position{Row: r, Col: c}, mine, theirs) {
				return true
			}
		}
	}
	return false
}

// CapturedBy returns the discs that would flip if p played at pos. It is
// empty if pos is off the board, occupied, or brackets nothing.
func CapturedBy(b board.Board, pos board.Position, p board.Player) []board.Position {
	if !b.IsEmptyAt(pos) {
		return nil
	}
	mine, theirs := p.Cell(), p.Opponent().Cell()
	var captured []board.Position
	for _, d := range directions {
		n := runLength(&b, pos, d, mine, theirs)
		for i := 1; i <= n; i++ {
			captured = append(captured, board.Position{
				Row: pos.Row + i*d.dr,
				Col: pos.Col + i*d.dc,
			})
		}
	}
	return captured
}

// ApplyMove places p's disc at pos and flips every captured disc. The
// input board is untouched; the new board is returned along with the
// captured positions.
func ApplyMove(b board.Board, pos board.Position, p board.Player) (board.Board, []board.Position, error) {
	if !pos.InBounds() {
		return b, nil, &IllegalMoveError{Pos: pos, Player: p, Reason: "off the board"}
	}
	if b.At(pos) != board.Empty {
		return b, nil, &IllegalMoveError{Pos: pos, Player: p, Reason: "cell is occupied"}
	}
	captured := CapturedBy(b, pos, p)
	if len(captured) == 0 {
		return b, nil, &IllegalMoveError{Pos: pos, Player: p, Reason: "captures nothing"}
	}
	// b is our own copy.
	mine := p.Cell()
	b.Set(pos, mine)
	for _, c := range captured {
		b.Set(c, mine)
	}
	return b, captured, nil
}

// IsTerminal returns true iff neither side has a legal move.
func IsTerminal(b board.Board) bool {
	return !HasAnyMove(b, board.Black) && !HasAnyMove(b, board.White)
}

// Winner returns NoOutcome if the game is not over; otherwise the side with
// strictly more discs wins, and equal counts are a Draw.
func Winner(b board.Board) Outcome {
	if !IsTerminal(b) {
		return NoOutcome
	}
	return OutcomeByCount(b)
}

// OutcomeByCount compares disc counts without checking whether the game
// is over.
func OutcomeByCount(b board.Board) Outcome {
	s := b.Scores()
	switch {
	case s.Black > s.White:
		return BlackWins
	case s.White > s.Black:
		return WhiteWins
	}
	return Draw
}
