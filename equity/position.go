package equity

import (
	"github.com/domino14/reversi/board"
)

// PositionWeights is the fixed per-cell table. Corners are strongly
// positive, the cells touching them strongly negative, edges mildly
// positive and the interior mildly negative.
var PositionWeights = [board.Dim][board.Dim]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// PositionCalculator sums table weights: + for p's discs, - for the
// opponent's.
type PositionCalculator struct{}

func (PositionCalculator) Evaluate(b board.Board, p board.Player) float64 {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	score := 0.0
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			switch b.At(board.Position{Row: r, Col: c}) {
			case mine:
				score += PositionWeights[r][c]
			case theirs:
				score -= PositionWeights[r][c]
			}
		}
	}
	return score
}

func (PositionCalculator) Type() string {
	return "PositionCalculator"
}
