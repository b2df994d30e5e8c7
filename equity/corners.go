package equity

import (
	"github.com/domino14/reversi/board"
)

// CornerValue is what each corner is worth before weighting.
const CornerValue = 25.0

// CornerCalculator scores corner ownership.
type CornerCalculator struct{}

func (CornerCalculator) Evaluate(b board.Board, p board.Player) float64 {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	score := 0.0
	for _, pos := range board.Corners {
		switch b.At(pos) {
		case mine:
			score += CornerValue
		case theirs:
			score -= CornerValue
		}
	}
	return score
}

func (CornerCalculator) Type() string {
	return "CornerCalculator"
}
