package equity

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/rules"
)

// MobilityCalculator compares legal move counts, scaled to [-100, 100].
type MobilityCalculator struct{}

func (MobilityCalculator) Evaluate(b board.Board, p board.Player) float64 {
	pm := rules.CountMoves(b, p)
	om := rules.CountMoves(b, p.Opponent())
	if pm+om == 0 {
		return 0
	}
	return float64(pm-om) / float64(pm+om) * 100
}

func (MobilityCalculator) Type() string {
	return "MobilityCalculator"
}
