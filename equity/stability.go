package equity

import (
	"github.com/domino14/reversi/board"
)

// StabilityCalculator is a cheap stand-in for real disc stability: each
// disc on the outer ring counts +1 for p and -1 for the opponent. Interior
// discs count nothing. Changing this changes how strong the computer plays
// at every difficulty, so the presets are tuned against it as is.
type StabilityCalculator struct{}

func (StabilityCalculator) Evaluate(b board.Board, p board.Player) float64 {
	mine, theirs := p.Cell(), p.Opponent().Cell()
	score := 0.0
	for _, pos := range edgePositions {
		switch b.At(pos) {
		case mine:
			score++
		case theirs:
			score--
		}
	}
	return score
}

func (StabilityCalculator) Type() string {
	return "StabilityCalculator"
}

var edgePositions = func() []board.Position {
	var ps []board.Position
	for _, pos := range board.AllPositions() {
		if board.IsEdge(pos) {
			ps = append(ps, pos)
		}
	}
	return ps
}()
