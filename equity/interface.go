package equity

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/zobrist"
)

// Calculator scores one aspect of a position from p's point of view.
// Positive values favor p.
type Calculator interface {
	Evaluate(b board.Board, p board.Player) float64
	Type() string
}

// Scorer is anything that can produce a full static evaluation.
type Scorer interface {
	Score(b board.Board, p board.Player) float64
}

// KeyedScorer can score a position whose Zobrist key the caller already
// has, which saves rehashing the board. key must equal Zobrist().Hash(b, p).
type KeyedScorer interface {
	Scorer
	Zobrist() *zobrist.Zobrist
	ScoreKeyed(key uint64, b board.Board, p board.Player) float64
}
