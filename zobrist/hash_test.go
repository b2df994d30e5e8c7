package zobrist

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/rules"
)

func seeded() *Zobrist {
	z := &Zobrist{}
	z.InitializeFrom(frand.NewCustom(make([]byte, 32), 1024, 12))
	return z
}

func TestIncrementalMatchesFullHash(t *testing.T) {
	is := is.New(t)
	z := seeded()

	b := board.NewStartBoard()
	p := board.Black
	key := z.Hash(b, p)
	for i := 0; i < 20 && !rules.IsTerminal(b); i++ {
		moves := rules.LegalMoves(b, p)
		if len(moves) == 0 {
			key = z.AddMove(key, move.NewPassMove(p))
			p = p.Opponent()
			is.Equal(key, z.Hash(b, p))
			continue
		}
		pos := moves[len(moves)/2]
		nb, captured, err := rules.ApplyMove(b, pos, p)
		is.NoErr(err)
		key = z.AddMove(key, move.NewPlayMove(pos, p, captured))
		b = nb
		p = p.Opponent()
		is.Equal(key, z.Hash(b, p))
	}
}

func TestSideToMoveChangesHash(t *testing.T) {
	is := is.New(t)
	z := seeded()
	b := board.NewStartBoard()
	is.True(z.Hash(b, board.Black) != z.Hash(b, board.White))
	is.Equal(z.Hash(b, board.Black), seeded().Hash(b, board.Black))
	is.Equal(z.FlipSide(z.Hash(b, board.Black)), z.Hash(b, board.White))
}
