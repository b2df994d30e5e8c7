package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a Reversi position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable[square][0] is a black disc, [1] a white disc.
	posTable  [board.NumSquares][2]uint64
	sideTable [2]uint64
}

// Initialize fills the tables from the global random source.
func (z *Zobrist) Initialize() {
	z.InitializeFrom(frand.New())
}

// InitializeFrom fills the tables from rng, so tests can get the same keys
// every run.
func (z *Zobrist) InitializeFrom(rng *frand.RNG) {
	for i := 0; i < board.NumSquares; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = rng.Uint64n(bignum) + 1
		}
	}
	for i := 0; i < 2; i++ {
		z.sideTable[i] = rng.Uint64n(bignum) + 1
	}
}

func cellIdx(c board.Cell) int {
	if c == board.BlackDisc {
		return 0
	}
	return 1
}

func sideIdx(p board.Player) int {
	if p == board.Black {
		return 0
	}
	return 1
}

// Hash returns the key for board b with side p to move.
func (z *Zobrist) Hash(b board.Board, p board.Player) uint64 {
	key := uint64(0)
	for i, c := range b {
		if c == board.Empty {
			continue
		}
		key ^= z.posTable[i][cellIdx(c)]
	}
	key ^= z.sideTable[sideIdx(p)]
	return key
}

// AddMove updates key for m: the placed disc appears, every captured disc
// changes color, and the side to move switches. A pass only switches sides.
func (z *Zobrist) AddMove(key uint64, m *move.Move) uint64 {
	mover := m.Player()
	if m.Action() == move.MoveTypePlay {
		mine := cellIdx(mover.Cell())
		theirs := 1 - mine
		pos := m.Position()
		key ^= z.posTable[pos.Row*board.Dim+pos.Col][mine]
		for _, c := range m.Captured() {
			idx := c.Row*board.Dim + c.Col
			key ^= z.posTable[idx][theirs]
			key ^= z.posTable[idx][mine]
		}
	}
	return z.FlipSide(key)
}

// FlipSide turns the key for (b, p) into the key for (b, p's opponent).
func (z *Zobrist) FlipSide(key uint64) uint64 {
	return key ^ z.sideTable[0] ^ z.sideTable[1]
}
