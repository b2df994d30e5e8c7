package history

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/game"
)

func play(is *is.I, s *game.Session, moves ...string) {
	for _, m := range moves {
		p, err := board.PositionFromString(m)
		is.NoErr(err)
		is.NoErr(s.ApplyMove(p))
	}
}

func TestRecordsEveryMove(t *testing.T) {
	is := is.New(t)
	s := game.NewSession()
	h := Attach(s)
	is.Equal(h.Len(), 1)

	play(is, s, "d3", "c3", "c4")
	is.Equal(h.Len(), 4)
	is.Equal(h.Moves(), []string{"d3", "c3", "c4"})
	is.Equal(h.Last(), s.Snapshot())

	first, err := h.At(0)
	is.NoErr(err)
	is.Equal(first.Board, board.NewStartBoard())
	_, err = h.At(4)
	is.True(err != nil)
}

func TestUndoRestoresSession(t *testing.T) {
	is := is.New(t)
	s := game.NewSession()
	h := Attach(s)
	play(is, s, "d3", "c3")
	afterOne, _ := h.At(1)

	snap, err := h.Undo(1)
	is.NoErr(err)
	s.Restore(snap)
	is.Equal(s.Snapshot(), afterOne)
	is.Equal(s.CurrentPlayer(), board.White)
	is.Equal(h.Len(), 2)

	// Play continues, and history picks it up from the restored point.
	play(is, s, "e3")
	is.Equal(h.Moves(), []string{"d3", "e3"})

	snap, err = h.Undo(2)
	is.NoErr(err)
	s.Restore(snap)
	is.Equal(s.Board(), board.NewStartBoard())
	is.Equal(s.CurrentPlayer(), board.Black)
	is.Equal(s.Turn(), 0)

	_, err = h.Undo(1)
	is.True(err != nil)
}
