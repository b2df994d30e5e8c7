package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/rules"
)

func pos(s string) board.Position {
	p, err := board.PositionFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewSession(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	is.Equal(s.Status(), Playing)
	is.Equal(s.CurrentPlayer(), board.Black)
	is.Equal(s.Scores(), board.Scores{Black: 2, White: 2})
	is.Equal(s.LegalMoves(), []board.Position{pos("d3"), pos("c4"), pos("f5"), pos("e6")})
	is.Equal(s.Winner(), rules.NoOutcome)
	is.True(s.LastMove() == nil)
	is.Equal(s.Turn(), 0)
	is.True(s.UID() != "")
}

func TestFirstMove(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	is.NoErr(s.ApplyMove(pos("d3")))
	is.Equal(s.Scores(), board.Scores{Black: 4, White: 1})
	is.Equal(s.CurrentPlayer(), board.White)
	is.Equal(s.Turn(), 1)
	is.Equal(s.LastMove().ShortDescription(), "d3")
	is.Equal(s.LegalMoves(), rules.LegalMoves(s.Board(), board.White))
}

func TestIllegalMoveLeavesStateAlone(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	before := s.Snapshot()

	for _, p := range []string{"a1", "d4", "e3"} {
		err := s.ApplyMove(pos(p))
		var ime *rules.IllegalMoveError
		is.True(errors.As(err, &ime))
		is.Equal(ime.Player, board.Black)
	}
	is.Equal(s.Snapshot(), before)
}

func TestLegalMovesIsACopy(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	moves := s.LegalMoves()
	moves[0] = board.Position{Row: 0, Col: 0}
	is.Equal(s.LegalMoves()[0], pos("d3"))
}

func TestAutoPass(t *testing.T) {
	is := is.New(t)
	s := NewSession(WithPosition(board.SetToGame(board.VsBlackBlocked), board.Black))
	is.Equal(s.CurrentPlayer(), board.White)
	is.Equal(s.LegalMoves(), []board.Position{pos("c1")})

	is.NoErr(s.ApplyMove(pos("c1")))
	is.Equal(s.Status(), Finished)
	is.Equal(s.Winner(), rules.WhiteWins)
	is.Equal(s.Scores(), board.Scores{Black: 0, White: 3})
	is.Equal(len(s.LegalMoves()), 0)
}

func TestPassConsumesTurnInPlay(t *testing.T) {
	is := is.New(t)
	s := NewSession(WithPosition(board.SetToGame(board.VsTwoHoles), board.Black))
	is.NoErr(s.ApplyMove(pos("a1")))
	// White is blocked, so Black goes again.
	is.Equal(s.CurrentPlayer(), board.Black)
	is.Equal(s.Status(), Playing)
	is.NoErr(s.ApplyMove(pos("h8")))
	is.Equal(s.Status(), Finished)
	is.Equal(s.Scores(), board.Scores{Black: 64, White: 0})
	is.Equal(s.Winner(), rules.BlackWins)
	is.Equal(s.Turn(), 2)
}

func TestExplicitPass(t *testing.T) {
	is := is.New(t)
	s := NewSession(WithPosition(board.SetToGame(board.VsBlackBlocked), board.Black), WithoutAutoPass())
	is.Equal(s.CurrentPlayer(), board.Black)
	is.Equal(len(s.LegalMoves()), 0)

	is.NoErr(s.Pass())
	is.Equal(s.CurrentPlayer(), board.White)
	is.Equal(s.LastMove().ShortDescription(), "(pass)")
	is.Equal(s.Turn(), 1)

	is.Equal(s.Pass(), ErrPassNotAllowed)
	is.Equal(s.CurrentPlayer(), board.White)
}

func TestPassWithMovesRejected(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	is.Equal(s.Pass(), ErrPassNotAllowed)
	is.Equal(s.CurrentPlayer(), board.Black)
}

func TestNothingAfterGameOver(t *testing.T) {
	is := is.New(t)
	s := NewSession(WithPosition(board.SetToGame(board.VsFullDraw), board.Black))
	is.Equal(s.Status(), Finished)
	is.Equal(s.Winner(), rules.Draw)
	is.Equal(s.ApplyMove(pos("a1")), ErrGameOver)
	is.Equal(s.Pass(), ErrGameOver)
}

func TestListenersAndRestore(t *testing.T) {
	is := is.New(t)
	var snaps []Snapshot
	s := NewSession(WithListener(ListenerFunc(func(snap Snapshot) {
		snaps = append(snaps, snap)
	})))
	start := s.Snapshot()

	is.NoErr(s.ApplyMove(pos("d3")))
	is.NoErr(s.ApplyMove(pos("c3")))
	is.Equal(len(snaps), 2)
	is.Equal(snaps[0].ToMove, board.White)
	is.Equal(snaps[0].Scores, board.Scores{Black: 4, White: 1})
	is.Equal(snaps[1].Turn, 2)
	is.Equal(snaps[1].Board, s.Board())

	s.Restore(snaps[0])
	is.Equal(s.CurrentPlayer(), board.White)
	is.Equal(s.Turn(), 1)
	is.Equal(s.LegalMoves(), rules.LegalMoves(snaps[0].Board, board.White))
	is.Equal(len(snaps), 2)

	s.Restore(start)
	is.Equal(s.Snapshot(), start)
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	is.NoErr(s.ApplyMove(pos("d3")))
	txt := s.ToDisplayText()
	is.True(strings.Contains(txt, "-> White (O)  1"))
	is.True(strings.Contains(txt, "Black (X)  4"))
	is.True(strings.Contains(txt, "Last: Black d3"))
	is.True(!strings.Contains(txt, "Game is over"))
}
