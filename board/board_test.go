package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestStartBoard(t *testing.T) {
	is := is.New(t)
	b := NewStartBoard()
	is.Equal(b.Scores(), Scores{Black: 2, White: 2})
	is.Equal(b.At(Position{3, 3}), WhiteDisc)
	is.Equal(b.At(Position{4, 4}), WhiteDisc)
	is.Equal(b.At(Position{3, 4}), BlackDisc)
	is.Equal(b.At(Position{4, 3}), BlackDisc)
	is.Equal(b, SetToGame(VsStart))
}

func TestBoardIsAValue(t *testing.T) {
	is := is.New(t)
	b := NewStartBoard()
	c := b
	c.Set(Position{0, 0}, BlackDisc)
	is.Equal(b.At(Position{0, 0}), Empty)
	is.Equal(c.At(Position{0, 0}), BlackDisc)
}

func TestReadsOnReturnedBoards(t *testing.T) {
	is := is.New(t)
	// Read-only queries work directly on a returned board value.
	is.Equal(NewStartBoard().TilesPlayed(), 4)
	is.Equal(NewStartBoard().Discs(Black), 2)
	is.Equal(NewStartBoard().IsFull(), false)
	is.Equal(SetToGame(VsFullBlack).IsFull(), true)
	is.Equal(SetToGame(VsFullBlack).Scores(), Scores{Black: 40, White: 24})
	is.Equal(NewStartBoard().At(Position{3, 3}), WhiteDisc)
}

func TestDisplayTextRoundTrip(t *testing.T) {
	is := is.New(t)
	b := SetToGame(VsCornerOffer)
	parsed, err := FromPlaintext(b.ToDisplayText())
	is.NoErr(err)
	is.Equal(parsed, b)
}

func TestFromPlaintextErrors(t *testing.T) {
	is := is.New(t)
	_, err := FromPlaintext("|. . .|")
	is.True(err != nil)
	_, err = FromPlaintext(`
 1|. . . . . . . .|
 2|. . . . . . . .|
 3|. . . . . . . .|
 4|. . . O X . . .|
 5|. . . X O . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . Z|
`)
	is.True(err != nil)
}

func TestPositionNotation(t *testing.T) {
	is := is.New(t)
	pos, err := PositionFromString("d3")
	is.NoErr(err)
	is.Equal(pos, Position{Row: 2, Col: 3})
	is.Equal(pos.String(), "d3")

	pos, err = PositionFromString("H8")
	is.NoErr(err)
	is.Equal(pos, Position{Row: 7, Col: 7})

	_, err = PositionFromString("i1")
	is.True(err != nil)
	_, err = PositionFromString("a9")
	is.True(err != nil)
	_, err = PositionFromString("a10")
	is.True(err != nil)
}

func TestEdgesAndCorners(t *testing.T) {
	is := is.New(t)
	edges, corners := 0, 0
	for _, p := range AllPositions() {
		if IsEdge(p) {
			edges++
		}
		if IsCorner(p) {
			corners++
		}
	}
	is.Equal(edges, 28)
	is.Equal(corners, 4)
	for _, c := range Corners {
		is.True(IsCorner(c))
	}
}

func TestOpponentPanicsOnInvalidPlayer(t *testing.T) {
	is := is.New(t)
	is.Equal(Black.Opponent(), White)
	is.Equal(White.Opponent(), Black)
	defer func() {
		r := recover()
		_, ok := r.(InvariantViolation)
		is.True(ok)
	}()
	Player(7).Opponent()
}

func TestPlayerFromString(t *testing.T) {
	is := is.New(t)
	p, err := PlayerFromString("white")
	is.NoErr(err)
	is.Equal(p, White)
	p, err = PlayerFromString("B")
	is.NoErr(err)
	is.Equal(p, Black)
	_, err = PlayerFromString("red")
	is.True(err != nil)
}
