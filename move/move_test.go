package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
)

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	m := NewPlayMove(board.Position{Row: 2, Col: 3}, board.Black,
		[]board.Position{{Row: 3, Col: 3}})
	is.Equal(m.ShortDescription(), "d3")
	is.Equal(m.NumCaptured(), 1)
	is.Equal(m.String(), "<Black d3 flips [d4]>")

	p := NewPassMove(board.White)
	is.Equal(p.ShortDescription(), "(pass)")
	is.Equal(p.Action(), MoveTypePass)
}
