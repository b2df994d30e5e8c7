// Package board holds the 8x8 Reversi grid. A Board is a plain array, so
// assigning it copies it; nothing in this repository mutates a board that
// another search branch may still be looking at.
package board

import (
	"fmt"
)

const (
	// Dim is the number of rows (and columns) on the board.
	Dim = 8
	// NumSquares is the total number of cells.
	NumSquares = Dim * Dim
)

// A Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "Black"
	case WhiteDisc:
		return "White"
	}
	return "Empty"
}

// A Player is one of the two sides. Black always moves first.
type Player uint8

const (
	Black Player = iota + 1
	White
)

// Players lists both sides in turn order.
var Players = [2]Player{Black, White}

// Valid returns true if p is Black or White.
func (p Player) Valid() bool {
	return p == Black || p == White
}

// Opponent returns the other side. It panics on an invalid player tag;
// that can only happen through an engine bug.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	panic(InvariantViolation{Msg: fmt.Sprintf("invalid player tag %d", p)})
}

// Cell returns the disc color belonging to this player.
func (p Player) Cell() Cell {
	switch p {
	case Black:
		return BlackDisc
	case White:
		return WhiteDisc
	}
	panic(InvariantViolation{Msg: fmt.Sprintf("invalid player tag %d", p)})
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Player(%d)", p)
}

// PlayerFromString parses "black"/"b"/"white"/"w" (any case).
func PlayerFromString(s string) (Player, error) {
	switch s {
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	}
	return 0, fmt.Errorf("unrecognized player %q", s)
}

// Position is a (row, col) coordinate.
type Position struct {
	Row int
	Col int
}

// InBounds returns true if the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

func (p Position) index() int {
	return p.Row*Dim + p.Col
}

// String returns the position in column-letter/row-number notation, e.g.
// row 2, col 3 is d3.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// PositionFromString parses notation such as "d3" or "D3".
func PositionFromString(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("badly formatted position %q", s)
	}
	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	row := s[1]
	pos := Position{Row: int(row) - '1', Col: int(col) - 'a'}
	if !pos.InBounds() {
		return Position{}, fmt.Errorf("position %q is off the board", s)
	}
	return pos, nil
}

// Corners are the four corner cells.
var Corners = [4]Position{{0, 0}, {0, Dim - 1}, {Dim - 1, 0}, {Dim - 1, Dim - 1}}

// Board is the 8x8 grid, row-major.
type Board [NumSquares]Cell

// NewStartBoard returns the canonical starting position: White on d4 and e5,
// Black on e4 and d5.
func NewStartBoard() Board {
	var b Board
	b[Position{3, 3}.index()] = WhiteDisc
	b[Position{4, 4}.index()] = WhiteDisc
	b[Position{3, 4}.index()] = BlackDisc
	b[Position{4, 3}.index()] = BlackDisc
	return b
}

// At returns the cell at pos. pos must be in bounds.
func (b Board) At(pos Position) Cell {
	return b[pos.index()]
}

// Set sets the cell at pos. Callers only ever call this on their own copy.
func (b *Board) Set(pos Position, c Cell) {
	b[pos.index()] = c
}

// IsEmptyAt returns true if pos is on the board and holds no disc.
func (b Board) IsEmptyAt(pos Position) bool {
	return pos.InBounds() && b[pos.index()] == Empty
}

// Count returns the number of discs of the given color.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

// Discs returns the number of discs owned by p.
func (b Board) Discs(p Player) int {
	return b.Count(p.Cell())
}

// TilesPlayed returns the total number of discs on the board.
func (b Board) TilesPlayed() int {
	return NumSquares - b.Count(Empty)
}

// IsFull returns true if no empty cell remains.
func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Scores holds the disc count for each side.
type Scores struct {
	Black int `json:"black" yaml:"black"`
	White int `json:"white" yaml:"white"`
}

// For returns the score belonging to p.
func (s Scores) For(p Player) int {
	if p == Black {
		return s.Black
	}
	return s.White
}

// Scores counts both sides' discs.
func (b Board) Scores() Scores {
	var s Scores
	for _, cell := range b {
		switch cell {
		case BlackDisc:
			s.Black++
		case WhiteDisc:
			s.White++
		}
	}
	return s
}

// IsEdge returns true for cells on the outer ring, corners included.
func IsEdge(pos Position) bool {
	return pos.Row == 0 || pos.Row == Dim-1 || pos.Col == 0 || pos.Col == Dim-1
}

// IsCorner returns true for the four corner cells.
func IsCorner(pos Position) bool {
	return (pos.Row == 0 || pos.Row == Dim-1) && (pos.Col == 0 || pos.Col == Dim-1)
}

// AllPositions enumerates the board in row-major order.
func AllPositions() []Position {
	ps := make([]Position, 0, NumSquares)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			ps = append(ps, Position{Row: r, Col: c})
		}
	}
	return ps
}
