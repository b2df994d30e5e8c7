package board

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	blackSymbol = 'X'
	whiteSymbol = 'O'
	emptySymbol = '.'
)

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)

// DisplayString returns the single-character rendering of a cell.
func (c Cell) DisplayString() string {
	switch c {
	case BlackDisc:
		return string(blackSymbol)
	case WhiteDisc:
		return string(whiteSymbol)
	}
	return string(emptySymbol)
}

// ToDisplayText renders the board with column letters and row numbers.
// Black is X and White is O.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'a'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for r := 0; r < Dim; r++ {
		sb.WriteString(fmt.Sprintf("%2d|", r+1))
		for c := 0; c < Dim; c++ {
			sb.WriteString(b.At(Position{r, c}).DisplayString())
			if c != Dim-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + sb.String()
}

// String is a compact one-line form: 64 characters, row-major.
func (b Board) String() string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteString(c.DisplayString())
	}
	return sb.String()
}

// FromPlaintext parses text in the ToDisplayText format (only the lines
// between pipes matter) and returns the board. Cells inside a row may be
// separated by single spaces or written back to back.
func FromPlaintext(text string) (Board, error) {
	var b Board
	result := boardPlaintextRegex.FindAllStringSubmatch(text, -1)
	if len(result) != Dim {
		return b, fmt.Errorf("expected %d board rows, found %d", Dim, len(result))
	}
	for r := range result {
		cells := strings.ReplaceAll(result[r][1], " ", "")
		if len(cells) != Dim {
			return b, fmt.Errorf("row %d: expected %d cells, found %d", r+1, Dim, len(cells))
		}
		for c, ch := range cells {
			switch ch {
			case blackSymbol, 'x', 'B', 'b':
				b.Set(Position{r, c}, BlackDisc)
			case whiteSymbol, 'o', 'W', 'w':
				b.Set(Position{r, c}, WhiteDisc)
			case emptySymbol, '-', '_':
				b.Set(Position{r, c}, Empty)
			default:
				return b, errors.New("unrecognized cell symbol " + string(ch))
			}
		}
	}
	return b, nil
}

// MustFromPlaintext is FromPlaintext for fixtures known to be well formed.
func MustFromPlaintext(text string) Board {
	b, err := FromPlaintext(text)
	if err != nil {
		panic(err)
	}
	return b
}
