package move

import (
	"fmt"
	"strings"

	"github.com/domino14/reversi/board"
)

// MoveType is a type of move: a disc placement or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// Move is a move made (or considered) by one side. For a play, Captured
// lists the flipped discs in direction order, nearest first.
type Move struct {
	action   MoveType
	pos      board.Position
	player   board.Player
	captured []board.Position
}

// NewPlayMove creates a disc placement.
func NewPlayMove(pos board.Position, player board.Player, captured []board.Position) *Move {
	return &Move{
		action:   MoveTypePlay,
		pos:      pos,
		player:   player,
		captured: captured,
	}
}

// NewPassMove creates a pass for the given player.
func NewPassMove(player board.Player) *Move {
	return &Move{action: MoveTypePass, player: player}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Position() board.Position {
	return m.pos
}

func (m *Move) Player() board.Player {
	return m.player
}

// Captured returns the flipped positions. The caller must not modify it.
func (m *Move) Captured() []board.Position {
	return m.captured
}

// NumCaptured is the number of flipped discs.
func (m *Move) NumCaptured() int {
	return len(m.captured)
}

// ShortDescription is the position in board notation, or "(pass)".
func (m *Move) ShortDescription() string {
	if m.action == MoveTypePass {
		return "(pass)"
	}
	return m.pos.String()
}

func (m *Move) String() string {
	if m.action == MoveTypePass {
		return fmt.Sprintf("<%v pass>", m.player)
	}
	flips := make([]string, len(m.captured))
	for i, c := range m.captured {
		flips[i] = c.String()
	}
	return fmt.Sprintf("<%v %v flips [%v]>", m.player, m.pos, strings.Join(flips, " "))
}
