package game

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/rules"
)

// Snapshot is the complete state of a session at one point in time.
type Snapshot struct {
	Board    board.Board
	ToMove   board.Player
	Status   Status
	Turn     int
	Scores   board.Scores
	LastMove *move.Move
}

// SnapshotListener is told about every state change a move makes.
type SnapshotListener interface {
	OnSnapshot(Snapshot)
}

// ListenerFunc adapts a function to SnapshotListener.
type ListenerFunc func(Snapshot)

func (f ListenerFunc) OnSnapshot(snap Snapshot) {
	f(snap)
}

// AddListener registers l for subsequent moves.
func (s *Session) AddListener(l SnapshotListener) {
	s.listeners = append(s.listeners, l)
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:    s.board,
		ToMove:   s.current,
		Status:   s.status,
		Turn:     s.turn,
		Scores:   s.board.Scores(),
		LastMove: s.lastMove,
	}
}

// Restore puts the session back into a previously captured state.
// Listeners are not notified.
func (s *Session) Restore(snap Snapshot) {
	s.board = snap.Board
	s.current = snap.ToMove
	s.status = snap.Status
	s.turn = snap.Turn
	s.lastMove = snap.LastMove
	s.legal = rules.LegalMoves(s.board, s.current)
}

func (s *Session) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l.OnSnapshot(snap)
	}
}
