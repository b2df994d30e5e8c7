// Package game holds the state machine for a single Reversi game: whose
// turn it is, which moves are legal, passing, and when the game is over.
// A Session doesn't care how it is played. Human players, computer players
// and the automatic runner all drive it through the same calls.
package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/rules"
)

var (
	// ErrPassNotAllowed is returned when a side with a legal move tries to
	// pass.
	ErrPassNotAllowed = errors.New("pass not allowed: a legal move is available")
	// ErrGameOver is returned for any move or pass after the game ended.
	ErrGameOver = errors.New("game is over")
)

// Status is the play state of a session.
type Status uint8

const (
	Playing Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	return "playing"
}

// Session is one game in progress.
type Session struct {
	uid      string
	board    board.Board
	current  board.Player
	legal    []board.Position
	status   Status
	turn     int
	lastMove *move.Move
	autoPass bool

	listeners []SnapshotListener
}

// Option configures a new session.
type Option func(*Session)

// WithPosition starts the game from b with p to move instead of the
// standard opening.
func WithPosition(b board.Board, p board.Player) Option {
	return func(s *Session) {
		s.board = b
		s.current = p
	}
}

// WithListener registers l to receive a snapshot after every move.
func WithListener(l SnapshotListener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// WithoutAutoPass leaves a blocked side on turn until Pass is called.
func WithoutAutoPass() Option {
	return func(s *Session) {
		s.autoPass = false
	}
}

// NewSession creates a game from the starting position with Black to move.
func NewSession(opts ...Option) *Session {
	s := &Session{
		uid:      uuid.NewString(),
		board:    board.NewStartBoard(),
		current:  board.Black,
		status:   Playing,
		autoPass: true,
	}
	for _, o := range opts {
		o(s)
	}
	if !s.current.Valid() {
		panic(board.InvariantViolation{Msg: "session created with invalid player"})
	}
	s.settle()
	log.Debug().Str("uid", s.uid).Str("to-move", s.current.String()).Msg("new-session")
	return s
}

// settle recomputes the legal moves for the side on turn, passing for it
// if it is blocked and ending the game if both sides are.
func (s *Session) settle() {
	for {
		s.legal = rules.LegalMoves(s.board, s.current)
		if len(s.legal) > 0 {
			return
		}
		if !rules.HasAnyMove(s.board, s.current.Opponent()) {
			s.status = Finished
			log.Debug().Str("uid", s.uid).
				Interface("scores", s.board.Scores()).
				Str("outcome", rules.OutcomeByCount(s.board).String()).
				Msg("game-over")
			return
		}
		if !s.autoPass {
			return
		}
		log.Debug().Str("uid", s.uid).Str("player", s.current.String()).Msg("auto-pass")
		s.current = s.current.Opponent()
	}
}

// ApplyMove plays pos for the side on turn. An illegal position returns a
// *rules.IllegalMoveError and leaves the session unchanged.
func (s *Session) ApplyMove(pos board.Position) error {
	if s.status == Finished {
		return ErrGameOver
	}
	if !lo.Contains(s.legal, pos) {
		return s.illegal(pos)
	}
	nb, captured, err := rules.ApplyMove(s.board, pos, s.current)
	if err != nil {
		return err
	}
	s.board = nb
	s.lastMove = move.NewPlayMove(pos, s.current, captured)
	s.turn++
	s.current = s.current.Opponent()
	s.settle()
	log.Debug().Str("uid", s.uid).Str("move", s.lastMove.String()).Int("turn", s.turn).Msg("applied-move")
	s.notify()
	return nil
}

func (s *Session) illegal(pos board.Position) error {
	if _, _, err := rules.ApplyMove(s.board, pos, s.current); err != nil {
		return err
	}
	return &rules.IllegalMoveError{Pos: pos, Player: s.current, Reason: "not a legal move"}
}

// Pass gives up the turn. It is only allowed for a side with no legal
// move; with auto-pass on that never arises during play.
func (s *Session) Pass() error {
	if s.status == Finished {
		return ErrGameOver
	}
	if len(s.legal) > 0 {
		return ErrPassNotAllowed
	}
	s.lastMove = move.NewPassMove(s.current)
	s.turn++
	s.current = s.current.Opponent()
	s.settle()
	s.notify()
	return nil
}

// UID identifies this session in logs.
func (s *Session) UID() string {
	return s.uid
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	return s.board
}

func (s *Session) CurrentPlayer() board.Player {
	return s.current
}

// LegalMoves returns the legal moves of the side on turn, in row-major
// order. The slice is the caller's.
func (s *Session) LegalMoves() []board.Position {
	return append([]board.Position(nil), s.legal...)
}

// IsLegal reports whether pos is a legal move right now.
func (s *Session) IsLegal(pos board.Position) bool {
	return lo.Contains(s.legal, pos)
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Scores() board.Scores {
	return s.board.Scores()
}

// Winner returns NoOutcome while the game is still being played.
func (s *Session) Winner() rules.Outcome {
	if s.status != Finished {
		return rules.NoOutcome
	}
	return rules.OutcomeByCount(s.board)
}

// LastMove is the most recent move or explicit pass, or nil.
func (s *Session) LastMove() *move.Move {
	return s.lastMove
}

// Turn counts the moves and explicit passes played so far.
func (s *Session) Turn() int {
	return s.turn
}
