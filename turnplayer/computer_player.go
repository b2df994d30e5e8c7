package turnplayer

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/difficulty"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/search"
)

// ErrNoMove is returned when the side on turn has nothing to play.
var ErrNoMove = errors.New("no legal move")

// Rand is the random source a ComputerPlayer needs: the search fallback
// and the thinking delay draw from it. *frand.RNG satisfies it.
type Rand interface {
	search.Rand
	difficulty.Rand
}

// ComputerPlayer plays with a fixed difficulty. It waits out a cosmetic
// thinking delay, then searches synchronously.
type ComputerPlayer struct {
	solver *search.Solver
	cfg    difficulty.Config
	rng    Rand

	lastResult search.Result
}

// NewComputerPlayer creates a player whose solver draws from rng. The
// player owns the solver and must not be used from two goroutines.
func NewComputerPlayer(solver *search.Solver, cfg difficulty.Config, rng Rand) *ComputerPlayer {
	return &ComputerPlayer{solver: solver, cfg: cfg, rng: rng}
}

func (c *ComputerPlayer) Difficulty() difficulty.Config {
	return c.cfg
}

func (c *ComputerPlayer) SetDifficulty(cfg difficulty.Config) {
	c.cfg = cfg
}

// LastResult is the result of the most recent search.
func (c *ComputerPlayer) LastResult() search.Result {
	return c.lastResult
}

// ChooseMove waits for the thinking delay and then searches. If ctx ends
// during the delay the search never starts and ctx's error is returned.
// Once started, the search runs to completion.
func (c *ComputerPlayer) ChooseMove(ctx context.Context, s *game.Session) (board.Position, error) {
	if s.Status() == game.Finished {
		return board.Position{}, game.ErrGameOver
	}
	if len(s.LegalMoves()) == 0 {
		return board.Position{}, ErrNoMove
	}
	if d := c.cfg.ThinkingDelay(c.rng); d > 0 {
		log.Debug().Dur("delay", d).Msg("thinking")
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return board.Position{}, ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return board.Position{}, err
	}
	res, ok := c.solver.Search(s.Board(), s.CurrentPlayer(), c.cfg)
	if !ok {
		return board.Position{}, ErrNoMove
	}
	c.lastResult = res
	return res.Move, nil
}

// PlayTurn asks tp for a move and applies it to s. A blocked side passes.
func PlayTurn(ctx context.Context, tp TurnPlayer, s *game.Session) error {
	pos, err := tp.ChooseMove(ctx, s)
	if errors.Is(err, ErrNoMove) {
		return s.Pass()
	}
	if err != nil {
		return err
	}
	return s.ApplyMove(pos)
}

// PlayTurn chooses and applies a move.
func (c *ComputerPlayer) PlayTurn(ctx context.Context, s *game.Session) error {
	return PlayTurn(ctx, c, s)
}

var _ TurnPlayer = (*ComputerPlayer)(nil)
