// Package automatic plays computer-vs-computer Reversi games in bulk and
// summarizes how the two players fared against each other.
package automatic

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/difficulty"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/search"
	"github.com/domino14/reversi/turnplayer"
	"github.com/domino14/reversi/zobrist"
)

// Player describes one of the two computer players.
type Player struct {
	Name       string
	Difficulty difficulty.Config
	// Weights for the evaluator; the zero value means equity.DefaultWeights.
	Weights equity.Weights
}

func (p Player) scorer(z *zobrist.Zobrist) equity.Scorer {
	w := p.Weights
	if w == (equity.Weights{}) {
		w = equity.DefaultWeights
	}
	ev := equity.NewEvaluator(w)
	if z == nil {
		return ev
	}
	return equity.NewCachedEvaluator(ev, z, 0)
}

// GameResult is the outcome of one game, from player A's side.
type GameResult struct {
	GameID  string
	PlayerA string
	PlayerB string
	AColor  board.Player
	ADiscs  int
	BDiscs  int
	Turns   int
}

// Margin is A's disc count minus B's.
func (g GameResult) Margin() int {
	return g.ADiscs - g.BDiscs
}

const logHeader = "gameID,playerA,playerB,aColor,aDiscs,bDiscs,turns\n"

func (g GameResult) logLine() string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// Writing to a strings.Builder cannot fail.
	w.Write([]string{
		g.GameID, g.PlayerA, g.PlayerB, g.AColor.String(),
		strconv.Itoa(g.ADiscs), strconv.Itoa(g.BDiscs), strconv.Itoa(g.Turns),
	})
	w.Flush()
	return sb.String()
}

// GameRunner plays games between two fixed players. Each runner belongs to
// a single goroutine.
type GameRunner struct {
	players [2]Player
	scorers [2]equity.Scorer
	logchan chan<- string
}

// NewGameRunner creates a runner for a (index 0) against b (index 1).
// Thinking delays are dropped. If evalCache is set, each player caches
// its static evaluations.
func NewGameRunner(a, b Player, logchan chan<- string, evalCache bool) *GameRunner {
	var z *zobrist.Zobrist
	if evalCache {
		z = &zobrist.Zobrist{}
		z.Initialize()
	}
	a.Difficulty = a.Difficulty.NoDelay()
	b.Difficulty = b.Difficulty.NoDelay()
	return &GameRunner{
		players: [2]Player{a, b},
		scorers: [2]equity.Scorer{a.scorer(z), b.scorer(z)},
		logchan: logchan,
	}
}

// PlayGame plays one full game. The seed fixes every random choice, so the
// same seed and colors always produce the same game.
func (r *GameRunner) PlayGame(ctx context.Context, seed [32]byte, aIsBlack bool) (GameResult, error) {
	rng := frand.NewCustom(seed[:], 1024, 12)
	aColor := board.White
	if aIsBlack {
		aColor = board.Black
	}
	cps := map[board.Player]*turnplayer.ComputerPlayer{}
	for idx, color := range [2]board.Player{aColor, aColor.Opponent()} {
		solver := search.NewSolver(r.scorers[idx], rng)
		cps[color] = turnplayer.NewComputerPlayer(solver, r.players[idx].Difficulty, rng)
	}

	s := game.NewSession()
	for s.Status() == game.Playing {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if err := cps[s.CurrentPlayer()].PlayTurn(ctx, s); err != nil {
			return GameResult{}, err
		}
	}

	scores := s.Scores()
	res := GameResult{
		GameID:  uuid.NewString(),
		PlayerA: r.players[0].Name,
		PlayerB: r.players[1].Name,
		AColor:  aColor,
		ADiscs:  scores.For(aColor),
		BDiscs:  scores.For(aColor.Opponent()),
		Turns:   s.Turn(),
	}
	log.Debug().Str("game-id", res.GameID).
		Int("a-discs", res.ADiscs).
		Int("b-discs", res.BDiscs).
		Msg("game-finished")
	if r.logchan != nil {
		r.logchan <- res.logLine()
	}
	return res, nil
}
