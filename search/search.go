// Package search picks moves for the computer player using depth-limited
// minimax with alpha-beta pruning over the static evaluator.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/difficulty"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/rules"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

const (
	// Infinity bounds every score the search can produce.
	Infinity = 1e9
	// WinScore is the value of a won terminal position reached at the root.
	// Each ply needed to get there costs one point, so quicker wins are
	// worth more and slower losses are worth less. It dwarfs any heuristic
	// score. Plies from the root are the same for every branch at a given
	// level, so wins stay comparable whatever depth is left below them.
	WinScore = 10000
)

// Rand is the random source used for the randomized-move fallback.
// *frand.RNG satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Result describes a finished search.
type Result struct {
	Move board.Position
	// Score is from the searching player's point of view.
	Score float64
	// Nodes is the number of positions visited.
	Nodes int
	// Randomized is set when the move was drawn at random.
	Randomized bool
	// Forced is set when there was exactly one legal move.
	Forced bool
	// Variation is the expected line of play, starting with Move. It
	// includes passes.
	Variation []*move.Move
	Elapsed   time.Duration
}

// VariationString renders the principal variation in move notation.
func (r Result) VariationString() string {
	parts := make([]string, len(r.Variation))
	for i, m := range r.Variation {
		parts[i] = m.ShortDescription()
	}
	return strings.Join(parts, " ")
}

// Solver runs searches. It keeps per-search counters, so one Solver must
// not run two searches at once.
type Solver struct {
	scorer         equity.Scorer
	keyed          equity.KeyedScorer
	rng            Rand
	disablePruning bool

	rootPlayer board.Player
	nodes      int
}

// NewSolver creates a solver. A nil scorer uses the default evaluator and a
// nil rng a fresh frand source.
func NewSolver(scorer equity.Scorer, rng Rand) *Solver {
	if scorer == nil {
		scorer = equity.NewDefaultEvaluator()
	}
	if rng == nil {
		rng = frand.New()
	}
	s := &Solver{scorer: scorer, rng: rng}
	if ks, ok := scorer.(equity.KeyedScorer); ok {
		s.keyed = ks
	}
	return s
}

// SetPruningDisabled turns alpha-beta cutoffs off, leaving plain minimax.
// Only useful for testing.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

// BestMove returns the move p should play on b. ok is false only if p has
// no legal move.
func (s *Solver) BestMove(b board.Board, p board.Player, cfg difficulty.Config) (board.Position, bool) {
	res, ok := s.Search(b, p, cfg)
	return res.Move, ok
}

// Search is BestMove with the full result.
func (s *Solver) Search(b board.Board, p board.Player, cfg difficulty.Config) (Result, bool) {
	tstart := time.Now()
	moves := rules.LegalMoves(b, p)
	if len(moves) == 0 {
		return Result{}, false
	}
	if len(moves) == 1 {
		return s.single(b, p, moves[0], tstart, true, false), true
	}
	if cfg.Randomness > 0 && s.rng.Float64() < cfg.Randomness {
		pos := moves[s.rng.Intn(len(moves))]
		log.Debug().Str("move", pos.String()).Float64("randomness", cfg.Randomness).
			Msg("search-random-move")
		return s.single(b, p, pos, tstart, false, true), true
	}

	depth := cfg.Depth
	if depth < 1 {
		depth = 1
	}
	log.Debug().Int("depth", depth).
		Str("player", p.String()).
		Int("num-moves", len(moves)).
		Bool("pruning", !s.disablePruning).
		Msg("search-config")

	s.rootPlayer = p
	s.nodes = 1

	var rootKey uint64
	if s.keyed != nil {
		rootKey = s.keyed.Zobrist().Hash(b, p)
	}

	alpha := -Infinity
	bestScore := -Infinity
	var bestMove board.Position
	var bestPV []*move.Move
	for _, pos := range moves {
		child, captured := s.mustApply(b, pos, p)
		m := move.NewPlayMove(pos, p, captured)
		v, pv := s.alphabeta(child, p.Opponent(), depth-1, 1, s.childKey(rootKey, m), alpha, Infinity)
		if v > bestScore {
			bestScore = v
			bestMove = pos
			bestPV = prepend(m, pv)
		}
		if !s.disablePruning && bestScore > alpha {
			alpha = bestScore
		}
	}

	res := Result{
		Move:      bestMove,
		Score:     bestScore,
		Nodes:     s.nodes,
		Variation: bestPV,
		Elapsed:   time.Since(tstart),
	}
	log.Debug().
		Str("move", bestMove.String()).
		Float64("score", bestScore).
		Int("nodes", s.nodes).
		Str("variation", res.VariationString()).
		Dur("elapsed", res.Elapsed).
		Msg("search-returning")
	return res, true
}

func (s *Solver) single(b board.Board, p board.Player, pos board.Position,
	tstart time.Time, forced, randomized bool) Result {

	_, captured := s.mustApply(b, pos, p)
	return Result{
		Move:       pos,
		Forced:     forced,
		Randomized: randomized,
		Variation:  []*move.Move{move.NewPlayMove(pos, p, captured)},
		Elapsed:    time.Since(tstart),
	}
}

func (s *Solver) mustApply(b board.Board, pos board.Position, p board.Player) (board.Board, []board.Position) {
	child, captured, err := rules.ApplyMove(b, pos, p)
	if err != nil {
		panic(board.InvariantViolation{Msg: fmt.Sprintf("search generated an illegal move: %v", err)})
	}
	return child, captured
}

func (s *Solver) terminalScore(b board.Board, plies int) float64 {
	winner, ok := rules.Winner(b).Winner()
	if !ok {
		return 0
	}
	if winner == s.rootPlayer {
		return float64(WinScore - plies)
	}
	return -float64(WinScore - plies)
}

// childKey is the Zobrist key after m, or 0 when the scorer does not take
// keys.
func (s *Solver) childKey(key uint64, m *move.Move) uint64 {
	if s.keyed == nil {
		return 0
	}
	return s.keyed.Zobrist().AddMove(key, m)
}

// evaluate scores a leaf from the root player's point of view. key is the
// hash of (b, toMove).
func (s *Solver) evaluate(b board.Board, toMove board.Player, key uint64) float64 {
	if s.keyed == nil {
		return s.scorer.Score(b, s.rootPlayer)
	}
	if toMove != s.rootPlayer {
		key = s.keyed.Zobrist().FlipSide(key)
	}
	return s.keyed.ScoreKeyed(key, b, s.rootPlayer)
}

// alphabeta scores b with toMove about to play, from the root player's
// point of view, and returns the line that achieves the score. key is the
// Zobrist key of (b, toMove), carried down move by move.
func (s *Solver) alphabeta(b board.Board, toMove board.Player, depth, plies int,
	key uint64, α, β float64) (float64, []*move.Move) {

	s.nodes++
	if rules.IsTerminal(b) {
		return s.terminalScore(b, plies), nil
	}
	if depth <= 0 {
		return s.evaluate(b, toMove, key), nil
	}

	moves := rules.LegalMoves(b, toMove)
	if len(moves) == 0 {
		// Not terminal, so the opponent can move. The pass uses up a ply.
		pass := move.NewPassMove(toMove)
		v, pv := s.alphabeta(b, toMove.Opponent(), depth-1, plies+1, s.childKey(key, pass), α, β)
		return v, prepend(pass, pv)
	}

	maximizing := toMove == s.rootPlayer
	var value float64
	if maximizing {
		value = -Infinity
	} else {
		value = Infinity
	}
	var bestPV []*move.Move
	for _, pos := range moves {
		child, captured := s.mustApply(b, pos, toMove)
		m := move.NewPlayMove(pos, toMove, captured)
		v, pv := s.alphabeta(child, toMove.Opponent(), depth-1, plies+1, s.childKey(key, m), α, β)
		if maximizing {
			if v > value {
				value = v
				bestPV = prepend(m, pv)
			}
			α = max(α, value)
		} else {
			if v < value {
				value = v
				bestPV = prepend(m, pv)
			}
			β = min(β, value)
		}
		if !s.disablePruning && β <= α {
			break
		}
	}
	return value, bestPV
}

func prepend(m *move.Move, pv []*move.Move) []*move.Move {
	seq := make([]*move.Move, 0, len(pv)+1)
	seq = append(seq, m)
	return append(seq, pv...)
}
