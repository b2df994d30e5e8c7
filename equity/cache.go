package equity

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/zobrist"
)

// DefaultCacheSize bounds the evaluation cache before it is flushed.
const DefaultCacheSize = 1 << 18

// CachedEvaluator memoizes a Scorer by Zobrist key. Static evaluation is a
// pure function of (board, perspective), so caching never changes a
// search result. A CachedEvaluator belongs to a single goroutine.
type CachedEvaluator struct {
	scorer  Scorer
	zobrist *zobrist.Zobrist
	table   map[uint64]float64
	maxSize int

	hits   uint64
	misses uint64
}

// NewCachedEvaluator wraps s. A maxSize of 0 uses DefaultCacheSize.
func NewCachedEvaluator(s Scorer, z *zobrist.Zobrist, maxSize int) *CachedEvaluator {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &CachedEvaluator{
		scorer:  s,
		zobrist: z,
		table:   make(map[uint64]float64),
		maxSize: maxSize,
	}
}

func (c *CachedEvaluator) Score(b board.Board, p board.Player) float64 {
	return c.ScoreKeyed(c.zobrist.Hash(b, p), b, p)
}

func (c *CachedEvaluator) Zobrist() *zobrist.Zobrist {
	return c.zobrist
}

// ScoreKeyed is Score for a caller that tracks the key incrementally.
func (c *CachedEvaluator) ScoreKeyed(key uint64, b board.Board, p board.Player) float64 {
	if v, ok := c.table[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := c.scorer.Score(b, p)
	if len(c.table) >= c.maxSize {
		log.Debug().Int("size", len(c.table)).Msg("eval-cache-flush")
		c.table = make(map[uint64]float64)
	}
	c.table[key] = v
	return v
}

var _ KeyedScorer = (*CachedEvaluator)(nil)

// Stats returns the hit and miss counts since creation.
func (c *CachedEvaluator) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}
