// Package history records the snapshots a game passes through so they can
// be replayed or taken back.
package history

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/reversi/game"
)

// History is a game.SnapshotListener that keeps every snapshot it is
// given. The first entry is the position the game started from.
type History struct {
	snaps []game.Snapshot
}

// New starts a history at initial.
func New(initial game.Snapshot) *History {
	return &History{snaps: []game.Snapshot{initial}}
}

// Attach creates a history for s and registers it as a listener.
func Attach(s *game.Session) *History {
	h := New(s.Snapshot())
	s.AddListener(h)
	return h
}

func (h *History) OnSnapshot(snap game.Snapshot) {
	h.snaps = append(h.snaps, snap)
}

// Len is the number of snapshots, including the initial one.
func (h *History) Len() int {
	return len(h.snaps)
}

// At returns the snapshot after the ith recorded move; At(0) is the
// starting position.
func (h *History) At(i int) (game.Snapshot, error) {
	if i < 0 || i >= len(h.snaps) {
		return game.Snapshot{}, fmt.Errorf("no snapshot %d (have %d)", i, len(h.snaps))
	}
	return h.snaps[i], nil
}

func (h *History) Last() game.Snapshot {
	return h.snaps[len(h.snaps)-1]
}

// Undo drops the last n snapshots and returns the one that is now last,
// which the caller should Restore into its session.
func (h *History) Undo(n int) (game.Snapshot, error) {
	if n < 1 || n >= len(h.snaps) {
		return game.Snapshot{}, fmt.Errorf("cannot undo %d moves (have %d)", n, len(h.snaps)-1)
	}
	h.snaps = h.snaps[:len(h.snaps)-n]
	return h.Last(), nil
}

// Moves lists the moves played, in order, in board notation.
func (h *History) Moves() []string {
	played := lo.Filter(h.snaps, func(s game.Snapshot, _ int) bool {
		return s.LastMove != nil
	})
	return lo.Map(played, func(s game.Snapshot, _ int) string {
		return s.LastMove.ShortDescription()
	})
}
