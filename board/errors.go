package board

// InvariantViolation signals an engine bug: an invalid player tag, or the
// search applying a move that was never legal. It is raised with panic and
// must not be recovered by callers that want to keep playing.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.Msg
}
