package board

// PositionHistory is a stack of positions reached from a root position.
// DoMove pushes the position after the move, UndoLastMove pops back to the
// exact prior state. The search owns one history exclusively and threads it
// through the recursion; no copies of Position are made per node beyond the
// snapshot kept for rollback.
type PositionHistory struct {
	stack []Position
}

// NewPositionHistory creates a history rooted at the given position.
func NewPositionHistory(pos Position) *PositionHistory {
	h := &PositionHistory{stack: make([]Position, 1, 64)}
	h.stack[0] = pos
	return h
}

// Current returns the position on top of the stack.
func (h *PositionHistory) Current() *Position {
	return &h.stack[len(h.stack)-1]
}

// DoMove applies the move to a copy of the current position and pushes it.
func (h *PositionHistory) DoMove(m Move) {
	next := *h.Current()
	next.ApplyMove(m)
	h.stack = append(h.stack, next)
}

// UndoLastMove pops the top position, restoring the state before the last
// DoMove bit for bit, including castling rights, en passant target, and
// clocks.
func (h *PositionHistory) UndoLastMove() {
	h.stack = h.stack[:len(h.stack)-1]
}

// Len returns the number of positions on the stack, including the root.
func (h *PositionHistory) Len() int {
	return len(h.stack)
}
