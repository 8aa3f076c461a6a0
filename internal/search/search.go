// Package search implements fixed-depth game-tree search: exhaustive
// negamax and alpha-beta pruned negamax over a shared position history,
// with principal-variation bookkeeping in a single flat buffer.
package search

import (
	"github.com/kestrelchess/kestrel/internal/board"
	"github.com/kestrelchess/kestrel/internal/eval"
)

// Result holds the outcome of one top-level search call.
//
// Score is reported from white's perspective. PV holds the best line from
// the root, exactly one move per searched ply; slots past the last
// improving move along some branch hold board.NoMove.
type Result struct {
	Score eval.Score
	PV    []board.Move
	Nodes uint64
}

// searcher holds the per-call scratch state threaded through the
// recursion: one move list per remaining ply, reused across sibling nodes,
// and the triangular principal-variation buffer. Nothing here is shared
// between concurrent searches.
type searcher struct {
	// moveListStack is borrowed from at recursion entry and returned on
	// every exit path; entering a node at depth d always finds at least
	// d lists available.
	moveListStack []*board.MoveList

	// pv is a flat triangular buffer of depth*(depth+1)/2 move slots.
	// The row for depth d starts at len(pv) - d*(d+1)/2 and owns d
	// consecutive slots; the row for depth d-1 sits directly after it.
	pv []board.Move

	nodes uint64
}

func newSearcher(depth int) *searcher {
	s := &searcher{
		moveListStack: make([]*board.MoveList, depth),
		pv:            make([]board.Move, depth*(depth+1)/2),
	}
	for i := range s.moveListStack {
		s.moveListStack[i] = board.NewMoveList()
	}
	return s
}

func (s *searcher) borrowMoveList() *board.MoveList {
	ml := s.moveListStack[len(s.moveListStack)-1]
	s.moveListStack = s.moveListStack[:len(s.moveListStack)-1]
	return ml
}

func (s *searcher) returnMoveList(ml *board.MoveList) {
	s.moveListStack = append(s.moveListStack, ml)
}

// recordBestLine writes the improving move into slot 0 of the row for this
// depth and pulls the child row (depth-1) up behind it, preserving the
// continuation found in the subtree.
func (s *searcher) recordBestLine(m board.Move, depth int) {
	idx := len(s.pv) - depth*(depth+1)/2
	s.pv[idx] = m
	for i := 1; i < depth; i++ {
		s.pv[idx+i] = s.pv[idx+i+depth-1]
	}
}

// clearLine blanks the PV row for this depth. A terminal node must leave an
// empty continuation behind: its row may still hold moves from an earlier
// sibling's subtree, and the parent copies the row wholesale on improvement.
func (s *searcher) clearLine(depth int) {
	idx := len(s.pv) - depth*(depth+1)/2
	for i := 0; i < depth; i++ {
		s.pv[idx+i] = board.NoMove
	}
}

// Negamax searches the current position of hist exhaustively to the given
// depth and returns the score from white's perspective together with the
// principal variation.
func Negamax(hist *board.PositionHistory, depth int) Result {
	s := newSearcher(depth)

	score := s.negamax(hist, depth)
	if hist.Current().SideToMove == board.Black {
		score = -score
	}

	return Result{Score: score, PV: s.pv[:depth], Nodes: s.nodes}
}

// AlphaBeta searches like Negamax but with alpha-beta pruning. The score is
// identical to Negamax at the same depth; when moves tie for best, the
// chosen line may differ.
func AlphaBeta(hist *board.PositionHistory, depth int) Result {
	s := newSearcher(depth)

	alpha := eval.ScoreMin + 1
	beta := eval.ScoreMax

	var score eval.Score
	if hist.Current().SideToMove == board.White {
		score = s.alphaBeta(hist, alpha, beta, depth)
	} else {
		score = -s.alphaBeta(hist, -beta, -alpha, depth)
	}

	return Result{Score: score, PV: s.pv[:depth], Nodes: s.nodes}
}

// negamax returns the value of the current position from the perspective
// of the side to move, searched exhaustively to the given depth.
func (s *searcher) negamax(hist *board.PositionHistory, depth int) eval.Score {
	s.nodes++

	if depth == 0 {
		return eval.EvalRelative(hist.Current())
	}

	ml := s.borrowMoveList()
	hist.Current().GenerateMovesInto(ml)

	if ml.Len() == 0 {
		s.returnMoveList(ml)
		s.clearLine(depth)
		return terminalScore(hist.Current(), depth)
	}

	max := eval.ScoreMin
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		hist.DoMove(m)
		score := -s.negamax(hist, depth-1)
		hist.UndoLastMove()

		if score > max {
			max = score
			s.recordBestLine(m, depth)
		}
	}

	s.returnMoveList(ml)
	return max
}

// alphaBeta is negamax with a (alpha, beta) window. On a cutoff the
// clamped bound beta is returned rather than the raw child score.
func (s *searcher) alphaBeta(hist *board.PositionHistory, alpha, beta eval.Score, depth int) eval.Score {
	s.nodes++

	if depth == 0 {
		return eval.EvalRelative(hist.Current())
	}

	ml := s.borrowMoveList()
	hist.Current().GenerateMovesInto(ml)

	if ml.Len() == 0 {
		s.returnMoveList(ml)
		s.clearLine(depth)
		return terminalScore(hist.Current(), depth)
	}

	score := eval.ScoreMin + 1
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		hist.DoMove(m)
		newScore := -s.alphaBeta(hist, -beta, -alpha, depth-1)
		hist.UndoLastMove()

		if newScore >= beta {
			score = beta
			break
		}
		if newScore > alpha {
			alpha = newScore
			score = newScore
			s.recordBestLine(m, depth)
		}
	}

	s.returnMoveList(ml)
	return score
}

// terminalScore scores a node whose side to move has no legal moves:
// checkmate if in check, stalemate otherwise. Mate scores are offset by the
// remaining depth so that mates found closer to the root weigh heavier.
func terminalScore(pos *board.Position, depth int) eval.Score {
	if pos.InCheck() {
		return -(eval.MateScore + eval.Score(depth))
	}
	return eval.DrawScore
}
