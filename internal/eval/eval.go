// Package eval implements the static evaluation the search calls at leaf
// nodes: material plus piece-square tables, in centipawns.
package eval

import (
	"math"

	"github.com/kestrelchess/kestrel/internal/board"
)

// Score is a position evaluation in centipawns.
//
// Negating ScoreMin+1 stays in range; the true minimum must never be
// negated, which is why searches bound their window at ScoreMin+1.
type Score int32

const (
	ScoreMin Score = math.MinInt32
	ScoreMax Score = math.MaxInt32

	// MateScore is the magnitude of a checkmate score. Terminal mate
	// scores are offset by the remaining search depth so that faster
	// mates score higher; the result stays far below ScoreMax.
	MateScore Score = 100000

	// DrawScore is the score of a stalemate (or any drawn) position.
	DrawScore Score = 0
)

// Piece values in centipawns, indexed by board.PieceType. The king carries
// no material term; both sides always have exactly one.
var pieceValue = [6]Score{100, 320, 330, 500, 900, 0}

// Eval returns the evaluation of the position from white's perspective:
// positive means white is better.
func Eval(pos *board.Position) Score {
	var score Score

	for pt := board.Pawn; pt <= board.King; pt++ {
		white := typeBB(pos, pt) & pos.White
		for white != 0 {
			sq := white.PopLSB()
			score += pieceValue[pt] + pst[pt][sq.Mirror()]
		}

		black := typeBB(pos, pt) & pos.Black
		for black != 0 {
			sq := black.PopLSB()
			score -= pieceValue[pt] + pst[pt][sq]
		}
	}

	return score
}

// EvalRelative returns the evaluation from the perspective of the side to
// move: positive means the mover is better.
func EvalRelative(pos *board.Position) Score {
	score := Eval(pos)
	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

func typeBB(pos *board.Position, pt board.PieceType) board.Bitboard {
	switch pt {
	case board.Pawn:
		return pos.Pawns
	case board.Knight:
		return pos.Knights
	case board.Bishop:
		return pos.Bishops
	case board.Rook:
		return pos.Rooks
	case board.Queen:
		return pos.Queens
	default:
		return pos.Kings
	}
}
