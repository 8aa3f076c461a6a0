package board

// ApplyMove applies a legal move to the position in place.
//
// The position cannot be rolled back from here alone; callers that need to
// revert moves go through PositionHistory, which snapshots the prior state.
func (p *Position) ApplyMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)
	pt := piece.Type()

	p.EnPassant = Empty

	// Remove the captured piece, if any.
	captured := NoPiece
	if m.IsEnPassant() {
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		captured = p.removePiece(capturedSq)
	} else if !p.IsEmpty(to) {
		captured = p.removePiece(to)
	}

	p.movePiece(pt, us, from, to)

	if m.IsPromotion() {
		bb := SquareBB(to)
		p.Pawns &^= bb
		*p.typeBB(m.Promotion()) |= bb
	}

	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			// Kingside
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			// Queenside
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(Rook, us, rookFrom, rookTo)
	}

	// Castling rights: king moves revoke both, rook moves or captures on
	// the rook's home square revoke that side.
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	// Double pawn push sets the en passant target behind the pawn.
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		p.EnPassant = SquareBB(Square((int(from) + int(to)) / 2))
	}

	if pt == Pawn || captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
}
