package board

// GenerateMovesInto fills ml with exactly the legal moves for the position.
// The list is caller-owned and is reused across calls; no allocation happens
// here. Move order is deterministic for a given position.
func (p *Position) GenerateMovesInto(ml *MoveList) {
	ml.Clear()
	p.generatePseudoLegal(ml)

	// Filter in place: a move is legal if it does not leave the mover's
	// king attacked.
	kept := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.isLegal(m) {
			ml.Set(kept, m)
			kept++
		}
	}
	ml.Truncate(kept)
}

// isLegal applies the move to a scratch copy and tests the mover's king.
func (p *Position) isLegal(m Move) bool {
	us := p.SideToMove
	child := *p
	child.ApplyMove(m)
	return !child.IsSquareAttacked(child.KingSquare(us), us.Other())
}

// generatePseudoLegal generates all pseudo-legal moves (may leave the king
// in check).
func (p *Position) generatePseudoLegal(ml *MoveList) {
	us := p.SideToMove
	ours := p.OccupiedBy(us)
	enemies := p.OccupiedBy(us.Other())
	occupied := p.Occupied()

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Knights & ours
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) &^ ours
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	bishops := p.Bishops & ours
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) &^ ours
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	rooks := p.Rooks & ours
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) &^ ours
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	queens := p.Queens & ours
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) &^ ours
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	kingFrom := p.KingSquare(us)
	attacks := KingAttacks(kingFrom) &^ ours
	for attacks != 0 {
		ml.Add(NewMove(kingFrom, attacks.PopLSB()))
	}

	p.generateCastlingMoves(ml, us)
}

// generatePawnMoves generates all pawn moves.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pawns & p.OccupiedBy(us)
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	// Single pushes (non-promotion)
	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir), to))
	}

	// Double pushes
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}

	// Captures (non-promotion)
	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to))
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to))
	}

	// Promotions
	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to)
	}

	// En passant. A pawn of ours attacks the target square exactly when an
	// enemy pawn standing on the target would attack the pawn's square.
	if p.EnPassant != Empty {
		epSq := p.EnPassant.LSB()
		epAttackers := PawnAttacks(epSq, us.Other()) & pawns
		for epAttackers != 0 {
			ml.Add(NewEnPassant(epAttackers.PopLSB(), epSq))
		}
	}
}

// addPromotions adds all four promotion moves.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateCastlingMoves generates castling moves. Transit squares must be
// empty and not attacked; the landing square is checked by the legality
// filter like any other king move.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.Occupied()&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) {
			ml.Add(NewCastling(E1, G1))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.Occupied()&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) {
			ml.Add(NewCastling(E1, C1))
		}
	} else {
		if p.CastlingRights&BlackKingSideCastle != 0 &&
			p.Occupied()&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) {
			ml.Add(NewCastling(E8, G8))
		}
		if p.CastlingRights&BlackQueenSideCastle != 0 &&
			p.Occupied()&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) {
			ml.Add(NewCastling(E8, C8))
		}
	}
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var ml MoveList
	p.generatePseudoLegal(&ml)
	for i := 0; i < ml.Len(); i++ {
		if p.isLegal(ml.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
