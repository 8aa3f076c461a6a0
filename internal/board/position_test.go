package board

import "testing"

func TestInitialPosition(t *testing.T) {
	pos := Initial()

	if pos.EnPassant != Empty {
		t.Errorf("initial en passant target = %x, want empty", uint64(pos.EnPassant))
	}
	if pos.SideToMove != White {
		t.Errorf("initial side to move = %s, want White", pos.SideToMove)
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("initial castling rights = %s, want KQkq", pos.CastlingRights)
	}
	if pos.HalfMoveClock != 0 {
		t.Errorf("initial half-move clock = %d, want 0", pos.HalfMoveClock)
	}
	if pos.FullMoveNumber != 1 {
		t.Errorf("initial full-move number = %d, want 1", pos.FullMoveNumber)
	}

	pieces := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook},
		{B1, WhiteKnight},
		{C1, WhiteBishop},
		{D1, WhiteQueen},
		{E1, WhiteKing},
		{A2, WhitePawn},
		{A3, NoPiece},
		{H6, NoPiece},
		{A8, BlackRook},
		{B8, BlackKnight},
		{C8, BlackBishop},
		{D8, BlackQueen},
		{E8, BlackKing},
		{A7, BlackPawn},
	}

	for _, tc := range pieces {
		if got := pos.PieceAt(tc.sq); got != tc.want {
			t.Errorf("PieceAt(%s) = %v, want %v", tc.sq, got, tc.want)
		}
	}
}

func TestPositionInvariants(t *testing.T) {
	pos := Initial()

	if pos.White&pos.Black != Empty {
		t.Error("color bitboards must be disjoint")
	}

	types := []Bitboard{pos.Pawns, pos.Knights, pos.Bishops, pos.Rooks, pos.Queens, pos.Kings}
	var all Bitboard
	for i, a := range types {
		for _, b := range types[i+1:] {
			if a&b != Empty {
				t.Error("piece-type bitboards must be pairwise disjoint")
			}
		}
		all |= a
	}
	if all != pos.Occupied() {
		t.Error("type bitboards must cover exactly the occupied squares")
	}
}

func TestPositionString(t *testing.T) {
	want := "r n b q k b n r\n" +
		"p p p p p p p p\n" +
		"- - - - - - - -\n" +
		"- - - - - - - -\n" +
		"- - - - - - - -\n" +
		"- - - - - - - -\n" +
		"P P P P P P P P\n" +
		"R N B Q K B N R\n"

	pos := Initial()
	if got := pos.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestKingSquare(t *testing.T) {
	pos := Initial()
	if got := pos.KingSquare(White); got != E1 {
		t.Errorf("white king at %s, want e1", got)
	}
	if got := pos.KingSquare(Black); got != E8 {
		t.Errorf("black king at %s, want e8", got)
	}
}
