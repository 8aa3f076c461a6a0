package board

import "strings"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Position represents a complete chess position.
//
// Pieces are stored as six color-agnostic piece-type bitboards plus two
// color occupancy bitboards. A square's occupant is the intersection of
// one type bitboard and exactly one color bitboard.
type Position struct {
	Pawns   Bitboard
	Knights Bitboard
	Bishops Bitboard
	Rooks   Bitboard
	Queens  Bitboard
	Kings   Bitboard

	White Bitboard
	Black Bitboard

	// EnPassant holds the en passant target square, at most one bit set.
	EnPassant Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	HalfMoveClock  int // Plies since last pawn move or capture (for 50-move rule)
	FullMoveNumber int // Full move counter, starts at 1
}

// Initial returns the standard chess starting position.
func Initial() Position {
	return Position{
		Pawns:          Rank2 | Rank7,
		Knights:        SquareBB(B1) | SquareBB(G1) | SquareBB(B8) | SquareBB(G8),
		Bishops:        SquareBB(C1) | SquareBB(F1) | SquareBB(C8) | SquareBB(F8),
		Rooks:          SquareBB(A1) | SquareBB(H1) | SquareBB(A8) | SquareBB(H8),
		Queens:         SquareBB(D1) | SquareBB(D8),
		Kings:          SquareBB(E1) | SquareBB(E8),
		White:          Rank1 | Rank2,
		Black:          Rank7 | Rank8,
		EnPassant:      Empty,
		SideToMove:     White,
		CastlingRights: AllCastling,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
	}
}

// Occupied returns all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.White | p.Black
}

// OccupiedBy returns the squares occupied by the given color.
func (p *Position) OccupiedBy(c Color) Bitboard {
	if c == White {
		return p.White
	}
	return p.Black
}

// colorBB returns a pointer to the occupancy bitboard for the given color.
func (p *Position) colorBB(c Color) *Bitboard {
	if c == White {
		return &p.White
	}
	return &p.Black
}

// typeBB returns a pointer to the bitboard for the given piece type.
func (p *Position) typeBB(pt PieceType) *Bitboard {
	switch pt {
	case Pawn:
		return &p.Pawns
	case Knight:
		return &p.Knights
	case Bishop:
		return &p.Bishops
	case Rook:
		return &p.Rooks
	case Queen:
		return &p.Queens
	default:
		return &p.Kings
	}
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
// Color is resolved first, then the piece type in a fixed order; a square
// that is occupied but matches no other type bitboard holds the king.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)

	var c Color
	switch {
	case p.White&bb != 0:
		c = White
	case p.Black&bb != 0:
		c = Black
	default:
		return NoPiece
	}

	switch {
	case p.Pawns&bb != 0:
		return NewPiece(Pawn, c)
	case p.Knights&bb != 0:
		return NewPiece(Knight, c)
	case p.Bishops&bb != 0:
		return NewPiece(Bishop, c)
	case p.Rooks&bb != 0:
		return NewPiece(Rook, c)
	case p.Queens&bb != 0:
		return NewPiece(Queen, c)
	default:
		return NewPiece(King, c)
	}
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Occupied()&SquareBB(sq) == 0
}

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return (p.Kings & p.OccupiedBy(c)).LSB()
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.SideToMove), p.SideToMove.Other())
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	bb := SquareBB(sq)
	*p.typeBB(piece.Type()) |= bb
	*p.colorBB(piece.Color()) |= bb
}

// removePiece removes a piece from a square and returns it.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	bb := SquareBB(sq)
	*p.typeBB(piece.Type()) &^= bb
	*p.colorBB(piece.Color()) &^= bb
	return piece
}

// movePiece moves a piece of a known type and color between squares.
func (p *Position) movePiece(pt PieceType, c Color, from, to Square) {
	moveBB := SquareBB(from) | SquareBB(to)
	*p.typeBB(pt) ^= moveBB
	*p.colorBB(c) ^= moveBB
}

// String renders the board as 8 ranks top-down, one line per rank, with
// space-separated piece glyphs and '-' for empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteByte('-')
			} else {
				sb.WriteString(piece.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
