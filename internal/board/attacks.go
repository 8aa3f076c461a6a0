package board

// Attack generation: pre-computed tables for the leapers (knight, king,
// pawn) and classical ray lookups for the sliders.

// Ray directions. The first four advance toward higher square indices,
// the last four toward lower ones; the blocker scan direction depends on it.
const (
	dirNorth = iota
	dirNorthEast
	dirEast
	dirNorthWest
	dirSouth
	dirSouthWest
	dirWest
	dirSouthEast
)

var rayDelta = [8][2]int{
	dirNorth:     {0, 1},
	dirNorthEast: {1, 1},
	dirEast:      {1, 0},
	dirNorthWest: {-1, 1},
	dirSouth:     {0, -1},
	dirSouthWest: {-1, -1},
	dirWest:      {-1, 0},
	dirSouthEast: {1, -1},
}

var (
	rayAttacks    [8][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	initRayAttacks()
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
}

func initRayAttacks() {
	for dir := 0; dir < 8; dir++ {
		df, dr := rayDelta[dir][0], rayDelta[dir][1]
		for sq := A1; sq <= H8; sq++ {
			var ray Bitboard
			f, r := sq.File()+df, sq.Rank()+dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				ray |= SquareBB(NewSquare(f, r))
				f += df
				r += dr
			}
			rayAttacks[dir][sq] = ray
		}
	}
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := Empty
		attacks |= (bb << 17) & NotFileA  // NNE
		attacks |= (bb << 15) & NotFileH  // NNW
		attacks |= (bb >> 17) & NotFileH  // SSW
		attacks |= (bb >> 15) & NotFileA  // SSE
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE

		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()

		kingAttacks[sq] = attacks
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

// slidingAttacks returns the attacked squares along one ray, stopping at
// (and including) the first blocker.
func slidingAttacks(dir int, sq Square, occupied Bitboard) Bitboard {
	attacks := rayAttacks[dir][sq]
	blockers := attacks & occupied
	if blockers != 0 {
		var first Square
		if dir < dirSouth {
			first = blockers.LSB()
		} else {
			first = blockers.MSB()
		}
		attacks &^= rayAttacks[dir][first]
	}
	return attacks
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn attack bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(dirNorthEast, sq, occupied) |
		slidingAttacks(dirNorthWest, sq, occupied) |
		slidingAttacks(dirSouthEast, sq, occupied) |
		slidingAttacks(dirSouthWest, sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(dirNorth, sq, occupied) |
		slidingAttacks(dirEast, sq, occupied) |
		slidingAttacks(dirSouth, sq, occupied) |
		slidingAttacks(dirWest, sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttackersByColor returns a bitboard of pieces of the given color attacking a square.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	us := p.OccupiedBy(c)
	return (pawnAttacks[c.Other()][sq] & p.Pawns & us) |
		(knightAttacks[sq] & p.Knights & us) |
		(kingAttacks[sq] & p.Kings & us) |
		(BishopAttacks(sq, occupied) & (p.Bishops | p.Queens) & us) |
		(RookAttacks(sq, occupied) & (p.Rooks | p.Queens) & us)
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.Occupied()) != 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
