package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// perft counts the leaf nodes of the legal move tree at the given depth,
// the standard way to verify move generation.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var ml MoveList
	p.GenerateMovesInto(&ml)
	if depth == 1 {
		return int64(ml.Len())
	}

	var nodes int64
	for i := 0; i < ml.Len(); i++ {
		child := *p
		child.ApplyMove(ml.Get(i))
		nodes += perft(&child, depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	pos := Initial()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		got := perft(&pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftKiwipete exercises castling, pins, and en passant edge cases.
func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		got := perft(&pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		got := perft(&pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// dtPerft mirrors perft on a dragontoothmg board, used as an independent
// oracle for positions without published node counts.
func dtPerft(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// TestPerftAgainstOracle cross-checks move generation against an
// independent implementation on a handful of awkward positions.
func TestPerftAgainstOracle(t *testing.T) {
	fens := []string{
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		oracle := dragontoothmg.ParseFen(fen)

		for depth := 1; depth <= 3; depth++ {
			got := perft(&pos, depth)
			want := dtPerft(&oracle, depth)
			if got != want {
				t.Errorf("%s: perft(%d) = %d, oracle says %d", fen, depth, got, want)
			}
		}
	}
}

// TestMoveSetAgainstOracle compares the generated moves themselves, not just
// their count, so a paired miss and phantom cannot cancel out.
func TestMoveSetAgainstOracle(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var ml MoveList
		pos.GenerateMovesInto(&ml)

		ours := make(map[string]bool, ml.Len())
		for _, m := range ml.Slice() {
			ours[m.String()] = true
		}

		oracle := dragontoothmg.ParseFen(fen)
		theirs := oracle.GenerateLegalMoves()
		if len(ours) != ml.Len() {
			t.Errorf("%s: %d moves but only %d distinct", fen, ml.Len(), len(ours))
		}
		if len(theirs) != ml.Len() {
			t.Errorf("%s: generated %d moves, oracle has %d", fen, ml.Len(), len(theirs))
		}
		for _, m := range theirs {
			if !ours[m.String()] {
				t.Errorf("%s: missing move %s", fen, m.String())
			}
		}
	}
}
