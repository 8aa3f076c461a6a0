package board

import "testing"

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want Move
	}{
		{"quiet move", StartFEN, "e2e4", NewMove(E2, E4)},
		{"knight move", StartFEN, "g1f3", NewMove(G1, F3)},
		{
			"kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1g1",
			NewCastling(E1, G1),
		},
		{
			"queenside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			"e8c8",
			NewCastling(E8, C8),
		},
		{
			"en passant capture",
			"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			"e5d6",
			NewEnPassant(E5, D6),
		},
		{
			"promotion",
			"4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			"a7a8q",
			NewPromotion(A7, A8, Queen),
		},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("%s: ParseFEN: %v", tc.name, err)
		}

		got, err := ParseMove(tc.uci, &pos)
		if err != nil {
			t.Errorf("%s: ParseMove(%q): %v", tc.name, tc.uci, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: ParseMove(%q) = %v, want %v", tc.name, tc.uci, got, tc.want)
		}
		if got.String() != tc.uci {
			t.Errorf("%s: round-trip gives %s, want %s", tc.name, got.String(), tc.uci)
		}

		var ml MoveList
		pos.GenerateMovesInto(&ml)
		if !ml.Contains(got) {
			t.Errorf("%s: parsed move %s not among the legal moves", tc.name, tc.uci)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	pos := Initial()

	for _, uci := range []string{"", "e2", "e2e9", "i2i4", "e7e8x", "e3e4"} {
		if _, err := ParseMove(uci, &pos); err == nil {
			t.Errorf("ParseMove(%q): expected error", uci)
		}
	}
}
