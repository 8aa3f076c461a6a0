package board

import "testing"

func TestSquareBB(t *testing.T) {
	if SquareBB(A1) != 1 {
		t.Errorf("SquareBB(A1) = %x, want 1", uint64(SquareBB(A1)))
	}
	if SquareBB(H8) != 1<<63 {
		t.Errorf("SquareBB(H8) = %x, want %x", uint64(SquareBB(H8)), uint64(1)<<63)
	}
	if SquareBB(E4) != SquareBB(NewSquare(4, 3)) {
		t.Error("E4 should be file e, rank 4")
	}
}

func TestRankFileMasks(t *testing.T) {
	if Rank1|Rank2|Rank3|Rank4|Rank5|Rank6|Rank7|Rank8 != Universe {
		t.Error("ranks should cover the board")
	}
	if FileA&FileH != Empty {
		t.Error("files A and H should be disjoint")
	}
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := NewSquare(f, r)
			if FileMask[f]&RankMask[r] != SquareBB(sq) {
				t.Errorf("file %d and rank %d should intersect in exactly %s", f, r, sq)
			}
		}
	}
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"North", SquareBB(E4).North(), SquareBB(E5)},
		{"South", SquareBB(E4).South(), SquareBB(E3)},
		{"East", SquareBB(E4).East(), SquareBB(F4)},
		{"West", SquareBB(E4).West(), SquareBB(D4)},
		{"NorthEast", SquareBB(E4).NorthEast(), SquareBB(F5)},
		{"NorthWest", SquareBB(E4).NorthWest(), SquareBB(D5)},
		{"SouthEast", SquareBB(E4).SouthEast(), SquareBB(F3)},
		{"SouthWest", SquareBB(E4).SouthWest(), SquareBB(D3)},
		{"EastWraps", SquareBB(H4).East(), Empty},
		{"WestWraps", SquareBB(A4).West(), Empty},
		{"NorthOffBoard", SquareBB(E8).North(), Empty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %x, want %x", uint64(tc.got), uint64(tc.want))
			}
		})
	}
}

func TestPopLSB(t *testing.T) {
	b := SquareBB(C3) | SquareBB(F6) | SquareBB(H8)

	if got := b.PopCount(); got != 3 {
		t.Fatalf("PopCount = %d, want 3", got)
	}

	want := []Square{C3, F6, H8}
	for _, w := range want {
		if sq := b.PopLSB(); sq != w {
			t.Errorf("PopLSB = %s, want %s", sq, w)
		}
	}
	if !b.Empty() {
		t.Error("bitboard should be empty after popping all bits")
	}
	if b.LSB() != NoSquare {
		t.Error("LSB of empty bitboard should be NoSquare")
	}
}
