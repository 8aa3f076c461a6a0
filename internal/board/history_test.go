package board

import "testing"

func TestHistoryDoUndo(t *testing.T) {
	h := NewPositionHistory(Initial())
	before := *h.Current()

	h.DoMove(NewMove(E2, E4))
	if h.Len() != 2 {
		t.Fatalf("Len = %d after one move, want 2", h.Len())
	}
	if h.Current().PieceAt(E4) != WhitePawn {
		t.Error("current position should reflect the applied move")
	}

	h.UndoLastMove()
	if h.Len() != 1 {
		t.Fatalf("Len = %d after undo, want 1", h.Len())
	}
	if *h.Current() != before {
		t.Errorf("undo did not restore the exact prior position:\n%s", h.Current().String())
	}
}

// TestReversibilityEverywhere verifies that every do/undo pair restores the
// position bit for bit at every node of a shallow tree, including castling
// rights, en passant target, and clocks.
func TestReversibilityEverywhere(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		h := NewPositionHistory(pos)
		checkReversible(t, h, 3)
	}
}

func checkReversible(t *testing.T, h *PositionHistory, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	var ml MoveList
	h.Current().GenerateMovesInto(&ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		snapshot := *h.Current()

		h.DoMove(m)
		checkReversible(t, h, depth-1)
		h.UndoLastMove()

		if *h.Current() != snapshot {
			t.Fatalf("do/undo of %s did not restore the position in\n%s", m, snapshot.String())
		}
	}
}
