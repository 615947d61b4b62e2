package board

import (
	"errors"
	"strings"
	"testing"
)

func TestBitboardSetGetUnset(t *testing.T) {
	var bb Bitboard

	bb, err := bb.SetAt(3, 4)
	if err != nil {
		t.Fatalf("SetAt(3, 4): %v", err)
	}
	if bb != SquareBB(E4) {
		t.Errorf("SetAt(3, 4) = %#x, want bit for e4", uint64(bb))
	}

	set, err := bb.GetAt(3, 4)
	if err != nil || !set {
		t.Errorf("GetAt(3, 4) = %v, %v; want true, nil", set, err)
	}
	set, err = bb.GetAt(4, 3)
	if err != nil || set {
		t.Errorf("GetAt(4, 3) = %v, %v; want false, nil", set, err)
	}

	bb, err = bb.UnsetAt(3, 4)
	if err != nil {
		t.Fatalf("UnsetAt(3, 4): %v", err)
	}
	if bb != Empty {
		t.Errorf("board not empty after UnsetAt: %#x", uint64(bb))
	}
}

func TestBitboardOutOfRange(t *testing.T) {
	coords := [][2]int{{8, 0}, {0, 8}, {8, 8}, {255, 3}, {-1, 0}, {0, -1}}

	for _, rc := range coords {
		bb := SquareBB(A1)

		got, err := bb.SetAt(rc[0], rc[1])
		if !errors.Is(err, ErrInvalidRankOrFile) {
			t.Errorf("SetAt(%d, %d) error = %v, want ErrInvalidRankOrFile", rc[0], rc[1], err)
		}
		if got != bb {
			t.Errorf("SetAt(%d, %d) modified board on failure", rc[0], rc[1])
		}

		got, err = bb.UnsetAt(rc[0], rc[1])
		if !errors.Is(err, ErrInvalidRankOrFile) || got != bb {
			t.Errorf("UnsetAt(%d, %d) = %#x, %v", rc[0], rc[1], uint64(got), err)
		}

		if _, err := bb.GetAt(rc[0], rc[1]); !errors.Is(err, ErrInvalidRankOrFile) {
			t.Errorf("GetAt(%d, %d) error = %v, want ErrInvalidRankOrFile", rc[0], rc[1], err)
		}
	}
}

func TestBitboardIndexMapping(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb, err := Empty.SetAt(i/8, i%8)
		if err != nil {
			t.Fatalf("SetAt(%d, %d): %v", i/8, i%8, err)
		}
		if bb != Bitboard(1)<<i {
			t.Errorf("square %d: got %#x", i, uint64(bb))
		}
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(C3) | SquareBB(A1) | SquareBB(H8)

	if got := bb.PopCount(); got != 3 {
		t.Fatalf("PopCount = %d, want 3", got)
	}
	want := []Square{A1, C3, H8}
	got := bb.Squares()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if sq := bb.PopLSB(); sq != A1 {
		t.Errorf("PopLSB = %s, want a1", sq)
	}
	if bb.PopCount() != 2 {
		t.Errorf("PopLSB did not clear the bit")
	}
	if Empty.LSB() != NoSquare {
		t.Errorf("LSB of empty board should be NoSquare")
	}
}

func TestBitboardString(t *testing.T) {
	s := (SquareBB(A1) | SquareBB(H8)).String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	if lines[0] != "0 0 0 0 0 0 0 1" {
		t.Errorf("rank 8 = %q", lines[0])
	}
	if lines[7] != "1 0 0 0 0 0 0 0" {
		t.Errorf("rank 1 = %q", lines[7])
	}
	for _, l := range lines[1:7] {
		if l != "0 0 0 0 0 0 0 0" {
			t.Errorf("unexpected row %q", l)
		}
	}
}

func TestMasks(t *testing.T) {
	if (Rank2 & FileE) != SquareBB(E2) {
		t.Errorf("Rank2 & FileE should be e2")
	}
	for i, m := range []Bitboard{FileA, FileH, Rank1, Rank8} {
		if m.PopCount() != 8 {
			t.Errorf("mask %d does not have 8 squares", i)
		}
	}
}
