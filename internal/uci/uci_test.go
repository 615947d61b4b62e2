package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
)

func run(t *testing.T, store *storage.Storage, script ...string) (*UCI, string) {
	t.Helper()
	var out bytes.Buffer
	u := New(strings.NewReader(strings.Join(script, "\n")), &out, store)
	if err := u.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return u, out.String()
}

func TestHandshake(t *testing.T) {
	_, out := run(t, nil, "uci", "isready", "quit")
	for _, want := range []string{"id name chesscore", "uciok", "readyok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPositionFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K2R b K - 3 40"
	u, out := run(t, nil, "position fen "+fen)

	if strings.Contains(out, "error") {
		t.Fatalf("unexpected error output:\n%s", out)
	}
	want, _ := board.ParseFEN(fen)
	if *u.Position() != *want {
		t.Errorf("position not loaded:\n%s", u.Position())
	}
}

func TestPositionErrorsKeepBoard(t *testing.T) {
	tests := []string{
		"position fen 8/8/8/8/8/8/8/8 x - - 0 1",
		"position fen " + board.StartFEN + " moves e2e4",
		"position startpos moves e2e4",
		"position",
	}

	for _, cmd := range tests {
		t.Run(cmd, func(t *testing.T) {
			u, out := run(t, nil, cmd)
			if !strings.Contains(out, "info string error") {
				t.Errorf("expected an error line, got:\n%s", out)
			}
			if *u.Position() != *board.NewStartBoard() {
				t.Error("failed command changed the position")
			}
		})
	}
}

func TestNewGameResets(t *testing.T) {
	u, _ := run(t, nil, "position fen 8/8/8/8/8/8/8/8 w - - 0 1", "ucinewgame")
	if *u.Position() != *board.NewStartBoard() {
		t.Error("ucinewgame did not reset to the start position")
	}
}

func TestDisplayAndBitboards(t *testing.T) {
	_, out := run(t, nil, "d", "bitboards")

	if !strings.Contains(out, "Castling: KQkq") {
		t.Errorf("d output missing castling:\n%s", out)
	}
	if !strings.Contains(out, "white pawn\n0 0 0 0 0 0 0 0\n") {
		t.Errorf("bitboards output missing white pawns:\n%s", out)
	}
	if !strings.Contains(out, "occupied\n1 1 1 1 1 1 1 1\n") {
		t.Errorf("bitboards output missing occupancy:\n%s", out)
	}
}

func TestLibraryCommands(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	fen := "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
	u, out := run(t, store,
		"save bare fen "+fen,
		"list",
		"ucinewgame",
		"load bare",
	)

	for _, want := range []string{"saved bare", "position bare", "loaded bare"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	want, _ := board.ParseFEN(fen)
	if *u.Position() != *want {
		t.Errorf("load did not set the position")
	}
}

func TestLibraryWithoutStore(t *testing.T) {
	_, out := run(t, nil, "list", "load x", "find", "save x fen "+board.StartFEN)
	if strings.Count(out, "no position library") != 4 {
		t.Errorf("expected four library errors:\n%s", out)
	}
}

func TestFindByCurrentPosition(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	bare := "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
	_, out := run(t, store,
		"save opening fen "+board.StartFEN,
		// Same position, different clocks: the hash ignores them.
		"save opening-later fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 12",
		"save bare fen "+bare,
		"find",
		"position fen "+bare,
		"find",
		"position fen 8/8/8/8/8/8/8/8 w - - 0 1",
		"find",
	)

	for _, want := range []string{
		"info string match opening\ninfo string match opening-later\n",
		"info string match bare\n",
		"info string no match for ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "info string match") != 3 {
		t.Errorf("unexpected matches:\n%s", out)
	}
}

func TestSaveKeepsFENVerbatim(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	doubled := "8/8/8/4k3/8/8/8/4K3 w  - - 0 1"
	_, out := run(t, store,
		"save doubled fen "+doubled,
		"position fen "+doubled,
		"save",
		"save lonely",
		"list",
	)

	if strings.Contains(out, "saved doubled") {
		t.Errorf("save accepted a FEN with a doubled space:\n%s", out)
	}
	if n := strings.Count(out, "invalid FEN length"); n != 2 {
		t.Errorf("save and position should both report the field count, got %d:\n%s", n, out)
	}
	if n := strings.Count(out, "usage: save"); n != 2 {
		t.Errorf("expected two usage errors, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "info string position") {
		t.Errorf("library should be empty:\n%s", out)
	}
}
