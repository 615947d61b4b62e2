// Package uci implements a small UCI-style text protocol for loading and
// inspecting positions.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
)

// UCI reads commands from in and writes responses to out.
type UCI struct {
	in       io.Reader
	out      io.Writer
	position *board.Board

	// Optional position library for save/load/list
	store *storage.Storage
}

// New creates a new protocol handler positioned at the start position.
// store may be nil, in which case the library commands report an error.
func New(in io.Reader, out io.Writer, store *storage.Storage) *UCI {
	return &UCI{
		in:       in,
		out:      out,
		position: board.NewStartBoard(),
		store:    store,
	}
}

// Position returns the current position.
func (u *UCI) Position() *board.Board {
	return u.position
}

// Run processes commands until quit or end of input.
func (u *UCI) Run() error {
	scanner := bufio.NewScanner(u.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.position = board.NewStartBoard()
		case "position":
			u.handlePosition(line)
		case "d":
			u.println(u.position.String())
		case "bitboards":
			u.handleBitboards()
		case "save":
			u.handleSave(line)
		case "load":
			u.handleLoad(args)
		case "list":
			u.handleList()
		case "find":
			u.handleFind()
		case "quit":
			return nil
		default:
			u.printf("info string unknown command: %s\n", cmd)
		}
	}

	return scanner.Err()
}

func (u *UCI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UCI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *UCI) errorf(format string, args ...any) {
	u.printf("info string error: "+format+"\n", args...)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name chesscore")
	u.println("id author chesscore authors")
	u.println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position fen <fen>
//
// The FEN is taken verbatim from the line, so it must use single spaces.
// A trailing "moves" list is rejected because moves cannot be applied.
func (u *UCI) handlePosition(line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "position"))

	if strings.Contains(rest, " moves") || strings.HasPrefix(rest, "moves") {
		u.errorf("moves are not supported")
		return
	}

	switch {
	case rest == "startpos":
		u.position = board.NewStartBoard()
	case strings.HasPrefix(rest, "fen "):
		fen := strings.TrimPrefix(rest, "fen ")
		b, err := board.ParseFEN(fen)
		if err != nil {
			u.errorf("%v", err)
			return
		}
		u.position = b
	default:
		u.errorf("expected startpos or fen")
	}
}

var colorNames = [2]string{"white", "black"}
var pieceNames = [6]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

// handleBitboards prints every piece bitboard followed by the aggregates.
func (u *UCI) handleBitboards() {
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			u.printf("%s %s\n%s\n", colorNames[c], pieceNames[pt], u.position.Pieces(c, pt))
		}
		u.printf("%s\n%s\n", colorNames[c], u.position.ColorBB(c))
	}
	u.printf("occupied\n%s\n", u.position.Occupied())
}

// handleSave stores a FEN under a name: save <name> fen <fen>.
// Like handlePosition, the FEN is passed on exactly as typed.
func (u *UCI) handleSave(line string) {
	if u.store == nil {
		u.errorf("no position library")
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "save"))
	name, fen, ok := strings.Cut(rest, " ")
	if !ok || !strings.HasPrefix(fen, "fen ") {
		u.errorf("usage: save <name> fen <fen>")
		return
	}
	fen = strings.TrimPrefix(fen, "fen ")
	if _, err := u.store.SavePosition(name, fen); err != nil {
		u.errorf("%v", err)
		return
	}
	u.printf("info string saved %s\n", name)
}

func (u *UCI) handleLoad(args []string) {
	if u.store == nil {
		u.errorf("no position library")
		return
	}
	if len(args) != 1 {
		u.errorf("usage: load <name>")
		return
	}
	b, err := u.store.LoadPosition(args[0])
	if err != nil {
		u.errorf("%v", err)
		return
	}
	u.position = b
	u.printf("info string loaded %s\n", args[0])
}

func (u *UCI) handleList() {
	if u.store == nil {
		u.errorf("no position library")
		return
	}
	names, err := u.store.ListPositions()
	if err != nil {
		u.errorf("%v", err)
		return
	}
	for _, name := range names {
		u.printf("info string position %s\n", name)
	}
}

// handleFind lists the stored positions whose hash equals the current
// position's hash.
func (u *UCI) handleFind() {
	if u.store == nil {
		u.errorf("no position library")
		return
	}
	hash := u.position.Hash()
	names, err := u.store.FindByHash(hash)
	if err != nil {
		u.errorf("%v", err)
		return
	}
	if len(names) == 0 {
		u.printf("info string no match for %016x\n", hash)
		return
	}
	for _, name := range names {
		u.printf("info string match %s\n", name)
	}
}
