// Package board implements the bitboard position representation and its
// FEN decoder.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// The value is the linear index rank*8+file: A1=0, H1=7, A8=56, H8=63.
// NoSquare marks the absence of a square.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Coords returns the rank and file of the square. It is the inverse of
// SquareFromCoords.
func (sq Square) Coords() (rank, file int) {
	return sq.Rank(), sq.File()
}

// IsValid returns true if the square is a board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// SquareFromCoords returns the square at rank and file, both 0-indexed.
func SquareFromCoords(rank, file int) (Square, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, fmt.Errorf("rank %d, file %d: %w", rank, file, ErrInvalidRankOrFile)
	}
	return Square(rank*8 + file), nil
}

// SquareFromIndex returns the square with the given linear index.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i > 63 {
		return NoSquare, fmt.Errorf("index %d: %w", i, ErrInvalidRankOrFile)
	}
	return Square(i), nil
}

// ParseSquare parses algebraic notation (e.g., "e4" or "E4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}

	var file int
	switch c := s[0]; {
	case c >= 'a' && c <= 'h':
		file = int(c - 'a')
	case c >= 'A' && c <= 'H':
		file = int(c - 'A')
	default:
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}

	if s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}
	rank := int(s[1] - '1')

	return SquareFromCoords(rank, file)
}
