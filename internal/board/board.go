package board

import (
	"fmt"
	"strings"
)

// Board is a chess position stored as bitboards.
//
// The piece, color and occupancy bitboards are only changed through
// SetSquare and UnsetSquare, which keep the three layers in step:
// occupied is the union of both color boards and each color board is
// the union of that color's six piece boards.
type Board struct {
	pieces   [2][6]Bitboard // [Color][PieceType]
	colors   [2]Bitboard    // All pieces of each color
	occupied Bitboard       // All pieces on the board

	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare if none
	HalfMoveClock  uint8  // Moves since last pawn move or capture
	FullMoveNumber uint16 // Starts at 1
}

// NewBoard returns an empty board with white to move.
func NewBoard() *Board {
	return &Board{
		SideToMove:     White,
		Castling:       NoCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// NewStartBoard returns the standard starting position.
func NewStartBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: cannot decode start position: " + err.Error())
	}
	return b
}

// Pieces returns the bitboard of c's pieces of type pt.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	if !c.IsValid() || !pt.IsValid() {
		return Empty
	}
	return b.pieces[c][pt]
}

// ColorBB returns all of c's pieces.
func (b *Board) ColorBB(c Color) Bitboard {
	if !c.IsValid() {
		return Empty
	}
	return b.colors[c]
}

// Occupied returns every occupied square.
func (b *Board) Occupied() Bitboard {
	return b.occupied
}

// Count returns the number of c's pieces of type pt.
func (b *Board) Count(c Color, pt PieceType) int {
	return b.Pieces(c, pt).PopCount()
}

// SetSquare places a piece of color c and type pt on sq.
func (b *Board) SetSquare(c Color, pt PieceType, sq Square) {
	if !c.IsValid() || !pt.IsValid() || !sq.IsValid() {
		return
	}
	bb := SquareBB(sq)
	b.pieces[c][pt] |= bb
	b.colors[c] |= bb
	b.occupied |= bb
}

// UnsetSquare removes a piece of color c and type pt from sq.
func (b *Board) UnsetSquare(c Color, pt PieceType, sq Square) {
	if !c.IsValid() || !pt.IsValid() || !sq.IsValid() {
		return
	}
	bb := SquareBB(sq)
	b.pieces[c][pt] &^= bb
	b.colors[c] &^= bb
	b.occupied &^= bb
}

// SetRankFile is SetSquare addressed by 0-indexed rank and file.
func (b *Board) SetRankFile(c Color, pt PieceType, rank, file int) error {
	sq, err := SquareFromCoords(rank, file)
	if err != nil {
		return err
	}
	b.SetSquare(c, pt, sq)
	return nil
}

// UnsetRankFile is UnsetSquare addressed by 0-indexed rank and file.
func (b *Board) UnsetRankFile(c Color, pt PieceType, rank, file int) error {
	sq, err := SquareFromCoords(rank, file)
	if err != nil {
		return err
	}
	b.UnsetSquare(c, pt, sq)
	return nil
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if b.occupied&bb == 0 {
		return NoPiece
	}

	c := Black
	if b.colors[White]&bb != 0 {
		c = White
	}

	for pt := Pawn; pt <= King; pt++ {
		if b.pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.occupied&SquareBB(sq) == 0
}

// CheckConsistency verifies that the color and occupancy bitboards match
// the piece bitboards and that no square holds two pieces.
func (b *Board) CheckConsistency() error {
	var seen, all Bitboard
	for c := White; c <= Black; c++ {
		var side Bitboard
		for pt := Pawn; pt <= King; pt++ {
			bb := b.pieces[c][pt]
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("square %s holds more than one piece", overlap.LSB())
			}
			seen |= bb
			side |= bb
		}
		if side != b.colors[c] {
			return fmt.Errorf("%s occupancy %#x does not match its pieces %#x", c, uint64(b.colors[c]), uint64(side))
		}
		all |= side
	}
	if all != b.occupied {
		return fmt.Errorf("occupancy %#x does not match pieces %#x", uint64(b.occupied), uint64(all))
	}
	if b.EnPassant != NoSquare && !b.EnPassant.IsValid() {
		return fmt.Errorf("en passant square %d out of range", b.EnPassant)
	}
	return nil
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(Square(rank*8 + file))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", b.Castling)
	fmt.Fprintf(&sb, "En passant: %s\n", b.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", b.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", b.FullMoveNumber)
	fmt.Fprintf(&sb, "Hash: %016x\n", b.Hash())
	return sb.String()
}
