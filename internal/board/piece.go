package board

import "strings"

// Color is the side a piece belongs to. It indexes the first dimension of
// the board's piece grid.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// PieceType indexes the second dimension of the board's piece grid.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// IsValid reports whether pt is Pawn through King.
func (pt PieceType) IsValid() bool {
	return pt < NoPieceType
}

// Piece is a colored piece type, numbered color*6 + type so that it also
// indexes pieceLetters.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// pieceLetters holds the FEN letter of every Piece at its own index.
const pieceLetters = "PNBRQKpnbrqk"

// NewPiece combines a color and a piece type. Invalid input gives NoPiece.
func NewPiece(pt PieceType, c Color) Piece {
	if !pt.IsValid() || !c.IsValid() {
		return NoPiece
	}
	return Piece(c)*6 + Piece(pt)
}

// PieceFromChar returns the piece for a FEN letter, or NoPiece.
func PieceFromChar(ch byte) Piece {
	i := strings.IndexByte(pieceLetters, ch)
	if i < 0 {
		return NoPiece
	}
	return Piece(i)
}

// Type returns the piece type, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the piece color, NoColor for NoPiece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN letter, or a space for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return pieceLetters[p : p+1]
}
