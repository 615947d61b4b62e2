package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit rank*8+file is set when that square is occupied: bit 0 = A1, bit 7 = H1,
// bit 56 = A8, bit 63 = H8.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// Empty is the bitboard with no squares set.
const Empty Bitboard = 0

// SquareBB returns a bitboard with only the given square set.
// NoSquare yields an empty bitboard.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return 1 << sq
}

// Set sets the bit for a validated square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear clears the bit for a validated square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// SetAt sets the bit addressed by rank and file. On failure the bitboard is
// returned unchanged together with ErrInvalidRankOrFile.
func (b Bitboard) SetAt(rank, file int) (Bitboard, error) {
	sq, err := SquareFromCoords(rank, file)
	if err != nil {
		return b, err
	}
	return b.Set(sq), nil
}

// UnsetAt clears the bit addressed by rank and file.
func (b Bitboard) UnsetAt(rank, file int) (Bitboard, error) {
	sq, err := SquareFromCoords(rank, file)
	if err != nil {
		return b, err
	}
	return b.Clear(sq), nil
}

// GetAt reports whether the bit addressed by rank and file is set.
func (b Bitboard) GetAt(rank, file int) (bool, error) {
	sq, err := SquareFromCoords(rank, file)
	if err != nil {
		return false, err
	}
	return b.IsSet(sq), nil
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Squares returns a slice of all squares that are set, lowest index first.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns an 8x8 grid of 0/1 values, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if b&(1<<(rank*8+file)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
