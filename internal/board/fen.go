package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// ParseFEN decodes a six-field FEN string into a new Board.
//
// Fields are separated by single spaces and decoded in order. The first
// failure aborts decoding and no board is returned.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != fenFields {
		return nil, fmt.Errorf("need %d fields, got %d: %w", fenFields, len(parts), ErrInvalidLength)
	}

	b := NewBoard()

	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(b, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(b, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(b, parts[3]); err != nil {
		return nil, err
	}
	if err := parseMoveClocks(b, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return b, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
// The first group is rank 8.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fieldError("placement", placement, ErrInvalidPiecePlacement,
			fmt.Errorf("need 8 ranks, got %d", len(ranks)))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > 8 {
					return fieldError("placement", placement, ErrInvalidPiecePlacement,
						fmt.Errorf("rank %d overflows past file h", rank+1))
				}
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fieldError("placement", placement, ErrInvalidPiecePlacement,
					fmt.Errorf("invalid piece character %q", c))
			}

			sq, err := SquareFromCoords(rank, file)
			if err != nil {
				return fieldError("placement", placement, ErrInvalidPiecePlacement, err)
			}
			b.SetSquare(piece.Color(), piece.Type(), sq)
			file++
		}

		if file != 8 {
			return fieldError("placement", placement, ErrInvalidPiecePlacement,
				fmt.Errorf("rank %d has %d squares", rank+1, file))
		}
	}

	return nil
}

func parseSideToMove(b *Board, side string) error {
	switch side {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return fieldError("side", side, ErrInvalidSide, nil)
	}
	return nil
}

// parseCastlingRights accepts "-" or any mix of KQkq. Repeated letters are
// harmless.
func parseCastlingRights(b *Board, castling string) error {
	if castling == "-" {
		b.Castling = NoCastling
		return nil
	}
	if castling == "" {
		return fieldError("castling", castling, ErrInvalidCastlingRights, nil)
	}

	rights := NoCastling
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			rights = rights.AddKingside(White)
		case 'Q':
			rights = rights.AddQueenside(White)
		case 'k':
			rights = rights.AddKingside(Black)
		case 'q':
			rights = rights.AddQueenside(Black)
		default:
			return fieldError("castling", castling, ErrInvalidCastlingRights,
				fmt.Errorf("invalid castling character %q", castling[i]))
		}
	}

	b.Castling = rights
	return nil
}

func parseEnPassant(b *Board, ep string) error {
	if ep == "-" {
		b.EnPassant = NoSquare
		return nil
	}

	sq, err := ParseSquare(ep)
	if err != nil {
		return fieldError("en passant", ep, ErrInvalidEnPassant, err)
	}
	b.EnPassant = sq
	return nil
}

// parseMoveClocks parses the half-move clock (one byte) and the full-move
// number (two bytes).
func parseMoveClocks(b *Board, halfmove, fullmove string) error {
	hmc, err := strconv.ParseUint(halfmove, 10, 8)
	if err != nil {
		return fieldError("half-move clock", halfmove, ErrInvalidMoveClock, err)
	}
	fmn, err := strconv.ParseUint(fullmove, 10, 16)
	if err != nil {
		return fieldError("full-move number", fullmove, ErrInvalidMoveClock, err)
	}

	b.HalfMoveClock = uint8(hmc)
	b.FullMoveNumber = uint16(fmn)
	return nil
}
