package board

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the decoder and the coordinate helpers.
// Use errors.Is to test for them; the decoder wraps the low-level ones
// inside the field error that owns them.
var (
	// ErrInvalidLength indicates a FEN string without exactly six fields.
	ErrInvalidLength = errors.New("invalid FEN length")

	ErrInvalidPiecePlacement = errors.New("invalid piece placement")
	ErrInvalidSide           = errors.New("invalid side to move")
	ErrInvalidCastlingRights = errors.New("invalid castling rights")
	ErrInvalidEnPassant      = errors.New("invalid en passant square")
	ErrInvalidMoveClock      = errors.New("invalid move clock")

	// ErrInvalidRankOrFile indicates a rank or file outside 0..7.
	ErrInvalidRankOrFile = errors.New("invalid rank or file")

	// ErrInvalidSquare indicates text that is not a two-character square.
	ErrInvalidSquare = errors.New("invalid square")
)

// FieldError reports which FEN field could not be decoded.
type FieldError struct {
	Field string // Field name, e.g. "castling"
	Value string // Raw field text
	Kind  error  // One of the field sentinels
	Err   error  // Underlying cause, may be nil
}

// maxErrorValue caps how much of the raw field text Error quotes.
const maxErrorValue = 32

// Error returns the field name, the offending text (truncated) and the cause.
func (e *FieldError) Error() string {
	value := e.Value
	if len(value) > maxErrorValue {
		value = value[:maxErrorValue] + "..."
	}
	msg := fmt.Sprintf("%s field %q: %v", e.Field, value, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the field sentinel and the underlying cause.
func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fieldError(field, value string, kind, cause error) error {
	return &FieldError{Field: field, Value: value, Kind: kind, Err: cause}
}
