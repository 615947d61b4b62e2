package board

// CastlingRights represents the available castling options as a 4-bit mask.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0

	WhiteCastling    = WhiteKingSideCastle | WhiteQueenSideCastle
	BlackCastling    = BlackKingSideCastle | BlackQueenSideCastle
	KingSideCastles  = WhiteKingSideCastle | BlackKingSideCastle
	QueenSideCastles = WhiteQueenSideCastle | BlackQueenSideCastle
	AllCastling      = WhiteCastling | BlackCastling
)

func kingSideFlag(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle
	}
	return BlackKingSideCastle
}

func queenSideFlag(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSideCastle
	}
	return BlackQueenSideCastle
}

// HasKingside reports whether c may still castle short.
func (cr CastlingRights) HasKingside(c Color) bool {
	return cr&kingSideFlag(c) != 0
}

// HasQueenside reports whether c may still castle long.
func (cr CastlingRights) HasQueenside(c Color) bool {
	return cr&queenSideFlag(c) != 0
}

// AddKingside returns cr with c's kingside right set.
func (cr CastlingRights) AddKingside(c Color) CastlingRights {
	return cr | kingSideFlag(c)
}

// AddQueenside returns cr with c's queenside right set.
func (cr CastlingRights) AddQueenside(c Color) CastlingRights {
	return cr | queenSideFlag(c)
}

// RemoveForSide returns cr with both of c's rights cleared.
func (cr CastlingRights) RemoveForSide(c Color) CastlingRights {
	if c == White {
		return cr &^ WhiteCastling
	}
	return cr &^ BlackCastling
}

// RemoveKingsideBothSides clears the kingside right of both colors.
func (cr CastlingRights) RemoveKingsideBothSides() CastlingRights {
	return cr &^ KingSideCastles
}

// RemoveQueensideBothSides clears the queenside right of both colors.
func (cr CastlingRights) RemoveQueensideBothSides() CastlingRights {
	return cr &^ QueenSideCastles
}

// String returns the rights in KQkq order, or "-" when none remain.
func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}
