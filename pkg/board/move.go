package board

import "fmt"

// MoveFlag is a bitmask describing the kind(s) of a move. It is the authoritative discriminator
// for make/unmake dispatch: a move is never represented by a distinct Go type per flag
// combination, so the move list stays a dense, contiguous slice of one record type.
type MoveFlag uint8

const (
	Quiet MoveFlag = 1 << iota
	Capture
	Castle
	EnPassant
	Promotion
	DoublePawnPush
)

func (f MoveFlag) Has(bit MoveFlag) bool {
	return f&bit != 0
}

// Move is a compact, not-necessarily-legal move record.
type Move struct {
	From, To  Square
	Piece     Piece // the moving piece's type
	Capture   Piece // captured piece type, NoPiece if none
	Promotion Piece // promotion piece type, NoPiece if not a promotion
	Flags     MoveFlag
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Flags.Has(Capture)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flags.Has(Promotion)
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags.Has(Castle)
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags.Has(EnPassant)
}

// IsQuiet reports whether the move is neither a capture nor a promotion nor a castle.
func (m Move) IsQuiet() bool {
	return !m.Flags.Has(Capture | Promotion | Castle)
}

// EnPassantCaptureSquare returns the square of the pawn actually captured by an en passant
// move, which differs from To (the destination) by one rank.
func (m Move) EnPassantCaptureSquare() Square {
	if m.To > m.From {
		return m.To - 8
	}
	return m.To + 8
}

// CastlingRookSquares returns the rook's origin and destination squares for a castling move.
func (m Move) CastlingRookSquares() (from, to Square) {
	switch m.To {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		panic(fmt.Sprintf("invalid castling destination: %v", m.To))
	}
}

// Equals compares moves by from/to/promotion, which is sufficient to disambiguate any two
// moves reachable from the same position (the board determines the rest).
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// ParseMove parses a move in long algebraic coordinate notation, such as "e2e4" or "e7e8q".
// The parsed move carries no contextual flags (Castle/EnPassant/DoublePawnPush/Capture); it is
// matched against the pseudo-legal move list to recover full context before being played.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in move %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) String() string {
	if m.Promotion != NoPiece {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// FormatMoves renders a move sequence, space-separated.
func FormatMoves(moves []Move) string {
	var sb []byte
	for i, m := range moves {
		if i > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, []byte(m.String())...)
	}
	return string(sb)
}
