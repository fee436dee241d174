package board

import "strings"

// Piece represents a chess piece type, color-agnostic. 3 bits.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ZeroPiece Piece = Pawn
	NumPieces Piece = King + 1
)

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "-"
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Value returns the piece's standard material value in centipawns. King is given 0: it is
// never traded and never enters material counting, only presence/absence checks.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// ColoredPiece names a piece together with its owner. A zero value (NoPiece, White) denotes
// an empty square.
type ColoredPiece struct {
	Piece Piece
	Color Color
}

// IsEmpty reports whether the square this value describes is empty.
func (cp ColoredPiece) IsEmpty() bool {
	return cp.Piece == NoPiece
}

func (cp ColoredPiece) String() string {
	if cp.IsEmpty() {
		return "."
	}
	s := cp.Piece.String()
	if cp.Color == White {
		return strings.ToUpper(s)
	}
	return s
}
