// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arjunp/corvid/pkg/board"
)

// Initial is the FEN of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position bound to the given Zobrist table.
func Decode(fen string, zt *board.ZobristTable) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", fen)
	}

	pos := board.NewPosition(zt)

	// (1) Piece placement, rank 8 down to rank 1, file a through h within each rank.
	rank, file := board.Rank8, board.ZeroFile
	for _, r := range parts[0] {
		switch {
		case r == '/':
			if file != board.NumFiles {
				return nil, fmt.Errorf("incomplete rank in FEN: %q", fen)
			}
			rank--
			file = board.ZeroFile

		case unicode.IsDigit(r):
			file += board.File(r - '0')

		case unicode.IsLetter(r):
			p, ok := board.ParsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, fen)
			}
			color := board.Black
			if unicode.IsUpper(r) {
				color = board.White
			}
			if file >= board.NumFiles {
				return nil, fmt.Errorf("rank overflow in FEN: %q", fen)
			}
			pos.Place(color, p, board.NewSquare(file, rank))
			file++

		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", r, fen)
		}
	}
	if rank != board.ZeroRank || file != board.NumFiles {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", fen)
	}

	// (2) Active color.
	switch parts[1] {
	case "w":
		pos.Turn = board.White
	case "b":
		pos.Turn = board.Black
	default:
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	// (3) Castling availability.
	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling field in FEN: %q", fen)
	}
	pos.Castling = castling

	// (4) En passant target square.
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant field in FEN: %q", fen)
		}
		pos.EnPassant = sq
		pos.HasEnPassant = true
	}

	// (5) Halfmove clock.
	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}
	pos.HalfmoveClock = hm

	// (6) Fullmove number.
	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}
	pos.FullmoveNum = fm

	pos.RecomputeFingerprint()
	return pos, nil
}

// Encode renders pos as a FEN record.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; r >= board.ZeroRank; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			cp := pos.PieceAt(board.NewSquare(f, r))
			if cp.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(cp.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > board.ZeroRank {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if pos.HasEnPassant {
		ep = pos.EnPassant.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.Turn, printCastling(pos.Castling),
		ep, pos.HalfmoveClock, pos.FullmoveNum)
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastlingRights, true
	}
	var ret board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}
