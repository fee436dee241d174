package board

import "fmt"

// Position is the mutable, 64-slot chess position. The search never copies a Position; it
// mutates one in place via MakeMove and restores it via UnmakeMove, using the history stack
// for the state that a single Move cannot reconstruct on its own (castling rights, en passant
// target, halfmove clock, captured piece).
type Position struct {
	squares [NumSquares]ColoredPiece

	// pieces[c][p] is the bitboard of color c's pieces of type p. occupied[c] is their union;
	// all is occupied[White]|occupied[Black]. Maintained incrementally by place/remove/move so
	// that attack detection and mobility counts never need to rescan the mailbox.
	pieces   [NumColors][NumPieces]Bitboard
	occupied [NumColors]Bitboard
	all      Bitboard

	king [NumColors]Square

	Turn          Color
	Castling      Castling
	EnPassant     Square
	HasEnPassant  bool
	HalfmoveClock int
	FullmoveNum   int

	Fingerprint Fingerprint

	zobrist *ZobristTable
	history []UndoRecord
}

// UndoRecord holds everything MakeMove cannot recompute from the Move alone, so that
// UnmakeMove can restore the position bit-for-bit.
type UndoRecord struct {
	Move            Move
	PrevCastling    Castling
	PrevEnPassant   Square
	PrevHasEP       bool
	PrevHalfmove    int
	PrevFingerprint Fingerprint
}

// NewPosition returns an empty position bound to the given Zobrist table. Callers typically
// populate it via fen.Decode rather than placing pieces by hand.
func NewPosition(zt *ZobristTable) *Position {
	return &Position{
		Turn:        White,
		Castling:    NoCastlingRights,
		FullmoveNum: 1,
		zobrist:     zt,
	}
}

// NewStartingPosition returns the standard chess starting position.
func NewStartingPosition(zt *ZobristTable) *Position {
	pos := NewPosition(zt)

	back := [NumFiles]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := ZeroFile; f < NumFiles; f++ {
		pos.rawPlace(White, back[f], NewSquare(f, Rank1))
		pos.rawPlace(White, Pawn, NewSquare(f, Rank2))
		pos.rawPlace(Black, Pawn, NewSquare(f, Rank7))
		pos.rawPlace(Black, back[f], NewSquare(f, Rank8))
	}
	pos.Castling = FullCastlingRights
	pos.Fingerprint = pos.zobrist.Hash(pos, pos.Turn, pos.Castling, 0, false)
	return pos
}

// PieceAt returns the piece occupying sq, or the zero ColoredPiece if empty.
func (pos *Position) PieceAt(sq Square) ColoredPiece {
	return pos.squares[sq]
}

// King returns the color's king square.
func (pos *Position) King(c Color) Square {
	return pos.king[c]
}

// Occupied returns the union of both colors' occupied squares.
func (pos *Position) Occupied() Bitboard {
	return pos.all
}

// OccupiedBy returns the color's occupied squares.
func (pos *Position) OccupiedBy(c Color) Bitboard {
	return pos.occupied[c]
}

// PieceBitboard returns the bitboard of color c's pieces of type p.
func (pos *Position) PieceBitboard(c Color, p Piece) Bitboard {
	return pos.pieces[c][p]
}

// Place sets a piece on an empty square, without touching move counters or the side to move.
// It is meant for position construction (FEN decoding, test fixtures), not for play; the
// fingerprint is left stale until RecomputeFingerprint is called.
func (pos *Position) Place(c Color, p Piece, sq Square) {
	pos.rawPlace(c, p, sq)
}

// RecomputeFingerprint recomputes the fingerprint from scratch from the current board state.
// Construction code (FEN decoding) calls this once after placing every piece and setting
// Turn/Castling/EnPassant, rather than paying the incremental XOR cost per placement.
func (pos *Position) RecomputeFingerprint() {
	pos.Fingerprint = pos.zobrist.Hash(pos, pos.Turn, pos.Castling, pos.EnPassant, pos.HasEnPassant)
}

// rawPlace places a piece without touching the fingerprint; used only during construction,
// where the fingerprint is computed once from scratch afterward.
func (pos *Position) rawPlace(c Color, p Piece, sq Square) {
	pos.squares[sq] = ColoredPiece{Piece: p, Color: c}
	pos.pieces[c][p] = pos.pieces[c][p].Set(sq)
	pos.occupied[c] = pos.occupied[c].Set(sq)
	pos.all = pos.all.Set(sq)
	if p == King {
		pos.king[c] = sq
	}
}

func (pos *Position) place(c Color, p Piece, sq Square) {
	pos.rawPlace(c, p, sq)
	pos.Fingerprint ^= pos.zobrist.Piece(c, p, sq)
}

func (pos *Position) remove(c Color, p Piece, sq Square) {
	pos.squares[sq] = ColoredPiece{}
	pos.pieces[c][p] = pos.pieces[c][p].Clear(sq)
	pos.occupied[c] = pos.occupied[c].Clear(sq)
	pos.all = pos.all.Clear(sq)
	pos.Fingerprint ^= pos.zobrist.Piece(c, p, sq)
}

func (pos *Position) move(c Color, p Piece, from, to Square) {
	pos.remove(c, p, from)
	pos.place(c, p, to)
	if p == King {
		pos.king[c] = to
	}
}

// MakeMove applies m, which must be a pseudo-legal move generated from the current position.
// It pushes an UndoRecord so that a later UnmakeMove call restores the position exactly.
func (pos *Position) MakeMove(m Move) {
	rec := UndoRecord{
		Move:            m,
		PrevCastling:    pos.Castling,
		PrevEnPassant:   pos.EnPassant,
		PrevHasEP:       pos.HasEnPassant,
		PrevHalfmove:    pos.HalfmoveClock,
		PrevFingerprint: pos.Fingerprint,
	}
	pos.history = append(pos.history, rec)

	us, them := pos.Turn, pos.Turn.Opponent()

	if pos.HasEnPassant {
		pos.Fingerprint ^= pos.zobrist.EnPassant(pos.EnPassant.File())
	}
	pos.Fingerprint ^= pos.zobrist.Castling(pos.Castling)

	switch {
	case m.IsEnPassant():
		capSq := m.EnPassantCaptureSquare()
		pos.remove(them, Pawn, capSq)
		pos.move(us, Pawn, m.From, m.To)
	case m.IsCastle():
		pos.move(us, King, m.From, m.To)
		rFrom, rTo := m.CastlingRookSquares()
		pos.move(us, Rook, rFrom, rTo)
	default:
		if m.IsCapture() {
			pos.remove(them, m.Capture, m.To)
		}
		if m.IsPromotion() {
			pos.remove(us, Pawn, m.From)
			pos.place(us, m.Promotion, m.To)
		} else {
			pos.move(us, m.Piece, m.From, m.To)
		}
	}

	pos.Castling = pos.Castling.Clear(castlingLost(m, us))
	pos.Fingerprint ^= pos.zobrist.Castling(pos.Castling)

	pos.HasEnPassant = false
	if m.Flags.Has(DoublePawnPush) {
		epSq := m.From + Square(m.To-m.From)/2
		pos.EnPassant = epSq
		pos.HasEnPassant = true
		pos.Fingerprint ^= pos.zobrist.EnPassant(epSq.File())
	}

	if m.Piece == Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if us == Black {
		pos.FullmoveNum++
	}

	pos.Turn = them
	pos.Fingerprint ^= pos.zobrist.Turn()
}

// UnmakeMove reverses the most recent MakeMove call.
func (pos *Position) UnmakeMove() {
	n := len(pos.history)
	rec := pos.history[n-1]
	pos.history = pos.history[:n-1]
	m := rec.Move

	them := pos.Turn
	us := them.Opponent()

	switch {
	case m.IsEnPassant():
		pos.move(us, Pawn, m.To, m.From)
		pos.rawPlace(them, Pawn, m.EnPassantCaptureSquare())
	case m.IsCastle():
		pos.move(us, King, m.To, m.From)
		rFrom, rTo := m.CastlingRookSquares()
		pos.move(us, Rook, rTo, rFrom)
	default:
		if m.IsPromotion() {
			pos.rawRemove(us, m.Promotion, m.To)
			pos.rawPlace(us, Pawn, m.From)
		} else {
			pos.rawMove(us, m.Piece, m.To, m.From)
		}
		if m.IsCapture() {
			pos.rawPlace(them, m.Capture, m.To)
		}
	}

	if us == Black {
		pos.FullmoveNum--
	}

	pos.Turn = us
	pos.Castling = rec.PrevCastling
	pos.EnPassant = rec.PrevEnPassant
	pos.HasEnPassant = rec.PrevHasEP
	pos.HalfmoveClock = rec.PrevHalfmove
	pos.Fingerprint = rec.PrevFingerprint
}

// rawRemove/rawPlace/rawMove mirror remove/place/move without touching the fingerprint,
// since UnmakeMove restores the fingerprint directly from the UndoRecord rather than
// re-deriving it move by move.
func (pos *Position) rawRemove(c Color, p Piece, sq Square) {
	pos.squares[sq] = ColoredPiece{}
	pos.pieces[c][p] = pos.pieces[c][p].Clear(sq)
	pos.occupied[c] = pos.occupied[c].Clear(sq)
	pos.all = pos.all.Clear(sq)
}

func (pos *Position) rawMove(c Color, p Piece, from, to Square) {
	pos.rawRemove(c, p, from)
	pos.rawPlace(c, p, to)
}

// castlingLost returns the castling rights a move permanently revokes: a king move revokes
// both of its side's rights, a rook move or capture revokes the right tied to that corner.
func castlingLost(m Move, us Color) Castling {
	var lost Castling
	lost |= castlingForCorner(m.From)
	lost |= castlingForCorner(m.To)
	if m.Piece == King {
		lost |= KingSide(us) | QueenSide(us)
	}
	return lost
}

func castlingForCorner(sq Square) Castling {
	switch sq {
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return NoCastlingRights
	}
}

func (pos *Position) String() string {
	var out string
	for r := NumRanks - 1; r >= 0; r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			out += pos.PieceAt(NewSquare(f, r)).String()
		}
		out += "\n"
	}
	return out
}

// Clone deep-copies the position, including its history. Used only by callers outside the
// search hot path (e.g. the engine facade taking a snapshot for a concurrent UCI query);
// search itself always mutates in place.
func (pos *Position) Clone() *Position {
	cp := *pos
	cp.history = append([]UndoRecord(nil), pos.history...)
	return &cp
}

func init() {
	// Guard against accidental renumbering of the castling corner constants, which
	// castlingForCorner relies on implicitly.
	if A1 != 0 || H1 != 7 || A8 != 56 || H8 != 63 {
		panic(fmt.Sprintf("unexpected corner squares: a1=%d h1=%d a8=%d h8=%d", A1, H1, A8, H8))
	}
}
