package eval

import "github.com/arjunp/corvid/pkg/board"

// Piece-square tables reward placing pieces on squares that tend to be good for them,
// separately for the middlegame and endgame, tapered together via Phase. Rather than
// transcribe a literal 64-entry table per piece by hand (easy to get subtly wrong and
// impossible for a reader to sanity-check), each table is generated once at init time from a
// small per-piece formula expressing the same heuristics those published tables encode:
// centralization for knights/bishops/queens, advancement for pawns, king safety in the
// middlegame versus king centralization in the endgame, and rooks on the central files and the
// seventh rank. No term anywhere scores rooks on open or semi-open files.
var psqtMiddlegame, psqtEndgame [board.NumPieces][board.NumSquares]int

func init() {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		center := centerDistance(f, r)

		psqtMiddlegame[board.Pawn][sq] = pawnAdvancement(f, r, false)
		psqtEndgame[board.Pawn][sq] = pawnAdvancement(f, r, true)

		psqtMiddlegame[board.Knight][sq] = 20 - 4*center
		psqtEndgame[board.Knight][sq] = 15 - 4*center

		psqtMiddlegame[board.Bishop][sq] = 10 - 2*center
		psqtEndgame[board.Bishop][sq] = 10 - 2*center

		psqtMiddlegame[board.Rook][sq] = rookBonus(f, r, false)
		psqtEndgame[board.Rook][sq] = rookBonus(f, r, true)

		psqtMiddlegame[board.Queen][sq] = 5 - center
		psqtEndgame[board.Queen][sq] = 5 - center

		psqtMiddlegame[board.King][sq] = kingSafetyBonus(f, r)
		psqtEndgame[board.King][sq] = 20 - 6*center
	}
}

// centerDistance is a piece's Chebyshev-ish distance from the board's center, used as a
// centralization penalty (0 at the four center squares, rising toward the edge).
func centerDistance(f, r int) int {
	df := f - 3
	if f >= 4 {
		df = f - 4
	}
	dr := r - 3
	if r >= 4 {
		dr = r - 4
	}
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}

// pawnAdvancement rewards a white pawn for moving up the board; more steeply so in the
// endgame, where a passed or advanced pawn's race to promotion matters far more.
func pawnAdvancement(f, r int, endgame bool) int {
	_ = f
	step := 5
	if endgame {
		step = 10
	}
	return r * step
}

// rookBonus gives rooks a small bump for standing on the central files, where open lines are
// more likely, and for reaching the seventh rank (the classic "rook on the seventh").
func rookBonus(f, r int, endgame bool) int {
	bonus := 0
	if f == 3 || f == 4 {
		bonus += 5
	}
	if r == 6 {
		bonus += 10
	}
	if endgame {
		bonus += 5
	}
	return bonus
}

// kingSafetyBonus rewards the middlegame king for staying on its back rank behind its own
// pawn shield rather than wandering to the center, where it is most exposed.
func kingSafetyBonus(f, r int) int {
	bonus := 0
	if r == 0 {
		bonus += 15
	}
	if f <= 1 || f >= 6 {
		bonus += 10
	}
	return bonus
}

// psqtValue returns the piece-square value for a piece of color c on sq, tapered between the
// middlegame and endgame tables by phase (256 = opening, 0 = endgame).
func psqtValue(c board.Color, p board.Piece, sq board.Square, phase int) int {
	relSq := sq
	if c == board.Black {
		relSq = board.NewSquare(sq.File(), board.Rank(7-int(sq.Rank())))
	}
	mg := psqtMiddlegame[p][relSq]
	eg := psqtEndgame[p][relSq]
	return (mg*phase + eg*(256-phase)) / 256
}
