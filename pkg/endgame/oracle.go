// Package endgame implements a trivial tablebase substitute: a handful of material patterns
// simple enough to classify outright, without search. It is consulted by the evaluator as a
// cheap shortcut, never as a replacement for the legality and mate-detection logic in
// pkg/board.
package endgame

import "github.com/arjunp/corvid/pkg/board"

// WinScore is the centipawn value assigned to a position this package classifies as a forced
// win for the side holding it. It is above ordinary evaluations but below eval.MateBound, so
// search ranks it under any found mate and never reports it as a mate score.
const WinScore = 10000

// Verdict is the oracle's classification of a position.
type Verdict struct {
	// Decided reports whether the oracle recognizes the material balance at all. If false,
	// Score is meaningless and the caller must fall back to full evaluation/search.
	Decided bool

	// Score is White-relative, in centipawns, with WinScore/-WinScore standing in for a
	// confidently winning/losing position the oracle does not bother to mate-distance-rank.
	Score int
}

// Probe classifies pos if its material falls into one of a small set of recognized patterns:
// king versus king, king versus king with a lone minor, king and a major piece (queen or rook)
// versus a lone king, and king and pawn versus king. Anything else returns a zero Verdict.
func Probe(pos *board.Position) Verdict {
	counts := countMaterial(pos)

	if counts.isBareKings() {
		return Verdict{Decided: true, Score: 0}
	}
	if v, ok := probeLoneMinor(counts); ok {
		return v
	}
	if v, ok := probeLoneMajor(pos, counts); ok {
		return v
	}
	if v, ok := probeKingPawnVsKing(pos, counts); ok {
		return v
	}
	return Verdict{}
}

type materialCount struct {
	pieces [board.NumColors][board.NumPieces]int
}

func countMaterial(pos *board.Position) materialCount {
	var mc materialCount
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.Pawn; p < board.NumPieces; p++ {
			mc.pieces[c][p] = pos.PieceBitboard(c, p).PopCount()
		}
	}
	return mc
}

func (mc materialCount) nonKingCount(c board.Color) int {
	n := 0
	for p := board.Pawn; p < board.King; p++ {
		n += mc.pieces[c][p]
	}
	return n
}

func (mc materialCount) isBareKings() bool {
	return mc.nonKingCount(board.White) == 0 && mc.nonKingCount(board.Black) == 0
}

// probeLoneMinor recognizes K+minor v K: a draw regardless of side to move or square, since a
// single knight or bishop cannot force mate against a lone king.
func probeLoneMinor(mc materialCount) (Verdict, bool) {
	isLoneMinor := func(c board.Color) bool {
		n := mc.pieces[c][board.Knight] + mc.pieces[c][board.Bishop]
		return n == 1 && mc.nonKingCount(c) == 1
	}
	switch {
	case isLoneMinor(board.White) && mc.nonKingCount(board.Black) == 0:
		return Verdict{Decided: true, Score: 0}, true
	case isLoneMinor(board.Black) && mc.nonKingCount(board.White) == 0:
		return Verdict{Decided: true, Score: 0}, true
	}
	return Verdict{}, false
}

// probeLoneMajor recognizes K+Q v K and K+R v K: a forced win for the side with the major
// piece, given standard king-driving technique. The bare-king side is never credited with
// drawing chances here; stalemate traps are the search's job to avoid via real legal-move
// evaluation, not this oracle's.
func probeLoneMajor(pos *board.Position, mc materialCount) (Verdict, bool) {
	isLoneMajor := func(c board.Color) bool {
		n := mc.pieces[c][board.Queen] + mc.pieces[c][board.Rook]
		return n == 1 && mc.nonKingCount(c) == 1
	}
	switch {
	case isLoneMajor(board.White) && mc.nonKingCount(board.Black) == 0:
		return Verdict{Decided: true, Score: WinScore - kingDistanceToEdge(pos.King(board.Black))}, true
	case isLoneMajor(board.Black) && mc.nonKingCount(board.White) == 0:
		return Verdict{Decided: true, Score: -(WinScore - kingDistanceToEdge(pos.King(board.White)))}, true
	}
	return Verdict{}, false
}

// kingDistanceToEdge scores how close a cornered king already is to being mated, so iterative
// deepening prefers lines that keep driving it toward the edge even once the oracle has fired.
func kingDistanceToEdge(sq board.Square) int {
	f, r := int(sq.File()), int(sq.Rank())
	df := min(f, 7-f)
	dr := min(r, 7-r)
	return min(df, dr)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// probeKingPawnVsKing recognizes K+P v K. This deliberately does not consult king position: the
// heuristic is rank-based only — the pawn wins iff it has advanced at least to its own fourth
// rank, else it is scored a draw. This is a known-crude approximation (it misclassifies some
// positions a real king-distance rule or a bitbase would get right), kept intentionally rather
// than "fixed" with a king-consulting rule of the square, since the heuristic's own boundary is
// part of what the oracle's behavior is pinned to.
func probeKingPawnVsKing(pos *board.Position, mc materialCount) (Verdict, bool) {
	isLonePawn := func(c board.Color) bool {
		return mc.pieces[c][board.Pawn] == 1 && mc.nonKingCount(c) == 1
	}

	var pawnColor board.Color
	switch {
	case isLonePawn(board.White) && mc.nonKingCount(board.Black) == 0:
		pawnColor = board.White
	case isLonePawn(board.Black) && mc.nonKingCount(board.White) == 0:
		pawnColor = board.Black
	default:
		return Verdict{}, false
	}

	pawnSq := pos.PieceBitboard(pawnColor, board.Pawn).FirstSquare()
	if !hasReachedOwnFourthRank(pawnSq, pawnColor) {
		return Verdict{Decided: true, Score: 0}, true
	}
	if pawnColor == board.White {
		return Verdict{Decided: true, Score: WinScore}, true
	}
	return Verdict{Decided: true, Score: -WinScore}, true
}

// hasReachedOwnFourthRank reports whether the pawn has advanced at least to its own fourth rank:
// Rank4 for White, Rank5 for Black.
func hasReachedOwnFourthRank(pawn board.Square, pawnColor board.Color) bool {
	if pawnColor == board.White {
		return pawn.Rank() >= board.Rank4
	}
	return pawn.Rank() <= board.Rank5
}
