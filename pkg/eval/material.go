package eval

import "github.com/arjunp/corvid/pkg/board"

// phaseWeight is the tapered-eval contribution of a single piece of that type, following the
// common 24-point scale (4 queens-worth of weight would saturate it, but only one queen per
// side is normal so the scale tops out around 24 in the opening and drains to 0 by the
// endgame).
var phaseWeight = [board.NumPieces]int{
	board.Knight: 1,
	board.Bishop: 1,
	board.Rook:   2,
	board.Queen:  4,
}

const maxPhase = 24

// Material returns the color's total material value in centipawns, kings excluded.
func Material(pos *board.Position, c board.Color) int {
	total := 0
	for p := board.Pawn; p < board.King; p++ {
		total += pos.PieceBitboard(c, p).PopCount() * p.Value()
	}
	return total
}

// Phase returns a tapering factor in [0, 256]: 256 in the full opening material set, trending
// toward 0 as major and minor pieces come off the board. Used to blend middlegame and endgame
// piece-square tables.
func Phase(pos *board.Position) int {
	phase := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for p, w := range phaseWeight {
			if w == 0 {
				continue
			}
			phase += pos.PieceBitboard(c, board.Piece(p)).PopCount() * w
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return (phase*256 + maxPhase/2) / maxPhase
}

// Endgame-predicate piece values, independent of the centipawn values Piece.Value reports.
const (
	endgameMinorValue        = 320
	endgameRookValue         = 500
	endgameQueenValue        = 900
	endgameMaterialThreshold = 1300
)

// IsEndgame reports the binary endgame predicate: true iff there are no queens on the board, or
// the combined (both colors, side-independent) minor and major material totals below 1300. This
// is computed once per Evaluate call and used as-is by every component that needs a yes/no
// answer (king safety, mobility weighting) rather than Phase's continuous taper.
func IsEndgame(pos *board.Position) bool {
	queens := pos.PieceBitboard(board.White, board.Queen).PopCount() + pos.PieceBitboard(board.Black, board.Queen).PopCount()
	if queens == 0 {
		return true
	}

	total := 0
	for _, c := range []board.Color{board.White, board.Black} {
		total += pos.PieceBitboard(c, board.Knight).PopCount() * endgameMinorValue
		total += pos.PieceBitboard(c, board.Bishop).PopCount() * endgameMinorValue
		total += pos.PieceBitboard(c, board.Rook).PopCount() * endgameRookValue
		total += pos.PieceBitboard(c, board.Queen).PopCount() * endgameQueenValue
	}
	return total < endgameMaterialThreshold
}
