package eval

import "github.com/arjunp/corvid/pkg/board"

const (
	pawnShieldBonus       = 10
	fullyOpenFilePenalty  = 20
	semiOpenFilePenalty   = 10
	pinnedDefenderPenalty = 4
)

// KingSafety returns the color's king safety score. The caller zeroes this component entirely in
// the endgame rather than tapering it: an exposed king stops being a liability once there is
// little material left to attack it with.
func KingSafety(pos *board.Position, c board.Color) int {
	kingSq := pos.King(c)
	score := shieldScore(pos, c, kingSq)
	score -= openFilePenalty(pos, c, kingSq)
	score -= pinnedDefenderPenalty * len(PinnedPieces(pos, c))
	return score
}

// shieldScore rewards friendly pawns on the three files around the king, one or two ranks in
// front of it, which is the classic pawn-shield heuristic. The nearer rank counts double.
func shieldScore(pos *board.Position, c board.Color, kingSq board.Square) int {
	pawns := pos.PieceBitboard(c, board.Pawn)
	kf := int(kingSq.File())

	forward := 1
	if c == board.Black {
		forward = -1
	}
	kr := int(kingSq.Rank())

	score := 0
	for df := -1; df <= 1; df++ {
		f := kf + df
		if f < 0 || f >= int(board.NumFiles) {
			continue
		}
		for _, step := range []int{1, 2} {
			r := kr + forward*step
			if r < 0 || r >= int(board.NumRanks) {
				continue
			}
			if pawns.IsSet(board.NewSquare(board.File(f), board.Rank(r))) {
				if step == 1 {
					score += 2 * pawnShieldBonus
				} else {
					score += pawnShieldBonus
				}
				break
			}
		}
	}
	return score
}

// openFilePenalty penalizes the king for standing on or beside a file with no friendly pawn,
// which is an avenue for enemy rooks and queens to infiltrate: a fully open file (no pawns of
// either color) is worse than a semi-open one (an enemy pawn still blocks a direct rook lift).
func openFilePenalty(pos *board.Position, c board.Color, kingSq board.Square) int {
	ownPawns := pos.PieceBitboard(c, board.Pawn)
	enemyPawns := pos.PieceBitboard(c.Opponent(), board.Pawn)
	kf := int(kingSq.File())

	penalty := 0
	for df := -1; df <= 1; df++ {
		f := kf + df
		if f < 0 || f >= int(board.NumFiles) {
			continue
		}
		file := board.BitFile(board.File(f))
		if ownPawns&file != 0 {
			continue
		}
		if enemyPawns&file == 0 {
			penalty += fullyOpenFilePenalty
		} else {
			penalty += semiOpenFilePenalty
		}
	}
	return penalty
}
