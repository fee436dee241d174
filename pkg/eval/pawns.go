package eval

import "github.com/arjunp/corvid/pkg/board"

const (
	doubledPawnPenalty  = 10
	isolatedPawnPenalty = 15
	backwardPawnPenalty = 8
)

// passedPawnBonus is indexed by rank-from-own-back (0 = own first rank, 7 = own eighth rank).
var passedPawnBonus = [8]int{0, 10, 20, 35, 60, 100, 150, 0}

// PawnStructure returns the color's pawn-structure score: doubled, isolated, and backward
// pawns are penalized; passed pawns are rewarded in proportion to how far advanced they are.
func PawnStructure(pos *board.Position, c board.Color) int {
	own := pos.PieceBitboard(c, board.Pawn)
	enemy := pos.PieceBitboard(c.Opponent(), board.Pawn)

	var fileCounts [board.NumFiles]int
	for _, sq := range own.Squares() {
		fileCounts[sq.File()]++
	}

	score := 0
	for _, sq := range own.Squares() {
		f := sq.File()

		if fileCounts[f] > 1 {
			score -= doubledPawnPenalty
		}
		if !hasNeighborFilePawn(fileCounts, f) {
			score -= isolatedPawnPenalty
		} else if isBackward(own, sq, c) {
			score -= backwardPawnPenalty
		}
		if isPassed(sq, enemy, c) {
			score += passedPawnScore(sq, c)
		}
	}
	return score
}

func hasNeighborFilePawn(fileCounts [board.NumFiles]int, f board.File) bool {
	if f > board.FileA && fileCounts[f-1] > 0 {
		return true
	}
	if f < board.FileH && fileCounts[f+1] > 0 {
		return true
	}
	return false
}

// isBackward reports whether sq's pawn has no friendly pawn on an adjacent file that is level
// with or behind it, and so cannot be defended by a pawn advance.
func isBackward(own board.Bitboard, sq board.Square, c board.Color) bool {
	f, r := sq.File(), int(sq.Rank())
	for _, nf := range []int{int(f) - 1, int(f) + 1} {
		if nf < 0 || nf >= int(board.NumFiles) {
			continue
		}
		for _, other := range own.Squares() {
			if int(other.File()) != nf {
				continue
			}
			otherRank := int(other.Rank())
			if c == board.White && otherRank <= r {
				return false
			}
			if c == board.Black && otherRank >= r {
				return false
			}
		}
	}
	return true
}

// isPassed reports whether no enemy pawn occupies sq's file or an adjacent file on a rank ahead
// of sq's, meaning no enemy pawn can ever block or capture it on its way to promotion.
func isPassed(sq board.Square, enemy board.Bitboard, c board.Color) bool {
	f, r := int(sq.File()), int(sq.Rank())
	for _, other := range enemy.Squares() {
		of := int(other.File())
		if of < f-1 || of > f+1 {
			continue
		}
		or := int(other.Rank())
		if c == board.White && or > r {
			return false
		}
		if c == board.Black && or < r {
			return false
		}
	}
	return true
}

func passedPawnScore(sq board.Square, c board.Color) int {
	return passedPawnBonus[sq.RelativeRank(c)]
}
