package search

import (
	"sort"

	"github.com/arjunp/corvid/pkg/board"
)

const (
	scoreTTMove    = 1_000_000
	scoreGoodCapture = 100_000
	scoreKiller    = 90_000
	scoreHistoryMax = 10_000
)

// orderMoves sorts moves in place, best-guess-first: the transposition table's stored move,
// then captures ranked by MVV-LVA (most valuable victim, least valuable attacker), then the two
// killer quiet moves recorded for this ply, then remaining quiet moves by history score.
func (sc *Context) orderMoves(moves []board.Move, turn board.Color, ttMove board.Move, hasTTMove bool, ply int) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = sc.moveScore(m, turn, ttMove, hasTTMove, ply)
	}
	sort.Slice(moves, func(i, j int) bool { return scores[i] > scores[j] })
}

func (sc *Context) moveScore(m board.Move, turn board.Color, ttMove board.Move, hasTTMove bool, ply int) int {
	if hasTTMove && m.Equals(ttMove) {
		return scoreTTMove
	}
	if m.IsCapture() {
		victim := m.Capture
		if m.IsEnPassant() {
			victim = board.Pawn
		}
		score := scoreGoodCapture + victim.Value()*8 - m.Piece.Value()
		if m.IsPromotion() {
			score += m.Promotion.Value() * 8
		}
		return score
	}
	if m.IsPromotion() {
		return scoreGoodCapture + m.Promotion.Value()*8 - m.Piece.Value()
	}
	if ply < maxPly {
		if sc.killers[ply][0].Equals(m) {
			return scoreKiller
		}
		if sc.killers[ply][1].Equals(m) {
			return scoreKiller - 1
		}
	}
	return sc.history[turn][m.From][m.To]
}

// recordKiller remembers m as a killer move at ply: a quiet move that caused a beta cutoff, and
// so is worth trying early in sibling nodes at the same depth even without capturing anything.
func (sc *Context) recordKiller(m board.Move, ply int) {
	if ply >= maxPly || m.IsCapture() {
		return
	}
	if sc.killers[ply][0].Equals(m) {
		return
	}
	sc.killers[ply][1] = sc.killers[ply][0]
	sc.killers[ply][0] = m
}

// recordHistory rewards a quiet move that caused a beta cutoff, scaled by the remaining depth
// so that cutoffs found deep in the tree (more reliable signal) count for more.
func (sc *Context) recordHistory(m board.Move, turn board.Color, depth int) {
	if m.IsCapture() {
		return
	}
	v := &sc.history[turn][m.From][m.To]
	*v += depth * depth
	if *v > scoreHistoryMax {
		*v = scoreHistoryMax
	}
}
