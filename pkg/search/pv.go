package search

import "github.com/arjunp/corvid/pkg/board"

// extractPV follows the transposition table's stored best move from pos, playing each one in
// turn, until the table has no entry for the resulting position, a stored move turns out
// illegal (a rare hash collision), or maxLen moves have been collected. The moves it plays are
// unmade again before returning, leaving pos unchanged.
func extractPV(tt TranspositionTable, pos *board.Position, maxLen int) []board.Move {
	var pv []board.Move
	var played int

	for i := 0; i < maxLen; i++ {
		e, ok := tt.Probe(pos.Fingerprint)
		if !ok || e.Move == (board.Move{}) {
			break
		}
		if !isPseudoLegalAndLegal(pos, e.Move) {
			break
		}
		pv = append(pv, e.Move)
		pos.MakeMove(e.Move)
		played++
	}

	for i := 0; i < played; i++ {
		pos.UnmakeMove()
	}
	return pv
}

func isPseudoLegalAndLegal(pos *board.Position, m board.Move) bool {
	for _, legal := range pos.LegalMoves() {
		if legal.Equals(m) && legal.Piece == m.Piece {
			return true
		}
	}
	return false
}
