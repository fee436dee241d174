package eval

import "github.com/arjunp/corvid/pkg/board"

// Mobility returns the count of legal moves available to c in pos. The caller applies the
// component weight (0.1) and halves it in the endgame; this just counts moves.
func Mobility(pos *board.Position, c board.Color) int {
	return pos.LegalMoveCount(c)
}
