package eval

import "github.com/arjunp/corvid/pkg/board"

// FindCapture returns the cheapest piece of color by that attacks sq, and whether any such
// piece exists. Quiescence search uses this as a crude static-exchange substitute: a capture
// onto a square defended by a cheaper piece than the capturing piece is probably a loss of
// material and is ordered after captures that aren't.
func FindCapture(pos *board.Position, sq board.Square, by board.Color) (board.Piece, bool) {
	if board.PawnCaptureboard(by.Opponent(), sq)&pos.PieceBitboard(by, board.Pawn) != 0 {
		return board.Pawn, true
	}
	if board.KnightAttackboard(sq)&pos.PieceBitboard(by, board.Knight) != 0 {
		return board.Knight, true
	}
	if pos.BishopAttackboard(sq)&pos.PieceBitboard(by, board.Bishop) != 0 {
		return board.Bishop, true
	}
	if pos.RookAttackboard(sq)&pos.PieceBitboard(by, board.Rook) != 0 {
		return board.Rook, true
	}
	if pos.QueenAttackboard(sq)&pos.PieceBitboard(by, board.Queen) != 0 {
		return board.Queen, true
	}
	if board.KingAttackboard(sq)&pos.PieceBitboard(by, board.King) != 0 {
		return board.King, true
	}
	return board.NoPiece, false
}

// IsLosingCapture reports whether capturing with attacker onto a square holding victim looks
// like a material loss: the destination is defended by the opponent, the defender is cheaper
// than the piece doing the capturing, and the victim is also worth less than the capturing
// piece. This is deliberately crude (it does not resolve
// the full exchange sequence) and is used only to de-prioritize, never to prune, candidate
// captures in quiescence search.
func IsLosingCapture(pos *board.Position, sq board.Square, attacker, victim board.Piece, defender board.Color) bool {
	cheapest, ok := FindCapture(pos, sq, defender)
	if !ok {
		return false
	}
	return cheapest.Value() < attacker.Value() && victim.Value() < attacker.Value()
}
