package board

// promotionPieces lists the pieces a pawn may promote to, in the order candidates are
// generated (queen first, since move ordering elsewhere assumes the strongest promotion
// appears first in a pseudo-legal list).
var promotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates every move for the side to move that obeys piece movement rules,
// without checking whether the mover's own king ends up in check. LegalMoves is almost always
// the right call for search and perft; this is exposed for tests that want to inspect move
// generation independent of the legality filter.
func (pos *Position) PseudoLegalMoves() []Move {
	var moves []Move
	us := pos.Turn

	moves = pos.genPawnMoves(moves, us)
	moves = pos.genKnightMoves(moves, us)
	moves = pos.genSlidingMoves(moves, us, Bishop, bishopDirections)
	moves = pos.genSlidingMoves(moves, us, Rook, rookDirections)
	moves = pos.genSlidingMoves(moves, us, Queen, append(append([]direction{}, rookDirections...), bishopDirections...))
	moves = pos.genKingMoves(moves, us)
	moves = pos.genCastlingMoves(moves, us)
	return moves
}

// LegalMoves generates every pseudo-legal move and filters out those that leave the mover's
// own king in check, by making, probing, and unmaking each candidate in turn. The search never
// retains a copy of the board to do this more cheaply; it relies on make/unmake being fast.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.PseudoLegalMoves()
	us := pos.Turn

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if m.IsCastle() && !pos.castlingSquaresSafe(m, us) {
			continue
		}
		pos.MakeMove(m)
		ok := !pos.IsAttacked(pos.King(us), us.Opponent())
		pos.UnmakeMove()
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoveCount returns the number of legal moves available to c, regardless of whose turn it
// currently is in pos. Evaluation needs both sides' move counts from a single position; callers
// elsewhere should prefer LegalMoves, which is cheaper when c is already pos.Turn. When c is not
// the side to move, the en passant target (usable only by the side to move) is set aside for
// the count and restored afterward.
func (pos *Position) LegalMoveCount(c Color) int {
	if c == pos.Turn {
		return len(pos.LegalMoves())
	}
	saved, savedEP := pos.Turn, pos.HasEnPassant
	pos.Turn = c
	pos.HasEnPassant = false
	n := len(pos.LegalMoves())
	pos.Turn, pos.HasEnPassant = saved, savedEP
	return n
}

// IsLegal reports whether m, assumed pseudo-legal, is legal in the current position.
func (pos *Position) IsLegal(m Move) bool {
	us := pos.Turn
	if m.IsCastle() && !pos.castlingSquaresSafe(m, us) {
		return false
	}
	pos.MakeMove(m)
	ok := !pos.IsAttacked(pos.King(us), us.Opponent())
	pos.UnmakeMove()
	return ok
}

func (pos *Position) genPawnMoves(moves []Move, us Color) []Move {
	them := us.Opponent()
	forward, startRank, lastRank := 8, Rank2, Rank8
	if us == Black {
		forward, startRank, lastRank = -8, Rank7, Rank1
	}

	for _, from := range pos.PieceBitboard(us, Pawn).Squares() {
		one := from + Square(forward)
		if one.IsValid() && !pos.all.IsSet(one) {
			moves = pos.addPawnAdvance(moves, from, one, lastRank)

			if from.Rank() == startRank {
				two := one + Square(forward)
				if !pos.all.IsSet(two) {
					moves = append(moves, Move{From: from, To: two, Piece: Pawn, Flags: DoublePawnPush})
				}
			}
		}

		for _, to := range PawnCaptureboard(us, from).Squares() {
			if cp := pos.PieceAt(to); cp.Piece != NoPiece && cp.Color == them {
				moves = pos.addPawnCapture(moves, from, to, cp.Piece, lastRank)
			} else if pos.HasEnPassant && to == pos.EnPassant {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Capture: Pawn, Flags: Capture | EnPassant})
			}
		}
	}
	return moves
}

func (pos *Position) addPawnAdvance(moves []Move, from, to Square, lastRank Rank) []Move {
	if to.Rank() == lastRank {
		for _, promo := range promotionPieces {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Promotion: promo, Flags: Promotion})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Flags: Quiet})
}

func (pos *Position) addPawnCapture(moves []Move, from, to Square, captured Piece, lastRank Rank) []Move {
	if to.Rank() == lastRank {
		for _, promo := range promotionPieces {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Capture: captured, Promotion: promo, Flags: Capture | Promotion})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Capture: captured, Flags: Capture})
}

func (pos *Position) genKnightMoves(moves []Move, us Color) []Move {
	for _, from := range pos.PieceBitboard(us, Knight).Squares() {
		moves = pos.addJumpMoves(moves, us, Knight, from, KnightAttackboard(from))
	}
	return moves
}

func (pos *Position) genKingMoves(moves []Move, us Color) []Move {
	from := pos.King(us)
	return pos.addJumpMoves(moves, us, King, from, KingAttackboard(from))
}

func (pos *Position) addJumpMoves(moves []Move, us Color, p Piece, from Square, targets Bitboard) []Move {
	for _, to := range targets.Squares() {
		cp := pos.PieceAt(to)
		switch {
		case cp.Piece == NoPiece:
			moves = append(moves, Move{From: from, To: to, Piece: p, Flags: Quiet})
		case cp.Color != us:
			moves = append(moves, Move{From: from, To: to, Piece: p, Capture: cp.Piece, Flags: Capture})
		}
	}
	return moves
}

func (pos *Position) genSlidingMoves(moves []Move, us Color, p Piece, dirs []direction) []Move {
	for _, from := range pos.PieceBitboard(us, p).Squares() {
		f, r := int(from.File()), int(from.Rank())
		for _, d := range dirs {
			nf, nr := f+d.df, r+d.dr
			for inBounds(nf, nr) {
				to := NewSquare(File(nf), Rank(nr))
				cp := pos.PieceAt(to)
				if cp.Piece == NoPiece {
					moves = append(moves, Move{From: from, To: to, Piece: p, Flags: Quiet})
				} else {
					if cp.Color != us {
						moves = append(moves, Move{From: from, To: to, Piece: p, Capture: cp.Piece, Flags: Capture})
					}
					break
				}
				nf += d.df
				nr += d.dr
			}
		}
	}
	return moves
}

func (pos *Position) genCastlingMoves(moves []Move, us Color) []Move {
	if pos.InCheck(us) {
		return moves
	}

	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingFrom := NewSquare(FileE, rank)
	if pos.King(us) != kingFrom {
		return moves
	}

	if pos.Castling.IsAllowed(KingSide(us)) &&
		pos.emptyBetween(NewSquare(FileF, rank), NewSquare(FileG, rank)) {
		moves = append(moves, Move{From: kingFrom, To: NewSquare(FileG, rank), Piece: King, Flags: Castle})
	}
	if pos.Castling.IsAllowed(QueenSide(us)) &&
		pos.emptyBetween(NewSquare(FileB, rank), NewSquare(FileD, rank)) {
		moves = append(moves, Move{From: kingFrom, To: NewSquare(FileC, rank), Piece: King, Flags: Castle})
	}
	return moves
}

func (pos *Position) emptyBetween(from, to Square) bool {
	for sq := from; sq <= to; sq++ {
		if pos.all.IsSet(sq) {
			return false
		}
	}
	return true
}

// castlingSquaresSafe reports that none of the king's origin, transit, or destination squares
// are attacked, which make/probe-check/unmake alone cannot verify since it only checks the
// final king square.
func (pos *Position) castlingSquaresSafe(m Move, us Color) bool {
	them := us.Opponent()
	step := Square(1)
	if m.To < m.From {
		step = -1
	}
	for sq := m.From; ; sq += step {
		if pos.IsAttacked(sq, them) {
			return false
		}
		if sq == m.To {
			break
		}
	}
	return true
}
