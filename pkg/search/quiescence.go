package search

import (
	"context"
	"sort"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
)

// quiescence extends the search past the horizon along capture/promotion lines only, so that
// the static evaluation at a cutoff point is never taken in the middle of an unresolved
// exchange (the "horizon effect"). It returns as soon as a stand-pat or searched line reaches
// or exceeds beta.
func (sc *Context) quiescence(ctx context.Context, pos *board.Position, ply int, alpha, beta eval.Score) (eval.Score, error) {
	if checkHalted(ctx) {
		return 0, ErrHalted
	}
	sc.QNodes++

	legal := pos.LegalMoves()
	if outcome, terminal := terminalOutcome(pos, legal, ply); terminal {
		return outcome, nil
	}

	standPat := sc.Eval.RelativeEvaluate(pos, pos.Turn)
	if standPat >= beta {
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	tactical := tacticalMoves(legal)
	sc.orderTactical(pos, tactical)

	for _, m := range tactical {
		pos.MakeMove(m)
		score, err := sc.quiescence(ctx, pos, ply+1, -beta, -alpha)
		pos.UnmakeMove()
		if err != nil {
			return 0, err
		}
		score = -score

		if score >= beta {
			return beta, nil
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, nil
}

func tacticalMoves(legal []board.Move) []board.Move {
	var ret []board.Move
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			ret = append(ret, m)
		}
	}
	return ret
}

// orderTactical ranks captures by MVV-LVA and pushes crudely-losing captures to the back,
// using eval.IsLosingCapture/FindCapture as the defended/undefended signal described in
// SPEC_FULL's quiescence ordering refinement.
func (sc *Context) orderTactical(pos *board.Position, moves []board.Move) {
	score := func(m board.Move) int {
		victim := m.Capture
		if m.IsEnPassant() {
			victim = board.Pawn
		}
		s := victim.Value()*8 - m.Piece.Value()
		if m.IsCapture() && eval.IsLosingCapture(pos, m.To, m.Piece, victim, pos.Turn.Opponent()) {
			s -= 10000
		}
		return s
	}
	sort.Slice(moves, func(i, j int) bool { return score(moves[i]) > score(moves[j]) })
}
