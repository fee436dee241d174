package search

import (
	"context"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
)

// AlphaBeta is a negamax alpha-beta Search with transposition-table-backed cutoffs, MVV-LVA/
// killer/history move ordering, and a quiescence search at the search horizon.
type AlphaBeta struct{}

// Search runs a full-width negamax search to depth plies and returns the principal variation by
// following the transposition table's stored best move from the root.
func (AlphaBeta) Search(ctx context.Context, sc *Context, pos *board.Position, depth int) (int64, eval.Score, []board.Move, error) {
	score, _, err := sc.negamax(ctx, pos, depth, 0, sc.Alpha, sc.Beta)
	if err != nil {
		return sc.Nodes, 0, nil, err
	}
	return sc.Nodes, score, extractPV(sc.TT, pos, depth), nil
}

// negamax is the recursive alpha-beta workhorse. ply counts plies from the search root (used
// for mate-distance bookkeeping and killer-move slotting); depth counts plies remaining.
func (sc *Context) negamax(ctx context.Context, pos *board.Position, depth, ply int, alpha, beta eval.Score) (eval.Score, board.Move, error) {
	if checkHalted(ctx) {
		return 0, board.Move{}, ErrHalted
	}
	sc.Nodes++

	alphaOrig := alpha

	ttMove, hasTTMove := board.Move{}, false
	if e, ok := sc.TT.Probe(pos.Fingerprint); ok {
		ttMove, hasTTMove = e.Move, true
		if e.Depth >= depth {
			adjusted := fromTT(e.Score, ply)
			switch e.Bound {
			case Exact:
				return adjusted, e.Move, nil
			case LowerBound:
				if adjusted > alpha {
					alpha = adjusted
				}
			case UpperBound:
				if adjusted < beta {
					beta = adjusted
				}
			}
			if alpha >= beta {
				return adjusted, e.Move, nil
			}
		}
	}

	legal := pos.LegalMoves()
	if outcome, terminal := terminalOutcome(pos, legal, ply); terminal {
		return outcome, board.Move{}, nil
	}

	if depth <= 0 {
		s, err := sc.quiescence(ctx, pos, ply, alpha, beta)
		return s, board.Move{}, err
	}

	sc.orderMoves(legal, pos.Turn, ttMove, hasTTMove, ply)

	best := legal[0]
	bestScore := -eval.Infinity
	for _, m := range legal {
		pos.MakeMove(m)
		child, _, err := sc.negamax(ctx, pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove()
		if err != nil {
			return 0, board.Move{}, err
		}

		score := -child
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			sc.recordKiller(m, ply)
			sc.recordHistory(m, pos.Turn, depth)
			break
		}
	}

	bound := Exact
	switch {
	case bestScore <= alphaOrig:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	sc.TT.Store(Entry{Fingerprint: pos.Fingerprint, Depth: depth, Bound: bound, Score: toTT(bestScore, ply), Move: best})

	return bestScore, best, nil
}

// terminalOutcome reports the negamax-relative score for a node with no further search needed:
// checkmate (a loss for the side to move, scored by distance so shorter mates are preferred),
// stalemate, the fifty-move rule, or insufficient material.
func terminalOutcome(pos *board.Position, legal []board.Move, ply int) (eval.Score, bool) {
	if len(legal) == 0 {
		if pos.InCheck(pos.Turn) {
			return -(eval.MateScore - eval.Score(ply)), true
		}
		return eval.Draw, true
	}
	if pos.HalfmoveClock >= 100 || pos.IsInsufficientMaterial() {
		return eval.Draw, true
	}
	return 0, false
}

// toTT/fromTT convert a mate score between "plies from this node" (what negamax computes) and
// "plies from the position that was hashed" (what the transposition table stores), since the
// same mating position can be reached at different plies from different search roots.
func toTT(score eval.Score, ply int) eval.Score {
	switch {
	case score >= eval.MateBound:
		return score + eval.Score(ply)
	case score <= -eval.MateBound:
		return score - eval.Score(ply)
	default:
		return score
	}
}

func fromTT(score eval.Score, ply int) eval.Score {
	switch {
	case score >= eval.MateBound:
		return score - eval.Score(ply)
	case score <= -eval.MateBound:
		return score + eval.Score(ply)
	default:
		return score
	}
}
