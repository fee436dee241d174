// Package search implements negamax alpha-beta search with quiescence, a transposition table,
// and move ordering (TT move, MVV-LVA, killers, history heuristic) over pkg/board positions.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
)

// ErrHalted is returned by Search when it was stopped externally (via the searchctl Handle)
// rather than completing on its own terms.
var ErrHalted = errors.New("search: halted")

// Context carries the state a single iterative-deepening iteration threads through every
// recursive call: the window, the shared transposition table, the evaluator, and bookkeeping
// (killers, history) that benefits from surviving across the iteration rather than being
// reconstructed at every node.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Eval        *eval.Evaluator

	killers [maxPly][2]board.Move
	history [board.NumColors][board.NumSquares][board.NumSquares]int

	Nodes, QNodes int64
}

const maxPly = 128

// Search is the interface a search algorithm implements: given a position and a depth (in
// plies), return the node count, the score, and the principal variation found.
type Search interface {
	Search(ctx context.Context, sc *Context, pos *board.Position, depth int) (nodes int64, score eval.Score, pv []board.Move, err error)
}

// PV is one completed iteration's result, reported to the searchctl harness after every depth.
type PV struct {
	Depth int
	Nodes int64
	Score eval.Score
	Moves []board.Move
	Time  time.Duration
	Hash  int // transposition table occupancy, 0-1000 per mille, if tracked
}

func (pv PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", pv.Depth, pv.Score, pv.Nodes, pv.Time, board.FormatMoves(pv.Moves))
}

func checkHalted(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
