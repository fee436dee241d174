package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
	"github.com/arjunp/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Iterative is a Launcher that deepens one ply at a time, reporting after each completed
// iteration and never overwriting the last completed iteration's result with a partial one: a
// stopped iteration's search error is ErrHalted and is simply discarded, leaving the handle's
// pv at whatever the last fully-completed depth produced.
type Iterative struct {
	Root search.Search
}

func (i *Iterative) Launch(ctx context.Context, pos *board.Position, tt search.TranspositionTable, ev *eval.Evaluator, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, i.Root, pos, tt, ev, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, pos *board.Position, tt search.TranspositionTable, ev *eval.Evaluator, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	sctx := &search.Context{Alpha: -eval.Infinity, Beta: eval.Infinity, TT: tt, Eval: ev}
	optimal, useOptimal := EnforceTimeControl(ctx, h, opt.TimeControl, pos.Turn)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	depth := 1
	searchStart := time.Now()
	for !h.quit.IsClosed() {
		start := time.Now()

		nodes, score, moves, err := root.Search(wctx, sctx, pos, depth)
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called, or the move-time ceiling fired.
			}
			logw.Errorf(ctx, "search failed at depth=%v: %v", depth, err)
			return
		}

		pv := search.PV{
			Depth: depth,
			Nodes: nodes,
			Score: score,
			Moves: moves,
			Time:  time.Since(start),
		}
		if tt != nil {
			pv.Hash = tt.Used()
		}

		logw.Debugf(ctx, "searched depth=%v: %v", depth, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // halt: reached the requested depth ceiling.
		}
		if score.IsMate() {
			moves := score.MateIn()
			if moves < 0 {
				moves = -moves
			}
			if moves*2-1 <= depth {
				return // halt: forced mate found within the full-width search. Exact result.
			}
		}
		if useOptimal && optimal < time.Since(searchStart) {
			return // halt: exceeded the optimal time budget. Do not start a new iteration.
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
