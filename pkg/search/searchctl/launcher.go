// Package searchctl wraps pkg/search's single-call Search interface with the iterative-
// deepening harness, stop-signal plumbing, and time management a real engine needs around it.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
	"github.com/arjunp/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the dynamic parameters of a single search request.
type Options struct {
	// DepthLimit, if set, stops iterative deepening at the given ply depth. Zero means no limit.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, governs when iterative deepening stops via Limits.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var parts []string
	if v, ok := o.DepthLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		parts = append(parts, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, ", "))
}

// Launcher launches a new search from a position, returning a Handle to manage it and a
// channel of increasingly deep PVs as iterative deepening progresses. The channel is closed
// when the search is exhausted (depth limit reached, forced mate found, or time expired).
type Launcher interface {
	Launch(ctx context.Context, pos *board.Position, tt search.TranspositionTable, ev *eval.Evaluator, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the caller stop a running search and retrieve its best result so far. Halt is
// idempotent: it blocks until at least one iteration has produced a result, then returns it
// regardless of how many times it is called.
type Handle interface {
	Halt() search.PV
}
