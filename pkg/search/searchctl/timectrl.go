package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl is the clock state reported by the engine's caller (a UCI "go" command's
// wtime/btime/winc/binc/movestogo, typically).
type TimeControl struct {
	White, Black         time.Duration
	WhiteInc, BlackInc    time.Duration
	MovesToGo            int // 0 means unknown: assume the rest of a typical game remains
}

const (
	minBudget           = 10 * time.Millisecond
	safetyMargin        = 100 * time.Millisecond
	assumedMovesToGo    = 40
	incrementLookahead  = 20
)

// Budget is the three-tier time allocation for one move: optimal is the time the search tries
// to finish within before starting a new iteration, max is the hard ceiling a running iteration
// is aborted at, and min is a floor below which the search will still complete at least one ply
// even under severe time pressure.
type Budget struct {
	Optimal, Max, Min time.Duration
}

// Limits computes c's move time budget for the side to move, following:
//
//	base     = (remaining*0.9 + increment*min(movesToGo, 20)) / movesToGo   (increment > 0)
//	base     = remaining*0.9 / (movesToGo + 5)                              (no increment)
//	optimal  = base * 0.95
//	max      = max(optimal*3, remaining*0.4)
//	min      = max(10ms, optimal*0.5)
//
// with every output clamped to [10ms, remaining-100ms].
func (t TimeControl) Limits(c board.Color) Budget {
	remaining, increment := t.White, t.WhiteInc
	if c == board.Black {
		remaining, increment = t.Black, t.BlackInc
	}

	movesToGo := t.MovesToGo
	if movesToGo <= 0 {
		movesToGo = assumedMovesToGo
	}

	var base time.Duration
	if increment > 0 {
		lookahead := movesToGo
		if lookahead > incrementLookahead {
			lookahead = incrementLookahead
		}
		base = (scaleDuration(remaining, 0.9) + increment*time.Duration(lookahead)) / time.Duration(movesToGo)
	} else {
		base = scaleDuration(remaining, 0.9) / time.Duration(movesToGo+5)
	}

	optimal := scaleDuration(base, 0.95)
	max := scaleDuration(optimal, 3)
	if alt := scaleDuration(remaining, 0.4); alt > max {
		max = alt
	}
	min := scaleDuration(optimal, 0.5)
	if min < minBudget {
		min = minBudget
	}

	ceiling := remaining - safetyMargin
	return Budget{
		Optimal: clamp(optimal, minBudget, ceiling),
		Max:     clamp(max, minBudget, ceiling),
		Min:     clamp(min, minBudget, ceiling),
	}
}

func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if hi < lo {
		hi = lo
	}
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

func (t TimeControl) String() string {
	if t.MovesToGo == 0 {
		return fmt.Sprintf("%.1f<>%.1f", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.MovesToGo)
}

// EnforceTimeControl schedules an automatic Halt at the hard (max) budget and returns the
// optimal budget the iterative-deepening loop should stop starting new iterations at.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl], turn board.Color) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	budget := c.Limits(turn)
	timer := time.AfterFunc(budget.Max, func() {
		h.Halt()
	})
	_ = timer

	logw.Debugf(ctx, "time control limits for %v: %+v", c, budget)
	return budget.Optimal, true
}
