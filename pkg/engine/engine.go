// Package engine wires pkg/board, pkg/eval, pkg/search, and pkg/search/searchctl into a single
// stateful facade suitable for driving from a protocol adapter (see pkg/uci) or a test harness.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/arjunp/corvid/pkg/eval"
	"github.com/arjunp/corvid/pkg/search"
	"github.com/arjunp/corvid/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

const defaultHashSizeMB = 64

var version = build.NewVersion(0, 1, 0)

// Name and Author identify the engine for protocol adapters such as pkg/uci.
var (
	Name   = fmt.Sprintf("corvid %v", version)
	Author = "arjunp"
)

// Engine holds one game's position and mediates every access to it: SetPosition/Move mutate it,
// Analyze reads a snapshot to search in the background, and Halt retrieves the result. All
// methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	zt  *board.ZobristTable
	pos *board.Position

	tt       search.TranspositionTable
	ev       *eval.Evaluator
	launcher searchctl.Launcher
	book     Book

	handle    searchctl.Handle
	searching bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithTranspositionTable installs a specific transposition table instead of a default-sized one.
func WithTranspositionTable(tt search.TranspositionTable) Option {
	return func(e *Engine) { e.tt = tt }
}

// WithHashSizeMB sizes the transposition table in megabytes.
func WithHashSizeMB(mb int) Option {
	return func(e *Engine) { e.tt = search.NewTableWithSize(mb) }
}

// WithEvaluator installs a specific evaluator, e.g. one built with non-default Weights.
func WithEvaluator(ev *eval.Evaluator) Option {
	return func(e *Engine) { e.ev = ev }
}

// WithLauncher installs a specific search launcher. The default is iterative deepening over
// alpha-beta, which is what every caller wants outside of tests exercising the harness itself.
func WithLauncher(l searchctl.Launcher) Option {
	return func(e *Engine) { e.launcher = l }
}

// WithBook installs an opening book. See Book's doc comment: Analyze never consults it itself.
func WithBook(b Book) Option {
	return func(e *Engine) { e.book = b }
}

// New constructs an Engine at the standard starting position.
func New(opts ...Option) *Engine {
	e := &Engine{
		zt:       board.NewZobristTable(board.DefaultSeed),
		ev:       eval.New(),
		tt:       search.NewTableWithSize(defaultHashSizeMB),
		launcher: &searchctl.Iterative{Root: &search.AlphaBeta{}},
		book:     NoBook{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.pos = board.NewStartingPosition(e.zt)
	return e
}

// Reset starts a new game: the position returns to the standard starting position and the
// transposition table is cleared outright, so no entry from the previous game can be probed as
// if it belonged to this one.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.NewStartingPosition(e.zt)
	e.tt.Clear()
}

// SetPosition replaces the current position with fenStr (or the starting position, if fenStr is
// empty) and then plays moves, given in long algebraic notation, in order.
func (e *Engine) SetPosition(fenStr string, moves []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := board.NewStartingPosition(e.zt)
	if fenStr != "" {
		decoded, err := fen.Decode(fenStr, e.zt)
		if err != nil {
			return fmt.Errorf("engine: set position: %w", err)
		}
		pos = decoded
	}

	for _, str := range moves {
		m, err := board.ParseMove(str)
		if err != nil {
			return fmt.Errorf("engine: set position: %w", err)
		}
		full, ok := matchLegalMove(pos.LegalMoves(), m)
		if !ok {
			return fmt.Errorf("engine: set position: illegal move %q", str)
		}
		pos.MakeMove(full)
	}

	e.pos = pos
	return nil
}

// Move plays a single move, given in long algebraic notation, against the current position.
func (e *Engine) Move(str string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := board.ParseMove(str)
	if err != nil {
		return fmt.Errorf("engine: move: %w", err)
	}
	full, ok := matchLegalMove(e.pos.LegalMoves(), m)
	if !ok {
		return fmt.Errorf("engine: move: illegal move %q", str)
	}
	e.pos.MakeMove(full)
	return nil
}

func matchLegalMove(legal []board.Move, m board.Move) (board.Move, bool) {
	for _, cand := range legal {
		if cand.Equals(m) {
			return cand, true
		}
	}
	return board.Move{}, false
}

// Position returns a snapshot of the current position. The returned Position is a deep copy:
// mutating it (or feeding it through MakeMove/UnmakeMove) never affects the engine's own state.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Clone()
}

// FEN renders the current position in Forsyth-Edwards Notation.
func (e *Engine) FEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// IsSearching reports whether a search launched by Analyze is still running.
func (e *Engine) IsSearching() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.searching
}

// Analyze launches a background search of the current position and returns a channel of
// increasingly deep principal variations, closed once the search stops on its own (depth limit,
// forced mate, or time control). Only one search may run at a time; Analyze halts any search
// already in progress before starting the new one.
func (e *Engine) Analyze(ctx context.Context, opt searchctl.Options) <-chan search.PV {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.searching && e.handle != nil {
		e.handle.Halt()
	}

	snapshot := e.pos.Clone()
	e.tt.NewGeneration()
	handle, out := e.launcher.Launch(ctx, snapshot, e.tt, e.ev, opt)
	e.handle = handle
	e.searching = true

	relay := make(chan search.PV, 1)
	go func(h searchctl.Handle) {
		defer close(relay)
		var last search.PV
		for pv := range out {
			last = pv
			relay <- pv
		}
		e.mu.Lock()
		if e.handle == h {
			e.searching = false
		}
		e.mu.Unlock()
		logw.Debugf(ctx, "analyze finished: %v", last)
	}(handle)
	return relay
}

// Halt stops any in-progress Analyze search and returns its best result so far. Halt is a no-op
// returning a zero PV if no search has ever been launched.
func (e *Engine) Halt() search.PV {
	e.mu.Lock()
	h := e.handle
	e.mu.Unlock()

	if h == nil {
		return search.PV{}
	}
	return h.Halt()
}

// Book returns the engine's installed opening book (NoBook{} unless WithBook was used). Analyze
// never consults it; it is exposed purely so a caller driving self-play can look moves up itself.
func (e *Engine) Book() Book {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.book
}

// SetHashSizeMB resizes the transposition table. The old table's contents are discarded.
func (e *Engine) SetHashSizeMB(mb int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tt = search.NewTableWithSize(mb)
}
