// Package uci contains a driver for using engine.Engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/engine"
	"github.com/arjunp/corvid/pkg/search"
	"github.com/arjunp/corvid/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

const ProtocolName = "uci"

const defaultHashSizeMB = 64

// Driver implements a UCI driver for engine.Engine. It is activated by the "uci" command sent
// as the protocol's handshake over in, and speaks back over the returned channel.
type Driver struct {
	e    *engine.Engine
	book engine.Book

	useBook atomic.Bool

	out    chan<- string
	active atomic.Bool    // a "go" is outstanding and its bestmove has not yet been sent
	ponder chan search.PV // forwards intermediate iterations for "info" reporting

	lastPosition string // last "position" line, so "moves" continuations skip a full re-decode

	quit   chan struct{}
	closed atomic.Bool
}

// NewDriver starts a driver goroutine reading UCI command lines from in and writing UCI
// response lines to the returned channel, which is closed when the driver exits (on "quit", a
// closed in, or Close). book, if non-nil, is offered to the GUI as the "OwnBook" option.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, book engine.Book) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:      e,
		book:   book,
		out:    out,
		ponder: make(chan search.PV, 400),
		quit:   make(chan struct{}),
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "uci protocol initialized")

	d.out <- fmt.Sprintf("id name %v", engine.Name)
	d.out <- fmt.Sprintf("id author %v", engine.Author)
	d.out <- fmt.Sprintf("option name Hash type spin default %v min 1 max 4096", defaultHashSizeMB)
	if d.book != nil {
		d.out <- fmt.Sprintf("option name OwnBook type check default %v", d.useBook.Load())
	}
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "uci: input stream closed, exiting")
				return
			}
			if !d.handleLine(ctx, line) {
				return
			}

		case pv := <-d.ponder:
			if d.active.Load() {
				d.out <- printPV(pv)
			}

		case <-d.quit:
			d.ensureInactive()
			logw.Infof(ctx, "uci: driver closed")
			return
		}
	}
}

func (d *Driver) handleLine(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "isready":
		d.out <- "readyok"

	case "debug", "register", "ponderhit":
		// Acknowledged implicitly; nothing to do.

	case "setoption":
		d.handleSetOption(args)

	case "ucinewgame":
		d.ensureInactive()
		d.e.Reset()
		d.lastPosition = ""

	case "position":
		d.ensureInactive()
		if err := d.handlePosition(line, args); err != nil {
			logw.Errorf(ctx, "uci: invalid position %q: %v", line, err)
		}

	case "go":
		d.ensureInactive()
		d.handleGo(ctx, args)

	case "stop":
		d.searchCompleted(d.e.Halt())

	case "quit":
		return false

	default:
		logw.Warningf(ctx, "uci: unknown command %q", cmd)
	}
	return true
}

func (d *Driver) handleSetOption(args []string) {
	var name, value string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "name":
			if i+1 < len(args) {
				name = args[i+1]
			}
		case "value":
			if i+1 < len(args) {
				value = strings.Join(args[i+1:], " ")
			}
		}
	}

	switch name {
	case "Hash":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			d.e.SetHashSizeMB(n)
		}
	case "OwnBook":
		if v, err := strconv.ParseBool(value); err == nil {
			d.useBook.Store(v)
		}
	}
}

// handlePosition decodes a "position [fen <fen> | startpos] [moves ...]" line. If line extends
// the previous position line with additional moves, only the new moves are played; otherwise
// the position is rebuilt from scratch.
func (d *Driver) handlePosition(line string, args []string) error {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, mv := range strings.Fields(rest) {
			if mv == "moves" {
				continue
			}
			if err := d.e.Move(mv); err != nil {
				return err
			}
		}
		d.lastPosition = line
		return nil
	}

	fenStr, rest := "", args
	switch {
	case len(args) > 0 && args[0] == "fen":
		if len(args) < 7 {
			return fmt.Errorf("short fen in %q", line)
		}
		fenStr = strings.Join(args[1:7], " ")
		rest = args[7:]
	case len(args) > 0 && args[0] == "startpos":
		rest = args[1:]
	}

	var moves []string
	for i, a := range rest {
		if a == "moves" {
			moves = rest[i+1:]
			break
		}
	}
	if err := d.e.SetPosition(fenStr, moves); err != nil {
		return err
	}
	d.lastPosition = line
	return nil
}

func (d *Driver) handleGo(ctx context.Context, args []string) {
	var opt searchctl.Options
	var tc searchctl.TimeControl
	var hasTC, infinite bool
	var moveTime time.Duration

	for i := 0; i < len(args); i++ {
		next := func() (int, bool) {
			i++
			if i >= len(args) {
				return 0, false
			}
			n, err := strconv.Atoi(args[i])
			return n, err == nil
		}

		switch args[i] {
		case "depth":
			if n, ok := next(); ok {
				opt.DepthLimit = lang.Some(uint(n))
			}
		case "movetime":
			if n, ok := next(); ok {
				moveTime = time.Duration(n) * time.Millisecond
			}
		case "wtime":
			if n, ok := next(); ok {
				tc.White, hasTC = time.Duration(n)*time.Millisecond, true
			}
		case "btime":
			if n, ok := next(); ok {
				tc.Black, hasTC = time.Duration(n)*time.Millisecond, true
			}
		case "winc":
			if n, ok := next(); ok {
				tc.WhiteInc, hasTC = time.Duration(n)*time.Millisecond, true
			}
		case "binc":
			if n, ok := next(); ok {
				tc.BlackInc, hasTC = time.Duration(n)*time.Millisecond, true
			}
		case "movestogo":
			if n, ok := next(); ok {
				tc.MovesToGo, hasTC = n, true
			}
		case "infinite":
			infinite = true
		default:
			// searchmoves, ponder, mate, nodes: not supported, silently ignored.
		}
	}
	if hasTC {
		opt.TimeControl = lang.Some(tc)
	}

	if d.useBook.Load() && d.book != nil {
		if mv, ok := d.book.Lookup(d.e.Position().Fingerprint); ok {
			d.active.Store(true)
			d.searchCompleted(search.PV{Moves: []board.Move{mv}})
			return
		}
	}

	out := d.e.Analyze(ctx, opt)
	d.active.Store(true)

	go func() {
		var last search.PV
		for pv := range out {
			last = pv
			d.ponder <- pv
		}
		if !infinite {
			d.searchCompleted(last)
		}
	}()

	if moveTime > 0 {
		time.AfterFunc(moveTime, func() {
			d.e.Halt()
		})
	}
}

func (d *Driver) ensureInactive() {
	d.active.Store(false)
	d.e.Halt()
}

func (d *Driver) searchCompleted(pv search.PV) {
	if !d.active.CAS(true, false) {
		return // stale or duplicate result
	}
	if len(pv.Moves) == 0 {
		d.out <- "bestmove 0000" // checkmate or stalemate: no legal move to report
		return
	}
	d.out <- printPV(pv)
	d.out <- fmt.Sprintf("bestmove %v", pv.Moves[0])
}

func printPV(pv search.PV) string {
	parts := []string{"info", fmt.Sprintf("depth %v", pv.Depth)}
	if pv.Score.IsMate() {
		parts = append(parts, fmt.Sprintf("score mate %v", pv.Score.MateIn()))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", int(pv.Score)))
	}
	if pv.Nodes > 0 {
		parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	}
	if pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
		if pv.Nodes > 0 {
			nps := uint64(pv.Nodes) * uint64(time.Second) / uint64(pv.Time)
			parts = append(parts, fmt.Sprintf("nps %v", nps))
		}
	}
	if pv.Hash > 0 {
		parts = append(parts, fmt.Sprintf("hashfull %v", pv.Hash))
	}
	if len(pv.Moves) > 0 {
		parts = append(parts, "pv", board.FormatMoves(pv.Moves))
	}
	return strings.Join(parts, " ")
}
