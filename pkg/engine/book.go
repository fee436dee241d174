package engine

import "github.com/arjunp/corvid/pkg/board"

// Book is an opening book lookup. Opening books are an explicit non-goal of this engine's
// search and evaluation (no book move is ever consulted by Engine.Analyze); Book exists purely
// as an extension point a caller may wire in for out-of-engine purposes, such as varying the
// first few moves of self-play test scripts. NoBook is used unless a caller explicitly
// constructs and installs a real one via WithBook.
type Book interface {
	// Lookup returns a move for the position's fingerprint, if the book has one.
	Lookup(fp board.Fingerprint) (board.Move, bool)
}

// NoBook never has a move for any position.
type NoBook struct{}

func (NoBook) Lookup(board.Fingerprint) (board.Move, bool) { return board.Move{}, false }

// MapBook is a trivial in-memory Book keyed by position fingerprint, suitable for a short, fixed
// set of named openings used to vary test self-play scripts.
type MapBook map[board.Fingerprint]board.Move

func (b MapBook) Lookup(fp board.Fingerprint) (board.Move, bool) {
	m, ok := b[fp]
	return m, ok
}
