package engine_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestNoBookNeverHasAMove(t *testing.T) {
	_, ok := engine.NoBook{}.Lookup(board.Fingerprint(12345))
	assert.False(t, ok)
}

func TestMapBookLooksUpByFingerprint(t *testing.T) {
	e4 := board.Move{From: board.E2, To: board.E4, Piece: board.Pawn, Flags: board.DoublePawnPush}
	book := engine.MapBook{board.Fingerprint(1): e4}

	m, ok := book.Lookup(board.Fingerprint(1))
	assert.True(t, ok)
	assert.Equal(t, e4, m)

	_, ok = book.Lookup(board.Fingerprint(2))
	assert.False(t, ok)
}

func TestEngineDefaultsToNoBook(t *testing.T) {
	e := engine.New()
	_, ok := e.Book().Lookup(e.Position().Fingerprint)
	assert.False(t, ok)
}

func TestWithBookInstallsCustomBook(t *testing.T) {
	e := engine.New(engine.WithBook(engine.MapBook{}))
	assert.IsType(t, engine.MapBook{}, e.Book())
}
