package search_test

import (
	"context"
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/arjunp/corvid/pkg/eval"
	"github.com/arjunp/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() *search.Context {
	return &search.Context{
		Alpha: -eval.Infinity,
		Beta:  eval.Infinity,
		TT:    search.NewTable(1 << 14),
		Eval:  eval.New(),
	}
}

func decode(t *testing.T, s string) *board.Position {
	t.Helper()
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode(s, zt)
	require.NoError(t, err)
	return pos
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Qg1-g7 is checkmate, the queen supported by the king on f6.
	pos := decode(t, "7k/8/5K2/8/8/8/8/6Q1 w - - 0 1")
	sc := newContext()

	_, score, pv, err := search.AlphaBeta{}.Search(context.Background(), sc, pos, 3)
	require.NoError(t, err)
	require.NotEmpty(t, pv)
	assert.True(t, score.IsMate())
	assert.Equal(t, 1, score.MateIn())
}

func TestSearchSingleLegalMoveIsDeterministic(t *testing.T) {
	// Black king in check along the h-file, with only g8 unattacked (the white king on g6
	// covers g7 and h7, and does not itself reach g8).
	pos := decode(t, "7k/8/6K1/8/8/8/8/7Q b - - 0 1")
	legal := pos.LegalMoves()
	require.Len(t, legal, 1)

	sc := newContext()
	_, _, pv, err := search.AlphaBeta{}.Search(context.Background(), sc, pos, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pv)
	assert.True(t, legal[0].Equals(pv[0]))
}

func TestSearchRespectsHaltedContext(t *testing.T) {
	pos := decode(t, fen.Initial)
	sc := newContext()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := search.AlphaBeta{}.Search(ctx, sc, pos, 4)
	assert.ErrorIs(t, err, search.ErrHalted)
}

func TestSearchStartingPositionIsDeterministicAtFixedDepth(t *testing.T) {
	pos1 := decode(t, fen.Initial)
	pos2 := decode(t, fen.Initial)

	_, s1, pv1, err := search.AlphaBeta{}.Search(context.Background(), newContext(), pos1, 3)
	require.NoError(t, err)
	_, s2, pv2, err := search.AlphaBeta{}.Search(context.Background(), newContext(), pos2, 3)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	require.Equal(t, len(pv1), len(pv2))
	for i := range pv1 {
		assert.True(t, pv1[i].Equals(pv2[i]))
	}
}
