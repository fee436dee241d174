package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/arjunp/corvid/pkg/engine"
	"github.com/arjunp/corvid/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	e := engine.New()
	assert.Equal(t, fen.Initial, e.FEN())
}

func TestMovePlaysLegalMove(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Move("e2e4"))
	assert.Contains(t, e.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b")
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	e := engine.New()
	assert.Error(t, e.Move("e2e5"))
}

func TestSetPositionAppliesMoveList(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.SetPosition("", []string{"e2e4", "e7e5", "g1f3"}))
	assert.Contains(t, e.FEN(), "b KQkq")
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	e := engine.New()
	assert.Error(t, e.SetPosition("", []string{"e2e5"}))
}

func TestSetPositionFromFEN(t *testing.T) {
	e := engine.New()
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	require.NoError(t, e.SetPosition(kiwipete, nil))
	assert.Equal(t, kiwipete, e.FEN())
}

func TestResetReturnsToStartingPosition(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Move("e2e4"))
	e.Reset()
	assert.Equal(t, fen.Initial, e.FEN())
}

func TestAnalyzeProducesAMoveAtFixedDepth(t *testing.T) {
	e := engine.New()
	out := e.Analyze(context.Background(), searchctl.Options{DepthLimit: lang.Some(uint(2))})

	var last struct{ sawPV bool }
	for range out {
		last.sawPV = true
	}
	assert.True(t, last.sawPV)

	pv := e.Halt()
	assert.NotEmpty(t, pv.Moves)
	assert.False(t, e.IsSearching())
}

func TestHaltWithoutAnalyzeIsANoOp(t *testing.T) {
	e := engine.New()
	assert.Empty(t, e.Halt().Moves)
}

func TestAnalyzeHonorsMoveTimeBudget(t *testing.T) {
	e := engine.New()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	out := e.Analyze(ctx, searchctl.Options{})
	for range out {
	}
	assert.False(t, e.IsSearching())
}
