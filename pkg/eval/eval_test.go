package eval_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/arjunp/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) *board.Position {
	t.Helper()
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode(s, zt)
	require.NoError(t, err)
	return pos
}

func TestStartingPositionIsApproximatelyBalanced(t *testing.T) {
	pos := decode(t, fen.Initial)
	e := eval.New()
	s := e.Evaluate(pos)
	assert.InDelta(t, 0, int(s), 30)
}

func TestMaterialAdvantageIsPositive(t *testing.T) {
	// White is up a rook.
	pos := decode(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	e := eval.New()
	assert.Positive(t, int(e.Evaluate(pos)))
}

func TestRelativeEvaluateFlipsSignForBlack(t *testing.T) {
	pos := decode(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	e := eval.New()
	white := e.RelativeEvaluate(pos, board.White)
	black := e.RelativeEvaluate(pos, board.Black)
	assert.Equal(t, white, -black)
}

func TestWinningEndgameIsScoredDecisively(t *testing.T) {
	pos := decode(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	e := eval.New()
	assert.Greater(t, int(e.Evaluate(pos)), 5000)
}

func TestNoiseIsDeterministicPerPosition(t *testing.T) {
	pos := decode(t, fen.Initial)
	a := eval.Noise(pos.Fingerprint, 10)
	b := eval.Noise(pos.Fingerprint, 10)
	assert.Equal(t, a, b)
}

func TestScoreMateFormatting(t *testing.T) {
	assert.Equal(t, 1, (eval.MateScore).MateIn())
	assert.True(t, eval.MateScore.IsMate())
	assert.False(t, eval.Draw.IsMate())
}
