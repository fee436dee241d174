package board_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.E2, m.From)
	assert.Equal(t, board.E4, m.To)
	assert.Equal(t, board.NoPiece, m.Promotion)
	assert.Equal(t, "e2e4", m.String())
}

func TestParseMovePromotion(t *testing.T) {
	m, err := board.ParseMove("e7e8q")
	require.NoError(t, err)
	assert.Equal(t, board.Queen, m.Promotion)
	assert.Equal(t, "e7e8q", m.String())
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e4qq", "e2e4k", "z2e4"} {
		_, err := board.ParseMove(s)
		assert.Error(t, err, s)
	}
}

func TestMoveEquals(t *testing.T) {
	a := board.Move{From: board.E2, To: board.E4}
	b := board.Move{From: board.E2, To: board.E4, Piece: board.Pawn, Flags: board.DoublePawnPush}
	assert.True(t, a.Equals(b))

	c := board.Move{From: board.E2, To: board.E3}
	assert.False(t, a.Equals(c))
}
