package board_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClear(t *testing.T) {
	var b board.Bitboard
	b = b.Set(board.E4)
	assert.True(t, b.IsSet(board.E4))
	assert.Equal(t, 1, b.PopCount())

	b = b.Set(board.A1)
	assert.Equal(t, 2, b.PopCount())

	b = b.Clear(board.E4)
	assert.False(t, b.IsSet(board.E4))
	assert.Equal(t, 1, b.PopCount())
}

func TestBitboardSquares(t *testing.T) {
	b := board.BitMask(board.A1).Set(board.D4).Set(board.H8)
	assert.Equal(t, []board.Square{board.A1, board.D4, board.H8}, b.Squares())
}

func TestKnightAttackboardCorner(t *testing.T) {
	b := board.KnightAttackboard(board.A1)
	assert.Equal(t, 2, b.PopCount())
	assert.True(t, b.IsSet(board.C2))
	assert.True(t, b.IsSet(board.B3))
}

func TestKingAttackboardCorner(t *testing.T) {
	b := board.KingAttackboard(board.A1)
	assert.Equal(t, 3, b.PopCount())
}

func TestPawnCaptureboard(t *testing.T) {
	w := board.PawnCaptureboard(board.White, board.E4)
	assert.True(t, w.IsSet(board.D5))
	assert.True(t, w.IsSet(board.F5))
	assert.Equal(t, 2, w.PopCount())

	b := board.PawnCaptureboard(board.Black, board.E4)
	assert.True(t, b.IsSet(board.D3))
	assert.True(t, b.IsSet(board.F3))
}

func TestBitRankBitFile(t *testing.T) {
	assert.Equal(t, 8, board.BitRank(board.Rank1).PopCount())
	assert.Equal(t, 8, board.BitFile(board.FileA).PopCount())
	assert.True(t, board.BitRank(board.Rank1).IsSet(board.A1))
	assert.True(t, board.BitFile(board.FileA).IsSet(board.A8))
}
