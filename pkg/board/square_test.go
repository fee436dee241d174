package board_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	assert.Equal(t, board.A1, board.NewSquare(board.FileA, board.Rank1))
	assert.Equal(t, board.H1, board.NewSquare(board.FileH, board.Rank1))
	assert.Equal(t, board.A8, board.NewSquare(board.FileA, board.Rank8))
	assert.Equal(t, board.H8, board.NewSquare(board.FileH, board.Rank8))
	assert.Equal(t, board.E4, board.NewSquare(board.FileE, board.Rank4))
}

func TestParseSquareStr(t *testing.T) {
	tests := []struct {
		str  string
		want board.Square
	}{
		{"a1", board.A1},
		{"h1", board.H1},
		{"e4", board.E4},
		{"h8", board.H8},
	}
	for _, tt := range tests {
		sq, err := board.ParseSquareStr(tt.str)
		require.NoError(t, err)
		assert.Equal(t, tt.want, sq)
		assert.Equal(t, tt.str, sq.String())
	}
}

func TestParseSquareStrInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "e44"} {
		_, err := board.ParseSquareStr(s)
		assert.Error(t, err, s)
	}
}

func TestRelativeRank(t *testing.T) {
	assert.Equal(t, board.Rank1, board.E1.RelativeRank(board.White))
	assert.Equal(t, board.Rank8, board.E1.RelativeRank(board.Black))
	assert.Equal(t, board.Rank1, board.E8.RelativeRank(board.Black))
}
