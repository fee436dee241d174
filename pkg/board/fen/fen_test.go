package fen_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}

	zt := board.NewZobristTable(board.DefaultSeed)
	for _, tt := range tests {
		pos, err := fen.Decode(tt, zt)
		require.NoError(t, err, tt)
		assert.Equal(t, tt, fen.Encode(pos), tt)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}

	zt := board.NewZobristTable(board.DefaultSeed)
	for _, tt := range tests {
		_, err := fen.Decode(tt, zt)
		assert.Error(t, err, tt)
	}
}

func TestDecodeFingerprintMatchesRecompute(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode(fen.Initial, zt)
	require.NoError(t, err)

	want := pos.Fingerprint
	pos.RecomputeFingerprint()
	assert.Equal(t, want, pos.Fingerprint)
}
