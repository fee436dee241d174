package board_test

import (
	"testing"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts the leaf nodes at the given depth by brute-force legal move enumeration,
// exercising the full make/unmake/legality-filter path the same way search does.
func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		pos.MakeMove(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos := board.NewStartingPosition(zt)

	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, perft(pos, tt.depth), "depth %d", tt.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", zt)
	require.NoError(t, err)

	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, perft(pos, tt.depth), "depth %d", tt.depth)
	}
}

func TestMakeUnmakeRestoresFingerprint(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos := board.NewStartingPosition(zt)

	before := pos.Fingerprint
	for _, m := range pos.LegalMoves() {
		pos.MakeMove(m)
		pos.UnmakeMove()
		assert.Equal(t, before, pos.Fingerprint, m.String())
	}
}

func TestMakeUnmakeRestoresBoardState(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", zt)
	require.NoError(t, err)

	before := fen.Encode(pos)
	for _, m := range pos.LegalMoves() {
		pos.MakeMove(m)
		pos.UnmakeMove()
		assert.Equal(t, before, fen.Encode(pos), m.String())
	}
}

func TestCheckmateDetection(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	// Fool's mate final position: White to move is checkmated by the queen on h4.
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", zt)
	require.NoError(t, err)

	moves := pos.LegalMoves()
	assert.Equal(t, board.Loss(board.White), pos.Outcome(moves))
}

func TestStalemateDetection(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	// Classic stalemate fixture: black king cornered with no legal moves and not in check.
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", zt)
	require.NoError(t, err)

	moves := pos.LegalMoves()
	require.Empty(t, moves)
	assert.False(t, pos.InCheck(board.Black))
	assert.Equal(t, board.Draw, pos.Outcome(moves))
}

func TestEnPassantCapture(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", zt)
	require.NoError(t, err)

	var found bool
	for _, m := range pos.LegalMoves() {
		if m.IsEnPassant() {
			found = true
			assert.Equal(t, board.E5, m.From)
			assert.Equal(t, board.D6, m.To)
		}
	}
	assert.True(t, found, "expected an en passant capture to be generated")
}

func TestCastlingRights(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultSeed)
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", zt)
	require.NoError(t, err)

	var kingSide board.Move
	for _, m := range pos.LegalMoves() {
		if m.IsCastle() && m.To == board.G1 {
			kingSide = m
		}
	}
	require.NotZero(t, kingSide.To)

	pos.MakeMove(kingSide)
	assert.Equal(t, board.Rook, pos.PieceAt(board.F1).Piece)
	assert.Equal(t, board.King, pos.PieceAt(board.G1).Piece)
	assert.False(t, pos.Castling.IsAllowed(board.WhiteKingSideCastle))
	assert.False(t, pos.Castling.IsAllowed(board.WhiteQueenSideCastle))
	pos.UnmakeMove()
	assert.True(t, pos.Castling.IsAllowed(board.WhiteKingSideCastle))
}
