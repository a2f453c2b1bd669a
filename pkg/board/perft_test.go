package board_test

import (
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft walks the legal move tree to the given depth and returns the leaf
// count, the classic move generator correctness check. Grounded on the node
// counts spec.md's testable-properties section fixes for the initial
// position, and on RchrdHndrcks/gochess's perft-by-table test style.
func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range pos.LegalMoves() {
		u := pos.MakeMove(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m, u)
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(zt, fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, perft(b.Position(), tt.depth), "perft(%d)", tt.depth)
	}
}

// TestPerftKiwipete exercises castling, en passant, and promotions together,
// the classic "Kiwipete" position used to catch move generator bugs the
// initial position doesn't reach.
func TestPerftKiwipete(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(zt, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, uint64(48), perft(b.Position(), 1))
	assert.Equal(t, uint64(2039), perft(b.Position(), 2))
}
