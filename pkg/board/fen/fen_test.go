package fen_test

import (
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}

	for _, tt := range tests {
		zt := board.NewZobristTable(1)
		b, err := fen.Decode(zt, tt)
		require.NoError(t, err)

		assert.Equal(t, tt, fen.Encode(b))
	}
}

func TestDecodeRejectsMalformedRecords(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",      // missing rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}

	zt := board.NewZobristTable(1)
	for _, tt := range tests {
		_, err := fen.Decode(zt, tt)
		assert.Error(t, err, tt)
	}
}

func TestDecodeEnPassantSquare(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(zt, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	sq, ok := b.Position().EnPassant()
	require.True(t, ok)
	assert.Equal(t, board.D6, sq)
}
