package search_test

import (
	"context"
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/corvidlabs/monarch/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() search.AlphaBeta {
	return search.AlphaBeta{Quiet: search.Quiescence{Eval: eval.Standard{}}}
}

func TestAlphaBetaCorrectness(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"start position", fen.Initial, 3},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
	}

	a := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zt := board.NewZobristTable(7)
			b, err := fen.Decode(zt, tt.fen)
			require.NoError(t, err)

			n, score, pv, err := a.Search(ctx, &search.Context{TT: search.NewTranspositionTable(1 << 20)}, b, tt.depth)
			require.NoError(t, err)
			assert.Greater(t, n, uint64(0))
			assert.False(t, score.IsMateScore())
			assert.NotEmpty(t, pv)
		})
	}
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	zt := board.NewZobristTable(7)
	// Back-rank mate: Ra1-a8#.
	b, err := fen.Decode(zt, "6k1/5ppp/8/8/8/8/6PP/R5K1 w - - 0 1")
	require.NoError(t, err)

	a := newEngine()
	_, score, pv, err := a.Search(ctx, &search.Context{TT: search.NewTranspositionTable(1 << 20)}, b, 2)
	require.NoError(t, err)

	n, ok := score.MateDistance()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	require.NotEmpty(t, pv)
	assert.Equal(t, "a1a8", pv[0].String())
}

func TestAlphaBetaStalemateIsDraw(t *testing.T) {
	ctx := context.Background()
	zt := board.NewZobristTable(7)
	// Black to move, no legal moves, not in check.
	b, err := fen.Decode(zt, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	a := newEngine()
	_, score, _, err := a.Search(ctx, &search.Context{TT: search.NewTranspositionTable(1 << 20)}, b, 1)
	require.NoError(t, err)
	assert.Equal(t, eval.Draw, score)
}
