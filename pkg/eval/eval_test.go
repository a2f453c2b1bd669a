package eval_test

import (
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardEvaluateStartingPositionIsSymmetric(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(zt, fen.Initial)
	require.NoError(t, err)

	var e eval.Standard
	assert.Equal(t, eval.Score(0), e.Evaluate(b.Position(), board.White))
	assert.Equal(t, eval.Score(0), e.Evaluate(b.Position(), board.Black))
}

func TestStandardEvaluateMaterialAdvantage(t *testing.T) {
	zt := board.NewZobristTable(1)
	// White is up a rook and a queen.
	b, err := fen.Decode(zt, "4k3/8/8/8/8/8/8/R3K2Q w Q - 0 1")
	require.NoError(t, err)

	var e eval.Standard
	assert.Greater(t, int(e.Evaluate(b.Position(), board.White)), int(eval.QueenValue))
}

func TestNominalValueOrdering(t *testing.T) {
	assert.True(t, eval.NominalValue(board.Pawn) < eval.NominalValue(board.Knight))
	assert.True(t, eval.NominalValue(board.Knight) < eval.NominalValue(board.Rook))
	assert.True(t, eval.NominalValue(board.Rook) < eval.NominalValue(board.Queen))
	assert.Equal(t, eval.Score(0), eval.NominalValue(board.King))
}

func TestMateScoreEncoding(t *testing.T) {
	s := eval.Mate - 3
	n, ok := s.MateDistance()
	require.True(t, ok)
	assert.Equal(t, 3, n)

	assert.Equal(t, eval.Mate-4, eval.IncrementMateDistance(s))
	assert.False(t, eval.Score(150).IsMateScore())
	assert.True(t, s.IsMateScore())
}
