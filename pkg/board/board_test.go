package board_test

import (
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardAdjudicatesNoProgressAtConstruction(t *testing.T) {
	// One ply short of the fifty-move limit: still undecided.
	b, err := fen.Decode(zt, "q5k1/8/8/8/8/8/8/6KQ w - - 99 1")
	require.NoError(t, err)
	assert.Equal(t, board.Undecided, b.Result().Outcome)

	// At the limit: drawn on construction, before any move is made.
	b, err = fen.Decode(zt, "q5k1/8/8/8/8/8/8/6KQ w - - 100 1")
	require.NoError(t, err)
	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.NoProgress, b.Result().Reason)

	// A capture made from this position must not escape the draw by
	// resetting the no-progress clock out from under it: the position is
	// already adjudicated before the move is even attempted.
	assert.False(t, b.PushMove(board.Move{From: board.H1, To: board.A8}))
}

func TestNewBoardAdjudicatesInsufficientMaterialAtConstruction(t *testing.T) {
	b, err := fen.Decode(zt, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.InsufficientMaterial, b.Result().Reason)
}

func TestPushMovePastNoProgressLimitIsDraw(t *testing.T) {
	b, err := fen.Decode(zt, "4k3/8/8/8/8/8/6P1/4K3 w - - 99 1")
	require.NoError(t, err)
	require.Equal(t, board.Undecided, b.Result().Outcome)

	ok := b.PushMove(board.Move{From: board.E1, To: board.E2})
	require.True(t, ok)

	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.NoProgress, b.Result().Reason)
}

func TestPopMoveUndoesDrawAdjudication(t *testing.T) {
	b, err := fen.Decode(zt, "4k3/8/8/8/8/8/6P1/4K3 w - - 99 1")
	require.NoError(t, err)

	require.True(t, b.PushMove(board.Move{From: board.E1, To: board.E2}))
	require.Equal(t, board.Draw, b.Result().Outcome)

	_, ok := b.PopMove()
	require.True(t, ok)
	assert.Equal(t, board.Undecided, b.Result().Outcome)
}
