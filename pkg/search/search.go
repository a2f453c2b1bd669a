// Package search implements iterative-deepening negamax alpha-beta search
// with quiescence and transposition-table integration, per spec.md §4.F.
package search

import (
	"context"
	"errors"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
)

// ErrHalted is returned by Search when ctx was cancelled before the search
// completed; the caller should fall back to the last completed iteration's
// result rather than treat this as a fatal error.
var ErrHalted = errors.New("search: halted")

// Context carries the root search window and shared search-wide state. The
// zero value searches the full [-Inf, +Inf] window with the default endgame
// threshold.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	// EndgameNonPawnMaterial overrides the "low non-pawn material" threshold
	// (spec.md §9's open question) at or below which both sides are classified as
	// endgame for the TT's endgame depth rule. Zero uses EndgameNonPawnMaterial.
	EndgameNonPawnMaterial eval.Score
	// Eval, if set, overrides the QuietSearch's own evaluator for this
	// search; this is how per-search evaluation noise (engine.Options.Noise)
	// reaches quiescence without reconstructing the search tree.
	Eval eval.Evaluator
}

func (c *Context) window() (eval.Score, eval.Score) {
	alpha, beta := eval.NegInf, eval.Inf
	if c.Alpha != 0 {
		alpha = c.Alpha
	}
	if c.Beta != 0 {
		beta = c.Beta
	}
	return alpha, beta
}

func (c *Context) endgameThreshold() eval.Score {
	if c.EndgameNonPawnMaterial != 0 {
		return c.EndgameNonPawnMaterial
	}
	return EndgameNonPawnMaterial
}

// Search is a fixed-depth search algorithm: given a board and a depth, it
// returns the nodes visited, the score from the side-to-move's perspective,
// and the principal variation.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (nodes uint64, score eval.Score, pv []board.Move, err error)
}

// QuietSearch extends search beyond the horizon over tactically noisy
// positions (captures and promotions), per spec.md's quiescence design.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (nodes uint64, score eval.Score)
}

// EndgameNonPawnMaterial is the default "low non-pawn material" threshold
// (spec.md §9's open question) at or below which a side's position is
// classified as endgame for the TT's endgame depth rule. Callers that want a
// different cutoff set Context.EndgameNonPawnMaterial; this is the default.
const EndgameNonPawnMaterial = eval.Score(1300)

// isEndgame reports whether both sides are at or below the non-pawn
// material threshold, the condition under which spec.md §4.E's TT depth
// rule applies.
func isEndgame(pos *board.Position, threshold eval.Score) bool {
	return eval.NonPawnMaterial(pos, board.White) <= threshold && eval.NonPawnMaterial(pos, board.Black) <= threshold
}
