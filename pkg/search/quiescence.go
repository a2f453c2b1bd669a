package search

import (
	"context"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence extends search beyond the horizon over captures and promotions
// only, per spec.md §4.F, to avoid misjudging a position mid-exchange (the
// horizon effect).
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	e := q.Eval
	if sctx.Eval != nil {
		e = sctx.Eval
	}
	run := &runQuiescence{eval: e, b: b}
	alpha, beta := sctx.window()

	score := run.search(ctx, alpha, beta)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

func (r *runQuiescence) search(ctx context.Context, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.Draw
	}

	r.nodes++

	pos := r.b.Position()
	standPat := r.eval.Evaluate(pos, r.b.Turn())
	if standPat >= beta {
		return beta
	}
	alpha = eval.Max(alpha, standPat)

	legal := pos.LegalMoves()
	captures := make([]board.Move, 0, len(legal))
	for _, m := range legal {
		if isCapture(pos, m) || m.IsPromotion() {
			captures = append(captures, m)
		}
	}
	if len(captures) == 0 {
		if len(legal) == 0 {
			result := r.b.AdjudicateNoLegalMoves()
			if result.Reason == board.Checkmate {
				return -eval.Mate
			}
			return eval.Draw
		}
		return alpha
	}

	for _, m := range orderCaptures(pos, captures) {
		if !r.b.PushMove(m) {
			continue
		}

		score := eval.IncrementMateDistance(r.search(ctx, -beta, -alpha).Negate())
		r.b.PopMove()

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return alpha
}
