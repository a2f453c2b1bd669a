package search

import (
	"context"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta implements negamax search with alpha-beta pruning, transposition
// table cutoffs, and a captures-only quiescence horizon, per spec.md §4.F.
// Pseudo-code:
//
// function negamax(node, depth, α, β) is
//
//	if node is terminal then return static evaluation of node
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1, −β, −α))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* β cutoff *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type AlphaBeta struct {
	Quiet QuietSearch
}

func (a AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{quiet: a.Quiet, tt: sctx.TT, threshold: sctx.endgameThreshold(), leafEval: sctx.Eval, b: b}
	alpha, beta := sctx.window()

	score, pv := run.search(ctx, depth, 0, alpha, beta)
	if contextx.IsCancelled(ctx) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runAlphaBeta struct {
	quiet     QuietSearch
	tt        TranspositionTable
	threshold eval.Score
	leafEval  eval.Evaluator
	b         *board.Board
	nodes     uint64
}

// search returns the score from the side-to-move's perspective at the
// current node, and the principal variation leading to it.
func (r *runAlphaBeta) search(ctx context.Context, depth, ply int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.Draw, nil
	}

	pos := r.b.Position()
	hash := pos.Hash()
	endgame := isEndgame(pos, r.threshold)

	var ttBest board.Move
	if e, ok := r.tt.Load(hash); ok {
		ttBest = e.Best
	}
	if score, ok := r.tt.Probe(hash, depth, alpha, beta, endgame); ok {
		return score, nil
	}

	if depth <= 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: r.tt, Eval: r.leafEval}
		nodes, score := r.quiet.QuietSearch(ctx, sctx, r.b)
		r.nodes += nodes
		return score, nil
	}

	r.nodes++

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		result := r.b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			// Distance to mate is encoded by IncrementMateDistance as this
			// score is returned up through each recursive level, not here.
			return -eval.Mate, nil
		}
		return eval.Draw, nil
	}

	moves := board.NewMoveList(legal, board.First(ttBest, mvvLvaPriority(pos)))

	origAlpha := alpha
	bound := Upper
	var best board.Move
	var pv []board.Move

	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		if !r.b.PushMove(m) {
			continue
		}

		score, rem := r.search(ctx, depth-1, ply+1, -beta, -alpha)
		score = eval.IncrementMateDistance(score.Negate())

		r.b.PopMove()

		if score > alpha {
			alpha = score
			best = m
			pv = append([]board.Move{m}, rem...)
			bound = Exact
		}
		if alpha >= beta {
			bound = Lower
			break // beta cutoff
		}
	}

	r.tt.Store(hash, depth, alpha, bound, origAlpha, beta, best)
	return alpha, pv
}
