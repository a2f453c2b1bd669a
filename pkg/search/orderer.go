package search

import (
	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
	"golang.org/x/exp/slices"
)

// mvvLvaPriority returns a board.MovePriorityFn for use with board.NewMoveList,
// implementing spec.md §4.F's interior-node ordering: captures by MVV-LVA
// (most valuable victim, least valuable attacker), promotions by the value of
// the piece promoted to, everything else left at zero. Combine with
// board.First to additionally place the transposition table's recorded best
// move ahead of all of these.
func mvvLvaPriority(pos *board.Position) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		victim := captureVictim(pos, m)
		if victim != board.NoKind {
			attacker := pos.At(m.From).Kind()
			return board.MovePriority(10*int(eval.NominalValue(victim)) - int(eval.NominalValue(attacker)))
		}
		if m.IsPromotion() {
			return board.MovePriority(eval.NominalValue(m.Promotion))
		}
		return 0
	}
}

// captureVictim returns the kind of piece captured by m, or NoKind if m is
// not a capture. En passant captures a pawn not standing on m.To.
func captureVictim(pos *board.Position, m board.Move) board.Kind {
	if m.Flag == board.EnPassant {
		return board.Pawn
	}
	return pos.At(m.To).Kind()
}

// isCapture reports whether m captures a piece, for quiescence's
// captures-only move filter.
func isCapture(pos *board.Position, m board.Move) bool {
	return captureVictim(pos, m) != board.NoKind
}

// orderCaptures sorts a captures-only move list by descending MVV-LVA
// priority. Quiescence search has no TT-best move to bias towards and no
// need for the heap-based MoveList's incremental pop, so a single
// stable sort suffices.
func orderCaptures(pos *board.Position, moves []board.Move) []board.Move {
	priority := mvvLvaPriority(pos)
	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(a, b board.Move) int {
		return int(priority(b)) - int(priority(a))
	})
	return ordered
}
