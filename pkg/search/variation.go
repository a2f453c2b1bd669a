package search

import (
	"fmt"
	"time"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
)

// PV is the principal variation found by one completed iterative-deepening
// iteration, per spec.md §4.G/§6's SearchUpdate.
type PV struct {
	Depth int           // depth searched
	Moves []board.Move  // principal variation, best move first
	Score eval.Score    // score at Depth, from the side-to-move's perspective
	Nodes uint64        // interior and leaf nodes visited
	Time  time.Duration // wall-clock time taken by this iteration
	Hash  float64       // transposition table occupancy, in [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), board.FormatMoves(p.Moves))
}
