// Package searchctl drives iterative-deepening search and enforces its
// stopping conditions: depth limit, time control, and forced-mate detection.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/corvidlabs/monarch/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold dynamic search options; the user may change these between
// searches (spec.md §6's "go" parameters).
type Options struct {
	// DepthLimit, if set, limits the search to the given ply depth. Zero means no limit.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given time parameters.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher manages searches against forked boards.
type Launcher interface {
	// Launch starts a new iteratively-deepening search from b, which must be
	// an exclusive (forked) board. noise, if non-nil, overrides the leaf
	// evaluator used by quiescence for this search only. Returns a PV channel
	// delivering one value per completed iteration; the channel closes once
	// the search stops.
	Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, noise eval.Evaluator, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the engine manage a launched search: spin it off with a forked
// board, then halt or abandon it once no longer needed. This design keeps
// stopping conditions and re-synchronization with the engine trivial.
type Handle interface {
	// Halt stops the search, if running, and returns its last completed PV.
	// Idempotent.
	Halt() search.PV
}
