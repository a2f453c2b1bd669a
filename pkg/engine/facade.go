package engine

import (
	"context"
	"time"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/corvidlabs/monarch/pkg/search"
	"github.com/corvidlabs/monarch/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Reason identifies why a search stopped, per spec.md §6's SearchDone.reason.
type Reason int

const (
	ReasonDepth Reason = iota
	ReasonTime
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonDepth:
		return "depth"
	case ReasonTime:
		return "time"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "?"
	}
}

// SearchRequest is the request-channel message of spec.md §6: a
// self-contained position to search, bounded by depth and/or time.
type SearchRequest struct {
	Position string // FEN, or "startpos"
	MaxDepth uint   // 0 means no depth limit
	TimeMs   uint32 // 0 means "depth-only"
}

// SearchUpdate is emitted once per completed iteration, per spec.md §6.
type SearchUpdate struct {
	Depth    int
	ScoreCP  int
	BestMove board.Move
	PV       []board.Move
}

// SearchDone is the final message for a request, per spec.md §6.
type SearchDone struct {
	BestMove board.Move
	ScoreCP  int
	Reason   Reason
}

// Facade adapts Engine's synchronous API to the message-channel contract of
// spec.md §5/§6: a bounded request channel in, an update channel (buffered
// to 4096 messages) out, one active search at a time, a second request
// cancelling the first.
// It shares the same Engine (and therefore the same searchctl.Launcher) the
// synchronous API uses; the two surfaces never run concurrent searches.
type Facade struct {
	e       *Engine
	request chan facadeMsg
	update  chan any
}

type facadeMsg struct {
	req    *SearchRequest // nil means Cancel
	cancel bool
}

// NewFacade starts the façade's worker goroutine and returns the request and
// update channels spec.md §5 describes. request is bounded (size 1, per
// spec.md's "bounded request channel"); update is buffered to 4096 messages
// and is not unbounded: once the buffer is full, the worker blocks until the
// receiver reads.
func NewFacade(ctx context.Context, e *Engine) (chan<- SearchRequest, <-chan any) {
	f := &Facade{
		e:       e,
		request: make(chan facadeMsg, 1),
		update:  make(chan any, 4096),
	}

	in := make(chan SearchRequest, 1)
	go func() {
		for req := range in {
			r := req
			f.request <- facadeMsg{req: &r}
		}
	}()

	go f.run(ctx)
	return in, f.update
}

// Cancel requests cancellation of any search currently in flight. The
// request channel cannot express this: every value sent there, a zero
// SearchRequest included, starts a search (of the initial position, for a
// zero request).
func (f *Facade) Cancel() {
	f.request <- facadeMsg{cancel: true}
}

func (f *Facade) run(ctx context.Context) {
	defer close(f.update)

	for msg := range f.request {
		if msg.cancel || msg.req == nil {
			continue // nothing active; Cancel of an idle façade is a no-op.
		}
		f.handle(ctx, *msg.req)
	}
}

func (f *Facade) handle(ctx context.Context, req SearchRequest) {
	position := req.Position
	if position == "" || position == "startpos" {
		position = fen.Initial
	}
	if err := f.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "facade: invalid position %v: %v", req.Position, err)
		return
	}

	opt := searchctl.Options{}
	if req.MaxDepth > 0 {
		opt.DepthLimit = lang.Some(req.MaxDepth)
	}
	if req.TimeMs > 0 {
		ms := time.Duration(req.TimeMs) * time.Millisecond
		opt.TimeControl = lang.Some(searchctl.TimeControl{White: ms, Black: ms})
	}

	out, err := f.e.Analyze(ctx, opt)
	if err != nil {
		logw.Errorf(ctx, "facade: analyze failed: %v", err)
		return
	}

	var last search.PV
	cancelled := false
	for {
		select {
		case pv, ok := <-out:
			if !ok {
				reason := ReasonDepth
				if cancelled {
					reason = ReasonCancelled
				} else if _, hasTime := opt.TimeControl.V(); hasTime {
					reason = ReasonTime
				}
				f.emitDone(last, reason)
				return
			}
			last = pv
			f.emitUpdate(pv)

		case msg := <-f.request:
			// A second request (or an explicit Cancel) preempts this one.
			cancelled = true
			_, _ = f.e.Halt(ctx)
			for range out {
				// Drain remaining PVs from the halted search without
				// publishing them; only the cancelled SearchDone matters.
			}
			f.emitDone(last, ReasonCancelled)

			if msg.req != nil {
				f.handle(ctx, *msg.req)
			}
			return
		}
	}
}

func (f *Facade) emitUpdate(pv search.PV) {
	var best board.Move
	if len(pv.Moves) > 0 {
		best = pv.Moves[0]
	}
	f.update <- SearchUpdate{Depth: pv.Depth, ScoreCP: int(pv.Score), BestMove: best, PV: pv.Moves}
}

func (f *Facade) emitDone(pv search.PV, reason Reason) {
	var best board.Move
	if len(pv.Moves) > 0 {
		best = pv.Moves[0]
	}
	f.update <- SearchDone{BestMove: best, ScoreCP: int(pv.Score), Reason: reason}
}
