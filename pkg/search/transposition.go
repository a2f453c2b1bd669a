package search

import (
	"fmt"
	"math/bits"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
)

// Bound classifies a TranspositionTable entry's score relative to the window
// it was proven under.
type Bound uint8

const (
	Exact Bound = iota
	Lower           // a beta cutoff: the true score is >= the stored score
	Upper           // a fail-low: the true score is <= the stored score
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "?"
	}
}

// Entry is one transposition table record. AlphaUsed/BetaUsed is this
// project's distinctive addition over a plain (bound, score) cache: per
// spec.md §4.E, a cutoff proved against one window may not be reusable under
// a narrower one, so the table records exactly which window it was proved
// under and a probe at a different window is only trusted when that window
// is no looser than the one recorded.
type Entry struct {
	Depth     int
	Score     eval.Score
	Bound     Bound
	AlphaUsed eval.Score
	BetaUsed  eval.Score
	Best      board.Move
}

// TranspositionTable caches search results keyed by position hash. Must only
// be used by a single search at a time; spec.md's concurrency model gives
// the engine's one worker exclusive ownership.
type TranspositionTable interface {
	// Load returns the raw entry for hash, for move-ordering hints, without
	// applying probe-window discipline.
	Load(hash board.Hash) (Entry, bool)
	// Probe returns a usable cutoff score for hash at depth under window
	// [alpha, beta], applying the bound/window discipline of spec.md §4.E.
	// When endgame is true, spec.md's endgame depth rule applies: only an
	// Exact entry at exactly this depth is trusted, so the shortest forced
	// mate is chosen over an arbitrary deeper-proved one.
	Probe(hash board.Hash, depth int, alpha, beta eval.Score, endgame bool) (eval.Score, bool)
	// Store records a search result, subject to the table's replacement
	// policy (deeper entries are retained over shallower ones).
	Store(hash board.Hash, depth int, score eval.Score, bound Bound, alphaUsed, betaUsed eval.Score, best board.Move)

	Size() uint64
	Used() float64
}

// table is a fixed-size, power-of-two open-addressed transposition table
// with an always-replace-unless-deeper policy. Single-threaded; spec.md's
// concurrency model gives the search worker exclusive ownership, so no
// atomics are needed (unlike a Lazy-SMP table, explicitly out of scope).
type table struct {
	slots []slot
	mask  uint64
	used  int
}

type slot struct {
	hash  board.Hash
	valid bool
	entry Entry
}

// TranspositionTableFactory constructs a TranspositionTable sized from a byte
// budget; lets the engine swap in a different implementation without
// depending on the concrete table type.
type TranspositionTableFactory func(size uint64) TranspositionTable

// NewTranspositionTable allocates a table sized from a byte budget, rounded
// down to the nearest power of two entry count.
func NewTranspositionTable(size uint64) TranspositionTable {
	const entrySize = 64
	n := uint64(1)
	if size >= entrySize {
		n = uint64(1) << (63 - bits.LeadingZeros64(size/entrySize))
	}
	return &table{
		slots: make([]slot, n),
		mask:  n - 1,
	}
}

func (t *table) index(hash board.Hash) uint64 {
	return uint64(hash) & t.mask
}

func (t *table) Load(hash board.Hash) (Entry, bool) {
	s := &t.slots[t.index(hash)]
	if s.valid && s.hash == hash {
		return s.entry, true
	}
	return Entry{}, false
}

func (t *table) Probe(hash board.Hash, depth int, alpha, beta eval.Score, endgame bool) (eval.Score, bool) {
	e, ok := t.Load(hash)
	if !ok {
		return 0, false
	}
	if endgame {
		if e.Depth != depth || e.Bound != Exact {
			return 0, false
		}
	} else if e.Depth < depth {
		return 0, false
	}

	switch e.Bound {
	case Exact:
		if alpha >= e.AlphaUsed && beta <= e.BetaUsed {
			return e.Score, true
		}
	case Lower:
		if beta <= e.BetaUsed && e.Score >= beta {
			return e.Score, true
		}
	case Upper:
		if alpha >= e.AlphaUsed && e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}

func (t *table) Store(hash board.Hash, depth int, score eval.Score, bound Bound, alphaUsed, betaUsed eval.Score, best board.Move) {
	idx := t.index(hash)
	s := &t.slots[idx]

	if s.valid && s.hash == hash && s.entry.Depth > depth {
		return // retain the deeper, already-present entry
	}
	if !s.valid {
		t.used++
	}

	s.hash = hash
	s.valid = true
	s.entry = Entry{
		Depth:     depth,
		Score:     score,
		Bound:     bound,
		AlphaUsed: alphaUsed,
		BetaUsed:  betaUsed,
		Best:      best,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * 64
}

func (t *table) Used() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.used) / float64(len(t.slots))
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%vB @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a no-op TranspositionTable, useful for correctness
// tests that want to exercise search without TT-induced cutoffs.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Load(board.Hash) (Entry, bool) { return Entry{}, false }
func (NoTranspositionTable) Probe(board.Hash, int, eval.Score, eval.Score, bool) (eval.Score, bool) {
	return 0, false
}
func (NoTranspositionTable) Store(board.Hash, int, eval.Score, Bound, eval.Score, eval.Score, board.Move) {
}
func (NoTranspositionTable) Size() uint64   { return 0 }
func (NoTranspositionTable) Used() float64  { return 0 }
