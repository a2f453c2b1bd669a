package search_test

import (
	"math/rand"
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/corvidlabs/monarch/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableSize(t *testing.T) {
	// Size rounds down to the nearest power of two entry count.
	tt := search.NewTranspositionTable(0x1000)
	assert.Equal(t, uint64(0x1000), tt.Size())

	tt2 := search.NewTranspositionTable(0x1f00)
	assert.Equal(t, uint64(0x1000), tt2.Size())
}

func TestTranspositionTableLoadStore(t *testing.T) {
	tt := search.NewTranspositionTable(0x10000)
	h := board.Hash(rand.Uint64())

	_, ok := tt.Load(h)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	tt.Store(h, 5, eval.Score(20), search.Exact, eval.NegInf, eval.Inf, m)

	e, ok := tt.Load(h)
	assert.True(t, ok)
	assert.Equal(t, 5, e.Depth)
	assert.Equal(t, eval.Score(20), e.Score)
	assert.Equal(t, search.Exact, e.Bound)
	assert.Equal(t, m, e.Best)

	_, ok = tt.Load(h ^ 0xff0000)
	assert.False(t, ok)
}

func TestTranspositionTableReplacement(t *testing.T) {
	tt := search.NewTranspositionTable(0x10000)
	h := board.Hash(rand.Uint64())
	m := board.Move{From: board.E2, To: board.E4}

	tt.Store(h, 4, eval.Score(5), search.Exact, eval.NegInf, eval.Inf, m)
	tt.Store(h, 2, eval.Score(99), search.Exact, eval.NegInf, eval.Inf, m) // shallower: ignored

	e, ok := tt.Load(h)
	assert.True(t, ok)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, eval.Score(5), e.Score)

	tt.Store(h, 6, eval.Score(7), search.Exact, eval.NegInf, eval.Inf, m) // deeper: replaces

	e, ok = tt.Load(h)
	assert.True(t, ok)
	assert.Equal(t, 6, e.Depth)
	assert.Equal(t, eval.Score(7), e.Score)
}

func TestTranspositionTableProbeWindowDiscipline(t *testing.T) {
	tt := search.NewTranspositionTable(0x10000)
	h := board.Hash(rand.Uint64())
	m := board.Move{From: board.E2, To: board.E4}

	// Proved exact under a narrow window [10, 20].
	tt.Store(h, 3, eval.Score(15), search.Exact, eval.Score(10), eval.Score(20), m)

	// A probe under that same (or a narrower) window may reuse it...
	score, ok := tt.Probe(h, 3, eval.Score(10), eval.Score(20), false)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(15), score)

	// ...but a probe under a wider window asks for more than this entry
	// proved and must not be trusted.
	_, ok = tt.Probe(h, 3, eval.Score(5), eval.Score(25), false)
	assert.False(t, ok)

	// A lower-bound (beta cutoff) entry is only reusable when the stored
	// score still clears the probing beta.
	tt.Store(h, 3, eval.Score(50), search.Lower, eval.Score(10), eval.Score(20), m)
	score, ok = tt.Probe(h, 3, eval.Score(0), eval.Score(20), false)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(50), score)

	_, ok = tt.Probe(h, 3, eval.Score(0), eval.Score(60), false)
	assert.False(t, ok)
}

func TestTranspositionTableEndgameDepthRule(t *testing.T) {
	tt := search.NewTranspositionTable(0x10000)
	h := board.Hash(rand.Uint64())
	m := board.Move{From: board.E2, To: board.E4}

	tt.Store(h, 3, eval.Score(15), search.Exact, eval.NegInf, eval.Inf, m)

	// Outside the endgame, a deeper stored depth is still reusable.
	score, ok := tt.Probe(h, 2, eval.NegInf, eval.Inf, false)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(15), score)

	// In the endgame, only an exact match at the requested depth counts, so
	// the shortest forced mate is never shadowed by a deeper-proved cutoff.
	_, ok = tt.Probe(h, 2, eval.NegInf, eval.Inf, true)
	assert.False(t, ok)

	score, ok = tt.Probe(h, 3, eval.NegInf, eval.Inf, true)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(15), score)
}
