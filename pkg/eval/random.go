package eval

import (
	"math/rand"

	"github.com/corvidlabs/monarch/pkg/board"
)

// Noise wraps an Evaluator with a small amount of randomness, so repeated
// games against the same opponent don't always follow an identical line.
// limit bounds the centipawns added or removed, in [-limit/2; limit/2]. A
// zero limit disables noise entirely.
type Noise struct {
	Evaluator
	rand  *rand.Rand
	limit int
}

func NewNoise(eval Evaluator, limit int, seed int64) Noise {
	return Noise{
		Evaluator: eval,
		limit:     limit,
		rand:      rand.New(rand.NewSource(seed)),
	}
}

func (n Noise) Evaluate(pos *board.Position, turn board.Color) Score {
	base := n.Evaluator.Evaluate(pos, turn)
	if n.limit <= 0 {
		return base
	}
	return base + Score(n.rand.Intn(n.limit)-n.limit/2)
}
