// Package eval contains static position evaluation: material, piece-square
// tables, mobility, and the bishop-pair bonus described in spec.md §4.D.
// Evaluation never returns a mate score — mate is communicated only by
// search — and it is stateless: draw detection (repetition, fifty-move,
// insufficient material) is the board/search's responsibility, not eval's.
package eval

import "github.com/corvidlabs/monarch/pkg/board"

// Evaluator is a static position evaluator, returning a Score in centipawns
// from the side-to-move's perspective.
type Evaluator interface {
	Evaluate(pos *board.Position, turn board.Color) Score
}

// Material weights, in centipawns, per spec.md §4.D.
const (
	PawnValue   Score = 100
	KnightValue Score = 320
	BishopValue Score = 330
	RookValue   Score = 500
	QueenValue  Score = 900
)

// NominalValue returns the material value of a piece kind; zero for NoKind
// and King (the king's value is never summed into material balance).
func NominalValue(k board.Kind) Score {
	switch k {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	default:
		return 0
	}
}

// mobilityWeight scales the (pseudo-legal move count) mobility term; kept
// modest per spec.md's "optional light term" guidance.
const mobilityWeight Score = 2

const bishopPairBonus Score = 30

// Standard is the default Evaluator: material + piece-square tables +
// mobility + bishop pair, blended between middlegame and endgame king tables
// by remaining non-pawn material.
type Standard struct{}

// Evaluate returns the centipawn score of pos from turn's perspective.
func (Standard) Evaluate(pos *board.Position, turn board.Color) Score {
	white := evaluateSide(pos, board.White)
	black := evaluateSide(pos, board.Black)

	score := white - black
	if turn == board.Black {
		score = -score
	}
	return score
}

func evaluateSide(pos *board.Position, us board.Color) Score {
	var material, pst, mobility Score
	var bishops int
	phase := NonPawnMaterial(pos, us) + NonPawnMaterial(pos, us.Opponent())

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := pos.At(sq)
		if p.IsEmpty() || p.Color() != us {
			continue
		}
		k := p.Kind()
		material += NominalValue(k)
		pst += pieceSquareValue(k, sq, us, phase)
		if k == board.Bishop {
			bishops++
		}
	}
	if bishops >= 2 {
		material += bishopPairBonus
	}

	mobility = Score(len(pos.PseudoLegalMovesFor(us))) * mobilityWeight

	return material + pst + mobility
}

// NonPawnMaterial sums the material value of every non-pawn, non-king piece
// of the given color; used both for eval's midgame/endgame PST blend and by
// search's endgame depth rule (spec.md §4.E) to classify a position as
// endgame, so the two share one definition of "non-pawn material".
func NonPawnMaterial(pos *board.Position, c board.Color) Score {
	var total Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := pos.At(sq)
		if p.IsEmpty() || p.Color() != c {
			continue
		}
		if k := p.Kind(); k != board.Pawn && k != board.King {
			total += NominalValue(k)
		}
	}
	return total
}

// endgameThreshold is the boundary (in centipawns of non-pawn material of
// both sides combined) used by eval's king PST blend: at or below it only the
// endgame king table applies, at or above twice it only the middlegame table.
// It is a fixed constant. search.EndgameNonPawnMaterial, the default
// threshold of the TT's endgame depth rule (overridable per search through
// search.Context.EndgameNonPawnMaterial), has the same value.
const endgameThreshold Score = 1300

func pieceSquareValue(k board.Kind, sq board.Square, c board.Color, phase Score) Score {
	idx := int(sq)
	if c == board.Black {
		idx = mirror(idx)
	}

	if k == board.King {
		mg := kingMidgamePST[idx]
		eg := kingEndgamePST[idx]
		if phase <= endgameThreshold {
			return Score(eg)
		}
		if phase >= 2*endgameThreshold {
			return Score(mg)
		}
		// Linear blend between the two thresholds.
		span := Score(2*endgameThreshold - endgameThreshold)
		w := phase - endgameThreshold
		return Score(mg)*w/span + Score(eg)*(span-w)/span
	}

	switch k {
	case board.Pawn:
		return Score(pawnPST[idx])
	case board.Knight:
		return Score(knightPST[idx])
	case board.Bishop:
		return Score(bishopPST[idx])
	case board.Rook:
		return Score(rookPST[idx])
	case board.Queen:
		return Score(queenPST[idx])
	default:
		return 0
	}
}

// mirror flips a square index vertically, for Black's piece-square lookup
// (the tables are indexed from White's perspective, A1=0 .. H8=63).
func mirror(sq int) int {
	return sq ^ 56
}
