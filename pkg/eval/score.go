package eval

import "fmt"

// Score is a signed evaluation in centipawns, positive favoring the side
// whose perspective it is from. Mate scores are encoded relative to Mate so
// that shorter mates always outscore longer ones regardless of search path.
type Score int32

const (
	// Mate is the magnitude of the score of a position with the side to move
	// already checkmated (that score is -Mate), before ply adjustment;
	// mate_in(n) = Mate - n.
	Mate Score = 30000

	NegInf Score = -1 << 30
	Inf    Score = 1 << 30

	Draw Score = 0
)

func (s Score) String() string {
	if n, ok := s.MateDistance(); ok {
		if n >= 0 {
			return fmt.Sprintf("mate %d", (n+1)/2)
		}
		return fmt.Sprintf("mate %d", (n-1)/2)
	}
	return fmt.Sprintf("%d", int32(s))
}

// IsMateScore returns true iff s represents a forced mate (for either side).
func (s Score) IsMateScore() bool {
	return s > Mate-1000 || s < -Mate+1000
}

// MateDistance returns the number of plies to mate (positive: we deliver it;
// negative: we are mated) if s is a mate score.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s > Mate-1000:
		return int(Mate - s), true
	case s < -Mate+1000:
		return -int(Mate + s), true
	default:
		return 0, false
	}
}

// Negate flips perspective, as negamax requires at every ply.
func (s Score) Negate() Score {
	return -s
}

// IncrementMateDistance adjusts a mate score by one ply, as a score is
// returned up through a recursive negamax call. Non-mate scores pass through
// unchanged. This is what lets a TT entry computed at one ply be reused,
// correctly reinterpreted, at another.
func IncrementMateDistance(s Score) Score {
	switch {
	case s > Mate-1000:
		return s - 1
	case s < -Mate+1000:
		return s + 1
	default:
		return s
	}
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func Crop(s, lo, hi Score) Score {
	switch {
	case s < lo:
		return lo
	case s > hi:
		return hi
	default:
		return s
	}
}
