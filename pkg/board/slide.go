package board

// offsetDir is a (file, rank) step direction or knight/king jump.
type offsetDir struct {
	df, dr int
}

var (
	rookDirections = []offsetDir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []offsetDir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]offsetDir{}, rookDirections...), bishopDirections...)

	knightOffsets = []offsetDir{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = queenDirections
)

// rayMoves appends the ray-cast pseudo-legal moves from sq in the given directions:
// advance until the edge of the board, stop before a friendly piece (without adding
// that square), and stop on an enemy piece (adding the capture). Grounded on
// zurichess's square-offset ray-casting approach to sliding-piece generation.
func (p *Position) rayMoves(sq Square, dirs []offsetDir, moves []Move) []Move {
	us := p.board[sq].Color()
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := offset(cur, d.df, d.dr)
			if !ok {
				break
			}
			cur = next
			target := p.board[cur]
			if target.IsEmpty() {
				moves = append(moves, Move{From: sq, To: cur})
				continue
			}
			if target.Color() != us {
				moves = append(moves, Move{From: sq, To: cur})
			}
			break
		}
	}
	return moves
}

// rayAttacked returns true iff, ray-casting from sq along dirs, the first piece
// encountered belongs to `by` and has one of the given kinds.
func (p *Position) rayAttacked(sq Square, dirs []offsetDir, by Color, kinds ...Kind) bool {
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := offset(cur, d.df, d.dr)
			if !ok {
				break
			}
			cur = next
			target := p.board[cur]
			if target.IsEmpty() {
				continue
			}
			if target.Color() == by {
				for _, k := range kinds {
					if target.Kind() == k {
						return true
					}
				}
			}
			break
		}
	}
	return false
}

// stepAttacked returns true iff a piece of the given color and kind occupies one
// of the single-step offsets from sq (used for knight and king attacks).
func (p *Position) stepAttacked(sq Square, offsets []offsetDir, by Color, kind Kind) bool {
	for _, d := range offsets {
		next, ok := offset(sq, d.df, d.dr)
		if !ok {
			continue
		}
		target := p.board[next]
		if target.Color() == by && target.Kind() == kind {
			return true
		}
	}
	return false
}

// pawnAttacked returns true iff a pawn of color `by` attacks sq.
func (p *Position) pawnAttacked(sq Square, by Color) bool {
	dr := -by.pawnDir()
	for _, df := range [2]int{-1, 1} {
		next, ok := offset(sq, df, dr)
		if !ok {
			continue
		}
		target := p.board[next]
		if target.Color() == by && target.Kind() == Pawn {
			return true
		}
	}
	return false
}
