package board

import (
	"fmt"
	"strings"
)

// Flag distinguishes the small number of moves whose application needs special
// handling beyond "piece goes from From to To". Captures are deliberately NOT a
// flag: whether a move captures is inferred from the occupancy of To (or, for
// en passant, from the flag itself), per spec.md's Move encoding.
type Flag uint8

const (
	Normal Flag = iota
	DoublePush
	EnPassant
	CastleKing
	CastleQueen
)

// Move encodes a pseudo-legal or legal chess move. Promotion is NoKind unless the
// move promotes a pawn, in which case it holds the desired piece kind.
type Move struct {
	From, To  Square
	Promotion Kind
	Flag      Flag
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true iff the move is a castle.
func (m Move) IsCastle() bool {
	return m.Flag == CastleKing || m.Flag == CastleQueen
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsZero returns true iff this is the zero-value move (no move / null move).
func (m Move) IsZero() bool {
	return m == Move{}
}

// String renders the move in the wire encoding of spec.md §6: long algebraic
// coordinate notation for ordinary moves ("e2e4", "e7e8q"), and "O-O"/"O-O-O"
// for castling.
func (m Move) String() string {
	switch m.Flag {
	case CastleKing:
		return "O-O"
	case CastleQueen:
		return "O-O-O"
	}
	from, to := strings.ToLower(m.From.String()), strings.ToLower(m.To.String())
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", from, to, m.Promotion)
	}
	return fmt.Sprintf("%v%v", from, to)
}

// ParseMove parses a move in pure algebraic coordinate notation, e.g. "e2e4" or
// "e7e8q". It does not resolve castling/en-passant flags; callers match the
// parsed (from, to, promotion) against a generated legal move to recover those.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: wrong length", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: from: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: to: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParseKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid move %q: bad promotion", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}
	return Move{From: from, To: to}, nil
}

// FormatMoves renders a move list space-separated.
func FormatMoves(moves []Move) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
