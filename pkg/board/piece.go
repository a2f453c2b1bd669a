package board

// Kind is a piece type without color: pawn, knight, bishop, rook, queen, king.
type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	ZeroKind Kind = 1
	NumKinds Kind = 7 // NoKind..King, inclusive range for table sizing
)

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// ParseKind parses a piece letter, case-insensitively, into a colorless Kind.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

// Piece is a board cell: the zero value is Empty. The sign encodes color (positive
// is White, negative is Black) and the magnitude encodes the Kind, per spec.md's
// data model for piece encoding. A small signed integer distinguishes all twelve
// piece-types and empty in O(1).
type Piece int8

const Empty Piece = 0

// NewPiece combines a color and kind into a board cell.
func NewPiece(c Color, k Kind) Piece {
	return Piece(int8(c) * int8(k))
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

func (p Piece) Color() Color {
	switch {
	case p > 0:
		return White
	case p < 0:
		return Black
	default:
		return NoColor
	}
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	k := p.Kind()
	if p.Color() == White {
		switch k {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return k.String()
}
