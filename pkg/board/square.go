package board

import "fmt"

// File is a board column, A through H.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	ZeroFile File = 0
	NumFiles File = 8
)

func (f File) IsValid() bool {
	return FileA <= f && f < NumFiles
}

func (f File) String() string {
	return string(rune('A' + f))
}

// Rank is a board row, 1 through 8. Rank1 is White's first rank.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8

	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func (r Rank) IsValid() bool {
	return Rank1 <= r && r < NumRanks
}

func (r Rank) String() string {
	return fmt.Sprintf("%d", r+1)
}

// Square is an index [0,63] into the mailbox board. File = sq & 7, Rank = sq >> 3.
// Square 0 is A1; square 63 is H8. This matches spec.md's "rank 0 is White's first rank".
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	ZeroSquare Square = 0
	NumSquares Square = 64

	// NoSquare is the sentinel for "no square", used for the en passant target and unset king squares.
	NoSquare Square = -1
)

// NewSquare constructs a square from file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)<<3 | int8(f))
}

func (s Square) File() File {
	return File(s & 7)
}

func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

func (s Square) IsValid() bool {
	return ZeroSquare <= s && s < NumSquares
}

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// ParseSquare parses a square from its two algebraic characters, e.g. 'e','4'.
func ParseSquare(file, rank rune) (Square, error) {
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("invalid file: %q", file)
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("invalid rank: %q", rank)
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}

// ParseSquareStr parses a square from a two-character string, e.g. "e4".
func ParseSquareStr(str string) (Square, error) {
	if len(str) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	return ParseSquare(rune(str[0]), rune(str[1]))
}

// offset returns the square reached from s by (df,dr), or (NoSquare, false) if off-board.
func offset(s Square, df, dr int) (Square, bool) {
	f := int(s.File()) + df
	r := int(s.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}
