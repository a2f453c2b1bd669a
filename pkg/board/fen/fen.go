// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidlabs/monarch/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Board, using zt to seed the position's
// Zobrist hash.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(zt *board.ZobristTable, rec string) (*board.Board, error) {
	// A FEN record contains six space-separated fields.

	parts := strings.Fields(strings.TrimSpace(rec))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", rec)
	}

	// (1) Piece placement, from White's perspective: rank 8 down to rank 1,
	// file a through file h within each rank.

	var placements []board.Placement

	rank := board.Rank8
	file := board.FileA
	for _, r := range parts[0] {
		switch {
		case r == '/':
			if file != board.NumFiles {
				return nil, fmt.Errorf("invalid rank in FEN: %q", rec)
			}
			rank--
			file = board.FileA

		case unicode.IsDigit(r):
			file += board.File(r - '0')

		case unicode.IsLetter(r):
			color, kind, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, rec)
			}
			if file >= board.NumFiles || !rank.IsValid() {
				return nil, fmt.Errorf("piece off board in FEN: %q", rec)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Color:  color,
				Kind:   kind,
			})
			file++

		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", r, rec)
		}
	}
	if rank != board.Rank1 || file != board.NumFiles {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", rec)
	}

	// (2) Active color.

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", rec)
	}

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", rec)
	}

	// (4) En passant target square.

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q", rec)
		}
		ep = sq
	}

	// (5) Halfmove clock (plies since the last pawn move or capture).

	noprogress, err := strconv.Atoi(parts[4])
	if err != nil || noprogress < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", rec)
	}

	// (6) Fullmove number, starting at 1.

	fullmoves, err := strconv.Atoi(parts[5])
	if err != nil || fullmoves < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", rec)
	}

	pos, err := board.NewPosition(zt, placements, turn, castling, ep)
	if err != nil {
		return nil, fmt.Errorf("invalid position in FEN %q: %w", rec, err)
	}

	b := board.NewBoard(zt, pos, fullmoves)
	b.SetNoProgress(noprogress)
	return b, nil
}

// Encode renders a Board in FEN notation.
func Encode(b *board.Board) string {
	pos := b.Position()

	var sb strings.Builder
	for r := board.Rank8; r >= board.Rank1; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			p := pos.At(board.NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > board.Rank1 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = strings.ToLower(sq.String())
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(b.Turn()), pos.Castling(), ep, b.NoProgress(), b.FullMoves())
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastling, true
	}
	var ret board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSide
		case 'Q':
			ret |= board.WhiteQueenSide
		case 'k':
			ret |= board.BlackKingSide
		case 'q':
			ret |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return board.NoColor, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Kind, bool) {
	kind, ok := board.ParseKind(r)
	if !ok {
		return board.NoColor, board.NoKind, false
	}
	if unicode.IsUpper(r) {
		return board.White, kind, true
	}
	return board.Black, kind, true
}

func printPiece(p board.Piece) rune {
	return []rune(p.String())[0]
}
