package board_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zt = board.NewZobristTable(42)

func TestPseudoLegalMovesPawns(t *testing.T) {
	tests := []struct {
		name      string
		turn      board.Color
		pieces    []board.Placement
		enpassant board.Square
		expected  []string
	}{
		{
			"empty board except kings",
			board.White,
			kings(),
			board.NoSquare,
			nil,
		},
		{
			"push and double push",
			board.White,
			append(kings(), board.Placement{Square: board.E2, Color: board.White, Kind: board.Pawn}),
			board.NoSquare,
			[]string{"e2e3", "e2e4"},
		},
		{
			"obstructed with capture",
			board.White,
			append(kings(),
				board.Placement{Square: board.E2, Color: board.White, Kind: board.Pawn},
				board.Placement{Square: board.E3, Color: board.Black, Kind: board.Bishop},
				board.Placement{Square: board.D3, Color: board.Black, Kind: board.Knight},
			),
			board.NoSquare,
			[]string{"e2d3"},
		},
		{
			"promotion",
			board.White,
			append(kings(), board.Placement{Square: board.D7, Color: board.White, Kind: board.Pawn}),
			board.NoSquare,
			[]string{"d7d8q", "d7d8r", "d7d8b", "d7d8n"},
		},
		{
			"en passant",
			board.Black,
			append(kings(),
				board.Placement{Square: board.E4, Color: board.Black, Kind: board.Pawn},
				board.Placement{Square: board.D4, Color: board.White, Kind: board.Pawn},
			),
			board.D3,
			[]string{"e4e3", "e4d3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(zt, tt.pieces, tt.turn, board.NoCastling, tt.enpassant)
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.expected, pawnMoveStrings(pos))
		})
	}
}

func TestPseudoLegalMovesOfficers(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []board.Placement
		expected []string
	}{
		{
			"bishop partly obstructed",
			append(kings(),
				board.Placement{Square: board.G3, Color: board.White, Kind: board.Bishop},
				board.Placement{Square: board.F2, Color: board.Black, Kind: board.Rook},
				board.Placement{Square: board.E5, Color: board.Black, Kind: board.Rook},
			),
			[]string{"g3h2", "g3h4", "g3f4", "g3f2", "g3e5"},
		},
		{
			"rook blocked by own piece",
			append(kings(),
				board.Placement{Square: board.D3, Color: board.White, Kind: board.Rook},
				board.Placement{Square: board.D5, Color: board.White, Kind: board.Knight},
				board.Placement{Square: board.B3, Color: board.Black, Kind: board.Rook},
			),
			[]string{"d3d1", "d3d2", "d3c3", "d3d4", "d3b3", "d3e3", "d3f3", "d3g3", "d3h3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(zt, tt.pieces, board.White, board.NoCastling, board.NoSquare)
			require.NoError(t, err)

			actual := movesByPieceOn(pos, squareOfKind(pos, tt.pieces))
			assert.ElementsMatch(t, tt.expected, actual)
		})
	}
}

func TestCastling(t *testing.T) {
	base := []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.H1, Color: board.White, Kind: board.Rook},
		{Square: board.A1, Color: board.White, Kind: board.Rook},
		{Square: board.E8, Color: board.Black, Kind: board.King},
	}

	pos, err := board.NewPosition(zt, base, board.White, board.FullCastling, board.NoSquare)
	require.NoError(t, err)

	moves := castleMoveStrings(pos)
	assert.ElementsMatch(t, []string{"O-O", "O-O-O"}, moves)

	obstructed := append(append([]board.Placement{}, base...), board.Placement{Square: board.G1, Color: board.Black, Kind: board.Bishop})
	pos2, err := board.NewPosition(zt, obstructed, board.White, board.FullCastling, board.NoSquare)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"O-O-O"}, castleMoveStrings(pos2))
}

func TestMakeUnmakeRestoresHash(t *testing.T) {
	pieces := []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.E2, Color: board.White, Kind: board.Pawn},
		{Square: board.E7, Color: board.Black, Kind: board.Pawn},
	}
	pos, err := board.NewPosition(zt, pieces, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	before := pos.Hash()
	require.Equal(t, before, zt.Hash(pos))

	for _, m := range pos.LegalMoves() {
		u := pos.MakeMove(m)
		assert.Equal(t, pos.Hash(), zt.Hash(pos), "incremental hash diverged after %v", m)
		pos.UnmakeMove(m, u)
		assert.Equal(t, before, pos.Hash(), "unmake did not restore hash after %v", m)
	}
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	pieces := []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.E2, Color: board.White, Kind: board.Rook},
		{Square: board.E7, Color: board.Black, Kind: board.Rook},
	}
	pos, err := board.NewPosition(zt, pieces, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	for _, m := range pos.LegalMoves() {
		if m.From == board.E2 {
			assert.Equal(t, board.FileE, m.To.File(), "pinned rook must not move off the e-file: %v", m)
		}
	}
}

func kings() []board.Placement {
	return []board.Placement{
		{Square: board.A1, Color: board.White, Kind: board.King},
		{Square: board.A8, Color: board.Black, Kind: board.King},
	}
}

func pawnMoveStrings(pos *board.Position) []string {
	var out []string
	for _, m := range pos.PseudoLegalMoves() {
		if pos.At(m.From).Kind() == board.Pawn {
			out = append(out, m.String())
		}
	}
	sort.Strings(out)
	return out
}

func squareOfKind(pos *board.Position, placements []board.Placement) board.Square {
	for _, pl := range placements {
		if pl.Kind != board.King {
			return pl.Square
		}
	}
	return board.NoSquare
}

func movesByPieceOn(pos *board.Position, from board.Square) []string {
	var out []string
	for _, m := range pos.PseudoLegalMoves() {
		if m.From == from {
			out = append(out, m.String())
		}
	}
	return out
}

func castleMoveStrings(pos *board.Position) []string {
	var out []string
	for _, m := range pos.PseudoLegalMoves() {
		if m.IsCastle() {
			out = append(out, m.String())
		}
	}
	return out
}

func printMoves(ms []board.Move) string {
	var list []string
	for _, m := range ms {
		list = append(list, m.String())
	}
	return strings.Join(list, "\n")
}
