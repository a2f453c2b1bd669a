// Package svg renders a board.Position as an SVG diagram, for dumping a
// position to a file during debugging (cmd/monarch's -svg flag).
package svg

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/corvidlabs/monarch/pkg/board"
)

const squareSize = 60
const boardSize = 8 * squareSize

var (
	lightSquare = "fill:#eeeed2"
	darkSquare  = "fill:#769656"
	whitePiece  = "fill:#ffffff;stroke:#000000;stroke-width:1;font-family:serif;font-size:36px;text-anchor:middle"
	blackPiece  = "fill:#000000;font-family:serif;font-size:36px;text-anchor:middle"
)

// Render writes an SVG diagram of pos to w, white at the bottom, matching the
// orientation of the console driver's board dump.
func Render(w io.Writer, pos *board.Position) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)
	defer canvas.End()

	for rank := board.Rank1; rank <= board.Rank8; rank++ {
		for file := board.FileA; file <= board.FileH; file++ {
			sq := board.NewSquare(file, rank)

			x := int(file) * squareSize
			y := (7 - int(rank)) * squareSize

			style := lightSquare
			if (int(file)+int(rank))%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			if p := pos.At(sq); !p.IsEmpty() {
				style := whitePiece
				if p.Color() == board.Black {
					style = blackPiece
				}
				canvas.Text(x+squareSize/2, y+squareSize-squareSize/5, glyph(p), style)
			}
		}
	}
}

// glyph returns the Unicode chess symbol for p, white and black pieces
// using the outline and filled glyph sets respectively.
func glyph(p board.Piece) string {
	white := [...]string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := [...]string{"", "♟", "♞", "♝", "♜", "♛", "♚"}

	k := p.Kind()
	if p.Color() == board.White {
		return white[k]
	}
	return black[k]
}

// RenderString is a convenience wrapper around Render for callers that want
// the SVG document as a string rather than writing directly.
func RenderString(pos *board.Position) string {
	var sb stringWriter
	Render(&sb, pos)
	return sb.String()
}

type stringWriter struct {
	buf []byte
}

func (s *stringWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *stringWriter) String() string {
	return string(s.buf)
}
