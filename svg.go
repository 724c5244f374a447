package chess

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVGArrow is an annotation arrow between two squares, or a circled
// square when From == To. Colors follow the PGN shape palette:
// 'G', 'R', 'Y' or 'B'.
type SVGArrow struct {
	From  Sq
	To    Sq
	Color byte
}

// SVGOptions control WriteSVG. The zero value draws an unannotated
// board of 360x360 pixels from White's point of view.
type SVGOptions struct {
	SquareSize  int      // pixels per square; 45 if zero
	Orientation Color    // color at the bottom of the diagram
	LastMove    Move     // highlighted if not the null move
	Arrows      []SVGArrow
}

var svgShapeColors = map[byte]string{
	'G': "#15781b",
	'R': "#882020",
	'Y': "#e68f00",
	'B': "#003088",
}

// WriteSVG renders the board as an SVG diagram with figurine glyphs
// and optional arrow and circle annotations.
func WriteSVG(w io.Writer, b Board, opts SVGOptions) {
	size := opts.SquareSize
	if size == 0 {
		size = 45
	}
	// Board coordinates to pixel centers, honoring orientation.
	center := func(sq Sq) (x, y int) {
		file, rank := sq.File(), sq.Rank()
		if opts.Orientation == White {
			return file*size + size/2, (7-rank)*size + size/2
		}
		return (7-file)*size + size/2, rank*size + size/2
	}

	canvas := svg.New(w)
	canvas.Start(8*size, 8*size)
	for sq := A1; sq <= H8; sq++ {
		x, y := center(sq)
		fill := "#f0d9b5"
		if DarkSquares.Has(sq) {
			fill = "#b58863"
		}
		if !opts.LastMove.IsDrop() && opts.LastMove.From != opts.LastMove.To &&
			(opts.LastMove.From == sq || opts.LastMove.To == sq) {
			fill = "#cdd26a"
		}
		canvas.Rect(x-size/2, y-size/2, size, size, "fill:"+fill)
	}
	for sq := A1; sq <= H8; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := center(sq)
		canvas.Text(x, y+size/3, string(figurines[p.Color][p.Role]),
			fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*4/5))
	}
	for _, a := range opts.Arrows {
		color, ok := svgShapeColors[a.Color]
		if !ok {
			color = svgShapeColors['G']
		}
		x1, y1 := center(a.From)
		if a.From == a.To {
			canvas.Circle(x1, y1, size*2/5,
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-opacity:0.7", color, size/10))
			continue
		}
		x2, y2 := center(a.To)
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-opacity:0.7;stroke-linecap:round", color, size/6))
		canvas.Circle(x2, y2, size/6, "fill:"+color+";fill-opacity:0.7")
	}
	canvas.End()
}
