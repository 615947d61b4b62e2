// Package render draws boards and bitboards as SVG or PNG diagrams for
// debugging decoded positions.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/hailam/chesscore/internal/board"
)

// Options controls the diagram layout and palette.
type Options struct {
	SquareSize int            // Pixels per square
	Light      color.RGBA     // Light squares
	Dark       color.RGBA     // Dark squares
	Mark       color.RGBA     // Highlighted squares
	Marks      board.Bitboard // Squares to highlight
}

// DefaultOptions returns 45px squares in a brown palette.
func DefaultOptions() Options {
	return Options{
		SquareSize: 45,
		Light:      colornames.Wheat,
		Dark:       colornames.Peru,
		Mark:       colornames.Gold,
	}
}

// Piece disc radius as a fraction of the square size, by piece type.
var pieceRadius = [6]float64{0.22, 0.30, 0.30, 0.34, 0.38, 0.42}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// squareOrigin returns the top-left pixel of sq; rank 8 is drawn at the top.
func squareOrigin(sq board.Square, size int) (x, y int) {
	rank, file := sq.Coords()
	return file * size, (7 - rank) * size
}

func (o Options) validate() error {
	if o.SquareSize <= 0 {
		return fmt.Errorf("render: square size %d must be positive", o.SquareSize)
	}
	return nil
}

func drawSquares(canvas *svg.SVG, opts Options) {
	size := opts.SquareSize
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := squareOrigin(sq, size)
		fill := opts.Light
		if (sq.Rank()+sq.File())%2 == 0 {
			fill = opts.Dark
		}
		if opts.Marks.IsSet(sq) {
			fill = opts.Mark
		}
		canvas.Rect(x, y, size, size, fmt.Sprintf(`fill="%s"`, hex(fill)))
	}
}

func drawPieces(canvas *svg.SVG, b *board.Board, size int) {
	for c := board.White; c <= board.Black; c++ {
		fill, stroke := colornames.White, colornames.Black
		if c == board.Black {
			fill, stroke = colornames.Black, colornames.White
		}
		for pt := board.Pawn; pt <= board.King; pt++ {
			letter := board.NewPiece(pt, c).String()
			r := int(pieceRadius[pt] * float64(size))
			for _, sq := range b.Pieces(c, pt).Squares() {
				x, y := squareOrigin(sq, size)
				cx, cy := x+size/2, y+size/2
				canvas.Circle(cx, cy, r,
					fmt.Sprintf(`fill="%s"`, hex(fill)),
					fmt.Sprintf(`stroke="%s"`, hex(stroke)),
					`stroke-width="2"`)
				canvas.Text(cx, cy+size/8, letter,
					fmt.Sprintf(`fill="%s"`, hex(stroke)),
					`text-anchor="middle"`,
					fmt.Sprintf(`font-size="%d"`, size/3))
			}
		}
	}
}

func writeSVG(w io.Writer, b *board.Board, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	size := 8 * opts.SquareSize
	canvas := svg.New(&buf)
	canvas.Startview(size, size, 0, 0, size, size)
	drawSquares(canvas, opts)
	if b != nil {
		drawPieces(canvas, b, opts.SquareSize)
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

// SVG writes a diagram of b to w.
func SVG(w io.Writer, b *board.Board, opts Options) error {
	if b == nil {
		return fmt.Errorf("render: nil board")
	}
	return writeSVG(w, b, opts)
}

// BitboardSVG writes a diagram with the squares of bb highlighted.
func BitboardSVG(w io.Writer, bb board.Bitboard, opts Options) error {
	opts.Marks = bb
	return writeSVG(w, nil, opts)
}

// Image rasterizes the diagram of b. Text labels are not rasterized;
// pieces appear as discs sized by piece type.
func Image(b *board.Board, opts Options) (*image.RGBA, error) {
	var buf bytes.Buffer
	if err := SVG(&buf, b, opts); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}

	size := 8 * opts.SquareSize
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// PNG writes a rasterized diagram of b to w.
func PNG(w io.Writer, b *board.Board, opts Options) error {
	img, err := Image(b, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
