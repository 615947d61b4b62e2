package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestSVGStartPosition(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, board.NewStartBoard(), DefaultOptions()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") {
		t.Errorf("output does not start with an XML header")
	}
	if n := strings.Count(out, "<rect"); n != 64 {
		t.Errorf("got %d squares, want 64", n)
	}
	if n := strings.Count(out, "<circle"); n != 32 {
		t.Errorf("got %d pieces, want 32", n)
	}
	if !strings.Contains(out, `viewBox="0 0 360 360"`) {
		t.Errorf("missing viewBox for 45px squares")
	}
}

func TestBitboardSVGMarksSquares(t *testing.T) {
	opts := DefaultOptions()
	var buf bytes.Buffer
	if err := BitboardSVG(&buf, board.Rank2|board.Rank7, opts); err != nil {
		t.Fatalf("BitboardSVG: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, hex(opts.Mark)); n != 16 {
		t.Errorf("got %d marked squares, want 16", n)
	}
	if strings.Contains(out, "<circle") {
		t.Errorf("bitboard diagram should not draw pieces")
	}
}

func TestSVGRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil board")
	}
	opts := DefaultOptions()
	opts.SquareSize = 0
	if err := SVG(&buf, board.NewBoard(), opts); err == nil {
		t.Error("expected error for zero square size")
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.SquareSize = 20

	var buf bytes.Buffer
	if err := PNG(&buf, board.NewBoard(), opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 160 {
		t.Fatalf("image is %dx%d, want 160x160", b.Dx(), b.Dy())
	}

	check := func(x, y int, want color.RGBA) {
		t.Helper()
		got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) {
			t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
		}
	}

	check(10, 150, opts.Dark)  // a1
	check(30, 150, opts.Light) // b1
	check(150, 10, opts.Dark)  // h8
}
