package pbm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

var (
	errTooManyPixels = errors.New("pbm: more pixels than fit the image")
	errShortImage    = errors.New("pbm: not every pixel was written")
)

// Writer writes a P4 bitmap one pixel at a time, in row-major order. The
// header is written when the Writer is created and every row is flushed to a
// whole number of bytes before the next one starts, so the output is valid as
// soon as the final pixel has been written.
type Writer struct {
	w             io.Writer
	width, height int

	bit     uint8
	byteAcc uint8
	x, y    int
}

// NewWriter validates the dimensions, writes the P4 header to w and returns a
// Writer expecting exactly width*height pixels. Nothing is written to w if
// the dimensions are invalid.
func NewWriter(w io.Writer, width, height int) (*Writer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("pbm: invalid dimensions %dx%d", width, height)
	}

	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", magic, width, height); err != nil {
		return nil, err
	}

	return &Writer{
		w:      w,
		width:  width,
		height: height,
		bit:    0x80,
	}, nil
}

// WritePixel appends the next pixel in row-major order, black meaning a set
// bit. A byte is emitted after every eighth pixel of a row and, whatever the
// bit position, after the last pixel of a row.
func (e *Writer) WritePixel(black bool) error {
	if e.y == e.height {
		return errTooManyPixels
	}

	if black {
		e.byteAcc |= e.bit
	}
	e.bit >>= 1
	e.x++

	if e.bit == 0 || e.x == e.width {
		if err := e.flush(); err != nil {
			return err
		}
	}
	if e.x == e.width {
		e.x = 0
		e.y++
	}

	return nil
}

func (e *Writer) flush() error {
	if _, err := e.w.Write([]byte{e.byteAcc}); err != nil {
		return err
	}
	e.bit = 0x80
	e.byteAcc = 0
	return nil
}

// Close verifies every pixel has been written. The final row was already
// flushed by WritePixel so there is nothing to emit; the underlying writer is
// left open.
func (e *Writer) Close() error {
	if e.y != e.height {
		return errShortImage
	}
	return nil
}

// Encode writes the Image m to w in binary PBM format. Images that are not
// already two-color paletted are quantized down to two colors first; the
// darkest color maps to black.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()

	pm, _ := m.(image.PalettedImage)
	if pm != nil {
		if cp, ok := pm.ColorModel().(color.Palette); !ok || len(cp) > 2 {
			pm = nil
		}
	}
	if pm == nil {
		q := quantize.MedianCutQuantizer{}
		dst := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 2), m))
		draw.Draw(dst, b, m, b.Min, draw.Src)
		pm = dst
	}

	e, err := NewWriter(w, b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	black := blackIndex(pm.ColorModel().(color.Palette))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if err := e.WritePixel(pm.ColorIndexAt(x, y) == black); err != nil {
				return err
			}
		}
	}

	return e.Close()
}

// blackIndex returns the index of the darkest color in the palette, provided
// it is darker than mid-gray; otherwise an index matching no pixel, leaving
// the whole image white.
func blackIndex(p color.Palette) uint8 {
	best, bestLuma := 0xff, uint32(1<<32-1)
	for i, c := range p {
		if l := luma(c); l < bestLuma {
			best, bestLuma = i, l
		}
	}
	if bestLuma >= 1000*0xffff/2 {
		return 0xff
	}
	return uint8(best)
}

func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return 299*r + 587*g + 114*b
}
