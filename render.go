package mandelpbm

import (
	"fmt"
	"image"
	"io"

	"github.com/bodgit/mandelpbm/mandelbrot"
	"github.com/bodgit/mandelpbm/monochrome"
	"github.com/bodgit/mandelpbm/pbm"
)

func checkSize(size int) error {
	if size < 1 {
		return fmt.Errorf("mandelpbm: invalid size %d", size)
	}
	return nil
}

// Render writes a size-by-size bitmap of the Mandelbrot set to w in binary
// PBM format, pixels in the set drawn black. Pixels are evaluated in
// row-major order and streamed straight into the encoder, so no pixel buffer
// is held. An invalid size is reported before anything is written to w.
func Render(w io.Writer, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}

	e, err := pbm.NewWriter(w, size, size)
	if err != nil {
		return err
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if err := e.WritePixel(mandelbrot.InSet(mandelbrot.Point(x, y, size))); err != nil {
				return err
			}
		}
	}

	return e.Close()
}

// Image renders a size-by-size bitmap of the Mandelbrot set as an in-memory
// image. Encoding the result with pbm.Encode produces the same bytes as
// Render.
func Image(size int) (*monochrome.Image, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	m := monochrome.New(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			m.SetBlack(x, y, mandelbrot.InSet(mandelbrot.Point(x, y, size)))
		}
	}

	return m, nil
}
