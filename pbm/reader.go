package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/bodgit/mandelpbm/monochrome"
)

var (
	errBadMagic  = errors.New("pbm: not a binary PBM image")
	errBadHeader = errors.New("pbm: invalid header")
	errNotEnough = errors.New("pbm: not enough image data")
	errTooMuch   = errors.New("pbm: too much image data")
)

type decoder struct {
	r *bufio.Reader

	width, height int

	image *monochrome.Image
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipSpace consumes whitespace and "#" comments between header tokens.
func (d *decoder) skipSpace() error {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case b == '#':
			if _, err := d.r.ReadString('\n'); err != nil {
				return err
			}
		case !isSpace(b):
			return d.r.UnreadByte()
		}
	}
}

// readInt reads one decimal header token plus the single whitespace byte
// terminating it, so after the last token the reader is positioned exactly at
// the start of the pixel rows.
func (d *decoder) readInt() (int, error) {
	if err := d.skipSpace(); err != nil {
		return 0, err
	}

	var n, digits int
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			if !isSpace(b) {
				return 0, errBadHeader
			}
			break
		}
		n = n*10 + int(b-'0')
		digits++
		if n > 1<<30 {
			return 0, errBadHeader
		}
	}
	if digits == 0 {
		return 0, errBadHeader
	}

	return n, nil
}

func (d *decoder) readHeader() error {
	var m [2]byte
	if err := readFull(d.r, m[:]); err != nil {
		return err
	}
	if string(m[:]) != magic {
		return errBadMagic
	}

	var err error
	if d.width, err = d.readInt(); err != nil {
		return err
	}
	if d.height, err = d.readInt(); err != nil {
		return err
	}

	if d.width < 1 || d.height < 1 {
		return fmt.Errorf("pbm: invalid dimensions %dx%d", d.width, d.height)
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errBadHeader
		}
		return err
	}

	if configOnly {
		return nil
	}

	d.image = monochrome.New(image.Rect(0, 0, d.width, d.height))

	row := make([]byte, (d.width+7)/8)
	for y := 0; y < d.height; y++ {
		if err := readFull(d.r, row); err != nil {
			if err == io.ErrUnexpectedEOF {
				return errNotEnough
			}
			return err
		}
		for x := 0; x < d.width; x++ {
			if row[x>>3]&(0x80>>uint(x&7)) != 0 {
				d.image.SetBlack(x, y, true)
			}
		}
	}

	switch n, err := d.r.Read(row[:1]); {
	case n != 0:
		return errTooMuch
	case err != io.EOF:
		return err
	}

	return nil
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a binary PBM image from r and returns it as a
// monochrome.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a binary PBM image
// after reading only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: monochrome.Palette(),
		Width:      d.width,
		Height:     d.height,
	}, nil
}

func init() {
	image.RegisterFormat("pbm", magic, Decode, DecodeConfig)
}
