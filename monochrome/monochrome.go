/*
Package monochrome implements a two-color black-on-white image.

The image satisfies image.PalettedImage with a fixed white/black palette, so
encoders that special-case two-color paletted images, like png, store it at
one bit per pixel.
*/
package monochrome

import (
	"image"
	"image/color"
)

// Palette returns the fixed color model: index 0 is white, index 1 is black.
func Palette() color.Palette {
	return color.Palette{color.White, color.Black}
}

// Image is a two-color image with black data on a white background.
type Image struct {
	p *image.Paletted
}

var _ image.PalettedImage = (*Image)(nil)

// New returns an all-white image with the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		p: image.NewPaletted(r, Palette()),
	}
}

func (m *Image) ColorModel() color.Model {
	return m.p.ColorModel()
}

func (m *Image) Bounds() image.Rectangle {
	return m.p.Bounds()
}

func (m *Image) At(x, y int) color.Color {
	return m.p.At(x, y)
}

func (m *Image) ColorIndexAt(x, y int) uint8 {
	return m.p.ColorIndexAt(x, y)
}

// BlackAt reports whether the pixel at (x, y) is black.
func (m *Image) BlackAt(x, y int) bool {
	return m.p.ColorIndexAt(x, y) == 1
}

// SetBlack sets the pixel at (x, y) to black or white.
func (m *Image) SetBlack(x, y int, black bool) {
	if black {
		m.p.SetColorIndex(x, y, 1)
	} else {
		m.p.SetColorIndex(x, y, 0)
	}
}
