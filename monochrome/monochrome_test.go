package monochrome

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage(t *testing.T) {
	m := New(image.Rect(0, 0, 4, 4))

	assert.False(t, m.BlackAt(1, 1))
	assert.Equal(t, color.White, m.At(1, 1))

	m.SetBlack(1, 1, true)
	assert.True(t, m.BlackAt(1, 1))
	assert.Equal(t, uint8(1), m.ColorIndexAt(1, 1))
	assert.Equal(t, color.Black, m.At(1, 1))

	m.SetBlack(1, 1, false)
	assert.False(t, m.BlackAt(1, 1))
}
