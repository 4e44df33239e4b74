package pbm

import (
	"bytes"
	"testing"

	"github.com/bodgit/mandelpbm/monochrome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	m, err := Decode(bytes.NewReader([]byte("P4\n9 2\n\xff\x80\x00\x80")))
	require.NoError(t, err)

	assert.Equal(t, 9, m.Bounds().Dx())
	assert.Equal(t, 2, m.Bounds().Dy())

	mono := m.(*monochrome.Image)
	for x := 0; x < 9; x++ {
		assert.True(t, mono.BlackAt(x, 0))
		assert.Equal(t, x == 8, mono.BlackAt(x, 1))
	}
}

func TestDecodeConfig(t *testing.T) {
	config, err := DecodeConfig(bytes.NewReader([]byte("P4\n640 480\n")))
	require.NoError(t, err)

	assert.Equal(t, 640, config.Width)
	assert.Equal(t, 480, config.Height)
}

func TestDecodeConfigComment(t *testing.T) {
	config, err := DecodeConfig(bytes.NewReader([]byte("P4\n# rendered by mandelpbm\n9 2\n")))
	require.NoError(t, err)

	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 2, config.Height)
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name string
		b    []byte
		err  error
	}{
		{"plain PBM magic", []byte("P1\n1 1\n0\n"), errBadMagic},
		{"missing dimensions", []byte("P4\n"), errBadHeader},
		{"junk in header", []byte("P4\nx y\n"), errBadHeader},
		{"truncated payload", []byte("P4\n9 2\n\xff\x80\x00"), errNotEnough},
		{"trailing data", []byte("P4\n1 1\n\x80\x00"), errTooMuch},
	}

	for _, table := range tables {
		_, err := Decode(bytes.NewReader(table.b))
		assert.Equal(t, table.err, err, table.name)
	}

	_, err := Decode(bytes.NewReader([]byte("P4\n0 1\n")))
	assert.Error(t, err, "zero width")
}

func TestRoundTrip(t *testing.T) {
	b := new(bytes.Buffer)

	w, err := NewWriter(b, 13, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 13; x++ {
			require.NoError(t, w.WritePixel((x+y)%3 == 0))
		}
	}
	require.NoError(t, w.Close())

	m, err := Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)

	mono := m.(*monochrome.Image)
	for y := 0; y < 3; y++ {
		for x := 0; x < 13; x++ {
			assert.Equal(t, (x+y)%3 == 0, mono.BlackAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}
