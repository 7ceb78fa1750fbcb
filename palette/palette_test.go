package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrayscale(t *testing.T) {
	p := Grayscale()
	require.Len(t, p, Colors)

	for i, c := range p {
		v := uint8(i * 17)
		require.Equal(t, color.RGBA{v, v, v, 0xff}, c)
	}

	require.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, p[0])
	require.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, p[15])

	// Pure function of nothing; always the same ramp
	require.Equal(t, p, Grayscale())
}

func TestBuiltin(t *testing.T) {
	require.Len(t, Title, Colors)
	require.Len(t, Title1, Colors)
	require.Len(t, Title2, Colors)

	require.Equal(t, color.RGBA{0xd0, 0xa0, 0x40, 0xff}, Title[1])
	require.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, Title1[0])
	require.Equal(t, color.RGBA{0xf0, 0xf0, 0xf0, 0xff}, Title1[1])
	require.Equal(t, color.RGBA{0x10, 0x30, 0x70, 0xff}, Title2[8])
}

func TestDecodeAt(t *testing.T) {
	b := make([]byte, 2*Size)

	// First palette: color 1 is full white, color 2 a mid-range mix
	copy(b[3:], []byte{0x3f, 0x3f, 0x3f})
	copy(b[6:], []byte{0x20, 0x01, 0x10})

	// Second palette: color 0 only
	copy(b[Size:], []byte{0x0a, 0x14, 0x1e})

	p, err := DecodeAt(b, 0)
	require.NoError(t, err)
	require.Len(t, p, Colors)
	require.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, p[0])
	require.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, p[1])
	require.Equal(t, color.RGBA{129, 4, 64, 0xff}, p[2])

	p, err = DecodeAt(b, Size)
	require.NoError(t, err)
	require.Equal(t, color.RGBA{40, 80, 121, 0xff}, p[0])
}

func TestDecodeAtTruncated(t *testing.T) {
	b := make([]byte, 2*Size)

	_, err := DecodeAt(b[:2*Size-1], Size)
	require.Equal(t, ErrTruncated, err)

	_, err = DecodeAt(b, -1)
	require.Equal(t, ErrTruncated, err)

	_, err = DecodeAt(b, Size)
	require.NoError(t, err)
}
