package sheet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPalette() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		v := uint8(i * 17)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}

func solidTile(w, h int, c uint8) []uint8 {
	t := make([]uint8, w*h)
	for i := range t {
		t[i] = c
	}
	return t
}

func TestCompose(t *testing.T) {
	tiles := make([][]uint8, 4)
	for i := range tiles {
		tiles[i] = solidTile(2, 2, uint8(i))
	}

	m, err := Compose(tiles, 2, 2, 2, 2, testPalette())
	require.NoError(t, err)
	require.Equal(t, 4, m.Bounds().Dx())
	require.Equal(t, 4, m.Bounds().Dy())

	// Row-major fill; tile 2 lands in the first cell of the second row
	require.Equal(t, uint8(0), m.ColorIndexAt(0, 0))
	require.Equal(t, uint8(1), m.ColorIndexAt(2, 0))
	require.Equal(t, uint8(2), m.ColorIndexAt(0, 2))
	require.Equal(t, uint8(3), m.ColorIndexAt(2, 2))
}

func TestComposeTrailingCells(t *testing.T) {
	p := testPalette()

	tiles := make([][]uint8, 3)
	for i := range tiles {
		tiles[i] = solidTile(2, 2, 15)
	}

	m, err := Compose(tiles, 2, 2, 2, 2, p)
	require.NoError(t, err)

	// The unused bottom right cell is opaque black, via a fill entry
	// appended to the image's own palette
	require.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, m.At(2, 2))
	require.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, m.At(3, 3))
	require.Len(t, m.Palette, 17)
	require.Len(t, p, 16)

	require.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, m.At(0, 0))
}

func TestComposeBadIndex(t *testing.T) {
	_, err := Compose([][]uint8{{16}}, 1, 1, 1, 1, testPalette())
	require.Equal(t, ErrBadIndex, err)

	// Tiles may not use the trailing cell fill entry either
	_, err = Compose([][]uint8{{16}}, 1, 1, 2, 1, testPalette())
	require.Equal(t, ErrBadIndex, err)
}

func TestComposeBadTile(t *testing.T) {
	_, err := Compose([][]uint8{{0, 1, 2}}, 2, 2, 1, 1, testPalette())
	require.Equal(t, ErrBadTile, err)
}
