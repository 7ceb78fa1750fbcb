/*
Package sheet arranges decoded tiles into a single composite sprite sheet
image.
*/
package sheet

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrBadTile is returned when a tile's pixel count does not match the
	// declared tile dimensions.
	ErrBadTile = errors.New("sheet: tile has wrong pixel count")

	// ErrBadIndex is returned when a decoded pixel does not index into the
	// palette.
	ErrBadIndex = errors.New("sheet: invalid palette index")
)

// Compose places each w by h tile into a tx by ty grid, row-major from the
// top left, and returns the result as a paletted image. Every pixel must be
// a valid index into p. Grid cells beyond the last tile are painted opaque
// black; the fill color is appended to a copy of the palette so p itself is
// never modified.
func Compose(tiles [][]uint8, w, h, tx, ty int, p color.Palette) (*image.Paletted, error) {
	colors := len(p)

	fill := -1
	if len(tiles) < tx*ty {
		p = append(p[:colors:colors], color.RGBA{A: 0xff})
		fill = colors
	}

	m := image.NewPaletted(image.Rect(0, 0, tx*w, ty*h), p)

	for i, tile := range tiles {
		if len(tile) != w*h {
			return nil, ErrBadTile
		}

		dx := i % tx * w
		dy := i / tx * h

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := tile[y*w+x]
				if int(c) >= colors {
					return nil, ErrBadIndex
				}
				m.SetColorIndex(dx+x, dy+y, c)
			}
		}
	}

	for i := len(tiles); i < tx*ty; i++ {
		dx := i % tx * w
		dy := i / tx * h

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetColorIndex(dx+x, dy+y, uint8(fill))
			}
		}
	}

	return m, nil
}
