package supaplex

import (
	"fmt"
	"image"
	"io"

	"github.com/bodgit/supaplex/bitplane"
	"github.com/bodgit/supaplex/sheet"
)

// Decode reads the named .DAT resource from r and renders it as a sprite
// sheet image. palettes optionally holds the contents of PALETTES.DAT; pass
// nil to use the built-in and fallback palettes only. Tiles are read back to
// back from r and any bytes beyond the declared tile count are ignored.
func Decode(name string, r io.Reader, palettes []byte) (image.Image, error) {
	spec, err := LookupSpec(name)
	if err != nil {
		return nil, err
	}

	p, err := spec.Palette(palettes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tiles := make([][]uint8, spec.Tiles)
	for i := range tiles {
		if spec.Depth == 1 {
			tiles[i], err = bitplane.Decode1(r, spec.TileWidth, spec.TileHeight)
		} else {
			tiles[i], err = bitplane.Decode(r, spec.TileWidth, spec.TileHeight)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	m, err := sheet.Compose(tiles, spec.TileWidth, spec.TileHeight, spec.TileX, spec.TileY, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}

// DecodeConfig returns the color model and dimensions of the named
// resource's sheet without decoding any pixel data.
func DecodeConfig(name string, palettes []byte) (image.Config, error) {
	spec, err := LookupSpec(name)
	if err != nil {
		return image.Config{}, err
	}

	p, err := spec.Palette(palettes)
	if err != nil {
		return image.Config{}, fmt.Errorf("%s: %w", name, err)
	}

	return image.Config{
		ColorModel: p,
		Width:      spec.SheetWidth(),
		Height:     spec.SheetHeight(),
	}, nil
}
