package supaplex

import (
	"errors"
	"image/color"
	"sort"
	"strings"

	"github.com/bodgit/supaplex/palette"
)

// ErrUnknownResource is returned when a filename does not match any known
// .DAT resource. Batch extraction treats it as a skip rather than a failure.
var ErrUnknownResource = errors.New("supaplex: unknown resource")

type palettePolicy int

const (
	paletteGrayscale palettePolicy = iota
	paletteFile
	paletteTitle
	paletteTitle1
	paletteTitle2
)

// Spec describes the pixel layout of one known .DAT resource; the tile
// dimensions, how many tiles the file holds, the grid they are arranged
// into on the output sheet, and how the palette is chosen.
type Spec struct {
	TileWidth  int
	TileHeight int
	Tiles      int
	TileX      int // sheet cells per row
	TileY      int // sheet rows
	Depth      int // bits per pixel

	policy palettePolicy
	offset int // palette offset within PALETTES.DAT
}

// The known resource set is closed; anything not listed here is skipped.
var specs = map[string]Spec{
	"MENU.DAT":     {320, 200, 1, 1, 1, 4, paletteFile, 1 * palette.Size},
	"BACK.DAT":     {320, 200, 1, 1, 1, 4, paletteFile, 1 * palette.Size},
	"CONTROLS.DAT": {320, 200, 1, 1, 1, 4, paletteFile, 2 * palette.Size},
	"GFX.DAT":      {320, 200, 1, 1, 1, 4, paletteFile, 1 * palette.Size},
	"TITLE.DAT":    {320, 200, 1, 1, 1, 4, paletteTitle, 0},
	"TITLE1.DAT":   {320, 200, 1, 1, 1, 4, paletteTitle1, 0},
	"TITLE2.DAT":   {320, 200, 1, 1, 1, 4, paletteTitle2, 0},
	"PANEL.DAT":    {320, 24, 1, 1, 1, 4, paletteFile, 1 * palette.Size},
	"MOVING.DAT":   {16, 16, 576, 16, 36, 4, paletteFile, 1 * palette.Size},
	"FIXED.DAT":    {16, 16, 40, 8, 5, 4, paletteFile, 1 * palette.Size},
	"CHARS6.DAT":   {6, 8, 64, 16, 4, 1, paletteGrayscale, 0},
	"CHARS8.DAT":   {8, 8, 64, 16, 4, 1, paletteGrayscale, 0},
}

// LookupSpec returns the layout of the named resource. Lookup is
// case-insensitive.
func LookupSpec(name string) (Spec, error) {
	spec, ok := specs[strings.ToUpper(name)]
	if !ok {
		return Spec{}, ErrUnknownResource
	}
	return spec, nil
}

// Resources returns the names of every known resource in sorted order.
func Resources() []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SheetWidth returns the pixel width of the composite sheet.
func (s Spec) SheetWidth() int {
	return s.TileX * s.TileWidth
}

// SheetHeight returns the pixel height of the composite sheet.
func (s Spec) SheetHeight() int {
	return s.TileY * s.TileHeight
}

// Palette resolves the 16 color palette for the resource. The title screen
// resources always use their built-in tables, regardless of any supplied
// PALETTES.DAT contents, as the original game ignores the shared palettes
// for them too. Other planar resources read their declared slot from
// palettes when it is non-nil, and everything falls back to the grayscale
// ramp.
func (s Spec) Palette(palettes []byte) (color.Palette, error) {
	switch s.policy {
	case paletteTitle:
		return palette.Title, nil
	case paletteTitle1:
		return palette.Title1, nil
	case paletteTitle2:
		return palette.Title2, nil
	case paletteFile:
		if palettes != nil {
			return palette.DecodeAt(palettes, s.offset)
		}
	}
	return palette.Grayscale(), nil
}
