/*
Package palette produces the 16 color palettes used to render decoded
Supaplex graphics.

The shared PALETTES.DAT resource holds consecutive 48 byte palettes; 16
colors of three bytes each where every channel is a 6-bit DAC value. The
title screens instead use palettes baked into the original game binary,
reproduced here as the Title, Title1 and Title2 tables. When neither source
is available a grayscale ramp keeps the output legible.
*/
package palette

import (
	"errors"
	"image/color"
)

const (
	// Colors is the number of entries in every palette.
	Colors = 16

	// Size is the byte length of one palette within PALETTES.DAT.
	Size = Colors * 3
)

// ErrTruncated is returned when a palette file is too short for the
// requested palette.
var ErrTruncated = errors.New("palette: not enough palette data")

// The baked-in title screen palettes, four 4-bit DAC values per color. The
// fourth value is an intensity channel which the original renderer ignores.
var (
	titleRaw = [64]byte{
		0x02, 0x03, 0x05, 0x00, 0x0d, 0x0a, 0x04, 0x0c, 0x02, 0x06, 0x06, 0x02, 0x03, 0x09, 0x09, 0x03,
		0x0b, 0x08, 0x03, 0x06, 0x02, 0x07, 0x07, 0x0a, 0x08, 0x06, 0x0d, 0x09, 0x06, 0x04, 0x0b, 0x01,
		0x09, 0x01, 0x00, 0x04, 0x0b, 0x01, 0x00, 0x04, 0x0d, 0x01, 0x00, 0x0c, 0x0f, 0x01, 0x00, 0x0c,
		0x0f, 0x06, 0x04, 0x0c, 0x02, 0x05, 0x06, 0x08, 0x0f, 0x0c, 0x06, 0x0e, 0x0c, 0x0c, 0x0d, 0x0e,
	}

	title1Raw = [64]byte{
		0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x0f, 0x0f, 0x08, 0x08, 0x08, 0x08, 0x0a, 0x0a, 0x0a, 0x07,
		0x0a, 0x0a, 0x0a, 0x07, 0x0b, 0x0b, 0x0b, 0x07, 0x0e, 0x01, 0x01, 0x04, 0x09, 0x09, 0x09, 0x07,
		0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x09, 0x00, 0x00, 0x04, 0x0b, 0x00, 0x00, 0x0c,
		0x08, 0x08, 0x08, 0x08, 0x05, 0x05, 0x05, 0x08, 0x06, 0x06, 0x06, 0x08, 0x08, 0x08, 0x08, 0x08,
	}

	title2Raw = [64]byte{
		0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x0f, 0x0f, 0x06, 0x06, 0x06, 0x08, 0x0a, 0x0a, 0x0a, 0x07,
		0x0a, 0x0a, 0x0a, 0x07, 0x0b, 0x0b, 0x0b, 0x07, 0x0e, 0x01, 0x01, 0x04, 0x09, 0x09, 0x09, 0x07,
		0x01, 0x03, 0x07, 0x00, 0x08, 0x08, 0x08, 0x08, 0x09, 0x00, 0x00, 0x04, 0x0b, 0x00, 0x00, 0x0c,
		0x00, 0x02, 0x0a, 0x01, 0x05, 0x05, 0x05, 0x08, 0x06, 0x06, 0x06, 0x08, 0x08, 0x08, 0x08, 0x07,
	}
)

// The built-in palettes for the three title screen resources. Read-only.
var (
	Title  = fromRaw(titleRaw)
	Title1 = fromRaw(title1Raw)
	Title2 = fromRaw(title2Raw)
)

func fromRaw(raw [64]byte) color.Palette {
	p := make(color.Palette, Colors)
	for i := range p {
		p[i] = color.RGBA{
			raw[i*4+0] << 4,
			raw[i*4+1] << 4,
			raw[i*4+2] << 4,
			0xff,
		}
	}
	return p
}

func scale6(v byte) byte {
	return byte(int(v&0x3f) * 255 / 63)
}

// DecodeAt decodes the 16 color palette stored at offset in a PALETTES.DAT
// buffer. Each channel is a 6-bit DAC value scaled up to the full 8-bit
// range.
func DecodeAt(b []byte, offset int) (color.Palette, error) {
	if offset < 0 || offset+Size > len(b) {
		return nil, ErrTruncated
	}

	p := make(color.Palette, Colors)
	for i := range p {
		c := b[offset+i*3:]
		p[i] = color.RGBA{scale6(c[0]), scale6(c[1]), scale6(c[2]), 0xff}
	}
	return p, nil
}

// Grayscale returns a 16 entry linear ramp from black to white, used
// whenever no real palette is available for a resource.
func Grayscale() color.Palette {
	p := make(color.Palette, Colors)
	for i := range p {
		v := uint8(i * 17)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}
