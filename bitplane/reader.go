package bitplane

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/mi-v/img1b"
)

// ErrTruncated is returned when the source data runs out before a whole
// tile has been read.
var ErrTruncated = errors.New("bitplane: not enough image data")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width    int
	height   int
	rowBytes int

	planes []byte
}

func (d *decoder) readPlanes() error {
	d.planes = make([]byte, numPlanes*d.rowBytes*d.height)
	if err := readFull(d.r, d.planes); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrTruncated
	}
	return nil
}

func (d *decoder) decode() ([]uint8, error) {
	if err := d.readPlanes(); err != nil {
		return nil, err
	}

	planeBytes := d.rowBytes * d.height
	pix := make([]uint8, d.width*d.height)

	for y := 0; y < d.height; y++ {
		row := y * d.rowBytes
		for x := 0; x < d.width; x++ {
			shift := uint(7 - x%8)
			i := row + x/8

			var c uint8
			for p := 0; p < numPlanes; p++ {
				c |= (d.planes[p*planeBytes+i] >> shift & 1) << uint(p)
			}
			pix[y*d.width+x] = c
		}
	}

	return pix, nil
}

// Decode reads one w by h tile of four-plane pixel data from r and returns
// one palette index per pixel in row-major order. It consumes exactly
// 4 * ceil(w/8) * h bytes; multiple tiles are stored back to back so
// successive calls against the same reader walk a multi-tile resource.
func Decode(r io.Reader, w, h int) ([]uint8, error) {
	d := decoder{
		r:        r,
		width:    w,
		height:   h,
		rowBytes: (w + 7) / 8,
	}
	return d.decode()
}

// Decode1 reads one w by h tile of single-plane pixel data from r, as used
// by the character set resources. Set bits map to palette index 15 and clear
// bits to index 0 so the glyphs render white on black through the grayscale
// ramp.
func Decode1(r io.Reader, w, h int) ([]uint8, error) {
	rowBytes := (w + 7) / 8

	b := make([]byte, rowBytes*h)
	if err := readFull(r, b); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, ErrTruncated
	}

	// The raw bytes are already in img1b's layout; MSB-first packed rows
	// with a ceil(w/8) stride.
	m := &img1b.Image{
		Pix:     b,
		Stride:  rowBytes,
		Rect:    image.Rect(0, 0, w, h),
		Palette: color.Palette{color.Gray{0x00}, color.Gray{0xff}},
	}

	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.ColorIndexAt(x, y) != 0 {
				pix[y*w+x] = 0x0f
			}
		}
	}

	return pix, nil
}
