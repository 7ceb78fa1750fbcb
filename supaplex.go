/*
Package supaplex is a library for decoding the graphics resources shipped
with the DOS version of Supaplex.

Each .DAT file holds uncompressed planar pixel data; four EGA-style
bitplanes per tile for the menu, title and sprite resources and a single
plane for the character sets. Resources are identified by filename against a
fixed table of known formats and rendered as composite sprite sheet images,
colored from the shared PALETTES.DAT file, from palettes baked into the
original game binary, or from a grayscale fallback ramp.
*/
package supaplex

import "log"

type Supaplex struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Supaplex {
	return &Supaplex{
		logger: logger,
	}
}
