/*
Package bitplane implements a decoder for the planar pixel data used by the
Supaplex .DAT graphics resources.

A tile of w by h pixels is stored as four consecutive bitplanes of
ceil(w/8) * h bytes each, one bit per pixel per plane, most significant bit
first within each byte. The four planes hold the blue, green, red and
intensity bits of the EGA palette index, so plane 0 contributes the least
significant bit of each pixel and plane 3 the most significant.

Character set resources use a single plane instead; see Decode1.
*/
package bitplane

const numPlanes = 4
