package driver

import "image/color"

// ColorTableGroupSize is the number of palette indices per colour group,
// one for each value of a 2 bit pixel.
const ColorTableGroupSize = 4

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the entry for use with image and ebiten.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Palette is indexed by colour number.
type Palette []RGB

// ColorTable maps group*ColorTableGroupSize+pixel to a palette index.
type ColorTable []uint8

// Groups is the number of complete colour groups.
func (t ColorTable) Groups() int {
	return len(t) / ColorTableGroupSize
}

// Lookup returns the palette index for a pixel drawn with colour group.
func (t ColorTable) Lookup(group int, pixel uint8) uint8 {
	return t[group*ColorTableGroupSize+int(pixel)]
}

// Color resolves a pixel drawn with a colour group to its final colour.
func (p Palette) Color(table ColorTable, group int, pixel uint8) color.RGBA {
	return p[table.Lookup(group, pixel)].RGBA()
}
