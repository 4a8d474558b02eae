// Package gfx unpacks tiles described by a driver.GfxLayout and renders
// them into tile sheets for inspection.
package gfx

import (
	"fmt"

	"pengo-emu/driver"
)

// Tile is a decoded tile, indexed [y][x], holding pixel values.
type Tile [][]uint8

// readBit returns bit n of the stream, most significant bit first.
func readBit(data []uint8, n int) uint8 {
	return (data[n/8] >> (7 - n%8)) & 1
}

// Decode unpacks tile code of layout from data. Plane 0 supplies the most
// significant bit of each pixel.
func Decode(data []uint8, layout *driver.GfxLayout, code int) (Tile, error) {
	if code < 0 || code >= layout.Total {
		return nil, fmt.Errorf("tile %d out of range 0-%d", code, layout.Total-1)
	}
	base := code * layout.CharIncrement
	if need := (base + layout.CharIncrement) / 8; need > len(data) {
		return nil, fmt.Errorf("tile %d needs %d bytes, have %d", code, need, len(data))
	}

	tile := make(Tile, layout.Height)
	for y := 0; y < layout.Height; y++ {
		row := make([]uint8, layout.Width)
		for x := 0; x < layout.Width; x++ {
			bit := base + layout.YOffset[y] + layout.XOffset[x]
			var pixel uint8
			for p := 0; p < layout.Planes; p++ {
				pixel = pixel<<1 | readBit(data, bit+layout.PlaneOffset(p))
			}
			row[x] = pixel
		}
		tile[y] = row
	}
	return tile, nil
}

// DecodeAll unpacks every tile of the layout.
func DecodeAll(data []uint8, layout *driver.GfxLayout) ([]Tile, error) {
	tiles := make([]Tile, layout.Total)
	for code := range tiles {
		t, err := Decode(data, layout, code)
		if err != nil {
			return nil, err
		}
		tiles[code] = t
	}
	return tiles, nil
}
