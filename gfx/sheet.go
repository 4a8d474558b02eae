package gfx

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"pengo-emu/driver"
)

// Colors resolves a tile's pixels through one colour group.
type Colors struct {
	Palette driver.Palette
	Table   driver.ColorTable
	Group   int
}

// Sheet lays tiles out left to right, top to bottom, perRow to a row.
func Sheet(tiles []Tile, layout *driver.GfxLayout, perRow int, colors Colors) (*image.RGBA, error) {
	if perRow <= 0 {
		return nil, fmt.Errorf("invalid tiles per row %d", perRow)
	}
	if colors.Group < 0 || colors.Group >= colors.Table.Groups() {
		return nil, fmt.Errorf("colour group %d out of range 0-%d", colors.Group, colors.Table.Groups()-1)
	}

	rows := (len(tiles) + perRow - 1) / perRow
	img := image.NewRGBA(image.Rect(0, 0, perRow*layout.Width, rows*layout.Height))
	for i, t := range tiles {
		ox := (i % perRow) * layout.Width
		oy := (i / perRow) * layout.Height
		for y, row := range t {
			for x, pixel := range row {
				img.SetRGBA(ox+x, oy+y, colors.Palette.Color(colors.Table, colors.Group, pixel))
			}
		}
	}
	return img, nil
}

// BankSheet decodes one gfx decode entry from the flat ROM contents at its
// start offset and renders it with the entry's first colour group plus
// group.
func BankSheet(rom []uint8, entry driver.GfxDecodeInfo, perRow int, palette driver.Palette, table driver.ColorTable, group int) (*image.RGBA, error) {
	tiles, err := DecodeAll(rom, entry.Layout)
	if err != nil {
		return nil, err
	}
	if group < 0 || group >= entry.Colors() {
		return nil, fmt.Errorf("colour group %d outside the entry's %d groups", group, entry.Colors())
	}
	return Sheet(tiles, entry.Layout, perRow, Colors{Palette: palette, Table: table, Group: entry.FirstColor + group})
}

// Format is an image file format a sheet can be written in.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// Write encodes img in format.
func Write(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
