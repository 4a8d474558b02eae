package pengo

import "pengo-emu/driver"

// CharLayout decodes the 8x8 background characters. The characters are
// rotated 90 degrees and the two bit planes of four pixels share a byte.
func CharLayout() *driver.GfxLayout {
	return &driver.GfxLayout{
		Width:         8,
		Height:        8,
		Total:         256,
		Planes:        2,
		PixelsPerByte: 4,
		YOffset:       []int{7 * 8, 6 * 8, 5 * 8, 4 * 8, 3 * 8, 2 * 8, 1 * 8, 0 * 8},
		XOffset:       []int{8*8 + 0, 8*8 + 1, 8*8 + 2, 8*8 + 3, 0, 1, 2, 3},
		CharIncrement: 16 * 8,
	}
}

// SpriteLayout decodes the 16x16 sprites.
func SpriteLayout() *driver.GfxLayout {
	return &driver.GfxLayout{
		Width:         16,
		Height:        16,
		Total:         64,
		Planes:        2,
		PixelsPerByte: 4,
		YOffset: []int{
			39 * 8, 38 * 8, 37 * 8, 36 * 8, 35 * 8, 34 * 8, 33 * 8, 32 * 8,
			7 * 8, 6 * 8, 5 * 8, 4 * 8, 3 * 8, 2 * 8, 1 * 8, 0 * 8,
		},
		XOffset: []int{
			8 * 8, 8*8 + 1, 8*8 + 2, 8*8 + 3, 16*8 + 0, 16*8 + 1, 16*8 + 2, 16*8 + 3,
			24*8 + 0, 24*8 + 1, 24*8 + 2, 24*8 + 3, 0, 1, 2, 3,
		},
		CharIncrement: 64 * 8,
	}
}

// GfxDecode returns the two graphics banks, each holding 256 characters
// followed by 64 sprites. The bank selected by the gfx bank latch also
// selects the upper half of the colour table.
func GfxDecode() []driver.GfxDecodeInfo {
	chars, sprites := CharLayout(), SpriteLayout()
	return []driver.GfxDecodeInfo{
		{Start: 0x10000, Layout: chars, FirstColor: 0, LastColor: 31},
		{Start: 0x11000, Layout: sprites, FirstColor: 0, LastColor: 31},
		{Start: 0x12000, Layout: chars, FirstColor: 32, LastColor: 63},
		{Start: 0x13000, Layout: sprites, FirstColor: 32, LastColor: 63},
	}
}
