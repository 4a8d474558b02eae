package pengo

import "pengo-emu/driver"

// Colour names of the first palette bank.
const (
	Black = iota
	White
	Red
	Green
	Blue
	Cyan
	Yellow
	Pink
	Orange
	DarkRed
	DarkOrange
	Yellow2
	DarkCyan
	DarkYellow
	Bluish
	Purple
)

const unused = Black

// Palette returns the 32 colours, two banks of 16.
func Palette() driver.Palette {
	return driver.Palette{
		// first bank
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0xdb, G: 0xdb, B: 0xdb},
		{R: 0xff, G: 0x00, B: 0x00},
		{R: 0x00, G: 0xff, B: 0x00},
		{R: 0x24, G: 0x24, B: 0xdb},
		{R: 0x00, G: 0xff, B: 0xdb},
		{R: 0xff, G: 0xff, B: 0x00},
		{R: 0xff, G: 0xb6, B: 0xdb},
		{R: 0xff, G: 0xb6, B: 0x49},
		{R: 0xdb, G: 0x24, B: 0x00},
		{R: 0xff, G: 0xb6, B: 0x00},
		{R: 0xff, G: 0xff, B: 0x49},
		{R: 0x00, G: 0xdb, B: 0xdb},
		{R: 0xdb, G: 0xdb, B: 0x00},
		{R: 0x6d, G: 0x6d, B: 0xdb},
		{R: 0xdb, G: 0x00, B: 0xdb},

		// second bank
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0xdb, G: 0xdb, B: 0xdb},
		{R: 0x00, G: 0x6d, B: 0xdb},
		{R: 0x00, G: 0xdb, B: 0xdb},
		{R: 0x00, G: 0xff, B: 0xdb},
		{R: 0xdb, G: 0x24, B: 0x00},
		{R: 0xff, G: 0x00, B: 0x00},
		{R: 0xff, G: 0xb6, B: 0x00},
		{R: 0xdb, G: 0xdb, B: 0x00},
		{R: 0xff, G: 0xff, B: 0x00},
		{R: 0xff, G: 0xff, B: 0x49},
		{R: 0x00, G: 0xb6, B: 0x00},
		{R: 0x24, G: 0xdb, B: 0x00},
		{R: 0x00, G: 0xff, B: 0x00},
		{R: 0xff, G: 0xb6, B: 0xdb},
		{R: 0xdb, G: 0x00, B: 0xdb},
	}
}

// ColorTable returns 64 colour groups of 4 palette indices. The first 32
// groups use the first palette bank by name, the second 32 index the whole
// palette.
func ColorTable() driver.ColorTable {
	return driver.ColorTable{
		// first bank
		Black, Black, Black, Black,
		Black, Cyan, Green, White,
		Black, Cyan, Red, White,
		Black, Cyan, Yellow, White, // dancing penguin #6
		Black, Cyan, Pink, White, // dancing penguin #5
		Black, Cyan, DarkOrange, White, // dancing penguin #4
		Black, Cyan, Yellow2, White, // dancing penguin #3
		Black, Cyan, DarkCyan, White, // dancing penguin #2
		Black, Cyan, DarkYellow, White, // dancing penguin #1
		Black, Cyan, Blue, White, // ice cubes
		Black, Green, Yellow, White, // title sno-bee 3
		Black, Green, Red, White, // title sno-bee 1
		Black, Green, Pink, White, // title sno-bee 4
		Black, Green, Cyan, White, // title sno-bee 2
		Black, Red, Green, White, // title
		unused, unused, unused, unused,
		Black, Orange, Green, White,
		Black, DarkRed, Red, Cyan,
		Black, Orange, Cyan, DarkYellow, // desk (intermission)
		Blue, Blue, Blue, Blue,
		unused, unused, unused, unused,
		unused, unused, unused, unused,
		Black, Red, Red, Red,
		Black, Green, Green, Green,
		Black, Yellow, Yellow, Yellow,
		Black, Pink, Pink, Pink,
		Black, DarkOrange, DarkOrange, DarkOrange,
		Black, Yellow2, Yellow2, Yellow2,
		Black, White, White, White,
		Black, Cyan, Cyan, Cyan,
		Orange, DarkRed, DarkOrange, Yellow2,
		DarkCyan, DarkYellow, Bluish, Purple,

		// second bank
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x13, 0x17, 0x1D,
		0x00, 0x1C, 0x1F, 0x1B,
		0x00, 0x1C, 0x1E, 0x1B,
		0x00, 0x1C, 0x16, 0x1B,
		0x00, 0x1C, 0x17, 0x1B,
		0x00, 0x1C, 0x13, 0x1B,
		0x00, 0x1C, 0x18, 0x1B,
		0x00, 0x1C, 0x1D, 0x1B,
		0x00, 0x1C, 0x14, 0x1B,
		0x00, 0x1C, 0x19, 0x1B,
		0x00, 0x1C, 0x15, 0x1B,
		0x00, 0x1C, 0x12, 0x1B,
		0x00, 0x1C, 0x1B, 0x12,
		0x00, 0x18, 0x1C, 0x12,
		0x00, 0x18, 0x1F, 0x12,
		0x00, 0x13, 0x12, 0x11,
		0x00, 0x12, 0x1F, 0x13,
		0x00, 0x1F, 0x1E, 0x12,
		0x00, 0x1E, 0x17, 0x1F,
		0x00, 0x17, 0x16, 0x1E,
		0x00, 0x16, 0x15, 0x17,
		0x00, 0x15, 0x00, 0x16,
		0x00, 0x00, 0x1B, 0x15,
		0x00, 0x1B, 0x1C, 0x00,
		0x00, 0x1C, 0x1D, 0x1B,
		0x00, 0x1D, 0x18, 0x1C,
		0x00, 0x18, 0x19, 0x1D,
		0x00, 0x19, 0x1A, 0x18,
		0x00, 0x1A, 0x11, 0x19,
		0x00, 0x11, 0x14, 0x1A,
		0x00, 0x14, 0x13, 0x11,
	}
}
