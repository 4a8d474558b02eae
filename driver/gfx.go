package driver

// GfxLayout is the decode recipe of one tile class. Offsets and the
// increment are expressed in bits. Bit n of the stream is bit 7-(n%8) of
// byte n/8. With two planes packed into one byte, the second plane of a
// pixel is found PixelsPerByte bits after the first.
type GfxLayout struct {
	Width         int
	Height        int
	Total         int
	Planes        int
	PixelsPerByte int
	YOffset       []int
	XOffset       []int
	CharIncrement int
}

// Stride is the number of bytes one tile takes.
func (l *GfxLayout) Stride() int {
	return l.CharIncrement / 8
}

// Bytes is the number of bytes the whole tile set occupies.
func (l *GfxLayout) Bytes() int {
	return l.Total * l.Stride()
}

// PlaneOffset returns the bit distance of plane p from plane 0.
func (l *GfxLayout) PlaneOffset(p int) int {
	return p * l.PixelsPerByte
}

// GfxDecodeInfo binds a layout to the flat ROM offset its tiles start at
// and to the colour groups it may use.
type GfxDecodeInfo struct {
	Start      uint32
	Layout     *GfxLayout
	FirstColor int
	LastColor  int
}

// Colors is the number of colour groups available to the entry.
func (g GfxDecodeInfo) Colors() int {
	return g.LastColor - g.FirstColor + 1
}
