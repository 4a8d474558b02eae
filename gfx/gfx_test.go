package gfx

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengo-emu/driver"
	"pengo-emu/pengo"
)

func TestDecodeCharPlanes(t *testing.T) {
	layout := pengo.CharLayout()
	data := make([]uint8, layout.Bytes())

	data[0] = 0x88
	data[15] = 0x80
	data[16] = 0x08

	tile, err := Decode(data, layout, 0)
	require.NoError(t, err)
	require.Len(t, tile, 8)
	assert.Equal(t, uint8(3), tile[7][4])
	assert.Equal(t, uint8(0), tile[7][5])
	assert.Equal(t, uint8(2), tile[0][0])

	tile, err = Decode(data, layout, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), tile[7][4])
}

func TestDecodeSpriteQuadrants(t *testing.T) {
	layout := pengo.SpriteLayout()
	data := make([]uint8, layout.Bytes())

	// row 15, column 12 is bit 0 of the tile
	data[0] = 0x80
	// row 0, column 0 is bit 39*8 + 8*8
	data[(39*8+8*8)/8] = 0x08

	tile, err := Decode(data, layout, 0)
	require.NoError(t, err)
	require.Len(t, tile, 16)
	require.Len(t, tile[0], 16)
	assert.Equal(t, uint8(2), tile[15][12])
	assert.Equal(t, uint8(1), tile[0][0])
}

func TestDecodeErrors(t *testing.T) {
	layout := pengo.CharLayout()
	_, err := Decode(make([]uint8, 16), layout, 256)
	assert.Error(t, err)
	_, err = Decode(make([]uint8, 16), layout, 1)
	assert.Error(t, err)
	_, err = DecodeAll(make([]uint8, 16), layout)
	assert.Error(t, err)
}

func TestDecodeAllPengoBank(t *testing.T) {
	layout := pengo.CharLayout()
	tiles, err := DecodeAll(make([]uint8, layout.Bytes()), layout)
	require.NoError(t, err)
	assert.Len(t, tiles, 256)
}

func TestSheet(t *testing.T) {
	layout := pengo.CharLayout()
	data := make([]uint8, 2*layout.Stride())
	data[16] = 0x88

	layout.Total = 2
	tiles, err := DecodeAll(data, layout)
	require.NoError(t, err)

	colors := Colors{Palette: pengo.Palette(), Table: pengo.ColorTable(), Group: 9}
	img, err := Sheet(tiles, layout, 1, colors)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(4, 7))
	assert.Equal(t, pengo.Palette()[pengo.White].RGBA(), img.RGBAAt(4, 15))

	_, err = Sheet(tiles, layout, 0, colors)
	assert.Error(t, err)
	colors.Group = 64
	_, err = Sheet(tiles, layout, 1, colors)
	assert.Error(t, err)
}

func TestBankSheet(t *testing.T) {
	d := pengo.Driver()
	rom := make([]uint8, 0x1000)
	img, err := BankSheet(rom, d.GfxDecode[1], 8, d.Palette, d.ColorTable, 0)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())

	_, err = BankSheet(rom, d.GfxDecode[1], 8, d.Palette, d.ColorTable, 32)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	layout := &driver.GfxLayout{Width: 1, Height: 1, Total: 1, Planes: 2, PixelsPerByte: 4,
		YOffset: []int{0}, XOffset: []int{0}, CharIncrement: 8}
	img, err := Sheet([]Tile{{{0}}}, layout, 1, Colors{Palette: pengo.Palette(), Table: pengo.ColorTable()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img, PNG))
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])

	buf.Reset()
	require.NoError(t, Write(&buf, img, BMP))
	assert.Equal(t, []byte("BM"), buf.Bytes()[:2])

	assert.Error(t, Write(&buf, img, Format("gif")))
}
