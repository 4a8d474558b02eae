package pengo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengo-emu/driver"
)

func TestDriverValidates(t *testing.T) {
	d := Driver()
	require.NoError(t, d.Validate())
	assert.Equal(t, "pengo", d.Name)
	assert.Equal(t, 3072000, d.CPUClock)
	assert.Equal(t, 60, d.FramesPerSecond)
	assert.Equal(t, 224, d.Video.Width)
	assert.Equal(t, 288, d.Video.Height)
	assert.Equal(t, []uint8{0xb0}, d.DipDefaults)
}

func TestDriverReturnsFreshRecord(t *testing.T) {
	a := Driver()
	b := Driver()
	a.Palette[0] = driver.RGB{R: 1, G: 2, B: 3}
	a.ReadMap[0].Handler = driver.NoHandler
	a.Sound.Waveforms[0][0] = 0x0f

	assert.Equal(t, driver.RGB{}, b.Palette[0])
	assert.Equal(t, RAMRead, b.ReadMap[0].Handler)
	assert.Equal(t, uint8(0), b.Sound.Waveforms[0][0])
}

func TestReadMapFirstMatch(t *testing.T) {
	m := ReadMap()
	for addr, want := range map[uint16]driver.HandlerID{
		0x0000: ROMRead,
		0x7fff: ROMRead,
		0x8000: VideoRAMRead,
		0x8400: ColorRAMRead,
		0x8ff2: RAMRead,
		0x9000: driver.NoHandler,
		0x9040: DSW1Read,
		0x9080: IN1Read,
		0x90c0: IN0Read,
		0x90ff: IN0Read,
	} {
		r, ok := m.Find(addr)
		require.True(t, ok, "0x%04x", addr)
		assert.Equal(t, want, r.Handler, "0x%04x", addr)
	}

	_, ok := m.Find(0xa000)
	assert.False(t, ok)
}

func TestWriteMapSpriteCodesSpecialiseRAM(t *testing.T) {
	m := WriteMap()

	r, ok := m.Find(0x8ff2)
	require.True(t, ok)
	assert.Equal(t, RAMWrite, r.Handler)

	r, ok = m.Resolve(0x8ff2)
	require.True(t, ok)
	assert.Equal(t, SpriteCode, r.Handler)
	assert.Equal(t, uint16(2), r.Offset(0x8ff2))

	r, ok = m.Resolve(0x8fef)
	require.True(t, ok)
	assert.Equal(t, RAMWrite, r.Handler)
}

func TestWriteMapDefaultPorts(t *testing.T) {
	m := WriteMap()
	for _, addr := range []uint16{0x9042, 0x9043, 0x9044, 0x9045, 0x9046, 0x9070} {
		r, ok := m.Resolve(addr)
		require.True(t, ok, "0x%04x", addr)
		assert.Equal(t, driver.NoHandler, r.Handler, "0x%04x", addr)
	}
	for addr, want := range map[uint16]driver.HandlerID{
		0x9005: SoundWrite,
		0x9022: SpritePos,
		0x9040: InterruptEnable,
		0x9041: SoundEnable,
		0x9047: GfxBank,
	} {
		r, ok := m.Resolve(addr)
		require.True(t, ok)
		assert.Equal(t, want, r.Handler, "0x%04x", addr)
	}
}

func TestMapRangesAreOrdered(t *testing.T) {
	for _, m := range []driver.MemoryMap{ReadMap(), WriteMap()} {
		for _, r := range m {
			assert.LessOrEqual(t, r.Start, r.End)
		}
	}
}

func TestRomRegionsSpanTheirSize(t *testing.T) {
	regions := Roms()
	require.Len(t, regions, 2)

	assert.Equal(t, uint32(0x8000), regions[0].Loaded())
	assert.Equal(t, regions[0].Size, regions[0].Loaded())
	assert.Len(t, regions[0].Modules, 8)

	assert.Equal(t, uint32(0x10000), regions[1].Base)
	assert.Equal(t, regions[1].Size, regions[1].Loaded())
	assert.Equal(t, "pengopop.105", regions[1].Modules[1].Name)
}

func TestColorTableIndexesPalette(t *testing.T) {
	palette := Palette()
	table := ColorTable()
	require.Len(t, palette, 32)
	require.Len(t, table, 64*driver.ColorTableGroupSize)
	assert.Equal(t, 64, table.Groups())
	for i, c := range table {
		assert.Less(t, int(c), len(palette), "entry %d", i)
	}

	// ice cubes
	assert.Equal(t, palette[Blue].RGBA(), palette.Color(table, 9, 2))
}

func TestDipSwitchDefaults(t *testing.T) {
	d := Driver()
	for name, want := range map[string]string{
		"LIVES":       "3",
		"BONUS":       "30000",
		"DIFFICULTY":  "MEDIUM",
		"DEMO SOUNDS": "ON",
		"RACK TEST":   "OFF",
		"CABINET":     "UPRIGHT",
	} {
		s, ok := d.DipSwitch(name)
		require.True(t, ok, name)
		assert.Equal(t, want, s.Decode(d.DipDefaults[s.Port]), name)
		assert.Len(t, s.Values, s.Positions(), name)
	}
}

func TestInputPorts(t *testing.T) {
	d := Driver()
	in0, ok := d.Input(IN0)
	require.True(t, ok)
	assert.Equal(t, uint16(0x90c0), in0.Address)
	assert.True(t, in0.ActiveLow)
	assert.Equal(t, uint8(0x80), in0.Mask(Push1))
	assert.Equal(t, uint8(0x7f), in0.Encode(in0.Mask(Push1)))

	in1, ok := d.Input(IN1)
	require.True(t, ok)
	assert.Equal(t, uint8(0x20), in1.Mask(Start1))
	assert.Equal(t, uint8(0x10), in1.Mask(Test))

	dsw2, ok := d.Input(DSW2)
	require.True(t, ok)
	assert.Len(t, dsw2.Bits, 8)
	assert.Equal(t, "DIP SWITCH 8", dsw2.Bits[7].Name)
}

func TestGfxDecodeFitsGraphicsRoms(t *testing.T) {
	d := Driver()
	gfx, ok := d.Region(GfxRegion)
	require.True(t, ok)

	var total int
	for _, g := range d.GfxDecode {
		assert.True(t, gfx.Contains(g.Start))
		assert.Equal(t, 32, g.Colors())
		total += g.Layout.Bytes()
	}
	assert.Equal(t, int(gfx.Size), total)
	assert.Equal(t, 16, CharLayout().Stride())
	assert.Equal(t, 64, SpriteLayout().Stride())
}

func TestWaveforms(t *testing.T) {
	waves := Waveforms()
	require.Len(t, waves, 8)
	for _, w := range waves {
		assert.Len(t, w, driver.WaveformLength)
	}
	assert.Equal(t, uint8(0x7), waves[0].Sample(5))
	assert.Equal(t, uint8(0x6), waves[2].Sample(15))
	assert.Equal(t, uint8(0x8), waves[2].Sample(16))
	assert.Equal(t, uint8(0xf), waves[7].Sample(31))
}

func TestHandlersNamed(t *testing.T) {
	handlers := Driver().Handlers()
	assert.Len(t, handlers, 17)
	assert.Contains(t, handlers, SpriteCode)
	assert.NotContains(t, handlers, driver.NoHandler)
}
