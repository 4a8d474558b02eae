package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyLayout() *GfxLayout {
	return &GfxLayout{
		Width: 2, Height: 2, Total: 2, Planes: 2, PixelsPerByte: 4,
		YOffset:       []int{8, 0},
		XOffset:       []int{0, 1},
		CharIncrement: 16,
	}
}

func validDriver() *MachineDriver {
	return &MachineDriver{
		Name: "tiny",
		Roms: []RomRegion{
			{Name: "cpu", Base: 0, Size: 0x200, Modules: []RomModule{
				{Name: "a", Offset: 0x000, Length: 0x100},
				{Name: "b", Offset: 0x100, Length: 0x100},
			}},
			{Name: "gfx", Base: 0x1000, Size: 0x4, Modules: []RomModule{
				{Name: "c", Offset: 0x1000, Length: 0x4},
			}},
		},
		ReadMap: MemoryMap{
			{Start: 0x0000, End: 0x01ff, Handler: "rom_r"},
			{Start: 0x0200, End: 0x02ff, Handler: "ram_r"},
		},
		WriteMap: MemoryMap{
			{Start: 0x0200, End: 0x02ff, Handler: "ram_w"},
			{Start: 0x02f0, End: 0x02ff, Handler: "latch_w"},
		},
		DipSwitches: []DipSwitch{
			{Port: 0, Mask: 0x03, Name: "LIVES", Values: []string{"1", "2", "3", "4"}},
		},
		DipDefaults: []uint8{0},
		GfxDecode:   []GfxDecodeInfo{{Start: 0x1000, Layout: tinyLayout(), FirstColor: 0, LastColor: 1}},
		Palette:     Palette{{0, 0, 0}, {0xff, 0xff, 0xff}},
		ColorTable:  ColorTable{0, 1, 1, 1, 0, 0, 0, 1},
		Sound:       Sound{Waveforms: []Waveform{{}}},
	}
}

func TestValidDriver(t *testing.T) {
	require.NoError(t, validDriver().Validate())
}

func TestValidateReversedRange(t *testing.T) {
	d := validDriver()
	d.ReadMap = append(d.ReadMap, AddressRange{Start: 0x9000, End: 0x8fff, Handler: "bad"})
	assert.ErrorIs(t, d.Validate(), ErrRange)
}

func TestValidatePartialOverlap(t *testing.T) {
	d := validDriver()
	d.ReadMap = append(d.ReadMap, AddressRange{Start: 0x01f0, End: 0x020f, Handler: "io_r"})
	err := d.Validate()
	assert.ErrorIs(t, err, ErrOverlap)
	assert.NotErrorIs(t, err, ErrRange)
}

func TestValidateNestedOverlapAllowed(t *testing.T) {
	d := validDriver()
	d.ReadMap = append(d.ReadMap, AddressRange{Start: 0x0000, End: 0x0fff, Handler: "mirror_r"})
	assert.NoError(t, d.Validate())
}

func TestValidateRomSpan(t *testing.T) {
	d := validDriver()
	d.Roms[0].Modules[1].Offset = 0x180
	err := d.Validate()
	assert.ErrorIs(t, err, ErrRomSpan)

	d = validDriver()
	d.Roms[0].Size = 0x300
	assert.ErrorIs(t, d.Validate(), ErrRomSpan)
}

func TestValidateColorIndex(t *testing.T) {
	d := validDriver()
	d.ColorTable[3] = 2
	assert.ErrorIs(t, d.Validate(), ErrColorIndex)

	d = validDriver()
	d.GfxDecode[0].LastColor = 2
	assert.ErrorIs(t, d.Validate(), ErrColorIndex)
}

func TestValidateDipValues(t *testing.T) {
	d := validDriver()
	d.DipSwitches[0].Values = []string{"1", "2", "3"}
	assert.ErrorIs(t, d.Validate(), ErrDipValues)

	d = validDriver()
	d.DipSwitches[0].Port = 1
	assert.ErrorIs(t, d.Validate(), ErrDipValues)
}

func TestValidateWaveforms(t *testing.T) {
	d := validDriver()
	d.Sound.Waveforms = nil
	assert.ErrorIs(t, d.Validate(), ErrWaveform)
}

func TestValidateGfxLayout(t *testing.T) {
	d := validDriver()
	d.GfxDecode[0].Layout.XOffset = []int{0, 5}
	assert.ErrorIs(t, d.Validate(), ErrGfxLayout)

	d = validDriver()
	d.GfxDecode[0].Layout.YOffset = []int{0}
	assert.ErrorIs(t, d.Validate(), ErrGfxLayout)

	d = validDriver()
	d.GfxDecode[0].Start = 0x2000
	assert.ErrorIs(t, d.Validate(), ErrGfxLayout)

	d = validDriver()
	d.GfxDecode[0].Layout.Total = 3
	assert.ErrorIs(t, d.Validate(), ErrGfxLayout)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	d := validDriver()
	d.ColorTable[0] = 9
	d.Sound.Waveforms = nil
	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColorIndex))
	assert.True(t, errors.Is(err, ErrWaveform))
}
