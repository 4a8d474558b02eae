package pengo

import "pengo-emu/driver"

// ROM region names.
const (
	CPURegion = "cpu"
	GfxRegion = "gfx"
)

// Roms returns the ROM set: eight 4K program ROMs and two 8K graphics ROMs.
// The graphics live above the CPU address space, at 0x10000.
func Roms() []driver.RomRegion {
	return []driver.RomRegion{
		{
			Name: CPURegion, Base: 0x00000, Size: 0x8000,
			Modules: []driver.RomModule{
				{Name: "pengopop.u8", Offset: 0x00000, Length: 0x1000},
				{Name: "pengopop.u7", Offset: 0x01000, Length: 0x1000},
				{Name: "pengopop.u15", Offset: 0x02000, Length: 0x1000},
				{Name: "pengopop.u14", Offset: 0x03000, Length: 0x1000},
				{Name: "pengopop.u21", Offset: 0x04000, Length: 0x1000},
				{Name: "pengopop.u20", Offset: 0x05000, Length: 0x1000},
				{Name: "pengopop.u32", Offset: 0x06000, Length: 0x1000},
				{Name: "pengopop.u31", Offset: 0x07000, Length: 0x1000},
			},
		},
		{
			Name: GfxRegion, Base: 0x10000, Size: 0x4000,
			Modules: []driver.RomModule{
				{Name: "pengopop.u92", Offset: 0x10000, Length: 0x2000},
				{Name: "pengopop.105", Offset: 0x12000, Length: 0x2000},
			},
		},
	}
}
