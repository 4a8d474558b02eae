package pengo

import "pengo-emu/driver"

// Handler names the host must bind for Pengo.
const (
	RAMRead         = driver.HandlerID("ram_r")
	RAMWrite        = driver.HandlerID("ram_w")
	ROMRead         = driver.HandlerID("rom_r")
	ROMWrite        = driver.HandlerID("rom_w")
	VideoRAMRead    = driver.HandlerID("pengo_videoram_r")
	VideoRAMWrite   = driver.HandlerID("pengo_videoram_w")
	ColorRAMRead    = driver.HandlerID("pengo_colorram_r")
	ColorRAMWrite   = driver.HandlerID("pengo_colorram_w")
	IN0Read         = driver.HandlerID("pengo_IN0_r")
	IN1Read         = driver.HandlerID("pengo_IN1_r")
	DSW1Read        = driver.HandlerID("pengo_DSW1_r")
	SpriteCode      = driver.HandlerID("pengo_spritecode_w")
	SpritePos       = driver.HandlerID("pengo_spritepos_w")
	SoundWrite      = driver.HandlerID("pengo_sound_w")
	SoundEnable     = driver.HandlerID("pengo_sound_enable_w")
	GfxBank         = driver.HandlerID("pengo_gfxbank_w")
	InterruptEnable = driver.HandlerID("interrupt_enable_w")
)

// Address space layout.
//
//	0000-7fff ROM
//	8000-83ff video RAM
//	8400-87ff colour RAM
//	8800-8fff RAM, 8ff2-8ffd doubles as the sprite code table
//	9000      DSW2 (read) / sound registers 9000-901f (write)
//	9040      DSW1 (read) / interrupt enable (write)
//	9080      IN1
//	90c0      IN0
const (
	VideoRAMBase   = 0x8000
	VideoRAMSize   = 0x0400
	ColorRAMBase   = 0x8400
	ColorRAMSize   = 0x0400
	RAMBase        = 0x8800
	RAMSize        = 0x0800
	SpriteCodeBase = 0x8ff0
	SoundBase      = 0x9000
	SpritePosBase  = 0x9020

	IN0Address  = 0x90c0
	IN1Address  = 0x9080
	DSW1Address = 0x9040
	DSW2Address = 0x9000

	InterruptEnableAddress = 0x9040
	SoundEnableAddress     = 0x9041
	PaletteBankAddress     = 0x9042
	FlipScreenAddress      = 0x9043
	CoinCounter1Address    = 0x9044
	CoinCounter2Address    = 0x9045
	ColorTableBankAddress  = 0x9046
	GfxBankAddress         = 0x9047
	WatchdogAddress        = 0x9070
)

// Sprites is the number of hardware sprites.
const Sprites = 6

// ReadMap returns the CPU read map, first match wins.
func ReadMap() driver.MemoryMap {
	return driver.MemoryMap{
		{Start: 0x8800, End: 0x8fff, Handler: RAMRead},
		{Start: 0x8000, End: 0x83ff, Handler: VideoRAMRead},
		{Start: 0x8400, End: 0x87ff, Handler: ColorRAMRead},
		{Start: 0x0000, End: 0x7fff, Handler: ROMRead},
		{Start: 0x90c0, End: 0x90ff, Handler: IN0Read},
		{Start: 0x9080, End: 0x90bf, Handler: IN1Read},
		{Start: 0x9040, End: 0x907f, Handler: DSW1Read},
		{Start: 0x9000, End: 0x903f, Handler: driver.NoHandler},
	}
}

// WriteMap returns the CPU write map. The sprite code range is nested in
// RAM: the codes are ordinary memory that the video hardware also latches.
func WriteMap() driver.MemoryMap {
	return driver.MemoryMap{
		{Start: 0x8800, End: 0x8fff, Handler: RAMWrite},
		{Start: 0x8ff0, End: 0x8fff, Handler: SpriteCode},
		{Start: 0x8000, End: 0x83ff, Handler: VideoRAMWrite},
		{Start: 0x8400, End: 0x87ff, Handler: ColorRAMWrite},
		{Start: 0x9000, End: 0x901f, Handler: SoundWrite},
		{Start: 0x9020, End: 0x902f, Handler: SpritePos},
		{Start: 0x9040, End: 0x9040, Handler: InterruptEnable},
		{Start: 0x9070, End: 0x9070, Handler: driver.NoHandler},
		{Start: 0x9041, End: 0x9041, Handler: SoundEnable},
		{Start: 0x9047, End: 0x9047, Handler: GfxBank},
		{Start: 0x9042, End: 0x9046, Handler: driver.NoHandler},
		{Start: 0x0000, End: 0x7fff, Handler: ROMWrite},
	}
}
