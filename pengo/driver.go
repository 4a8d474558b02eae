// Package pengo declares the tables of the Sega Pengo arcade board: a Z80
// at 3.072 MHz driving a rotated 224x288 tile and sprite display and a
// three voice wavetable sound generator.
package pengo

import "pengo-emu/driver"

// Name is the driver's short name.
const Name = "pengo"

// Hook names implemented by the host.
const (
	VideoStart   = "pengo_vh_start"
	VideoStop    = "pengo_vh_stop"
	VideoRefresh = "pengo_vh_screenrefresh"
	SoundUpdate  = "pengo_sh_update"
	Interrupt    = "interrupt"
)

// Driver returns a fresh machine driver record for Pengo.
func Driver() *driver.MachineDriver {
	return &driver.MachineDriver{
		Name: Name,
		Roms: Roms(),

		CPUClock:            3072000,
		FramesPerSecond:     60,
		InterruptsPerFrame:  1,
		Interrupt:           Interrupt,
		ReadMap:             ReadMap(),
		WriteMap:            WriteMap(),
		Inputs:              Inputs(),
		DipSwitches:         DipSwitches(),
		DipDefaults:         []uint8{DefaultDSW1},
		WatchdogAddress:     WatchdogAddress,
		InterruptEnableAddr: InterruptEnableAddress,

		Video: driver.Video{
			Width:   224,
			Height:  288,
			Visible: driver.Rect{MinX: 0, MaxX: 224 - 1, MinY: 0, MaxY: 288 - 1},
			Start:   VideoStart,
			Stop:    VideoStop,
			Refresh: VideoRefresh,
		},
		GfxDecode:  GfxDecode(),
		Palette:    Palette(),
		ColorTable: ColorTable(),
		UI: driver.UIColors{
			NumbersStart: '0',
			LettersStart: 'A',
			White:        0x01,
			Yellow:       0x18,
			DipMenuX:     8 * 11,
			DipMenuY:     8 * 20,
			DipMenuColor: 0x16,
		},

		Sound: driver.Sound{
			Waveforms:   Waveforms(),
			EnableLatch: SoundEnableAddress,
			Update:      SoundUpdate,
		},
	}
}
