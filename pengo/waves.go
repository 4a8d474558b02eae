package pengo

import "pengo-emu/driver"

// Waveforms returns the eight waveforms of the sound generator.
func Waveforms() []driver.Waveform {
	return []driver.Waveform{
		{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x77, 0x77, 0x00, 0x00, 0x88, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00,
			0x77, 0x77, 0x77, 0x00, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00, 0x77, 0x77, 0x00, 0x00, 0x88, 0x88,
		},
		{
			0xff, 0x11, 0x22, 0x33, 0xff, 0x55, 0x55, 0xff, 0x66, 0xff, 0x55, 0x55, 0xff, 0x33, 0x22, 0x11,
			0xff, 0xdd, 0xff, 0xbb, 0xff, 0x99, 0xff, 0x88, 0xff, 0x88, 0xff, 0x99, 0xff, 0xbb, 0xff, 0xdd,
		},
		{
			0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
			0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88,
		},
		{
			0x00, 0x00, 0x00, 0x88, 0x00, 0x00, 0x77, 0x77, 0x88, 0x88, 0x00, 0x00, 0x00, 0x77, 0x77, 0x77,
			0x88, 0x00, 0x00, 0x88, 0x77, 0x77, 0x00, 0x00, 0x00, 0x00, 0x77, 0x00, 0x88, 0x88, 0x88, 0x00,
		},
		{
			0xff, 0x22, 0x44, 0x55, 0x66, 0x55, 0x44, 0x22, 0xff, 0xcc, 0xaa, 0x99, 0x88, 0x99, 0xaa, 0xcc,
			0xff, 0x33, 0x55, 0x66, 0x55, 0x33, 0xff, 0xbb, 0x99, 0x88, 0x99, 0xbb, 0xff, 0x66, 0xff, 0x88,
		},
		{
			0xff, 0x66, 0x44, 0x11, 0x44, 0x66, 0x22, 0xff, 0x44, 0x77, 0x55, 0x00, 0x22, 0x33, 0xff, 0xaa,
			0x00, 0x55, 0x11, 0xcc, 0xdd, 0xff, 0xaa, 0x88, 0xbb, 0x00, 0xdd, 0x99, 0xbb, 0xee, 0xbb, 0x99,
		},
		{
			0xff, 0x00, 0x22, 0x44, 0x66, 0x55, 0x44, 0x44, 0x33, 0x22, 0x00, 0xff, 0xdd, 0xee, 0xff, 0x00,
			0x00, 0x11, 0x22, 0x33, 0x11, 0x00, 0xee, 0xdd, 0xcc, 0xcc, 0xbb, 0xaa, 0xcc, 0xee, 0x00, 0x11,
		},
		{
			0x22, 0x44, 0x44, 0x22, 0xff, 0xff, 0x00, 0x33, 0x55, 0x66, 0x55, 0x22, 0xee, 0xdd, 0xdd, 0xff,
			0x11, 0x11, 0x00, 0xcc, 0x99, 0x88, 0x99, 0xbb, 0xee, 0xff, 0xff, 0xcc, 0xaa, 0xaa, 0xcc, 0xff,
		},
	}
}
