package machine

import (
	"pengo-emu/driver"
	"pengo-emu/register"
)

// Voices is the number of sound generator voices.
const Voices = 3

// Voice is the register state of one wavetable voice. Frequency is the
// phase increment the generator adds every sample; voice 0 has 20 bits,
// voices 1 and 2 have 16 bits with the low nibble fixed at 0.
type Voice struct {
	Waveform  uint8
	Frequency uint32
	Volume    uint8
}

// Sample looks the voice's current waveform up at position phase and
// scales it by the volume. It is a lookup only; mixing is left to the host.
func (v Voice) Sample(waves []driver.Waveform, phase int) int {
	if int(v.Waveform) >= len(waves) {
		return 0
	}
	return waves[v.Waveform].Signed(phase) * int(v.Volume)
}

// Sound register layout, offsets from 0x9000. Every register holds one
// nibble.
const (
	soundWave0   = 0x05
	soundWave1   = 0x0a
	soundWave2   = 0x0f
	soundFreq0   = 0x10 // 0x10-0x14
	soundVolume0 = 0x15
	soundFreq1   = 0x16 // 0x16-0x19
	soundVolume1 = 0x1a
	soundFreq2   = 0x1b // 0x1b-0x1e
	soundVolume2 = 0x1f
)

var nibbleNames = [4]string{"nibble0", "nibble1", "nibble2", "nibble3"}

// CreateFrequencyRegister lays out four frequency registers of a voice,
// least significant nibble first.
func CreateFrequencyRegister() register.Register {
	return register.CreateRegister(map[string]register.Field{
		nibbleNames[0]: {Index: 0, Size: 4},
		nibbleNames[1]: {Index: 4, Size: 4},
		nibbleNames[2]: {Index: 8, Size: 4},
		nibbleNames[3]: {Index: 12, Size: 4},
	})
}

// CreateWaveSelectRegister lays out a waveform select register. The top
// bit of the nibble is not wired.
func CreateWaveSelectRegister() register.Register {
	return register.CreateRegister(map[string]register.Field{
		"waveform": {Index: 0, Size: 3},
	})
}

// writeSound decodes one write to the sound registers. The remaining
// offsets are the voices' phase accumulators, which the generator owns.
func (h *Hardware) writeSound(offset uint16, data uint8) {
	data &= 0x0F
	h.soundRegs[offset&0x1f] = data

	switch {
	case offset == soundWave0 || offset == soundWave1 || offset == soundWave2:
		h.waveSelect.SetReg(uint16(data))
		h.voices[(offset-soundWave0)/5].Waveform = uint8(h.waveSelect.GetField("waveform"))
	case offset == soundVolume0:
		h.voices[0].Volume = data
	case offset == soundVolume1:
		h.voices[1].Volume = data
	case offset == soundVolume2:
		h.voices[2].Volume = data
	case offset >= soundFreq0 && offset < soundFreq0+4:
		h.frequency[0].SetField(nibbleNames[offset-soundFreq0], uint16(data))
		h.voices[0].Frequency = h.frequency0()
	case offset == soundFreq0+4:
		h.voices[0].Frequency = h.frequency0()
	case offset >= soundFreq1 && offset < soundFreq1+4:
		h.frequency[1].SetField(nibbleNames[offset-soundFreq1], uint16(data))
		h.voices[1].Frequency = uint32(h.frequency[1].Reg) << 4
	case offset >= soundFreq2 && offset < soundFreq2+4:
		h.frequency[2].SetField(nibbleNames[offset-soundFreq2], uint16(data))
		h.voices[2].Frequency = uint32(h.frequency[2].Reg) << 4
	}
}

// frequency0 adds the fifth nibble that only voice 0 has.
func (h *Hardware) frequency0() uint32 {
	return uint32(h.soundRegs[soundFreq0+4])<<16 | uint32(h.frequency[0].Reg)
}
