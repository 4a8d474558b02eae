package driver

// WaveformLength is the number of 4 bit samples per waveform.
const WaveformLength = 32

// Waveform is one entry of the sound generator's wave ROM.
type Waveform [WaveformLength]uint8

// Sample returns the 4 bit sample at position i, wrapping around.
// Wave bytes carry the sample in their low nibble.
func (w Waveform) Sample(i int) uint8 {
	return w[i&(WaveformLength-1)] & 0x0F
}

// Signed returns Sample centred on zero, in -8..7.
func (w Waveform) Signed(i int) int {
	return int(w.Sample(i)) - 8
}
