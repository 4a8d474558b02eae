// Package sound previews the driver's waveform tables: it plays a single
// waveform at a fixed pitch and writes it to WAV files or the speaker.
package sound

import (
	"fmt"

	"pengo-emu/driver"
)

// SampleRate is the default preview rate.
const SampleRate = 44100

// sampleScale lifts -8*15..7*15 to the 16 bit range.
const sampleScale = 256

// Render plays waveform w at freq Hz for seconds and returns 16 bit
// samples. volume is the generator's 4 bit volume.
func Render(w driver.Waveform, freq float64, rate int, seconds float64, volume uint8) ([]int, error) {
	if rate <= 0 || freq <= 0 || seconds <= 0 {
		return nil, fmt.Errorf("invalid render parameters: %.1f Hz at %d Hz for %.2fs", freq, rate, seconds)
	}
	if volume > 0x0F {
		return nil, fmt.Errorf("volume %d exceeds 15", volume)
	}

	n := int(float64(rate) * seconds)
	step := freq * driver.WaveformLength / float64(rate)
	out := make([]int, n)
	phase := 0.0
	for i := range out {
		out[i] = w.Signed(int(phase)) * int(volume) * sampleScale
		phase += step
		if phase >= driver.WaveformLength {
			phase -= driver.WaveformLength * float64(int(phase/driver.WaveformLength))
		}
	}
	return out, nil
}
