package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengo-emu/pengo"
)

func TestRenderOnePeriod(t *testing.T) {
	w := pengo.Waveforms()[2]
	// one sample per wave step
	samples, err := Render(w, 1, 32, 1, 15)
	require.NoError(t, err)
	require.Len(t, samples, 32)
	assert.Equal(t, -2*15*256, samples[0])
	assert.Equal(t, -2*15*256, samples[15])
	assert.Equal(t, 0, samples[16])
	assert.Equal(t, 0, samples[31])
}

func TestRenderSilentAtZeroVolume(t *testing.T) {
	samples, err := Render(pengo.Waveforms()[1], 440, SampleRate, 0.05, 0)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Equal(t, 0, s)
	}
}

func TestRenderRejectsBadParameters(t *testing.T) {
	w := pengo.Waveforms()[0]
	_, err := Render(w, 0, SampleRate, 1, 15)
	assert.Error(t, err)
	_, err = Render(w, 440, 0, 1, 15)
	assert.Error(t, err)
	_, err = Render(w, 440, SampleRate, 1, 16)
	assert.Error(t, err)
}

func TestWriteWAV(t *testing.T) {
	samples, err := Render(pengo.Waveforms()[4], 440, SampleRate, 0.1, 15)
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "wave4.wav")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, samples, SampleRate))
	require.NoError(t, f.Close())

	f, err = os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	assert.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(SampleRate), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)
}

func TestEncodePCM(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x01, 0xff, 0xff}, EncodePCM([]int{0x100, -1}))
}
