package sound

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes samples as a mono 16 bit PCM file.
func WriteWAV(w io.WriteSeeker, samples []int, rate int) (rerr error) {
	enc := wav.NewEncoder(w, rate, 16, 1, 1)
	defer func() {
		if err := enc.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
