package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays rendered previews on the default audio device.
type Player struct {
	ctx  *oto.Context
	rate int
}

// NewPlayer opens the audio device at rate Hz.
func NewPlayer(rate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready
	return &Player{ctx: ctx, rate: rate}, nil
}

// Play blocks until samples have been played or ctx is done.
func (p *Player) Play(ctx context.Context, samples []int) error {
	player := p.ctx.NewPlayer(bytes.NewReader(EncodePCM(samples)))
	defer player.Close()

	player.Play()
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// EncodePCM converts samples to signed 16 bit little endian bytes.
func EncodePCM(samples []int) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
	}
	return out
}
