package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengo-emu/machine"
	"pengo-emu/pengo"
)

func TestFindCommand(t *testing.T) {
	for _, name := range []string{"info", "verify", "tiles", "waves", "play", "view", "probe"} {
		c, ok := findCommand(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, c.name)
	}
	_, ok := findCommand("run")
	assert.False(t, ok)
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, pengo.Driver())
	out := buf.String()

	assert.Contains(t, out, "pengo: 3.072 MHz, 60 Hz, 224x288")
	assert.Contains(t, out, "  8ff0-8fff pengo_spritecode_w")
	assert.Contains(t, out, "  9070-9070 (host default)")
	assert.Contains(t, out, "LIVES        mask 18 default 3")
	assert.Contains(t, out, "palette: 32 colours, colour table: 64 groups, waveforms: 8")
}

func TestProbe(t *testing.T) {
	m, err := machine.New(log.NewTestLogger(t), pengo.Driver(), nil, pengo.DefaultDSW1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, probe(&buf, m))
	out := buf.String()

	assert.Contains(t, out, "IN0  (90c0) = 7f")
	assert.Contains(t, out, "DSW2 (9000) = ff")
	assert.Contains(t, out, "ROM  (0000) = ff")
	assert.Contains(t, out, "sprite 0: code 10 flip x=true y=true colour 11 at 128,64")
	assert.Contains(t, out, "gfx bank 1: sprite 0 image at 13280")
}

func TestViewerNavigation(t *testing.T) {
	d := pengo.Driver()
	v := newViewer(context.Background(), log.NewTestLogger(t), d, nil, []uint8{pengo.DefaultDSW1})

	v.nextEntry(-1)
	assert.Equal(t, 3, v.entry)
	v.nextGroup(-1)
	assert.Equal(t, 31, v.group)
	v.nextEntry(1)
	assert.Equal(t, 0, v.entry)
	assert.Equal(t, 31, v.group)

	v.nextDip(0)
	s := d.DipSwitches[v.dip]
	require.Equal(t, "LIVES", s.Name)
	v.stepDip()
	assert.Equal(t, "4", s.Decode(v.banks[0]))
	v.nextDip(1)
	v.stepDip()
	assert.Equal(t, "50000", d.DipSwitches[1].Decode(v.banks[0]))
}
