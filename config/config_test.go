package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengo-emu/pengo"
)

func TestDecode(t *testing.T) {
	opts, err := Decode(strings.NewReader(`{"rom_dir": "roms", "dip": {"LIVES": "5"}, "debug": true}`))
	require.NoError(t, err)
	assert.Equal(t, Options{RomDir: "roms", Dip: map[string]string{"LIVES": "5"}, Debug: true}, opts)

	_, err = Decode(strings.NewReader(`{"rom_dir": 1}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "pengo.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"quiet": true}`), 0o600))

	opts, err := Load(name)
	require.NoError(t, err)
	assert.True(t, opts.Quiet)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDipBanks(t *testing.T) {
	d := pengo.Driver()

	banks, err := Options{}.DipBanks(d)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0xb0}, banks)

	banks, err = Options{Dip: map[string]string{"LIVES": "5", "DIFFICULTY": "EASY", "BONUS": "50000"}}.DipBanks(d)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0xe1}, banks)
	assert.Equal(t, []uint8{0xb0}, d.DipDefaults)

	_, err = Options{Dip: map[string]string{"FREE PLAY": "ON"}}.DipBanks(d)
	assert.Error(t, err)
	_, err = Options{Dip: map[string]string{"LIVES": "9"}}.DipBanks(d)
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
