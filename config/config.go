// Package config handles application configuration and setup.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
)

// Options are the user settings read from a JSON file, for example
//
//	{"rom_dir": "roms/pengo", "dip": {"LIVES": "5", "DIFFICULTY": "EASY"}}
type Options struct {
	RomDir string            `json:"rom_dir"`
	Dip    map[string]string `json:"dip"`
	Debug  bool              `json:"debug"`
	Quiet  bool              `json:"quiet"`
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Load reads options from a JSON file.
func Load(name string) (Options, error) {
	f, err := os.Open(name)
	if err != nil {
		return Options{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads options from r.
func Decode(r io.Reader) (Options, error) {
	var opts Options
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing config: %w", err)
	}
	return opts, nil
}

// DipBanks applies the chosen dip switch settings on top of the driver's
// factory defaults and returns the resulting banks.
func (o Options) DipBanks(d *driver.MachineDriver) ([]uint8, error) {
	banks := append([]uint8(nil), d.DipDefaults...)

	names := make([]string, 0, len(o.Dip))
	for name := range o.Dip {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s, ok := d.DipSwitch(name)
		if !ok {
			return nil, fmt.Errorf("driver %s has no dip switch %q", d.Name, name)
		}
		if s.Port >= len(banks) {
			return nil, fmt.Errorf("dip switch %s refers to missing bank %d", name, s.Port)
		}
		bank, err := s.Encode(banks[s.Port], o.Dip[name])
		if err != nil {
			return nil, err
		}
		banks[s.Port] = bank
	}
	return banks, nil
}
