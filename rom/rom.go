// Package rom assembles a driver's ROM regions from image files.
package rom

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
)

var (
	ErrMissing = errors.New("rom image missing")
	ErrSize    = errors.New("rom image size mismatch")
	ErrRegion  = errors.New("unknown rom region")
)

// Set holds the loaded contents of every region.
type Set struct {
	regions map[string][]uint8
	layout  []driver.RomRegion
}

// Load reads each module of regions from fsys into its region buffer.
// Every file must exist and match its declared length exactly.
func Load(ctx context.Context, logger *log.Logger, fsys fs.FS, regions []driver.RomRegion) (*Set, error) {
	set := &Set{
		regions: make(map[string][]uint8, len(regions)),
		layout:  regions,
	}

	for _, region := range regions {
		buf := make([]uint8, region.Size)
		for _, m := range region.Modules {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := loadModule(fsys, region, m, buf); err != nil {
				return nil, err
			}
			logger.Debug("Loaded rom",
				log.String("file", m.Name),
				log.String("offset", fmt.Sprintf("0x%05X", m.Offset)),
				log.Int("length", int(m.Length)))
		}
		set.regions[region.Name] = buf
	}
	return set, nil
}

func loadModule(fsys fs.FS, region driver.RomRegion, m driver.RomModule, buf []uint8) error {
	data, err := fs.ReadFile(fsys, m.Name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissing, m.Name)
		}
		return fmt.Errorf("reading rom %s: %w", m.Name, err)
	}
	if uint32(len(data)) != m.Length {
		return fmt.Errorf("%w: %s is %d bytes, expected %d", ErrSize, m.Name, len(data), m.Length)
	}
	start := m.Offset - region.Base
	if m.Offset < region.Base || start+m.Length > region.Size {
		return fmt.Errorf("%w: %s does not fit region %s", ErrSize, m.Name, region.Name)
	}
	copy(buf[start:], data)
	return nil
}

// Region returns the contents of the named region.
func (s *Set) Region(name string) ([]uint8, error) {
	buf, ok := s.regions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegion, name)
	}
	return buf, nil
}

// At returns the bytes starting at a flat offset up to the end of the
// region holding it.
func (s *Set) At(offset uint32) ([]uint8, error) {
	for _, r := range s.layout {
		if r.Contains(offset) {
			return s.regions[r.Name][offset-r.Base:], nil
		}
	}
	return nil, fmt.Errorf("%w: no region holds offset 0x%05X", ErrRegion, offset)
}
