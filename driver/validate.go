package driver

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrRange      = errors.New("invalid address range")
	ErrOverlap    = errors.New("overlapping address ranges")
	ErrRomSpan    = errors.New("rom region span mismatch")
	ErrColorIndex = errors.New("colour index out of range")
	ErrDipValues  = errors.New("dip switch value count mismatch")
	ErrWaveform   = errors.New("invalid waveform table")
	ErrGfxLayout  = errors.New("invalid graphics layout")
)

// Validate checks the tables for internal consistency. All problems found
// are returned joined; nil means the driver is consistent.
func (d *MachineDriver) Validate() error {
	var errs []error
	errs = append(errs, validateMap("read", d.ReadMap)...)
	errs = append(errs, validateMap("write", d.WriteMap)...)
	for _, r := range d.Roms {
		errs = append(errs, validateRegion(r)...)
	}
	errs = append(errs, d.validateColors()...)
	errs = append(errs, d.validateDips()...)
	errs = append(errs, d.validateGfx()...)
	if len(d.Sound.Waveforms) == 0 {
		errs = append(errs, fmt.Errorf("%w: no waveforms", ErrWaveform))
	}
	return errors.Join(errs...)
}

// validateMap allows ranges bound to different handlers to overlap only
// when one is nested inside the other.
func validateMap(name string, m MemoryMap) []error {
	var errs []error
	for i, r := range m {
		if r.Start > r.End {
			errs = append(errs, fmt.Errorf("%w: %s map entry %d 0x%04x-0x%04x", ErrRange, name, i, r.Start, r.End))
			continue
		}
		for _, other := range m[:i] {
			if other.Handler == r.Handler || !r.Overlaps(other) {
				continue
			}
			if r.Within(other) || other.Within(r) {
				continue
			}
			errs = append(errs, fmt.Errorf("%w: %s map 0x%04x-0x%04x (%s) and 0x%04x-0x%04x (%s)",
				ErrOverlap, name, other.Start, other.End, other.Handler, r.Start, r.End, r.Handler))
		}
	}
	return errs
}

func validateRegion(r RomRegion) []error {
	var errs []error
	modules := append([]RomModule(nil), r.Modules...)
	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Offset < modules[j].Offset })

	next := r.Base
	for _, m := range modules {
		if m.Offset != next {
			errs = append(errs, fmt.Errorf("%w: region %s module %s at 0x%05x, expected 0x%05x",
				ErrRomSpan, r.Name, m.Name, m.Offset, next))
		}
		next = m.End()
	}
	if loaded := r.Loaded(); loaded != r.Size {
		errs = append(errs, fmt.Errorf("%w: region %s modules total 0x%x bytes, region size 0x%x",
			ErrRomSpan, r.Name, loaded, r.Size))
	}
	return errs
}

func (d *MachineDriver) validateColors() []error {
	var errs []error
	if len(d.ColorTable)%ColorTableGroupSize != 0 {
		errs = append(errs, fmt.Errorf("%w: colour table length %d is not a multiple of %d",
			ErrColorIndex, len(d.ColorTable), ColorTableGroupSize))
	}
	for i, c := range d.ColorTable {
		if int(c) >= len(d.Palette) {
			errs = append(errs, fmt.Errorf("%w: colour table entry %d is %d, palette has %d entries",
				ErrColorIndex, i, c, len(d.Palette)))
		}
	}
	return errs
}

func (d *MachineDriver) validateDips() []error {
	var errs []error
	for _, s := range d.DipSwitches {
		if s.Mask == 0 || len(s.Values) != s.Positions() {
			errs = append(errs, fmt.Errorf("%w: %s mask 0x%02x needs %d values, has %d",
				ErrDipValues, s.Name, s.Mask, s.Positions(), len(s.Values)))
		}
		if s.Port < 0 || s.Port >= len(d.DipDefaults) {
			errs = append(errs, fmt.Errorf("%w: %s refers to bank %d without a default", ErrDipValues, s.Name, s.Port))
		}
	}
	return errs
}

func (d *MachineDriver) validateGfx() []error {
	var errs []error
	for i, g := range d.GfxDecode {
		if g.Layout == nil {
			errs = append(errs, fmt.Errorf("%w: decode entry %d has no layout", ErrGfxLayout, i))
			continue
		}
		if err := g.Layout.check(); err != nil {
			errs = append(errs, fmt.Errorf("decode entry %d: %w", i, err))
		}
		region, ok := d.RegionAt(g.Start)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: decode entry %d starts at 0x%05x outside any rom region", ErrGfxLayout, i, g.Start))
		} else if g.Start+uint32(g.Layout.Bytes()) > region.Base+region.Size {
			errs = append(errs, fmt.Errorf("%w: decode entry %d runs past the end of region %s", ErrGfxLayout, i, region.Name))
		}
		if g.FirstColor > g.LastColor || g.LastColor >= d.ColorTable.Groups() {
			errs = append(errs, fmt.Errorf("%w: decode entry %d colours %d-%d, colour table has %d groups",
				ErrColorIndex, i, g.FirstColor, g.LastColor, d.ColorTable.Groups()))
		}
	}
	return errs
}

// check verifies every pixel of a tile decodes from inside the tile's own
// bytes.
func (l *GfxLayout) check() error {
	switch {
	case len(l.YOffset) != l.Height || len(l.XOffset) != l.Width:
		return fmt.Errorf("%w: %dx%d tile with %d row and %d column offsets",
			ErrGfxLayout, l.Width, l.Height, len(l.YOffset), len(l.XOffset))
	case l.CharIncrement <= 0 || l.CharIncrement%8 != 0:
		return fmt.Errorf("%w: increment of %d bits is not a whole number of bytes", ErrGfxLayout, l.CharIncrement)
	case l.Planes < 1 || l.PixelsPerByte < 1 || l.Planes*l.PixelsPerByte > 8:
		return fmt.Errorf("%w: %d planes with %d pixels per byte", ErrGfxLayout, l.Planes, l.PixelsPerByte)
	}

	maxY, maxX := 0, 0
	for _, y := range l.YOffset {
		if y < 0 {
			return fmt.Errorf("%w: negative row offset %d", ErrGfxLayout, y)
		}
		maxY = max(maxY, y)
	}
	for _, x := range l.XOffset {
		if x < 0 {
			return fmt.Errorf("%w: negative column offset %d", ErrGfxLayout, x)
		}
		maxX = max(maxX, x)
	}
	if last := maxY + maxX + l.PlaneOffset(l.Planes-1); last >= l.CharIncrement {
		return fmt.Errorf("%w: bit %d is outside the %d bit tile", ErrGfxLayout, last, l.CharIncrement)
	}
	return nil
}
