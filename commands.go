package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
	"pengo-emu/gfx"
	"pengo-emu/machine"
	"pengo-emu/mapper"
	"pengo-emu/pengo"
	"pengo-emu/rom"
	"pengo-emu/sound"
)

var errNoRoms = errors.New("no rom directory given, use -roms or rom_dir in the config")

func loadRoms(ctx context.Context, env *environment, d *driver.MachineDriver, dir string) (*rom.Set, error) {
	if dir == "" {
		return nil, errNoRoms
	}
	return rom.Load(ctx, env.logger, os.DirFS(dir), d.Roms)
}

func runInfo(_ context.Context, _ *environment, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	printInfo(os.Stdout, pengo.Driver())
	return nil
}

func printInfo(w io.Writer, d *driver.MachineDriver) {
	fmt.Fprintf(w, "%s: %.3f MHz, %d Hz, %dx%d\n", d.Name, float64(d.CPUClock)/1e6, d.FramesPerSecond, d.Video.Width, d.Video.Height)

	printMap := func(title string, m driver.MemoryMap) {
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, r := range m {
			h := string(r.Handler)
			if r.Handler == driver.NoHandler {
				h = "(host default)"
			}
			fmt.Fprintf(w, "  %04x-%04x %s\n", r.Start, r.End, h)
		}
	}
	printMap("read map", d.ReadMap)
	printMap("write map", d.WriteMap)

	fmt.Fprintf(w, "\ninputs:\n")
	for _, p := range d.Inputs {
		names := make([]string, 0, len(p.Bits))
		for i := len(p.Bits) - 1; i >= 0; i-- {
			names = append(names, p.Bits[i].Name)
		}
		fmt.Fprintf(w, "  %-5s %04x active low=%t: %s\n", p.Name, p.Address, p.ActiveLow, strings.Join(names, ", "))
	}

	fmt.Fprintf(w, "\ndip switches:\n")
	for _, s := range d.DipSwitches {
		fmt.Fprintf(w, "  %-12s mask %02x default %-8s %s\n", s.Name, s.Mask, s.Decode(d.DipDefaults[s.Port]), strings.Join(s.Values, "/"))
	}

	fmt.Fprintf(w, "\nroms:\n")
	for _, r := range d.Roms {
		fmt.Fprintf(w, "  %s %05x-%05x\n", r.Name, r.Base, r.Base+r.Size-1)
		for _, m := range r.Modules {
			fmt.Fprintf(w, "    %-14s %05x %5x\n", m.Name, m.Offset, m.Length)
		}
	}

	fmt.Fprintf(w, "\ngfx:\n")
	for _, g := range d.GfxDecode {
		fmt.Fprintf(w, "  %05x %d %dx%d tiles, colours %d-%d\n", g.Start, g.Layout.Total, g.Layout.Width, g.Layout.Height, g.FirstColor, g.LastColor)
	}
	fmt.Fprintf(w, "\npalette: %d colours, colour table: %d groups, waveforms: %d\n",
		len(d.Palette), d.ColorTable.Groups(), len(d.Sound.Waveforms))
}

func runVerify(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	dir := fs.String("roms", env.opts.RomDir, "rom directory to check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := pengo.Driver()
	if err := d.Validate(); err != nil {
		return fmt.Errorf("driver tables: %w", err)
	}
	env.logger.Info("Driver tables consistent",
		log.Int("read ranges", len(d.ReadMap)),
		log.Int("write ranges", len(d.WriteMap)),
		log.Int("handlers", len(d.Handlers())))

	if *dir == "" {
		return nil
	}
	if _, err := loadRoms(ctx, env, d, *dir); err != nil {
		return err
	}
	env.logger.Info("Rom set complete", log.String("dir", *dir))
	return nil
}

func runTiles(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("tiles", flag.ContinueOnError)
	dir := fs.String("roms", env.opts.RomDir, "rom directory")
	out := fs.String("o", "tiles.png", "output file, .png or .bmp")
	entry := fs.Int("bank", 0, "gfx decode entry 0-3")
	group := fs.Int("color", 1, "colour group within the entry")
	perRow := fs.Int("per-row", 16, "tiles per row")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := pengo.Driver()
	if *entry < 0 || *entry >= len(d.GfxDecode) {
		return fmt.Errorf("bank %d out of range 0-%d", *entry, len(d.GfxDecode)-1)
	}
	format := gfx.Format(strings.TrimPrefix(filepath.Ext(*out), "."))

	set, err := loadRoms(ctx, env, d, *dir)
	if err != nil {
		return err
	}
	info := d.GfxDecode[*entry]
	data, err := set.At(info.Start)
	if err != nil {
		return err
	}
	img, err := gfx.BankSheet(data, info, *perRow, d.Palette, d.ColorTable, *group)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := gfx.Write(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	env.logger.Info("Wrote tile sheet", log.String("file", *out), log.Int("tiles", info.Layout.Total))
	return nil
}

func runWaves(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("waves", flag.ContinueOnError)
	out := fs.String("o", ".", "output directory")
	freq := fs.Float64("freq", 440, "pitch in Hz")
	seconds := fs.Float64("seconds", 1, "length of each file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for i, w := range pengo.Driver().Sound.Waveforms {
		if err := ctx.Err(); err != nil {
			return err
		}
		samples, err := sound.Render(w, *freq, sound.SampleRate, *seconds, 0x0F)
		if err != nil {
			return err
		}
		name := filepath.Join(*out, fmt.Sprintf("wave%d.wav", i))
		if err := writeWave(name, samples); err != nil {
			return err
		}
		env.logger.Debug("Wrote waveform", log.String("file", name))
	}
	env.logger.Info("Wrote waveforms", log.String("dir", *out))
	return nil
}

func writeWave(name string, samples []int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := sound.WriteWAV(f, samples, sound.SampleRate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runPlay(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	wave := fs.Int("wave", 0, "waveform 0-7")
	freq := fs.Float64("freq", 440, "pitch in Hz")
	seconds := fs.Float64("seconds", 1, "duration")
	volume := fs.Uint("volume", 15, "volume 0-15")
	if err := fs.Parse(args); err != nil {
		return err
	}

	waves := pengo.Driver().Sound.Waveforms
	if *wave < 0 || *wave >= len(waves) {
		return fmt.Errorf("waveform %d out of range 0-%d", *wave, len(waves)-1)
	}
	if *volume > 0x0F {
		return fmt.Errorf("volume %d exceeds 15", *volume)
	}
	samples, err := sound.Render(waves[*wave], *freq, sound.SampleRate, *seconds, uint8(*volume))
	if err != nil {
		return err
	}

	player, err := sound.NewPlayer(sound.SampleRate)
	if err != nil {
		return err
	}
	env.logger.Info("Playing waveform", log.Int("wave", *wave), log.String("freq", fmt.Sprintf("%.1f Hz", *freq)))
	return player.Play(ctx, samples)
}

// runProbe drives the bus the way the game does at boot: it reads the
// controls and dip switches and sets up sprite 0.
func runProbe(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	dir := fs.String("roms", env.opts.RomDir, "rom directory, optional")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := pengo.Driver()
	banks, err := env.opts.DipBanks(d)
	if err != nil {
		return err
	}

	var program []uint8
	if *dir != "" {
		set, err := loadRoms(ctx, env, d, *dir)
		if err != nil {
			return err
		}
		if program, err = set.Region(pengo.CPURegion); err != nil {
			return err
		}
	}

	m, err := machine.New(env.logger, d, program, banks[0])
	if err != nil {
		return err
	}
	return probe(os.Stdout, m)
}

func probe(w io.Writer, m *machine.Machine) error {
	if err := m.Press(pengo.IN0, pengo.Push1); err != nil {
		return err
	}
	fmt.Fprintf(w, "IN0  (90c0) = %02x with PUSH1 held\n", m.Bus.Read(pengo.IN0Address))
	fmt.Fprintf(w, "IN1  (9080) = %02x\n", m.Bus.Read(pengo.IN1Address))
	fmt.Fprintf(w, "DSW1 (9040) = %02x\n", m.Bus.Read(pengo.DSW1Address))
	fmt.Fprintf(w, "DSW2 (9000) = %02x\n", m.Bus.Read(pengo.DSW2Address))
	fmt.Fprintf(w, "ROM  (0000) = %02x\n", m.Bus.Read(0x0000))

	m.Bus.Write(0x8ff2, 0x2B)
	m.Bus.Write(0x8ff3, 0x11)
	m.Bus.Write(0x9022, 0x80)
	m.Bus.Write(0x9023, 0x40)
	s := m.Sprite(0)
	fmt.Fprintf(w, "sprite 0: code %d flip x=%t y=%t colour %02x at %d,%d\n",
		s.Code(), s.FlipX(), s.FlipY(), s.Color, s.X, s.Y)

	for bank := uint8(0); bank < 2; bank++ {
		m.Bus.Write(pengo.GfxBankAddress, bank)
		addr, ok := m.TileAddress(mapper.Sprites, uint16(s.Code()))
		if !ok {
			return fmt.Errorf("sprite code %d outside gfx bank %d", s.Code(), bank)
		}
		fmt.Fprintf(w, "gfx bank %d: sprite 0 image at %05x\n", bank, addr)
	}
	return nil
}
