package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"

	"pengo-emu/driver"
	"pengo-emu/gfx"
	"pengo-emu/pengo"
	"pengo-emu/rom"
)

const (
	screenWidth  = 640
	screenHeight = 420

	sheetScale   = 2
	sheetPerRow  = 16
	sheetX       = 8
	sheetY       = 24
	swatchSize   = 12
	menuX        = 300
	lineHeight   = 16
	paletteY     = 330
	colorGroupY  = paletteY + swatchSize + 8
	spritePerRow = 8
)

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GRAY  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

type sheetKey struct {
	entry int
	group int
}

// Viewer browses the decoded graphics banks through every colour group and
// edits the dip switch banks the way the game's settings menu would.
type Viewer struct {
	ctx    context.Context
	logger *log.Logger
	drv    *driver.MachineDriver
	roms   *rom.Set

	entry int
	group int
	dip   int
	banks []uint8

	sheets map[sheetKey]*ebiten.Image
	failed map[sheetKey]error
}

func newViewer(ctx context.Context, logger *log.Logger, drv *driver.MachineDriver, roms *rom.Set, banks []uint8) *Viewer {
	return &Viewer{
		ctx:    ctx,
		logger: logger,
		drv:    drv,
		roms:   roms,
		banks:  banks,
		sheets: map[sheetKey]*ebiten.Image{},
		failed: map[sheetKey]error{},
	}
}

func runView(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	dir := fs.String("roms", env.opts.RomDir, "rom directory, without it only colours and dip switches are shown")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := pengo.Driver()
	banks, err := env.opts.DipBanks(d)
	if err != nil {
		return err
	}
	var set *rom.Set
	if *dir != "" {
		if set, err = loadRoms(ctx, env, d, *dir); err != nil {
			return err
		}
	}

	v := newViewer(ctx, env.logger, d, set, banks)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle(fmt.Sprintf("%s viewer", d.Name))
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ctx.Err()
}

// nextEntry cycles through the gfx decode entries.
func (v *Viewer) nextEntry(step int) {
	n := len(v.drv.GfxDecode)
	v.entry = (v.entry + step + n) % n
	v.group %= v.drv.GfxDecode[v.entry].Colors()
}

// nextGroup cycles through the colour groups of the current entry.
func (v *Viewer) nextGroup(step int) {
	n := v.drv.GfxDecode[v.entry].Colors()
	v.group = (v.group + step + n) % n
}

func (v *Viewer) nextDip(step int) {
	n := len(v.drv.DipSwitches)
	v.dip = (v.dip + step + n) % n
}

// stepDip advances the selected switch in menu order.
func (v *Viewer) stepDip() {
	s := v.drv.DipSwitches[v.dip]
	v.banks[s.Port] = s.Step(v.banks[s.Port])
	v.logger.Debug("Dip switch changed", log.String("name", s.Name), log.String("value", s.Decode(v.banks[s.Port])))
}

func (v *Viewer) Update() error {
	if v.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		v.nextEntry(step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.nextGroup(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.nextGroup(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.nextDip(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.nextDip(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		v.stepDip()
	}
	return nil
}

func (v *Viewer) sheet() (*ebiten.Image, error) {
	key := sheetKey{entry: v.entry, group: v.group}
	if img, ok := v.sheets[key]; ok {
		return img, nil
	}
	if err, ok := v.failed[key]; ok {
		return nil, err
	}

	info := v.drv.GfxDecode[v.entry]
	perRow := sheetPerRow
	if info.Layout.Width > 8 {
		perRow = spritePerRow
	}
	data, err := v.roms.At(info.Start)
	var rgba *image.RGBA
	if err == nil {
		rgba, err = gfx.BankSheet(data, info, perRow, v.drv.Palette, v.drv.ColorTable, v.group)
	}
	if err != nil {
		v.logger.Error("Decoding graphics failed", log.Int("entry", v.entry), log.Err(err))
		v.failed[key] = err
		return nil, err
	}
	img := ebiten.NewImageFromImage(rgba)
	v.sheets[key] = img
	return img, nil
}

// uiColor renders one of the driver's UI colour codes the way its
// characters are drawn.
func (v *Viewer) uiColor(code uint8) color.RGBA {
	return v.drv.Palette.Color(v.drv.ColorTable, int(code), driver.ColorTableGroupSize-1)
}

func (v *Viewer) DrawSheet(screen *ebiten.Image) {
	info := v.drv.GfxDecode[v.entry]
	title := fmt.Sprintf("bank %d  %05x  %dx%d  colour %d", v.entry, info.Start, info.Layout.Width, info.Layout.Height, info.FirstColor+v.group)
	text.Draw(screen, title, basicfont.Face7x13, sheetX, sheetY-8, WHITE)

	if v.roms == nil {
		text.Draw(screen, "no rom set loaded", basicfont.Face7x13, sheetX, sheetY+lineHeight, GRAY)
		return
	}
	img, err := v.sheet()
	if err != nil {
		text.Draw(screen, err.Error(), basicfont.Face7x13, sheetX, sheetY+lineHeight, GRAY)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sheetScale, sheetScale)
	op.GeoM.Translate(sheetX, sheetY)
	screen.DrawImage(img, op)
}

func (v *Viewer) DrawPalette(screen *ebiten.Image) {
	for i, c := range v.drv.Palette {
		vector.DrawFilledRect(screen,
			float32(sheetX+i*swatchSize), paletteY,
			swatchSize-1, swatchSize-1,
			c.RGBA(), false)
	}

	group := v.drv.GfxDecode[v.entry].FirstColor + v.group
	for p := 0; p < driver.ColorTableGroupSize; p++ {
		vector.DrawFilledRect(screen,
			float32(sheetX+p*swatchSize*2), colorGroupY,
			swatchSize*2-1, swatchSize,
			v.drv.Palette.Color(v.drv.ColorTable, group, uint8(p)), false)
	}
	idx := v.drv.ColorTable.Lookup(group, 0)
	vector.StrokeRect(screen,
		float32(sheetX+int(idx)*swatchSize)-1, paletteY-1,
		swatchSize+1, swatchSize+1,
		1, WHITE, false)
}

func (v *Viewer) DrawDipMenu(screen *ebiten.Image) {
	ui := v.drv.UI
	y := sheetY
	text.Draw(screen, "DIP SWITCHES", basicfont.Face7x13, menuX, y, v.uiColor(ui.DipMenuColor))
	for i, s := range v.drv.DipSwitches {
		y += lineHeight
		clr := v.uiColor(ui.White)
		if i == v.dip {
			clr = v.uiColor(ui.Yellow)
		}
		text.Draw(screen, s.Name, basicfont.Face7x13, menuX, y, clr)
		text.Draw(screen, s.Decode(v.banks[s.Port]), basicfont.Face7x13, menuX+110, y, clr)
	}
	for i, b := range v.banks {
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("DSW%d = %02x", i+1, b), basicfont.Face7x13, menuX, y, GRAY)
	}
	y += lineHeight * 2
	for _, help := range []string{"tab: bank", "left/right: colour", "up/down/enter: dip", "esc: quit"} {
		text.Draw(screen, help, basicfont.Face7x13, menuX, y, GRAY)
		y += lineHeight
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.DrawSheet(screen)
	v.DrawPalette(screen)
	v.DrawDipMenu(screen)
}

func (v *Viewer) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
