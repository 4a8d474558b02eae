package machine

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
	"pengo-emu/mapper"
	"pengo-emu/pengo"
	"pengo-emu/register"
)

// Latches are the single bit control lines written at 0x9040-0x9047.
type Latches struct {
	InterruptEnable bool
	SoundEnable     bool
	PaletteBank     uint8
	FlipScreen      bool
	CoinCounter     [2]bool
	ColorTableBank  uint8
	GfxBank         uint8
}

// Hardware is the board state the Pengo handlers act on.
type Hardware struct {
	logger *log.Logger

	rom      []uint8
	ram      [pengo.RAMSize]uint8
	videoRAM [pengo.VideoRAMSize]uint8
	colorRAM [pengo.ColorRAMSize]uint8

	gfx        *mapper.Banked
	sprites    [pengo.Sprites]Sprite
	soundRegs  [0x20]uint8
	frequency  [Voices]register.Register
	waveSelect register.Register
	voices     [Voices]Voice

	Latches  Latches
	Coins    [2]int
	watchdog int

	in0  driver.InputPort
	in1  driver.InputPort
	held map[string]uint8
	dsw1 uint8
}

// NewHardware returns a board with rom mapped at 0x0000 and the dip
// switches set to dsw1.
func NewHardware(logger *log.Logger, drv *driver.MachineDriver, rom []uint8, dsw1 uint8) (*Hardware, error) {
	in0, ok := drv.Input(pengo.IN0)
	if !ok {
		return nil, fmt.Errorf("driver %s has no %s port", drv.Name, pengo.IN0)
	}
	in1, ok := drv.Input(pengo.IN1)
	if !ok {
		return nil, fmt.Errorf("driver %s has no %s port", drv.Name, pengo.IN1)
	}

	gfx, err := mapper.NewBanked(drv.GfxDecode)
	if err != nil {
		return nil, err
	}

	h := &Hardware{
		logger: logger,
		gfx:    gfx,
		rom:    rom,
		in0:    in0,
		in1:    in1,
		held:   map[string]uint8{pengo.IN0: 0, pengo.IN1: 0},
		dsw1:   dsw1,
	}
	for i := range h.sprites {
		h.sprites[i].attr = CreateSpriteCodeRegister()
	}
	for i := range h.frequency {
		h.frequency[i] = CreateFrequencyRegister()
	}
	h.waveSelect = CreateWaveSelectRegister()
	return h, nil
}

// Press holds down the named control of an input port.
func (h *Hardware) Press(port, control string) error {
	mask, err := h.controlMask(port, control)
	if err != nil {
		return err
	}
	h.held[port] |= mask
	return nil
}

// Release lets go of the named control.
func (h *Hardware) Release(port, control string) error {
	mask, err := h.controlMask(port, control)
	if err != nil {
		return err
	}
	h.held[port] &^= mask
	return nil
}

func (h *Hardware) controlMask(port, control string) (uint8, error) {
	var p driver.InputPort
	switch port {
	case pengo.IN0:
		p = h.in0
	case pengo.IN1:
		p = h.in1
	default:
		return 0, fmt.Errorf("unknown input port %q", port)
	}
	mask := p.Mask(control)
	if mask == 0 {
		return 0, fmt.Errorf("input port %s has no control %q", port, control)
	}
	return mask, nil
}

// Sprite returns sprite n, 0 to 5.
func (h *Hardware) Sprite(n int) *Sprite {
	return &h.sprites[n]
}

// Voice returns the register state of voice n, 0 to 2.
func (h *Hardware) Voice(n int) Voice {
	return h.voices[n]
}

// VideoRAM returns the tile codes of the playfield.
func (h *Hardware) VideoRAM() []uint8 {
	return h.videoRAM[:]
}

// ColorRAM returns the colour groups of the playfield.
func (h *Hardware) ColorRAM() []uint8 {
	return h.colorRAM[:]
}

// Frame advances the watchdog by one frame and reports whether it has gone
// limit frames without being reset. An expired watchdog resets the board.
func (h *Hardware) Frame(limit int) bool {
	h.watchdog++
	if h.watchdog >= limit {
		h.logger.Warn("Watchdog expired", log.Int("frames", h.watchdog))
		h.Reset()
		return true
	}
	return false
}

// Reset clears the control latches, the watchdog and the gfx bank, as the
// board's reset line does. Memories and coin counts are kept.
func (h *Hardware) Reset() {
	h.Latches = Latches{}
	h.watchdog = 0
	h.gfx.Reset()
	h.Latches.GfxBank = h.gfx.Bank()
}

// TileAddress returns the graphics ROM offset of a character or sprite
// code in the bank selected by the gfx bank latch.
func (h *Hardware) TileAddress(kind mapper.Kind, code uint16) (uint32, bool) {
	var addr uint32
	ok := h.gfx.GfxMapRead(kind, code, &addr)
	return addr, ok
}

// TileColors returns the first colour group of kind in the selected bank.
func (h *Hardware) TileColors(kind mapper.Kind) int {
	return h.gfx.Entry(kind).FirstColor
}

func (h *Hardware) writeGfxBank(_, _ uint16, data uint8) {
	h.gfx.Select(data & 1)
	h.Latches.GfxBank = h.gfx.Bank()
}

// handler adapts a pair of functions to driver.MemoryHandler.
type handler struct {
	read  func(addr, offset uint16) uint8
	write func(addr, offset uint16, data uint8)
}

func (f handler) Read(addr, offset uint16) uint8 {
	if f.read == nil {
		return OpenBus
	}
	return f.read(addr, offset)
}

func (f handler) Write(addr, offset uint16, data uint8) {
	if f.write != nil {
		f.write(addr, offset, data)
	}
}

// Handlers binds every handler the Pengo driver names to this board.
func (h *Hardware) Handlers() Handlers {
	return Handlers{
		pengo.RAMRead:  handler{read: func(_, o uint16) uint8 { return h.ram[o] }},
		pengo.RAMWrite: handler{write: func(_, o uint16, d uint8) { h.ram[o] = d }},
		pengo.ROMRead:  handler{read: h.readROM},
		pengo.ROMWrite: handler{write: func(addr, _ uint16, d uint8) {
			h.logger.Debug("Write to ROM ignored", log.String("address", fmt.Sprintf("0x%04X", addr)))
		}},
		pengo.VideoRAMRead:    handler{read: func(_, o uint16) uint8 { return h.videoRAM[o] }},
		pengo.VideoRAMWrite:   handler{write: func(_, o uint16, d uint8) { h.videoRAM[o] = d }},
		pengo.ColorRAMRead:    handler{read: func(_, o uint16) uint8 { return h.colorRAM[o] }},
		pengo.ColorRAMWrite:   handler{write: func(_, o uint16, d uint8) { h.colorRAM[o] = d }},
		pengo.IN0Read:         handler{read: func(_, _ uint16) uint8 { return h.in0.Encode(h.held[pengo.IN0]) }},
		pengo.IN1Read:         handler{read: func(_, _ uint16) uint8 { return h.in1.Encode(h.held[pengo.IN1]) }},
		pengo.DSW1Read:        handler{read: func(_, _ uint16) uint8 { return h.dsw1 }},
		pengo.SpriteCode:      handler{write: h.writeSpriteCode},
		pengo.SpritePos:       handler{write: h.writeSpritePos},
		pengo.SoundWrite:      handler{write: func(_, o uint16, d uint8) { h.writeSound(o, d) }},
		pengo.SoundEnable:     handler{write: func(_, _ uint16, d uint8) { h.Latches.SoundEnable = d&1 != 0 }},
		pengo.GfxBank:         handler{write: h.writeGfxBank},
		pengo.InterruptEnable: handler{write: func(_, _ uint16, d uint8) { h.Latches.InterruptEnable = d&1 != 0 }},
	}
}

func (h *Hardware) readROM(_, offset uint16) uint8 {
	if int(offset) >= len(h.rom) {
		return OpenBus
	}
	return h.rom[offset]
}

// writeSpriteCode stores into RAM, since the code table is ordinary
// memory, and latches the sprite attributes at 0x8ff2-0x8ffd.
func (h *Hardware) writeSpriteCode(addr, offset uint16, data uint8) {
	h.ram[addr-pengo.RAMBase] = data
	if offset < 2 || offset >= 2+2*pengo.Sprites {
		return
	}
	s := &h.sprites[(offset-2)/2]
	if offset%2 == 0 {
		s.setAttributes(data)
	} else {
		s.Color = data
	}
}

// writeSpritePos latches the x/y pairs at 0x9022-0x902d.
func (h *Hardware) writeSpritePos(_, offset uint16, data uint8) {
	if offset < 2 || offset >= 2+2*pengo.Sprites {
		return
	}
	s := &h.sprites[(offset-2)/2]
	if offset%2 == 0 {
		s.X = data
	} else {
		s.Y = data
	}
}

// Ports serves the addresses the driver leaves to the host: DSW2 reads and
// the palette bank, flip screen, coin counter, colour table bank and
// watchdog writes.
func (h *Hardware) Ports() driver.MemoryHandler {
	return handler{
		read: func(addr, _ uint16) uint8 {
			// DSW2 has no switches fitted; active low reads as all off.
			return 0xFF
		},
		write: h.writePort,
	}
}

func (h *Hardware) writePort(addr, _ uint16, data uint8) {
	bit := data & 1
	switch addr {
	case pengo.PaletteBankAddress:
		h.Latches.PaletteBank = bit
	case pengo.FlipScreenAddress:
		h.Latches.FlipScreen = bit != 0
	case pengo.CoinCounter1Address, pengo.CoinCounter2Address:
		n := addr - pengo.CoinCounter1Address
		if bit != 0 && !h.Latches.CoinCounter[n] {
			h.Coins[n]++
		}
		h.Latches.CoinCounter[n] = bit != 0
	case pengo.ColorTableBankAddress:
		h.Latches.ColorTableBank = bit
	case pengo.WatchdogAddress:
		h.watchdog = 0
	default:
		h.logger.Debug("Unhandled port write", log.String("address", fmt.Sprintf("0x%04X", addr)))
	}
}
