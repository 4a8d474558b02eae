// Package driver defines the records by which a single arcade game is
// registered with an emulation host: memory maps, inputs, dip switches,
// ROM layout, graphics decode tables, colours and sound waveforms.
//
// Every record is plain data. A driver builds a fresh MachineDriver and hands
// it to the host, which never needs to modify it.
package driver

// VideoHooks are the host callbacks named by Video.
type VideoHooks interface {
	Start() error
	Stop()
	Refresh()
}

// SoundHooks are the host callbacks named by Sound.
type SoundHooks interface {
	Update()
}

// Rect is an inclusive pixel rectangle.
type Rect struct {
	MinX, MaxX, MinY, MaxY int
}

// Video holds the screen geometry and the names of the video callbacks.
type Video struct {
	Width   int
	Height  int
	Visible Rect
	Start   string
	Stop    string
	Refresh string
}

// Sound names the waveform source and sound callbacks.
// EnableLatch is the write address of the sound enable line; the sound
// generator is silent while the latch holds 0.
type Sound struct {
	Waveforms   []Waveform
	EnableLatch uint16
	Update      string
}

// UIColors are the characters and colours the host uses to draw its own
// text (dip switch menu, messages) with the game's character set.
type UIColors struct {
	NumbersStart byte
	LettersStart byte
	White        uint8
	Yellow       uint8
	DipMenuX     int
	DipMenuY     int
	DipMenuColor uint8
}

// MachineDriver is the aggregate a host loads to instantiate a game.
type MachineDriver struct {
	Name string
	Roms []RomRegion

	CPUClock            int
	FramesPerSecond     int
	InterruptsPerFrame  int
	Interrupt           string
	ReadMap             MemoryMap
	WriteMap            MemoryMap
	Inputs              []InputPort
	DipSwitches         []DipSwitch
	DipDefaults         []uint8
	WatchdogAddress     uint16
	InterruptEnableAddr uint16

	Video      Video
	GfxDecode  []GfxDecodeInfo
	Palette    Palette
	ColorTable ColorTable
	UI         UIColors

	Sound Sound
}

// Region returns the ROM region with the given name.
func (d *MachineDriver) Region(name string) (RomRegion, bool) {
	for _, r := range d.Roms {
		if r.Name == name {
			return r, true
		}
	}
	return RomRegion{}, false
}

// RegionAt returns the ROM region holding the flat offset.
func (d *MachineDriver) RegionAt(offset uint32) (RomRegion, bool) {
	for _, r := range d.Roms {
		if r.Contains(offset) {
			return r, true
		}
	}
	return RomRegion{}, false
}

// Input returns the input port with the given name.
func (d *MachineDriver) Input(name string) (InputPort, bool) {
	for _, p := range d.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return InputPort{}, false
}

// DipSwitch returns the dip switch with the given name.
func (d *MachineDriver) DipSwitch(name string) (DipSwitch, bool) {
	for _, s := range d.DipSwitches {
		if s.Name == name {
			return s, true
		}
	}
	return DipSwitch{}, false
}

// Handlers lists every handler named by the read and write maps. A host
// must provide a capability for each of them.
func (d *MachineDriver) Handlers() []HandlerID {
	seen := make(map[HandlerID]bool)
	var out []HandlerID
	for _, h := range append(d.ReadMap.Handlers(), d.WriteMap.Handlers()...) {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}
