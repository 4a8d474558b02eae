package machine

import (
	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
)

// Machine is a Pengo board wired to its bus.
type Machine struct {
	*Hardware
	Bus *Bus
}

// New builds the board and binds its handlers to the driver's maps.
func New(logger *log.Logger, drv *driver.MachineDriver, rom []uint8, dsw1 uint8) (*Machine, error) {
	hw, err := NewHardware(logger, drv, rom, dsw1)
	if err != nil {
		return nil, err
	}
	bus, err := NewBus(logger, drv, hw.Handlers(), hw.Ports())
	if err != nil {
		return nil, err
	}
	return &Machine{Hardware: hw, Bus: bus}, nil
}
