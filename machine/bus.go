// Package machine is the smallest host that satisfies the Pengo driver's
// memory dispatch contract. It keeps the board's memories and latches and
// routes CPU accesses through the driver's maps; it runs no CPU.
package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"pengo-emu/driver"
)

// ErrUnbound is returned when the driver names a handler the host lacks.
var ErrUnbound = errors.New("unbound memory handler")

// OpenBus is read from addresses no range covers.
const OpenBus = 0xFF

// Handlers binds handler names to capabilities.
type Handlers map[driver.HandlerID]driver.MemoryHandler

// Bus dispatches CPU reads and writes through a driver's memory maps.
type Bus struct {
	drv      *driver.MachineDriver
	handlers Handlers
	ports    driver.MemoryHandler
	logger   *log.Logger
}

// NewBus checks that every handler the driver names is bound. Ranges bound
// to driver.NoHandler are served by ports.
func NewBus(logger *log.Logger, drv *driver.MachineDriver, handlers Handlers, ports driver.MemoryHandler) (*Bus, error) {
	if ports == nil {
		return nil, fmt.Errorf("%w: no default port handler", ErrUnbound)
	}
	for _, id := range drv.Handlers() {
		if _, ok := handlers[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnbound, id)
		}
	}
	return &Bus{
		drv:      drv,
		handlers: handlers,
		ports:    ports,
		logger:   logger,
	}, nil
}

func (b *Bus) handler(id driver.HandlerID) driver.MemoryHandler {
	if id == driver.NoHandler {
		return b.ports
	}
	return b.handlers[id]
}

// Read returns the byte the CPU sees at addr.
func (b *Bus) Read(addr uint16) uint8 {
	r, ok := b.drv.ReadMap.Resolve(addr)
	if !ok {
		b.logger.Debug("Unmapped read", log.String("address", fmt.Sprintf("0x%04X", addr)))
		return OpenBus
	}
	return b.handler(r.Handler).Read(addr, r.Offset(addr))
}

// Write delivers a CPU write. Writes nobody decodes are dropped.
func (b *Bus) Write(addr uint16, data uint8) {
	r, ok := b.drv.WriteMap.Resolve(addr)
	if !ok {
		b.logger.Debug("Unmapped write",
			log.String("address", fmt.Sprintf("0x%04X", addr)),
			log.String("data", fmt.Sprintf("0x%02X", data)))
		return
	}
	b.handler(r.Handler).Write(addr, r.Offset(addr), data)
}
