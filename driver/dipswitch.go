package driver

import (
	"fmt"
	"math/bits"
)

// DipSwitch describes one setting packed into a dip-switch bank.
// Values are listed in field order: Values[0] is the setting selected when
// every bit of Mask is clear. Reverse asks the host's settings menu to step
// through the values from last to first.
type DipSwitch struct {
	Port    int
	Mask    uint8
	Name    string
	Values  []string
	Reverse bool
}

// Positions is the number of distinct values Mask can encode.
func (d DipSwitch) Positions() int {
	return 1 << bits.OnesCount8(d.Mask)
}

// Shift is the index of the lowest bit of Mask.
func (d DipSwitch) Shift() int {
	return bits.TrailingZeros8(d.Mask)
}

// Decode returns the value label selected in bank.
func (d DipSwitch) Decode(bank uint8) string {
	field := int(bank&d.Mask) >> d.Shift()
	if field >= len(d.Values) {
		return fmt.Sprintf("%d", field)
	}
	return d.Values[field]
}

// Encode stores the value labelled choice into bank.
func (d DipSwitch) Encode(bank uint8, choice string) (uint8, error) {
	for i, v := range d.Values {
		if v == choice {
			return bank&^d.Mask | uint8(i<<d.Shift())&d.Mask, nil
		}
	}
	return bank, fmt.Errorf("dip switch %s has no value %q", d.Name, choice)
}

// Step moves bank to the next value in menu order, wrapping at either end.
func (d DipSwitch) Step(bank uint8) uint8 {
	n := len(d.Values)
	if n == 0 {
		return bank
	}
	field := int(bank&d.Mask) >> d.Shift()
	if field >= n {
		field = 0
	}
	if d.Reverse {
		field = (field + n - 1) % n
	} else {
		field = (field + 1) % n
	}
	return bank&^d.Mask | uint8(field<<d.Shift())&d.Mask
}

// InputBit names one bit of an input port.
type InputBit struct {
	Bit  uint8
	Name string
}

// InputPort documents a memory mapped input byte.
// ActiveLow ports read 0 for a pressed control.
type InputPort struct {
	Name      string
	Address   uint16
	ActiveLow bool
	Bits      []InputBit
}

// Mask returns the bit mask of the named input, or 0 if unknown.
func (p InputPort) Mask(name string) uint8 {
	for _, b := range p.Bits {
		if b.Name == name {
			return 1 << b.Bit
		}
	}
	return 0
}

// Encode converts a set of pressed controls to the byte the port presents.
func (p InputPort) Encode(pressed uint8) uint8 {
	if p.ActiveLow {
		return ^pressed
	}
	return pressed
}
