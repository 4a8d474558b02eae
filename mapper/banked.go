package mapper

import (
	"fmt"

	"pengo-emu/driver"
)

var _ Mapper = (*Banked)(nil)

// Banked pages pairs of gfx decode entries, characters then sprites,
// through a bank latch.
type Banked struct {
	entries []driver.GfxDecodeInfo
	bank    uint8
}

func NewBanked(entries []driver.GfxDecodeInfo) (*Banked, error) {
	if len(entries) == 0 || len(entries)%2 != 0 {
		return nil, fmt.Errorf("banked graphics need character and sprite entry pairs, got %d entries", len(entries))
	}
	return &Banked{entries: entries}, nil
}

// Banks is the number of selectable banks.
func (m *Banked) Banks() int {
	return len(m.entries) / 2
}

// Entry returns the decode entry of kind in the selected bank.
func (m *Banked) Entry(kind Kind) driver.GfxDecodeInfo {
	return m.entries[int(m.bank)*2+int(kind)]
}

func (m *Banked) GfxMapRead(kind Kind, code uint16, mappedAddr *uint32) bool {
	e := m.Entry(kind)
	if int(code) >= e.Layout.Total {
		return false
	}
	*mappedAddr = e.Start + uint32(int(code)*e.Layout.Stride())
	return true
}

func (m *Banked) Select(data uint8) {
	m.bank = data % uint8(m.Banks())
}

func (m *Banked) Bank() uint8 {
	return m.bank
}

func (m *Banked) Reset() {
	m.bank = 0
}
