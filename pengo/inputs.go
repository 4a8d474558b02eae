package pengo

import (
	"strconv"

	"pengo-emu/driver"
)

// Input and dip switch bank names.
const (
	IN0  = "IN0"
	IN1  = "IN1"
	DSW1 = "DSW1"
	DSW2 = "DSW2"
)

// Control names used by the input ports.
const (
	Up1       = "UP1"
	Down1     = "DOWN1"
	Left1     = "LEFT1"
	Right1    = "RIGHT1"
	CoinA     = "COIN A"
	CoinB     = "COIN B"
	Credit    = "CREDIT"
	Push1     = "PUSH1"
	Up2       = "UP2"
	Down2     = "DOWN2"
	Left2     = "LEFT2"
	Right2    = "RIGHT2"
	Test      = "TEST"
	Start1    = "START1"
	Start2    = "START2"
	Push2     = "PUSH2"
	DipSwitch = "DIP SWITCH"
)

// DefaultDSW1 is the factory setting of the first dip switch bank.
const DefaultDSW1 = 0xb0

// Inputs returns the input ports. All bits are active low. The player 2
// controls are only wired on the table cabinet.
func Inputs() []driver.InputPort {
	return []driver.InputPort{
		{
			Name: IN0, Address: IN0Address, ActiveLow: true,
			Bits: []driver.InputBit{
				{Bit: 0, Name: Up1},
				{Bit: 1, Name: Down1},
				{Bit: 2, Name: Left1},
				{Bit: 3, Name: Right1},
				{Bit: 4, Name: CoinA},
				{Bit: 5, Name: CoinB},
				{Bit: 6, Name: Credit},
				{Bit: 7, Name: Push1},
			},
		},
		{
			Name: IN1, Address: IN1Address, ActiveLow: true,
			Bits: []driver.InputBit{
				{Bit: 0, Name: Up2},
				{Bit: 1, Name: Down2},
				{Bit: 2, Name: Left2},
				{Bit: 3, Name: Right2},
				{Bit: 4, Name: Test},
				{Bit: 5, Name: Start1},
				{Bit: 6, Name: Start2},
				{Bit: 7, Name: Push2},
			},
		},
		dipBank(DSW1, DSW1Address),
		dipBank(DSW2, DSW2Address),
	}
}

func dipBank(name string, addr uint16) driver.InputPort {
	p := driver.InputPort{Name: name, Address: addr, ActiveLow: true}
	for i := uint8(0); i < 8; i++ {
		p.Bits = append(p.Bits, driver.InputBit{Bit: i, Name: DipSwitch + " " + strconv.Itoa(int(i)+1)})
	}
	return p
}

// DipSwitches returns the settings of bank DSW1. DSW2 has no used switches.
func DipSwitches() []driver.DipSwitch {
	return []driver.DipSwitch{
		{Port: 0, Mask: 0x18, Name: "LIVES", Values: []string{"5", "4", "3", "2"}, Reverse: true},
		{Port: 0, Mask: 0x01, Name: "BONUS", Values: []string{"30000", "50000"}},
		{Port: 0, Mask: 0xc0, Name: "DIFFICULTY", Values: []string{"HARDEST", "HARD", "MEDIUM", "EASY"}, Reverse: true},
		{Port: 0, Mask: 0x02, Name: "DEMO SOUNDS", Values: []string{"ON", "OFF"}, Reverse: true},
		{Port: 0, Mask: 0x20, Name: "RACK TEST", Values: []string{"ON", "OFF"}},
		{Port: 0, Mask: 0x04, Name: "CABINET", Values: []string{"UPRIGHT", "TABLE"}},
	}
}
