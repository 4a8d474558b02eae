package machine

import "pengo-emu/register"

// CreateSpriteCodeRegister lays out the first byte of a sprite code pair.
func CreateSpriteCodeRegister() register.Register {
	return register.CreateRegister(map[string]register.Field{
		"y_flip": {Index: 0, Size: 1},
		"x_flip": {Index: 1, Size: 1},
		"code":   {Index: 2, Size: 6},
	})
}

// Sprite is one hardware sprite as latched from the code and position
// tables.
type Sprite struct {
	attr  register.Register
	Color uint8
	X     uint8
	Y     uint8
}

// Code is the sprite image number.
func (s *Sprite) Code() uint8 {
	return uint8(s.attr.GetField("code"))
}

// FlipX reports horizontal mirroring.
func (s *Sprite) FlipX() bool {
	return s.attr.Flag("x_flip")
}

// FlipY reports vertical mirroring.
func (s *Sprite) FlipY() bool {
	return s.attr.Flag("y_flip")
}

func (s *Sprite) setAttributes(data uint8) {
	s.attr.SetReg(uint16(data))
}
