// Package mapper resolves the character and sprite codes fetched by the
// video hardware to offsets in the graphics ROMs.
package mapper

type Kind uint8

const (
	Chars   = Kind(0)
	Sprites = Kind(1)
)

type Mapper interface {
	GfxMapRead(kind Kind, code uint16, mappedAddr *uint32) bool
	Select(data uint8)
	Bank() uint8
	Reset()
}
